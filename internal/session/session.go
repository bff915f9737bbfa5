// Package session holds the logged-in flag that gates booking.
package session

// Session is shared by reference between the components that read it, so a
// Logout is seen by every later IsLoggedIn call.
type Session struct {
	loggedIn bool
}

// New returns a session in the given state.
func New(loggedIn bool) *Session {
	return &Session{loggedIn: loggedIn}
}

func (s *Session) IsLoggedIn() bool {
	return s.loggedIn
}

func (s *Session) Login() {
	s.loggedIn = true
}

func (s *Session) Logout() {
	s.loggedIn = false
}
