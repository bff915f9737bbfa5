package controller

import "turfzone/internal/booking"

// ActionKind names a user action.
type ActionKind string

const (
	ActionSelectCategory ActionKind = "select-category"
	ActionBookNow        ActionKind = "book-now"
	ActionCancel         ActionKind = "cancel"
	ActionConfirm        ActionKind = "confirm"
	ActionAcknowledge    ActionKind = "acknowledge"
	ActionLogout         ActionKind = "logout"
)

// Action is one user action with its arguments. Only the fields relevant
// to Kind are read.
type Action struct {
	Kind     ActionKind
	Category string
	TurfName string
	Request  booking.Request
}

func SelectCategory(category string) Action {
	return Action{Kind: ActionSelectCategory, Category: category}
}

func BookNow(turfName string) Action {
	return Action{Kind: ActionBookNow, TurfName: turfName}
}

func Cancel() Action {
	return Action{Kind: ActionCancel}
}

func Confirm(req booking.Request) Action {
	return Action{Kind: ActionConfirm, Request: req}
}

func Acknowledge() Action {
	return Action{Kind: ActionAcknowledge}
}

func Logout() Action {
	return Action{Kind: ActionLogout}
}

// NoticeKind classifies user-visible messages.
type NoticeKind string

const (
	NoticeLoginRequired  NoticeKind = "login-required"
	NoticeLookupFailed   NoticeKind = "lookup-failed"
	NoticeInvalidBooking NoticeKind = "invalid-booking"
	NoticeLoggedOut      NoticeKind = "logged-out"
)

// Notice is a non-fatal message for the user.
type Notice struct {
	Kind    NoticeKind
	Title   string
	Message string
}

func (n Notice) String() string {
	return n.Title + ": " + n.Message
}

func loginRequiredNotice() *Notice {
	return &Notice{Kind: NoticeLoginRequired, Title: "Session Required", Message: "Please log in to book a slot."}
}

func lookupFailedNotice(category string) *Notice {
	return &Notice{
		Kind:    NoticeLookupFailed,
		Title:   "Database Error",
		Message: "Could not load " + category + " turfs. Check the store connection.",
	}
}

func invalidBookingNotice(err error) *Notice {
	return &Notice{Kind: NoticeInvalidBooking, Title: "Incomplete Booking", Message: "Booking form is " + err.Error() + "."}
}

func loggedOutNotice() *Notice {
	return &Notice{Kind: NoticeLoggedOut, Title: "Logout", Message: "Logged out successfully."}
}
