package booking

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// PlaceholderTimeSlot is reported on every confirmation regardless of
	// the slot picked on the form. Slot selection is not implemented.
	PlaceholderTimeSlot = "10:00 - 11:00"
	// PlaceholderUserID stands in for the logged-in user.
	PlaceholderUserID = 13

	DateLayout = "2006-01-02"
)

// TimeSlotOptions are the labels offered by the booking form.
var TimeSlotOptions = []string{
	"10:00 - 11:00 (10 AM)",
	"11:00 - 12:00 (11 AM)",
	"12:00 - 13:00 (12 PM)",
}

var validate = validator.New()

// Request is what the booking form submits.
type Request struct {
	TurfName string `json:"turf_name" validate:"required"`
	Date     string `json:"date" validate:"required"`
	TimeSlot string `json:"time_slot" validate:"required"`
}

// Validate only checks that every field is present.
func (r Request) Validate() error {
	r.TurfName = strings.TrimSpace(r.TurfName)
	r.Date = strings.TrimSpace(r.Date)
	r.TimeSlot = strings.TrimSpace(r.TimeSlot)

	if err := validate.Struct(r); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			missing := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				missing = append(missing, fieldLabel(fe.Field()))
			}
			return fmt.Errorf("missing %s", strings.Join(missing, ", "))
		}
		return err
	}
	return nil
}

func fieldLabel(field string) string {
	switch field {
	case "TurfName":
		return "turf name"
	case "Date":
		return "date"
	case "TimeSlot":
		return "time slot"
	}
	return field
}

// Confirmation is the mock receipt shown after a submission. It is never
// stored.
type Confirmation struct {
	ID       string `json:"confirmation_id"`
	TurfName string `json:"turf_name"`
	Date     string `json:"date"`
	TimeSlot string `json:"time_slot"`
	UserID   int    `json:"user_id"`
}

// When joins the date and slot as the receipt prints them.
func (c Confirmation) When() string {
	return c.Date + " @ " + c.TimeSlot
}

// Source is the randomness behind confirmation ids. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Generator builds mock confirmations.
type Generator struct {
	src Source
}

// NewGenerator uses src for ids, or the process-wide generator when src is nil.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = globalSource{}
	}
	return &Generator{src: src}
}

// Confirm produces a confirmation for req. The id is "#" followed by a
// number in [1000, 9999].
func (g *Generator) Confirm(req Request) Confirmation {
	return Confirmation{
		ID:       fmt.Sprintf("#%d", 1000+g.src.IntN(9000)),
		TurfName: req.TurfName,
		Date:     req.Date,
		TimeSlot: PlaceholderTimeSlot,
		UserID:   PlaceholderUserID,
	}
}

// Today is the date the booking form starts with.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}
