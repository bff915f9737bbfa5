package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"turfzone/internal/booking"
	"turfzone/internal/controller"
)

const (
	fieldTurf = iota
	fieldDate
	fieldSlot
	fieldCount
)

// bookingForm is the "Confirm Your Booking" screen: two text inputs and a
// slot picker.
type bookingForm struct {
	inputs [2]textinput.Model
	slot   int
	focus  int
}

func newBookingForm(f controller.Form) bookingForm {
	var form bookingForm
	for i := range form.inputs {
		ti := textinput.New()
		ti.CharLimit = 64
		ti.Width = 32
		form.inputs[i] = ti
	}
	form.inputs[fieldTurf].Placeholder = "Turf name"
	form.inputs[fieldTurf].SetValue(f.TurfName)
	form.inputs[fieldDate].Placeholder = booking.DateLayout
	form.inputs[fieldDate].SetValue(f.Date)

	for i, opt := range booking.TimeSlotOptions {
		if opt == f.TimeSlot {
			form.slot = i
		}
	}
	form.inputs[fieldTurf].Focus()
	return form
}

// Request is what the form submits.
func (f bookingForm) Request() booking.Request {
	return booking.Request{
		TurfName: f.inputs[fieldTurf].Value(),
		Date:     f.inputs[fieldDate].Value(),
		TimeSlot: booking.TimeSlotOptions[f.slot],
	}
}

func (f bookingForm) move(delta int) bookingForm {
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	for i := range f.inputs {
		if i == f.focus {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	return f
}

func (f bookingForm) shiftSlot(delta int) bookingForm {
	n := len(booking.TimeSlotOptions)
	f.slot = (f.slot + delta + n) % n
	return f
}

func (f bookingForm) Update(msg tea.Msg) (bookingForm, tea.Cmd) {
	if f.focus == fieldSlot {
		if k, ok := msg.(tea.KeyMsg); ok {
			switch k.String() {
			case "left":
				return f.shiftSlot(-1), nil
			case "right":
				return f.shiftSlot(1), nil
			}
		}
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f bookingForm) label(field int, text string) string {
	if f.focus == field {
		return focusedLabelStyle.Render(text)
	}
	return labelStyle.Render(text)
}

func (f bookingForm) View() string {
	var b strings.Builder
	b.WriteString(formTitleStyle.Render("Confirm Your Booking"))
	b.WriteString("\n")
	b.WriteString(f.label(fieldTurf, "Turf") + f.inputs[fieldTurf].View() + "\n")
	b.WriteString(f.label(fieldDate, "Date") + f.inputs[fieldDate].View() + "\n")
	b.WriteString(f.label(fieldSlot, "Time slot") + "< " + booking.TimeSlotOptions[f.slot] + " >\n")
	return b.String()
}
