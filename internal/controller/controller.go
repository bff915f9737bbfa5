// Package controller implements the Home/Booking view state machine. It
// holds no rendering state; presentation layers read the current view,
// listing, form and pending confirmation and dispatch Actions.
package controller

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"turfzone/internal/booking"
	apperrors "turfzone/internal/errors"
	"turfzone/internal/session"
	"turfzone/internal/turf"
)

// View is one of the two mutually exclusive screens.
type View int

const (
	Home View = iota
	Booking
)

func (v View) String() string {
	switch v {
	case Home:
		return "home"
	case Booking:
		return "booking"
	}
	return fmt.Sprintf("view(%d)", int(v))
}

// Looker performs one turf lookup. *turf.Service satisfies it.
type Looker interface {
	Lookup(ctx context.Context, category string) turf.Listing
}

// TransitionObserver is told about every dispatched action.
type TransitionObserver interface {
	ObserveTransition(from, to, action string)
	ObserveNotice(kind string)
	ObserveConfirmation()
}

// Form is the booking form as last prepared by Book Now.
type Form struct {
	TurfName string
	Date     string
	TimeSlot string
}

// Outcome describes the result of one action.
type Outcome struct {
	Action       ActionKind
	From         View
	View         View
	Changed      bool
	Notice       *Notice
	Confirmation *booking.Confirmation
	Exit         bool
}

type handler func(c *Controller, ctx context.Context, a Action) (Outcome, error)

// transitions is the dispatch table. A (view, action) pair that is not
// listed is rejected.
var transitions = map[View]map[ActionKind]handler{
	Home: {
		ActionSelectCategory: (*Controller).selectCategory,
		ActionBookNow:        (*Controller).bookNow,
		ActionLogout:         (*Controller).logout,
	},
	Booking: {
		ActionCancel:      (*Controller).cancel,
		ActionConfirm:     (*Controller).confirm,
		ActionAcknowledge: (*Controller).acknowledge,
	},
}

// Config wires a Controller.
type Config struct {
	Lookup    Looker
	Session   *session.Session
	Generator *booking.Generator
	Observer  TransitionObserver
	Logger    *slog.Logger
	Now       func() time.Time
}

// Controller is single-threaded; callers serialize Dispatch.
type Controller struct {
	lookup   Looker
	session  *session.Session
	gen      *booking.Generator
	observer TransitionObserver
	logger   *slog.Logger
	now      func() time.Time

	view    View
	listing turf.Listing
	form    Form
	pending *booking.Confirmation
	exited  bool
}

func New(cfg Config) *Controller {
	c := &Controller{
		lookup:   cfg.Lookup,
		session:  cfg.Session,
		gen:      cfg.Generator,
		observer: cfg.Observer,
		logger:   cfg.Logger,
		now:      cfg.Now,
		view:     Home,
	}
	if c.session == nil {
		c.session = session.New(true)
	}
	if c.gen == nil {
		c.gen = booking.NewGenerator(nil)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.now == nil {
		c.now = time.Now
	}
	return c
}

// Start performs the initial lookup for category.
func (c *Controller) Start(ctx context.Context, category string) Outcome {
	return c.ShowListing(c.Lookup(ctx, category))
}

func (c *Controller) View() View                     { return c.view }
func (c *Controller) Listing() turf.Listing          { return c.listing }
func (c *Controller) Form() Form                     { return c.form }
func (c *Controller) Pending() *booking.Confirmation { return c.pending }
func (c *Controller) Exited() bool                   { return c.exited }
func (c *Controller) Session() *session.Session      { return c.session }

// Lookup runs a query without touching controller state, so it may run
// off the UI loop. Apply the result with ShowListing.
func (c *Controller) Lookup(ctx context.Context, category string) turf.Listing {
	return c.lookup.Lookup(ctx, category)
}

// ShowListing replaces the Home listing. A failed lookup yields a notice.
func (c *Controller) ShowListing(listing turf.Listing) Outcome {
	c.listing = listing
	out := c.stay(ActionSelectCategory)
	if listing.Failed() {
		out.Notice = lookupFailedNotice(listing.Category)
		c.noticeRaised(out.Notice)
	}
	return out
}

// Dispatch applies a to the current view.
func (c *Controller) Dispatch(ctx context.Context, a Action) (Outcome, error) {
	if c.exited {
		return c.stay(a.Kind), apperrors.ErrTerminated
	}
	if c.pending != nil && a.Kind != ActionAcknowledge {
		return c.stay(a.Kind), apperrors.ErrConfirmationPending
	}

	h, ok := transitions[c.view][a.Kind]
	if !ok {
		return c.stay(a.Kind), fmt.Errorf("%w: %s from %s", apperrors.ErrInvalidTransition, a.Kind, c.view)
	}

	out, err := h(c, ctx, a)
	if err != nil {
		return out, err
	}
	if c.observer != nil {
		c.observer.ObserveTransition(out.From.String(), out.View.String(), string(a.Kind))
	}
	c.logger.Debug("Dispatched action", "action", a.Kind, "from", out.From, "to", out.View)
	return out, nil
}

func (c *Controller) selectCategory(ctx context.Context, a Action) (Outcome, error) {
	return c.Start(ctx, a.Category), nil
}

func (c *Controller) bookNow(_ context.Context, a Action) (Outcome, error) {
	if !c.session.IsLoggedIn() {
		out := c.stay(a.Kind)
		out.Notice = loginRequiredNotice()
		c.noticeRaised(out.Notice)
		return out, nil
	}

	c.form = Form{
		TurfName: a.TurfName,
		Date:     booking.Today(c.now()),
		TimeSlot: booking.TimeSlotOptions[0],
	}
	return c.moveTo(a.Kind, Booking), nil
}

func (c *Controller) cancel(_ context.Context, a Action) (Outcome, error) {
	c.form = Form{}
	return c.moveTo(a.Kind, Home), nil
}

// confirm shows a confirmation but stays in Booking until it is
// acknowledged.
func (c *Controller) confirm(_ context.Context, a Action) (Outcome, error) {
	c.form = Form{TurfName: a.Request.TurfName, Date: a.Request.Date, TimeSlot: a.Request.TimeSlot}

	out := c.stay(a.Kind)
	if err := a.Request.Validate(); err != nil {
		out.Notice = invalidBookingNotice(err)
		c.noticeRaised(out.Notice)
		return out, nil
	}

	conf := c.gen.Confirm(a.Request)
	c.pending = &conf
	out.Confirmation = &conf
	if c.observer != nil {
		c.observer.ObserveConfirmation()
	}
	c.logger.Info("Booking confirmed", "confirmation_id", conf.ID, "turf", conf.TurfName, "date", conf.Date)
	return out, nil
}

func (c *Controller) acknowledge(_ context.Context, a Action) (Outcome, error) {
	if c.pending == nil {
		return c.stay(a.Kind), fmt.Errorf("%w: nothing to acknowledge", apperrors.ErrInvalidTransition)
	}
	c.pending = nil
	c.form = Form{}
	return c.moveTo(a.Kind, Home), nil
}

// logout clears the session before exiting.
func (c *Controller) logout(_ context.Context, a Action) (Outcome, error) {
	c.session.Logout()
	c.exited = true

	out := c.stay(a.Kind)
	out.Exit = true
	out.Notice = loggedOutNotice()
	c.noticeRaised(out.Notice)
	return out, nil
}

func (c *Controller) stay(kind ActionKind) Outcome {
	return Outcome{Action: kind, From: c.view, View: c.view}
}

func (c *Controller) moveTo(kind ActionKind, to View) Outcome {
	out := Outcome{Action: kind, From: c.view, View: to, Changed: c.view != to}
	c.view = to
	return out
}

func (c *Controller) noticeRaised(n *Notice) {
	if c.observer != nil {
		c.observer.ObserveNotice(string(n.Kind))
	}
}
