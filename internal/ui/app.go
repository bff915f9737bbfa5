package ui

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"turfzone/internal/controller"
	"turfzone/internal/turf"
)

const appTitle = "TurfZone - Explore & Book"

// listingMsg carries a finished lookup back onto the UI loop.
type listingMsg struct {
	listing turf.Listing
}

// AppOptions configures the terminal UI.
type AppOptions struct {
	Categories   []string
	Category     string
	// ReceiptStyle is a glamour standard style name. Empty picks one from
	// the terminal background.
	ReceiptStyle string
	Logger       *slog.Logger
}

// AppModel renders the controller's current view and turns key presses
// into controller actions.
type AppModel struct {
	ctx        context.Context
	ctrl       *controller.Controller
	logger     *slog.Logger
	categories []string
	catIdx     int
	loading    bool

	turfs   list.Model
	form    bookingForm
	help    help.Model
	notice  *controller.Notice
	receipt string
	style   string

	width  int
	height int
}

func NewAppModel(ctx context.Context, ctrl *controller.Controller, opts AppOptions) AppModel {
	categories := opts.Categories
	if len(categories) == 0 {
		categories = []string{turf.DefaultCategory}
	}
	idx := 0
	for i, c := range categories {
		if c == opts.Category {
			idx = i
		}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return AppModel{
		ctx:        ctx,
		ctrl:       ctrl,
		logger:     logger,
		categories: categories,
		catIdx:     idx,
		loading:    true,
		turfs:      newTurfList(),
		help:       help.New(),
		style:      opts.ReceiptStyle,
	}
}

func (m AppModel) Category() string {
	return m.categories[m.catIdx]
}

func (m AppModel) Init() tea.Cmd {
	return m.lookupCmd(m.Category())
}

// lookupCmd queries off the UI loop; only the service is touched.
func (m AppModel) lookupCmd(category string) tea.Cmd {
	ctrl, ctx := m.ctrl, m.ctx
	return func() tea.Msg {
		return listingMsg{listing: ctrl.Lookup(ctx, category)}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.turfs.SetSize(msg.Width, max(msg.Height-8, 4))
		return m, nil

	case listingMsg:
		if msg.listing.Category != m.Category() {
			// A newer tab switch is in flight.
			return m, nil
		}
		m.loading = false
		out := m.ctrl.ShowListing(msg.listing)
		m.notice = out.Notice
		m.turfs.Title = msg.listing.Title()
		cmd := m.turfs.SetItems(turfItems(msg.listing.Turfs))
		m.turfs.ResetSelected()
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.ctrl.View() == controller.Booking {
			return m.updateBooking(msg)
		}
		return m.updateHome(msg)
	}

	if m.ctrl.View() == controller.Booking {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.turfs, cmd = m.turfs.Update(msg)
	return m, cmd
}

func (m AppModel) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, homeKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, homeKeys.NextTab):
		return m.switchCategory(1)

	case key.Matches(msg, homeKeys.PrevTab):
		return m.switchCategory(-1)

	case key.Matches(msg, homeKeys.Book):
		item, ok := m.turfs.SelectedItem().(turfItem)
		if !ok {
			return m, nil
		}
		out, err := m.ctrl.Dispatch(m.ctx, controller.BookNow(item.turf.Name))
		if err != nil {
			m.logger.Debug("Action rejected", "action", controller.ActionBookNow, "error", err)
			return m, nil
		}
		m.notice = out.Notice
		if out.View == controller.Booking {
			m.form = newBookingForm(m.ctrl.Form())
		}
		return m, nil

	case key.Matches(msg, homeKeys.Logout):
		out, err := m.ctrl.Dispatch(m.ctx, controller.Logout())
		if err != nil {
			m.logger.Debug("Action rejected", "action", controller.ActionLogout, "error", err)
			return m, nil
		}
		m.notice = out.Notice
		if out.Exit {
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.turfs, cmd = m.turfs.Update(msg)
	return m, cmd
}

func (m AppModel) switchCategory(delta int) (tea.Model, tea.Cmd) {
	n := len(m.categories)
	m.catIdx = (m.catIdx + delta + n) % n
	m.loading = true
	m.notice = nil
	return m, m.lookupCmd(m.Category())
}

func (m AppModel) updateBooking(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ctrl.Pending() != nil {
		if _, err := m.ctrl.Dispatch(m.ctx, controller.Acknowledge()); err != nil {
			m.logger.Debug("Action rejected", "action", controller.ActionAcknowledge, "error", err)
		}
		m.receipt = ""
		m.notice = nil
		return m, nil
	}

	switch {
	case key.Matches(msg, bookingKeys.Cancel):
		if _, err := m.ctrl.Dispatch(m.ctx, controller.Cancel()); err != nil {
			m.logger.Debug("Action rejected", "action", controller.ActionCancel, "error", err)
		}
		m.notice = nil
		return m, nil

	case key.Matches(msg, bookingKeys.Submit):
		out, err := m.ctrl.Dispatch(m.ctx, controller.Confirm(m.form.Request()))
		if err != nil {
			m.logger.Debug("Action rejected", "action", controller.ActionConfirm, "error", err)
			return m, nil
		}
		m.notice = out.Notice
		if out.Confirmation != nil {
			m.receipt = RenderReceipt(*out.Confirmation, m.style)
		}
		return m, nil

	case key.Matches(msg, bookingKeys.Next):
		m.form = m.form.move(1)
		return m, nil

	case key.Matches(msg, bookingKeys.Prev):
		m.form = m.form.move(-1)
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m AppModel) View() string {
	if m.ctrl.Exited() {
		if m.notice != nil {
			return m.notice.Message + "\n"
		}
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(appTitle))
	b.WriteString("\n\n")

	switch {
	case m.ctrl.Pending() != nil:
		b.WriteString(m.receipt)
		b.WriteString(mutedStyle.Render("Press any key to return home.") + "\n")
	case m.ctrl.View() == controller.Booking:
		b.WriteString(m.form.View())
		b.WriteString(helpStyle.Render(m.help.View(bookingKeys)))
	default:
		b.WriteString(m.tabsView())
		b.WriteString("\n\n")
		b.WriteString(m.homeBody())
		b.WriteString(helpStyle.Render(m.help.View(homeKeys)))
	}

	if m.notice != nil {
		b.WriteString("\n")
		b.WriteString(m.noticeView())
	}
	return b.String()
}

func (m AppModel) tabsView() string {
	tabs := make([]string, 0, len(m.categories))
	for i, c := range m.categories {
		if i == m.catIdx {
			tabs = append(tabs, activeTabStyle.Render(c))
		} else {
			tabs = append(tabs, tabStyle.Render(c))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m AppModel) homeBody() string {
	listing := m.ctrl.Listing()
	switch {
	case m.loading:
		return mutedStyle.Render("Loading "+m.Category()+" turfs...") + "\n"
	case listing.Failed(), listing.Empty():
		// A failed lookup reads as empty; the status line carries the error.
		return sectionTitleStyle.Render(listing.Title()) + "\n" + mutedStyle.Render(listing.NoResultsText()) + "\n"
	}
	return m.turfs.View() + "\n"
}

func (m AppModel) noticeView() string {
	style := noticeStyle
	if m.notice.Kind == controller.NoticeLookupFailed {
		style = errorNoticeStyle
	}
	return style.Render(m.notice.String())
}

// RunApp runs the terminal UI until the user quits or logs out.
func RunApp(m AppModel, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(m, opts...)
	_, err := p.Run()
	return err
}
