package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"turfzone/internal/turf"
)

// turfItem implements list.Item for the Home turf list
type turfItem struct {
	turf turf.Turf
}

func (i turfItem) FilterValue() string { return i.turf.Name }
func (i turfItem) Title() string       { return i.turf.Name }
func (i turfItem) Description() string {
	return i.turf.Address + " · " + i.turf.HoursLabel() + " · " + i.turf.PriceLabel()
}

func turfItems(turfs []turf.Turf) []list.Item {
	items := make([]list.Item, 0, len(turfs))
	for _, t := range turfs {
		items = append(items, turfItem{turf: t})
	}
	return items
}

func newTurfList() list.Model {
	l := list.New(nil, list.NewDefaultDelegate(), 80, 20)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = sectionTitleStyle
	return l
}

// RenderCard draws one turf the way the Home view does.
func RenderCard(t turf.Turf) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render(t.Name),
		cardTextStyle.Render(t.Address),
		cardTextStyle.Render(t.HoursLabel()),
		priceStyle.Render(t.PriceLabel()),
	)
	return cardStyle.Render(body)
}

// RenderListing draws a whole lookup result: the heading and one card per
// turf, or the empty-category text, preceded by the failure message when
// the lookup failed.
func RenderListing(l turf.Listing) string {
	var b strings.Builder
	b.WriteString(sectionTitleStyle.Render(l.Title()))
	b.WriteString("\n")

	switch {
	case l.Failed():
		b.WriteString(errorNoticeStyle.Render("Could not load " + l.Category + " turfs."))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(l.NoResultsText()))
		b.WriteString("\n")
	case l.Empty():
		b.WriteString(mutedStyle.Render(l.NoResultsText()))
		b.WriteString("\n")
	default:
		for _, t := range l.Turfs {
			b.WriteString(RenderCard(t))
			b.WriteString("\n")
		}
	}
	return b.String()
}
