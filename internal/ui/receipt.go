package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"turfzone/internal/booking"
)

// ReceiptMarkdown is the confirmation receipt before rendering.
func ReceiptMarkdown(c booking.Confirmation) string {
	var b strings.Builder
	b.WriteString("# BOOKING SUCCESS!\n\n")
	fmt.Fprintf(&b, "- **Confirmation ID:** %s\n", c.ID)
	fmt.Fprintf(&b, "- **Turf:** %s\n", c.TurfName)
	fmt.Fprintf(&b, "- **When:** %s\n", c.When())
	fmt.Fprintf(&b, "- **Booked by user:** %d\n", c.UserID)
	return b.String()
}

// RenderReceipt renders the receipt with glamour, falling back to the raw
// markdown when no renderer can be built.
func RenderReceipt(c booking.Confirmation, style string) string {
	md := ReceiptMarkdown(c)
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(60)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}
