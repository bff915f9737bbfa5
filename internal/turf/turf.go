package turf

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultCategory is looked up when the application starts.
const DefaultCategory = "Football"

// Turf is one bookable venue as stored in the turfs table.
type Turf struct {
	ID             int64           `db:"id" json:"id"`
	Name           string          `db:"name" json:"name"`
	Address        string          `db:"address" json:"address"`
	PricePerHour   decimal.Decimal `db:"hourly_rate" json:"price_per_hour"`
	OperatingHours string          `db:"operating_hours" json:"operating_hours"`
	Category       string          `db:"category" json:"category"`
}

// PriceLabel formats the hourly price the way the listing shows it.
func (t Turf) PriceLabel() string {
	return fmt.Sprintf("Price: ₹%s/hour", t.PricePerHour.StringFixed(2))
}

// HoursLabel formats the operating hours line.
func (t Turf) HoursLabel() string {
	return "Hours: " + t.OperatingHours
}

// Repository is the read side of the turf store.
type Repository interface {
	ListByCategory(ctx context.Context, category string) ([]Turf, error)
}

// Listing is the outcome of a single lookup. Err carries a soft failure;
// Turfs is empty whenever Err is set.
type Listing struct {
	Category string `json:"category"`
	Turfs    []Turf `json:"turfs"`
	Err      error  `json:"-"`
}

func (l Listing) Empty() bool {
	return len(l.Turfs) == 0
}

func (l Listing) Failed() bool {
	return l.Err != nil
}

// Title is the heading shown above a non-empty listing.
func (l Listing) Title() string {
	return l.Category + " Turfs"
}

// NoResultsText is shown instead of cards when nothing matched.
func (l Listing) NoResultsText() string {
	return "No " + l.Category + " turfs found."
}
