package booking

import (
	"math/rand/v2"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource int

func (f fixedSource) IntN(n int) int { return int(f) % n }

var confirmationIDPattern = regexp.MustCompile(`^#[1-9][0-9]{3}$`)

func TestGenerator_Confirm(t *testing.T) {
	g := NewGenerator(nil)
	req := Request{TurfName: "Ground Zero Arena", Date: "2025-10-27", TimeSlot: "11:00 - 12:00 (11 AM)"}

	c := g.Confirm(req)

	assert.Regexp(t, confirmationIDPattern, c.ID)
	assert.Equal(t, "Ground Zero Arena", c.TurfName)
	assert.Equal(t, "2025-10-27", c.Date)
	assert.Equal(t, "10:00 - 11:00", c.TimeSlot, "slot selection is ignored")
	assert.Equal(t, 13, c.UserID)
	assert.Equal(t, "2025-10-27 @ 10:00 - 11:00", c.When())
}

func TestGenerator_PinnedSource(t *testing.T) {
	assert.Equal(t, "#1000", NewGenerator(fixedSource(0)).Confirm(Request{}).ID)
	assert.Equal(t, "#9999", NewGenerator(fixedSource(8999)).Confirm(Request{}).ID)
	assert.Equal(t, "#1042", NewGenerator(fixedSource(42)).Confirm(Request{}).ID)
}

func TestGenerator_IDRange(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewPCG(1, 2)))
	for i := 0; i < 2000; i++ {
		require.Regexp(t, confirmationIDPattern, g.Confirm(Request{}).ID)
	}
}

func TestGenerator_NotIdempotent(t *testing.T) {
	g := NewGenerator(nil)
	req := Request{TurfName: "Ground Zero Arena", Date: "2025-10-27", TimeSlot: "11:00 - 12:00 (11 AM)"}

	// A single collision is possible (1 in 9000); several in a row are not.
	differs := false
	for i := 0; i < 5 && !differs; i++ {
		differs = g.Confirm(req).ID != g.Confirm(req).ID
	}
	assert.True(t, differs)
}

func TestRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr string
	}{
		{"complete", Request{TurfName: "Champions Dome", Date: "tomorrow", TimeSlot: TimeSlotOptions[0]}, ""},
		{"free text date is accepted", Request{TurfName: "Champions Dome", Date: "not a date", TimeSlot: TimeSlotOptions[2]}, ""},
		{"missing turf", Request{Date: "2025-10-27", TimeSlot: TimeSlotOptions[0]}, "missing turf name"},
		{"blank date", Request{TurfName: "Champions Dome", Date: "   ", TimeSlot: TimeSlotOptions[0]}, "missing date"},
		{"everything missing", Request{}, "missing turf name, date, time slot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestToday(t *testing.T) {
	assert.Equal(t, "2025-10-27", Today(time.Date(2025, 10, 27, 18, 0, 0, 0, time.UTC)))
}
