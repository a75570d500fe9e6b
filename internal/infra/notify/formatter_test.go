//go:build unit

package notify_test

import (
	"testing"
	"time"

	"coffeebot/internal/domain/order"
	"coffeebot/internal/infra/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFormatter(t *testing.T) *notify.Formatter {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return notify.NewFormatter(loc)
}

func testRecord(t *testing.T, slot order.Slot, item order.Item) *order.Record {
	t.Helper()
	rec, err := order.NewRecord(
		"rec-1", "20240315", slot,
		order.NewRequester("user-1", "Dana"),
		item,
		// 13:30 UTC is 9:30 AM in New York during DST.
		time.Date(2024, 3, 15, 13, 30, 0, 0, time.UTC),
		"channel-1",
	)
	require.NoError(t, err)
	return rec
}

func TestFormatter_Confirmation(t *testing.T) {
	f := newTestFormatter(t)

	t.Run("includes modifiers, notes and queue position", func(t *testing.T) {
		rec := testRecord(t, order.SlotAM, order.NewItem("Latte", "Grande", "Oat", "2", "extra hot"))

		got := f.Confirmation(rec, 2, 5)

		assert.Contains(t, got, "**Grande Latte** with Oat milk, 2 sugar")
		assert.Contains(t, got, "before 12:00 PM")
		assert.Contains(t, got, "#2 of 5 (AM slot)")
		assert.Contains(t, got, "extra hot")
	})

	t.Run("omits default modifiers and empty notes", func(t *testing.T) {
		rec := testRecord(t, order.SlotPM, order.NewItem("Espresso", "Short", "", "", ""))

		got := f.Confirmation(rec, 1, 3)

		assert.Contains(t, got, "**Short Espresso**\n")
		assert.NotContains(t, got, "milk")
		assert.NotContains(t, got, "sugar")
		assert.NotContains(t, got, "Notes")
		assert.Contains(t, got, "after 12:00 PM")
	})
}

func TestFormatter_Rejection(t *testing.T) {
	f := newTestFormatter(t)
	remaining := func(n int) *int { return &n }

	tests := []struct {
		name             string
		siblingRemaining *int
		want             string
	}{
		{
			name:             "sibling has capacity",
			siblingRemaining: remaining(3),
			want:             "😔 Sorry, the **AM** quota is full (5/5). The **PM** window has 3 spots left.",
		},
		{
			name:             "sibling also full",
			siblingRemaining: remaining(0),
			want:             "😔 Sorry, the **AM** quota is full (5/5). The **PM** window is also full.",
		},
		{
			name:             "sibling status unknown",
			siblingRemaining: nil,
			want:             "😔 Sorry, the **AM** quota is full (5/5). The **PM** window status is unknown right now.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Rejection(order.SlotAM, 5, 5, tt.siblingRemaining)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatter_Barista(t *testing.T) {
	f := newTestFormatter(t)
	rec := testRecord(t, order.SlotAM, order.NewItem("Cappuccino", "Tall", "Whole", "1", ""))

	got := f.Barista(rec, 3, 5)

	assert.Contains(t, got, "(#3/5 - AM slot)")
	assert.Contains(t, got, "**Customer:** Dana")
	assert.Contains(t, got, "Tall Cappuccino with Whole milk, 1 sugar")
	assert.Contains(t, got, "9:30 AM")
	assert.Contains(t, got, "**Remaining AM slots:** 2")
	assert.NotContains(t, got, "Notes")
}

func TestFormatter_Help(t *testing.T) {
	f := newTestFormatter(t)

	got := f.Help(5, 4)

	assert.Contains(t, got, "AM (5), PM (4)")
}
