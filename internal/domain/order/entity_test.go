//go:build unit

package order_test

import (
	"testing"
	"time"

	"coffeebot/internal/domain/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecordArgs() (string, string, order.Slot, order.Requester, order.Item, time.Time, string) {
	return "rec-0001",
		"20240315",
		order.SlotAM,
		order.NewRequester("user-1", "Dana"),
		order.NewItem("Latte", "Grande", "Oat", "2", "extra hot"),
		time.Date(2024, 3, 15, 13, 0, 0, 0, time.UTC),
		"channel-1"
}

func TestNewRecord(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		id, dayKey, slot, requester, item, createdAt, channel := validRecordArgs()
		rec, err := order.NewRecord(id, dayKey, slot, requester, item, createdAt, channel)
		require.NoError(t, err)

		assert.Equal(t, "rec-0001", rec.ID())
		assert.Equal(t, "20240315", rec.DayKey())
		assert.Equal(t, order.SlotAM, rec.Slot())
		assert.Equal(t, "Dana", rec.Requester().DisplayName())
		assert.Equal(t, "Latte", rec.Item().CoffeeType())
		assert.Equal(t, createdAt, rec.CreatedAt())
		assert.Equal(t, "channel-1", rec.Channel())
	})

	t.Run("validation", func(t *testing.T) {
		testCases := []struct {
			name   string
			mutate func(*string, *string, *order.Slot, *order.Requester, *order.Item)
			errIs  error
		}{
			{
				name:   "missing id",
				mutate: func(id *string, _ *string, _ *order.Slot, _ *order.Requester, _ *order.Item) { *id = "" },
				errIs:  order.ErrMissingID,
			},
			{
				name:   "missing day key",
				mutate: func(_ *string, dk *string, _ *order.Slot, _ *order.Requester, _ *order.Item) { *dk = "" },
				errIs:  order.ErrMissingDayKey,
			},
			{
				name: "invalid slot",
				mutate: func(_ *string, _ *string, slot *order.Slot, _ *order.Requester, _ *order.Item) {
					*slot = order.Slot("EVENING")
				},
				errIs: order.ErrInvalidSlot,
			},
			{
				name: "missing coffee type",
				mutate: func(_ *string, _ *string, _ *order.Slot, _ *order.Requester, item *order.Item) {
					*item = order.NewItem("", "Grande", "", "", "")
				},
				errIs: order.ErrMissingCoffeeType,
			},
			{
				name: "missing size",
				mutate: func(_ *string, _ *string, _ *order.Slot, _ *order.Requester, item *order.Item) {
					*item = order.NewItem("Latte", "", "", "", "")
				},
				errIs: order.ErrMissingSize,
			},
			{
				name: "missing requester id",
				mutate: func(_ *string, _ *string, _ *order.Slot, req *order.Requester, _ *order.Item) {
					*req = order.NewRequester("", "Dana")
				},
				errIs: order.ErrMissingRequesterID,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				id, dayKey, slot, requester, item, createdAt, channel := validRecordArgs()
				tc.mutate(&id, &dayKey, &slot, &requester, &item)

				_, err := order.NewRecord(id, dayKey, slot, requester, item, createdAt, channel)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})

	t.Run("created at is normalized to UTC", func(t *testing.T) {
		loc, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)

		id, dayKey, slot, requester, item, _, channel := validRecordArgs()
		local := time.Date(2024, 3, 15, 9, 0, 0, 0, loc)
		rec, err := order.NewRecord(id, dayKey, slot, requester, item, local, channel)
		require.NoError(t, err)

		assert.Equal(t, time.UTC, rec.CreatedAt().Location())
		assert.True(t, rec.CreatedAt().Equal(local))
	})
}

func TestItemDefaults(t *testing.T) {
	item := order.NewItem("Latte", "Tall", "", "", "  ")
	assert.Equal(t, order.DefaultMilk, item.Milk())
	assert.Equal(t, order.DefaultSugar, item.Sugar())
	assert.Equal(t, "", item.Notes())
	assert.False(t, item.HasMilk())
	assert.False(t, item.HasSugar())

	custom := order.NewItem("Latte", "Tall", "Oat", "2", "decaf please")
	assert.True(t, custom.HasMilk())
	assert.True(t, custom.HasSugar())
	assert.Equal(t, "decaf please", custom.Notes())
}

func TestSlot(t *testing.T) {
	assert.Equal(t, order.SlotPM, order.SlotAM.Sibling())
	assert.Equal(t, order.SlotAM, order.SlotPM.Sibling())

	slot, ok := order.ParseSlot("AM")
	assert.True(t, ok)
	assert.Equal(t, order.SlotAM, slot)

	_, ok = order.ParseSlot("am")
	assert.False(t, ok)

	_, ok = order.ParseSlot("")
	assert.False(t, ok)
}
