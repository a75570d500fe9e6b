//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"coffeebot/internal/domain/order"
	"coffeebot/internal/infra/ledger"
	"coffeebot/internal/pkg/clock"
	"coffeebot/internal/pkg/config"
	"coffeebot/internal/pkg/errs"
	"coffeebot/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRecord(t *testing.T, store *ledger.MemoryStore, id, dayKey string, slot order.Slot, createdAt time.Time) {
	t.Helper()
	rec, err := order.NewRecord(
		id, dayKey, slot,
		order.NewRequester("user-"+id, "User "+id),
		order.NewItem("Latte", "Tall", "", "", ""),
		createdAt, "channel-1",
	)
	require.NoError(t, err)
	require.NoError(t, store.Create(context.Background(), rec))
}

func newQueries(store *ledger.MemoryStore, now time.Time) queries.OrderQueries {
	cfg := config.Config{Quota: config.QuotaConfig{AM: 3, PM: 2, TimeZone: "UTC"}}
	return queries.NewOrderQueries(store, clock.NewMockClock(now), cfg)
}

func TestDayStatus(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	store := ledger.NewMemoryStore()
	seedRecord(t, store, "a1", "20240315", order.SlotAM, now)
	seedRecord(t, store, "a2", "20240315", order.SlotAM, now)
	seedRecord(t, store, "p1", "20240315", order.SlotPM, now)
	// other day and other slot must not leak into the counts
	seedRecord(t, store, "x1", "20240314", order.SlotAM, now.Add(-24*time.Hour))

	view, err := newQueries(store, now).DayStatus(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "20240315", view.DayKey)
	require.Len(t, view.Slots, 2)

	am := view.Slots[0]
	assert.Equal(t, order.SlotAM, am.Slot)
	assert.Equal(t, 2, am.Count)
	assert.Equal(t, 3, am.Limit)
	assert.Equal(t, 1, am.Remaining)

	pm := view.Slots[1]
	assert.Equal(t, order.SlotPM, pm.Slot)
	assert.Equal(t, 1, pm.Count)
	assert.Equal(t, 2, pm.Limit)
	assert.Equal(t, 1, pm.Remaining)
}

func TestDayStatus_StoreUnavailable(t *testing.T) {
	store := ledger.NewMemoryStore()
	store.ListErr = errs.New("store timeout")

	_, err := newQueries(store, time.Now()).DayStatus(context.Background())
	assert.ErrorIs(t, err, queries.ErrStoreUnavailable)
}

func TestTodayOrders(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	store := ledger.NewMemoryStore()
	seedRecord(t, store, "p1", "20240315", order.SlotPM, now.Add(2*time.Minute))
	seedRecord(t, store, "a2", "20240315", order.SlotAM, now.Add(1*time.Minute))
	seedRecord(t, store, "a1", "20240315", order.SlotAM, now)

	items, err := newQueries(store, now).TodayOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)

	// AM before PM, admission order within the slot, 1-based ordinals
	assert.Equal(t, "a1", items[0].ID)
	assert.Equal(t, 1, items[0].Ordinal)
	assert.Equal(t, "a2", items[1].ID)
	assert.Equal(t, 2, items[1].Ordinal)
	assert.Equal(t, "p1", items[2].ID)
	assert.Equal(t, order.SlotPM, items[2].Slot)
	assert.Equal(t, 1, items[2].Ordinal)
}
