//go:build unit

package ledger_test

import (
	"context"
	"testing"
	"time"

	"coffeebot/internal/domain/order"
	"coffeebot/internal/infra"
	"coffeebot/internal/infra/ledger"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordView projects a record's state for comparison; the entity itself
// keeps its fields unexported.
type recordView struct {
	ID          string
	DayKey      string
	Slot        string
	RequesterID string
	DisplayName string
	CoffeeType  string
	Size        string
	Milk        string
	Sugar       string
	Notes       string
	Channel     string
	CreatedAt   time.Time
}

func viewOf(rec *order.Record) recordView {
	item := rec.Item()
	return recordView{
		ID:          rec.ID(),
		DayKey:      rec.DayKey(),
		Slot:        rec.Slot().String(),
		RequesterID: rec.Requester().ID(),
		DisplayName: rec.Requester().DisplayName(),
		CoffeeType:  item.CoffeeType(),
		Size:        item.Size(),
		Milk:        item.Milk(),
		Sugar:       item.Sugar(),
		Notes:       item.Notes(),
		Channel:     rec.Channel(),
		CreatedAt:   rec.CreatedAt(),
	}
}

func makeRecord(t *testing.T, id, dayKey string, slot order.Slot) *order.Record {
	t.Helper()
	rec, err := order.NewRecord(
		id, dayKey, slot,
		order.NewRequester("user-1", "Dana"),
		order.NewItem("Latte", "Grande", "Oat", "2", "extra hot"),
		time.Date(2024, 3, 15, 13, 0, 0, 0, time.UTC),
		"channel-1",
	)
	require.NoError(t, err)
	return rec
}

func drain(t *testing.T, it ledger.Iterator) []*order.Record {
	t.Helper()
	defer func() { require.NoError(t, it.Close()) }()

	var out []*order.Record
	for it.Next() {
		out = append(out, it.Record())
	}
	require.NoError(t, it.Err())
	return out
}

// The store contract is identical across backends; run the same suite
// against each one that can live inside a test process.
func TestStoreContract(t *testing.T) {
	backends := map[string]func(t *testing.T) ledger.Store{
		"memory": func(_ *testing.T) ledger.Store {
			return ledger.NewMemoryStore()
		},
		"pebble": func(t *testing.T) ledger.Store {
			store, cleanup, err := ledger.NewPebbleStore(t.TempDir())
			require.NoError(t, err)
			t.Cleanup(cleanup)
			return store
		},
	}

	for name, newStore := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			t.Run("ensure is idempotent", func(t *testing.T) {
				store := newStore(t)
				require.NoError(t, store.Ensure(ctx))
				require.NoError(t, store.Ensure(ctx))
			})

			t.Run("create then list round-trips the record", func(t *testing.T) {
				store := newStore(t)
				require.NoError(t, store.Ensure(ctx))

				rec := makeRecord(t, "rec-1", "20240315", order.SlotAM)
				require.NoError(t, store.Create(ctx, rec))

				it, err := store.ListBySlot(ctx, "20240315", order.SlotAM)
				require.NoError(t, err)
				got := drain(t, it)
				require.Len(t, got, 1)

				if diff := cmp.Diff(viewOf(rec), viewOf(got[0])); diff != "" {
					t.Errorf("record mismatch (-want +got):\n%s", diff)
				}
			})

			t.Run("duplicate key is rejected", func(t *testing.T) {
				store := newStore(t)
				require.NoError(t, store.Ensure(ctx))

				rec := makeRecord(t, "rec-1", "20240315", order.SlotAM)
				require.NoError(t, store.Create(ctx, rec))

				err := store.Create(ctx, rec)
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
			})

			t.Run("listing is scoped to the exact day and slot", func(t *testing.T) {
				store := newStore(t)
				require.NoError(t, store.Ensure(ctx))

				require.NoError(t, store.Create(ctx, makeRecord(t, "am-1", "20240315", order.SlotAM)))
				require.NoError(t, store.Create(ctx, makeRecord(t, "am-2", "20240315", order.SlotAM)))
				require.NoError(t, store.Create(ctx, makeRecord(t, "pm-1", "20240315", order.SlotPM)))
				require.NoError(t, store.Create(ctx, makeRecord(t, "am-3", "20240316", order.SlotAM)))

				it, err := store.ListBySlot(ctx, "20240315", order.SlotAM)
				require.NoError(t, err)
				got := drain(t, it)

				require.Len(t, got, 2)
				for _, rec := range got {
					assert.Equal(t, "20240315", rec.DayKey())
					assert.Equal(t, order.SlotAM, rec.Slot())
				}
			})

			t.Run("empty slot lists nothing", func(t *testing.T) {
				store := newStore(t)
				require.NoError(t, store.Ensure(ctx))

				it, err := store.ListBySlot(ctx, "20240315", order.SlotPM)
				require.NoError(t, err)
				assert.Empty(t, drain(t, it))
			})
		})
	}
}
