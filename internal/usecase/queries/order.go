package queries

import (
	"context"
	"sort"
	"time"

	"coffeebot/internal/domain/order"
	"coffeebot/internal/infra/ledger"
	"coffeebot/internal/pkg/clock"
	"coffeebot/internal/pkg/config"
	"coffeebot/internal/pkg/errs"
)

var ErrStoreUnavailable = errs.New("ledger store unavailable")

type SlotStatus struct {
	Slot      order.Slot
	Count     int
	Limit     int
	Remaining int
}

type DayStatusView struct {
	DayKey string
	Slots  []SlotStatus
}

type OrderListItem struct {
	ID          string
	DisplayName string
	Slot        order.Slot
	CoffeeType  string
	Size        string
	Milk        string
	Sugar       string
	Notes       string
	CreatedAt   time.Time
	Ordinal     int
}

type OrderQueries interface {
	// DayStatus reports both slots' consumption for the current day.
	DayStatus(ctx context.Context) (*DayStatusView, error)
	// TodayOrders lists the day's queue for the barista, AM before PM, in
	// admission order within each slot.
	TodayOrders(ctx context.Context) ([]*OrderListItem, error)
}

type orderQueriesImpl struct {
	store ledger.Store
	clock clock.Clock
	loc   *time.Location
	quota config.QuotaConfig
}

func NewOrderQueries(store ledger.Store, clk clock.Clock, cfg config.Config) OrderQueries {
	return &orderQueriesImpl{
		store: store,
		clock: clk,
		loc:   cfg.Quota.Location(),
		quota: cfg.Quota,
	}
}

func (q *orderQueriesImpl) DayStatus(ctx context.Context) (*DayStatusView, error) {
	dayKey := order.DayKey(q.clock.Now(), q.loc)

	view := &DayStatusView{DayKey: dayKey}
	for _, slot := range []order.Slot{order.SlotAM, order.SlotPM} {
		count, err := q.countSlot(ctx, dayKey, slot)
		if err != nil {
			return nil, err
		}
		limit := q.limitFor(slot)
		remaining := limit - count
		if remaining < 0 {
			remaining = 0
		}
		view.Slots = append(view.Slots, SlotStatus{
			Slot:      slot,
			Count:     count,
			Limit:     limit,
			Remaining: remaining,
		})
	}
	return view, nil
}

func (q *orderQueriesImpl) TodayOrders(ctx context.Context) ([]*OrderListItem, error) {
	dayKey := order.DayKey(q.clock.Now(), q.loc)

	var items []*OrderListItem
	for _, slot := range []order.Slot{order.SlotAM, order.SlotPM} {
		records, err := q.collectSlot(ctx, dayKey, slot)
		if err != nil {
			return nil, err
		}
		sort.Slice(records, func(i, j int) bool {
			return records[i].CreatedAt().Before(records[j].CreatedAt())
		})
		for i, rec := range records {
			item := rec.Item()
			items = append(items, &OrderListItem{
				ID:          rec.ID(),
				DisplayName: rec.Requester().DisplayName(),
				Slot:        rec.Slot(),
				CoffeeType:  item.CoffeeType(),
				Size:        item.Size(),
				Milk:        item.Milk(),
				Sugar:       item.Sugar(),
				Notes:       item.Notes(),
				CreatedAt:   rec.CreatedAt(),
				Ordinal:     i + 1,
			})
		}
	}
	return items, nil
}

func (q *orderQueriesImpl) countSlot(ctx context.Context, dayKey string, slot order.Slot) (int, error) {
	it, err := q.store.ListBySlot(ctx, dayKey, slot)
	if err != nil {
		return 0, errs.Mark(err, ErrStoreUnavailable)
	}
	defer it.Close()

	count := 0
	for it.Next() {
		count++
	}
	if err := it.Err(); err != nil {
		return 0, errs.Mark(err, ErrStoreUnavailable)
	}
	return count, nil
}

func (q *orderQueriesImpl) collectSlot(ctx context.Context, dayKey string, slot order.Slot) ([]*order.Record, error) {
	it, err := q.store.ListBySlot(ctx, dayKey, slot)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	defer it.Close()

	var records []*order.Record
	for it.Next() {
		records = append(records, it.Record())
	}
	if err := it.Err(); err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	return records, nil
}

func (q *orderQueriesImpl) limitFor(slot order.Slot) int {
	if slot == order.SlotAM {
		return q.quota.AM
	}
	return q.quota.PM
}
