package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"coffeebot/internal/domain/order"
	"coffeebot/internal/infra/ledger"
	"coffeebot/internal/infra/metrics"
	"coffeebot/internal/pkg/clock"
	"coffeebot/internal/pkg/config"
	"coffeebot/internal/pkg/errs"
	"coffeebot/internal/pkg/ident"
)

var (
	ErrInvalidRequest     = errs.New("invalid order request")
	ErrStoreUnavailable   = errs.New("ledger store unavailable")
	ErrPersistenceFailure = errs.New("failed to persist order")
)

// InvalidRequestError carries the missing field names for the corrective
// prompt. Always marked with ErrInvalidRequest.
type InvalidRequestError struct {
	Missing []string
}

func (e *InvalidRequestError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

type SubmitOrderParams struct {
	Slot        string
	CoffeeType  string
	Size        string
	Milk        string
	Sugar       string
	Notes       string
	RequesterID string
	DisplayName string
	Channel     string
}

// SubmitResult is the admission outcome. Exactly one of the two shapes is
// populated: Accepted carries the new record with its 1-based ordinal, a
// rejection carries the full slot's count and the sibling's remaining
// capacity (nil when that best-effort lookup failed).
type SubmitResult struct {
	Accepted bool

	Record  *order.Record
	Ordinal int

	Slot             order.Slot
	CurrentCount     int
	Limit            int
	Sibling          order.Slot
	SiblingRemaining *int
}

type OrderCommands interface {
	SubmitOrder(ctx context.Context, params SubmitOrderParams) (*SubmitResult, error)
}

type orderUseCaseImpl struct {
	store    ledger.Store
	notifier BaristaNotifier
	metrics  *metrics.Registry
	ident    ident.Generator
	clock    clock.Clock
	loc      *time.Location
	quota    config.QuotaConfig
}

func NewOrderCommands(
	store ledger.Store,
	notifier BaristaNotifier,
	registry *metrics.Registry,
	gen ident.Generator,
	clk clock.Clock,
	cfg config.Config,
) OrderCommands {
	return &orderUseCaseImpl{
		store:    store,
		notifier: notifier,
		metrics:  registry,
		ident:    gen,
		clock:    clk,
		loc:      cfg.Quota.Location(),
		quota:    cfg.Quota,
	}
}

// SubmitOrder runs the admission flow: validate, count the requested slot,
// admit or reject against the capacity, and record the admitted order.
//
// The quota is soft. The accept decision is a snapshot read of the current
// count with no lock or conditional write around it, so simultaneous
// submissions that read the same stale count can each be admitted; the slot
// may overshoot its limit by up to the number of concurrent racers minus one.
// That trade-off is deliberate: the ledger store offers no transactional
// guard, and availability is preferred over strict enforcement here.
func (u *orderUseCaseImpl) SubmitOrder(ctx context.Context, params SubmitOrderParams) (*SubmitResult, error) {
	slot, err := u.validate(params)
	if err != nil {
		u.metrics.InvalidRequest.Inc()
		return nil, err
	}

	dayKey := order.DayKey(u.clock.Now(), u.loc)
	limit := u.limitFor(slot)

	current, err := u.countSlot(ctx, dayKey, slot)
	if err != nil {
		u.metrics.StoreFailures.Inc()
		return nil, err
	}

	if current >= limit {
		return u.reject(ctx, dayKey, slot, current, limit), nil
	}

	rec, err := u.record(ctx, dayKey, slot, params)
	if err != nil {
		return nil, err
	}

	ordinal := current + 1
	if err := u.notifier.OrderAccepted(ctx, rec, ordinal, limit); err != nil {
		// Notification is best-effort; the order is already durable.
		u.metrics.NotifyFailures.Inc()
		slog.Warn("failed to notify barista", "order_id", rec.ID(), "error", err)
	}

	u.metrics.Accepted.WithLabelValues(slot.String()).Inc()
	return &SubmitResult{
		Accepted: true,
		Record:   rec,
		Ordinal:  ordinal,
		Slot:     slot,
		Limit:    limit,
	}, nil
}

// validate rejects malformed requests before any store access.
func (u *orderUseCaseImpl) validate(params SubmitOrderParams) (order.Slot, error) {
	var missing []string
	if strings.TrimSpace(params.CoffeeType) == "" {
		missing = append(missing, "coffeeType")
	}
	if strings.TrimSpace(params.Size) == "" {
		missing = append(missing, "size")
	}
	if strings.TrimSpace(params.RequesterID) == "" {
		missing = append(missing, "requesterId")
	}
	slot, ok := order.ParseSlot(params.Slot)
	if !ok {
		missing = append(missing, "slot")
	}
	if len(missing) > 0 {
		return "", errs.Mark(&InvalidRequestError{Missing: missing}, ErrInvalidRequest)
	}
	return slot, nil
}

// countSlot exhausts the store's lazy sequence for (dayKey, slot). A failed
// read is never treated as count zero: under-counting would over-admit.
func (u *orderUseCaseImpl) countSlot(ctx context.Context, dayKey string, slot order.Slot) (int, error) {
	it, err := u.store.ListBySlot(ctx, dayKey, slot)
	if err != nil {
		return 0, errs.Mark(err, ErrStoreUnavailable)
	}
	defer func() {
		if closeErr := it.Close(); closeErr != nil {
			slog.Warn("failed to close ledger iterator", "error", closeErr)
		}
	}()

	count := 0
	for it.Next() {
		count++
	}
	if err := it.Err(); err != nil {
		return 0, errs.Mark(err, ErrStoreUnavailable)
	}
	return count, nil
}

// reject builds the rejection outcome, including the sibling slot's remaining
// capacity. The extra read is best-effort: on failure the rejection still
// stands with SiblingRemaining unknown.
func (u *orderUseCaseImpl) reject(ctx context.Context, dayKey string, slot order.Slot, current, limit int) *SubmitResult {
	u.metrics.Rejected.WithLabelValues(slot.String()).Inc()

	result := &SubmitResult{
		Slot:         slot,
		CurrentCount: current,
		Limit:        limit,
		Sibling:      slot.Sibling(),
	}

	siblingCount, err := u.countSlot(ctx, dayKey, result.Sibling)
	if err != nil {
		slog.Warn("sibling slot lookup failed during rejection", "day_key", dayKey, "slot", result.Sibling, "error", err)
		return result
	}

	remaining := u.limitFor(result.Sibling) - siblingCount
	if remaining < 0 {
		remaining = 0
	}
	result.SiblingRemaining = &remaining
	return result
}

// record constructs the immutable record and appends it with a single
// create-if-not-exists write. On failure no record exists, so the requester
// can safely retry.
func (u *orderUseCaseImpl) record(ctx context.Context, dayKey string, slot order.Slot, params SubmitOrderParams) (*order.Record, error) {
	id, err := u.ident.NewID()
	if err != nil {
		u.metrics.StoreFailures.Inc()
		return nil, errs.Mark(err, ErrPersistenceFailure)
	}

	rec, err := order.NewRecord(
		id,
		dayKey,
		slot,
		order.NewRequester(params.RequesterID, params.DisplayName),
		order.NewItem(params.CoffeeType, params.Size, params.Milk, params.Sugar, params.Notes),
		u.clock.Now().UTC(),
		params.Channel,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRequest)
	}

	if err := u.store.Create(ctx, rec); err != nil {
		u.metrics.StoreFailures.Inc()
		return nil, errs.Mark(err, ErrPersistenceFailure)
	}
	return rec, nil
}

func (u *orderUseCaseImpl) limitFor(slot order.Slot) int {
	if slot == order.SlotAM {
		return u.quota.AM
	}
	return u.quota.PM
}
