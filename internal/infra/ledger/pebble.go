package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"coffeebot/internal/domain/order"
	"coffeebot/internal/infra"

	"github.com/cockroachdb/pebble"
)

// PebbleStore is the embedded single-node ledger backend. Records live under
// o/<dayKey>/<slot>/<id> with JSON values, so a slot count is one bounded
// prefix scan and the store stays append-only: keys are written once and
// never updated.
type PebbleStore struct {
	db *pebble.DB
}

type pebbleRecord struct {
	ID          string    `json:"id"`
	DayKey      string    `json:"dayKey"`
	RequesterID string    `json:"requesterId"`
	DisplayName string    `json:"displayName"`
	Slot        string    `json:"slot"`
	CoffeeType  string    `json:"coffeeType"`
	Size        string    `json:"size"`
	Milk        string    `json:"milk"`
	Sugar       string    `json:"sugar"`
	Notes       string    `json:"notes"`
	Channel     string    `json:"channel"`
	CreatedAt   time.Time `json:"createdAtUtc"`
}

func NewPebbleStore(dir string) (*PebbleStore, func(), error) {
	db, err := pebble.Open(filepath.Clean(dir), &pebble.Options{})
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to open pebble ledger", err, infra.KindUnavailable)
	}
	cleanup := func() { _ = db.Close() }
	return &PebbleStore{db: db}, cleanup, nil
}

func (s *PebbleStore) Ensure(_ context.Context) error {
	// Opening the database provisions the keyspace; nothing further to do.
	return nil
}

func recordKey(dayKey string, slot order.Slot, id string) []byte {
	return []byte(fmt.Sprintf("o/%s/%s/%s", dayKey, slot, id))
}

func slotPrefix(dayKey string, slot order.Slot) []byte {
	return []byte(fmt.Sprintf("o/%s/%s/", dayKey, slot))
}

// prefixUpperBound returns the smallest key greater than every key with the
// given prefix.
func prefixUpperBound(prefix []byte) []byte {
	upper := append([]byte(nil), prefix...)
	for i := len(upper) - 1; i >= 0; i-- {
		if upper[i] < 0xff {
			upper[i]++
			return upper[:i+1]
		}
	}
	return nil
}

func (s *PebbleStore) ListBySlot(_ context.Context, dayKey string, slot order.Slot) (Iterator, error) {
	prefix := slotPrefix(dayKey, slot)
	it, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: prefixUpperBound(prefix),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to open pebble iterator", err, infra.KindUnavailable)
	}
	return &pebbleIterator{it: it, started: false}, nil
}

func (s *PebbleStore) Create(_ context.Context, rec *order.Record) error {
	key := recordKey(rec.DayKey(), rec.Slot(), rec.ID())

	_, closer, err := s.db.Get(key)
	if err == nil {
		_ = closer.Close()
		return infra.WrapRepoErr("order record already exists", nil, infra.KindDuplicateKey)
	}
	if err != pebble.ErrNotFound {
		return infra.WrapRepoErr("failed to check order record", err)
	}

	val, err := json.Marshal(pebbleRecord{
		ID:          rec.ID(),
		DayKey:      rec.DayKey(),
		RequesterID: rec.Requester().ID(),
		DisplayName: rec.Requester().DisplayName(),
		Slot:        rec.Slot().String(),
		CoffeeType:  rec.Item().CoffeeType(),
		Size:        rec.Item().Size(),
		Milk:        rec.Item().Milk(),
		Sugar:       rec.Item().Sugar(),
		Notes:       rec.Item().Notes(),
		Channel:     rec.Channel(),
		CreatedAt:   rec.CreatedAt(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to encode order record", err)
	}

	if err := s.db.Set(key, val, pebble.Sync); err != nil {
		return infra.WrapRepoErr("failed to write order record", err)
	}
	return nil
}

type pebbleIterator struct {
	it      *pebble.Iterator
	started bool
	current *order.Record
	err     error
}

func (it *pebbleIterator) Next() bool {
	if it.err != nil {
		return false
	}

	var valid bool
	if !it.started {
		valid = it.it.First()
		it.started = true
	} else {
		valid = it.it.Next()
	}
	if !valid {
		if err := it.it.Error(); err != nil {
			it.err = infra.WrapRepoErr("failed to scan pebble ledger", err, infra.KindUnavailable)
		}
		return false
	}

	var pr pebbleRecord
	if err := json.Unmarshal(it.it.Value(), &pr); err != nil {
		it.err = infra.WrapRepoErr("failed to decode order record", err)
		return false
	}

	it.current = order.ReconstructRecord(
		pr.ID, pr.DayKey, order.Slot(pr.Slot),
		order.NewRequester(pr.RequesterID, pr.DisplayName),
		order.NewItem(pr.CoffeeType, pr.Size, pr.Milk, pr.Sugar, pr.Notes),
		pr.CreatedAt, pr.Channel,
	)
	return true
}

func (it *pebbleIterator) Record() *order.Record { return it.current }
func (it *pebbleIterator) Err() error            { return it.err }
func (it *pebbleIterator) Close() error          { return it.it.Close() }
