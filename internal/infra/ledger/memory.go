package ledger

import (
	"context"
	"sort"
	"sync"

	"coffeebot/internal/domain/order"
	"coffeebot/internal/infra"
)

// MemoryStore is the in-process backend for tests and local development. It
// mirrors the production contract exactly, including duplicate-key rejection,
// and adds failure injection plus call counting so tests can assert the
// no-store-access and no-record-on-failure properties.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string][]*order.Record // keyed by dayKey + "/" + slot

	ListErr   error
	CreateErr error
	// FailSlot limits ListErr to one slot, for exercising the best-effort
	// sibling lookup; empty means ListErr applies to every slot.
	FailSlot order.Slot

	ListCalls   int
	CreateCalls int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]*order.Record)}
}

func (s *MemoryStore) Ensure(_ context.Context) error { return nil }

func (s *MemoryStore) ListBySlot(_ context.Context, dayKey string, slot order.Slot) (Iterator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ListCalls++

	if s.ListErr != nil && (s.FailSlot == "" || s.FailSlot == slot) {
		return nil, s.ListErr
	}

	bucket := s.records[dayKey+"/"+slot.String()]
	out := make([]*order.Record, len(bucket))
	copy(out, bucket)
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return newSliceIterator(out), nil
}

func (s *MemoryStore) Create(_ context.Context, rec *order.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.CreateCalls++

	if s.CreateErr != nil {
		return s.CreateErr
	}

	key := rec.DayKey() + "/" + rec.Slot().String()
	for _, existing := range s.records[key] {
		if existing.ID() == rec.ID() {
			return infra.WrapRepoErr("order record already exists", nil, infra.KindDuplicateKey)
		}
	}
	s.records[key] = append(s.records[key], rec)
	return nil
}

// Len reports the number of records held for a (dayKey, slot) pair.
func (s *MemoryStore) Len(dayKey string, slot order.Slot) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records[dayKey+"/"+slot.String()])
}
