// Package ledger holds the durable record store behind the quota: an
// append-only, partition-queryable store keyed by (dayKey, id). The contract
// is deliberately small so that backends without aggregate counts or
// transactions (the production stores here) can satisfy it: listing is a lazy
// iterator that the read side exhausts to a count, and the only write is a
// single-record create-if-not-exists.
package ledger

import (
	"context"

	"coffeebot/internal/domain/order"
)

// Iterator is a lazy, finite sequence of records. Callers must Close it and
// check Err after Next returns false; a mid-stream failure surfaces there.
type Iterator interface {
	Next() bool
	Record() *order.Record
	Err() error
	Close() error
}

type Store interface {
	// ListBySlot streams every record with the exact (dayKey, slot) pair.
	ListBySlot(ctx context.Context, dayKey string, slot order.Slot) (Iterator, error)

	// Create appends one record keyed by (dayKey, id). Returns a
	// DUPLICATE_KEY repository error if the key already exists; the write of
	// a single record is atomic in every backend.
	Create(ctx context.Context, rec *order.Record) error

	// Ensure provisions the backing table/keyspace. Idempotent; called once
	// at startup, never from the request path.
	Ensure(ctx context.Context) error
}

// sliceIterator adapts an already-materialized result set to the Iterator
// contract. Used by the in-memory backend and by backends that buffer.
type sliceIterator struct {
	records []*order.Record
	pos     int
	err     error
}

func newSliceIterator(records []*order.Record) *sliceIterator {
	return &sliceIterator{records: records, pos: -1}
}

func (it *sliceIterator) Next() bool {
	if it.pos+1 >= len(it.records) {
		return false
	}
	it.pos++
	return true
}

func (it *sliceIterator) Record() *order.Record {
	if it.pos < 0 || it.pos >= len(it.records) {
		return nil
	}
	return it.records[it.pos]
}

func (it *sliceIterator) Err() error   { return it.err }
func (it *sliceIterator) Close() error { return nil }
