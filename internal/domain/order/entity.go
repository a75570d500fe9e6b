package order

import (
	"errors"
	"time"
)

var (
	ErrMissingID          = errors.New("record id is required")
	ErrMissingDayKey      = errors.New("day key is required")
	ErrInvalidSlot        = errors.New("slot must be AM or PM")
	ErrMissingCoffeeType  = errors.New("coffee type is required")
	ErrMissingSize        = errors.New("size is required")
	ErrMissingRequesterID = errors.New("requester id is required")
)

// Record is one admitted reservation. Immutable after creation: the ledger
// holds exactly one record per admitted order and never updates it, so the
// count of records with a given (dayKey, slot) is the slot's consumed quota.
type Record struct {
	dayKey    string
	id        string
	requester Requester
	slot      Slot
	item      Item
	createdAt time.Time
	channel   string
}

func NewRecord(
	id string,
	dayKey string,
	slot Slot,
	requester Requester,
	item Item,
	createdAtUTC time.Time,
	channel string,
) (*Record, error) {
	switch {
	case id == "":
		return nil, ErrMissingID
	case dayKey == "":
		return nil, ErrMissingDayKey
	case !slot.IsValid():
		return nil, ErrInvalidSlot
	case item.CoffeeType() == "":
		return nil, ErrMissingCoffeeType
	case item.Size() == "":
		return nil, ErrMissingSize
	case requester.ID() == "":
		return nil, ErrMissingRequesterID
	}

	return &Record{
		dayKey:    dayKey,
		id:        id,
		requester: requester,
		slot:      slot,
		item:      item,
		createdAt: createdAtUTC.UTC(),
		channel:   channel,
	}, nil
}

// ReconstructRecord rebuilds a record read back from the ledger store without
// re-running creation validation.
func ReconstructRecord(
	id string,
	dayKey string,
	slot Slot,
	requester Requester,
	item Item,
	createdAtUTC time.Time,
	channel string,
) *Record {
	return &Record{
		dayKey:    dayKey,
		id:        id,
		requester: requester,
		slot:      slot,
		item:      item,
		createdAt: createdAtUTC.UTC(),
		channel:   channel,
	}
}

func (r *Record) DayKey() string       { return r.dayKey }
func (r *Record) ID() string           { return r.id }
func (r *Record) Requester() Requester { return r.requester }
func (r *Record) Slot() Slot           { return r.slot }
func (r *Record) Item() Item           { return r.item }
func (r *Record) CreatedAt() time.Time { return r.createdAt }
func (r *Record) Channel() string      { return r.channel }
