//go:build unit

package builder

import (
	"time"

	"coffeebot/internal/domain/order"
	"coffeebot/internal/usecase/commands"
)

type OrderBuilder struct {
	ID          string
	DayKey      string
	Slot        order.Slot
	CoffeeType  string
	Size        string
	Milk        string
	Sugar       string
	Notes       string
	RequesterID string
	DisplayName string
	Channel     string
	CreatedAt   time.Time
	Ordinal     int
	Limit       int
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:          "rec-0001",
		DayKey:      "20240315",
		Slot:        order.SlotAM,
		CoffeeType:  "Latte",
		Size:        "Grande",
		Milk:        "Oat",
		Sugar:       "2",
		Notes:       "",
		RequesterID: "user-1",
		DisplayName: "Dana",
		Channel:     "channel-1",
		CreatedAt:   time.Date(2024, 3, 15, 13, 0, 0, 0, time.UTC),
		Ordinal:     1,
		Limit:       5,
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) BuildRecord() (*order.Record, error) {
	return order.NewRecord(
		b.ID, b.DayKey, b.Slot,
		order.NewRequester(b.RequesterID, b.DisplayName),
		order.NewItem(b.CoffeeType, b.Size, b.Milk, b.Sugar, b.Notes),
		b.CreatedAt,
		b.Channel,
	)
}

func (b *OrderBuilder) BuildSubmitParams() commands.SubmitOrderParams {
	return commands.SubmitOrderParams{
		Slot:        b.Slot.String(),
		CoffeeType:  b.CoffeeType,
		Size:        b.Size,
		Milk:        b.Milk,
		Sugar:       b.Sugar,
		Notes:       b.Notes,
		RequesterID: b.RequesterID,
		DisplayName: b.DisplayName,
		Channel:     b.Channel,
	}
}

// BuildSubmitRequestMap returns the request body as a map so validation
// tests can mutate or drop individual fields.
func (b *OrderBuilder) BuildSubmitRequestMap() map[string]any {
	return map[string]any{
		"slot":        b.Slot.String(),
		"coffeeType":  b.CoffeeType,
		"size":        b.Size,
		"milk":        b.Milk,
		"sugar":       b.Sugar,
		"notes":       b.Notes,
		"requesterId": b.RequesterID,
		"displayName": b.DisplayName,
		"channel":     b.Channel,
	}
}

// BuildOrderActivity returns a card-submit activity envelope the way the
// chat channel posts it.
func (b *OrderBuilder) BuildOrderActivity() map[string]any {
	return map[string]any{
		"type": "invoke",
		"from": map[string]any{
			"id":   b.RequesterID,
			"name": b.DisplayName,
		},
		"conversation": map[string]any{
			"id": b.Channel,
		},
		"value": map[string]any{
			"action": map[string]any{
				"verb": "orderCoffee",
				"data": map[string]any{
					"slot":       b.Slot.String(),
					"coffeeType": b.CoffeeType,
					"size":       b.Size,
					"milk":       b.Milk,
					"sugar":      b.Sugar,
					"notes":      b.Notes,
				},
			},
		},
	}
}

func (b *OrderBuilder) BuildAcceptedResult() (*commands.SubmitResult, error) {
	rec, err := b.BuildRecord()
	if err != nil {
		return nil, err
	}
	return &commands.SubmitResult{
		Accepted: true,
		Record:   rec,
		Ordinal:  b.Ordinal,
		Slot:     b.Slot,
		Limit:    b.Limit,
	}, nil
}

func (b *OrderBuilder) BuildRejectedResult(siblingRemaining *int) *commands.SubmitResult {
	return &commands.SubmitResult{
		Accepted:         false,
		Slot:             b.Slot,
		CurrentCount:     b.Limit,
		Limit:            b.Limit,
		Sibling:          b.Slot.Sibling(),
		SiblingRemaining: siblingRemaining,
	}
}
