package response

import (
	"time"

	"coffeebot/internal/usecase/commands"
	"coffeebot/internal/usecase/queries"
)

type OrderResponse struct {
	ID          string    `json:"id"`
	DayKey      string    `json:"dayKey"`
	Slot        string    `json:"slot"`
	Ordinal     int       `json:"ordinal"`
	Limit       int       `json:"limit"`
	CoffeeType  string    `json:"coffeeType"`
	Size        string    `json:"size"`
	Milk        string    `json:"milk"`
	Sugar       string    `json:"sugar"`
	Notes       string    `json:"notes,omitempty"`
	DisplayName string    `json:"displayName,omitempty"`
	CreatedAt   time.Time `json:"createdAtUtc"`
	Message     string    `json:"message,omitempty"`
}

type RejectionResponse struct {
	Slot             string `json:"slot"`
	Count            int    `json:"count"`
	Limit            int    `json:"limit"`
	Sibling          string `json:"sibling"`
	SiblingRemaining *int   `json:"siblingRemaining,omitempty"`
	Message          string `json:"message"`
}

func FromSubmitResult(result *commands.SubmitResult, message string) *OrderResponse {
	rec := result.Record
	item := rec.Item()
	return &OrderResponse{
		ID:          rec.ID(),
		DayKey:      rec.DayKey(),
		Slot:        rec.Slot().String(),
		Ordinal:     result.Ordinal,
		Limit:       result.Limit,
		CoffeeType:  item.CoffeeType(),
		Size:        item.Size(),
		Milk:        item.Milk(),
		Sugar:       item.Sugar(),
		Notes:       item.Notes(),
		DisplayName: rec.Requester().DisplayName(),
		CreatedAt:   rec.CreatedAt(),
		Message:     message,
	}
}

func FromRejection(result *commands.SubmitResult, message string) *RejectionResponse {
	return &RejectionResponse{
		Slot:             result.Slot.String(),
		Count:            result.CurrentCount,
		Limit:            result.Limit,
		Sibling:          result.Sibling.String(),
		SiblingRemaining: result.SiblingRemaining,
		Message:          message,
	}
}

type SlotStatusResponse struct {
	Slot      string `json:"slot"`
	Count     int    `json:"count"`
	Limit     int    `json:"limit"`
	Remaining int    `json:"remaining"`
}

type DayStatusResponse struct {
	DayKey string               `json:"dayKey"`
	Slots  []SlotStatusResponse `json:"slots"`
}

func FromDayStatus(view *queries.DayStatusView) *DayStatusResponse {
	resp := &DayStatusResponse{DayKey: view.DayKey}
	for _, s := range view.Slots {
		resp.Slots = append(resp.Slots, SlotStatusResponse{
			Slot:      s.Slot.String(),
			Count:     s.Count,
			Limit:     s.Limit,
			Remaining: s.Remaining,
		})
	}
	return resp
}

type OrderListItemResponse struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	Slot        string    `json:"slot"`
	Ordinal     int       `json:"ordinal"`
	CoffeeType  string    `json:"coffeeType"`
	Size        string    `json:"size"`
	Milk        string    `json:"milk"`
	Sugar       string    `json:"sugar"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAtUtc"`
}

func FromOrderListItem(item *queries.OrderListItem) *OrderListItemResponse {
	return &OrderListItemResponse{
		ID:          item.ID,
		DisplayName: item.DisplayName,
		Slot:        item.Slot.String(),
		Ordinal:     item.Ordinal,
		CoffeeType:  item.CoffeeType,
		Size:        item.Size,
		Milk:        item.Milk,
		Sugar:       item.Sugar,
		Notes:       item.Notes,
		CreatedAt:   item.CreatedAt,
	}
}

// BotReply is the activity the webhook sends back to the channel.
type BotReply struct {
	Type       string `json:"type"`
	Text       string `json:"text"`
	TextFormat string `json:"textFormat,omitempty"`
}

func NewBotReply(text string) BotReply {
	return BotReply{Type: "message", Text: text, TextFormat: "markdown"}
}
