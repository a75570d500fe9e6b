package request

import (
	"coffeebot/internal/usecase/commands"
)

type SubmitOrderRequest struct {
	Slot        string `json:"slot" binding:"required,oneof=AM PM"`
	CoffeeType  string `json:"coffeeType" binding:"required"`
	Size        string `json:"size" binding:"required"`
	Milk        string `json:"milk,omitempty"`
	Sugar       string `json:"sugar,omitempty"`
	Notes       string `json:"notes,omitempty"`
	RequesterID string `json:"requesterId" binding:"required"`
	DisplayName string `json:"displayName,omitempty"`
	Channel     string `json:"channel,omitempty"`
}

func (r SubmitOrderRequest) ToParams() commands.SubmitOrderParams {
	return commands.SubmitOrderParams{
		Slot:        r.Slot,
		CoffeeType:  r.CoffeeType,
		Size:        r.Size,
		Milk:        r.Milk,
		Sugar:       r.Sugar,
		Notes:       r.Notes,
		RequesterID: r.RequesterID,
		DisplayName: r.DisplayName,
		Channel:     r.Channel,
	}
}
