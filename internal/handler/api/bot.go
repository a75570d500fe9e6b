package api

import (
	"net/http"
	"strings"

	reqdto "coffeebot/internal/handler/dto/request"
	resdto "coffeebot/internal/handler/dto/response"
	"coffeebot/internal/infra/notify"
	"coffeebot/internal/pkg/config"
	"coffeebot/internal/usecase/commands"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

const verbOrderCoffee = "orderCoffee"

// BotHandler is the chat-channel webhook. It speaks a minimal activity
// envelope: text messages get the prompt/help/greeting replies, card submits
// (invoke activities with the orderCoffee verb) run the admission flow.
// Channel authentication is handled upstream of this service.
type BotHandler struct {
	orderCommands commands.OrderCommands
	formatter     *notify.Formatter
	quota         config.QuotaConfig
}

func NewBotHandler(
	orderCommands commands.OrderCommands,
	formatter *notify.Formatter,
	cfg config.Config,
) *BotHandler {
	return &BotHandler{
		orderCommands: orderCommands,
		formatter:     formatter,
		quota:         cfg.Quota,
	}
}

// Messages handles POST /api/messages.
func (h *BotHandler) Messages(c *gin.Context) {
	var activity reqdto.Activity
	if err := c.ShouldBindJSON(&activity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity payload"})
		return
	}

	switch activity.Type {
	case "invoke":
		if activity.Verb() == verbOrderCoffee {
			h.handleOrder(c, activity)
			return
		}
		c.Status(http.StatusOK)
	case "message":
		h.handleMessage(c, activity)
	default:
		c.Status(http.StatusOK)
	}
}

func (h *BotHandler) handleMessage(c *gin.Context, activity reqdto.Activity) {
	text := strings.ToLower(strings.TrimSpace(activity.Text))

	var reply string
	switch {
	case strings.Contains(text, "order") || strings.Contains(text, "coffee"):
		reply = "☕ Ready to order! Submit the coffee card with your type, size and slot (AM/PM)."
	case strings.Contains(text, "help"):
		reply = h.formatter.Help(h.quota.AM, h.quota.PM)
	default:
		reply = h.formatter.Greeting()
	}

	c.JSON(http.StatusOK, resdto.NewBotReply(reply))
}

func (h *BotHandler) handleOrder(c *gin.Context, activity reqdto.Activity) {
	fields := activity.Fields()
	params := commands.SubmitOrderParams{
		Slot:        fields.Slot,
		CoffeeType:  fields.CoffeeType,
		Size:        fields.Size,
		Milk:        fields.Milk,
		Sugar:       fields.Sugar,
		Notes:       fields.Notes,
		RequesterID: activity.From.ID,
		DisplayName: activity.From.Name,
		Channel:     activity.ConversationID(),
	}

	result, err := h.orderCommands.SubmitOrder(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, resdto.NewBotReply(h.formatter.InvalidRequest()))
		default:
			// Store failures surface as a transient-failure message; no
			// reservation was created.
			c.JSON(http.StatusInternalServerError, resdto.NewBotReply(h.formatter.TransientFailure()))
		}
		return
	}

	if !result.Accepted {
		text := h.formatter.Rejection(result.Slot, result.CurrentCount, result.Limit, result.SiblingRemaining)
		c.JSON(http.StatusOK, resdto.NewBotReply(text))
		return
	}

	text := h.formatter.Confirmation(result.Record, result.Ordinal, result.Limit)
	c.JSON(http.StatusOK, resdto.NewBotReply(text))
}
