package api

import (
	"net/http"

	reqdto "coffeebot/internal/handler/dto/request"
	resdto "coffeebot/internal/handler/dto/response"
	"coffeebot/internal/infra/notify"
	"coffeebot/internal/usecase/commands"
	"coffeebot/internal/usecase/queries"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderCommands commands.OrderCommands
	orderQueries  queries.OrderQueries
	formatter     *notify.Formatter
}

func NewOrderHandler(
	orderCommands commands.OrderCommands,
	orderQueries queries.OrderQueries,
	formatter *notify.Formatter,
) *OrderHandler {
	return &OrderHandler{
		orderCommands: orderCommands,
		orderQueries:  orderQueries,
		formatter:     formatter,
	}
}

// SubmitOrder handles POST /api/orders. An admitted order returns 201 with
// its queue ordinal; a full slot returns 409 with the sibling's status.
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	var req reqdto.SubmitOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.orderCommands.SubmitOrder(c.Request.Context(), req.ToParams())
	if err != nil {
		h.renderSubmitError(c, err)
		return
	}

	if !result.Accepted {
		message := h.formatter.Rejection(result.Slot, result.CurrentCount, result.Limit, result.SiblingRemaining)
		c.JSON(http.StatusConflict, resdto.FromRejection(result, message))
		return
	}

	message := h.formatter.Confirmation(result.Record, result.Ordinal, result.Limit)
	c.JSON(http.StatusCreated, resdto.FromSubmitResult(result, message))
}

// DayStatus handles GET /api/orders/status.
func (h *OrderHandler) DayStatus(c *gin.Context) {
	view, err := h.orderQueries.DayStatus(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Order ledger is temporarily unavailable",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromDayStatus(view))
}

// TodayOrders handles GET /api/orders/today, the barista's queue view.
func (h *OrderHandler) TodayOrders(c *gin.Context) {
	items, err := h.orderQueries.TodayOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Order ledger is temporarily unavailable",
		})
		return
	}

	resp := make([]*resdto.OrderListItemResponse, len(items))
	for i, item := range items {
		resp[i] = resdto.FromOrderListItem(item)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) renderSubmitError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrInvalidRequest):
		var invalid *commands.InvalidRequestError
		detail := gin.H{"error": "Missing required fields"}
		if errors.As(err, &invalid) {
			detail["missing"] = invalid.Missing
		}
		c.JSON(http.StatusBadRequest, detail)
	case errors.Is(err, commands.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Order ledger is temporarily unavailable",
		})
	case errors.Is(err, commands.ErrPersistenceFailure):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save the order; no reservation was made",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
