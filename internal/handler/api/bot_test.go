//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"coffeebot/internal/handler/api"
	resdto "coffeebot/internal/handler/dto/response"
	"coffeebot/internal/infra/notify"
	"coffeebot/internal/pkg/config"
	"coffeebot/internal/pkg/errs"
	"coffeebot/internal/usecase/commands"
	"coffeebot/tests/common/builder"
	"coffeebot/tests/common/httptest"
	commandsmock "coffeebot/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BotHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	handler      *api.BotHandler
}

func (s *BotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	cfg := config.NewTestConfig()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.handler = api.NewBotHandler(s.mockCommands, notify.NewFormatter(time.UTC), cfg)

	s.router.POST("/api/messages", s.handler.Messages)
}

func (s *BotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBotHandlerSuite(t *testing.T) {
	suite.Run(t, new(BotHandlerTestSuite))
}

func messageActivity(text string) map[string]any {
	return map[string]any{
		"type": "message",
		"text": text,
		"from": map[string]any{"id": "user-1", "name": "Dana"},
	}
}

// ================================================================================
// TestMessages (text activities)
// ================================================================================

func (s *BotHandlerTestSuite) TestMessages_Text() {
	url := "/api/messages"

	s.Run("order keyword prompts for the coffee card", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, messageActivity("I want to ORDER"))
		s.Equal(http.StatusOK, rec.Code)

		var reply resdto.BotReply
		httptest.DecodeResponseBody(s.T(), rec.Body, &reply)
		s.Equal("message", reply.Type)
		s.Contains(reply.Text, "Ready to order")
	})

	s.Run("coffee keyword also prompts", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, messageActivity("coffee please"))
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "Ready to order")
	})

	s.Run("help lists commands and quotas", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, messageActivity("help"))
		s.Equal(http.StatusOK, rec.Code)

		var reply resdto.BotReply
		httptest.DecodeResponseBody(s.T(), rec.Body, &reply)
		s.Contains(reply.Text, "AM (2), PM (2)")
		s.Equal("markdown", reply.TextFormat)
	})

	s.Run("anything else gets the greeting", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, messageActivity("good morning"))
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "Hi!")
	})

	s.Run("unknown activity type is acknowledged without a reply", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"type": "conversationUpdate"})
		s.Equal(http.StatusOK, rec.Code)
		s.Empty(rec.Body.String())
	})
}

// ================================================================================
// TestMessages (card submits)
// ================================================================================

func (s *BotHandlerTestSuite) TestMessages_OrderSubmit() {
	url := "/api/messages"

	s.Run("accepted order replies with the confirmation", func() {
		b := builder.NewOrderBuilder()
		result, err := b.BuildAcceptedResult()
		s.Require().NoError(err)

		s.mockCommands.EXPECT().SubmitOrder(gomock.Any(), b.BuildSubmitParams()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildOrderActivity())
		s.Equal(http.StatusOK, rec.Code)

		var reply resdto.BotReply
		httptest.DecodeResponseBody(s.T(), rec.Body, &reply)
		s.Contains(reply.Text, "Order Confirmed")
		s.Contains(reply.Text, "#1 of 5")
	})

	s.Run("full slot replies 200 with the rejection text", func() {
		remaining := 2
		b := builder.NewOrderBuilder()

		s.mockCommands.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).
			Return(b.BuildRejectedResult(&remaining), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildOrderActivity())
		s.Equal(http.StatusOK, rec.Code)

		var reply resdto.BotReply
		httptest.DecodeResponseBody(s.T(), rec.Body, &reply)
		s.Contains(reply.Text, "quota is full")
		s.Contains(reply.Text, "has 2 spots left")
	})

	s.Run("missing fields reply 400 with the corrective prompt", func() {
		invalid := errs.Mark(&commands.InvalidRequestError{Missing: []string{"size"}}, commands.ErrInvalidRequest)
		s.mockCommands.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).
			Return(nil, invalid).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, builder.NewOrderBuilder().BuildOrderActivity())
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "Missing required fields")
	})

	s.Run("store failure replies 500 with the transient message", func() {
		s.mockCommands.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrStoreUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, builder.NewOrderBuilder().BuildOrderActivity())
		s.Equal(http.StatusInternalServerError, rec.Code)
		s.Contains(rec.Body.String(), "try again later")
	})

	s.Run("invoke with an unknown verb is acknowledged without a reply", func() {
		activity := builder.NewOrderBuilder().BuildOrderActivity()
		activity["value"] = map[string]any{
			"action": map[string]any{"verb": "somethingElse"},
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, activity)
		s.Equal(http.StatusOK, rec.Code)
		s.Empty(rec.Body.String())
	})
}
