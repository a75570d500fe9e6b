package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coffeebot/internal/handler/api"
	"coffeebot/internal/handler/middleware"
	"coffeebot/internal/infra/metrics"
	"coffeebot/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	orderHandler *api.OrderHandler,
	botHandler *api.BotHandler,
	registry *metrics.Registry,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, orderHandler, botHandler, registry)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	orderHandler *api.OrderHandler,
	botHandler *api.BotHandler,
	registry *metrics.Registry,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(registry.Handler()))

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/messages", Handler: botHandler.Messages},
		})

		orders := apiGroup.Group("/orders")
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: orderHandler.SubmitOrder},
				{Method: http.MethodGet, Path: "/status", Handler: orderHandler.DayStatus},
				{Method: http.MethodGet, Path: "/today", Handler: orderHandler.TodayOrders},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
