package server

import (
	"github.com/labstack/echo/v4"

	"example.com/knoxnights/backend/internal/handlers"
)

func registerRoutes(
	e *echo.Echo,
	catalogHandler *handlers.CatalogHandler,
	walletHandler *handlers.WalletHandler,
	conciergeHandler *handlers.ConciergeHandler,
	ownerHandler *handlers.OwnerHandler,
	notificationHandler *handlers.NotificationHandler,
	aiRateLimiter echo.MiddlewareFunc,
) {
	e.GET("/health", handlers.Health)

	api := e.Group("/api/v1")

	api.GET("/bars", catalogHandler.ListBars)
	api.GET("/bars/:id", catalogHandler.GetBar)
	api.GET("/deals", catalogHandler.ListDeals)
	api.GET("/me", walletHandler.Me)
	api.GET("/wallet/coupons", walletHandler.Coupons)

	api.POST("/concierge/plan", conciergeHandler.Plan, aiRateLimiter)

	owner := api.Group("/owner")
	owner.GET("/bar", ownerHandler.Bar)
	owner.GET("/analytics", ownerHandler.Analytics)
	owner.GET("/campaigns", ownerHandler.Campaigns)
	owner.POST("/campaigns/generate", ownerHandler.Generate, aiRateLimiter)
	owner.POST("/campaigns/select", ownerHandler.Select)
	owner.POST("/campaigns/publish", ownerHandler.Publish)

	api.GET("/notifications/stream", notificationHandler.Stream)
}
