// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tradein/internal/delivery/http/middleware"
	"tradein/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ExchangeHandler  *handler.ExchangeHandler
	AdminHandler     *handler.AdminHandler
	WarehouseHandler *handler.WarehouseHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	exchangeHandler  *handler.ExchangeHandler
	adminHandler     *handler.AdminHandler
	warehouseHandler *handler.WarehouseHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		exchangeHandler:  params.ExchangeHandler,
		adminHandler:     params.AdminHandler,
		warehouseHandler: params.WarehouseHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Owner routes that require authentication
	requestGroup := e.Group("/exchange-requests")
	requestGroup.Use(r.authMiddleware.Authenticate)
	{
		requestGroup.POST("", r.exchangeHandler.CreateRequest)
		requestGroup.GET("", r.exchangeHandler.ListOwnRequests)
		requestGroup.GET("/:id", r.exchangeHandler.GetRequest)
		requestGroup.PATCH("/:id", r.exchangeHandler.UpdateRequest)
		requestGroup.DELETE("/:id", r.exchangeHandler.CancelRequest)
		requestGroup.POST("/:id/shipping", r.exchangeHandler.SubmitShipping)
	}

	// Admin routes that require authentication and the admin flag
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/exchange-requests", r.adminHandler.ListAllRequests)
		adminGroup.PUT("/exchange-requests/:id/status", r.adminHandler.SetStatus)
		adminGroup.PUT("/exchange-requests/:id/transit", r.adminHandler.SetTransitStatus)
		adminGroup.POST("/exchange-requests/:id/credit", r.adminHandler.AssignCredit)
		adminGroup.GET("/exchange-requests/:id/credit-history", r.adminHandler.ListCreditHistory)

		adminGroup.POST("/warehouses", r.warehouseHandler.CreateWarehouse)
		adminGroup.GET("/warehouses", r.warehouseHandler.ListWarehouses)
		adminGroup.GET("/warehouses/:id", r.warehouseHandler.GetWarehouse)
		adminGroup.PUT("/warehouses/:id", r.warehouseHandler.UpdateWarehouse)
		adminGroup.DELETE("/warehouses/:id", r.warehouseHandler.DeleteWarehouse)
	}
}
