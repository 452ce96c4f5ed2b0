// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"doorstep/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AddressHandler *handler.AddressHandler
	SessionHandler *handler.SessionHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	addressHandler *handler.AddressHandler
	sessionHandler *handler.SessionHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		addressHandler: params.AddressHandler,
		sessionHandler: params.SessionHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	addressesGroup := apiV1.Group("/addresses")
	{
		addressesGroup.GET("", r.addressHandler.ListAddresses)
		addressesGroup.GET("/:id", r.addressHandler.GetAddress)
		addressesGroup.PATCH("/:id", r.addressHandler.UpdateAddress)
		addressesGroup.GET("/:id/candidates", r.addressHandler.ValidationCandidates)
		addressesGroup.GET("/:id/geojson", r.addressHandler.ExportGeoJSON)
		addressesGroup.GET("/:id/qr", r.addressHandler.GenerateQRCode)
	}

	sessionsGroup := apiV1.Group("/sessions")
	{
		sessionsGroup.POST("", r.sessionHandler.StartSession)
		sessionsGroup.GET("/:id", r.sessionHandler.GetSession)
		sessionsGroup.POST("/:id/events", r.sessionHandler.DispatchEvent)
		sessionsGroup.POST("/:id/navigate", r.sessionHandler.Navigate)
	}
}
