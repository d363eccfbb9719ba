// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"addressbook/config"
	"addressbook/internal/delivery/http/middleware"
	"addressbook/internal/delivery/http/router/handler"
	"addressbook/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AddressHandler  *handler.AddressHandler
	OwnerMiddleware *middleware.OwnerMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	addressHandler  *handler.AddressHandler
	ownerMiddleware *middleware.OwnerMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		addressHandler:  params.AddressHandler,
		ownerMiddleware: params.OwnerMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(promhttp.Handler()))
	}

	ownerGroup := e.Group("/owners/:" + middleware.ParamOwnerType + "/:" + middleware.ParamOwnerID)
	ownerGroup.Use(r.ownerMiddleware.ResolveOwner)
	{
		ownerGroup.DELETE("", r.addressHandler.DeleteOwner)
	}

	addressGroup := ownerGroup.Group("/addresses")
	{
		addressGroup.GET("", r.addressHandler.ListAddresses)
		addressGroup.POST("", r.addressHandler.CreateAddress)
		addressGroup.GET("/labels", r.addressHandler.GetLabels)
		addressGroup.GET("/exists", r.addressHandler.HasAddresses)
		addressGroup.GET("/contains", r.addressHandler.ContainsAddress)
		addressGroup.GET("/nearest", r.addressHandler.GetNearestAddress)
		addressGroup.GET("/primary", r.addressHandler.Designated(entity.FlagPrimary))
		addressGroup.GET("/billing", r.addressHandler.Designated(entity.FlagBilling))
		addressGroup.GET("/shipping", r.addressHandler.Designated(entity.FlagShipping))
		addressGroup.GET("/public", r.addressHandler.Designated(entity.FlagPublic))
		addressGroup.POST("/delete", r.addressHandler.BatchDeleteAddresses)
		addressGroup.GET("/:addressID", r.addressHandler.GetAddress)
		addressGroup.PATCH("/:addressID", r.addressHandler.UpdateAddress)
		addressGroup.DELETE("/:addressID", r.addressHandler.DeleteAddress)
	}
}
