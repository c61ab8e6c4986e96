// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ipay4u/internal/delivery/api/middleware"
	"ipay4u/internal/delivery/api/router/handler"
	"ipay4u/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SystemHandler        *handler.SystemHandler
	DeviceHandler        *handler.DeviceHandler
	NotifyHandler        *handler.NotifyHandler
	AdminHandler         *handler.AdminHandler
	DeviceAuthMiddleware *middleware.DeviceAuthMiddleware
	AdminAuthMiddleware  *middleware.AdminAuthMiddleware
	RegistrationGate     *middleware.RegistrationGate
}

// router holds all the handlers that need to be registered.
type router struct {
	systemHandler    *handler.SystemHandler
	deviceHandler    *handler.DeviceHandler
	notifyHandler    *handler.NotifyHandler
	adminHandler     *handler.AdminHandler
	deviceAuth       *middleware.DeviceAuthMiddleware
	adminAuth        *middleware.AdminAuthMiddleware
	registrationGate *middleware.RegistrationGate
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		systemHandler:    params.SystemHandler,
		deviceHandler:    params.DeviceHandler,
		notifyHandler:    params.NotifyHandler,
		adminHandler:     params.AdminHandler,
		deviceAuth:       params.DeviceAuthMiddleware,
		adminAuth:        params.AdminAuthMiddleware,
		registrationGate: params.RegistrationGate,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.systemHandler.Root)
	e.GET("/health", r.systemHandler.HealthCheck)

	// Device routes
	e.POST("/register", r.deviceHandler.Register, r.registrationGate.RateLimit(), r.registrationGate.Check)
	e.POST("/notify", r.notifyHandler.Notify, r.deviceAuth.Authenticate)
	e.GET("/device-status", r.deviceHandler.DeviceStatus)

	// Operator routes
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.adminAuth.Authenticate)
	adminGroup.Use(r.adminAuth.RequireRole(constants.RoleAdmin))
	{
		adminGroup.POST("/devices", r.adminHandler.ProvisionDevice)
		adminGroup.PUT("/devices/:deviceId/status", r.adminHandler.SetDeviceStatus)
		adminGroup.GET("/devices/:deviceId/events", r.adminHandler.ListDeviceEvents)
	}
}
