// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"chime/internal/delivery/http/middleware"
	"chime/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AlarmHandler        *handler.AlarmHandler
	NotificationHandler *handler.NotificationHandler
	DeviceHandler       *handler.DeviceHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	alarmHandler        *handler.AlarmHandler
	notificationHandler *handler.NotificationHandler
	deviceHandler       *handler.DeviceHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		alarmHandler:        params.AlarmHandler,
		notificationHandler: params.NotificationHandler,
		deviceHandler:       params.DeviceHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Alarm routes, all behind JWT authentication
	alarmGroup := e.Group("/alarms")
	alarmGroup.Use(r.authMiddleware.Authenticate)
	{
		alarmGroup.POST("", r.alarmHandler.AddAlarm)
		alarmGroup.GET("/nearest", r.alarmHandler.NearestAlarms)
		alarmGroup.DELETE("/:id", r.alarmHandler.DeleteAlarm)
		alarmGroup.POST("/:id/done", r.alarmHandler.MarkAsDone)
	}

	// Record-scoped alarm listing
	recordGroup := e.Group("/records")
	recordGroup.Use(r.authMiddleware.Authenticate)
	{
		recordGroup.GET("/:recordId/alarms", r.alarmHandler.GetAlarmsForRecord)
	}

	// Notification history
	notificationGroup := e.Group("/notifications")
	notificationGroup.Use(r.authMiddleware.Authenticate)
	{
		notificationGroup.GET("", r.notificationHandler.GetHistory)
	}

	// Device registration and the permission state machine
	deviceGroup := e.Group("/devices")
	deviceGroup.Use(r.authMiddleware.Authenticate)
	{
		deviceGroup.POST("", r.deviceHandler.RegisterDevice)
	}

	permissionGroup := e.Group("/permission")
	permissionGroup.Use(r.authMiddleware.Authenticate)
	{
		permissionGroup.POST("/request", r.deviceHandler.RequestPermission)
		permissionGroup.POST("/resync", r.deviceHandler.ResyncPermission)
	}
}
