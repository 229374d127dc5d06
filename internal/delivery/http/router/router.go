// Package router sets up the HTTP routes for the application.
package router

import (
	"identity/internal/delivery/http/middleware"
	"identity/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams defines the dependencies needed to register routes.
type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// RegisterRoutes attaches all application routes to the Echo instance.
func RegisterRoutes(e *echo.Echo, params RouterParams) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")
	api.GET("/hello", handler.Hello)

	auth := api.Group("/auth")
	auth.POST("/register", params.AuthHandler.Register)
	auth.POST("/login", params.AuthHandler.Login)
	auth.POST("/biometric-login", params.AuthHandler.BiometricLogin)
	auth.POST("/biometric-key", params.AuthHandler.SetBiometricKey)

	user := api.Group("/user", params.AuthMiddleware.Authenticate)
	user.GET("/profile", params.AuthHandler.Profile)
}
