package router

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github/chapool/go-keyring/internal/api"
	"github/chapool/go-keyring/internal/api/handlers"
	"github/chapool/go-keyring/internal/api/middleware"
)

// Init sets up the echo instance, middlewares and all routes on the server.
func Init(s *api.Server) {
	s.Echo = echo.New()
	s.Echo.Debug = false
	s.Echo.HideBanner = true
	s.Echo.HTTPErrorHandler = HTTPErrorHandlerWithConfig(HTTPErrorHandlerConfig{
		HideInternalServerErrorDetails: s.Config.Echo.HideInternalServerErrorDetails,
	})

	s.Echo.Pre(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	s.Echo.Use(echoMiddleware.Recover())
	s.Echo.Use(middleware.Logger())

	s.Router = &api.Router{
		Routes:     nil, // will be populated by handlers.AttachAllRoutes(s)
		Root:       s.Echo.Group(""),
		Management: s.Echo.Group("/-"),
		APIV1Keys:  s.Echo.Group("/api/v1/keys", middleware.APIKeyAuth(s.Config.Auth.APIKey)),
	}

	handlers.AttachAllRoutes(s)
}
