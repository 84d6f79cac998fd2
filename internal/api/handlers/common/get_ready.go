package common

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github/chapool/go-keyring/internal/api"
	"github/chapool/go-keyring/internal/util"
)

func GetReadyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/ready", getReadyHandler(s))
}

// getReadyHandler returns 200 when all server components are initialized and
// 521 otherwise.
func getReadyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.Ready() {
			util.LogFromEchoContext(c).Warn().Msg("Readiness check failed")
			return c.String(521, "Not ready.")
		}

		return c.String(http.StatusOK, "Ready.")
	}
}
