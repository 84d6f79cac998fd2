package common

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github/chapool/go-keyring/internal/api"
	"github/chapool/go-keyring/internal/util"
)

func GetHealthyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/healthy", getHealthyHandler(s))
}

// getHealthyHandler deeply probes the server: readiness plus a metadata store
// round-trip. Returns 521 with a plaintext error on failure.
func getHealthyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		if !s.Ready() {
			log.Warn().Msg("Health check failed, server is not ready")
			return c.String(521, "Not healthy.")
		}

		if _, err := s.Store.LoadKeyringState(ctx); err != nil {
			log.Warn().Err(err).Msg("Health check failed, metadata store is unreachable")
			return c.String(521, "Not healthy.")
		}

		return c.String(http.StatusOK, "Healthy.")
	}
}
