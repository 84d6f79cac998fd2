package keys

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github/chapool/go-keyring/internal/api"
	"github/chapool/go-keyring/internal/util"
)

func DeleteAccountRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Keys.DELETE("/accounts/:publicKey", deleteAccountHandler(s))
}

func deleteAccountHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		publicKey := c.Param("publicKey")

		err := s.Keys.DeleteKey(ctx, publicKey)
		s.Metrics.IncOperation("delete", err)
		if err != nil {
			log.Debug().Err(err).Msg("Failed to delete key")
			return mapKeyringError(err)
		}

		log.Info().Msg("Deleted key")

		return c.NoContent(http.StatusNoContent)
	}
}
