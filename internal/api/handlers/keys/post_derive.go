package keys

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github/chapool/go-keyring/internal/api"
	"github/chapool/go-keyring/internal/types"
	"github/chapool/go-keyring/internal/util"
)

func PostDeriveKeyRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Keys.POST("/derive", postDeriveKeyHandler(s))
}

func postDeriveKeyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		account, err := s.Keys.DeriveNextKey(ctx)
		s.Metrics.IncOperation("derive", err)
		if err != nil {
			log.Debug().Err(err).Msg("Failed to derive next key")
			return mapKeyringError(err)
		}

		log.Info().Str("path", account.Path).Msg("Derived next key")

		return util.ValidateAndReturn(c, http.StatusOK, &types.DeriveKeyResponse{
			PublicKey: swag.String(account.PublicKey),
			Path:      swag.String(account.Path),
			Name:      swag.String(account.Name),
		})
	}
}
