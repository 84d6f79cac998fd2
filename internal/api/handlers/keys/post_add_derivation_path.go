package keys

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github/chapool/go-keyring/internal/api"
	"github/chapool/go-keyring/internal/types"
	"github/chapool/go-keyring/internal/util"
)

func PostAddDerivationPathRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Keys.POST("/derivation-path", postAddDerivationPathHandler(s))
}

func postAddDerivationPathHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostAddDerivationPathPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		account, err := s.Keys.AddDerivationPath(ctx, swag.StringValue(body.Path))
		s.Metrics.IncOperation("add_derivation_path", err)
		if err != nil {
			log.Debug().Err(err).Str("path", swag.StringValue(body.Path)).Msg("Failed to add derivation path")
			return mapKeyringError(err)
		}

		log.Info().Str("path", account.Path).Msg("Added derivation path")

		return util.ValidateAndReturn(c, http.StatusOK, &types.DeriveKeyResponse{
			PublicKey: swag.String(account.PublicKey),
			Path:      swag.String(account.Path),
			Name:      swag.String(account.Name),
		})
	}
}
