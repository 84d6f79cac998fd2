package keys

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github/chapool/go-keyring/internal/api"
	"github/chapool/go-keyring/internal/types"
	"github/chapool/go-keyring/internal/util"
)

func PostImportKeyRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Keys.POST("/import", postImportKeyHandler(s))
}

func postImportKeyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostImportKeyPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		account, err := s.Keys.ImportSecretKey(ctx, swag.StringValue(body.SecretKey), body.Name)
		s.Metrics.IncOperation("import", err)
		if err != nil {
			log.Debug().Err(err).Msg("Failed to import secret key")
			return mapKeyringError(err)
		}

		log.Info().Str("name", account.Name).Msg("Imported secret key")

		return util.ValidateAndReturn(c, http.StatusOK, &types.AccountResponse{
			PublicKey: swag.String(account.PublicKey),
			Name:      swag.String(account.Name),
		})
	}
}
