package keys

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github/chapool/go-keyring/internal/api"
	"github/chapool/go-keyring/internal/types"
	"github/chapool/go-keyring/internal/util"
)

func PostExportKeyRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Keys.POST("/export", postExportKeyHandler(s))
}

func postExportKeyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostExportKeyPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		secret, err := s.Keys.ExportSecretKey(ctx, swag.StringValue(body.PublicKey))
		s.Metrics.IncOperation("export", err)
		if err != nil {
			log.Debug().Err(err).Msg("Failed to export secret key")
			return mapKeyringError(err)
		}

		// the exported secret is intentionally not logged

		return util.ValidateAndReturn(c, http.StatusOK, &types.ExportKeyResponse{
			SecretKey: swag.String(secret),
		})
	}
}
