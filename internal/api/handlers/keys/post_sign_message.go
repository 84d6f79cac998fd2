package keys

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github/chapool/go-keyring/internal/api"
	"github/chapool/go-keyring/internal/types"
	"github/chapool/go-keyring/internal/util"
)

func PostSignMessageRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Keys.POST("/sign-message", postSignMessageHandler(s))
}

func postSignMessageHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostSignPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		signature, err := s.Keys.SignMessage(ctx, swag.StringValue(body.PublicKey), swag.StringValue(body.Message))
		s.Metrics.IncOperation("sign_message", err)
		if err != nil {
			log.Debug().Err(err).Msg("Failed to sign message")
			return mapKeyringError(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.SignResponse{
			Signature: swag.String(signature),
		})
	}
}
