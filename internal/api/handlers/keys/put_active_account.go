package keys

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github/chapool/go-keyring/internal/api"
	"github/chapool/go-keyring/internal/types"
	"github/chapool/go-keyring/internal/util"
)

func PutActiveAccountRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Keys.PUT("/active", putActiveAccountHandler(s))
}

func putActiveAccountHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PutActiveAccountPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		// Ownership is not checked here, the active wallet may point at a key
		// that lives outside this keyring.
		if err := s.Keys.SetActiveWallet(ctx, swag.StringValue(body.PublicKey)); err != nil {
			log.Debug().Err(err).Msg("Failed to set active wallet")
			return mapKeyringError(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.GetActiveAccountResponse{
			PublicKey: s.Keys.ActiveWallet(ctx),
		})
	}
}
