package keys

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github/chapool/go-keyring/internal/api"
	"github/chapool/go-keyring/internal/types"
	"github/chapool/go-keyring/internal/util"
)

func GetActiveAccountRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Keys.GET("/active", getActiveAccountHandler(s))
}

func getActiveAccountHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		return util.ValidateAndReturn(c, http.StatusOK, &types.GetActiveAccountResponse{
			PublicKey: s.Keys.ActiveWallet(ctx),
		})
	}
}
