package keys

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github/chapool/go-keyring/internal/api"
	"github/chapool/go-keyring/internal/types"
	"github/chapool/go-keyring/internal/util"
)

func GetAccountsRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Keys.GET("/accounts", getAccountsHandler(s))
}

func getAccountsHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		accounts, deleted, err := s.Keys.ListAccounts(ctx)
		if err != nil {
			log.Debug().Err(err).Msg("Failed to list accounts")
			return mapKeyringError(err)
		}

		response := &types.GetAccountsResponse{
			Accounts:    make([]*types.AccountItem, 0, len(accounts)),
			DeletedKeys: deleted,
		}
		for _, account := range accounts {
			response.Accounts = append(response.Accounts, &types.AccountItem{
				PublicKey: swag.String(account.PublicKey),
				Name:      account.Name,
				Source:    swag.String(account.Source),
				Path:      account.Path,
				Cold:      account.Cold,
				Active:    account.Active,
			})
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
