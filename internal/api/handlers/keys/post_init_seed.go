package keys

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github/chapool/go-keyring/internal/api"
	"github/chapool/go-keyring/internal/types"
	"github/chapool/go-keyring/internal/util"
)

func PostInitSeedRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Keys.POST("/init/seed", postInitSeedHandler(s))
}

func postInitSeedHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostInitSeedPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		accounts, err := s.Keys.InitFromSeed(ctx, swag.StringValue(body.Mnemonic), body.DerivationPaths)
		s.Metrics.IncOperation("init_seed", err)
		if err != nil {
			log.Debug().Err(err).Msg("Failed to initialize keyring from seed")
			return mapKeyringError(err)
		}

		response := &types.InitKeyringResponse{
			Accounts:     make([]*types.AccountResponse, 0, len(accounts)),
			ActiveWallet: s.Keys.ActiveWallet(ctx),
		}
		for _, account := range accounts {
			response.Accounts = append(response.Accounts, &types.AccountResponse{
				PublicKey: swag.String(account.PublicKey),
				Name:      swag.String(account.Name),
			})
		}

		log.Info().Int("accounts", len(accounts)).Msg("Initialized keyring from seed")

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
