package keys

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github/chapool/go-keyring/internal/api"
	"github/chapool/go-keyring/internal/keyring"
	"github/chapool/go-keyring/internal/types"
	"github/chapool/go-keyring/internal/util"
)

func PostInitHardwareRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Keys.POST("/init/hardware", postInitHardwareHandler(s))
}

func postInitHardwareHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostInitHardwarePayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		descriptors := make([]keyring.WalletDescriptor, 0, len(body.Descriptors))
		for _, descriptor := range body.Descriptors {
			descriptors = append(descriptors, keyring.WalletDescriptor{
				PublicKey: swag.StringValue(descriptor.PublicKey),
				Path:      swag.StringValue(descriptor.Path),
				Device:    swag.StringValue(descriptor.Device),
			})
		}

		accounts, err := s.Keys.InitFromHardware(ctx, descriptors)
		s.Metrics.IncOperation("init_hardware", err)
		if err != nil {
			log.Debug().Err(err).Msg("Failed to initialize keyring from hardware descriptors")
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

		log.Info().Int("accounts", len(accounts)).Msg("Initialized keyring from hardware descriptors")

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
