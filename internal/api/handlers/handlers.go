// Package handlers attaches every route of the service to the server's router
// groups.
package handlers

import (
	"github.com/labstack/echo/v4"

	"github/chapool/go-keyring/internal/api"
	"github/chapool/go-keyring/internal/api/handlers/common"
	"github/chapool/go-keyring/internal/api/handlers/keys"
)

// AttachAllRoutes attaches all registered routes.
func AttachAllRoutes(s *api.Server) {
	// register routes
	s.Router.Routes = []*echo.Route{
		common.GetHealthyRoute(s),
		common.GetMetricsRoute(s),
		common.GetReadyRoute(s),
		common.GetVersionRoute(s),
		keys.DeleteAccountRoute(s),
		keys.GetAccountsRoute(s),
		keys.GetActiveAccountRoute(s),
		keys.PostAddDerivationPathRoute(s),
		keys.PostDeriveKeyRoute(s),
		keys.PostExportKeyRoute(s),
		keys.PostImportKeyRoute(s),
		keys.PostInitHardwareRoute(s),
		keys.PostInitSeedRoute(s),
		keys.PostSignMessageRoute(s),
		keys.PostSignTransactionRoute(s),
		keys.PutActiveAccountRoute(s),
	}
}
