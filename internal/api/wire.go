//go:build wireinject

package api

import (
	"github.com/google/wire"

	"github/chapool/go-keyring/internal/config"
	"github/chapool/go-keyring/internal/metastore"
	"github/chapool/go-keyring/internal/metrics"
)

// INJECTORS - https://github.com/google/wire/blob/main/docs/guide.md#injectors

// serviceSet groups the default set of providers that are required for initing a server
var serviceSet = wire.NewSet(
	newServerWithComponents,
	NewDeviceRegistry,
	NewKeysService,
	metrics.New,
)

// InitNewServer returns a new Server instance.
func InitNewServer(
	_ config.Server,
) (*Server, error) {
	wire.Build(serviceSet, NewMetastore)
	return new(Server), nil
}

// InitNewServerWithStore returns a new Server instance with the given
// metadata store (used by tests which run against an in-memory store).
func InitNewServerWithStore(
	_ config.Server,
	_ *metastore.Store,
) (*Server, error) {
	wire.Build(serviceSet)
	return new(Server), nil
}
