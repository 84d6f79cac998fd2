package api

import (
	"context"

	"github/chapool/go-keyring/internal/config"
	"github/chapool/go-keyring/internal/device"
	"github/chapool/go-keyring/internal/keys"
	"github/chapool/go-keyring/internal/metastore"
)

// PROVIDERS - https://github.com/google/wire/blob/main/docs/guide.md#providers

// NewMetastore opens the badger-backed metadata store per config.
func NewMetastore(cfg config.Server) (*metastore.Store, error) {
	return metastore.New(cfg.Metastore.Path, cfg.Metastore.InMemory)
}

// NewDeviceRegistry returns the registry hardware transports connect to.
func NewDeviceRegistry() *device.Registry {
	return device.NewRegistry()
}

// NewKeysService restores the keyring service from the metadata store.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewKeysService(store *metastore.Store, devices *device.Registry) (KeysService, error) {
	return keys.NewService(context.Background(), store, devices)
}
