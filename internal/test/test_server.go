package test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github/chapool/go-keyring/internal/api"
	"github/chapool/go-keyring/internal/api/router"
	"github/chapool/go-keyring/internal/config"
	"github/chapool/go-keyring/internal/metastore"
)

// WithTestServer runs closure against a fully wired server backed by an
// in-memory metadata store. Nothing is persisted across invocations.
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()

	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Echo.ListenAddress = ":0"
	cfg.Metastore.InMemory = true
	cfg.Auth.APIKey = ""

	store, err := metastore.New("", true)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = store.Close()
	})

	s, err := api.InitNewServerWithStore(cfg, store)
	require.NoError(t, err)

	router.Init(s)

	closure(s)
}
