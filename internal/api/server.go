package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github/chapool/go-keyring/internal/config"
	"github/chapool/go-keyring/internal/device"
	"github/chapool/go-keyring/internal/keys"
	"github/chapool/go-keyring/internal/metastore"
	"github/chapool/go-keyring/internal/metrics"
	"github/chapool/go-keyring/internal/util"
)

// KeysService interface for keyring operations.
// Alias to keys.Service for API access.
type KeysService = keys.Service

type Router struct {
	Routes     []*echo.Route
	Root       *echo.Group
	Management *echo.Group
	APIV1Keys  *echo.Group
}

// Server is a central struct keeping all the dependencies.
// It is initialized with wire, which handles making the new instances of the
// components in the right order. To add a new component, 3 steps are required:
// - declaring it in this struct
// - adding a provider function in providers.go
// - adding the provider's function name to the arguments of wire.Build() in wire.go
//
// Components labeled as `wire:"-"` will be skipped and have to be initialized
// after the InitNewServer* call.
type Server struct {
	// skip wire:
	// -> initialized with router.Init(s) function
	Echo   *echo.Echo `wire:"-"`
	Router *Router    `wire:"-"`

	Config  config.Server
	Store   *metastore.Store
	Devices *device.Registry
	Metrics *metrics.Service
	Keys    KeysService
}

// newServerWithComponents is used by wire to initialize the server components.
func newServerWithComponents(
	cfg config.Server,
	store *metastore.Store,
	devices *device.Registry,
	metrics *metrics.Service,
	keysService KeysService,
) *Server {
	return &Server{
		Config:  cfg,
		Store:   store,
		Devices: devices,
		Metrics: metrics,
		Keys:    keysService,
	}
}

func NewServer(config config.Server) *Server {
	return &Server{
		Config: config,
	}
}

func (s *Server) Ready() bool {
	if err := util.IsStructInitialized(s); err != nil {
		log.Debug().Err(err).Msg("Server is not fully initialized")
		return false
	}

	return true
}

func (s *Server) Start() error {
	if !s.Ready() {
		return errors.New("server is not ready")
	}

	if err := s.Echo.Start(s.Config.Echo.ListenAddress); err != nil {
		return fmt.Errorf("failed to start echo server: %w", err)
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) []error {
	log.Warn().Msg("Shutting down server")

	var errs []error

	if s.Echo != nil {
		log.Debug().Msg("Shutting down echo server")

		if err := s.Echo.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to shutdown echo server")
			errs = append(errs, err)
		}
	}

	if s.Store != nil {
		log.Debug().Msg("Closing metadata store")

		if err := s.Store.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close metadata store")
			errs = append(errs, err)
		}
	}

	return errs
}
