// Package command carries shared scaffolding for cobra subcommands.
package command

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github/chapool/go-keyring/internal/api"
	"github/chapool/go-keyring/internal/api/router"
	"github/chapool/go-keyring/internal/config"
)

// NewSubcommandGroup groups subcommands under a parent that only prints its
// own help.
func NewSubcommandGroup(use string, subcommands ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use: use,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := cmd.Help(); err != nil {
				log.Error().Err(err).Msg("Failed to print help")
				os.Exit(1)
			}
		},
	}

	cmd.AddCommand(subcommands...)

	return cmd
}

// ApplyLoggerConfig configures the global zerolog instance from the service
// config.
func ApplyLoggerConfig(cfg config.Server) {
	zerolog.SetGlobalLevel(cfg.Logger.Level)

	if cfg.Logger.PrettyPrintConsole {
		log.Logger = log.Output(zerolog.NewConsoleWriter())
	}
}

// WithServer initializes a fully wired server (without starting to listen),
// runs fn against it and shuts it down again. Meant for one-shot maintenance
// commands that need the server's components.
func WithServer(ctx context.Context, cfg config.Server, fn func(ctx context.Context, s *api.Server) error) error {
	ApplyLoggerConfig(cfg)

	s, err := api.InitNewServer(cfg)
	if err != nil {
		return err
	}

	router.Init(s)

	defer func() {
		if errs := s.Shutdown(ctx); len(errs) > 0 {
			log.Error().Errs("errs", errs).Msg("Errors during server shutdown")
		}
	}()

	return fn(ctx, s)
}
