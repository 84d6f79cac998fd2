package keys

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github/chapool/go-keyring/internal/api"
	"github/chapool/go-keyring/internal/config"
	"github/chapool/go-keyring/internal/util/command"
)

func newAccounts() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "Prints the persisted accounts as JSON",
		Long: `Prints every live account of the persisted keyring plus the recorded
deleted public keys. Run against the server's metadata store while the server
is stopped.`,
		Run: func(cmd *cobra.Command, _ []string) {
			cfg := config.DefaultServiceConfigFromEnv()

			err := command.WithServer(cmd.Context(), cfg, func(ctx context.Context, s *api.Server) error {
				accounts, deleted, err := s.Keys.ListAccounts(ctx)
				if err != nil {
					return err
				}

				out, err := json.MarshalIndent(map[string]interface{}{
					"accounts":     accounts,
					"deleted_keys": deleted,
				}, "", "  ")
				if err != nil {
					return err
				}

				fmt.Println(string(out))

				return nil
			})
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		},
	}
}
