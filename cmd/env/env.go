// Package env prints the resolved service configuration.
package env

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github/chapool/go-keyring/internal/config"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Prints the env-resolved server config as JSON",
		Run: func(_ *cobra.Command, _ []string) {
			cfg := config.DefaultServiceConfigFromEnv()

			out, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}

			fmt.Println(string(out))
		},
	}
}
