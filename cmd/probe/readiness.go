package probe

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github/chapool/go-keyring/internal/config"
)

func newReadiness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Runs a readiness probe against the management endpoint",
		Run: func(cmd *cobra.Command, _ []string) {
			verbose, err := cmd.Flags().GetBool(verboseFlag)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}

			runProbe("/-/ready", verbose)
		},
	}

	cmd.Flags().BoolP(verboseFlag, "v", false, "Print the probe response body")

	return cmd
}

// runProbe hits a management endpoint of the locally running server and exits
// non-zero unless it answers 200.
func runProbe(path string, verbose bool) {
	cfg := config.DefaultServiceConfigFromEnv()

	address := cfg.Echo.ListenAddress
	if strings.HasPrefix(address, ":") {
		address = "127.0.0.1" + address
	}

	client := &http.Client{Timeout: 5 * time.Second}

	res, err := client.Get(fmt.Sprintf("http://%s%s", address, path))
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if verbose {
		fmt.Println(string(body))
	}

	if res.StatusCode != http.StatusOK {
		fmt.Printf("Probe %s failed with status %d\n", path, res.StatusCode)
		os.Exit(1)
	}
}
