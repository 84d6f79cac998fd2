// Package probe implements liveness and readiness checks against a running
// server, meant to be wired as container health probes.
package probe

import (
	"github.com/spf13/cobra"

	"github/chapool/go-keyring/internal/util/command"
)

const (
	verboseFlag string = "verbose"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("probe",
		newLiveness(),
		newReadiness(),
	)
}
