package commands

import (
	"github.com/spf13/cobra"

	"github.com/public-transport/gtfsdeploy/cmd/gtfsdeploy/handlers"
)

// Verify returns the command for offline manifest verification.
//
// This command checks that the manifest parses as a batch/v1 CronJob,
// that its schedule is well-formed, and that its container image matches
// the configured repository and tag. It never touches the network.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: auto-detect gtfsdeploy.yaml)
func Verify() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify the manifest against the configuration",
		Long: `Verify the cron job manifest without touching the cluster.

Checks performed:
  - the manifest parses as a batch/v1 CronJob (strict field checking)
  - the schedule is a five-field cron expression or @-descriptor
  - a container image matches the configured repository:tag

Examples:
  gtfsdeploy verify
  gtfsdeploy verify -c production.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Verify(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: gtfsdeploy.yaml)")

	return cmd
}
