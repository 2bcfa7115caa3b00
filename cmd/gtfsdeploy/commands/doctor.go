package commands

import (
	"github.com/spf13/cobra"

	"github.com/public-transport/gtfsdeploy/cmd/gtfsdeploy/handlers"
)

// Doctor returns the command for diagnosing the deployment setup.
//
// This command validates configuration, checks client tools, and probes
// the provider API for the registry and cluster.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: auto-detect gtfsdeploy.yaml)
//	--json: Output in JSON format
func Doctor() *cobra.Command {
	var configPath string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose configuration, tools, and provider access",
		Long: `Diagnose the deployment setup.

Checks performed:
  - configuration file loads and validates
  - docker is installed
  - DIGITALOCEAN_ACCESS_TOKEN is set and the account is active
  - the registry endpoint resolves
  - the cluster is reachable (when a cluster ID is configured)
  - the manifest parses as a CronJob

Examples:
  gtfsdeploy doctor
  gtfsdeploy doctor --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Doctor(cmd.Context(), configPath, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: gtfsdeploy.yaml)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
