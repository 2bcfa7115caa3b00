package commands

import (
	"github.com/spf13/cobra"

	"github.com/public-transport/gtfsdeploy/cmd/gtfsdeploy/handlers"
)

// Deploy returns the command for applying the cron job manifest.
//
// This command fetches a short-lived kubeconfig for the configured
// cluster and applies the manifest with server-side apply.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: auto-detect gtfsdeploy.yaml)
//
// Environment variables:
//
//	DIGITALOCEAN_ACCESS_TOKEN: DigitalOcean API token (required)
//	K8S_CLUSTER_ID: cluster identifier (required unless set in the config file)
func Deploy() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Apply the cron job manifest to the cluster",
		Long: `Apply the cron job manifest to the Kubernetes cluster.

The flow fetches a kubeconfig valid for a few minutes and applies the
configured manifest via the cluster API. No diffing or drift detection
is performed beyond what server-side apply provides.

Examples:
  # Deploy using gtfsdeploy.yaml in the current directory
  gtfsdeploy deploy

  # Deploy using a specific config file
  gtfsdeploy deploy -c production.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Deploy(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: gtfsdeploy.yaml)")

	return cmd
}
