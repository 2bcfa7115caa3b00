package commands

import (
	"github.com/spf13/cobra"

	"github.com/public-transport/gtfsdeploy/cmd/gtfsdeploy/handlers"
)

// Init returns the command for interactively creating a configuration.
//
// This command guides users through creating a gtfsdeploy.yaml using an
// interactive wizard with text inputs.
//
// Flags:
//
//	--output, -o: Path to output file (default "gtfsdeploy.yaml")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a deployment configuration",
		Long: `Interactively create a deployment configuration file.

This command asks about:

  - Image repository and tag
  - Registry endpoint (optional)
  - Cluster ID (optional)
  - Manifest path

Secrets are never stored in the file. Provide them via the
DIGITALOCEAN_ACCESS_TOKEN, DOCKER_REGISTRY, and K8S_CLUSTER_ID
environment variables.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Init(outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "gtfsdeploy.yaml", "Output file path")

	return cmd
}
