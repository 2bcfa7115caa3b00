package commands

import (
	"github.com/spf13/cobra"

	"github.com/public-transport/gtfsdeploy/cmd/gtfsdeploy/handlers"
)

// Publish returns the command for building and pushing the image.
//
// This command runs the complete publish flow: build the image with
// docker, re-tag it for the container registry, obtain short-lived
// registry credentials, and push.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: auto-detect gtfsdeploy.yaml)
//
// Environment variables:
//
//	DIGITALOCEAN_ACCESS_TOKEN: DigitalOcean API token (required)
//	DOCKER_REGISTRY: registry endpoint (optional, resolved via API when unset)
func Publish() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Build the image and push it to the registry",
		Long: `Build the gtfs-warsaw image and push it to the container registry.

The flow is strictly sequential and aborts on the first failure:

  1. docker build with the configured repository:tag
  2. re-tag for the registry endpoint
  3. request short-lived registry credentials and log in
  4. docker push

Examples:
  # Publish using gtfsdeploy.yaml in the current directory
  gtfsdeploy publish

  # Publish using a specific config file
  gtfsdeploy publish -c production.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Publish(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: gtfsdeploy.yaml)")

	return cmd
}
