// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated
// to handler functions in the handlers package.
package commands

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Root returns the root command for the gtfsdeploy CLI.
//
// The root command serves as the entry point and parent for all
// subcommands. It provides basic CLI metadata and organizes the command
// hierarchy.
func Root() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "gtfsdeploy",
		Short: "Publish and deploy the gtfs-warsaw service",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging of external commands")

	// Core commands
	cmd.AddCommand(Init())
	cmd.AddCommand(Publish())
	cmd.AddCommand(Deploy())
	cmd.AddCommand(Verify())

	// Utility commands
	cmd.AddCommand(Doctor())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
