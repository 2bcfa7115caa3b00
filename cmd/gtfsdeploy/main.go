// Package main is the entry point for the gtfsdeploy CLI.
//
// gtfsdeploy publishes the gtfs-warsaw container image to the
// DigitalOcean container registry and deploys its cron job manifest to a
// DigitalOcean Kubernetes cluster. It replaces the pair of hosted
// pipelines that previously drove docker, doctl, and kubectl.
//
// Commands: init, publish, deploy, verify, doctor, version, completion.
//
// For detailed usage information, run:
//
//	gtfsdeploy --help
package main

import (
	"fmt"
	"os"

	"github.com/public-transport/gtfsdeploy/cmd/gtfsdeploy/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
