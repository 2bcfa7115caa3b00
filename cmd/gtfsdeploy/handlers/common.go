// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic
// and can be tested independently of the CLI framework.
package handlers

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/public-transport/gtfsdeploy/internal/config"
	"github.com/public-transport/gtfsdeploy/internal/k8s"
	"github.com/public-transport/gtfsdeploy/internal/platform/digitalocean"
	"github.com/public-transport/gtfsdeploy/internal/platform/docker"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// newProviderClient creates a DigitalOcean API client from the
	// access token in the environment.
	newProviderClient = func() digitalocean.Provider {
		return digitalocean.NewRealClient(os.Getenv(config.EnvAccessToken))
	}

	// newDockerRunner creates a docker CLI runner.
	newDockerRunner = func() docker.Runner {
		return docker.NewCmdRunner(&docker.DefaultCommandRunner{})
	}

	// newK8sClient creates a Kubernetes client from kubeconfig bytes.
	newK8sClient = k8s.NewFromKubeconfig

	// loadConfigFile loads config from a file (for testing injection).
	loadConfigFile = config.Load

	// findConfigFile finds the config file (for testing injection).
	findConfigFile = config.FindConfigFile
)

// loadConfig loads and validates the deployment configuration.
// If configPath is empty, it looks for gtfsdeploy.yaml starting in the
// current directory.
func loadConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		path, err := findConfigFile()
		if err != nil {
			return nil, fmt.Errorf("no config file found: %w\nRun 'gtfsdeploy init' to create one", err)
		}
		configPath = path
	}

	return loadConfigFile(configPath)
}

// requireAccessToken verifies that the provider token is present in the
// environment. Token validity is delegated to the API.
func requireAccessToken() error {
	if os.Getenv(config.EnvAccessToken) == "" {
		return fmt.Errorf("%s is not set", config.EnvAccessToken)
	}
	return nil
}

// isInteractiveTTY reports whether stdout is an interactive terminal.
func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
