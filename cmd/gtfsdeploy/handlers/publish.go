package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/public-transport/gtfsdeploy/internal/platform/docker"
	"github.com/public-transport/gtfsdeploy/internal/util/prerequisites"
)

// Factory function variables for publish - can be replaced in tests.
var (
	// checkPublishPrereqs runs prerequisite checks for the publish flow.
	checkPublishPrereqs = prerequisites.CheckForPublish

	// dockerConfigPath returns the docker client config file path.
	dockerConfigPath = docker.ConfigPath

	// mergeAuthConfig merges registry credentials into the docker config.
	mergeAuthConfig = docker.MergeAuthConfig
)

// Publish builds the image, re-tags it for the container registry, logs
// in with short-lived credentials, and pushes.
//
// The steps run strictly in sequence and the first failure aborts the
// rest of the run. Nothing is cached or persisted between runs beyond
// the image in the local docker daemon and the merged registry auth in
// the docker client config.
//
// The function expects DIGITALOCEAN_ACCESS_TOKEN to be set in the
// environment. The registry endpoint comes from the config file, the
// DOCKER_REGISTRY environment variable, or an API lookup, in that order.
func Publish(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if results := checkPublishPrereqs(); results.HasErrors() {
		return results.Error()
	}
	if err := requireAccessToken(); err != nil {
		return err
	}

	runner := newDockerRunner()
	localRef := cfg.Image.Reference()

	log.Printf("Building image %s", localRef)
	if out, err := runner.Build(ctx, cfg.Image.Dockerfile, localRef, cfg.Image.Context); err != nil {
		return fmt.Errorf("docker build failed: %w\n%s", err, out)
	}

	provider := newProviderClient()

	endpoint := cfg.ResolveRegistryEndpoint()
	if endpoint == "" {
		endpoint, err = provider.RegistryEndpoint(ctx)
		if err != nil {
			return err
		}
	}
	registryRef := cfg.Image.RegistryReference(endpoint)

	log.Printf("Tagging %s as %s", localRef, registryRef)
	if out, err := runner.Tag(ctx, localRef, registryRef); err != nil {
		return fmt.Errorf("docker tag failed: %w\n%s", err, out)
	}

	log.Printf("Requesting registry credentials (valid %ds)", cfg.Registry.LoginExpirySeconds)
	credentials, err := provider.RegistryDockerCredentials(ctx, true, cfg.Registry.LoginExpirySeconds)
	if err != nil {
		return err
	}

	authPath, err := dockerConfigPath()
	if err != nil {
		return err
	}
	if err := mergeAuthConfig(authPath, credentials); err != nil {
		return err
	}

	log.Printf("Pushing %s", registryRef)
	if out, err := runner.Push(ctx, registryRef); err != nil {
		return fmt.Errorf("docker push failed: %w\n%s", err, out)
	}

	fmt.Printf("Published %s\n", registryRef)
	return nil
}
