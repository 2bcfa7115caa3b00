package handlers

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/public-transport/gtfsdeploy/internal/config"
	"github.com/public-transport/gtfsdeploy/internal/platform/digitalocean"
	"github.com/public-transport/gtfsdeploy/internal/platform/docker"
	"github.com/public-transport/gtfsdeploy/internal/util/prerequisites"
)

// saveAndRestorePublishFactories saves and restores publish factory functions.
func saveAndRestorePublishFactories(t *testing.T) {
	saveAndRestoreCommonFactories(t)

	origPrereqs := checkPublishPrereqs
	origConfigPath := dockerConfigPath
	origMerge := mergeAuthConfig

	t.Cleanup(func() {
		checkPublishPrereqs = origPrereqs
		dockerConfigPath = origConfigPath
		mergeAuthConfig = origMerge
	})
}

// passingPrereqs reports the docker CLI as present.
func passingPrereqs() *prerequisites.CheckResults {
	return &prerequisites.CheckResults{}
}

func TestPublish_FullFlow(t *testing.T) {
	saveAndRestorePublishFactories(t)
	t.Setenv(config.EnvAccessToken, "dop_v1_test")
	t.Setenv(config.EnvRegistryEndpoint, "")

	configPath := writeTestConfig(t, func(cfg *config.Config) {
		cfg.Registry.Endpoint = "registry.digitalocean.com/transit"
	})

	fake := &docker.FakeCommandRunner{Output: "ok"}
	newDockerRunner = func() docker.Runner {
		return docker.NewCmdRunner(fake)
	}
	checkPublishPrereqs = passingPrereqs

	var credReadWrite bool
	var credExpiry int
	newProviderClient = func() digitalocean.Provider {
		return &digitalocean.MockClient{
			RegistryDockerCredentialsFunc: func(_ context.Context, readWrite bool, expirySeconds int) ([]byte, error) {
				credReadWrite = readWrite
				credExpiry = expirySeconds
				return []byte(`{"auths":{"registry.digitalocean.com":{"auth":"dGVzdA=="}}}`), nil
			},
		}
	}

	authPath := filepath.Join(t.TempDir(), "config.json")
	dockerConfigPath = func() (string, error) { return authPath, nil }

	var merged []byte
	mergeAuthConfig = func(path string, data []byte) error {
		assert.Equal(t, authPath, path)
		merged = data
		return nil
	}

	output := captureOutput(func() {
		require.NoError(t, Publish(context.Background(), configPath))
	})

	// Registry credentials requested with write access, valid 20 minutes.
	assert.True(t, credReadWrite)
	assert.Equal(t, 1200, credExpiry)
	assert.NotEmpty(t, merged)

	// build, tag, push in order against the configured registry.
	require.Len(t, fake.Calls, 3)
	assert.Equal(t, []string{"docker", "build", "-f", "Dockerfile", "-t", "public-transport/gtfs-warsaw:1.0.0", "."}, fake.Calls[0])
	assert.Equal(t, []string{"docker", "tag", "public-transport/gtfs-warsaw:1.0.0", "registry.digitalocean.com/transit/public-transport/gtfs-warsaw:1.0.0"}, fake.Calls[1])
	assert.Equal(t, []string{"docker", "push", "registry.digitalocean.com/transit/public-transport/gtfs-warsaw:1.0.0"}, fake.Calls[2])

	assert.Contains(t, output, "Published registry.digitalocean.com/transit/public-transport/gtfs-warsaw:1.0.0")
}

func TestPublish_EndpointFromAPI(t *testing.T) {
	saveAndRestorePublishFactories(t)
	t.Setenv(config.EnvAccessToken, "dop_v1_test")
	t.Setenv(config.EnvRegistryEndpoint, "")

	configPath := writeTestConfig(t, nil) // no endpoint configured

	fake := &docker.FakeCommandRunner{}
	newDockerRunner = func() docker.Runner { return docker.NewCmdRunner(fake) }
	checkPublishPrereqs = passingPrereqs

	newProviderClient = func() digitalocean.Provider {
		return &digitalocean.MockClient{
			RegistryEndpointFunc: func(_ context.Context) (string, error) {
				return "registry.digitalocean.com/acme", nil
			},
		}
	}
	dockerConfigPath = func() (string, error) { return filepath.Join(t.TempDir(), "config.json"), nil }
	mergeAuthConfig = func(string, []byte) error { return nil }

	_ = captureOutput(func() {
		require.NoError(t, Publish(context.Background(), configPath))
	})

	require.Len(t, fake.Calls, 3)
	assert.Equal(t, "registry.digitalocean.com/acme/public-transport/gtfs-warsaw:1.0.0", fake.Calls[2][2])
}

func TestPublish_EndpointFromEnv(t *testing.T) {
	saveAndRestorePublishFactories(t)
	t.Setenv(config.EnvAccessToken, "dop_v1_test")
	t.Setenv(config.EnvRegistryEndpoint, "registry.digitalocean.com/env-registry")

	configPath := writeTestConfig(t, nil)

	fake := &docker.FakeCommandRunner{}
	newDockerRunner = func() docker.Runner { return docker.NewCmdRunner(fake) }
	checkPublishPrereqs = passingPrereqs

	apiCalled := false
	newProviderClient = func() digitalocean.Provider {
		return &digitalocean.MockClient{
			RegistryEndpointFunc: func(_ context.Context) (string, error) {
				apiCalled = true
				return "", errors.New("should not be called")
			},
		}
	}
	dockerConfigPath = func() (string, error) { return filepath.Join(t.TempDir(), "config.json"), nil }
	mergeAuthConfig = func(string, []byte) error { return nil }

	_ = captureOutput(func() {
		require.NoError(t, Publish(context.Background(), configPath))
	})

	assert.False(t, apiCalled)
	assert.Equal(t, "registry.digitalocean.com/env-registry/public-transport/gtfs-warsaw:1.0.0", fake.Calls[2][2])
}

func TestPublish_MissingToken(t *testing.T) {
	saveAndRestorePublishFactories(t)
	t.Setenv(config.EnvAccessToken, "")

	configPath := writeTestConfig(t, nil)
	checkPublishPrereqs = passingPrereqs

	err := Publish(context.Background(), configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.EnvAccessToken)
}

func TestPublish_MissingDockerCLI(t *testing.T) {
	saveAndRestorePublishFactories(t)
	t.Setenv(config.EnvAccessToken, "dop_v1_test")

	configPath := writeTestConfig(t, nil)

	checkPublishPrereqs = func() *prerequisites.CheckResults {
		return prerequisites.Check([]prerequisites.Tool{
			{Name: "definitely-not-a-real-binary-xyz", Required: true, InstallURL: "https://example.com"},
		})
	}

	err := Publish(context.Background(), configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required tools")
}

func TestPublish_BuildFailure(t *testing.T) {
	saveAndRestorePublishFactories(t)
	t.Setenv(config.EnvAccessToken, "dop_v1_test")

	configPath := writeTestConfig(t, nil)
	checkPublishPrereqs = passingPrereqs

	fake := &docker.FakeCommandRunner{Output: "step 3/7 failed", ErrStr: "exit status 1"}
	newDockerRunner = func() docker.Runner { return docker.NewCmdRunner(fake) }

	err := Publish(context.Background(), configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "docker build failed")
	assert.Contains(t, err.Error(), "step 3/7 failed")

	// Nothing after the build ran.
	assert.Len(t, fake.Calls, 1)
}

func TestPublish_CredentialFailureAbortsPush(t *testing.T) {
	saveAndRestorePublishFactories(t)
	t.Setenv(config.EnvAccessToken, "dop_v1_test")

	configPath := writeTestConfig(t, func(cfg *config.Config) {
		cfg.Registry.Endpoint = "registry.digitalocean.com/transit"
	})
	checkPublishPrereqs = passingPrereqs

	fake := &docker.FakeCommandRunner{}
	newDockerRunner = func() docker.Runner { return docker.NewCmdRunner(fake) }

	newProviderClient = func() digitalocean.Provider {
		return &digitalocean.MockClient{
			RegistryDockerCredentialsFunc: func(_ context.Context, _ bool, _ int) ([]byte, error) {
				return nil, errors.New("401 unable to authenticate")
			},
		}
	}

	err := Publish(context.Background(), configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to authenticate")

	// build and tag ran, push did not.
	require.Len(t, fake.Calls, 2)
	assert.Equal(t, "tag", fake.Calls[1][1])
}

func TestPublish_ConfigNotFound(t *testing.T) {
	saveAndRestorePublishFactories(t)

	err := Publish(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
