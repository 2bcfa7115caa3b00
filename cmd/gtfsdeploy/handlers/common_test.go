package handlers

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/public-transport/gtfsdeploy/internal/config"
)

// testCronJobYAML is a minimal cron job manifest matching the default image.
const testCronJobYAML = `apiVersion: batch/v1
kind: CronJob
metadata:
  name: gtfs-warsaw
  namespace: transit
spec:
  schedule: "30 2 * * *"
  jobTemplate:
    spec:
      template:
        spec:
          restartPolicy: Never
          containers:
            - name: importer
              image: registry.digitalocean.com/transit/public-transport/gtfs-warsaw:1.0.0
`

// saveAndRestoreCommonFactories saves and restores the shared factory functions.
func saveAndRestoreCommonFactories(t *testing.T) {
	origProvider := newProviderClient
	origDocker := newDockerRunner
	origK8s := newK8sClient
	origLoad := loadConfigFile
	origFind := findConfigFile

	t.Cleanup(func() {
		newProviderClient = origProvider
		newDockerRunner = origDocker
		newK8sClient = origK8s
		loadConfigFile = origLoad
		findConfigFile = origFind
	})
}

// writeTestConfig writes a config file into a temp dir and returns its path.
func writeTestConfig(t *testing.T, mutate func(*config.Config)) string {
	t.Helper()

	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}

	path := filepath.Join(t.TempDir(), config.DefaultConfigFilename)
	require.NoError(t, config.Save(cfg, path))
	return path
}

// writeTestManifest writes a cron job manifest into a temp dir.
func writeTestManifest(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cron-job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testCronJobYAML), 0o644))
	return path
}

// captureOutput captures stdout during function execution.
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestLoadConfig_ExplicitPath(t *testing.T) {
	path := writeTestConfig(t, nil)

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "public-transport/gtfs-warsaw:1.0.0", cfg.Image.Reference())
}

func TestLoadConfig_MissingExplicitPath(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfig_NoConfigFound(t *testing.T) {
	saveAndRestoreCommonFactories(t)

	findConfigFile = func() (string, error) {
		return "", os.ErrNotExist
	}

	_, err := loadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gtfsdeploy init")
}

func TestLoadConfig_DiscoveredPath(t *testing.T) {
	saveAndRestoreCommonFactories(t)

	path := writeTestConfig(t, nil)
	findConfigFile = func() (string, error) {
		return path, nil
	}

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultTag, cfg.Image.Tag)
}

func TestRequireAccessToken(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		t.Setenv(config.EnvAccessToken, "dop_v1_test")
		assert.NoError(t, requireAccessToken())
	})

	t.Run("unset", func(t *testing.T) {
		t.Setenv(config.EnvAccessToken, "")
		err := requireAccessToken()
		require.Error(t, err)
		assert.Contains(t, err.Error(), config.EnvAccessToken)
	})
}
