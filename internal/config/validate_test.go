package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "missing repository",
			mutate:  func(c *Config) { c.Image.Repository = "" },
			wantErr: "image.repository is required",
		},
		{
			name:    "uppercase repository",
			mutate:  func(c *Config) { c.Image.Repository = "Public-Transport/GTFS" },
			wantErr: "not a valid repository name",
		},
		{
			name:    "repository with spaces",
			mutate:  func(c *Config) { c.Image.Repository = "public transport/gtfs" },
			wantErr: "not a valid repository name",
		},
		{
			name:    "missing tag",
			mutate:  func(c *Config) { c.Image.Tag = "" },
			wantErr: "image.tag is required",
		},
		{
			name:    "tag with colon",
			mutate:  func(c *Config) { c.Image.Tag = "1.0:0" },
			wantErr: "not a valid image tag",
		},
		{
			name:    "missing dockerfile",
			mutate:  func(c *Config) { c.Image.Dockerfile = "" },
			wantErr: "image.dockerfile is required",
		},
		{
			name:    "missing context",
			mutate:  func(c *Config) { c.Image.Context = "" },
			wantErr: "image.context is required",
		},
		{
			name:    "endpoint with whitespace",
			mutate:  func(c *Config) { c.Registry.Endpoint = "registry.digitalocean.com/my registry" },
			wantErr: "must not contain whitespace",
		},
		{
			name:    "zero login expiry",
			mutate:  func(c *Config) { c.Registry.LoginExpirySeconds = 0 },
			wantErr: "registry.loginExpirySeconds must be positive",
		},
		{
			name:    "negative kubeconfig expiry",
			mutate:  func(c *Config) { c.Cluster.KubeconfigExpirySeconds = -1 },
			wantErr: "cluster.kubeconfigExpirySeconds must be positive",
		},
		{
			name:    "missing manifest",
			mutate:  func(c *Config) { c.Manifest = "" },
			wantErr: "manifest path is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	err := cfg.Validate()
	require.Error(t, err)

	assert.Contains(t, err.Error(), "image.repository is required")
	assert.Contains(t, err.Error(), "image.tag is required")
	assert.Contains(t, err.Error(), "manifest path is required")
}
