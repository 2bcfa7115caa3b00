package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// WizardResult holds the user's choices from the configuration wizard.
type WizardResult struct {
	Repository       string
	Tag              string
	RegistryEndpoint string
	ClusterID        string
	ManifestPath     string
}

// RunWizard runs the interactive configuration wizard.
func RunWizard() (*WizardResult, error) {
	result := &WizardResult{
		// Defaults
		Repository:   DefaultRepository,
		Tag:          DefaultTag,
		ManifestPath: DefaultManifestPath,
	}

	form := huh.NewForm(
		// Image identity
		huh.NewGroup(
			huh.NewInput().
				Title("Image repository").
				Description("Repository name for the built image (lowercase)").
				Placeholder(DefaultRepository).
				Value(&result.Repository).
				Validate(validateRepository),

			huh.NewInput().
				Title("Image tag").
				Description("Version tag, reused verbatim by publish and deploy").
				Placeholder(DefaultTag).
				Value(&result.Tag).
				Validate(validateTag),
		),

		// Registry target
		huh.NewGroup(
			huh.NewInput().
				Title("Registry endpoint (optional)").
				Description("e.g. registry.digitalocean.com/my-registry. Leave empty to resolve via DOCKER_REGISTRY or the API.").
				Placeholder("registry.digitalocean.com/my-registry").
				Value(&result.RegistryEndpoint).
				Validate(validateEndpoint),
		),

		// Cluster target
		huh.NewGroup(
			huh.NewInput().
				Title("Cluster ID (optional)").
				Description("DigitalOcean Kubernetes cluster ID. Leave empty to use K8S_CLUSTER_ID.").
				Value(&result.ClusterID),
		),

		// Manifest
		huh.NewGroup(
			huh.NewInput().
				Title("Manifest path").
				Description("Kubernetes manifest applied on deploy").
				Placeholder(DefaultManifestPath).
				Value(&result.ManifestPath).
				Validate(validateManifestPath),
		),
	)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	return result, nil
}

// ToConfig converts the wizard result to a Config with defaults applied.
func (r *WizardResult) ToConfig() *Config {
	cfg := &Config{
		Image: Image{
			Repository: r.Repository,
			Tag:        r.Tag,
		},
		Registry: Registry{
			Endpoint: r.RegistryEndpoint,
		},
		Cluster: Cluster{
			ID: r.ClusterID,
		},
		Manifest: r.ManifestPath,
	}
	cfg.ApplyDefaults()
	return cfg
}

func validateRepository(s string) error {
	if s == "" {
		return errors.New("repository is required")
	}
	if !repositoryRegex.MatchString(s) {
		return errors.New("must be lowercase path segments, e.g. org/name")
	}
	return nil
}

func validateTag(s string) error {
	if s == "" {
		return errors.New("tag is required")
	}
	if !tagRegex.MatchString(s) {
		return errors.New("must be a valid image tag")
	}
	return nil
}

func validateEndpoint(s string) error {
	if strings.ContainsAny(s, " \t") {
		return errors.New("must not contain whitespace")
	}
	return nil
}

func validateManifestPath(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("manifest path is required")
	}
	return nil
}
