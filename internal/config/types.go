package config

import "os"

// Config is the deployment configuration for gtfsdeploy.
//
// It describes the image to publish, the registry and cluster to target,
// and the manifest applied on deploy. Secrets never appear here; they are
// resolved from the environment (see the Env* constants).
type Config struct {
	// Image describes the container image built by the publish flow.
	Image Image `yaml:"image"`

	// Registry configures the container registry the image is pushed to.
	Registry Registry `yaml:"registry"`

	// Cluster configures the Kubernetes cluster targeted by the deploy flow.
	Cluster Cluster `yaml:"cluster"`

	// Manifest is the path of the Kubernetes manifest applied on deploy.
	Manifest string `yaml:"manifest"`
}

// Image describes the container image to build, tag, and push.
type Image struct {
	// Repository is the image repository name, e.g. "public-transport/gtfs-warsaw".
	Repository string `yaml:"repository"`

	// Tag is the version tag, reused verbatim by both flows.
	Tag string `yaml:"tag"`

	// Dockerfile is the path to the Dockerfile used for the build.
	Dockerfile string `yaml:"dockerfile"`

	// Context is the docker build context directory.
	Context string `yaml:"context"`
}

// Registry configures access to the container registry.
type Registry struct {
	// Endpoint is the registry hostname (with optional registry name path),
	// e.g. "registry.digitalocean.com/my-registry". When empty, the
	// DOCKER_REGISTRY environment variable is consulted, then the
	// DigitalOcean API.
	Endpoint string `yaml:"endpoint,omitempty"`

	// LoginExpirySeconds is the lifetime of the short-lived registry
	// credentials requested before pushing.
	LoginExpirySeconds int `yaml:"loginExpirySeconds"`
}

// Cluster configures access to the Kubernetes cluster.
type Cluster struct {
	// ID is the DigitalOcean Kubernetes cluster identifier. When empty,
	// the K8S_CLUSTER_ID environment variable is consulted.
	ID string `yaml:"id,omitempty"`

	// KubeconfigExpirySeconds is the lifetime of the short-lived
	// kubeconfig fetched before applying the manifest.
	KubeconfigExpirySeconds int `yaml:"kubeconfigExpirySeconds"`
}

// Reference returns the local image reference, "repository:tag".
func (i Image) Reference() string {
	return i.Repository + ":" + i.Tag
}

// RegistryReference returns the image reference re-tagged for the given
// registry endpoint, "endpoint/repository:tag".
func (i Image) RegistryReference(endpoint string) string {
	return endpoint + "/" + i.Repository + ":" + i.Tag
}

// ResolveRegistryEndpoint returns the configured registry endpoint,
// falling back to the DOCKER_REGISTRY environment variable. An empty
// result means the caller should resolve the endpoint via the provider API.
func (c *Config) ResolveRegistryEndpoint() string {
	if c.Registry.Endpoint != "" {
		return c.Registry.Endpoint
	}
	return os.Getenv(EnvRegistryEndpoint)
}

// ResolveClusterID returns the configured cluster ID, falling back to the
// K8S_CLUSTER_ID environment variable.
func (c *Config) ResolveClusterID() string {
	if c.Cluster.ID != "" {
		return c.Cluster.ID
	}
	return os.Getenv(EnvClusterID)
}

// ApplyDefaults fills unset fields with the default deployment values.
func (c *Config) ApplyDefaults() {
	if c.Image.Repository == "" {
		c.Image.Repository = DefaultRepository
	}
	if c.Image.Tag == "" {
		c.Image.Tag = DefaultTag
	}
	if c.Image.Dockerfile == "" {
		c.Image.Dockerfile = DefaultDockerfile
	}
	if c.Image.Context == "" {
		c.Image.Context = DefaultBuildContext
	}
	if c.Registry.LoginExpirySeconds == 0 {
		c.Registry.LoginExpirySeconds = DefaultLoginExpirySeconds
	}
	if c.Cluster.KubeconfigExpirySeconds == 0 {
		c.Cluster.KubeconfigExpirySeconds = DefaultKubeconfigExpirySeconds
	}
	if c.Manifest == "" {
		c.Manifest = DefaultManifestPath
	}
}

// Default returns a Config populated with the default deployment values.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}
