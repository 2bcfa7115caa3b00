package config

// Default deployment values. The repository, tag, manifest path, and
// credential lifetimes mirror the values used by the hosted pipelines
// this tool replaces.
const (
	// DefaultRepository is the image repository name.
	DefaultRepository = "public-transport/gtfs-warsaw"

	// DefaultTag is the image version tag.
	DefaultTag = "1.0.0"

	// DefaultDockerfile is the Dockerfile path for the build.
	DefaultDockerfile = "Dockerfile"

	// DefaultBuildContext is the docker build context directory.
	DefaultBuildContext = "."

	// DefaultManifestPath is the cron job manifest applied on deploy.
	DefaultManifestPath = ".k8s/config/cron-job.yaml"

	// DefaultLoginExpirySeconds is the lifetime of registry push credentials.
	DefaultLoginExpirySeconds = 1200

	// DefaultKubeconfigExpirySeconds is the lifetime of the fetched kubeconfig.
	DefaultKubeconfigExpirySeconds = 600
)

// Environment variables carrying externally managed secrets. All three are
// opaque strings; the tool never persists them.
const (
	// EnvAccessToken is the DigitalOcean API token.
	EnvAccessToken = "DIGITALOCEAN_ACCESS_TOKEN"

	// EnvRegistryEndpoint is the container registry hostname.
	EnvRegistryEndpoint = "DOCKER_REGISTRY"

	// EnvClusterID is the Kubernetes cluster identifier.
	EnvClusterID = "K8S_CLUSTER_ID"
)

// FieldManager identifies this tool to the Kubernetes API for
// server-side apply.
const FieldManager = "gtfsdeploy"
