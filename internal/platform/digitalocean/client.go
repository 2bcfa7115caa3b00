package digitalocean

import "context"

// RegistryHost is the hostname of the DigitalOcean container registry.
const RegistryHost = "registry.digitalocean.com"

// Provider is the subset of the DigitalOcean API used by gtfsdeploy.
type Provider interface {
	// AccountStatus returns the status of the account owning the token.
	AccountStatus(ctx context.Context) (string, error)

	// RegistryEndpoint returns the registry endpoint for the account,
	// "registry.digitalocean.com/<registry-name>".
	RegistryEndpoint(ctx context.Context) (string, error)

	// RegistryDockerCredentials returns a docker config JSON document
	// holding short-lived credentials for the account's registry.
	RegistryDockerCredentials(ctx context.Context, readWrite bool, expirySeconds int) ([]byte, error)

	// ClusterKubeconfig returns a kubeconfig for the cluster, valid for
	// expirySeconds.
	ClusterKubeconfig(ctx context.Context, clusterID string, expirySeconds int) ([]byte, error)

	// ClusterName returns the display name of the cluster.
	ClusterName(ctx context.Context, clusterID string) (string, error)
}
