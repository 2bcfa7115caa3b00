package digitalocean

import (
	"context"
	"fmt"

	"github.com/digitalocean/godo"
)

// RealClient implements Provider using the DigitalOcean API.
type RealClient struct {
	client *godo.Client
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithGodoClient sets a custom godo client (useful for testing).
func WithGodoClient(gc *godo.Client) ClientOption {
	return func(c *RealClient) {
		c.client = gc
	}
}

// NewRealClient creates a new RealClient with optional configuration.
func NewRealClient(token string, opts ...ClientOption) *RealClient {
	c := &RealClient{
		client: godo.NewFromToken(token),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GodoClient returns the underlying godo.Client for advanced operations.
func (c *RealClient) GodoClient() *godo.Client {
	return c.client
}

// AccountStatus returns the status of the account owning the token.
func (c *RealClient) AccountStatus(ctx context.Context) (string, error) {
	account, _, err := c.client.Account.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get account: %w", err)
	}
	return account.Status, nil
}

// RegistryEndpoint looks up the account's container registry and returns
// its endpoint, "registry.digitalocean.com/<registry-name>".
func (c *RealClient) RegistryEndpoint(ctx context.Context) (string, error) {
	registry, _, err := c.client.Registry.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get container registry: %w", err)
	}
	return RegistryHost + "/" + registry.Name, nil
}

// RegistryDockerCredentials requests short-lived docker credentials for
// the account's registry. The returned bytes are a docker config JSON
// document suitable for merging into ~/.docker/config.json.
func (c *RealClient) RegistryDockerCredentials(ctx context.Context, readWrite bool, expirySeconds int) ([]byte, error) {
	creds, _, err := c.client.Registry.DockerCredentials(ctx, &godo.RegistryDockerCredentialsRequest{
		ReadWrite:     readWrite,
		ExpirySeconds: &expirySeconds,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get registry docker credentials: %w", err)
	}
	return creds.DockerConfigJSON, nil
}

// ClusterKubeconfig fetches a kubeconfig for the cluster, valid for
// expirySeconds.
func (c *RealClient) ClusterKubeconfig(ctx context.Context, clusterID string, expirySeconds int) ([]byte, error) {
	kubeconfig, _, err := c.client.Kubernetes.GetKubeConfigWithExpiry(ctx, clusterID, int64(expirySeconds))
	if err != nil {
		return nil, fmt.Errorf("failed to get kubeconfig for cluster %s: %w", clusterID, err)
	}
	return kubeconfig.KubeconfigYAML, nil
}

// ClusterName returns the display name of the cluster.
func (c *RealClient) ClusterName(ctx context.Context, clusterID string) (string, error) {
	cluster, _, err := c.client.Kubernetes.Get(ctx, clusterID)
	if err != nil {
		return "", fmt.Errorf("failed to get cluster %s: %w", clusterID, err)
	}
	return cluster.Name, nil
}
