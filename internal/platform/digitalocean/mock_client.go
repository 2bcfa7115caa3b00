package digitalocean

import "context"

// MockClient is a mock implementation of Provider.
type MockClient struct {
	AccountStatusFunc             func(ctx context.Context) (string, error)
	RegistryEndpointFunc          func(ctx context.Context) (string, error)
	RegistryDockerCredentialsFunc func(ctx context.Context, readWrite bool, expirySeconds int) ([]byte, error)
	ClusterKubeconfigFunc         func(ctx context.Context, clusterID string, expirySeconds int) ([]byte, error)
	ClusterNameFunc               func(ctx context.Context, clusterID string) (string, error)
}

var _ Provider = &MockClient{}

func (m *MockClient) AccountStatus(ctx context.Context) (string, error) {
	if m.AccountStatusFunc != nil {
		return m.AccountStatusFunc(ctx)
	}
	return "active", nil
}

func (m *MockClient) RegistryEndpoint(ctx context.Context) (string, error) {
	if m.RegistryEndpointFunc != nil {
		return m.RegistryEndpointFunc(ctx)
	}
	return RegistryHost + "/mock-registry", nil
}

func (m *MockClient) RegistryDockerCredentials(ctx context.Context, readWrite bool, expirySeconds int) ([]byte, error) {
	if m.RegistryDockerCredentialsFunc != nil {
		return m.RegistryDockerCredentialsFunc(ctx, readWrite, expirySeconds)
	}
	return []byte(`{"auths":{}}`), nil
}

func (m *MockClient) ClusterKubeconfig(ctx context.Context, clusterID string, expirySeconds int) ([]byte, error) {
	if m.ClusterKubeconfigFunc != nil {
		return m.ClusterKubeconfigFunc(ctx, clusterID, expirySeconds)
	}
	return []byte("apiVersion: v1\nkind: Config\n"), nil
}

func (m *MockClient) ClusterName(ctx context.Context, clusterID string) (string, error) {
	if m.ClusterNameFunc != nil {
		return m.ClusterNameFunc(ctx, clusterID)
	}
	return "mock-cluster", nil
}
