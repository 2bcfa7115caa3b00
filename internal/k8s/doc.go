// Package k8s provides the Kubernetes client used by the deploy flow.
//
// The client is built from kubeconfig bytes (never written to disk, since
// the kubeconfig fetched from the provider is short-lived) and applies
// manifests with Server-Side Apply through the dynamic client.
package k8s
