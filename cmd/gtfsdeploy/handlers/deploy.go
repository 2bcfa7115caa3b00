package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/public-transport/gtfsdeploy/internal/config"
	"github.com/public-transport/gtfsdeploy/internal/manifest"
)

// Deploy fetches a short-lived kubeconfig for the configured cluster and
// applies the cron job manifest with server-side apply.
//
// The kubeconfig is held in memory only; it expires on its own a few
// minutes after the run. No diffing or drift detection is performed
// beyond what server-side apply provides, and a failed apply leaves
// whatever the API server already accepted in place.
//
// The function expects DIGITALOCEAN_ACCESS_TOKEN to be set in the
// environment and the cluster ID to be present in the config file or
// the K8S_CLUSTER_ID environment variable.
func Deploy(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if err := requireAccessToken(); err != nil {
		return err
	}

	clusterID := cfg.ResolveClusterID()
	if clusterID == "" {
		return fmt.Errorf("no cluster ID: set cluster.id in the config file or the %s environment variable", config.EnvClusterID)
	}

	manifests, err := manifest.Load(cfg.Manifest)
	if err != nil {
		return err
	}

	// Best-effort summary line; manifests without a CronJob still deploy.
	if cronJob, err := manifest.DecodeCronJob(manifests); err == nil {
		log.Printf("Deploying cron job %s (schedule %q)", cronJob.Name, cronJob.Spec.Schedule)
	}

	provider := newProviderClient()

	log.Printf("Fetching kubeconfig for cluster %s (valid %ds)", clusterID, cfg.Cluster.KubeconfigExpirySeconds)
	kubeconfig, err := provider.ClusterKubeconfig(ctx, clusterID, cfg.Cluster.KubeconfigExpirySeconds)
	if err != nil {
		return err
	}

	client, err := newK8sClient(kubeconfig)
	if err != nil {
		return err
	}

	applied, err := client.ApplyManifests(ctx, manifests, config.FieldManager)
	for _, summary := range applied {
		log.Printf("Applied %s", summary)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Deploy complete: applied %d object(s) from %s\n", len(applied), cfg.Manifest)
	return nil
}
