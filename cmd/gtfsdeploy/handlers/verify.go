package handlers

import (
	"context"
	"fmt"

	"github.com/public-transport/gtfsdeploy/internal/manifest"
)

// Verify checks the manifest against the configuration without touching
// the network: the manifest must parse as a batch/v1 CronJob, carry a
// well-formed schedule, and run the configured image.
func Verify(_ context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	manifests, err := manifest.Load(cfg.Manifest)
	if err != nil {
		return err
	}

	cronJob, err := manifest.DecodeCronJob(manifests)
	if err != nil {
		return err
	}

	if err := manifest.VerifySchedule(cronJob); err != nil {
		return err
	}

	references := []string{cfg.Image.Reference()}
	if endpoint := cfg.ResolveRegistryEndpoint(); endpoint != "" {
		references = append(references, cfg.Image.RegistryReference(endpoint))
	}
	if err := manifest.VerifyImage(cronJob, references...); err != nil {
		return err
	}

	fmt.Printf("Manifest %s OK\n", cfg.Manifest)
	fmt.Printf("  CronJob:  %s\n", cronJob.Name)
	fmt.Printf("  Schedule: %s\n", cronJob.Spec.Schedule)
	fmt.Printf("  Image:    %s\n", cfg.Image.Reference())
	return nil
}
