// Package manifest loads and verifies the cron job manifest applied by
// the deploy flow. Verification is offline: it checks that the manifest
// parses as a batch/v1 CronJob and that the container image matches the
// configured reference, without touching the cluster.
package manifest

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	batchv1 "k8s.io/api/batch/v1"
	utilyaml "k8s.io/apimachinery/pkg/util/yaml"
	sigsyaml "sigs.k8s.io/yaml"
)

// Load reads the manifest file at path.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("manifest %s is empty", path)
	}
	return data, nil
}

// DecodeCronJob finds and decodes the first CronJob document in a
// multi-document YAML manifest. Decoding is strict so typos in field
// names surface as errors instead of being silently dropped.
func DecodeCronJob(data []byte) (*batchv1.CronJob, error) {
	reader := utilyaml.NewYAMLReader(bufio.NewReader(bytes.NewReader(data)))

	docIndex := 0
	for {
		doc, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read manifest document %d: %w", docIndex, err)
		}
		docIndex++

		var head struct {
			APIVersion string `json:"apiVersion"`
			Kind       string `json:"kind"`
		}
		if err := sigsyaml.Unmarshal(doc, &head); err != nil {
			return nil, fmt.Errorf("failed to parse manifest document %d: %w", docIndex-1, err)
		}
		if head.Kind != "CronJob" {
			continue
		}
		if head.APIVersion != "batch/v1" {
			return nil, fmt.Errorf("unsupported CronJob apiVersion %q, want batch/v1", head.APIVersion)
		}

		var cronJob batchv1.CronJob
		if err := sigsyaml.UnmarshalStrict(doc, &cronJob); err != nil {
			return nil, fmt.Errorf("failed to decode CronJob: %w", err)
		}
		return &cronJob, nil
	}

	return nil, fmt.Errorf("manifest contains no CronJob document")
}

// ContainerImages returns the images of all containers in the cron job's
// pod template, including init containers.
func ContainerImages(cronJob *batchv1.CronJob) []string {
	spec := cronJob.Spec.JobTemplate.Spec.Template.Spec

	var images []string
	for _, c := range spec.InitContainers {
		images = append(images, c.Image)
	}
	for _, c := range spec.Containers {
		images = append(images, c.Image)
	}
	return images
}

// VerifyImage checks that at least one container in the cron job uses one
// of the given image references. A reference matches either exactly or as
// the repository:tag part of a registry-qualified image, so
// "org/app:1.0.0" accepts "registry.example.com/name/org/app:1.0.0".
// The publish and deploy flows share their image reference strings, so a
// mismatch means the manifest would run a different image than the one
// being published.
func VerifyImage(cronJob *batchv1.CronJob, references ...string) error {
	images := ContainerImages(cronJob)
	for _, image := range images {
		for _, ref := range references {
			if image == ref || strings.HasSuffix(image, "/"+ref) {
				return nil
			}
		}
	}
	return fmt.Errorf("no container image in %v matches %v", images, references)
}

// VerifySchedule checks the cron job schedule for basic shape: either a
// predefined descriptor such as @daily or a five-field cron expression.
func VerifySchedule(cronJob *batchv1.CronJob) error {
	schedule := strings.TrimSpace(cronJob.Spec.Schedule)
	if schedule == "" {
		return fmt.Errorf("cron job has no schedule")
	}
	if strings.HasPrefix(schedule, "@") {
		return nil
	}
	if fields := strings.Fields(schedule); len(fields) != 5 {
		return fmt.Errorf("schedule %q has %d fields, want 5", schedule, len(fields))
	}
	return nil
}
