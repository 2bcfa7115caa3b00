package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// repositoryRegex is compiled once at package init. Registry repository
// names are lowercase path segments separated by slashes.
var repositoryRegex = regexp.MustCompile(`^[a-z0-9]+(?:[._-][a-z0-9]+)*(?:/[a-z0-9]+(?:[._-][a-z0-9]+)*)*$`)

// tagRegex matches valid image tags per the OCI distribution spec.
var tagRegex = regexp.MustCompile(`^[a-zA-Z0-9_][a-zA-Z0-9._-]{0,127}$`)

// Validate checks the configuration for structural problems. It does not
// touch the network; provider-side validation happens when the flows run.
func (c *Config) Validate() error {
	var errs []error

	if c.Image.Repository == "" {
		errs = append(errs, errors.New("image.repository is required"))
	} else if !repositoryRegex.MatchString(c.Image.Repository) {
		errs = append(errs, fmt.Errorf("image.repository %q is not a valid repository name", c.Image.Repository))
	}

	if c.Image.Tag == "" {
		errs = append(errs, errors.New("image.tag is required"))
	} else if !tagRegex.MatchString(c.Image.Tag) {
		errs = append(errs, fmt.Errorf("image.tag %q is not a valid image tag", c.Image.Tag))
	}

	if c.Image.Dockerfile == "" {
		errs = append(errs, errors.New("image.dockerfile is required"))
	}
	if c.Image.Context == "" {
		errs = append(errs, errors.New("image.context is required"))
	}

	if c.Registry.Endpoint != "" && strings.ContainsAny(c.Registry.Endpoint, " \t") {
		errs = append(errs, fmt.Errorf("registry.endpoint %q must not contain whitespace", c.Registry.Endpoint))
	}
	if c.Registry.LoginExpirySeconds <= 0 {
		errs = append(errs, fmt.Errorf("registry.loginExpirySeconds must be positive, got %d", c.Registry.LoginExpirySeconds))
	}

	if c.Cluster.KubeconfigExpirySeconds <= 0 {
		errs = append(errs, fmt.Errorf("cluster.kubeconfigExpirySeconds must be positive, got %d", c.Cluster.KubeconfigExpirySeconds))
	}

	if c.Manifest == "" {
		errs = append(errs, errors.New("manifest path is required"))
	}

	return errors.Join(errs...)
}
