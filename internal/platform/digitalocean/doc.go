// Package digitalocean wraps the DigitalOcean API behind a small
// interface covering exactly what the publish and deploy flows need:
// short-lived registry docker credentials, short-lived kubeconfigs, and
// a few lookups used by preflight checks.
package digitalocean
