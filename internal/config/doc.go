// Package config defines the gtfsdeploy configuration schema, loading,
// validation, and the interactive configuration wizard.
//
// Configuration lives in a single YAML file (gtfsdeploy.yaml by default)
// and intentionally carries no secrets. Provider credentials are read
// from the environment at run time.
package config
