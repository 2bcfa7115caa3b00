package docker

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigPath returns the docker client config file path, honoring the
// DOCKER_CONFIG environment variable.
func ConfigPath() (string, error) {
	if dir := os.Getenv("DOCKER_CONFIG"); dir != "" {
		return filepath.Join(dir, "config.json"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".docker", "config.json"), nil
}

// MergeAuthConfig merges the auths from a docker config JSON document into
// the docker client config file at path, creating the file if needed.
// Existing auth entries for other registries are preserved; entries for
// the same registry are replaced with the fresh credentials.
func MergeAuthConfig(path string, dockerConfigJSON []byte) error {
	var incoming map[string]json.RawMessage
	if err := json.Unmarshal(dockerConfigJSON, &incoming); err != nil {
		return fmt.Errorf("failed to parse registry credentials: %w", err)
	}

	var incomingAuths map[string]json.RawMessage
	if raw, ok := incoming["auths"]; ok {
		if err := json.Unmarshal(raw, &incomingAuths); err != nil {
			return fmt.Errorf("failed to parse registry auths: %w", err)
		}
	}
	if len(incomingAuths) == 0 {
		return fmt.Errorf("registry credentials contain no auths")
	}

	existing := map[string]json.RawMessage{}
	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, &existing); err != nil {
			return fmt.Errorf("failed to parse existing docker config %s: %w", path, err)
		}
	}

	existingAuths := map[string]json.RawMessage{}
	if raw, ok := existing["auths"]; ok {
		if err := json.Unmarshal(raw, &existingAuths); err != nil {
			return fmt.Errorf("failed to parse existing docker auths: %w", err)
		}
	}

	for host, auth := range incomingAuths {
		existingAuths[host] = auth
	}

	mergedAuths, err := json.Marshal(existingAuths)
	if err != nil {
		return fmt.Errorf("failed to marshal docker auths: %w", err)
	}
	existing["auths"] = mergedAuths

	merged, err := json.MarshalIndent(existing, "", "\t")
	if err != nil {
		return fmt.Errorf("failed to marshal docker config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create docker config directory: %w", err)
	}
	if err := os.WriteFile(path, merged, 0o600); err != nil {
		return fmt.Errorf("failed to write docker config: %w", err)
	}

	return nil
}
