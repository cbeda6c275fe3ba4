// Package manifest reads the package manifest shipped next to the installer,
// which pins the version of the binary to install.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/mod/semver"
)

// Manifest holds the fields of the package manifest the installer cares about.
type Manifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Load reads the manifest at path.
// The version is normalized by dropping a leading v and must be a valid semantic version.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes and validates manifest contents.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	m.Version = strings.TrimPrefix(strings.TrimSpace(m.Version), "v")
	if m.Version == "" {
		return nil, fmt.Errorf("manifest has no version")
	}

	if !semver.IsValid("v" + m.Version) {
		return nil, fmt.Errorf("manifest version %q is not a valid semantic version", m.Version)
	}

	return &m, nil
}
