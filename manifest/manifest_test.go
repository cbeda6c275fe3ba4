package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "package.json")
	content := `{
  "name": "@kipppunkt/build",
  "version": "1.2.3",
  "scripts": {"postinstall": "kipppunkt-build-install"}
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "@kipppunkt/build", m.Name)
	assert.Equal(t, "1.2.3", m.Version)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "package.json"))
	assert.ErrorContains(t, err, "failed to read manifest")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{"plain", `{"version": "1.2.3"}`, "1.2.3"},
		{"prerelease", `{"version": "2.0.0-rc.1"}`, "2.0.0-rc.1"},
		{"build metadata", `{"version": "2.0.0+build.5"}`, "2.0.0+build.5"},
		{"leading v", `{"version": "v1.0.0"}`, "1.0.0"},
		{"surrounding whitespace", `{"version": " 1.0.0 "}`, "1.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse([]byte(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m.Version)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errmsg  string
	}{
		{"not json", `version: 1.2.3`, "failed to parse manifest"},
		{"no version", `{"name": "@kipppunkt/build"}`, "manifest has no version"},
		{"not semver", `{"version": "latest"}`, "not a valid semantic version"},
		{"wrong type", `{"version": 1}`, "failed to parse manifest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			assert.ErrorContains(t, err, tt.errmsg)
		})
	}
}
