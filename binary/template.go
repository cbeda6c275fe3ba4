package binary

import (
	"strings"
	"text/template"
)

// Template contains fields used to resolve specific metadata about a release artifact.
// It includes the target platform, the release location and where the binary ends up locally.
type Template struct {
	// OS is the normalized operating system (e.g., "linux", "darwin", "windows")
	OS string
	// Arch is the normalized architecture (e.g., "x64", "arm64")
	Arch string
	// Platform is the platform tag, OS and Arch joined by a dash
	Platform string

	// Owner of the repository publishing the releases
	Owner string
	// Repository publishing the releases
	Repository string

	// Name of the binary
	Name string
	// Version is the semantic version string, without the v prefix
	Version string
	// Extension is the file extension for the binary.
	// Empty everywhere except on windows, where it's ".exe".
	Extension string
	// Filename is the name of the release artifact, available once resolved
	Filename string

	// Directory where the binary is installed
	Directory string
	// Cmd is the qualified path to the installed binary
	Cmd string
}

// Resolve executes the provided format string as a template with the Template's fields.
// It returns the resolved string and any error that occurred during template parsing or execution.
func (t Template) Resolve(format string) (string, error) {
	tmpl, err := template.New("bin").Parse(format)
	if err != nil {
		return "", err
	}

	var bld strings.Builder
	if err := tmpl.Execute(&bld, t); err != nil {
		return "", err
	}

	return bld.String(), nil
}

// MustResolve executes the provided format string as a template with the Template's fields.
// Panics if the template can't be resolved correctly.
func (t Template) MustResolve(format string) string {
	resolved, err := t.Resolve(format)
	if err != nil {
		panic(err)
	}
	return resolved
}
