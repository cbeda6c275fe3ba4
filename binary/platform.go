package binary

import (
	"slices"
)

// osnames maps GOOS values to the names used in release artifacts.
var osnames = map[string]string{
	"darwin":  "darwin",
	"linux":   "linux",
	"windows": "windows",
}

// archnames maps GOARCH values to the names used in release artifacts.
var archnames = map[string]string{
	"arm64": "arm64",
	"amd64": "x64",
}

// supported lists every platform a binary gets published for.
var supported = []string{
	"darwin-arm64",
	"darwin-x64",
	"linux-arm64",
	"linux-x64",
	"windows-x64",
}

// Platform is the normalized os and architecture a release artifact is built for.
type Platform struct {
	OS   string
	Arch string
}

// Resolve maps GOOS and GOARCH values to a supported [Platform].
// Unknown values and combinations without a published binary fail with
// an [UnsupportedPlatformError].
func Resolve(goos, goarch string) (Platform, error) {
	osname, osok := osnames[goos]
	archname, archok := archnames[goarch]
	if !osok || !archok {
		return Platform{}, &UnsupportedPlatformError{OS: goos, Arch: goarch}
	}

	platform := Platform{OS: osname, Arch: archname}
	if !slices.Contains(supported, platform.String()) {
		return Platform{}, &UnsupportedPlatformError{OS: goos, Arch: goarch, Combination: platform.String()}
	}

	return platform, nil
}

// Supported returns the tags of all supported platforms.
func Supported() []string {
	return slices.Clone(supported)
}

// String returns the platform tag, e.g. linux-x64.
func (p Platform) String() string {
	return p.OS + "-" + p.Arch
}

func (p Platform) IsWindows() bool {
	return p.OS == "windows"
}

// Extension is the executable file extension for the platform.
func (p Platform) Extension() string {
	if p.IsWindows() {
		return ".exe"
	}
	return ""
}
