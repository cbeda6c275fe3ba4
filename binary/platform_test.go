package binary

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		goos, goarch string
		expected     string
	}{
		{"darwin", "arm64", "darwin-arm64"},
		{"darwin", "amd64", "darwin-x64"},
		{"linux", "arm64", "linux-arm64"},
		{"linux", "amd64", "linux-x64"},
		{"windows", "amd64", "windows-x64"},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			platform, err := Resolve(tt.goos, tt.goarch)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, platform.String())
		})
	}
}

func TestResolve_Unsupported(t *testing.T) {
	tests := []struct {
		goos, goarch string
		combination  string
	}{
		{"windows", "arm64", "windows-arm64"},
		{"freebsd", "amd64", ""},
		{"linux", "386", ""},
		{"plan9", "mips", ""},
		{"win32", "x64", ""},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			platform, err := Resolve(tt.goos, tt.goarch)
			require.ErrorIs(t, err, ErrUnsupportedPlatform)
			assert.Equal(t, Platform{}, platform)

			var unsupported *UnsupportedPlatformError
			require.ErrorAs(t, err, &unsupported)
			assert.Equal(t, tt.combination, unsupported.Combination)

			// guidance always lists every supported platform
			for _, tag := range Supported() {
				assert.Contains(t, err.Error(), tag)
			}
		})
	}
}

func TestResolve_ErrorMessages(t *testing.T) {
	_, err := Resolve("freebsd", "amd64")
	assert.EqualError(t, err, fmt.Sprintf(
		"unsupported platform/architecture: freebsd/amd64\nsupported combinations: %s",
		"darwin-arm64, darwin-x64, linux-arm64, linux-x64, windows-x64",
	))

	_, err = Resolve("windows", "arm64")
	assert.EqualError(t, err, fmt.Sprintf(
		"unsupported platform/architecture combination: windows-arm64\nsupported combinations: %s",
		"darwin-arm64, darwin-x64, linux-arm64, linux-x64, windows-x64",
	))
}

func TestSupported_ReturnsCopy(t *testing.T) {
	tags := Supported()
	tags[0] = "tampered"
	assert.Equal(t, "darwin-arm64", Supported()[0])
}

func TestPlatform_Extension(t *testing.T) {
	windows, err := Resolve("windows", "amd64")
	require.NoError(t, err)
	assert.True(t, windows.IsWindows())
	assert.Equal(t, ".exe", windows.Extension())

	for _, goos := range []string{"darwin", "linux"} {
		for _, goarch := range []string{"arm64", "amd64"} {
			platform, err := Resolve(goos, goarch)
			require.NoError(t, err)
			assert.False(t, platform.IsWindows(), platform.String())
			assert.Empty(t, platform.Extension(), platform.String())
		}
	}
}
