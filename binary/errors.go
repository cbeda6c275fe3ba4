package binary

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedPlatform is matched by every [UnsupportedPlatformError].
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	// ErrTooManyRedirects is returned when the redirect chain is longer than allowed.
	ErrTooManyRedirects = errors.New("too many redirects")
	// ErrDownloadFailed is matched by every [DownloadFailedError].
	ErrDownloadFailed = errors.New("download failed")
	// ErrTransport wraps low level network failures (dns, connection, tls).
	ErrTransport = errors.New("transport error")
	// ErrWrite wraps local filesystem failures while storing the download.
	ErrWrite = errors.New("write error")
)

// UnsupportedPlatformError reports a host that has no prebuilt binary.
// Combination is empty when the os or the architecture itself is unknown.
type UnsupportedPlatformError struct {
	OS          string
	Arch        string
	Combination string
}

func (e *UnsupportedPlatformError) Error() string {
	supported := strings.Join(Supported(), ", ")
	if e.Combination != "" {
		return fmt.Sprintf(
			"unsupported platform/architecture combination: %s\nsupported combinations: %s",
			e.Combination, supported,
		)
	}
	return fmt.Sprintf(
		"unsupported platform/architecture: %s/%s\nsupported combinations: %s",
		e.OS, e.Arch, supported,
	)
}

func (e *UnsupportedPlatformError) Unwrap() error { return ErrUnsupportedPlatform }

// DownloadFailedError reports a response that is neither a success nor a redirect.
type DownloadFailedError struct {
	StatusCode int
	URL        string
}

func (e *DownloadFailedError) Error() string {
	return fmt.Sprintf("download failed with status %d for %s", e.StatusCode, e.URL)
}

func (e *DownloadFailedError) Unwrap() error { return ErrDownloadFailed }
