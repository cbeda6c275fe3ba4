package binary

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

const (
	DefaultURLFormat      = "https://github.com/{{.Owner}}/{{.Repository}}/releases/download/v{{.Version}}/{{.Filename}}"
	DefaultFilenameFormat = "{{.Name}}-{{.Platform}}{{.Extension}}"
)

// Downloader fetches a url into a local file, returning the number of bytes written.
type Downloader interface {
	Fetch(ctx context.Context, url, destination string) (int64, error)
}

// Binary describes a single release artifact: where it's downloaded from and
// where it's stored locally. It doesn't change once built.
type Binary struct {
	platform Platform

	urlformat      string
	filenameformat string

	url      string
	template Template
}

func New(name, version string, platform Platform, options ...Option) (*Binary, error) {
	if name == "" {
		return nil, fmt.Errorf("name must be set")
	}
	if version == "" {
		return nil, fmt.Errorf("version must be set")
	}

	bin := Binary{
		platform: platform,

		urlformat:      DefaultURLFormat,
		filenameformat: DefaultFilenameFormat,
	}

	bin.template = Template{
		OS:       platform.OS,
		Arch:     platform.Arch,
		Platform: platform.String(),

		Name:      name,
		Version:   version,
		Extension: platform.Extension(),
		Directory: filepath.FromSlash("./bin"),
	}

	for _, opt := range options {
		opt(&bin)
	}

	filename, err := bin.template.Resolve(bin.filenameformat)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve filename: %w", err)
	}
	bin.template.Filename = filename
	bin.template.Cmd = filepath.Join(bin.template.Directory, name+bin.template.Extension)

	url, err := bin.template.Resolve(bin.urlformat)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve URL: %w", err)
	}
	bin.url = url

	return &bin, nil
}

func (b *Binary) Name() string { return b.template.Name }

func (b *Binary) Version() string { return b.template.Version }

func (b *Binary) Platform() Platform { return b.platform }

// Filename is the name of the release artifact, e.g. kipppunkt-build-linux-x64.
func (b *Binary) Filename() string { return b.template.Filename }

// URL the release artifact is downloaded from.
func (b *Binary) URL() string { return b.url }

// BinPath is the path the binary gets installed to.
func (b *Binary) BinPath() string { return b.template.Cmd }

func (b *Binary) Directory() string { return b.template.Directory }

// Prepare creates the installation directory, including missing parents.
func (b *Binary) Prepare() error {
	if err := os.MkdirAll(b.template.Directory, 0o755); err != nil {
		return fmt.Errorf("failed to create destination folder %s: %w", b.template.Directory, err)
	}
	return nil
}

// Install downloads the binary into its installation path and marks it executable.
func (b *Binary) Install(ctx context.Context, downloader Downloader) (int64, error) {
	if err := b.Prepare(); err != nil {
		return 0, err
	}

	written, err := downloader.Fetch(ctx, b.url, b.template.Cmd)
	if err != nil {
		return written, err
	}

	if err := os.Chmod(b.template.Cmd, 0o755); err != nil {
		return written, fmt.Errorf("failed to set permissions on %s: %w", b.template.Cmd, err)
	}

	return written, nil
}
