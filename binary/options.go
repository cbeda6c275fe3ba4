package binary

type Option func(b *Binary)

// WithDirectory sets the directory the binary gets installed into.
// Defaults to ./bin relative to the working directory.
func WithDirectory(dir string) Option {
	return func(b *Binary) {
		b.template.Directory = dir
	}
}

// WithRepository sets the owner and repository publishing the releases,
// used by the default url format.
func WithRepository(owner, repository string) Option {
	return func(b *Binary) {
		b.template.Owner = owner
		b.template.Repository = repository
	}
}

// WithURLFormat overrides the template used to build the download url.
// All [Template] fields are available, including the resolved Filename.
// e.g. "https://mirror.example.com/{{.Repository}}/v{{.Version}}/{{.Filename}}"
func WithURLFormat(format string) Option {
	return func(b *Binary) {
		if format != "" {
			b.urlformat = format
		}
	}
}

// WithFilenameFormat overrides the template used to build the release artifact name.
// Filename and Cmd are not available in this template.
func WithFilenameFormat(format string) Option {
	return func(b *Binary) {
		if format != "" {
			b.filenameformat = format
		}
	}
}
