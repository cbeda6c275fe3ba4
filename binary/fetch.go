package binary

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

const (
	// DefaultUserAgent is the User-Agent header sent with every request.
	DefaultUserAgent = "kipppunkt-build-npm"
	// DefaultMaxRedirects is the longest redirect chain followed before giving up.
	DefaultMaxRedirects = 10
)

// Fetcher downloads a single url to a file, following redirects on its own
// and streaming the body straight to disk.
type Fetcher struct {
	client       *http.Client
	useragent    string
	maxredirects int

	progress io.Writer
	terminal bool

	create func(name string) (io.WriteCloser, error)
}

type FetchOption func(f *Fetcher)

// WithUserAgent overrides the [DefaultUserAgent].
func WithUserAgent(useragent string) FetchOption {
	return func(f *Fetcher) {
		f.useragent = useragent
	}
}

// WithMaxRedirects overrides [DefaultMaxRedirects].
func WithMaxRedirects(hops int) FetchOption {
	return func(f *Fetcher) {
		f.maxredirects = hops
	}
}

// WithProgress renders a progress bar to w while downloading, as long as the
// server announces the size of the file.
func WithProgress(w io.Writer) FetchOption {
	return func(f *Fetcher) {
		f.progress = w
	}
}

// WithTerminal indicates that the progress writer is a terminal, so the progress
// line gets padded to the terminal width and leftovers of wider renders are cleared.
func WithTerminal(terminal bool) FetchOption {
	return func(f *Fetcher) {
		f.terminal = terminal
	}
}

// WithHTTPClient uses a custom http client for requests.
// The client is copied; its redirect policy is replaced as redirects are handled by the Fetcher.
func WithHTTPClient(client *http.Client) FetchOption {
	return func(f *Fetcher) {
		f.client = client
	}
}

func withFileCreator(create func(name string) (io.WriteCloser, error)) FetchOption {
	return func(f *Fetcher) {
		f.create = create
	}
}

func NewFetcher(opts ...FetchOption) *Fetcher {
	f := Fetcher{
		client:       http.DefaultClient,
		useragent:    DefaultUserAgent,
		maxredirects: DefaultMaxRedirects,
		create: func(name string) (io.WriteCloser, error) {
			return os.Create(name)
		},
	}

	for _, opt := range opts {
		opt(&f)
	}

	client := *f.client
	client.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	f.client = &client

	return &f
}

// Fetch downloads url into destination and returns the number of bytes written.
// Redirects are followed up to the configured limit, their bodies are discarded.
// The destination is truncated if it exists, and removed if anything fails after
// it has been created.
func (f *Fetcher) Fetch(ctx context.Context, url, destination string) (int64, error) {
	current := url

	for hops := 0; ; hops++ {
		if hops > f.maxredirects {
			return 0, fmt.Errorf("%w: gave up after %d redirects fetching %s", ErrTooManyRedirects, f.maxredirects, url)
		}

		resp, err := f.get(ctx, current)
		if err != nil {
			return 0, err
		}

		if isRedirect(resp.StatusCode) && resp.Header.Get("Location") != "" {
			next, err := resp.Location()
			discard(resp)
			if err != nil {
				return 0, fmt.Errorf("%w: invalid redirect from %s: %w", ErrTransport, current, err)
			}
			current = next.String()
			continue
		}

		if resp.StatusCode != http.StatusOK {
			discard(resp)
			return 0, &DownloadFailedError{StatusCode: resp.StatusCode, URL: current}
		}

		written, err := f.store(resp.Body, resp.ContentLength, destination)
		resp.Body.Close()
		return written, err
	}
}

func (f *Fetcher) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	req.Header.Set("User-Agent", f.useragent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	return resp, nil
}

// store streams body into destination, updating the progress after every chunk
// has been handed to the file.
func (f *Fetcher) store(body io.Reader, size int64, destination string) (int64, error) {
	out, err := f.create(destination)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to create file %s: %w", ErrWrite, destination, err)
	}

	sink := &counter{w: out, progress: newProgress(f.progress, size, f.terminal)}

	_, copyerr := io.Copy(sink, body)
	closeerr := out.Close()
	sink.progress.Finish()

	switch {
	case sink.err != nil:
		err = fmt.Errorf("%w: failed to write %s: %w", ErrWrite, destination, sink.err)
	case copyerr != nil:
		err = fmt.Errorf("%w: failed to read response body: %w", ErrTransport, copyerr)
	case closeerr != nil:
		err = fmt.Errorf("%w: failed to close %s: %w", ErrWrite, destination, closeerr)
	}

	if err != nil {
		_ = os.Remove(destination)
		return 0, err
	}

	return sink.written, nil
}

// counter forwards writes and keeps track of how much has been written.
// The write error is kept apart so it can be told from read errors.
type counter struct {
	w        io.Writer
	written  int64
	err      error
	progress *progress
}

func (c *counter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.written += int64(n)
	if err != nil {
		c.err = err
		return n, err
	}

	c.progress.Update(c.written)
	return n, nil
}

func isRedirect(status int) bool {
	return status >= 300 && status < 400
}

// discard drains and closes a response body that won't be used,
// allowing the connection to be reused.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
