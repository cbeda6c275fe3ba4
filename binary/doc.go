// Package binary provides utilities to install the prebuilt kipppunkt-build
// binary published as a release artifact.
//
// Installing happens in three steps:
// - [Resolve] maps the GOOS and GOARCH of the host to a supported [Platform]
// - [New] builds a [Binary], describing where the artifact for that platform
// and version is downloaded from and where it's stored locally
// - [Binary.Install] downloads the artifact using a [Downloader], usually a
// [Fetcher], and marks it executable
//
// The [Fetcher] follows redirects on its own, up to a fixed amount of hops, and
// streams the body straight to disk, rendering a progress bar when the size of
// the download is known. If anything fails while writing, the partial file is removed.
//
// example usage
//
//	platform, err := binary.Resolve(runtime.GOOS, runtime.GOARCH)
//	if err != nil {
//		return err // unsupported platform, err lists the supported ones
//	}
//
//	bin, err := binary.New(
//		"kipppunkt-build",                          // name the binary will have after installation
//		"1.2.3",                                    // version that will be installed
//		platform,
//		binary.WithRepository("kipppunkt", "build"), // github repository publishing the releases
//		binary.WithDirectory("./bin"),
//	)
//	if err != nil {
//		return err
//	}
//
//	// downloads https://github.com/kipppunkt/build/releases/download/v1.2.3/kipppunkt-build-<platform>
//	// into ./bin/kipppunkt-build
//	if _, err := bin.Install(ctx, binary.NewFetcher(binary.WithProgress(os.Stdout))); err != nil {
//		return fmt.Errorf("failed to install kipppunkt-build: %w", err)
//	}
package binary
