package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	installer "github.com/kipppunkt/build-installer"
	"github.com/kipppunkt/build-installer/binary"
	"github.com/kipppunkt/build-installer/manifest"
)

const (
	binaryName = "kipppunkt-build"
	owner      = "kipppunkt"
	repository = "build"

	releaseURLEnv = "KIPPPUNKT_BUILD_RELEASE_URL"
)

type options struct {
	manifest   string
	bindir     string
	releaseURL string
	noProgress bool

	goos   string
	goarch string

	stdout io.Writer
	stderr io.Writer
}

func NewCommand() *cobra.Command {
	root := installRoot()
	opts := options{
		goos:   runtime.GOOS,
		goarch: runtime.GOARCH,
	}

	cmd := &cobra.Command{
		Use:   "kipppunkt-build-install",
		Short: "Download the kipppunkt-build binary for this platform",
		Long: `Download the prebuilt kipppunkt-build binary matching the current
operating system and architecture, for the version pinned in the package manifest.

Runs once as the package installation hook; the binary is stored in the bin
directory of the package and marked executable.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(c *cobra.Command, args []string) error {
			opts.stdout = c.OutOrStdout()
			opts.stderr = c.ErrOrStderr()
			return run(c.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.manifest, "manifest", filepath.Join(root, "package.json"), "package manifest pinning the version")
	cmd.Flags().StringVar(&opts.bindir, "bin-dir", filepath.Join(root, "bin"), "directory the binary is installed into")
	cmd.Flags().StringVar(&opts.releaseURL, "release-url", os.Getenv(releaseURLEnv), "url template of the release artifact, env "+releaseURLEnv)
	cmd.Flags().BoolVar(&opts.noProgress, "no-progress", false, "don't render the download progress bar")

	return cmd
}

func run(ctx context.Context, opts options) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		pkg      *manifest.Manifest
		platform binary.Platform
		bin      *binary.Binary
	)

	inst := installer.New(
		installer.WithOutput(opts.stdout),
		installer.WithErrorOutput(opts.stderr),
	)

	return inst.Execute(
		ctx,
		func(context.Context) (err error) {
			pkg, err = manifest.Load(opts.manifest)
			return err
		},
		func(context.Context) (err error) {
			platform, err = binary.Resolve(opts.goos, opts.goarch)
			return err
		},
		func(context.Context) (err error) {
			bin, err = binary.New(
				binaryName, pkg.Version, platform,
				binary.WithRepository(owner, repository),
				binary.WithDirectory(opts.bindir),
				binary.WithURLFormat(opts.releaseURL),
			)
			return err
		},
		func(ctx context.Context) error {
			installer.LogStep(opts.stdout, fmt.Sprintf("Downloading %s from v%s...", bin.Filename(), bin.Version()))

			fetchopts := []binary.FetchOption{}
			if !opts.noProgress {
				fetchopts = append(fetchopts, binary.WithProgress(opts.stdout), binary.WithTerminal(isTerminal(opts.stdout)))
			}

			if _, err := bin.Install(ctx, binary.NewFetcher(fetchopts...)); err != nil {
				return fmt.Errorf("failed to download binary: %w", err)
			}

			color.New(color.FgGreen).Fprintln(opts.stdout, "Done!")
			return nil
		},
	)
}

// installRoot is the package directory the installer ships in, the parent of
// the directory holding the installer executable.
func installRoot() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}

	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return filepath.Dir(filepath.Dir(exe))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
