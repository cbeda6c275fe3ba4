//go:build mage

package main

import (
	"context"

	installer "github.com/kipppunkt/build-installer"
)

var h = installer.New(
	installer.WithPreExecFunc(
		func(ctx context.Context) error { // ensure go mod download is run before any task
			return installer.Run(ctx, "go", installer.WithArgs("mod", "download"))
		},
	),
)

// format codebase using gofmt
func Format(ctx context.Context) error {
	return h.Execute(
		ctx,
		func(ctx context.Context) error {
			return installer.Run(ctx, "gofmt", installer.WithArgs("-l", "-w", "."))
		},
	)
}

// lint the code using go mod tidy and go vet
func Lint(ctx context.Context) error {
	return h.Execute(
		ctx,
		func(ctx context.Context) error {
			return installer.Run(ctx, "go", installer.WithArgs("mod", "tidy", "-diff"))
		},
		func(ctx context.Context) error {
			return installer.Run(ctx, "go", installer.WithArgs("vet", "./..."))
		},
	)
}

// run unit tests
func Test(ctx context.Context) error {
	return h.Execute(
		ctx,
		func(ctx context.Context) error {
			return installer.Run(ctx, "go", installer.WithArgs("test", "-race", "-cover", "./..."))
		},
	)
}

// build the installer for every supported platform into ./dist
func Build(ctx context.Context) error {
	targets := map[string][]string{
		"darwin-arm64": {"GOOS=darwin", "GOARCH=arm64"},
		"darwin-x64":   {"GOOS=darwin", "GOARCH=amd64"},
		"linux-arm64":  {"GOOS=linux", "GOARCH=arm64"},
		"linux-x64":    {"GOOS=linux", "GOARCH=amd64"},
		"windows-x64":  {"GOOS=windows", "GOARCH=amd64"},
	}

	var steps []installer.Step
	for tag, env := range targets {
		output := "dist/kipppunkt-build-install-" + tag
		if tag == "windows-x64" {
			output += ".exe"
		}

		steps = append(steps, func(ctx context.Context) error {
			return installer.Run(
				ctx, "go",
				installer.WithArgs("build", "-o", output, "./cmd/kipppunkt-build-install"),
				installer.WithEnv(append(env, "CGO_ENABLED=0")...),
			)
		})
	}

	return h.Execute(ctx, steps...)
}

// run go mod tidy
func Tidy(ctx context.Context) error {
	return h.Execute(
		ctx,
		func(ctx context.Context) error {
			return installer.Run(ctx, "go", installer.WithArgs("mod", "tidy"))
		},
	)
}
