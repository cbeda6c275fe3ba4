package installer

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
)

// Installer runs the steps of an installation one after the other; it can be customized
// with pre- and post- execution hook functions, where common functionality to all steps
// can be defined.
type Installer struct {
	PreExecHook  Step
	PostExecHook Step

	out    io.Writer
	errout io.Writer
}

// New constructs an installer.
func New(opts ...Option) *Installer {
	inst := Installer{
		PreExecHook:  func(_ context.Context) error { return nil },
		PostExecHook: func(_ context.Context) error { return nil },

		out:    color.Output,
		errout: color.Error,
	}

	for _, opt := range opts {
		opt(&inst)
	}

	return &inst
}

// Execute a list of steps inside the installer.
// Steps run sequentially and the first one returning an error stops the run; neither
// the remaining steps nor the post exec hook are executed in that case.
// The error of the failing step is returned as is, so callers can still inspect it.
func (i *Installer) Execute(ctx context.Context, steps ...Step) (err error) {
	start := time.Now()
	defer func() {
		elapsed := time.Since(start).Round(time.Millisecond)
		if err != nil {
			color.New(color.FgRed).Fprintf(i.errout, " ✘ failed after %s\n", elapsed)
			color.New(color.FgRed).Fprintf(i.errout, "   • %s\n", err.Error())
			return
		}
		color.New(color.FgGreen).Fprintf(i.out, " ✔ done after %s\n", elapsed)
	}()

	if err := i.PreExecHook(ctx); err != nil {
		return fmt.Errorf("failed to initialize installer: %w", err)
	}

	for _, step := range steps {
		if err := step(ctx); err != nil {
			return err
		}
	}

	if err := i.PostExecHook(ctx); err != nil {
		return fmt.Errorf("failed to run post exec hook: %w", err)
	}

	return nil
}

// Step defines the basic function that the installer executes.
// Steps sharing state are usually closures over the same variables.
type Step func(ctx context.Context) error

type Option func(i *Installer)

// WithPreExecFunc allows specifying a step that will be run every execution, before the
// specific execution steps are run.
func WithPreExecFunc(hook Step) Option {
	return func(i *Installer) {
		i.PreExecHook = hook
	}
}

// WithPostExecFunc allows specifying a step that will be run after all steps succeeded.
func WithPostExecFunc(hook Step) Option {
	return func(i *Installer) {
		i.PostExecHook = hook
	}
}

// WithOutput sets the writer receiving the success summary.
func WithOutput(w io.Writer) Option {
	return func(i *Installer) {
		i.out = w
	}
}

// WithErrorOutput sets the writer receiving the failure summary.
func WithErrorOutput(w io.Writer) Option {
	return func(i *Installer) {
		i.errout = w
	}
}

// LogStep prints a fancy-ish status line.
func LogStep(w io.Writer, text string) {
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintln(
		w,
		color.BlueString(" •"),
		color.New(color.Bold).Sprint(text),
	)
}
