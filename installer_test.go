package installer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestExecute(t *testing.T) {
	t.Run("runs every step in order", func(t *testing.T) {
		var out, errout bytes.Buffer
		var calls []string

		inst := New(
			WithOutput(&out),
			WithErrorOutput(&errout),
			WithPreExecFunc(func(context.Context) error { calls = append(calls, "pre"); return nil }),
			WithPostExecFunc(func(context.Context) error { calls = append(calls, "post"); return nil }),
		)

		err := inst.Execute(
			context.Background(),
			func(context.Context) error { calls = append(calls, "first"); return nil },
			func(context.Context) error { calls = append(calls, "second"); return nil },
		)

		require.NoError(t, err)
		assert.Equal(t, []string{"pre", "first", "second", "post"}, calls)
		assert.Contains(t, out.String(), "done after")
		assert.Empty(t, errout.String())
	})

	t.Run("stops at the first failing step", func(t *testing.T) {
		var out, errout bytes.Buffer
		var calls []string

		inst := New(
			WithOutput(&out),
			WithErrorOutput(&errout),
			WithPostExecFunc(func(context.Context) error { calls = append(calls, "post"); return nil }),
		)

		err := inst.Execute(
			context.Background(),
			func(context.Context) error { calls = append(calls, "first"); return errBoom },
			func(context.Context) error { calls = append(calls, "second"); return nil },
		)

		require.ErrorIs(t, err, errBoom)
		assert.Equal(t, []string{"first"}, calls)
		assert.Contains(t, errout.String(), "failed after")
		assert.Contains(t, errout.String(), "boom")
		assert.Empty(t, out.String())
	})

	t.Run("pre exec hook failure prevents steps", func(t *testing.T) {
		var out, errout bytes.Buffer
		ran := false

		inst := New(
			WithOutput(&out),
			WithErrorOutput(&errout),
			WithPreExecFunc(func(context.Context) error { return errBoom }),
		)

		err := inst.Execute(context.Background(), func(context.Context) error { ran = true; return nil })

		require.ErrorIs(t, err, errBoom)
		assert.False(t, ran)
		assert.Contains(t, err.Error(), "failed to initialize installer")
	})
}

func TestLogStep(t *testing.T) {
	var out bytes.Buffer
	LogStep(&out, "Downloading something")
	assert.Contains(t, out.String(), "Downloading something")
}
