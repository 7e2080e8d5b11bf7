package runner

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(timeout time.Duration) *Local {
	return New(timeout, zerolog.Nop())
}

func TestRunCapturesStdout(t *testing.T) {
	r := newTestRunner(5 * time.Second)

	out, err := r.Run(context.Background(), "sh", "-c", "echo hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

func TestRunNotFound(t *testing.T) {
	r := newTestRunner(5 * time.Second)

	_, err := r.Run(context.Background(), "definitely-not-a-real-binary-envcheck")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRunTimeout(t *testing.T) {
	r := newTestRunner(100 * time.Millisecond)

	_, err := r.Run(context.Background(), "sleep", "5")
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestRunNonZeroExit(t *testing.T) {
	r := newTestRunner(5 * time.Second)

	_, err := r.Run(context.Background(), "sh", "-c", "echo oops >&2; exit 3")
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.Code)
	assert.Equal(t, "oops", exitErr.Stderr)
}

func TestRunNonZeroExitKeepsStdout(t *testing.T) {
	r := newTestRunner(5 * time.Second)

	out, err := r.Run(context.Background(), "sh", "-c", "echo partial; exit 1")
	require.Error(t, err)
	assert.Equal(t, "partial\n", out)
}
