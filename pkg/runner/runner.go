package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var (
	// ErrNotFound indicates the binary could not be located in PATH.
	ErrNotFound = errors.New("executable not found")
	// ErrTimeout indicates the process did not finish within the probe timeout.
	ErrTimeout = errors.New("timed out")
)

// ExitError indicates the process ran but returned a non-zero status.
type ExitError struct {
	Name   string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Name, e.Code)
}

// Runner executes an external command and returns its standard output.
// Every invocation is bounded; implementations never block indefinitely.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// Local runs commands as child processes on the local machine, each bounded
// by Timeout.
type Local struct {
	Timeout time.Duration
	Log     zerolog.Logger
}

// New returns a Local runner with the given per-invocation timeout.
func New(timeout time.Duration, log zerolog.Logger) *Local {
	return &Local{Timeout: timeout, Log: log}
}

// Run spawns name with args, waits for it to exit, and returns its stdout.
// The error is ErrNotFound, ErrTimeout, or an *ExitError so callers can
// phrase failures without parsing error strings.
func (l *Local) Run(ctx context.Context, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, l.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()

	l.Log.Debug().
		Str("cmd", name).
		Strs("args", args).
		Dur("elapsed", time.Since(start)).
		Err(err).
		Msg("probe finished")

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("%s: %w", name, ErrTimeout)
		}
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.String(), &ExitError{
				Name:   name,
				Code:   exitErr.ExitCode(),
				Stderr: strings.TrimSpace(stderr.String()),
			}
		}
		return "", fmt.Errorf("failed to run %s: %w", name, err)
	}

	return stdout.String(), nil
}
