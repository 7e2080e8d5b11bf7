package checks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/agent-demo/envcheck/pkg/config"
	"github.com/agent-demo/envcheck/pkg/runner"
)

const (
	// versionProbe prints the interpreter's version triple
	versionProbe = `import sys; print("%d.%d.%d" % sys.version_info[:3])`

	// distProbe prints the installed version of the distribution named in
	// argv[1]; exits non-zero when the distribution is not installed
	distProbe = `import sys, importlib.metadata as m; print(m.version(sys.argv[1]))`
)

// CheckPythonVersion verifies that the configured interpreter meets the
// minimum major.minor version
func CheckPythonVersion(ctx context.Context, profile *config.Profile, run runner.Runner) Result {
	const name = "Python Version"
	interp := profile.Python.Interpreter

	out, err := run.Run(ctx, interp, "-c", versionProbe)
	if err != nil {
		switch {
		case errors.Is(err, runner.ErrNotFound):
			return Result{
				Name:    name,
				Message: fmt.Sprintf("%s not found in PATH", interp),
			}
		case errors.Is(err, runner.ErrTimeout):
			return Result{
				Name:    name,
				Message: fmt.Sprintf("%s did not respond in time", interp),
			}
		default:
			return Result{
				Name:    name,
				Message: fmt.Sprintf("could not determine %s version: %v", interp, err),
			}
		}
	}

	version := strings.TrimSpace(out)
	major, minor, err := config.ParseMajorMinor(version)
	if err != nil {
		return Result{
			Name:    name,
			Message: fmt.Sprintf("unexpected version output from %s: %q", interp, version),
		}
	}

	minMajor, minMinor := profile.MinPythonVersion()
	if major < minMajor || (major == minMajor && minor < minMinor) {
		return Result{
			Name:    name,
			Message: fmt.Sprintf("Python %s detected, %s+ required", version, profile.Python.MinVersion),
		}
	}

	return Result{
		Name:    name,
		Passed:  true,
		Message: fmt.Sprintf("Python %s", version),
	}
}

// CheckPackages verifies that every required distribution is installed,
// querying installed-package metadata through the interpreter. An empty
// package list trivially passes.
func CheckPackages(ctx context.Context, profile *config.Profile, run runner.Runner) Result {
	const name = "Python Packages"
	interp := profile.Python.Interpreter

	total := len(profile.Packages)
	if total == 0 {
		return Result{
			Name:    name,
			Passed:  true,
			Message: "no packages required",
		}
	}

	var details []string
	var missing []string
	failed := 0

	for _, pkg := range profile.Packages {
		out, err := run.Run(ctx, interp, "-c", distProbe, pkg.Dist)
		switch {
		case err == nil:
			details = append(details, fmt.Sprintf("✓ %s (%s)", pkg.Name, strings.TrimSpace(out)))
		case errors.Is(err, runner.ErrNotFound):
			// interpreter itself is missing; every lookup would fail the same way
			return Result{
				Name:    name,
				Message: fmt.Sprintf("%s not found in PATH", interp),
			}
		case errors.Is(err, runner.ErrTimeout):
			details = append(details, fmt.Sprintf("✗ %s: lookup timed out", pkg.Name))
			failed++
		default:
			details = append(details, fmt.Sprintf("✗ %s not installed", pkg.Name))
			missing = append(missing, pkg.Name)
			failed++
		}
	}

	if failed > 0 {
		result := Result{
			Name:    name,
			Message: fmt.Sprintf("%d of %d required packages not available", failed, total),
			Details: details,
		}
		if len(missing) > 0 {
			result.Hints = []string{
				fmt.Sprintf("Install missing packages: pip install %s", strings.Join(missing, " ")),
			}
		}
		return result
	}

	return Result{
		Name:    name,
		Passed:  true,
		Message: fmt.Sprintf("all %d required packages installed", total),
		Details: details,
	}
}
