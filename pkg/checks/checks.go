package checks

import (
	"context"

	"github.com/agent-demo/envcheck/pkg/config"
	"github.com/agent-demo/envcheck/pkg/runner"
)

// Result represents the result of a single environment check
type Result struct {
	Name    string   `json:"name"`
	Passed  bool     `json:"passed"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	Hints   []string `json:"hints,omitempty"`
}

// Run executes the environment checks in fixed order: interpreter version,
// required packages, cloud CLI configuration. The order is presentational
// only; no check depends on another's result.
func Run(ctx context.Context, profile *config.Profile, run runner.Runner) []Result {
	return []Result{
		CheckPythonVersion(ctx, profile, run),
		CheckPackages(ctx, profile, run),
		CheckGcloud(ctx, profile, run),
	}
}

// AllPassed reports whether every check in the list passed
func AllPassed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}
