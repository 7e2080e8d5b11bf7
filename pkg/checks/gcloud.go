package checks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/agent-demo/envcheck/pkg/config"
	"github.com/agent-demo/envcheck/pkg/runner"
)

// unsetSentinel is what gcloud prints for an unconfigured property, distinct
// from empty output
const unsetSentinel = "(unset)"

const installHint = "Install: https://cloud.google.com/sdk/docs/install"

// CheckGcloud verifies that the cloud CLI is installed and has a project
// configured. The project query is skipped entirely when the CLI itself is
// not usable.
func CheckGcloud(ctx context.Context, profile *config.Profile, run runner.Runner) Result {
	const name = "Google Cloud CLI"
	bin := profile.Gcloud.Binary

	if _, err := run.Run(ctx, bin, "version"); err != nil {
		// missing, timed out, or exited non-zero: the CLI is not usable
		return Result{
			Name:    name,
			Message: fmt.Sprintf("%s not found", bin),
			Hints:   []string{installHint},
		}
	}

	out, err := run.Run(ctx, bin, "config", "get-value", "project")
	if err != nil && errors.Is(err, runner.ErrTimeout) {
		return Result{
			Name:    name,
			Message: "could not check project configuration",
		}
	}

	project := strings.TrimSpace(out)
	if project == "" || project == unsetSentinel {
		return Result{
			Name:    name,
			Message: "no project configured",
			Hints:   []string{"Run: gcloud config set project YOUR_PROJECT_ID"},
		}
	}

	return Result{
		Name:    name,
		Passed:  true,
		Message: fmt.Sprintf("project configured: %s", project),
	}
}
