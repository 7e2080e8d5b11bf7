package checks

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/agent-demo/envcheck/pkg/style"
	"github.com/olekukonko/tablewriter"
)

const banner = "============================================================"

const (
	passedBanner = "✓ All checks passed! You're ready to start building agents."
	failedBanner = "✗ Some checks failed. Please fix the issues above."
)

// PrintText prints the validation report in the default human-readable format
func PrintText(results []Result) {
	style.Header(banner)
	style.Header("Agent Demo Environment Validation")
	style.Header(banner)
	fmt.Println()

	for _, r := range results {
		if r.Passed {
			style.Pass("%s: %s", r.Name, r.Message)
		} else {
			style.Fail("%s: %s", r.Name, r.Message)
		}
		for _, d := range r.Details {
			style.Hint("%s", d)
		}
		for _, h := range r.Hints {
			style.Hint("%s", h)
		}
	}

	fmt.Println()
	style.Header(banner)
	if AllPassed(results) {
		style.Header(passedBanner)
	} else {
		style.Header(failedBanner)
	}
}

// WriteTable writes the report as a table followed by the closing banner
func WriteTable(w io.Writer, results []Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Check", "Status", "Message"})

	for _, r := range results {
		status := "PASS"
		if !r.Passed {
			status = "FAIL"
		}
		table.Append([]string{r.Name, status, r.Message})
	}

	table.Render()

	if AllPassed(results) {
		fmt.Fprintln(w, passedBanner)
	} else {
		fmt.Fprintln(w, failedBanner)
	}
}

// WriteJSON writes the report as indented JSON for scripting consumers
func WriteJSON(w io.Writer, results []Result) error {
	report := struct {
		OK     bool     `json:"ok"`
		Checks []Result `json:"checks"`
	}{
		OK:     AllPassed(results),
		Checks: results,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
