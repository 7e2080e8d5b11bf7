package checks

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() []Result {
	return []Result{
		{Name: "Python Version", Passed: true, Message: "Python 3.12.1"},
		{
			Name:    "Python Packages",
			Message: "1 of 4 required packages not available",
			Details: []string{"✗ a2a-sdk not installed"},
			Hints:   []string{"Install missing packages: pip install a2a-sdk"},
		},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResults()))

	var report struct {
		OK     bool     `json:"ok"`
		Checks []Result `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))

	assert.False(t, report.OK)
	require.Len(t, report.Checks, 2)
	assert.Equal(t, "Python Version", report.Checks[0].Name)
	assert.True(t, report.Checks[0].Passed)
	assert.Equal(t, []string{"Install missing packages: pip install a2a-sdk"}, report.Checks[1].Hints)
}

func TestWriteJSONAllPassing(t *testing.T) {
	var buf bytes.Buffer
	results := []Result{{Name: "Python Version", Passed: true, Message: "Python 3.12.1"}}
	require.NoError(t, WriteJSON(&buf, results))

	var report struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.True(t, report.OK)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, sampleResults())

	out := buf.String()
	assert.Contains(t, out, "Python Version")
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, failedBanner)
}

func TestWriteTableClosingBannerOnSuccess(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, []Result{{Name: "Python Version", Passed: true, Message: "Python 3.12.1"}})

	assert.Contains(t, buf.String(), passedBanner)
}
