package mailwind

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/mailwind/internal/report"
)

func sampleResult() *LintResult {
	return &LintResult{
		Issues: []Issue{
			{
				FromLinter:  LinterName,
				Text:        `class "flex" is ignored in email output (unsupported utility)`,
				Severity:    SeverityWarning,
				SourceLines: []string{`<div class="flex">`},
				Pos:         IssuePos{Filename: "welcome.html", Line: 3, Column: 13},
			},
		},
		WarningCount:         1,
		FilesScanned:         1,
		ClassesFound:         4,
		ClassesConverted:     3,
		ClassesIgnored:       1,
		ConversionPercentage: 75,
		TopUnconverted:       []report.ClassCount{{Class: "flex", Occurrences: 1, Reason: "unsupported utility"}},
	}
}

func noColors(t *testing.T) {
	t.Helper()
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("GITHUB_ACTIONS", "")
}

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		flag  string
		quiet bool
		want  OutputFormat
	}{
		{"", false, OutputIssues},
		{"summary", false, OutputSummary},
		{"full", false, OutputFull},
		{"json", false, OutputJSON},
		{"json", true, OutputIssues},
		{"markdown", false, OutputIssues},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineOutputFormat(tt.flag, tt.quiet))
		})
	}
}

func TestWriteOutputIssues(t *testing.T) {
	noColors(t)

	var buf bytes.Buffer
	WriteOutput(&buf, sampleResult(), OutputIssues, LintConfig{PrintLinterName: true, PrintIssuedLines: true})

	out := buf.String()
	assert.Contains(t, out, `welcome.html:3:13: class "flex" is ignored in email output (unsupported utility) (mailwind)`)
	assert.Contains(t, out, "\t<div class=\"flex\">\n\t            ^\n")
	assert.Contains(t, out, "1 issue:\n* mailwind: 1\n")
	assert.NotContains(t, out, "Conversion Statistics")
}

func TestWriteOutputFull(t *testing.T) {
	noColors(t)

	var buf bytes.Buffer
	WriteOutput(&buf, sampleResult(), OutputFull, LintConfig{})

	out := buf.String()
	assert.Contains(t, out, "welcome.html:3:13:")
	assert.Contains(t, out, "Conversion Statistics")
	assert.Contains(t, out, "Converted:           3 (75.0%)")
	assert.Contains(t, out, `1. "flex" - 1 occurrence (unsupported utility)`)
}

func TestWriteOutputSummary(t *testing.T) {
	noColors(t)

	var buf bytes.Buffer
	WriteOutput(&buf, sampleResult(), OutputSummary, LintConfig{})

	out := buf.String()
	assert.NotContains(t, out, "welcome.html:3:13:")
	assert.Contains(t, out, "Files Scanned:       1")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResult()))

	var decoded JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "1.0", decoded.Version)
	assert.NotEmpty(t, decoded.Timestamp)
	assert.Equal(t, JSONSummary{TotalIssues: 1, Warnings: 1, FilesScanned: 1}, decoded.Summary)
	assert.Equal(t, 75.0, decoded.Stats.ConversionPercentage)

	require.Len(t, decoded.Issues, 1)
	assert.Equal(t, JSONIssue{
		File:     "welcome.html",
		Line:     3,
		Column:   13,
		Severity: SeverityWarning,
		Message:  `class "flex" is ignored in email output (unsupported utility)`,
		Linter:   LinterName,
		Source:   `<div class="flex">`,
	}, decoded.Issues[0])

	require.Len(t, decoded.TopUnconverted, 1)
	assert.Equal(t, "flex", decoded.TopUnconverted[0].Class)
}
