package mailwind

import (
	"io"
	"os"

	"github.com/yacobolo/mailwind/internal/report"
)

// OutputFormat selects how lint results are written.
type OutputFormat string

const (
	// OutputIssues shows only issues in golangci-lint format.
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows conversion statistics only.
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues followed by statistics.
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data.
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat maps the --output-format flag to a format. Unknown
// or empty values fall back to issues.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	if quiet {
		return OutputIssues
	}

	switch OutputFormat(formatFlag) {
	case OutputIssues, OutputSummary, OutputFull, OutputJSON:
		return OutputFormat(formatFlag)
	}
	return OutputIssues
}

// WriteOutput writes the lint result in the given format.
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, config LintConfig) {
	switch format {
	case OutputIssues:
		reporter := newReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result.Issues, result.TruncatedCount)

	case OutputSummary:
		printStatistics(report.NewVerboseReporter(w, report.ShouldUseColors(config.UseColors)), result)

	case OutputFull:
		reporter := newReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result.Issues, result.TruncatedCount)
		printStatistics(report.NewVerboseReporter(w, reporter.UseColors()), result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}
	}
}

func newReporter(w io.Writer, config LintConfig) *report.Reporter {
	return report.NewReporter(w, report.Options{
		UseColors:        config.UseColors,
		PrintIssuedLines: config.PrintIssuedLines,
		PrintLinterName:  config.PrintLinterName,
	})
}

func printStatistics(r *report.VerboseReporter, result *LintResult) {
	stats := result.Statistics()
	r.PrintStatistics(stats)
	r.PrintConversionProgress(stats)
	r.PrintTopUnconverted(result.TopUnconverted)
	r.PrintWarnings(result.Warnings)
}
