package report

import (
	"fmt"
	"io"
	"strings"
)

// Statistics summarizes a lint run.
type Statistics struct {
	FilesScanned         int
	ClassesFound         int
	ClassesConverted     int
	ClassesIgnored       int
	ClassesUnresolved    int
	ConversionPercentage float64
}

// ClassCount is a class token and how often it was seen.
type ClassCount struct {
	Class       string
	Occurrences int
	Reason      string
}

// VerboseReporter prints statistics and the most common unconverted
// classes.
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter.
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{w: w, useColors: useColors}
}

// PrintStatistics writes the conversion counters.
func (r *VerboseReporter) PrintStatistics(stats Statistics) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Conversion Statistics", r.useColors))
	fmt.Fprintln(r.w, "---------------------")

	fmt.Fprintf(r.w, "Files Scanned:       %d\n", stats.FilesScanned)
	fmt.Fprintf(r.w, "Classes Found:       %d\n", stats.ClassesFound)
	fmt.Fprintf(r.w, "Converted:           %d (%.1f%%)\n", stats.ClassesConverted, stats.ConversionPercentage)
	fmt.Fprintf(r.w, "Ignored in Email:    %d\n", stats.ClassesIgnored)
	fmt.Fprintf(r.w, "Not Converted:       %d\n", stats.ClassesUnresolved)
}

// PrintConversionProgress draws a progress bar for the conversion
// percentage.
func (r *VerboseReporter) PrintConversionProgress(stats Statistics) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Inline Coverage", r.useColors))
	fmt.Fprintln(r.w, "---------------")
	fmt.Fprintln(r.w, progressBar(stats.ConversionPercentage))
}

// PrintTopUnconverted lists up to ten classes that never reach the inline
// style, most frequent first.
func (r *VerboseReporter) PrintTopUnconverted(classes []ClassCount) {
	if len(classes) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Most Frequent Unconverted Classes", r.useColors))
	fmt.Fprintln(r.w, "---------------------------------")

	for i, c := range classes {
		if i >= 10 {
			break
		}
		fmt.Fprintf(r.w, "%d. %q - %s (%s)\n", i+1, c.Class, pluralizeCount(c.Occurrences, "occurrence", "occurrences"), c.Reason)
	}
}

// PrintWarnings writes free-form warnings collected during the run.
func (r *VerboseReporter) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "--------")

	for _, warning := range warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

func progressBar(percentage float64) string {
	const barWidth = 20
	filled := max(0, min(barWidth, int(percentage/100*barWidth)))

	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled) +
		fmt.Sprintf("] %.1f%%", percentage)
}
