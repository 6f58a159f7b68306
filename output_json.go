package mailwind

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput is the JSON export schema.
type JSONOutput struct {
	Version        string           `json:"version"`
	Timestamp      string           `json:"timestamp"`
	Summary        JSONSummary      `json:"summary"`
	Stats          JSONStats        `json:"stats"`
	Issues         []JSONIssue      `json:"issues"`
	TopUnconverted []JSONClassCount `json:"top_unconverted"`
}

// JSONSummary contains issue counts.
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Truncated    int `json:"truncated"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains conversion coverage.
type JSONStats struct {
	ClassesFound         int     `json:"classes_found"`
	ClassesConverted     int     `json:"classes_converted"`
	ClassesIgnored       int     `json:"classes_ignored"`
	ClassesUnresolved    int     `json:"classes_unresolved"`
	ConversionPercentage float64 `json:"conversion_percentage"`
}

// JSONIssue is a single issue.
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"`
}

// JSONClassCount is an unconverted class and its frequency.
type JSONClassCount struct {
	Class       string `json:"class"`
	Occurrences int    `json:"occurrences"`
	Reason      string `json:"reason"`
}

// WriteJSON writes the lint result as indented JSON.
func WriteJSON(w io.Writer, result *LintResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result))
}

func buildJSONOutput(result *LintResult) JSONOutput {
	issues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		issues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	classes := make([]JSONClassCount, len(result.TopUnconverted))
	for i, c := range result.TopUnconverted {
		classes[i] = JSONClassCount{
			Class:       c.Class,
			Occurrences: c.Occurrences,
			Reason:      c.Reason,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       result.ErrorCount,
			Warnings:     result.WarningCount,
			Truncated:    result.TruncatedCount,
			FilesScanned: result.FilesScanned,
		},
		Stats: JSONStats{
			ClassesFound:         result.ClassesFound,
			ClassesConverted:     result.ClassesConverted,
			ClassesIgnored:       result.ClassesIgnored,
			ClassesUnresolved:    result.ClassesUnresolved,
			ConversionPercentage: result.ConversionPercentage,
		},
		Issues:         issues,
		TopUnconverted: classes,
	}
}
