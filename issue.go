package mailwind

import "github.com/yacobolo/mailwind/internal/report"

// Issue is a single lint finding in golangci-lint format.
type Issue = report.Issue

// IssuePos locates an issue in a file.
type IssuePos = report.IssuePos

// LinterName is reported as the FromLinter of every issue.
const LinterName = "mailwind"

// Issue severities.
const (
	SeverityError   = report.SeverityError
	SeverityWarning = report.SeverityWarning
	SeverityInfo    = report.SeverityInfo
)

// Issue messages.
const (
	IssueIgnoredClass     = "class %q is ignored in email output (%s)"
	IssueUnconvertedClass = "class %q is not converted to inline styles"
	IssueDroppedStyle     = "inline style fragment %q is dropped (no property)"
)
