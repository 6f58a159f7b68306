package mailwind

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"

	"github.com/yacobolo/mailwind/internal/report"
	"github.com/yacobolo/mailwind/internal/style"
	"github.com/yacobolo/mailwind/internal/tailwind"
)

// LintConfig holds linting configuration.
type LintConfig struct {
	Paths   []string // glob patterns of templates to scan
	Options Options  // conversion options the templates will be converted with
	Strict  bool     // report warnings as errors

	MaxIssuesPerLinter int // 0 = unlimited
	MaxSameIssues      int // 0 = unlimited
	PrintIssuedLines   bool
	PrintLinterName    bool
	UseColors          bool
}

// LintResult contains lint findings and conversion coverage.
type LintResult struct {
	Issues         []Issue
	TruncatedCount int // issues removed by the limits
	ErrorCount     int
	WarningCount   int

	FilesScanned         int
	ClassesFound         int
	ClassesConverted     int
	ClassesIgnored       int
	ClassesUnresolved    int
	ConversionPercentage float64

	// TopUnconverted lists utility classes that never reach the inline
	// style, most frequent first.
	TopUnconverted []report.ClassCount
	Warnings       []string
}

// Statistics returns the counters in the shape the reporters print.
func (r *LintResult) Statistics() report.Statistics {
	return report.Statistics{
		FilesScanned:         r.FilesScanned,
		ClassesFound:         r.ClassesFound,
		ClassesConverted:     r.ClassesConverted,
		ClassesIgnored:       r.ClassesIgnored,
		ClassesUnresolved:    r.ClassesUnresolved,
		ConversionPercentage: r.ConversionPercentage,
	}
}

// Lint scans templates for classes and inline styles that will not survive
// conversion.
func Lint(config LintConfig) (*LintResult, error) {
	if err := config.Options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	refs, stats, warnings, err := ScanFiles(config.Paths)
	if err != nil {
		return nil, fmt.Errorf("failed to scan files: %w", err)
	}

	l := &linter{
		config:      config,
		classifier:  tailwind.NewClassifier(),
		transformer: tailwind.NewTransformer(config.Options.settings()),
		unconverted: make(map[string]*report.ClassCount),
		result:      &LintResult{FilesScanned: stats.FilesScanned, Warnings: warnings},
	}
	for _, ref := range refs {
		switch ref.Kind {
		case AttrClass:
			l.checkClasses(ref)
		case AttrStyle:
			l.checkStyle(ref)
		}
	}

	return l.finish(), nil
}

type linter struct {
	config      LintConfig
	classifier  *tailwind.Classifier
	transformer *tailwind.Transformer
	unconverted map[string]*report.ClassCount
	result      *LintResult
}

func (l *linter) checkClasses(ref AttrReference) {
	tokens, columns := tokenColumns(ref.Value, ref.Location.Column)
	for i, token := range tokens {
		l.result.ClassesFound++

		if reason := l.classifier.Reason(token); reason != tailwind.NotIgnored {
			l.result.ClassesIgnored++
			l.countUnconverted(token, reason.String())
			l.addIssue(ref.Location, columns[i], l.warning(), fmt.Sprintf(IssueIgnoredClass, token, reason))
			continue
		}

		if _, ok := l.transformer.TransformOne(token); ok {
			l.result.ClassesConverted++
			continue
		}

		l.result.ClassesUnresolved++
		if tailwind.IsUtilityClass(token) {
			l.countUnconverted(token, "no matching utility")
			l.addIssue(ref.Location, columns[i], l.warning(), fmt.Sprintf(IssueUnconvertedClass, token))
		}
	}
}

func (l *linter) checkStyle(ref AttrReference) {
	_, dropped := style.Parse(ref.Value)
	for _, fragment := range dropped {
		column := ref.Location.Column
		if idx := strings.Index(ref.Value, fragment); idx >= 0 {
			column += idx
		}
		l.addIssue(ref.Location, column, SeverityInfo, fmt.Sprintf(IssueDroppedStyle, fragment))
	}
}

func (l *linter) warning() string {
	if l.config.Strict {
		return SeverityError
	}
	return SeverityWarning
}

func (l *linter) countUnconverted(token, reason string) {
	if c, ok := l.unconverted[token]; ok {
		c.Occurrences++
		return
	}
	l.unconverted[token] = &report.ClassCount{Class: token, Occurrences: 1, Reason: reason}
}

func (l *linter) addIssue(loc FileLocation, column int, severity, text string) {
	filename := loc.File
	if filepath.IsAbs(filename) {
		filename = GetRelativePath(filename)
	}
	l.result.Issues = append(l.result.Issues, Issue{
		FromLinter:  LinterName,
		Text:        text,
		Severity:    severity,
		SourceLines: []string{loc.Text},
		Pos: IssuePos{
			Filename: filename,
			Line:     loc.Line,
			Column:   column,
		},
	})
}

func (l *linter) finish() *LintResult {
	result := l.result

	if result.ClassesFound > 0 {
		result.ConversionPercentage = float64(result.ClassesConverted) / float64(result.ClassesFound) * 100
	}
	result.TopUnconverted = sortByFrequency(l.unconverted)

	report.SortIssues(result.Issues)
	if l.config.MaxIssuesPerLinter > 0 || l.config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, l.config)
	}
	result.ErrorCount, result.WarningCount = report.CountSeverities(result.Issues)

	return result
}

// sortByFrequency orders counts by occurrences, then class name.
func sortByFrequency(counts map[string]*report.ClassCount) []report.ClassCount {
	out := make([]report.ClassCount, 0, len(counts))
	for _, c := range counts {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Occurrences != out[j].Occurrences {
			return out[i].Occurrences > out[j].Occurrences
		}
		return natural.Less(out[i].Class, out[j].Class)
	})
	return out
}

// limitIssues applies max-issues-per-linter then max-same-issues.
func limitIssues(issues []Issue, config LintConfig) ([]Issue, int) {
	originalCount := len(issues)

	if config.MaxIssuesPerLinter > 0 && len(issues) > config.MaxIssuesPerLinter {
		issues = issues[:config.MaxIssuesPerLinter]
	}

	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears.
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		if messageCounts[issue.Text] < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
