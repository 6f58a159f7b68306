package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/mailwind"
)

var lintCmd = &cobra.Command{
	Use:   "lint [files...]",
	Short: "Report classes and styles that will not survive conversion",
	Long: `Scan email templates for class and style attributes and report, in
golangci-lint format, utilities that are ignored or cannot be inlined.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := runLint(cmd.OutOrStdout(), args)
		if err != nil {
			return err
		}
		if code != 0 {
			os.Exit(code)
		}
		return nil
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("paths", nil, "File patterns to scan (default templates/**/*.html)")
	f.Bool("strict", false, "Report warnings as errors and fail on any issue")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (mailwind) suffix on issues")
	f.Int("base-font-size", 16, "Pixels per rem/em")
	f.Bool("no-mso", false, "Lint as if mso-line-height-rule were omitted")
}

// runLint writes the report and returns the exit code. Soft gate: only
// errors fail, unless strict mode makes every issue fail.
func runLint(w io.Writer, args []string) (int, error) {
	lintConfig := buildLintConfig(args)

	lintResult, err := mailwind.Lint(lintConfig)
	if err != nil {
		return 0, fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	format := mailwind.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		mailwind.WriteOutput(w, lintResult, format, lintConfig)
	}

	if lintConfig.Strict && len(lintResult.Issues) > 0 {
		return 1, nil
	}
	if lintResult.ErrorCount > 0 {
		return 1, nil
	}
	return 0, nil
}
