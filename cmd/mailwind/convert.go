package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yacobolo/mailwind"
	"github.com/yacobolo/mailwind/internal/report"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Inline utility classes in HTML files or stdin",
	Long: `Replace Tailwind utility classes with inline style attributes.

Arguments are doublestar glob patterns. Without arguments, configured
include patterns are used; without those, stdin is converted to stdout.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runConvert,
}

func init() {
	addConvertFlags(convertCmd)
}

// addConvertFlags registers the conversion flags on cmd. The root command
// carries them too so `mailwind --no-mso file.html` works without naming
// the subcommand.
func addConvertFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("compatibility", "strict", "Target client profile: strict|modern")
	f.Int("base-font-size", 16, "Pixels per rem/em")
	f.Bool("no-mso", false, "Omit mso-line-height-rule from typography")
	f.Bool("no-vml", false, "Disable Outlook VML/MSO fallback wrappers")
	f.Bool("preserve-classes", false, "Keep every class token on converted elements")
	f.Bool("drop-classes", false, "Remove custom classes along with utilities")
	f.StringSlice("include", nil, "Glob patterns of files to convert")
	f.String("output-dir", "", "Mirror converted files below this directory")
	f.Bool("in-place", false, "Overwrite input files")
	f.String("suffix", mailwind.DefaultSuffix, "Output suffix when neither --output-dir nor --in-place is set")
	f.Int("workers", 0, "Parallel conversions (0 = number of CPUs)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	batch := buildBatchConfig(args)
	batch.Logger = logger

	if len(batch.Inputs) == 0 {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.New("no input files (pass globs or pipe HTML on stdin)")
		}
		return convertStream(cmd.InOrStdin(), cmd.OutOrStdout(), batch.Options)
	}

	result, err := mailwind.ConvertFiles(batch)
	if result == nil {
		return err
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		useColors := report.ShouldUseColors(getBoolWithFallback("color", "color", false))
		printBatchResult(cmd.OutOrStdout(), result, useColors)
	}
	if err != nil {
		return fmt.Errorf("%d of %d files failed: %w", result.Failed, len(result.Files), err)
	}
	return nil
}

func convertStream(r io.Reader, w io.Writer, opts mailwind.Options) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	out, err := mailwind.Convert(string(src), opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func printBatchResult(w io.Writer, result *mailwind.BatchResult, useColors bool) {
	for _, f := range result.Files {
		if f.Err != nil {
			fmt.Fprintf(w, "%s %s\n", report.RenderStyle(report.StyleRed, "failed", useColors), f.Err)
			continue
		}
		fmt.Fprintf(w, "%s %s -> %s (%d styled, %d unresolved)\n",
			report.RenderStyle(report.StyleGreen, "converted", useColors),
			f.Input, f.Output, f.Stats.Styled, f.Stats.Unresolved)
	}

	fmt.Fprintf(w, "\nConverted %d of %d files", result.Converted, len(result.Files))
	if result.Scan.FilesSkipped > 0 {
		fmt.Fprintf(w, " (%d skipped)", result.Scan.FilesSkipped)
	}
	fmt.Fprintln(w)
}
