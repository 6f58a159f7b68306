package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var rootCmd = &cobra.Command{
	Use:   "mailwind [files...]",
	Short: "Inline Tailwind utility classes into email-safe HTML",
	Long: `Convert Tailwind utility classes into inline style attributes that
email clients render, with Outlook-friendly properties.

Reads stdin and writes stdout when no files are given.`,
	// Default behavior: run convert when no subcommand is given.
	// loadConfig runs here because convertCmd's PreRunE is not triggered
	// when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runConvert(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", defaultConfigPath, "Config file path")

	addConvertFlags(rootCmd)

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds the diagnostic logger. Reports go to stdout; logs go to
// stderr.
func newLogger() (*zap.Logger, error) {
	if getBoolWithFallback("quiet", "quiet", false) {
		return zap.NewNop(), nil
	}
	if getBoolWithFallback("verbose", "verbose", false) {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.Encoding = "console"
	cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	return cfg.Build()
}
