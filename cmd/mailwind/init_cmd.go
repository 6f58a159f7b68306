package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .mailwind.yaml config file",
	Long:  `Create a .mailwind.yaml configuration file in the current directory with the default options.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# mailwind configuration
# Docs: https://github.com/yacobolo/mailwind

verbose: false

# Conversion settings
convert:
  compatibility: strict      # strict | modern
  base-font-size: 16         # px per rem/em
  no-mso: false              # omit mso-line-height-rule
  no-vml: false              # disable Outlook fallback wrappers
  preserve-classes: false    # keep every class token
  drop-classes: false        # remove custom classes too
  include:
    - "templates/**/*.html"
  output-dir: dist/email
  in-place: false
  suffix: .inline.html
  workers: 0                 # 0 = number of CPUs

# Linting settings
lint:
  paths:
    - "templates/**/*.html"
  strict: false
  output-format: issues      # issues | summary | full | json
  max-issues-per-linter: 0   # 0 = unlimited
  max-same-issues: 0         # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
