package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default " + defaultConfigPath + " config file",
	Long:  `Create a ` + defaultConfigPath + ` configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Created "+defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# cssextract configuration
# Docs: https://github.com/yacobolo/cssextract

# Shared settings
class-attribute: className # className | class
naming: kebab-case         # kebab-case | camelCase
styles-ident: styles
max-attempts: 100
verbose: false
# editor: "code -g"        # used by extract-open, defaults to $VISUAL / $EDITOR

# Extraction settings
extract:
  dry-run: false

# Linting settings
lint:
  paths:
    - "src/**/*.{jsx,tsx}"
  strict: false
  output-format: issues    # issues | summary | full | json | markdown
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
