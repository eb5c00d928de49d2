package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cssextract",
	Short: "Move static inline styles of JSX elements into CSS modules",
	Long: `Refactor style={{ ... }} objects into co-located CSS module classes.
Static properties move to <Component>.module.css, dynamic ones stay inline:
  <div style={{ padding: 16, width: w }}>  ->  <div className={styles.box} style={{ width: w }}>`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".cssextract.yaml", "Config file path")
	rootCmd.PersistentFlags().String("class-attribute", "className", "Class attribute convention: className|class")
	rootCmd.PersistentFlags().String("naming", "kebab-case", "CSS property naming: kebab-case|camelCase")
	rootCmd.PersistentFlags().String("styles-ident", "styles", "Identifier the CSS module is imported as")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(extractOpenCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
