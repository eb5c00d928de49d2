// Package main provides the cssextract CLI for moving static inline styles
// into CSS modules.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/yacobolo/cssextract"
	"github.com/yacobolo/cssextract/internal/extract"
)

// Exit codes
const (
	exitError         = 1
	exitNotApplicable = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(reportError(err))
	}
}

// reportError prints err and returns the exit code for it. Soft failures
// (nothing to extract at the position) are warnings, not errors.
func reportError(err error) int {
	useColors := cssextract.ShouldUseColors(false)
	if errors.Is(err, extract.ErrNotApplicable) {
		fmt.Fprintln(os.Stderr, cssextract.RenderStyle(cssextract.StyleYellow, "Nothing to extract: "+err.Error(), useColors))
		return exitNotApplicable
	}
	fmt.Fprintln(os.Stderr, cssextract.RenderStyle(cssextract.StyleRed, "Error: "+err.Error(), useColors))
	return exitError
}
