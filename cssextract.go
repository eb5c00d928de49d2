// Package cssextract moves static inline styles of JSX elements into
// co-located CSS modules.
//
// # Extraction
//
// Extract the static part of the style object around a cursor position:
//
//	result, err := cssextract.Extract(cssextract.ExtractConfig{
//		SourceFile: "src/components/Card.tsx",
//		Line:       12,
//		Column:     9,
//	})
//
// The element gets a className referencing styles.<name>, the static
// declarations are appended to Card.module.css and the module import is
// added when missing. Dynamic properties stay inline.
//
// # Linting
//
// Report inline styles that could be extracted:
//
//	result, err := cssextract.Lint(cssextract.LintConfig{
//		Paths: []string{"src/**/*.{jsx,tsx}"},
//	})
//
// # CLI Tool
//
// Install with:
//
//	go install github.com/yacobolo/cssextract/cmd/cssextract@latest
package cssextract
