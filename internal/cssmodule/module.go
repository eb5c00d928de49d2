package cssmodule

import (
	"path/filepath"
	"strings"
)

// ModulePath returns the CSS module path for a source file:
// src/Card.tsx -> src/Card.module.css.
func ModulePath(source string) string {
	return filepath.Join(filepath.Dir(source), baseName(source)+".module.css")
}

// ImportSpecifier returns the relative specifier used to import the CSS
// module from its source file.
func ImportSpecifier(source string) string {
	return "./" + baseName(source) + ".module.css"
}

func baseName(source string) string {
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ImportStatement renders the import line for the CSS module.
func ImportStatement(source, ident string) string {
	if ident == "" {
		ident = "styles"
	}
	return "import " + ident + " from '" + ImportSpecifier(source) + "';"
}

// EnsureImport adds the CSS module import at the top of src unless the
// module specifier already appears in it. A leading 'use client' or
// 'use strict' directive stays first.
func EnsureImport(src, source, ident string) string {
	if strings.Contains(src, ImportSpecifier(source)) {
		return src
	}
	line := ImportStatement(source, ident) + "\n"

	switch at := directiveEnd(src); {
	case at == 0:
		return line + src
	case at < 0:
		return src + "\n" + line
	default:
		return src[:at] + line + src[at:]
	}
}

// directiveEnd returns the offset just after a leading directive line, 0
// when the file does not start with one, and -1 when the directive is the
// whole file.
func directiveEnd(src string) int {
	trimmed := strings.TrimLeft(src, " \t\r\n")
	lead := len(src) - len(trimmed)
	for _, d := range []string{"use client", "use strict"} {
		for _, q := range []string{"'", `"`} {
			if !strings.HasPrefix(trimmed, q+d+q) {
				continue
			}
			nl := strings.IndexByte(trimmed, '\n')
			if nl < 0 {
				return -1
			}
			return lead + nl + 1
		}
	}
	return 0
}
