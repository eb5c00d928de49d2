package cssmodule

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yacobolo/cssextract/internal/extract"
)

// Naming selects how property names are written to the CSS module.
type Naming string

const (
	KebabCase Naming = "kebab-case"
	CamelCase Naming = "camelCase"
)

// ParseNaming validates a naming convention from configuration.
func ParseNaming(s string) (Naming, error) {
	switch Naming(s) {
	case KebabCase, "":
		return KebabCase, nil
	case CamelCase:
		return CamelCase, nil
	}
	return "", fmt.Errorf("invalid naming %q (want %q or %q)", s, KebabCase, CamelCase)
}

// ToKebab converts a React style key to its CSS property name:
// backgroundColor -> background-color, WebkitTransition ->
// -webkit-transition, msTransform -> -ms-transform. Names that already
// contain a dash are returned unchanged.
func ToKebab(name string) string {
	if strings.Contains(name, "-") {
		return name
	}
	if strings.HasPrefix(name, "ms") && len(name) > 2 && isUpper(name[2]) {
		name = "Ms" + name[2:]
	}

	var sb strings.Builder
	for i := 0; i < len(name); i++ {
		c := name[i]
		if isUpper(c) {
			sb.WriteByte('-')
			sb.WriteByte(c + ('a' - 'A'))
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// ToCamel converts a CSS property name to its React style key. Custom
// properties (--x) are returned unchanged.
func ToCamel(name string) string {
	if strings.HasPrefix(name, "--") || !strings.Contains(name, "-") {
		return name
	}
	parts := strings.Split(name, "-")
	vendor := parts[0] == "" && len(parts) > 1
	if vendor {
		parts = parts[1:]
	}

	var sb strings.Builder
	for i, p := range parts {
		if p == "" {
			continue
		}
		if i == 0 && !(vendor && p != "ms") {
			sb.WriteString(p)
			continue
		}
		sb.WriteString(strings.ToUpper(p[:1]) + p[1:])
	}
	return sb.String()
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

// unitless lists the style keys React renders without a px suffix.
var unitless = map[string]bool{
	"animationIterationCount": true,
	"aspectRatio":             true,
	"borderImageOutset":       true,
	"borderImageSlice":        true,
	"borderImageWidth":        true,
	"columnCount":             true,
	"columns":                 true,
	"flex":                    true,
	"flexGrow":                true,
	"flexShrink":              true,
	"flexOrder":               true,
	"gridArea":                true,
	"gridRow":                 true,
	"gridRowEnd":              true,
	"gridRowStart":            true,
	"gridColumn":              true,
	"gridColumnEnd":           true,
	"gridColumnStart":         true,
	"fontWeight":              true,
	"lineClamp":               true,
	"lineHeight":              true,
	"opacity":                 true,
	"order":                   true,
	"orphans":                 true,
	"scale":                   true,
	"tabSize":                 true,
	"widows":                  true,
	"zIndex":                  true,
	"zoom":                    true,
	"fillOpacity":             true,
	"floodOpacity":            true,
	"stopOpacity":             true,
	"strokeDasharray":         true,
	"strokeDashoffset":        true,
	"strokeMiterlimit":        true,
	"strokeOpacity":           true,
	"strokeWidth":             true,
}

var bareNumber = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)$`)

// cssValue renders a style value the way React would apply it inline. Only
// number literals get a unit; React passes strings through unchanged.
func cssValue(s extract.Style) string {
	name, value := s.Name, s.Value
	if !s.Numeric || strings.HasPrefix(name, "--") || !bareNumber.MatchString(value) {
		return value
	}
	if value == "0" || unitless[ToCamel(name)] {
		return value
	}
	return value + "px"
}

// FormatDeclarations renders one "name: value" string per style, in order.
func FormatDeclarations(styles []extract.Style, naming Naming) []string {
	out := make([]string, 0, len(styles))
	for _, s := range styles {
		name := ToKebab(s.Name)
		if naming == CamelCase {
			name = ToCamel(s.Name)
		}
		out = append(out, name+": "+cssValue(s))
	}
	return out
}

// FormatRule renders a complete class rule ending in a newline.
func FormatRule(className string, styles []extract.Style, naming Naming) string {
	var sb strings.Builder
	sb.WriteString("." + className + " {\n")
	for _, decl := range FormatDeclarations(styles, naming) {
		sb.WriteString("  " + decl + ";\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}

// AppendRule appends rule to css, separated from existing content by one
// blank line.
func AppendRule(css, rule string) string {
	trimmed := strings.TrimRight(css, " \t\r\n")
	if trimmed == "" {
		return rule
	}
	return trimmed + "\n\n" + rule
}
