package cssmodule

import (
	"sort"
	"strings"

	"github.com/yacobolo/cssextract/internal/extract"
)

// PropertyCategory groups related CSS properties in lint statistics.
type PropertyCategory string

const (
	CategoryVisual     PropertyCategory = "Visual"
	CategoryLayout     PropertyCategory = "Layout"
	CategoryTypography PropertyCategory = "Typography"
	CategoryEffects    PropertyCategory = "Effects"
	CategoryInternal   PropertyCategory = "Internal"
)

// Categories lists every category in display order.
var Categories = []PropertyCategory{
	CategoryLayout,
	CategoryVisual,
	CategoryTypography,
	CategoryEffects,
	CategoryInternal,
}

var categoryMembers = map[PropertyCategory][]string{
	CategoryVisual: {
		"background", "background-color", "background-image", "background-size",
		"background-position", "background-repeat", "color", "border",
		"border-radius", "box-shadow", "opacity", "outline", "fill", "stroke",
		"cursor", "visibility",
	},
	CategoryLayout: {
		"display", "flex", "justify-content", "align-items", "align-self",
		"align-content", "gap", "row-gap", "column-gap", "position", "inset",
		"top", "right", "bottom", "left", "width", "height", "min-width",
		"min-height", "max-width", "max-height", "padding", "margin",
		"overflow", "overflow-x", "overflow-y", "z-index", "aspect-ratio",
		"object-fit", "object-position", "box-sizing", "float", "order",
	},
	CategoryTypography: {
		"font", "font-family", "font-size", "font-weight", "font-style",
		"font-variant", "line-height", "letter-spacing", "text-align",
		"text-decoration", "text-transform", "text-overflow", "white-space",
		"word-break", "word-wrap", "hyphens", "vertical-align",
	},
	CategoryEffects: {
		"transition", "transform", "transform-origin", "animation", "filter",
		"backdrop-filter", "mix-blend-mode", "clip-path", "mask",
		"will-change",
	},
}

var propertyCategories = func() map[string]PropertyCategory {
	m := make(map[string]PropertyCategory)
	for cat, names := range categoryMembers {
		for _, n := range names {
			m[n] = cat
		}
	}
	return m
}()

// CategorizeProperty returns the category of a property, accepting both
// React (camelCase) and CSS (kebab-case) spellings.
func CategorizeProperty(name string) PropertyCategory {
	name = ToKebab(name)
	if cat, ok := propertyCategories[name]; ok {
		return cat
	}

	for _, vendor := range []string{"-webkit-", "-moz-", "-ms-", "-o-"} {
		if strings.HasPrefix(name, vendor) {
			return CategoryInternal
		}
	}
	if strings.HasPrefix(name, "--") {
		return CategoryInternal
	}

	prefixes := []struct {
		prefix string
		cat    PropertyCategory
	}{
		{"flex-", CategoryLayout},
		{"grid", CategoryLayout},
		{"padding-", CategoryLayout},
		{"margin-", CategoryLayout},
		{"inset-", CategoryLayout},
		{"border-", CategoryVisual},
		{"outline-", CategoryVisual},
		{"font-", CategoryTypography},
		{"text-", CategoryTypography},
		{"transition-", CategoryEffects},
		{"animation-", CategoryEffects},
	}
	for _, p := range prefixes {
		if strings.HasPrefix(name, p.prefix) {
			return p.cat
		}
	}

	return CategoryLayout
}

// CategorizeStyles groups styles by category, sorted by name within each
// group.
func CategorizeStyles(styles []extract.Style) map[PropertyCategory][]extract.Style {
	result := make(map[PropertyCategory][]extract.Style)
	for _, s := range styles {
		cat := CategorizeProperty(s.Name)
		result[cat] = append(result[cat], s)
	}
	for cat := range result {
		sort.SliceStable(result[cat], func(i, j int) bool {
			return result[cat][i].Name < result[cat][j].Name
		})
	}
	return result
}
