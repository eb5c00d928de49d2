// Package cssmodule reads and writes the CSS module files that sit beside
// JSX sources: class lookup, name generation, rule formatting and import
// management.
package cssmodule

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
)

// DefaultMaxAttempts bounds GenerateUnique when no bound is given.
const DefaultMaxAttempts = 100

// ErrNameGenerationExhausted means every generated candidate collided with
// an existing class.
var ErrNameGenerationExhausted = errors.New("unique class name generation exhausted")

// ClassExists reports whether css contains a rule whose selector is
// .name followed by an opening brace, with any whitespace between.
func ClassExists(css, name string) bool {
	if name == "" {
		return false
	}
	re := regexp.MustCompile(`(^|[^A-Za-z0-9_-])\.` + regexp.QuoteMeta(name) + `\s*\{`)
	return re.MatchString(css)
}

var classIdent = regexp.MustCompile(`^(--|-?[_a-zA-Z\x{80}-\x{10FFFF}])[_a-zA-Z0-9\x{80}-\x{10FFFF}-]*$`)

// ValidClassName reports whether name can be written as a class selector
// without escaping.
func ValidClassName(name string) bool {
	return classIdent.MatchString(name)
}

var hintReplacer = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// SanitizeHint turns an element name into a class name prefix.
// "motion.div" becomes "motion-div"; an empty result falls back to
// "element".
func SanitizeHint(hint string) string {
	s := strings.Trim(hintReplacer.ReplaceAllString(hint, "-"), "-")
	if s == "" {
		return "element"
	}
	return s
}

// GenerateUnique returns "<hint>-<n>" with n in [0, 999] such that the
// class does not exist in css. It gives up after maxAttempts collisions;
// maxAttempts <= 0 means DefaultMaxAttempts.
func GenerateUnique(css, hint string, maxAttempts int) (string, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	prefix := SanitizeHint(hint)
	for range maxAttempts {
		name := fmt.Sprintf("%s-%d", prefix, rand.IntN(1000))
		if !ClassExists(css, name) {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %d attempts for prefix %q", ErrNameGenerationExhausted, maxAttempts, prefix)
}
