package jsx

import (
	"bytes"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

func trimQuotes(raw string) string {
	if len(raw) >= 2 {
		return raw[1 : len(raw)-1]
	}
	return raw
}

// Unquote decodes a single- or double-quoted JavaScript string literal,
// resolving escape sequences. Malformed escapes are kept verbatim.
func Unquote(raw string) string {
	body := trimQuotes(raw)
	if !strings.Contains(body, `\`) {
		return body
	}

	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 >= len(body) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch esc := body[i]; esc {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'v':
			sb.WriteByte('\v')
		case '0':
			sb.WriteByte(0)
		case '\r':
			// line continuation, with an optional \n
			if i+1 < len(body) && body[i+1] == '\n' {
				i++
			}
		case '\n':
		case 'x':
			if r, ok := parseHex(body, i+1, 2); ok {
				sb.WriteRune(r)
				i += 2
			} else {
				sb.WriteString(`\x`)
			}
		case 'u':
			r, n := parseUnicodeEscape(body, i+1)
			if n == 0 {
				sb.WriteString(`\u`)
				continue
			}
			i += n
			if r >= 0xD800 && r <= 0xDBFF {
				if low, m := lowSurrogate(body, i+1); m > 0 {
					r = utf16.DecodeRune(r, low)
					i += m
				}
			}
			sb.WriteRune(r)
		default:
			sb.WriteByte(esc)
		}
	}
	return sb.String()
}

func parseHex(s string, start, n int) (rune, bool) {
	if start+n > len(s) {
		return 0, false
	}
	v, err := strconv.ParseUint(s[start:start+n], 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}

// parseUnicodeEscape reads the part after `\u`: either four hex digits or
// a braced code point. It returns the rune and the number of bytes used.
func parseUnicodeEscape(s string, start int) (rune, int) {
	if start < len(s) && s[start] == '{' {
		end := strings.IndexByte(s[start:], '}')
		if end < 2 {
			return 0, 0
		}
		r, ok := parseHex(s, start+1, end-1)
		if !ok || !utf8.ValidRune(r) {
			return 0, 0
		}
		return r, end + 1
	}
	r, ok := parseHex(s, start, 4)
	if !ok {
		return 0, 0
	}
	return r, 4
}

// lowSurrogate reads a `\uDC00`-`\uDFFF` escape starting at s[start]. It
// returns the rune and the number of bytes used, or 0 when there is none.
func lowSurrogate(s string, start int) (rune, int) {
	if start+6 > len(s) || s[start] != '\\' || s[start+1] != 'u' {
		return 0, 0
	}
	r, ok := parseHex(s, start+2, 4)
	if !ok || r < 0xDC00 || r > 0xDFFF {
		return 0, 0
	}
	return r, 6
}

// LineColumn converts a byte offset into a 1-based line and column. The
// column counts bytes.
func LineColumn(src []byte, offset int) (int, int) {
	if offset > len(src) {
		offset = len(src)
	}
	line, lineStart := 1, 0
	for i := 0; i < offset; i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return line, offset - lineStart + 1
}

// OffsetAt converts a 1-based line and column into a byte offset. It
// returns false when the line does not exist. Columns past the end of the
// line clamp to the line end.
func OffsetAt(src []byte, line, column int) (int, bool) {
	if line < 1 || column < 1 {
		return 0, false
	}
	start := 0
	for l := 1; l < line; l++ {
		nl := bytes.IndexByte(src[start:], '\n')
		if nl < 0 {
			return 0, false
		}
		start += nl + 1
	}
	end := len(src)
	if nl := bytes.IndexByte(src[start:], '\n'); nl >= 0 {
		end = start + nl
	}
	offset := start + column - 1
	if offset > end {
		offset = end
	}
	return offset, true
}
