package extract

import (
	"errors"
	"regexp"
	"strings"

	"github.com/yacobolo/cssextract/internal/jsx"
)

// DefaultStylesIdent is the name the CSS module is imported under.
const DefaultStylesIdent = "styles"

var bareIdentifier = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// ErrStyleNotObject is returned by Rewrite when the style attribute does
// not hold an object literal.
var ErrStyleNotObject = errors.New("style attribute is not an object literal")

// ClassReference renders the expression that reads className from the
// CSS module object: styles.card, or styles["my-class"] when the name is
// not a plain identifier.
func ClassReference(stylesIdent, className string) string {
	if stylesIdent == "" {
		stylesIdent = DefaultStylesIdent
	}
	if bareIdentifier.MatchString(className) {
		return stylesIdent + "." + className
	}
	return stylesIdent + "[" + quoteJS(className) + "]"
}

// RewriteOptions names the class and the attribute that carries it.
type RewriteOptions struct {
	ClassName      string
	ClassAttribute string
	StylesIdent    string
}

// Rewrite moves the static part of p onto a class attribute of el and
// returns the new source. Only the class attribute and the style attribute
// are touched; every other byte is preserved.
//
// Policy:
//   - no class attribute: a new one takes the place of the style attribute,
//     or is inserted just before it when dynamic entries remain;
//   - existing class attribute: merged at runtime, see mergeClassAttribute;
//   - dynamic entries remain: the style object keeps only those entries;
//   - no dynamic entries: the style attribute is removed together with one
//     leading space, or with its whole line when it stands alone on it.
//
// The residual style object is rebuilt from the dynamic entries alone, so
// comments between entries are not carried over.
func Rewrite(src string, el *jsx.Element, style *jsx.Attribute, p Partition, opts RewriteOptions) (string, error) {
	if !p.HasStatic() {
		return src, nil
	}

	container, ok := style.Value.(*jsx.ExprContainer)
	if !ok || container.Expr == nil {
		return "", ErrStyleNotObject
	}
	obj, ok := container.Expr.(*jsx.ObjectLit)
	if !ok {
		return "", ErrStyleNotObject
	}

	ref := ClassReference(opts.StylesIdent, opts.ClassName)
	fresh := opts.ClassAttribute + "={" + ref + "}"
	styleSpan := style.Span()

	b := NewEditBuilder()
	existing := el.Attribute(opts.ClassAttribute)
	if existing != nil {
		sp := existing.Span()
		b.ReplaceRange(sp.Start, sp.End, mergeClassAttribute(src, existing, ref))
	}

	switch {
	case len(p.Dynamic) > 0:
		if existing == nil {
			b.Insert(styleSpan.Start, fresh+" ")
		}
		sp := obj.Span()
		b.ReplaceRange(sp.Start, sp.End, joinDynamic(p.Dynamic))
	case existing == nil:
		b.ReplaceRange(styleSpan.Start, styleSpan.End, fresh)
	default:
		b.Delete(leadingSpace(src, styleSpan.Start), styleSpan.End)
	}

	return b.Apply(src)
}

// leadingSpace returns where the removal of an attribute starting at start
// begins. An attribute alone on its line takes the line break before it;
// otherwise one preceding space goes.
func leadingSpace(src string, start int) int {
	i := start
	for i > 0 && (src[i-1] == ' ' || src[i-1] == '\t') {
		i--
	}
	if i > 0 && src[i-1] == '\n' {
		i--
		if i > 0 && src[i-1] == '\r' {
			i--
		}
		return i
	}
	if start > 0 && src[start-1] == ' ' {
		return start - 1
	}
	return start
}

// mergeClassAttribute combines an existing class attribute with ref so
// both classes apply at runtime:
//
//	className            -> className={ref}
//	className="a b"      -> className={"a b " + ref}
//	className={expr}     -> className={[expr, ref].filter(Boolean).join(" ")}
func mergeClassAttribute(src string, attr *jsx.Attribute, ref string) string {
	name := attr.Name
	switch v := attr.Value.(type) {
	case *jsx.StringLit:
		existing := strings.TrimSpace(v.Value)
		if existing == "" {
			return name + "={" + ref + "}"
		}
		return name + "={" + quoteJS(existing+" ") + " + " + ref + "}"
	case *jsx.ExprContainer:
		if v.Expr == nil {
			return name + "={" + ref + "}"
		}
		return name + "={[" + v.Expr.Span().Text([]byte(src)) + ", " + ref + "].filter(Boolean).join(\" \")}"
	case *jsx.Element:
		return name + "={[" + v.Span().Text([]byte(src)) + ", " + ref + "].filter(Boolean).join(\" \")}"
	default:
		return name + "={" + ref + "}"
	}
}

// quoteJS renders s as a double-quoted JavaScript string literal.
func quoteJS(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
