package extract

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/yacobolo/cssextract/internal/jsx"
)

// ErrNotApplicable is wrapped by every error that means "nothing to do
// here" rather than "something went wrong". Callers report these to the
// user and leave the document alone.
var ErrNotApplicable = errors.New("extraction not applicable")

// Soft failures.
var (
	ErrParse           = fmt.Errorf("%w: source does not parse", ErrNotApplicable)
	ErrNoStyledElement = fmt.Errorf("%w: no element with an inline style object at offset", ErrNotApplicable)
)

// Option errors.
var (
	ErrOffsetOutOfRange          = errors.New("offset out of range")
	ErrUnsupportedClassAttribute = errors.New("class attribute must be \"className\" or \"class\"")
	ErrEmptyClassName            = errors.New("class name is empty")
)

// Options configures Analyze and Transform.
type Options struct {
	Dialect        jsx.Dialect
	ClassName      string // used by Transform only
	ClassAttribute string // "className" (default) or "class"
	StylesIdent    string // defaults to DefaultStylesIdent
	Logger         *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.ClassAttribute == "" {
		o.ClassAttribute = "className"
	}
	if o.StylesIdent == "" {
		o.StylesIdent = DefaultStylesIdent
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

func (o Options) validate() error {
	if o.ClassAttribute != "className" && o.ClassAttribute != "class" {
		return fmt.Errorf("%w: %q", ErrUnsupportedClassAttribute, o.ClassAttribute)
	}
	return nil
}

// Target is an element that Analyze found and partitioned. It is bound to
// the source it was built from.
type Target struct {
	Source         string
	Element        *jsx.Element
	StyleAttribute *jsx.Attribute
	Object         *jsx.ObjectLit
	Partition      Partition

	opts Options
}

// ElementName returns the element's tag name, "fragment" for fragments.
func (t *Target) ElementName() string {
	if t.Element.Name == "" {
		return "fragment"
	}
	return t.Element.Name
}

// Result is the outcome of a transform.
type Result struct {
	TransformedCode string  `json:"-"`
	ExtractedStyles []Style `json:"extractedStyles"`
	ElementName     string  `json:"elementName"`
	ClassName       string  `json:"className"`
	Changed         bool    `json:"changed"`
}

// Analyze parses src, finds the styled element around offset and partitions
// its style object. It never modifies anything.
func Analyze(src string, offset int, opts Options) (*Target, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if offset < 0 || offset > len(src) {
		return nil, fmt.Errorf("%w: %d not in [0,%d]", ErrOffsetOutOfRange, offset, len(src))
	}

	file, err := jsx.Parse([]byte(src), opts.Dialect)
	if err != nil {
		opts.Logger.Debug("parse failed", zap.Stringer("dialect", opts.Dialect), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	el := jsx.FindStyledElementAt(file, offset)
	if el == nil {
		opts.Logger.Debug("no styled element", zap.Int("offset", offset))
		if inner := jsx.FindAnyElementAt(file, offset); inner != nil {
			return nil, fmt.Errorf("%w (<%s> has no style object)", ErrNoStyledElement, inner.Name)
		}
		return nil, ErrNoStyledElement
	}
	attr, obj := el.StyleObject()
	p := PartitionStyles(obj, file.Source)

	opts.Logger.Debug("partitioned style",
		zap.String("element", el.Name),
		zap.Int("static", len(p.Static)),
		zap.Int("dynamic", len(p.Dynamic)),
	)

	return &Target{
		Source:         src,
		Element:        el,
		StyleAttribute: attr,
		Object:         obj,
		Partition:      p,
		opts:           opts,
	}, nil
}

// Apply rewrites the target element so its static styles come from
// className. With nothing static the source is returned unchanged.
func (t *Target) Apply(className string) (*Result, error) {
	res := &Result{
		TransformedCode: t.Source,
		ExtractedStyles: []Style{},
		ElementName:     t.ElementName(),
		ClassName:       className,
	}
	if !t.Partition.HasStatic() {
		return res, nil
	}
	if className == "" {
		return nil, ErrEmptyClassName
	}

	out, err := Rewrite(t.Source, t.Element, t.StyleAttribute, t.Partition, RewriteOptions{
		ClassName:      className,
		ClassAttribute: t.opts.ClassAttribute,
		StylesIdent:    t.opts.StylesIdent,
	})
	if err != nil {
		return nil, fmt.Errorf("rewrite %s: %w", res.ElementName, err)
	}

	t.opts.Logger.Debug("rewrote element",
		zap.String("element", res.ElementName),
		zap.String("class", className),
		zap.Int("extracted", len(t.Partition.Static)),
	)

	res.TransformedCode = out
	res.ExtractedStyles = append(res.ExtractedStyles, t.Partition.Static...)
	res.Changed = true
	return res, nil
}

// Transform is Analyze followed by Apply with opts.ClassName.
func Transform(src string, offset int, opts Options) (*Result, error) {
	target, err := Analyze(src, offset, opts)
	if err != nil {
		return nil, err
	}
	return target.Apply(opts.ClassName)
}
