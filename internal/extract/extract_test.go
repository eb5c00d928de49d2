package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/cssextract/internal/jsx"
)

func offsetOf(t *testing.T, src, marker string) int {
	t.Helper()
	idx := strings.Index(src, marker)
	require.GreaterOrEqual(t, idx, 0, "marker %q not found", marker)
	return idx
}

func partitionOf(t *testing.T, src string) Partition {
	t.Helper()
	target, err := Analyze(src, offsetOf(t, src, "style"), Options{})
	require.NoError(t, err)
	return target.Partition
}

func TestStaticClassification(t *testing.T) {
	tests := []struct {
		name    string
		entry   string
		static  []Style
		dynamic []string
	}{
		{"string literal", "color: 'red'", []Style{{"color", "red", false}}, nil},
		{"numeric literal", "width: 100", []Style{{"width", "100", true}}, nil},
		{"numeric keeps source text", "flexGrow: 1.50", []Style{{"flexGrow", "1.50", true}}, nil},
		{"boolean literal", "inert: true", []Style{{"inert", "true", false}}, nil},
		{"template without substitutions", "background: `url(/a.png)`", []Style{{"background", "url(/a.png)", false}}, nil},
		{"string key", "'font-size': \"12px\"", []Style{{"font-size", "12px", false}}, nil},
		{"numeric string", "width: '100'", []Style{{"width", "100", false}}, nil},
		{"escaped string", `content: '\x41B'`, []Style{{"content", "AB", false}}, nil},
		{"surrogate pair escape", `content: '\uD83D\uDE00'`, []Style{{"content", "😀", false}}, nil},
		{"identifier", "color: primaryColor", nil, []string{"color: primaryColor"}},
		{"call", "padding: getPadding()", nil, []string{"padding: getPadding()"}},
		{"member", "margin: theme.space", nil, []string{"margin: theme.space"}},
		{"template with substitution", "width: `${size}px`", nil, []string{"width: `${size}px`"}},
		{"conditional", "opacity: isActive ? 1 : 0.5", nil, []string{"opacity: isActive ? 1 : 0.5"}},
		{"binary", "height: base * 2", nil, []string{"height: base * 2"}},
		{"arrow function", "onX: () => 1", nil, []string{"onX: () => 1"}},
		{"spread", "...dynamicStyles", nil, []string{"...dynamicStyles"}},
		{"computed key with static value", "['k']: 'v'", nil, []string{"['k']: 'v'"}},
		{"numeric key", "1: 'a'", nil, []string{"1: 'a'"}},
		{"shorthand", "color", nil, []string{"color"}},
		{"method", "get w() { return 1 }", nil, []string{"get w() { return 1 }"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := partitionOf(t, "<div style={{ "+tt.entry+" }} />")

			if tt.static == nil {
				assert.Empty(t, p.Static)
			} else {
				assert.Equal(t, tt.static, p.Static)
			}

			var texts []string
			for _, d := range p.Dynamic {
				texts = append(texts, d.Text)
			}
			assert.Equal(t, tt.dynamic, texts)
			assert.Equal(t, 1, p.Total)
		})
	}
}

func TestPartitionCompletenessAndOrder(t *testing.T) {
	src := `<div style={{ a: 1, b: x, ...rest, c: 'two', [k]: 3, d: f(), e: ` + "`e`" + ` }} />`
	p := partitionOf(t, src)

	assert.Equal(t, 7, p.Total)
	assert.Equal(t, p.Total, len(p.Static)+len(p.Dynamic))
	assert.Equal(t, []Style{{"a", "1", true}, {"c", "two", false}, {"e", "e", false}}, p.Static)

	require.Len(t, p.Dynamic, 4)
	assert.Equal(t, "b: x", p.Dynamic[0].Text)
	assert.Equal(t, "...rest", p.Dynamic[1].Text)
	assert.Equal(t, "[k]: 3", p.Dynamic[2].Text)
	assert.Equal(t, "d: f()", p.Dynamic[3].Text)
	for i := 1; i < len(p.Dynamic); i++ {
		assert.Less(t, p.Dynamic[i-1].Span.End, p.Dynamic[i].Span.Start)
	}
	for _, d := range p.Dynamic {
		assert.Equal(t, d.Text, src[d.Span.Start:d.Span.End])
	}
}

func TestClassReference(t *testing.T) {
	tests := []struct {
		ident string
		name  string
		want  string
	}{
		{"", "card", "styles.card"},
		{"styles", "cardTitle2", "styles.cardTitle2"},
		{"styles", "my-class", `styles["my-class"]`},
		{"styles", "_private", `styles["_private"]`},
		{"styles", "2col", `styles["2col"]`},
		{"css", "box", "css.box"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassReference(tt.ident, tt.name))
		})
	}
}

func TestTransformEndToEnd(t *testing.T) {
	src := `export default function Box() {
  return (
    <div style={{ backgroundColor: 'blue', padding: '20px' }}>
      <span>hello</span>
    </div>
  );
}
`
	res, err := Transform(src, offsetOf(t, src, "hello"), Options{
		ClassName:      "box",
		ClassAttribute: "className",
	})
	require.NoError(t, err)

	assert.True(t, res.Changed)
	assert.Equal(t, "div", res.ElementName)
	assert.Equal(t, "box", res.ClassName)
	assert.Equal(t, []Style{{"backgroundColor", "blue", false}, {"padding", "20px", false}}, res.ExtractedStyles)
	assert.Contains(t, res.TransformedCode, "className={styles.box}")
	assert.NotContains(t, res.TransformedCode, "style=")

	want := strings.Replace(src, "style={{ backgroundColor: 'blue', padding: '20px' }}", "className={styles.box}", 1)
	assert.Equal(t, want, res.TransformedCode)
}

func TestTransformMixed(t *testing.T) {
	src := `const Card = ({ isActive, dynamicPadding }) => (
  <div id="card" style={{ backgroundColor: 'red', color: 'white', padding: dynamicPadding, opacity: isActive ? 1 : 0.5 }} data-x="1">
    text
  </div>
);`
	res, err := Transform(src, offsetOf(t, src, "text"), Options{ClassName: "card"})
	require.NoError(t, err)

	assert.Equal(t, []Style{{"backgroundColor", "red", false}, {"color", "white", false}}, res.ExtractedStyles)
	assert.Contains(t, res.TransformedCode,
		`<div id="card" className={styles.card} style={{ padding: dynamicPadding, opacity: isActive ? 1 : 0.5 }} data-x="1">`)

	// The residual object reparses to the same dynamic entries.
	again, err := Analyze(res.TransformedCode, offsetOf(t, res.TransformedCode, "dynamicPadding }"), Options{})
	require.NoError(t, err)
	assert.Empty(t, again.Partition.Static)
	require.Len(t, again.Partition.Dynamic, 2)
	assert.Equal(t, "padding: dynamicPadding", again.Partition.Dynamic[0].Text)
	assert.Equal(t, "opacity: isActive ? 1 : 0.5", again.Partition.Dynamic[1].Text)
}

func TestTransformAllDynamicIsNoop(t *testing.T) {
	src := `<div style={{ color: theme.fg, ...extra }}>x</div>`
	res, err := Transform(src, offsetOf(t, src, "x<"), Options{ClassName: "unused"})
	require.NoError(t, err)

	assert.False(t, res.Changed)
	assert.Equal(t, src, res.TransformedCode)
	assert.Empty(t, res.ExtractedStyles)
	assert.Equal(t, "div", res.ElementName)
}

func TestTransformMergePolicies(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		classAttr string
		className string
		want      string
	}{
		{
			name:      "string class attribute",
			src:       `<div className="a b" style={{ color: 'red' }}>x</div>`,
			className: "card",
			want:      `<div className={"a b " + styles.card}>x</div>`,
		},
		{
			name:      "blank string class attribute",
			src:       `<div className="  " style={{ color: 'red' }}>x</div>`,
			className: "card",
			want:      `<div className={styles.card}>x</div>`,
		},
		{
			name:      "expression class attribute",
			src:       `<div className={cx('a', b)} style={{ color: 'red', width }}>x</div>`,
			className: "card",
			want:      `<div className={[cx('a', b), styles.card].filter(Boolean).join(" ")} style={{ width }}>x</div>`,
		},
		{
			name:      "string class attribute with entity",
			src:       `<div className="a&amp;b" style={{ color: 'red' }}>x</div>`,
			className: "card",
			want:      `<div className={"a&b " + styles.card}>x</div>`,
		},
		{
			name:      "style alone on its line",
			src:       "<div\n  className=\"x\"\n  style={{ color: 'red' }}\n>x</div>",
			className: "card",
			want:      "<div\n  className={\"x \" + styles.card}\n>x</div>",
		},
		{
			name:      "style alone on a CRLF line",
			src:       "<div\r\n  className=\"x\"\r\n  style={{ color: 'red' }}\r\n>x</div>",
			className: "card",
			want:      "<div\r\n  className={\"x \" + styles.card}\r\n>x</div>",
		},
		{
			name:      "valueless class attribute",
			src:       `<div className style={{ color: 'red' }}>x</div>`,
			className: "card",
			want:      `<div className={styles.card}>x</div>`,
		},
		{
			name:      "class attribute after style",
			src:       `<div style={{ color: 'red' }} className="a">x</div>`,
			className: "card",
			want:      `<div className={"a " + styles.card}>x</div>`,
		},
		{
			name:      "class convention",
			src:       `<div class="a" style={{ color: 'red' }}>x</div>`,
			classAttr: "class",
			className: "card",
			want:      `<div class={"a " + styles.card}>x</div>`,
		},
		{
			name:      "other convention untouched",
			src:       `<div class="a" style={{ color: 'red' }}>x</div>`,
			className: "card",
			want:      `<div class="a" className={styles.card}>x</div>`,
		},
		{
			name:      "bracket reference",
			src:       `<div style={{ color: 'red' }}>x</div>`,
			className: "my-class",
			want:      `<div className={styles["my-class"]}>x</div>`,
		},
		{
			name:      "self-closing",
			src:       `<img alt="" style={{ width: 10 }} />`,
			className: "thumb",
			want:      `<img alt="" className={styles.thumb} />`,
		},
		{
			name:      "self-closing mixed",
			src:       `<img style={{ width: 10, height: h }} />`,
			className: "thumb",
			want:      `<img className={styles.thumb} style={{ height: h }} />`,
		},
		{
			name:      "quote in existing class",
			src:       `<div className='say "hi"' style={{ color: 'red' }} />`,
			className: "card",
			want:      `<div className={"say \"hi\" " + styles.card} />`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Transform(tt.src, offsetOf(t, tt.src, "style"), Options{
				ClassName:      tt.className,
				ClassAttribute: tt.classAttr,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.TransformedCode)
		})
	}
}

func TestTransformNestedTargetsInnermost(t *testing.T) {
	src := `<section style={{ margin: 0 }}><p style={{ color: 'red' }}>x</p></section>`
	res, err := Transform(src, offsetOf(t, src, "x<"), Options{ClassName: "para"})
	require.NoError(t, err)

	assert.Equal(t, "p", res.ElementName)
	assert.Equal(t, `<section style={{ margin: 0 }}><p className={styles.para}>x</p></section>`, res.TransformedCode)
}

func TestTransformTSX(t *testing.T) {
	src := `type Props = { title: string };
export const Title = ({ title }: Props) => <h1 style={{ fontWeight: 700 }}>{title}</h1>;
`
	res, err := Transform(src, offsetOf(t, src, "fontWeight"), Options{
		Dialect:   jsx.DialectTSX,
		ClassName: "title",
	})
	require.NoError(t, err)
	assert.Contains(t, res.TransformedCode, `<h1 className={styles.title}>{title}</h1>`)
}

func TestTransformSoftFailures(t *testing.T) {
	t.Run("parse error", func(t *testing.T) {
		_, err := Transform(`<div style={{ color: 'red' }>`, 3, Options{ClassName: "a"})
		assert.ErrorIs(t, err, ErrParse)
		assert.ErrorIs(t, err, ErrNotApplicable)
	})

	t.Run("no styled element", func(t *testing.T) {
		src := `const a = 1; <div className="x">y</div>`
		_, err := Transform(src, offsetOf(t, src, "y<"), Options{ClassName: "a"})
		assert.ErrorIs(t, err, ErrNoStyledElement)
		assert.ErrorIs(t, err, ErrNotApplicable)
		assert.Contains(t, err.Error(), "<div> has no style object")
	})

	t.Run("outside any element", func(t *testing.T) {
		src := `const a = 1; <div style={{ color: 'red' }} />`
		_, err := Transform(src, 2, Options{ClassName: "a"})
		assert.ErrorIs(t, err, ErrNoStyledElement)
		assert.Equal(t, ErrNoStyledElement.Error(), err.Error())
	})

	t.Run("style is not an object literal", func(t *testing.T) {
		src := `<div style={base}>y</div>`
		_, err := Transform(src, offsetOf(t, src, "y<"), Options{ClassName: "a"})
		assert.ErrorIs(t, err, ErrNoStyledElement)
	})
}

func TestTransformOptionErrors(t *testing.T) {
	src := `<div style={{ color: 'red' }} />`

	_, err := Transform(src, len(src)+1, Options{ClassName: "a"})
	assert.ErrorIs(t, err, ErrOffsetOutOfRange)
	assert.NotErrorIs(t, err, ErrNotApplicable)

	_, err = Transform(src, 0, Options{ClassName: "a", ClassAttribute: "klass"})
	assert.ErrorIs(t, err, ErrUnsupportedClassAttribute)

	_, err = Transform(src, 0, Options{})
	assert.ErrorIs(t, err, ErrEmptyClassName)
}

func TestApplyEdits(t *testing.T) {
	src := "0123456789"

	out, err := ApplyEdits(src, []TextEdit{
		{StartOffset: 8, EndOffset: 10, NewText: "X"},
		{StartOffset: 0, EndOffset: 1, NewText: "AB"},
		{StartOffset: 4, EndOffset: 4, NewText: "-"},
	})
	require.NoError(t, err)
	assert.Equal(t, "AB123-4567X", out)

	_, err = ApplyEdits(src, []TextEdit{
		{StartOffset: 2, EndOffset: 5},
		{StartOffset: 4, EndOffset: 6},
	})
	assert.ErrorIs(t, err, ErrOverlappingEdits)

	_, err = ApplyEdits(src, []TextEdit{{StartOffset: 5, EndOffset: 11}})
	assert.Error(t, err)
}

func TestEditBuilderInsertOrder(t *testing.T) {
	b := NewEditBuilder()
	b.Insert(1, "a")
	b.Insert(1, "b")
	b.Delete(2, 3)

	out, err := b.Apply("xyz")
	require.NoError(t, err)
	assert.Equal(t, "xaby", out)
}
