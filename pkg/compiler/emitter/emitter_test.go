package emitter_test

import (
	"testing"

	"github.com/agenthands/latex2mml/pkg/compiler/ast"
	"github.com/agenthands/latex2mml/pkg/compiler/emitter"
	"github.com/agenthands/latex2mml/pkg/compiler/lexer"
	"github.com/agenthands/latex2mml/pkg/compiler/parser"
	"github.com/agenthands/latex2mml/pkg/core/arena"
)

func render(t *testing.T, src string, cfg emitter.Config) string {
	t.Helper()
	p := parser.New(lexer.New(src), arena.New[ast.Node](), arena.NewBuffer(0))
	root, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", src, err)
	}
	out, err := emitter.NewEmitter(cfg).String(root)
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	return out
}

func TestEmitter(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"Empty", ``, `<math></math>`},
		{"Superscript", `x^2`, `<math><msup><mi>x</mi><mn>2</mn></msup></math>`},
		{"BareParens", `(x)`, `<math><mo stretchy="false">(</mo><mi>x</mi><mo stretchy="false">)</mo></math>`},
		{"Solidus", `a/b`, `<math><mi>a</mi><mo lspace="0" rspace="0">/</mo><mi>b</mi></math>`},
		{"Fenced", `\left( x \right)`,
			`<math><mrow><mo form="prefix">(</mo><mi>x</mi><mo form="postfix">)</mo></mrow></math>`},
		{"FencedNull", `\left| x \right.`,
			`<math><mrow><mo form="prefix" stretchy="true">|</mo><mi>x</mi></mrow></math>`},
		{"FencedNullMiddle", `\left( x \middle. y \right.`,
			`<math><mrow><mo form="prefix">(</mo><mi>x</mi><mi>y</mi></mrow></math>`},
		{"OperatorName", `\operatorname{rank}A`, `<math><mi>rank</mi><mi>A</mi></math>`},
		{"Upright", `\Gamma`, `<math><mi mathvariant="normal">Γ</mi></math>`},
		{"Escaped", `a<b`, `<math><mi>a</mi><mo>&lt;</mo><mi>b</mi></math>`},
		{"Function", `\sin x`, `<math><mi>sin</mi><mi>x</mi></math>`},
		{"Space", `a\,b`, `<math><mi>a</mi><mspace width="0.1667em"></mspace><mi>b</mi></math>`},
		{"Limits", `\sum\limits_i`, `<math><munder><mo movablelimits="false">∑</mo><mi>i</mi></munder></math>`},
		{"Text", `\text{a&b}`, `<math><mtext>a&amp;b</mtext></math>`},
		{"Frac", `\frac12`, `<math><mfrac><mn>1</mn><mn>2</mn></mfrac></math>`},
		{"Root", `\sqrt[3]{x}`, `<math><mroot><mi>x</mi><mn>3</mn></mroot></math>`},
		{"Cases", `\begin{cases}x&y\end{cases}`,
			`<math><mrow><mo form="prefix">{</mo><mtable columnalign="left left"><mtr><mtd><mi>x</mi></mtd><mtd><mi>y</mi></mtd></mtr></mtable></mrow></math>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, tt.src, emitter.Config{}); got != tt.want {
				t.Errorf("expected %s\ngot      %s", tt.want, got)
			}
		})
	}
}

func TestEmitterDisplay(t *testing.T) {
	got := render(t, `x`, emitter.Config{Display: true, XMLNS: true})
	want := `<math xmlns="http://www.w3.org/1998/Math/MathML" display="block"><mi>x</mi></math>`
	if got != want {
		t.Errorf("expected %s\ngot      %s", want, got)
	}

	got = render(t, `\sum`, emitter.Config{Display: true})
	want = `<math display="block"><mo largeop="true">∑</mo></math>`
	if got != want {
		t.Errorf("expected %s\ngot      %s", want, got)
	}
}

func TestEmitterPretty(t *testing.T) {
	got := render(t, `x^2`, emitter.Config{Pretty: true})
	want := "<math>\n  <msup>\n    <mi>x</mi>\n    <mn>2</mn>\n  </msup>\n</math>"
	if got != want {
		t.Errorf("expected %q\ngot      %q", want, got)
	}
}
