package lexer_test

import (
	"testing"

	"github.com/agenthands/latex2mml/pkg/compiler/lexer"
	"github.com/agenthands/latex2mml/pkg/ops"
)

func number(text string, trailing ops.Op) lexer.Token {
	return lexer.Token{Kind: lexer.KindNumber, Text: text, Op: trailing}
}

func letter(c rune) lexer.Token {
	return lexer.Token{Kind: lexer.KindLetter, Char: c}
}

// collect lexes src to the end, dropping offsets.
func collect(src string) []lexer.Token {
	l := lexer.New(src)
	var toks []lexer.Token
	for i := 0; i <= len(src); i++ {
		tok := l.Next(false)
		if tok.Kind == lexer.KindEOF {
			break
		}
		tok.Offset = 0
		toks = append(toks, tok)
	}
	return toks
}

func TestLexer(t *testing.T) {
	tests := []struct {
		src  string
		want []lexer.Token
	}{
		{`3`, []lexer.Token{number("3", 0)}},
		{`3.14`, []lexer.Token{number("3.14", 0)}},
		{`3.14.`, []lexer.Token{number("3.14", ops.FullStop)}},
		{`3..14`, []lexer.Token{
			number("3", ops.FullStop),
			{Kind: lexer.KindOperator, Op: ops.FullStop},
			number("14", 0),
		}},
		{`1,000.5`, []lexer.Token{number("1,000.5", 0)}},
		{`3,.`, []lexer.Token{
			number("3", ops.Comma.Op()),
			{Kind: lexer.KindOperator, Op: ops.FullStop},
		}},
		{`x`, []lexer.Token{letter('x')}},
		{`\pi`, []lexer.Token{letter('π')}},
		{`x = 3.14`, []lexer.Token{
			letter('x'),
			{Kind: lexer.KindRelation, Op: ops.EqualsSign.Op()},
			number("3.14", 0),
		}},
		{`\alpha\beta`, []lexer.Token{letter('α'), letter('β')}},
		{`x+y`, []lexer.Token{
			letter('x'),
			{Kind: lexer.KindBinaryOp, Op: ops.PlusSign.Op()},
			letter('y'),
		}},
		{`a-b`, []lexer.Token{
			letter('a'),
			{Kind: lexer.KindBinaryOp, Op: ops.MinusSign.Op()},
			letter('b'),
		}},
		{`\ 1`, []lexer.Token{{Kind: lexer.KindSpace, Text: "1"}, number("1", 0)}},
		{`é`, []lexer.Token{{Kind: lexer.KindNormalLetter, Char: 'é'}}},
		{`{}_^&~:'<>`, []lexer.Token{
			{Kind: lexer.KindGroupBegin},
			{Kind: lexer.KindGroupEnd},
			{Kind: lexer.KindUnderscore},
			{Kind: lexer.KindCircumflex},
			{Kind: lexer.KindAmpersand},
			{Kind: lexer.KindNonBreakingSpace},
			{Kind: lexer.KindColon},
			{Kind: lexer.KindPrime},
			{Kind: lexer.KindOpLessThan},
			{Kind: lexer.KindOpGreaterThan},
		}},
		{`(/|]`, []lexer.Token{
			{Kind: lexer.KindParen, Paren: ops.LeftParenthesis},
			{Kind: lexer.KindParen, Paren: ops.Solidus},
			{Kind: lexer.KindParen, Paren: ops.VerticalLine},
			{Kind: lexer.KindParen, Paren: ops.RightSquareBracket},
		}},
		{`\sum\leq\langle`, []lexer.Token{
			{Kind: lexer.KindBigOp, Op: ops.NArySummation.Op()},
			{Kind: lexer.KindRelation, Op: ops.LessThanOrEqualTo.Op()},
			{Kind: lexer.KindParen, Paren: ops.MathematicalLeftAngleBracket},
		}},
		{`\foo`, []lexer.Token{{Kind: lexer.KindUnknownCommand, Text: "foo"}}},
		{`\sin x`, []lexer.Token{{Kind: lexer.KindFunction, Text: "sin"}, letter('x')}},
		{"  \t\n x", []lexer.Token{letter('x')}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got := collect(tt.src)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d tokens, got %d: %v", len(tt.want), len(got), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("token %d: expected %+v, got %+v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestNumberTrailingSeparator(t *testing.T) {
	l := lexer.New("3.14.")
	tok := l.Next(false)
	if tok.Text != "3.14" {
		t.Errorf("expected number '3.14', got %q", tok.Text)
	}
	op, ok := tok.Trailing()
	if !ok || op != ops.FullStop {
		t.Errorf("expected trailing '.', got %q (%v)", op.Rune(), ok)
	}
	if l.Offset() != 5 {
		t.Errorf("separator should be consumed, offset is %d", l.Offset())
	}
	if tok := l.Next(false); tok.Kind != lexer.KindEOF {
		t.Errorf("expected EOF, got %v", tok)
	}

	if _, ok := lexer.New("42").Next(false).Trailing(); ok {
		t.Error("plain number reported a trailing separator")
	}
}

func TestOffsets(t *testing.T) {
	l := lexer.New(`x + \alpha_{12}`)
	want := []struct {
		kind   lexer.Kind
		offset uint32
	}{
		{lexer.KindLetter, 0},
		{lexer.KindBinaryOp, 2},
		{lexer.KindLetter, 4},
		{lexer.KindUnderscore, 10},
		{lexer.KindGroupBegin, 11},
		{lexer.KindNumber, 12},
		{lexer.KindGroupEnd, 14},
		{lexer.KindEOF, 15},
	}
	for i, w := range want {
		tok := l.Next(false)
		if tok.Kind != w.kind || tok.Offset != w.offset {
			t.Errorf("token %d: expected kind %v at %d, got kind %v at %d", i, w.kind, w.offset, tok.Kind, tok.Offset)
		}
	}
}

func TestDigitHint(t *testing.T) {
	l := lexer.New("123")
	tok := l.Next(true)
	if tok.Kind != lexer.KindNumber || tok.Text != "1" {
		t.Fatalf("expected single digit '1', got %+v", tok)
	}
	tok = l.Next(false)
	if tok.Kind != lexer.KindNumber || tok.Text != "23" {
		t.Fatalf("expected '23', got %+v", tok)
	}

	// Without a digit at the cursor the hint changes nothing.
	l = lexer.New(" 45")
	if tok := l.Next(true); tok.Text != "45" {
		t.Errorf("expected '45' after whitespace, got %q", tok.Text)
	}
	l = lexer.New("x")
	if tok := l.Next(true); tok.Kind != lexer.KindLetter {
		t.Errorf("expected letter, got %v", tok.Kind)
	}
}

func TestCommandAlwaysAdvances(t *testing.T) {
	tests := []struct {
		src  string
		want lexer.Token
		end  int
	}{
		{`\`, lexer.Token{Kind: lexer.KindUnknownCommand, Text: ""}, 1},
		{`\1`, lexer.Token{Kind: lexer.KindUnknownCommand, Text: "1"}, 2},
		{`\\x`, lexer.Token{Kind: lexer.KindNewLine}, 2},
		{`\,x`, lexer.Token{Kind: lexer.KindSpace, Text: "0.1667"}, 2},
		{`\{`, lexer.Token{Kind: lexer.KindParen, Paren: ops.LeftCurlyBracket}, 2},
		{`\é`, lexer.Token{Kind: lexer.KindUnknownCommand, Text: "é"}, 3},
		{`\frac12`, lexer.Token{Kind: lexer.KindFrac}, 5},
	}
	for _, tt := range tests {
		l := lexer.New(tt.src)
		tok := l.Next(false)
		tok.Offset = 0
		if tok != tt.want {
			t.Errorf("%q: expected %+v, got %+v", tt.src, tt.want, tok)
		}
		if l.Offset() != tt.end {
			t.Errorf("%q: expected cursor at %d, got %d", tt.src, tt.end, l.Offset())
		}
	}
}

func TestReadTextContent(t *testing.T) {
	tests := []struct {
		name   string
		src    string // text after an already consumed '{'
		want   string
		ok     bool
		offset int
	}{
		{"Simple", "a}", "a", true, 2},
		{"Nested", "{a}}rest", "{a}", true, 4},
		{"Words", "if x > 0} x", "if x > 0", true, 9},
		{"EscapedBraces", `\{a\}}`, `\{a\}`, true, 6},
		{"Empty", "}", "", true, 1},
		{"Unclosed", "abc", "", false, -1},
		{"UnclosedNested", "{a}", "", false, -1},
		{"BadEscape", `a\b}`, "", false, -1},
		{"TrailingBackslash", `a\`, "", false, -1},
		{"EscapedCloseOnly", `\}`, "", false, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := lexer.New(tt.src)
			got, ok := l.ReadTextContent()
			if ok != tt.ok || got != tt.want {
				t.Fatalf("expected (%q, %v), got (%q, %v)", tt.want, tt.ok, got, ok)
			}
			if tt.offset >= 0 && l.Offset() != tt.offset {
				t.Errorf("expected cursor at %d, got %d", tt.offset, l.Offset())
			}
		})
	}
}

func TestReadTextContentAfterGroupBegin(t *testing.T) {
	l := lexer.New(`\text{a b}x`)
	if tok := l.Next(false); tok.Kind != lexer.KindText {
		t.Fatalf("expected text command, got %v", tok)
	}
	if tok := l.Next(false); tok.Kind != lexer.KindGroupBegin {
		t.Fatalf("expected '{', got %v", tok)
	}
	text, ok := l.ReadTextContent()
	if !ok || text != "a b" {
		t.Fatalf("expected 'a b', got %q (%v)", text, ok)
	}
	if tok := l.Next(false); tok.Kind != lexer.KindLetter || tok.Char != 'x' {
		t.Errorf("expected 'x' after the text, got %v", tok)
	}
}

func TestNulIsEndOfInput(t *testing.T) {
	l := lexer.New("a\x00b")
	l.Next(false)
	if tok := l.Next(false); tok.Kind != lexer.KindEOF {
		t.Errorf("expected EOF at NUL, got %v", tok)
	}
}

func TestReset(t *testing.T) {
	l := lexer.New("x")
	l.Next(false)
	l.Reset("42")
	if tok := l.Next(false); tok.Text != "42" || tok.Offset != 0 {
		t.Errorf("expected '42' at 0 after reset, got %+v", tok)
	}
}

func TestCustomCommands(t *testing.T) {
	resolve := func(name string) lexer.Token {
		if name == "R" {
			return lexer.Token{Kind: lexer.KindNormalLetter, Char: 'ℝ'}
		}
		return lexer.LookupCommand(name)
	}
	l := lexer.NewWithCommands(`\R\pi`, resolve)
	if tok := l.Next(false); tok.Char != 'ℝ' || tok.Offset != 0 {
		t.Errorf("expected ℝ, got %+v", tok)
	}
	if tok := l.Next(false); tok.Char != 'π' || tok.Offset != 2 {
		t.Errorf("expected π, got %+v", tok)
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  lexer.Token
		want string
	}{
		{lexer.Token{Kind: lexer.KindEOF}, "end of input"},
		{lexer.Token{Kind: lexer.KindGroupEnd}, "}"},
		{lexer.Token{Kind: lexer.KindLetter, Char: 'α'}, "α"},
		{lexer.Token{Kind: lexer.KindRelation, Op: ops.EqualsSign.Op()}, "="},
		{lexer.Token{Kind: lexer.KindParen, Paren: ops.Null}, "."},
		{lexer.Token{Kind: lexer.KindUnknownCommand, Text: "foo"}, `\foo`},
		{lexer.Token{Kind: lexer.KindRight}, `\right`},
		{lexer.Token{Kind: lexer.KindNewLine}, `\\`},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestLexerZeroAlloc(t *testing.T) {
	src := `\sum_{i=1}^{n} x_i^2 + \frac{3.14}{\alpha} \leq \left( y' \right) \text{ok}`
	l := lexer.New(src)

	allocs := testing.AllocsPerRun(10, func() {
		l.Reset(src)
		for {
			tok := l.Next(false)
			if tok.Kind == lexer.KindEOF {
				break
			}
			if tok.Kind == lexer.KindText {
				l.Next(false)
				l.ReadTextContent()
			}
		}
	})

	if allocs > 0 {
		t.Errorf("expected 0 allocations, got %f", allocs)
	}
}
