package lexer_test

import (
	"testing"

	"github.com/agenthands/latex2mml/pkg/compiler/lexer"
	"github.com/agenthands/latex2mml/pkg/ops"
)

func TestLookupCommand(t *testing.T) {
	tests := []struct {
		name string
		want lexer.Token
	}{
		{"alpha", lexer.Token{Kind: lexer.KindLetter, Char: 'α'}},
		{"Gamma", lexer.Token{Kind: lexer.KindNormalLetter, Char: 'Γ'}},
		{"infty", lexer.Token{Kind: lexer.KindNormalLetter, Char: ops.Infinity}},
		{"times", lexer.Token{Kind: lexer.KindBinaryOp, Op: ops.MultiplicationSign.Op()}},
		{"to", lexer.Token{Kind: lexer.KindRelation, Op: ops.RightwardsArrow.Op()}},
		{"int", lexer.Token{Kind: lexer.KindBigOp, Op: ops.Integral.Op()}},
		{"lfloor", lexer.Token{Kind: lexer.KindParen, Paren: ops.LeftFloor}},
		{"quad", lexer.Token{Kind: lexer.KindSpace, Text: "1"}},
		{"liminf", lexer.Token{Kind: lexer.KindFunction, Text: "lim inf"}},
		{"mbox", lexer.Token{Kind: lexer.KindText, Text: "mbox"}},
		{"operatorname", lexer.Token{Kind: lexer.KindOperatorName}},
		{"dfrac", lexer.Token{Kind: lexer.KindFrac}},
		{`\`, lexer.Token{Kind: lexer.KindNewLine}},
		{"nolimits", lexer.Token{Kind: lexer.KindNoLimits}},
		{"Alpha", lexer.Token{Kind: lexer.KindUnknownCommand, Text: "Alpha"}},
		{"", lexer.Token{Kind: lexer.KindUnknownCommand}},
	}
	for _, tt := range tests {
		if got := lexer.LookupCommand(tt.name); got != tt.want {
			t.Errorf("%q: expected %+v, got %+v", tt.name, tt.want, got)
		}
	}
}

func TestCommandOperatorsAreClassified(t *testing.T) {
	for _, name := range []string{"pm", "leq", "in", "sum", "prod", "oint", "cdots", "mapsto"} {
		tok := lexer.LookupCommand(name)
		if tok.Op == 0 {
			t.Errorf("%s: no operator", name)
			continue
		}
		if tok.Kind == lexer.KindOperator {
			continue
		}
		if _, ok := ops.Lookup(tok.Op.Rune()); !ok {
			t.Errorf("%s: %q is not in the operator table", name, tok.Op.Rune())
		}
	}
}
