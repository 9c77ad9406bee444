package diag_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/agenthands/latex2mml/pkg/compiler/diag"
	"github.com/agenthands/latex2mml/pkg/compiler/lexer"
	"github.com/agenthands/latex2mml/pkg/ops"
)

var (
	groupEnd = lexer.Token{Kind: lexer.KindGroupEnd}
	letterX  = lexer.Token{Kind: lexer.KindLetter, Char: 'x'}
	left     = lexer.Token{Kind: lexer.KindLeft}
	plus     = lexer.Token{Kind: lexer.KindBinaryOp, Op: ops.PlusSign.Op()}
)

func TestMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *diag.LatexError
		want string
	}{
		{"UnexpectedToken", diag.UnexpectedToken(3, groupEnd, letterX), `Expected token "}", but found token "x".`},
		{"UnclosedGroup", diag.UnclosedGroup(5, groupEnd), `Expected token "}", but not found.`},
		{"UnexpectedClose", diag.UnexpectedClose(0, groupEnd), `Unexpected closing token: "}".`},
		{"UnexpectedEOF", diag.UnexpectedEOF(2), "Unexpected end of file."},
		{"MissingParenthesis", diag.MissingParenthesis(1, left, letterX),
			`There must be a parenthesis after "\left", but not found. Instead, "x" was found.`},
		{"UnknownEnvironment", diag.UnknownEnvironment(7, "foo"), `Unknown environment "foo".`},
		{"UnknownCommand", diag.UnknownCommand(0, "foo"), `Unknown command "\foo".`},
		{"MismatchedEnvironment", diag.MismatchedEnvironment(9, "matrix", "cases"),
			`Expected "\end{matrix}", but got "\end{cases}".`},
		{"CannotBeUsedHere", diag.CannotBeUsedHere(4, lexer.Token{Kind: lexer.KindLimits}, diag.AfterBigOp),
			`Got "\limits", which may only appear after \int, \sum, ....`},
		{"CannotBeUsedHereOps", diag.CannotBeUsedHere(4, letterX, diag.BeforeSomeOps),
			`Got "x", which may only appear before supported operators.`},
		{"CannotBeUsedHereIdent", diag.CannotBeUsedHere(0, lexer.Token{Kind: lexer.KindPrime}, diag.AfterOpOrIdent),
			`Got "'", which may only appear after an identifier or operator.`},
		{"ExpectedText", diag.ExpectedText(6, `\text`), `Expected text in \text.`},
		{"EOFToken", diag.UnexpectedToken(1, plus, lexer.Token{Kind: lexer.KindEOF}),
			`Expected token "+", but found token "end of input".`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Message(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
			want := fmt.Sprintf("%d: %s", tt.err.Offset, tt.want)
			if got := tt.err.Error(); got != want {
				t.Errorf("expected %q, got %q", want, got)
			}
		})
	}
}

func TestEveryKindHasMessage(t *testing.T) {
	for k := diag.KindUnexpectedToken; k <= diag.KindExpectedText; k++ {
		e := &diag.LatexError{Kind: k}
		if e.Message() == "" {
			t.Errorf("%v: empty message", k)
		}
	}
	if got := (&diag.LatexError{Kind: 200}).Message(); got != "Unknown error Kind(200)." {
		t.Errorf("got %q", got)
	}
}

func TestInspectableWithoutMessage(t *testing.T) {
	var err error = fmt.Errorf("convert: %w", diag.UnknownCommand(12, "foo"))

	var le *diag.LatexError
	if !errors.As(err, &le) {
		t.Fatal("errors.As failed on a wrapped LatexError")
	}
	if le.Kind != diag.KindUnknownCommand || le.Offset != 12 || le.Name != "foo" {
		t.Errorf("unexpected error value %+v", le)
	}
}

func TestConstructorsDoNotAllocateMessages(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		e := diag.UnexpectedToken(1, groupEnd, letterX)
		_ = e.Kind
	})
	// The error value itself may escape; nothing else may be allocated.
	if allocs > 1 {
		t.Errorf("expected at most 1 allocation, got %f", allocs)
	}
}

func TestKindAndPlaceStrings(t *testing.T) {
	if diag.KindMismatchedEnvironment.String() != "MismatchedEnvironment" {
		t.Errorf("got %q", diag.KindMismatchedEnvironment.String())
	}
	if diag.Place(9).String() != "Place(9)" {
		t.Errorf("got %q", diag.Place(9).String())
	}
}
