package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/agenthands/latex2mml"
	"github.com/agenthands/latex2mml/pkg/compiler/lexer"
)

func TestPrintError(t *testing.T) {
	src := "a + b\n\\frac{x}{\\foo}"
	_, err := latex2mml.Convert(src, latex2mml.Options{})
	if err == nil {
		t.Fatal("expected an error")
	}

	var buf bytes.Buffer
	printError(&buf, src, err)
	out := buf.String()
	if !strings.Contains(out, `Unknown command "\foo".`) {
		t.Errorf("message missing from %q", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected message, source line and caret, got %q", out)
	}
	if lines[1] != `  \frac{x}{\foo}` {
		t.Errorf("expected the offending line, got %q", lines[1])
	}
	if col := strings.Index(lines[2], "^"); col != 2+len(`\frac{x}{`) {
		t.Errorf("caret at column %d", col)
	}
}

func TestPrintPlainError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, "x", errors.New("boom"))
	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("got %q", buf.String())
	}
}

func TestFormatToken(t *testing.T) {
	tok := lexer.New("3.14.").Next(false)
	line := formatToken(tok)
	if !strings.Contains(line, "number") || !strings.Contains(line, "3.14") || !strings.Contains(line, "(trailing '.')") {
		t.Errorf("got %q", line)
	}
	if kindName(lexer.KindCircumflex) != "punct" {
		t.Errorf("got %q", kindName(lexer.KindCircumflex))
	}
}
