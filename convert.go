// Package latex2mml converts LaTeX math to MathML.
//
// Each conversion owns its lexer, arena and scratch buffer, so independent
// conversions may run in parallel. Lexers and buffers are pooled between
// calls. The arena is created per call and dropped with the result.
package latex2mml

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"

	"github.com/agenthands/latex2mml/pkg/compiler/ast"
	"github.com/agenthands/latex2mml/pkg/compiler/emitter"
	"github.com/agenthands/latex2mml/pkg/compiler/lexer"
	"github.com/agenthands/latex2mml/pkg/compiler/parser"
	"github.com/agenthands/latex2mml/pkg/core/arena"
)

// ErrInputTooLarge is returned for sources whose byte offsets do not fit
// in a token.
var ErrInputTooLarge = errors.New("latex2mml: input exceeds 4 GiB")

// CT traces to the core tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// Options configures a conversion.
type Options struct {
	Display bool // block layout, display="block"
	Pretty  bool // indent the output
	XMLNS   bool // emit the MathML namespace on <math>
}

// DefaultOptions returns inline, compact output with the namespace set.
func DefaultOptions() Options {
	return Options{XMLNS: true}
}

var lexerPool = sync.Pool{
	New: func() any { return lexer.New("") },
}

// Parse parses src into a tree whose nodes live in a. Errors are
// *diag.LatexError values.
func Parse(src string, a *arena.Arena[ast.Node]) (*ast.Node, error) {
	if uint64(len(src)) > math.MaxUint32 {
		return nil, ErrInputTooLarge
	}
	l := lexerPool.Get().(*lexer.Lexer)
	l.Reset(src)
	defer func() {
		l.Reset("")
		lexerPool.Put(l)
	}()

	buf := arena.GetBuffer()
	defer arena.PutBuffer(buf)

	return parser.New(l, a, buf).Parse()
}

// ConvertTo writes the MathML for src to w.
func ConvertTo(w io.Writer, src string, opts Options) error {
	a := arena.New[ast.Node]()
	root, err := Parse(src, a)
	if err != nil {
		if t := CT(); t != nil {
			t.Infof("conversion failed: %v", err)
		}
		return err
	}
	e := emitter.NewEmitter(emitter.Config{
		Display: opts.Display,
		Pretty:  opts.Pretty,
		XMLNS:   opts.XMLNS,
	})
	if err := e.Emit(w, root); err != nil {
		return fmt.Errorf("latex2mml: render: %w", err)
	}
	if t := CT(); t != nil {
		t.Debugf("converted %d bytes into %d nodes", len(src), a.Len())
	}
	return nil
}

// Convert returns the MathML for src.
func Convert(src string, opts Options) (string, error) {
	var sb strings.Builder
	if err := ConvertTo(&sb, src, opts); err != nil {
		return "", err
	}
	return sb.String(), nil
}
