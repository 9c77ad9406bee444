// Package parser is the grammar layer: it pulls tokens from the lexer,
// builds an ast tree in an arena and reports problems as diag errors.
package parser

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"

	"github.com/agenthands/latex2mml/pkg/compiler/ast"
	"github.com/agenthands/latex2mml/pkg/compiler/diag"
	"github.com/agenthands/latex2mml/pkg/compiler/lexer"
	"github.com/agenthands/latex2mml/pkg/core/arena"
	"github.com/agenthands/latex2mml/pkg/ops"
)

// T traces to the syntax tracer.
func T() tracing.Trace {
	return gtrace.SyntaxTracer
}

// stopSet is a set of token kinds that end a sequence. The bracket bit
// stands for the ']' fence closing an optional argument.
type stopSet uint64

const stopBracket stopSet = 1 << 63

func stopOn(kinds ...lexer.Kind) stopSet {
	var s stopSet
	for _, k := range kinds {
		s |= 1 << k
	}
	return s
}

func (s stopSet) has(tok lexer.Token) bool {
	if s&stopBracket != 0 && tok.Kind == lexer.KindParen && tok.Paren == ops.RightSquareBracket {
		return true
	}
	return s&(1<<tok.Kind) != 0
}

var (
	stopTop    = stopOn(lexer.KindEOF)
	stopGroup  = stopOn(lexer.KindGroupEnd)
	stopFence  = stopOn(lexer.KindRight, lexer.KindMiddle)
	stopCell   = stopOn(lexer.KindAmpersand, lexer.KindNewLine, lexer.KindEnd)
	stopOption = stopBracket

	tokGroupBegin = lexer.Token{Kind: lexer.KindGroupBegin}
	tokGroupEnd   = lexer.Token{Kind: lexer.KindGroupEnd}
	tokRight      = lexer.Token{Kind: lexer.KindRight}
	tokEnd        = lexer.Token{Kind: lexer.KindEnd}
	tokBracket    = lexer.Token{Kind: lexer.KindParen, Paren: ops.RightSquareBracket}
)

// Parser is a recursive-descent parser with one token of look-ahead.
// Tokens are fetched lazily so that the digit hint can be chosen at the
// point where the next token is actually needed.
type Parser struct {
	lex   *lexer.Lexer
	arena *arena.Arena[ast.Node]
	buf   *arena.Buffer

	cur    lexer.Token
	loaded bool

	pending    lexer.Token
	hasPending bool
}

// New creates a parser reading from l. Nodes go to a, and composed strings
// are built in buf before being moved into a.
func New(l *lexer.Lexer, a *arena.Arena[ast.Node], buf *arena.Buffer) *Parser {
	return &Parser{lex: l, arena: a, buf: buf}
}

// Reset prepares the parser for a new conversion.
func (p *Parser) Reset(l *lexer.Lexer, a *arena.Arena[ast.Node], buf *arena.Buffer) {
	*p = Parser{lex: l, arena: a, buf: buf}
}

// Parse parses the whole input into a row.
func (p *Parser) Parse() (*ast.Node, error) {
	children, err := p.parseSequence(stopTop, lexer.Token{})
	if err != nil {
		if t := T(); t != nil {
			t.Debugf("parse failed: %v", err)
		}
		return nil, err
	}
	return p.row(children), nil
}

func (p *Parser) fetch(wantsDigit bool) lexer.Token {
	if p.hasPending {
		p.hasPending = false
		return p.pending
	}
	tok := p.lex.Next(wantsDigit)
	if op, ok := tok.Trailing(); ok {
		kind := lexer.KindRelation
		if op == ops.FullStop {
			kind = lexer.KindOperator
		}
		p.pending = lexer.Token{Kind: kind, Op: op, Offset: tok.Offset + uint32(len(tok.Text))}
		p.hasPending = true
		tok.Op = 0
	}
	return tok
}

func (p *Parser) peek(wantsDigit bool) lexer.Token {
	if !p.loaded {
		p.cur = p.fetch(wantsDigit)
		p.loaded = true
	}
	return p.cur
}

func (p *Parser) take() lexer.Token {
	tok := p.peek(false)
	p.loaded = false
	return tok
}

func (p *Parser) push(n ast.Node) *ast.Node {
	return p.arena.Push(n)
}

func (p *Parser) row(children []*ast.Node) *ast.Node {
	if len(children) == 1 {
		return children[0]
	}
	return p.push(ast.Node{Kind: ast.KindRow, Children: p.arena.PushSlice(children)})
}

func (p *Parser) node(kind ast.Kind, children ...*ast.Node) *ast.Node {
	return p.push(ast.Node{Kind: kind, Children: p.arena.PushSlice(children)})
}

// parseSequence parses nodes until a token in stop. The stop token is not
// consumed. Reaching the end of input first is reported as an unclosed
// group expecting closer.
func (p *Parser) parseSequence(stop stopSet, closer lexer.Token) ([]*ast.Node, error) {
	var nodes []*ast.Node
	for {
		tok := p.peek(false)
		if stop.has(tok) {
			return nodes, nil
		}
		switch tok.Kind {
		case lexer.KindEOF:
			return nil, diag.UnclosedGroup(int(tok.Offset), closer)
		case lexer.KindNewLine, lexer.KindAmpersand:
			// Alignment marks outside an environment are ignored.
			p.take()
			continue
		}
		n, err := p.parseScripted()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
}

// parseScripted parses an atom followed by any scripts, primes and limit
// modifiers.
func (p *Parser) parseScripted() (*ast.Node, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	var sub, sup *ast.Node
	primes := 0
	caret := false
	limits := takesLimits(base)
loop:
	for {
		tok := p.peek(false)
		switch tok.Kind {
		case lexer.KindUnderscore:
			if sub != nil {
				break loop
			}
			p.take()
			if sub, err = p.parseArgument(); err != nil {
				return nil, err
			}
		case lexer.KindCircumflex:
			if caret {
				break loop
			}
			p.take()
			arg, err := p.parseArgument()
			if err != nil {
				return nil, err
			}
			caret = true
			if sup != nil {
				sup = p.node(ast.KindRow, sup, arg)
			} else {
				sup = arg
			}
		case lexer.KindPrime:
			if sup != nil {
				break loop
			}
			for p.peek(false).Kind == lexer.KindPrime {
				p.take()
				primes++
			}
			sup = p.primes(primes)
		case lexer.KindLimits, lexer.KindNoLimits:
			if !base.Has(ast.FlagLargeOp|ast.FlagFunction) || sub != nil || sup != nil {
				return nil, diag.CannotBeUsedHere(int(tok.Offset), tok, diag.AfterBigOp)
			}
			p.take()
			limits = tok.Kind == lexer.KindLimits
			if limits {
				base.Flags |= ast.FlagLimits
			}
		default:
			break loop
		}
	}

	switch {
	case sub != nil && sup != nil:
		if limits {
			return p.node(ast.KindUnderOver, base, sub, sup), nil
		}
		return p.node(ast.KindSubSup, base, sub, sup), nil
	case sub != nil:
		if limits {
			return p.node(ast.KindUnder, base, sub), nil
		}
		return p.node(ast.KindSub, base, sub), nil
	case sup != nil:
		if limits && primes == 0 {
			return p.node(ast.KindOver, base, sup), nil
		}
		return p.node(ast.KindSup, base, sup), nil
	}
	return base, nil
}

// primes builds the operator for n consecutive primes.
func (p *Parser) primes(n int) *ast.Node {
	switch n {
	case 1:
		return p.push(ast.Node{Kind: ast.KindOperator, Op: ops.Prime.Op()})
	case 2:
		return p.push(ast.Node{Kind: ast.KindOperator, Op: ops.DoublePrime.Op()})
	case 3:
		return p.push(ast.Node{Kind: ast.KindOperator, Op: ops.TriplePrime.Op()})
	}
	b := p.buf.Builder()
	for range n {
		b.PushChar(ops.Prime.Op().Rune())
	}
	return p.push(ast.Node{Kind: ast.KindOperator, Text: b.Finish(p.arena)})
}

var limitFunctions = map[string]bool{
	"lim": true, "lim inf": true, "lim sup": true, "max": true, "min": true,
	"sup": true, "inf": true, "det": true, "gcd": true, "Pr": true,
}

// takesLimits reports whether scripts on n go below and above it by
// default. Integrals keep their scripts at the side.
func takesLimits(n *ast.Node) bool {
	switch {
	case n.Has(ast.FlagLargeOp):
		switch n.Op {
		case ops.Integral.Op(), ops.DoubleIntegral.Op(), ops.TripleIntegral.Op(), ops.ContourIntegral.Op():
			return false
		}
		return true
	case n.Has(ast.FlagFunction):
		return limitFunctions[n.Text]
	}
	return false
}

// parseArgument parses a script or command argument: a braced group or a
// single atom. A leading digit is taken alone.
func (p *Parser) parseArgument() (*ast.Node, error) {
	tok := p.peek(true)
	switch tok.Kind {
	case lexer.KindEOF:
		return nil, diag.UnexpectedEOF(int(tok.Offset))
	case lexer.KindNewLine, lexer.KindAmpersand:
		return nil, diag.UnexpectedToken(int(tok.Offset), tokGroupBegin, tok)
	}
	return p.parseAtom()
}

func (p *Parser) parseGroup() (*ast.Node, error) {
	p.take() // {
	children, err := p.parseSequence(stopGroup, tokGroupEnd)
	if err != nil {
		return nil, err
	}
	p.take() // }
	return p.row(children), nil
}

func (p *Parser) parseAtom() (*ast.Node, error) {
	tok := p.peek(false)
	offset := int(tok.Offset)

	switch tok.Kind {
	case lexer.KindEOF:
		return nil, diag.UnexpectedEOF(offset)
	case lexer.KindGroupBegin:
		return p.parseGroup()
	case lexer.KindGroupEnd, lexer.KindRight, lexer.KindEnd:
		return nil, diag.UnexpectedClose(offset, tok)
	case lexer.KindUnderscore, lexer.KindCircumflex, lexer.KindPrime:
		return nil, diag.CannotBeUsedHere(offset, tok, diag.AfterOpOrIdent)
	case lexer.KindLimits, lexer.KindNoLimits:
		return nil, diag.CannotBeUsedHere(offset, tok, diag.AfterBigOp)
	case lexer.KindUnknownCommand:
		return nil, diag.UnknownCommand(offset, tok.Text)
	case lexer.KindFrac:
		return p.parseFrac()
	case lexer.KindSqrt:
		return p.parseSqrt()
	case lexer.KindLeft:
		return p.parseFenced()
	case lexer.KindMiddle:
		return p.parseMiddle()
	case lexer.KindBegin:
		return p.parseEnvironment()
	case lexer.KindText:
		return p.parseText()
	case lexer.KindOperatorName:
		return p.parseOperatorName()
	case lexer.KindNot:
		return p.parseNot()
	}

	p.take()
	n := ast.Node{}
	switch tok.Kind {
	case lexer.KindLetter:
		n = ast.Node{Kind: ast.KindIdent, Char: tok.Char}
	case lexer.KindNormalLetter:
		n = ast.Node{Kind: ast.KindIdent, Char: tok.Char, Flags: ast.FlagNormal}
	case lexer.KindNumber:
		n = ast.Node{Kind: ast.KindNumber, Text: tok.Text}
	case lexer.KindOperator, lexer.KindRelation, lexer.KindBinaryOp:
		n = ast.Node{Kind: ast.KindOperator, Op: tok.Op}
	case lexer.KindBigOp:
		n = ast.Node{Kind: ast.KindOperator, Op: tok.Op, Flags: ast.FlagLargeOp}
	case lexer.KindParen:
		n = ast.Node{Kind: ast.KindOperator, Op: tok.Paren.Op(), Paren: tok.Paren}
	case lexer.KindColon:
		n = ast.Node{Kind: ast.KindOperator, Op: ops.Colon.Op()}
	case lexer.KindOpLessThan:
		n = ast.Node{Kind: ast.KindOperator, Op: ops.LessThanSign.Op()}
	case lexer.KindOpGreaterThan:
		n = ast.Node{Kind: ast.KindOperator, Op: ops.GreaterThanSign.Op()}
	case lexer.KindNonBreakingSpace:
		n = ast.Node{Kind: ast.KindText, Text: "\u00A0"}
	case lexer.KindSpace:
		n = ast.Node{Kind: ast.KindSpace, Text: tok.Text}
	case lexer.KindFunction:
		n = ast.Node{Kind: ast.KindIdent, Text: tok.Text, Flags: ast.FlagFunction}
	default:
		return nil, diag.UnexpectedToken(offset, tokGroupBegin, tok)
	}
	return p.push(n), nil
}

func (p *Parser) parseFrac() (*ast.Node, error) {
	p.take()
	num, err := p.parseArgument()
	if err != nil {
		return nil, err
	}
	den, err := p.parseArgument()
	if err != nil {
		return nil, err
	}
	return p.node(ast.KindFrac, num, den), nil
}

func (p *Parser) parseSqrt() (*ast.Node, error) {
	p.take()
	var index *ast.Node
	if tok := p.peek(true); tok.Kind == lexer.KindParen && tok.Paren == ops.LeftSquareBracket {
		p.take()
		children, err := p.parseSequence(stopOption, tokBracket)
		if err != nil {
			return nil, err
		}
		p.take() // ]
		index = p.row(children)
	}
	radicand, err := p.parseArgument()
	if err != nil {
		return nil, err
	}
	if index != nil {
		return p.node(ast.KindRoot, radicand, index), nil
	}
	return p.node(ast.KindSqrt, radicand), nil
}

// expectFence consumes the fence that must follow location. A full stop
// is the null delimiter.
func (p *Parser) expectFence(location lexer.Token) (ops.ParenOp, error) {
	tok := p.peek(false)
	switch {
	case tok.Kind == lexer.KindParen:
		p.take()
		return tok.Paren, nil
	case tok.Kind == lexer.KindOperator && tok.Op == ops.FullStop:
		p.take()
		return ops.Null, nil
	}
	return 0, diag.MissingParenthesis(int(tok.Offset), location, tok)
}

func (p *Parser) parseFenced() (*ast.Node, error) {
	left := p.take()
	open, err := p.expectFence(left)
	if err != nil {
		return nil, err
	}
	var children []*ast.Node
	for {
		inner, err := p.parseSequence(stopFence, tokRight)
		if err != nil {
			return nil, err
		}
		children = append(children, inner...)

		tok := p.take()
		fence, err := p.expectFence(tok)
		if err != nil {
			return nil, err
		}
		if tok.Kind == lexer.KindRight {
			return p.push(ast.Node{
				Kind:     ast.KindFenced,
				Open:     open,
				Close:    fence,
				Children: p.arena.PushSlice(children),
			}), nil
		}
		if fence == ops.Null {
			continue
		}
		children = append(children, p.push(ast.Node{
			Kind:  ast.KindOperator,
			Op:    fence.Op(),
			Paren: fence,
			Flags: ast.FlagStretchy,
		}))
	}
}

func (p *Parser) parseMiddle() (*ast.Node, error) {
	fence, err := p.expectFence(p.take())
	if err != nil {
		return nil, err
	}
	if fence == ops.Null {
		return p.row(nil), nil
	}
	return p.push(ast.Node{Kind: ast.KindOperator, Op: fence.Op(), Paren: fence, Flags: ast.FlagStretchy}), nil
}

// readBraced reads the text of a braced argument such as the name in
// \begin{name}. context names the command for error messages.
func (p *Parser) readBraced(context string) (string, int, error) {
	tok := p.peek(false)
	if tok.Kind != lexer.KindGroupBegin {
		return "", int(tok.Offset), diag.UnexpectedToken(int(tok.Offset), tokGroupBegin, tok)
	}
	p.take()
	offset := p.lex.Offset()
	text, ok := p.lex.ReadTextContent()
	if !ok {
		return "", offset, diag.ExpectedText(offset, context)
	}
	return text, offset, nil
}

func (p *Parser) parseText() (*ast.Node, error) {
	cmd := p.take()
	text, _, err := p.readBraced(`\` + cmd.Text)
	if err != nil {
		return nil, err
	}
	return p.push(ast.Node{Kind: ast.KindText, Text: p.unescape(text)}), nil
}

// parseOperatorName reads \operatorname{name} as an upright function name.
func (p *Parser) parseOperatorName() (*ast.Node, error) {
	p.take()
	name, _, err := p.readBraced(`\operatorname`)
	if err != nil {
		return nil, err
	}
	return p.push(ast.Node{Kind: ast.KindIdent, Text: p.unescape(name), Flags: ast.FlagFunction}), nil
}

// unescape drops the backslash of \{ and \}. Text without escapes keeps
// borrowing from the source.
func (p *Parser) unescape(text string) string {
	i := 0
	for i < len(text) && text[i] != '\\' {
		i++
	}
	if i == len(text) {
		return text
	}
	b := p.buf.Builder()
	b.PushStr(text[:i])
	for ; i < len(text); i++ {
		if text[i] == '\\' {
			continue
		}
		j := i
		for j < len(text) && text[j] != '\\' {
			j++
		}
		b.PushStr(text[i:j])
		i = j - 1
	}
	return b.Finish(p.arena)
}

// parseNot overlays a long solidus on the following relation.
func (p *Parser) parseNot() (*ast.Node, error) {
	p.take()
	tok := p.peek(false)
	var r rune
	switch tok.Kind {
	case lexer.KindRelation:
		r = tok.Op.Rune()
	case lexer.KindOpLessThan:
		r = ops.LessThanSign.Op().Rune()
	case lexer.KindOpGreaterThan:
		r = ops.GreaterThanSign.Op().Rune()
	default:
		return nil, diag.CannotBeUsedHere(int(tok.Offset), tok, diag.BeforeSomeOps)
	}
	p.take()
	b := p.buf.Builder()
	b.PushChar(r)
	b.PushChar('\u0338')
	return p.push(ast.Node{Kind: ast.KindOperator, Text: b.Finish(p.arena)}), nil
}

type environment struct {
	open, close ops.ParenOp // zero for none
	align       string
}

var environments = map[string]environment{
	"matrix":  {},
	"pmatrix": {open: ops.LeftParenthesis, close: ops.RightParenthesis},
	"bmatrix": {open: ops.LeftSquareBracket, close: ops.RightSquareBracket},
	"Bmatrix": {open: ops.LeftCurlyBracket, close: ops.RightCurlyBracket},
	"vmatrix": {open: ops.VerticalLine, close: ops.VerticalLine},
	"Vmatrix": {open: ops.DoubleVerticalLine, close: ops.DoubleVerticalLine},
	"cases":   {open: ops.LeftCurlyBracket, close: ops.Null, align: "left left"},
	"aligned": {align: "right left"},
}

// parseEnvironment parses \begin{name} ... \end{name}. Cells are split by
// & and rows by \\. A trailing \\ does not start an empty row.
func (p *Parser) parseEnvironment() (*ast.Node, error) {
	p.take()
	name, offset, err := p.readBraced(`\begin`)
	if err != nil {
		return nil, err
	}
	env, ok := environments[name]
	if !ok {
		return nil, diag.UnknownEnvironment(offset, name)
	}

	var rows, cells []*ast.Node
	for {
		content, err := p.parseSequence(stopCell, tokEnd)
		if err != nil {
			return nil, err
		}
		cells = append(cells, p.push(ast.Node{Kind: ast.KindTableCell, Children: p.arena.PushSlice(content)}))

		switch p.take().Kind {
		case lexer.KindAmpersand:
			continue
		case lexer.KindNewLine:
			rows = append(rows, p.node(ast.KindTableRow, cells...))
			cells = cells[:0]
			continue
		}

		// \end
		end, endOffset, err := p.readBraced(`\end`)
		if err != nil {
			return nil, err
		}
		if end != name {
			return nil, diag.MismatchedEnvironment(endOffset, name, end)
		}
		if len(rows) == 0 || len(cells) > 1 || len(cells[0].Children) > 0 {
			rows = append(rows, p.node(ast.KindTableRow, cells...))
		}
		table := p.push(ast.Node{Kind: ast.KindTable, Text: env.align, Children: p.arena.PushSlice(rows)})
		if env.open == 0 {
			return table, nil
		}
		return p.push(ast.Node{
			Kind:     ast.KindFenced,
			Open:     env.open,
			Close:    env.close,
			Children: p.arena.PushSlice([]*ast.Node{table}),
		}), nil
	}
}
