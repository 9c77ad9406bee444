// Package lexer turns LaTeX math source into tokens.
//
// The lexer never fails and never allocates: malformed input becomes a
// best-effort token, and the one operation that can come up empty,
// ReadTextContent, reports it with a boolean so the caller decides how to
// surface the problem.
package lexer

import (
	"unicode/utf8"

	"github.com/agenthands/latex2mml/pkg/ops"
)

// CommandResolver maps a command name (without the backslash) to a token.
// It must return a KindUnknownCommand token for names it does not know.
type CommandResolver func(name string) Token

// Lexer is a forward-only cursor over the source with one character of
// look-ahead.
type Lexer struct {
	src      string
	pos      int  // byte offset of peek
	peek     rune // 0 at end of input
	width    int  // byte width of peek
	commands CommandResolver
}

// New creates a lexer for src using the built-in command table.
func New(src string) *Lexer {
	return NewWithCommands(src, LookupCommand)
}

// NewWithCommands creates a lexer that resolves commands with resolve.
func NewWithCommands(src string, resolve CommandResolver) *Lexer {
	l := &Lexer{commands: resolve}
	l.Reset(src)
	return l
}

// Reset re-initializes the lexer with new source for pool reuse.
func (l *Lexer) Reset(src string) {
	l.src = src
	l.pos = 0
	l.load()
}

// Offset returns the byte offset of the next unread character.
func (l *Lexer) Offset() int { return l.pos }

// Source returns the text being lexed.
func (l *Lexer) Source() string { return l.src }

// load decodes the character at pos into peek.
func (l *Lexer) load() {
	if l.pos >= len(l.src) {
		l.pos, l.peek, l.width = len(l.src), 0, 0
		return
	}
	if c := l.src[l.pos]; c < utf8.RuneSelf {
		l.peek, l.width = rune(c), 1
		return
	}
	l.peek, l.width = utf8.DecodeRuneInString(l.src[l.pos:])
}

// readChar consumes peek and returns it together with its offset.
// At the end of input it keeps returning (len(src), 0).
func (l *Lexer) readChar() (int, rune) {
	pos, r := l.pos, l.peek
	l.pos += l.width
	l.load()
	return pos, r
}

func (l *Lexer) skipWhitespace() {
	for isSpace(l.peek) {
		l.readChar()
	}
}

// Next returns the next token. With wantsDigit set, a digit at the cursor
// is returned alone as a one-character number, as needed right after a
// sub- or superscript marker.
func (l *Lexer) Next(wantsDigit bool) Token {
	if wantsDigit && isDigit(l.peek) {
		start, _ := l.readChar()
		return Token{Kind: KindNumber, Text: l.src[start:l.pos], Offset: uint32(start)}
	}
	l.skipWhitespace()

	start := l.pos
	var tok Token
	switch l.peek {
	case '=':
		tok = Token{Kind: KindRelation, Op: ops.EqualsSign.Op()}
	case ';':
		tok = Token{Kind: KindRelation, Op: ops.Semicolon.Op()}
	case ',':
		tok = Token{Kind: KindRelation, Op: ops.Comma.Op()}
	case '!':
		tok = Token{Kind: KindRelation, Op: ops.ExclamationMark.Op()}
	case '.':
		tok = Token{Kind: KindOperator, Op: ops.FullStop}
	case '*':
		tok = Token{Kind: KindOperator, Op: ops.Asterisk}
	case '+':
		tok = Token{Kind: KindBinaryOp, Op: ops.PlusSign.Op()}
	case '-':
		tok = Token{Kind: KindBinaryOp, Op: ops.MinusSign.Op()}
	case '(':
		tok = Token{Kind: KindParen, Paren: ops.LeftParenthesis}
	case ')':
		tok = Token{Kind: KindParen, Paren: ops.RightParenthesis}
	case '[':
		tok = Token{Kind: KindParen, Paren: ops.LeftSquareBracket}
	case ']':
		tok = Token{Kind: KindParen, Paren: ops.RightSquareBracket}
	case '|':
		tok = Token{Kind: KindParen, Paren: ops.VerticalLine}
	case '/':
		tok = Token{Kind: KindParen, Paren: ops.Solidus}
	case '\'':
		tok = Token{Kind: KindPrime}
	case '{':
		tok = Token{Kind: KindGroupBegin}
	case '}':
		tok = Token{Kind: KindGroupEnd}
	case '<':
		tok = Token{Kind: KindOpLessThan}
	case '>':
		tok = Token{Kind: KindOpGreaterThan}
	case '_':
		tok = Token{Kind: KindUnderscore}
	case '^':
		tok = Token{Kind: KindCircumflex}
	case '&':
		tok = Token{Kind: KindAmpersand}
	case '~':
		tok = Token{Kind: KindNonBreakingSpace}
	case ':':
		tok = Token{Kind: KindColon}
	case ' ':
		tok = Token{Kind: KindLetter, Char: '\u00A0'}
	case 0:
		return Token{Kind: KindEOF, Offset: uint32(start)}
	case '\\':
		l.readChar() // discard the backslash
		tok = l.commands(l.readCommand())
		tok.Offset = uint32(start)
		return tok
	default:
		c := l.peek
		switch {
		case isDigit(c):
			num, op := l.readNumber()
			return Token{Kind: KindNumber, Text: num, Op: op, Offset: uint32(start)}
		case isAlpha(c):
			tok = Token{Kind: KindLetter, Char: c}
		default:
			tok = Token{Kind: KindNormalLetter, Char: c}
		}
	}
	l.readChar()
	tok.Offset = uint32(start)
	return tok
}

// readCommand reads a run of ASCII letters. If there is none, it reads
// exactly one character instead, so a command read always makes progress.
func (l *Lexer) readCommand() string {
	start := l.pos
	for isAlpha(l.peek) {
		l.readChar()
	}
	if start == l.pos {
		l.readChar()
	}
	return l.src[start:l.pos]
}

// readNumber reads digits and the separators '.' and ','. A separator only
// belongs to the number if a digit follows it; otherwise the number ends
// before it and the separator is returned as an operator.
func (l *Lexer) readNumber() (string, ops.Op) {
	start, _ := l.readChar() // the first character is a digit
	for isDigit(l.peek) || l.peek == '.' || l.peek == ',' {
		before, c := l.readChar()
		if (c == '.' || c == ',') && !isDigit(l.peek) {
			op := ops.FullStop
			if c == ',' {
				op = ops.Comma.Op()
			}
			return l.src[start:before], op
		}
	}
	return l.src[start:l.pos], 0
}

// ReadTextContent reads verbatim text up to the brace that closes an
// already consumed '{'. Nested braces are balanced; \{ and \} are the only
// escapes. ok is false for any other escape or if the input ends first.
// The returned text still contains the escapes.
func (l *Lexer) ReadTextContent() (text string, ok bool) {
	depth := 1
	start := l.pos
	for {
		end, c := l.readChar()
		switch c {
		case '{':
			depth++
		case '}':
			depth--
		}
		if depth <= 0 {
			return l.src[start:end], true
		}
		if c == '\\' {
			_, c = l.readChar()
			if c != '{' && c != '}' {
				return "", false
			}
		}
		if c == 0 {
			return "", false
		}
	}
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\f' || c == '\r'
}
