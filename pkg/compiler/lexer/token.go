package lexer

import (
	"strconv"

	"github.com/agenthands/latex2mml/pkg/ops"
)

// Kind represents the type of token identified by the lexer.
type Kind uint8

const (
	KindEOF          Kind = iota
	KindLetter            // Char, an ASCII letter or a command such as \alpha
	KindNormalLetter      // Char, rendered upright
	KindNumber            // Text; Op holds a separator split off the end
	KindOperator          // Op
	KindRelation          // Op
	KindBinaryOp          // Op
	KindBigOp             // Op
	KindParen             // Paren
	KindGroupBegin        // {
	KindGroupEnd          // }
	KindUnderscore        // _
	KindCircumflex        // ^
	KindAmpersand         // &
	KindColon             // :
	KindNonBreakingSpace  // ~
	KindPrime             // '
	KindOpLessThan        // <
	KindOpGreaterThan     // >
	KindSpace             // Text, the width in em
	KindNewLine           // \\
	KindFunction          // Text, e.g. sin
	KindText              // Text, the command name, e.g. text or mbox
	KindOperatorName      // \operatorname
	KindFrac
	KindSqrt
	KindLeft
	KindRight
	KindMiddle
	KindBegin
	KindEnd
	KindNot
	KindLimits
	KindNoLimits
	KindUnknownCommand // Text, the command name without the backslash
)

// Token is one lexical unit. Text borrows from the source string, so a
// token owns no memory and lives exactly as long as the source.
type Token struct {
	Kind   Kind
	Char   rune
	Text   string
	Op     ops.Op
	Paren  ops.ParenOp
	Offset uint32 // byte offset of the token in the source
}

// Trailing returns the separator that was split off a number, if any.
func (t Token) Trailing() (ops.Op, bool) {
	if t.Kind != KindNumber || t.Op == 0 {
		return 0, false
	}
	return t.Op, true
}

// String renders the token the way it would be written in the source.
// It is meant for error messages, not for the hot path.
func (t Token) String() string {
	switch t.Kind {
	case KindEOF:
		return "end of input"
	case KindLetter, KindNormalLetter:
		return string(t.Char)
	case KindNumber:
		return t.Text
	case KindOperator, KindRelation, KindBinaryOp, KindBigOp:
		return string(t.Op.Rune())
	case KindParen:
		if t.Paren == ops.Null {
			return "."
		}
		return string(t.Paren.Op().Rune())
	case KindGroupBegin:
		return "{"
	case KindGroupEnd:
		return "}"
	case KindUnderscore:
		return "_"
	case KindCircumflex:
		return "^"
	case KindAmpersand:
		return "&"
	case KindColon:
		return ":"
	case KindNonBreakingSpace:
		return "~"
	case KindPrime:
		return "'"
	case KindOpLessThan:
		return "<"
	case KindOpGreaterThan:
		return ">"
	case KindSpace:
		return "space of " + t.Text + "em"
	case KindNewLine:
		return `\\`
	case KindFunction, KindText, KindUnknownCommand:
		return `\` + t.Text
	case KindOperatorName:
		return `\operatorname`
	case KindFrac:
		return `\frac`
	case KindSqrt:
		return `\sqrt`
	case KindLeft:
		return `\left`
	case KindRight:
		return `\right`
	case KindMiddle:
		return `\middle`
	case KindBegin:
		return `\begin`
	case KindEnd:
		return `\end`
	case KindNot:
		return `\not`
	case KindLimits:
		return `\limits`
	case KindNoLimits:
		return `\nolimits`
	}
	return "token(" + strconv.Itoa(int(t.Kind)) + ")"
}
