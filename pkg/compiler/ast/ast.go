package ast

import (
	"strconv"
	"strings"

	"github.com/agenthands/latex2mml/pkg/ops"
)

// Kind identifies the shape of a Node.
type Kind uint8

const (
	KindRow       Kind = iota // Children
	KindIdent                 // Char, or Text for multi-letter names
	KindNumber                // Text
	KindOperator              // Op, or Text for composed operators; Paren for fences
	KindText                  // Text
	KindSpace                 // Text, the width in em
	KindFrac                  // numerator, denominator
	KindSqrt                  // radicand
	KindRoot                  // radicand, index
	KindSub                   // base, subscript
	KindSup                   // base, superscript
	KindSubSup                // base, subscript, superscript
	KindUnder                 // base, underscript
	KindOver                  // base, overscript
	KindUnderOver             // base, underscript, overscript
	KindFenced                // Open, Close around a row in Children
	KindTable                 // rows; Text holds the column alignment
	KindTableRow              // cells
	KindTableCell             // Children
)

var kindNames = [...]string{
	KindRow:       "row",
	KindIdent:     "ident",
	KindNumber:    "number",
	KindOperator:  "op",
	KindText:      "text",
	KindSpace:     "space",
	KindFrac:      "frac",
	KindSqrt:      "sqrt",
	KindRoot:      "root",
	KindSub:       "sub",
	KindSup:       "sup",
	KindSubSup:    "subsup",
	KindUnder:     "under",
	KindOver:      "over",
	KindUnderOver: "underover",
	KindFenced:    "fenced",
	KindTable:     "table",
	KindTableRow:  "tr",
	KindTableCell: "td",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Flag carries rendering hints.
type Flag uint8

const (
	FlagNormal   Flag = 1 << iota // upright identifier
	FlagFunction                  // function name such as sin
	FlagLargeOp                   // \sum, \int, ...
	FlagStretchy                  // fence that must stretch, e.g. \middle|
	FlagLimits                    // explicit \limits
)

// Node is a tree node. Nodes are allocated in an arena.Arena and their
// Children slices and Text live in the same arena unless Text borrows
// from the source.
type Node struct {
	Kind     Kind
	Flags    Flag
	Char     rune
	Op       ops.Op
	Paren    ops.ParenOp
	Open     ops.ParenOp
	Close    ops.ParenOp
	Text     string
	Children []*Node
}

func (n *Node) Has(f Flag) bool { return n.Flags&f != 0 }

// Dump renders the tree as an s-expression, e.g. (sup (ident x) (number 2)).
func Dump(n *Node) string {
	var sb strings.Builder
	dump(&sb, n)
	return sb.String()
}

func dump(sb *strings.Builder, n *Node) {
	if n == nil {
		sb.WriteString("nil")
		return
	}
	sb.WriteByte('(')
	sb.WriteString(n.Kind.String())
	switch n.Kind {
	case KindIdent, KindOperator:
		sb.WriteByte(' ')
		switch {
		case n.Text != "":
			sb.WriteString(n.Text)
		case n.Kind == KindIdent:
			sb.WriteRune(n.Char)
		default:
			sb.WriteRune(n.Op.Rune())
		}
	case KindNumber, KindSpace:
		sb.WriteByte(' ')
		sb.WriteString(n.Text)
	case KindText:
		sb.WriteByte(' ')
		sb.WriteString(strconv.Quote(n.Text))
	case KindFenced:
		sb.WriteByte(' ')
		writeFence(sb, n.Open)
		sb.WriteByte(' ')
		writeFence(sb, n.Close)
	}
	for _, c := range n.Children {
		sb.WriteByte(' ')
		dump(sb, c)
	}
	sb.WriteByte(')')
}

func writeFence(sb *strings.Builder, p ops.ParenOp) {
	if p == ops.Null {
		sb.WriteByte('.')
		return
	}
	sb.WriteRune(p.Op().Rune())
}
