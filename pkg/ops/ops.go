// Package ops classifies the mathematical symbols the converter knows about.
//
// Every symbol belongs to exactly one category, fixed at definition time:
// plain operators (Op), relations (Rel), binary operators (Bin), large
// operators (Big) and fences (ParenOp). All of them convert to Op, the bare
// code point, for code paths that need the character but not its role.
// Characters absent from the table are letters as far as the lexer is
// concerned.
package ops

import (
	"cmp"
	"slices"
)

// Op is a plain operator.
type Op rune

// Rune returns the code point of the operator.
func (o Op) Rune() rune { return rune(o) }

// Rel is a relation.
type Rel rune

func (r Rel) Op() Op { return Op(r) }

// Bin is a binary operator.
type Bin rune

func (b Bin) Op() Op { return Op(b) }

// Big is a large (n-ary) operator such as a sum or an integral.
type Big rune

func (b Big) Op() Op { return Op(b) }

// Stretchy describes when a fence resizes to fit its content.
type Stretchy uint8

const (
	StretchyAlways Stretchy = iota
	StretchyNever
	StretchyPrePostfix   // only in prefix or postfix position
	StretchyInconsistent // renderers disagree
)

func (s Stretchy) String() string {
	switch s {
	case StretchyAlways:
		return "always"
	case StretchyNever:
		return "never"
	case StretchyPrePostfix:
		return "pre-postfix"
	case StretchyInconsistent:
		return "inconsistent"
	}
	return "unknown"
}

// ParenOp is a fence operator. The code point, the spacing flag and the
// stretch policy are packed into one word so that fences stay constants.
//
//	bits 0-20  code point
//	bit  21    ordinary spacing
//	bits 22-23 stretch policy
type ParenOp uint32

const (
	runeMask        = 1<<21 - 1
	ordinarySpacing ParenOp = 1 << 21
	stretchShift            = 22

	stretchAlways       = ParenOp(StretchyAlways) << stretchShift
	stretchNever        = ParenOp(StretchyNever) << stretchShift
	stretchPrePostfix   = ParenOp(StretchyPrePostfix) << stretchShift
	stretchInconsistent = ParenOp(StretchyInconsistent) << stretchShift
)

func (p ParenOp) Op() Op { return Op(p & runeMask) }

// OrdinarySpacing reports whether the fence is spaced like an identifier,
// which is not the same as an operator with reduced spacing.
func (p ParenOp) OrdinarySpacing() bool { return p&ordinarySpacing != 0 }

// Stretchy returns the stretch policy of the fence.
func (p ParenOp) Stretchy() Stretchy { return Stretchy(p >> stretchShift & 3) }

// Category is the semantic role of a classified symbol.
type Category uint8

const (
	CategoryOp Category = iota
	CategoryRel
	CategoryBin
	CategoryBig
	CategoryParen
)

func (c Category) String() string {
	switch c {
	case CategoryOp:
		return "op"
	case CategoryRel:
		return "rel"
	case CategoryBin:
		return "bin"
	case CategoryBig:
		return "big"
	case CategoryParen:
		return "paren"
	}
	return "unknown"
}

// Symbol is one entry of the classification table.
type Symbol struct {
	Category Category
	value    uint32
}

// Op returns the bare code point of the symbol.
func (s Symbol) Op() Op { return Op(s.value & runeMask) }

// Rel returns the symbol as a relation. ok is false for other categories.
func (s Symbol) Rel() (r Rel, ok bool) {
	return Rel(s.Op()), s.Category == CategoryRel
}

// Bin returns the symbol as a binary operator.
func (s Symbol) Bin() (b Bin, ok bool) {
	return Bin(s.Op()), s.Category == CategoryBin
}

// Big returns the symbol as a large operator.
func (s Symbol) Big() (b Big, ok bool) {
	return Big(s.Op()), s.Category == CategoryBig
}

// Paren returns the symbol as a fence, with its spacing and stretch data.
func (s Symbol) Paren() (p ParenOp, ok bool) {
	if s.Category != CategoryParen {
		return 0, false
	}
	return ParenOp(s.value), true
}

// Lookup classifies r. ok is false when r is not in the table.
func Lookup(r rune) (sym Symbol, ok bool) {
	i, found := slices.BinarySearchFunc(table[:], r, func(s Symbol, r rune) int {
		return cmp.Compare(s.Op().Rune(), r)
	})
	if !found {
		return Symbol{}, false
	}
	return table[i], true
}

// All returns every classified symbol ordered by code point.
// The returned slice must not be modified.
func All() []Symbol { return table[:] }
