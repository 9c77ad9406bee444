package ops_test

import (
	"testing"

	"github.com/agenthands/latex2mml/pkg/ops"
)

func TestTableIsOrderedAndUnique(t *testing.T) {
	all := ops.All()
	if len(all) == 0 {
		t.Fatal("empty classification table")
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Op() >= all[i].Op() {
			t.Fatalf("entry %d (%q) not after %q", i, all[i].Op().Rune(), all[i-1].Op().Rune())
		}
	}
}

func TestEveryEntryHasExactlyOneCategory(t *testing.T) {
	for _, sym := range ops.All() {
		hits := 0
		if r, ok := sym.Rel(); ok {
			hits++
			if r.Op() != sym.Op() {
				t.Errorf("%q: rel round trip gave %q", sym.Op().Rune(), r.Op().Rune())
			}
		}
		if b, ok := sym.Bin(); ok {
			hits++
			if b.Op() != sym.Op() {
				t.Errorf("%q: bin round trip gave %q", sym.Op().Rune(), b.Op().Rune())
			}
		}
		if b, ok := sym.Big(); ok {
			hits++
			if b.Op() != sym.Op() {
				t.Errorf("%q: big round trip gave %q", sym.Op().Rune(), b.Op().Rune())
			}
		}
		if p, ok := sym.Paren(); ok {
			hits++
			if p.Op() != sym.Op() {
				t.Errorf("%q: paren round trip gave %q", sym.Op().Rune(), p.Op().Rune())
			}
		}
		if sym.Category == ops.CategoryOp {
			hits++
		}
		if hits != 1 {
			t.Errorf("%q (%v): reachable through %d accessors", sym.Op().Rune(), sym.Category, hits)
		}

		got, ok := ops.Lookup(sym.Op().Rune())
		if !ok || got != sym {
			t.Errorf("Lookup(%q) = %v, %v", sym.Op().Rune(), got, ok)
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		r    rune
		want ops.Category
	}{
		{'=', ops.CategoryRel},
		{'+', ops.CategoryBin},
		{'(', ops.CategoryParen},
		{'.', ops.CategoryOp},
		{'∑', ops.CategoryBig},
		{'∫', ops.CategoryBig},
		{'≤', ops.CategoryRel},
		{'⟨', ops.CategoryParen},
		{'−', ops.CategoryBin},
	}
	for _, tt := range tests {
		got, ok := ops.Lookup(tt.r)
		if !ok {
			t.Errorf("Lookup(%q): not found", tt.r)
			continue
		}
		if got.Category != tt.want {
			t.Errorf("Lookup(%q) category = %v, want %v", tt.r, got.Category, tt.want)
		}
	}

	for _, r := range []rune{'x', 'α', ops.Infinity, ops.PartialDifferential, '7'} {
		if _, ok := ops.Lookup(r); ok {
			t.Errorf("Lookup(%q): letter-like symbol should not be classified", r)
		}
	}
}

func TestParenMetadata(t *testing.T) {
	tests := []struct {
		name     string
		p        ops.ParenOp
		r        rune
		ordinary bool
		stretchy ops.Stretchy
	}{
		{"LeftParenthesis", ops.LeftParenthesis, '(', false, ops.StretchyAlways},
		{"Solidus", ops.Solidus, '/', true, ops.StretchyNever},
		{"VerticalLine", ops.VerticalLine, '|', true, ops.StretchyPrePostfix},
		{"UpwardsArrow", ops.UpwardsArrow, '↑', false, ops.StretchyInconsistent},
		{"Null", ops.Null, 0, false, ops.StretchyAlways},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.p.Op().Rune() != tt.r {
				t.Errorf("rune = %q, want %q", tt.p.Op().Rune(), tt.r)
			}
			if tt.p.OrdinarySpacing() != tt.ordinary {
				t.Errorf("OrdinarySpacing() = %v, want %v", tt.p.OrdinarySpacing(), tt.ordinary)
			}
			if tt.p.Stretchy() != tt.stretchy {
				t.Errorf("Stretchy() = %v, want %v", tt.p.Stretchy(), tt.stretchy)
			}
		})
	}
}

func TestConversions(t *testing.T) {
	if ops.EqualsSign.Op().Rune() != '=' {
		t.Error("relation did not convert to '='")
	}
	if ops.PlusSign.Op().Rune() != '+' {
		t.Error("binary operator did not convert to '+'")
	}
	if ops.NArySummation.Op().Rune() != '∑' {
		t.Error("large operator did not convert to '∑'")
	}
}
