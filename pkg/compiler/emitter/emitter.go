package emitter

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/agenthands/latex2mml/pkg/compiler/ast"
	"github.com/agenthands/latex2mml/pkg/ops"
)

// Namespace is the MathML namespace URI.
const Namespace = "http://www.w3.org/1998/Math/MathML"

// Config controls the shape of the generated markup.
type Config struct {
	Display bool // display="block" and large operators
	Pretty  bool // indent nested elements
	XMLNS   bool // add the xmlns attribute to <math>
}

// Emitter turns an ast tree into a MathML element tree.
type Emitter struct {
	cfg Config
}

func NewEmitter(cfg Config) *Emitter {
	return &Emitter{cfg: cfg}
}

// Emit writes the <math> element for root to w.
func (e *Emitter) Emit(w io.Writer, root *ast.Node) error {
	return html.Render(w, e.Tree(root))
}

// String renders root to a string.
func (e *Emitter) String(root *ast.Node) (string, error) {
	var sb strings.Builder
	if err := e.Emit(&sb, root); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Tree builds the <math> element for root without rendering it.
func (e *Emitter) Tree(root *ast.Node) *html.Node {
	math := element(atom.Math, "math")
	if e.cfg.XMLNS {
		setAttr(math, "xmlns", Namespace)
	}
	if e.cfg.Display {
		setAttr(math, "display", "block")
	}
	// <math> is an implied row.
	if root != nil && root.Kind == ast.KindRow {
		for _, c := range root.Children {
			math.AppendChild(e.emitNode(c))
		}
	} else if root != nil {
		math.AppendChild(e.emitNode(root))
	}
	if e.cfg.Pretty {
		indent(math, 0)
	}
	return math
}

func element(a atom.Atom, name string) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: name}
}

func token(a atom.Atom, name, text string) *html.Node {
	n := element(a, name)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}

func setAttr(n *html.Node, key, val string) {
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func (e *Emitter) container(name string, children []*ast.Node) *html.Node {
	n := element(0, name)
	for _, c := range children {
		n.AppendChild(e.emitNode(c))
	}
	return n
}

var layoutNames = map[ast.Kind]string{
	ast.KindRow:       "mrow",
	ast.KindFrac:      "mfrac",
	ast.KindSqrt:      "msqrt",
	ast.KindRoot:      "mroot",
	ast.KindSub:       "msub",
	ast.KindSup:       "msup",
	ast.KindSubSup:    "msubsup",
	ast.KindUnder:     "munder",
	ast.KindOver:      "mover",
	ast.KindUnderOver: "munderover",
	ast.KindTableRow:  "mtr",
	ast.KindTableCell: "mtd",
}

func (e *Emitter) emitNode(n *ast.Node) *html.Node {
	switch n.Kind {
	case ast.KindIdent:
		if n.Text != "" {
			return token(atom.Mi, "mi", n.Text)
		}
		mi := token(atom.Mi, "mi", string(n.Char))
		if n.Has(ast.FlagNormal) {
			setAttr(mi, "mathvariant", "normal")
		}
		return mi
	case ast.KindNumber:
		return token(atom.Mn, "mn", n.Text)
	case ast.KindOperator:
		return e.operator(n)
	case ast.KindText:
		return token(atom.Mtext, "mtext", n.Text)
	case ast.KindSpace:
		sp := element(0, "mspace")
		setAttr(sp, "width", n.Text+"em")
		return sp
	case ast.KindFenced:
		return e.fenced(n)
	case ast.KindTable:
		t := e.container("mtable", n.Children)
		if n.Text != "" {
			setAttr(t, "columnalign", n.Text)
		}
		return t
	}
	if name, ok := layoutNames[n.Kind]; ok {
		return e.container(name, n.Children)
	}
	return element(0, "merror")
}

func (e *Emitter) operator(n *ast.Node) *html.Node {
	text := n.Text
	if text == "" && n.Op.Rune() != 0 {
		text = string(n.Op.Rune())
	}
	mo := token(atom.Mo, "mo", text)

	switch {
	case n.Has(ast.FlagStretchy):
		setAttr(mo, "stretchy", "true")
	case n.Paren != 0 && n.Paren.Stretchy() != ops.StretchyNever:
		// Bare fences keep their natural size.
		setAttr(mo, "stretchy", "false")
	}
	if n.Paren != 0 && n.Paren.OrdinarySpacing() {
		setAttr(mo, "lspace", "0")
		setAttr(mo, "rspace", "0")
	}
	if n.Has(ast.FlagLargeOp) {
		if e.cfg.Display {
			setAttr(mo, "largeop", "true")
		}
		if n.Has(ast.FlagLimits) {
			setAttr(mo, "movablelimits", "false")
		}
	}
	return mo
}

func (e *Emitter) fence(p ops.ParenOp, form string) *html.Node {
	mo := token(atom.Mo, "mo", string(p.Op().Rune()))
	setAttr(mo, "form", form)
	if p.Stretchy() != ops.StretchyAlways {
		setAttr(mo, "stretchy", "true")
	}
	return mo
}

func (e *Emitter) fenced(n *ast.Node) *html.Node {
	row := element(0, "mrow")
	if n.Open != ops.Null {
		row.AppendChild(e.fence(n.Open, "prefix"))
	}
	for _, c := range n.Children {
		row.AppendChild(e.emitNode(c))
	}
	if n.Close != ops.Null {
		row.AppendChild(e.fence(n.Close, "postfix"))
	}
	return row
}

// indent inserts newlines and two-space indentation between nested
// elements. Token elements keep their text inline.
func indent(n *html.Node, depth int) {
	if n.FirstChild == nil || n.FirstChild.Type == html.TextNode {
		return
	}
	pad := "\n" + strings.Repeat("  ", depth+1)
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.InsertBefore(&html.Node{Type: html.TextNode, Data: pad}, c)
		indent(c, depth+1)
		c = next
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: pad[:len(pad)-2]})
}
