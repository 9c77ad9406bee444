package lexer

import "github.com/agenthands/latex2mml/pkg/ops"

// LookupCommand resolves a command name (the text after the backslash).
// Unknown names give a KindUnknownCommand token that carries the name.
func LookupCommand(name string) Token {
	if tok, ok := commands[name]; ok {
		return tok
	}
	return Token{Kind: KindUnknownCommand, Text: name}
}

func letter(c rune) Token       { return Token{Kind: KindLetter, Char: c} }
func normal(c rune) Token       { return Token{Kind: KindNormalLetter, Char: c} }
func op(o ops.Op) Token         { return Token{Kind: KindOperator, Op: o} }
func rel(r ops.Rel) Token       { return Token{Kind: KindRelation, Op: r.Op()} }
func bin(b ops.Bin) Token       { return Token{Kind: KindBinaryOp, Op: b.Op()} }
func big(b ops.Big) Token       { return Token{Kind: KindBigOp, Op: b.Op()} }
func paren(p ops.ParenOp) Token { return Token{Kind: KindParen, Paren: p} }
func space(em string) Token     { return Token{Kind: KindSpace, Text: em} }
func function(n string) Token   { return Token{Kind: KindFunction, Text: n} }
func text(n string) Token       { return Token{Kind: KindText, Text: n} }

var commands = map[string]Token{
	// Greek letters
	"alpha":      letter('α'),
	"beta":       letter('β'),
	"gamma":      letter('γ'),
	"delta":      letter('δ'),
	"epsilon":    letter('ϵ'),
	"varepsilon": letter('ε'),
	"zeta":       letter('ζ'),
	"eta":        letter('η'),
	"theta":      letter('θ'),
	"vartheta":   letter('ϑ'),
	"iota":       letter('ι'),
	"kappa":      letter('κ'),
	"lambda":     letter('λ'),
	"mu":         letter('μ'),
	"nu":         letter('ν'),
	"xi":         letter('ξ'),
	"pi":         letter('π'),
	"varpi":      letter('ϖ'),
	"rho":        letter('ρ'),
	"varrho":     letter('ϱ'),
	"sigma":      letter('σ'),
	"varsigma":   letter('ς'),
	"tau":        letter('τ'),
	"upsilon":    letter('υ'),
	"phi":        letter('ϕ'),
	"varphi":     letter('φ'),
	"chi":        letter('χ'),
	"psi":        letter('ψ'),
	"omega":      letter('ω'),
	"Gamma":      normal('Γ'),
	"Delta":      normal('Δ'),
	"Theta":      normal('Θ'),
	"Lambda":     normal('Λ'),
	"Xi":         normal('Ξ'),
	"Pi":         normal('Π'),
	"Sigma":      normal('Σ'),
	"Upsilon":    normal('Υ'),
	"Phi":        normal('Φ'),
	"Psi":        normal('Ψ'),
	"Omega":      normal('Ω'),

	// Letter-like symbols
	"hbar":       letter('ℏ'),
	"ell":        letter('ℓ'),
	"wp":         letter('℘'),
	"Re":         normal('ℜ'),
	"Im":         normal('ℑ'),
	"aleph":      normal('ℵ'),
	"infty":      normal(ops.Infinity),
	"partial":    normal(ops.PartialDifferential),
	"nabla":      normal(ops.Nabla),
	"emptyset":   normal(ops.EmptySet),
	"complement": normal(ops.Complement),
	"angle":      normal(ops.Angle),
	"top":        normal(ops.DownTack),
	"bot":        normal(ops.UpTack),
	"bigstar":    normal(ops.BlackStar),
	"triangle":   normal(ops.WhiteUpPointingTriangle),

	// Binary operators
	"pm":       bin(ops.PlusMinusSign),
	"mp":       bin(ops.MinusOrPlusSign),
	"times":    bin(ops.MultiplicationSign),
	"div":      bin(ops.DivisionSign),
	"cdot":     bin(ops.MiddleDot),
	"circ":     rel(ops.RingOperator),
	"bullet":   rel(ops.BulletOperator),
	"cup":      rel(ops.Union),
	"cap":      rel(ops.Intersection),
	"wedge":    rel(ops.LogicalAnd),
	"land":     rel(ops.LogicalAnd),
	"vee":      rel(ops.LogicalOr),
	"lor":      rel(ops.LogicalOr),
	"oplus":    rel(ops.CircledPlus),
	"otimes":   rel(ops.CircledTimes),
	"odot":     rel(ops.CircledDotOperator),
	"setminus": rel(ops.SetMinus),
	"star":     rel(ops.StarOperator),
	"ast":      op(ops.Asterisk),

	// Relations
	"leq":                rel(ops.LessThanOrEqualTo),
	"le":                 rel(ops.LessThanOrEqualTo),
	"geq":                rel(ops.GreaterThanOrEqualTo),
	"ge":                 rel(ops.GreaterThanOrEqualTo),
	"neq":                rel(ops.NotEqualTo),
	"ne":                 rel(ops.NotEqualTo),
	"equiv":              rel(ops.IdenticalTo),
	"approx":             rel(ops.AlmostEqualTo),
	"sim":                rel(ops.TildeOperator),
	"simeq":              rel(ops.AsymptoticallyEqualTo),
	"cong":               rel(ops.ApproximatelyEqualTo),
	"propto":             rel(ops.ProportionalTo),
	"in":                 rel(ops.ElementOf),
	"notin":              rel(ops.NotAnElementOf),
	"ni":                 rel(ops.ContainsAsMember),
	"subset":             rel(ops.SubsetOf),
	"supset":             rel(ops.SupersetOf),
	"subseteq":           rel(ops.SubsetOfOrEqualTo),
	"supseteq":           rel(ops.SupersetOfOrEqualTo),
	"mid":                rel(ops.Divides),
	"parallel":           rel(ops.ParallelTo),
	"perp":               rel(ops.UpTack),
	"vdash":              rel(ops.RightTack),
	"models":             rel(ops.True),
	"prec":               rel(ops.Precedes),
	"succ":               rel(ops.Succeeds),
	"ll":                 rel(ops.MuchLessThan),
	"gg":                 rel(ops.MuchGreaterThan),
	"forall":             rel(ops.ForAll),
	"exists":             rel(ops.ThereExists),
	"nexists":            rel(ops.ThereDoesNotExist),
	"neg":                rel(ops.NotSign),
	"lnot":               rel(ops.NotSign),
	"ldots":              rel(ops.HorizontalEllipsis),
	"dots":               rel(ops.HorizontalEllipsis),
	"cdots":              op('⋯'),
	"vdots":              rel(ops.VerticalEllipsis),
	"ddots":              rel(ops.DownRightDiagonalEllipsis),
	"prime":              rel(ops.Prime),
	"to":                 rel(ops.RightwardsArrow),
	"rightarrow":         rel(ops.RightwardsArrow),
	"gets":               rel(ops.LeftwardsArrow),
	"leftarrow":          rel(ops.LeftwardsArrow),
	"leftrightarrow":     rel(ops.LeftRightArrow),
	"Rightarrow":         rel(ops.RightwardsDoubleArrow),
	"implies":            rel(ops.LongRightwardsDoubleArrow),
	"Leftarrow":          rel(ops.LeftwardsDoubleArrow),
	"Leftrightarrow":     rel(ops.LeftRightDoubleArrow),
	"iff":                rel(ops.LongLeftRightDoubleArrow),
	"mapsto":             rel(ops.RightwardsArrowFromBar),
	"longrightarrow":     rel(ops.LongRightwardsArrow),
	"longleftarrow":      rel(ops.LongLeftwardsArrow),
	"Longrightarrow":     rel(ops.LongRightwardsDoubleArrow),
	"Longleftarrow":      rel(ops.LongLeftwardsDoubleArrow),
	"Longleftrightarrow": rel(ops.LongLeftRightDoubleArrow),

	// Large operators
	"sum":       big(ops.NArySummation),
	"prod":      big(ops.NAryProduct),
	"coprod":    big(ops.NAryCoproduct),
	"int":       big(ops.Integral),
	"iint":      big(ops.DoubleIntegral),
	"iiint":     big(ops.TripleIntegral),
	"oint":      big(ops.ContourIntegral),
	"bigcap":    big(ops.NAryIntersection),
	"bigcup":    big(ops.NAryUnion),
	"bigoplus":  big(ops.NAryCircledPlusOperator),
	"bigotimes": big(ops.NAryCircledTimesOperator),
	"bigwedge":  big(ops.NAryLogicalAnd),
	"bigvee":    big(ops.NAryLogicalOr),

	// Fences
	"langle":    paren(ops.MathematicalLeftAngleBracket),
	"rangle":    paren(ops.MathematicalRightAngleBracket),
	"lceil":     paren(ops.LeftCeiling),
	"rceil":     paren(ops.RightCeiling),
	"lfloor":    paren(ops.LeftFloor),
	"rfloor":    paren(ops.RightFloor),
	"lbrack":    paren(ops.LeftSquareBracket),
	"rbrack":    paren(ops.RightSquareBracket),
	"lbrace":    paren(ops.LeftCurlyBracket),
	"rbrace":    paren(ops.RightCurlyBracket),
	"{":         paren(ops.LeftCurlyBracket),
	"}":         paren(ops.RightCurlyBracket),
	"vert":      paren(ops.VerticalLine),
	"lvert":     paren(ops.VerticalLine),
	"rvert":     paren(ops.VerticalLine),
	"|":         paren(ops.DoubleVerticalLine),
	"Vert":      paren(ops.DoubleVerticalLine),
	"uparrow":   paren(ops.UpwardsArrow),
	"downarrow": paren(ops.DownwardsArrow),
	"Uparrow":   paren(ops.UpwardsDoubleArrow),
	"Downarrow": paren(ops.DownwardsDoubleArrow),
	"backslash": paren(ops.ReverseSolidus),

	// Spacing
	"!":     space("-0.1667"),
	",":     space("0.1667"),
	":":     space("0.2222"),
	">":     space("0.2222"),
	";":     space("0.2778"),
	" ":     space("1"),
	"quad":  space("1"),
	"qquad": space("2"),

	// Functions
	"sin":    function("sin"),
	"cos":    function("cos"),
	"tan":    function("tan"),
	"cot":    function("cot"),
	"sec":    function("sec"),
	"csc":    function("csc"),
	"arcsin": function("arcsin"),
	"arccos": function("arccos"),
	"arctan": function("arctan"),
	"sinh":   function("sinh"),
	"cosh":   function("cosh"),
	"tanh":   function("tanh"),
	"exp":    function("exp"),
	"log":    function("log"),
	"ln":     function("ln"),
	"lg":     function("lg"),
	"det":    function("det"),
	"dim":    function("dim"),
	"gcd":    function("gcd"),
	"deg":    function("deg"),
	"ker":    function("ker"),
	"arg":    function("arg"),
	"lim":    function("lim"),
	"liminf": function("lim inf"),
	"limsup": function("lim sup"),
	"max":    function("max"),
	"min":    function("min"),
	"sup":    function("sup"),
	"inf":    function("inf"),
	"Pr":     function("Pr"),

	// Text
	"text":         text("text"),
	"textrm":       text("textrm"),
	"mbox":         text("mbox"),
	"operatorname": {Kind: KindOperatorName},

	// Structure
	"\\":       {Kind: KindNewLine},
	"frac":     {Kind: KindFrac},
	"dfrac":    {Kind: KindFrac},
	"tfrac":    {Kind: KindFrac},
	"sqrt":     {Kind: KindSqrt},
	"left":     {Kind: KindLeft},
	"right":    {Kind: KindRight},
	"middle":   {Kind: KindMiddle},
	"begin":    {Kind: KindBegin},
	"end":      {Kind: KindEnd},
	"not":      {Kind: KindNot},
	"limits":   {Kind: KindLimits},
	"nolimits": {Kind: KindNoLimits},
}
