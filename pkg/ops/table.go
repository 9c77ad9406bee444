package ops

// Unicode block: Basic Latin
const (
	Null               ParenOp = ParenOp(0) | stretchAlways
	ExclamationMark    Rel     = '!'
	LeftParenthesis    ParenOp = ParenOp('(') | stretchAlways
	RightParenthesis   ParenOp = ParenOp(')') | stretchAlways
	PlusSign           Bin     = '+'
	Comma              Rel     = ','
	FullStop           Op      = '.'
	Solidus            ParenOp = ParenOp('/') | ordinarySpacing | stretchNever
	Colon              Rel     = ':'
	Semicolon          Rel     = ';'
	EqualsSign         Rel     = '='
	LeftSquareBracket  ParenOp = ParenOp('[') | stretchAlways
	ReverseSolidus     ParenOp = ParenOp('\\') | ordinarySpacing | stretchNever
	RightSquareBracket ParenOp = ParenOp(']') | stretchAlways
	CircumflexAccent   Op      = '^'
	LowLine            Op      = '_'
	GraveAccent        Op      = '`'
	LeftCurlyBracket   ParenOp = ParenOp('{') | stretchAlways
	VerticalLine       ParenOp = ParenOp('|') | ordinarySpacing | stretchPrePostfix
	RightCurlyBracket  ParenOp = ParenOp('}') | stretchAlways
	Tilde              Op      = '~'
	Asterisk           Op      = '*'
	LessThanSign       Rel     = '<'
	GreaterThanSign    Rel     = '>'
)

// Unicode block: Latin-1 Supplement
const (
	Diaeresis          Op  = '¨'
	NotSign            Rel = '¬'
	Macron             Op  = '¯'
	PlusMinusSign      Bin = '±'
	AcuteAccent        Op  = '´'
	MiddleDot          Bin = '·'
	MultiplicationSign Bin = '×'
	DivisionSign       Bin = '÷'
)

// Unicode block: Spacing Modifier Letters
const (
	Caron    Op  = 'ˇ'
	Breve    Op  = '˘'
	DotAbove Op  = '˙'
)

// Unicode block: General Punctuation
const (
	DoubleVerticalLine  ParenOp = ParenOp('‖') | ordinarySpacing | stretchPrePostfix
	HorizontalEllipsis  Rel     = '…'
	Prime               Rel     = '′'
	DoublePrime         Rel     = '″'
	TriplePrime         Rel     = '‴'
	ReversedPrime       Rel     = '‵'
	ReversedDoublePrime Rel     = '‶'
	ReversedTriplePrime Rel     = '‷'
	Overline            Rel     = '‾'
	QuadruplePrime      Rel     = '⁗'
)

// Unicode block: Arrows
const (
	LeftwardsArrow                        Rel     = '←'
	UpwardsArrow                          ParenOp = ParenOp('↑') | stretchInconsistent
	RightwardsArrow                       Rel     = '→'
	DownwardsArrow                        ParenOp = ParenOp('↓') | stretchInconsistent
	LeftRightArrow                        Rel     = '↔'
	UpDownArrow                           ParenOp = ParenOp('↕') | stretchInconsistent
	NorthWestArrow                        Rel     = '↖'
	NorthEastArrow                        Rel     = '↗'
	SouthEastArrow                        Rel     = '↘'
	SouthWestArrow                        Rel     = '↙'
	LeftwardsArrowWithStroke              Rel     = '↚'
	RightwardsArrowWithStroke             Rel     = '↛'
	LeftwardsArrowWithTail                Rel     = '↢'
	RightwardsArrowWithTail               Rel     = '↣'
	RightwardsArrowFromBar                Rel     = '↦'
	LeftwardsArrowWithHook                Rel     = '↩'
	RightwardsArrowWithHook               Rel     = '↪'
	LeftwardsArrowWithLoop                Rel     = '↫'
	RightwardsArrowWithLoop               Rel     = '↬'
	LeftRightWaveArrow                    Rel     = '↭'
	LeftRightArrowWithStroke              Rel     = '↮'
	DownwardsZigzagArrow                  Rel     = '↯'
	UpwardsArrowWithTipLeftwards          Rel     = '↰'
	UpwardsArrowWithTipRightwards         Rel     = '↱'
	AnticlockwiseTopSemicircleArrow       Rel     = '↶'
	ClockwiseTopSemicircleArrow           Rel     = '↷'
	AnticlockwiseOpenCircleArrow          Rel     = '↺'
	ClockwiseOpenCircleArrow              Rel     = '↻'
	LeftwardsHarpoonWithBarbUpwards       Rel     = '↼'
	LeftwardsHarpoonWithBarbDownwards     Rel     = '↽'
	UpwardsHarpoonWithBarbRightwards      Rel     = '↾'
	UpwardsHarpoonWithBarbLeftwards       Rel     = '↿'
	RightwardsHarpoonWithBarbUpwards      Rel     = '⇀'
	RightwardsHarpoonWithBarbDownwards    Rel     = '⇁'
	DownwardsHarpoonWithBarbRightwards    Rel     = '⇂'
	DownwardsHarpoonWithBarbLeftwards     Rel     = '⇃'
	RightwardsArrowOverLeftwardsArrow     Rel     = '⇄'
	LeftwardsArrowOverRightwardsArrow     Rel     = '⇆'
	LeftwardsPairedArrows                 Rel     = '⇇'
	UpwardsPairedArrows                   Rel     = '⇈'
	RightwardsPairedArrows                Rel     = '⇉'
	DownwardsPairedArrows                 Rel     = '⇊'
	LeftwardsHarpoonOverRightwardsHarpoon Rel     = '⇋'
	RightwardsHarpoonOverLeftwardsHarpoon Rel     = '⇌'
	LeftwardsDoubleArrowWithStroke        Rel     = '⇍'
	LeftRightDoubleArrowWithStroke        Rel     = '⇎'
	RightwardsDoubleArrowWithStroke       Rel     = '⇏'
	LeftwardsDoubleArrow                  Rel     = '⇐'
	UpwardsDoubleArrow                    ParenOp = ParenOp('⇑') | stretchInconsistent
	RightwardsDoubleArrow                 Rel     = '⇒'
	DownwardsDoubleArrow                  ParenOp = ParenOp('⇓') | stretchInconsistent
	LeftRightDoubleArrow                  Rel     = '⇔'
	UpDownDoubleArrow                     ParenOp = ParenOp('⇕') | stretchInconsistent
	LeftwardsTripleArrow                  Rel     = '⇚'
	RightwardsTripleArrow                 Rel     = '⇛'
	RightwardsSquiggleArrow               Rel     = '⇝'
)

// Unicode block: Mathematical Operators
const (
	ForAll                                       Rel = '∀'
	Complement                                       = '∁'
	PartialDifferential                              = '∂'
	ThereExists                                  Rel = '∃'
	ThereDoesNotExist                            Rel = '∄'
	EmptySet                                         = '∅'
	Nabla                                            = '∇'
	ElementOf                                    Rel = '∈'
	NotAnElementOf                               Rel = '∉'
	ContainsAsMember                             Rel = '∋'
	SmallContainsAsMember                        Rel = '∍'
	NAryProduct                                  Big = '∏'
	NAryCoproduct                                Big = '∐'
	NArySummation                                Big = '∑'
	MinusSign                                    Bin = '−'
	MinusOrPlusSign                              Bin = '∓'
	DotPlus                                      Bin = '∔'
	SetMinus                                     Rel = '∖'
	AsteriskOperator                             Rel = '∗'
	RingOperator                                 Rel = '∘'
	BulletOperator                               Rel = '∙'
	ProportionalTo                               Rel = '∝'
	Infinity                                         = '∞'
	Angle                                            = '∠'
	MeasuredAngle                                    = '∡'
	SphericalAngle                                   = '∢'
	Divides                                      Rel = '∣'
	DoesNotDivide                                Rel = '∤'
	ParallelTo                                   Rel = '∥'
	NotParallelTo                                Rel = '∦'
	LogicalAnd                                   Rel = '∧'
	LogicalOr                                    Rel = '∨'
	Intersection                                 Rel = '∩'
	Union                                        Rel = '∪'
	Integral                                     Big = '∫'
	DoubleIntegral                               Big = '∬'
	TripleIntegral                               Big = '∭'
	ContourIntegral                              Big = '∮'
	SurfaceIntegral                              Big = '∯'
	VolumeIntegral                               Big = '∰'
	ClockwiseIntegral                            Big = '∱'
	ClockwiseContourIntegral                     Big = '∲'
	AnticlockwiseContourIntegral                 Big = '∳'
	Therefore                                    Rel = '∴'
	Because                                      Rel = '∵'
	Proportion                                   Rel = '∷'
	Excess                                       Rel = '∹'
	GeometricProportion                          Rel = '∺'
	Homothetic                                   Rel = '∻'
	TildeOperator                                Rel = '∼'
	ReversedTilde                                Rel = '∽'
	WreathProduct                                Rel = '≀'
	NotTilde                                     Rel = '≁'
	MinusTilde                                   Rel = '≂'
	AsymptoticallyEqualTo                        Rel = '≃'
	NotAsymptoticallyEqualTo                     Rel = '≄'
	ApproximatelyEqualTo                         Rel = '≅'
	AlmostEqualTo                                Rel = '≈'
	NotAlmostEqualTo                             Rel = '≉'
	AlmostEqualOrEqualTo                         Rel = '≊'
	EquivalentTo                                 Rel = '≍'
	GeometricallyEquivalentTo                    Rel = '≎'
	DifferenceBetween                            Rel = '≏'
	ApproachesTheLimit                           Rel = '≐'
	GeometricallyEqualTo                         Rel = '≑'
	ApproximatelyEqualToOrTheImageOf             Rel = '≒'
	ImageOfOrApproximatelyEqualTo                Rel = '≓'
	ColonEquals                                  Rel = '≔'
	EqualsColon                                  Rel = '≕'
	RingInEqualTo                                Rel = '≖'
	RingEqualTo                                  Rel = '≗'
	CorrespondsTo                                Rel = '≘'
	Estimates                                    Rel = '≙'
	EquiangularTo                                Rel = '≚'
	StarEquals                                   Rel = '≛'
	DeltaEqualTo                                 Rel = '≜'
	EqualToByDefinition                          Rel = '≝'
	MeasuredBy                                   Rel = '≞'
	QuestionedEqualTo                            Rel = '≟'
	NotEqualTo                                   Rel = '≠'
	IdenticalTo                                  Rel = '≡'
	NotIdenticalTo                               Rel = '≢'
	LessThanOrEqualTo                            Rel = '≤'
	GreaterThanOrEqualTo                         Rel = '≥'
	LessThanOverEqualTo                          Rel = '≦'
	GreaterThanOverEqualTo                       Rel = '≧'
	LessThanButNotEqualTo                        Rel = '≨'
	GreaterThanButNotEqualTo                     Rel = '≩'
	MuchLessThan                                 Rel = '≪'
	MuchGreaterThan                              Rel = '≫'
	Between                                      Rel = '≬'
	NotLessThan                                  Rel = '≮'
	NotGreaterThan                               Rel = '≯'
	NeitherLessThanNorEqualTo                    Rel = '≰'
	NeitherGreaterThanNorEqualTo                 Rel = '≱'
	LessThanOrEquivalentTo                       Rel = '≲'
	GreaterThanOrEquivalentTo                    Rel = '≳'
	NeitherLessThanNorEquivalentTo               Rel = '≴'
	NeitherGreaterThanNorEquivalentTo            Rel = '≵'
	LessThanOrGreaterThan                        Rel = '≶'
	GreaterThanOrLessThan                        Rel = '≷'
	NeitherLessThanNorGreaterThan                Rel = '≸'
	NeitherGreaterThanNorLessThan                Rel = '≹'
	Precedes                                     Rel = '≺'
	Succeeds                                     Rel = '≻'
	PrecedesOrEqualTo                            Rel = '≼'
	SucceedsOrEqualTo                            Rel = '≽'
	PrecedesOrEquivalentTo                       Rel = '≾'
	SucceedsOrEquivalentTo                       Rel = '≿'
	DoesNotPrecede                               Rel = '⊀'
	DoesNotSucceed                               Rel = '⊁'
	SubsetOf                                     Rel = '⊂'
	SupersetOf                                   Rel = '⊃'
	NotASubsetOf                                 Rel = '⊄'
	NotASupersetOf                               Rel = '⊅'
	SubsetOfOrEqualTo                            Rel = '⊆'
	SupersetOfOrEqualTo                          Rel = '⊇'
	NeitherASubsetOfNorEqualTo                   Rel = '⊈'
	NeitherASupersetOfNorEqualTo                 Rel = '⊉'
	SubsetOfWithNotEqualTo                       Rel = '⊊'
	SupersetOfWithNotEqualTo                     Rel = '⊋'
	MultisetUnion                                Rel = '⊎'
	SquareImageOf                                Rel = '⊏'
	SquareOriginalOf                             Rel = '⊐'
	SquareImageOfOrEqualTo                       Rel = '⊑'
	SquareOriginalOfOrEqualTo                    Rel = '⊒'
	SquareCap                                    Rel = '⊓'
	SquareCup                                    Rel = '⊔'
	CircledPlus                                  Rel = '⊕'
	CircledMinus                                 Rel = '⊖'
	CircledTimes                                 Rel = '⊗'
	CircledDivisionSlash                         Rel = '⊘'
	CircledDotOperator                           Rel = '⊙'
	CircledRingOperator                          Rel = '⊚'
	CircledAsteriskOperator                      Rel = '⊛'
	CircledDash                                  Rel = '⊝'
	SquaredPlus                                  Rel = '⊞'
	SquaredMinus                                 Rel = '⊟'
	SquaredTimes                                 Rel = '⊠'
	SquaredDotOperator                           Rel = '⊡'
	RightTack                                    Rel = '⊢'
	LeftTack                                     Rel = '⊣'
	DownTack                                         = '⊤'
	UpTack                                           = '⊥'
	True                                         Rel = '⊨'
	Forces                                       Rel = '⊩'
	TripleVerticalBarRightTurnstile              Rel = '⊪'
	DoubleVerticalBarDoubleRightTurnstile        Rel = '⊫'
	DoesNotProve                                 Rel = '⊬'
	NotTrue                                      Rel = '⊭'
	DoesNotForce                                 Rel = '⊮'
	NegatedDoubleVerticalBarDoubleRightTurnstile Rel = '⊯'
	NormalSubgroupOf                             Rel = '⊲'
	ContainsAsNormalSubgroup                     Rel = '⊳'
	NormalSubgroupOfOrEqualTo                    Rel = '⊴'
	ContainsAsNormalSubgroupOrEqualTo            Rel = '⊵'
	Multimap                                     Rel = '⊸'
	Intercalate                                  Rel = '⊺'
	Xor                                          Rel = '⊻'
	Nand                                         Rel = '⊼'
	NAryLogicalAnd                               Big = '⋀'
	NAryLogicalOr                                Big = '⋁'
	NAryIntersection                             Big = '⋂'
	NAryUnion                                    Big = '⋃'
	DiamondOperator                              Rel = '⋄'
	StarOperator                                 Rel = '⋆'
	DivisionTimes                                Rel = '⋇'
	Bowtie                                       Rel = '⋈'
	LeftNormalFactorSemidirectProduct            Rel = '⋉'
	RightNormalFactorSemidirectProduct           Rel = '⋊'
	LeftSemidirectProduct                        Rel = '⋋'
	RightSemidirectProduct                       Rel = '⋌'
	ReversedTildeEquals                          Rel = '⋍'
	CurlyLogicalOr                               Rel = '⋎'
	CurlyLogicalAnd                              Rel = '⋏'
	DoubleSubset                                 Rel = '⋐'
	DoubleSuperset                               Rel = '⋑'
	DoubleIntersection                           Rel = '⋒'
	DoubleUnion                                  Rel = '⋓'
	Pitchfork                                    Rel = '⋔'
	LessThanWithDot                              Rel = '⋖'
	VeryMuchLessThan                             Rel = '⋘'
	LessThanEqualToOrGreaterThan                 Rel = '⋚'
	EqualToOrPrecedes                            Rel = '⋞'
	EqualToOrSucceeds                            Rel = '⋟'
	DoesNotPrecedeOrEqual                        Rel = '⋠'
	DoesNotSucceedOrEqual                        Rel = '⋡'
	PrecedesButNotEquivalentTo                   Rel = '⋨'
	SucceedsButNotEquivalentTo                   Rel = '⋩'
	VerticalEllipsis                             Rel = '⋮'
	DownRightDiagonalEllipsis                    Rel = '⋱'
)

// Unicode block: Miscellaneous Technical
const (
	LeftCeiling         ParenOp = ParenOp('⌈') | stretchAlways
	RightCeiling        ParenOp = ParenOp('⌉') | stretchAlways
	LeftFloor           ParenOp = ParenOp('⌊') | stretchAlways
	RightFloor          ParenOp = ParenOp('⌋') | stretchAlways
	TopLeftCorner               = '⌜'
	TopRightCorner              = '⌝'
	BottomLeftCorner            = '⌞'
	BottomRightCorner           = '⌟'
	Frown               Rel     = '⌢'
	Smile               Rel     = '⌣'
	TopSquareBracket    Op      = '⎴'
	BottomSquareBracket Op      = '⎵'
	TopParenthesis      Op      = '⏜'
	BottomParenthesis   Op      = '⏝'
	TopCurlyBracket     Op      = '⏞'
	BottomCurlyBracket  Op      = '⏟'
)

// Unicode block: Enclosed Alphanumerics
const (
	CircledLatinCapitalLetterR = 'Ⓡ'
	CircledLatinCapitalLetterS = 'Ⓢ'
)

// Unicode block: Geometric Shapes
const (
	BlackSquare                = '■'
	BlackUpPointingTriangle    = '▲'
	BlackRightPointingTriangle = '▶'
	BlackDownPointingTriangle  = '▼'
	BlackLeftPointingTriangle  = '◀'
	WhiteUpPointingTriangle    = '△'
	WhiteRightPointingTriangle = '▷'
	WhiteDownPointingTriangle  = '▽'
	WhiteLeftPointingTriangle  = '◁'
	LargeCircle                = '◯'
)

// Unicode block: Miscellaneous Symbols
const (
	BlackStar = '★'
)

// Unicode block: Miscellaneous Mathematical Symbols-A
const (
	Perpendicular                         Rel     = '⟂'
	MathematicalLeftWhiteSquareBracket    ParenOp = ParenOp('⟦') | stretchAlways
	MathematicalRightWhiteSquareBracket   ParenOp = ParenOp('⟧') | stretchAlways
	MathematicalLeftAngleBracket          ParenOp = ParenOp('⟨') | stretchAlways
	MathematicalRightAngleBracket         ParenOp = ParenOp('⟩') | stretchAlways
	MathematicalLeftFlattenedParenthesis  ParenOp = ParenOp('⟮') | stretchAlways
	MathematicalRightFlattenedParenthesis ParenOp = ParenOp('⟯') | stretchAlways
)

// Unicode block: Supplemental Arrows-A
const (
	LongLeftwardsArrow         Rel = '⟵'
	LongRightwardsArrow        Rel = '⟶'
	LongLeftRightArrow         Rel = '⟷'
	LongLeftwardsDoubleArrow   Rel = '⟸'
	LongRightwardsDoubleArrow  Rel = '⟹'
	LongLeftRightDoubleArrow   Rel = '⟺'
	LongRightwardsArrowFromBar Rel = '⟼'
)

// Unicode block: Supplemental Arrows-B
const (
	LeftwardsArrowTail  Rel = '⤙'
	RightwardsArrowTail Rel = '⤚'
)

// Unicode block: Miscellaneous Mathematical Symbols-B
const (
	LeftWhiteCurlyBracket        ParenOp = ParenOp('⦃') | stretchAlways
	RightWhiteCurlyBracket       ParenOp = ParenOp('⦄') | stretchAlways
	ZNotationLeftImageBracket    ParenOp = ParenOp('⦇') | stretchAlways
	ZNotationRightImageBracket   ParenOp = ParenOp('⦈') | stretchAlways
	ZNotationLeftBindingBracket  ParenOp = ParenOp('⦉') | stretchAlways
	ZNotationRightBindingBracket ParenOp = ParenOp('⦊') | stretchAlways
	SquaredRisingDiagonalSlash   Rel     = '⧄'
	SquaredFallingDiagonalSlash  Rel     = '⧅'
	SquaredSquare                Rel     = '⧈'
	BlackLozenge                         = '⧫'
)

// Unicode block: Supplemental Mathematical Operators
const (
	NAryCircledDotOperator                       Big = '⨀'
	NAryCircledPlusOperator                      Big = '⨁'
	NAryCircledTimesOperator                     Big = '⨂'
	NAryUnionOperatorWithDot                     Big = '⨃'
	NAryUnionOperatorWithPlus                    Big = '⨄'
	NArySquareIntersectionOperator               Big = '⨅'
	NArySquareUnionOperator                      Big = '⨆'
	TwoLogicalAndOperator                        Big = '⨇'
	TwoLogicalOrOperator                         Big = '⨈'
	NAryTimesOperator                            Big = '⨉'
	SummationWithIntegral                        Big = '⨋'
	QuadrupleIntegralOperator                    Big = '⨌'
	FinitePartlIntegral                          Big = '⨍'
	IntegralWithDoubleStroke                     Big = '⨎'
	IntegralAverageWithSlash                     Big = '⨏'
	CirculationFunction                          Big = '⨐'
	AnticlockwiseIntegration                     Big = '⨑'
	ZNotationSchemaComposition                   Rel = '⨟'
	AmalgamationOrCoproduct                      Rel = '⨿'
	LogicalAndWithDoubleOverbar                  Rel = '⩞'
	EqualsSignWithDotBelow                       Rel = '⩦'
	LessThanOrSlantedEqualTo                     Rel = '⩽'
	GreaterThanOrSlantedEqualTo                  Rel = '⩾'
	LessThanOrApproximate                        Rel = '⪅'
	GreaterThanOrApproximate                     Rel = '⪆'
	LessThanAndSingleLineNotEqualTo              Rel = '⪇'
	GreaterThanAndSingleLineNotEqualTo           Rel = '⪈'
	LessThanAboveDoubleLineEqualAboveGreaterThan Rel = '⪋'
	SlantedEqualToOrLessThan                     Rel = '⪕'
	SlantedEqualToOrGreaterThan                  Rel = '⪖'
	PrecedesAboveSingleLineEqualsSign            Rel = '⪯'
	SucceedsAboveSingleLineEqualsSign            Rel = '⪰'
	PrecedesAboveNotEqualTo                      Rel = '⪵'
	SucceedsAboveNotEqualTo                      Rel = '⪶'
	PrecedesAboveAlmostEqualTo                   Rel = '⪷'
	SucceedsAboveAlmostEqualTo                   Rel = '⪸'
	PrecedesAboveNotAlmostEqualTo                Rel = '⪹'
	SucceedsAboveNotAlmostEqualTo                Rel = '⪺'
	SubsetOfAboveNotEqualTo                      Rel = '⫋'
	SupersetOfAboveNotEqualTo                    Rel = '⫌'
)

// Unicode block: Small Form Variants
const (
	SmallReverseSolidus Rel = '﹨'
)

// table holds every classified symbol ordered by code point.
var table = [...]Symbol{
	{CategoryParen, uint32(Null)},
	{CategoryRel, uint32(ExclamationMark)},
	{CategoryParen, uint32(LeftParenthesis)},
	{CategoryParen, uint32(RightParenthesis)},
	{CategoryOp, uint32(Asterisk)},
	{CategoryBin, uint32(PlusSign)},
	{CategoryRel, uint32(Comma)},
	{CategoryOp, uint32(FullStop)},
	{CategoryParen, uint32(Solidus)},
	{CategoryRel, uint32(Colon)},
	{CategoryRel, uint32(Semicolon)},
	{CategoryRel, uint32(LessThanSign)},
	{CategoryRel, uint32(EqualsSign)},
	{CategoryRel, uint32(GreaterThanSign)},
	{CategoryParen, uint32(LeftSquareBracket)},
	{CategoryParen, uint32(ReverseSolidus)},
	{CategoryParen, uint32(RightSquareBracket)},
	{CategoryOp, uint32(CircumflexAccent)},
	{CategoryOp, uint32(LowLine)},
	{CategoryOp, uint32(GraveAccent)},
	{CategoryParen, uint32(LeftCurlyBracket)},
	{CategoryParen, uint32(VerticalLine)},
	{CategoryParen, uint32(RightCurlyBracket)},
	{CategoryOp, uint32(Tilde)},
	{CategoryOp, uint32(Diaeresis)},
	{CategoryRel, uint32(NotSign)},
	{CategoryOp, uint32(Macron)},
	{CategoryBin, uint32(PlusMinusSign)},
	{CategoryOp, uint32(AcuteAccent)},
	{CategoryBin, uint32(MiddleDot)},
	{CategoryBin, uint32(MultiplicationSign)},
	{CategoryBin, uint32(DivisionSign)},
	{CategoryOp, uint32(Caron)},
	{CategoryOp, uint32(Breve)},
	{CategoryOp, uint32(DotAbove)},
	{CategoryParen, uint32(DoubleVerticalLine)},
	{CategoryRel, uint32(HorizontalEllipsis)},
	{CategoryRel, uint32(Prime)},
	{CategoryRel, uint32(DoublePrime)},
	{CategoryRel, uint32(TriplePrime)},
	{CategoryRel, uint32(ReversedPrime)},
	{CategoryRel, uint32(ReversedDoublePrime)},
	{CategoryRel, uint32(ReversedTriplePrime)},
	{CategoryRel, uint32(Overline)},
	{CategoryRel, uint32(QuadruplePrime)},
	{CategoryRel, uint32(LeftwardsArrow)},
	{CategoryParen, uint32(UpwardsArrow)},
	{CategoryRel, uint32(RightwardsArrow)},
	{CategoryParen, uint32(DownwardsArrow)},
	{CategoryRel, uint32(LeftRightArrow)},
	{CategoryParen, uint32(UpDownArrow)},
	{CategoryRel, uint32(NorthWestArrow)},
	{CategoryRel, uint32(NorthEastArrow)},
	{CategoryRel, uint32(SouthEastArrow)},
	{CategoryRel, uint32(SouthWestArrow)},
	{CategoryRel, uint32(LeftwardsArrowWithStroke)},
	{CategoryRel, uint32(RightwardsArrowWithStroke)},
	{CategoryRel, uint32(LeftwardsArrowWithTail)},
	{CategoryRel, uint32(RightwardsArrowWithTail)},
	{CategoryRel, uint32(RightwardsArrowFromBar)},
	{CategoryRel, uint32(LeftwardsArrowWithHook)},
	{CategoryRel, uint32(RightwardsArrowWithHook)},
	{CategoryRel, uint32(LeftwardsArrowWithLoop)},
	{CategoryRel, uint32(RightwardsArrowWithLoop)},
	{CategoryRel, uint32(LeftRightWaveArrow)},
	{CategoryRel, uint32(LeftRightArrowWithStroke)},
	{CategoryRel, uint32(DownwardsZigzagArrow)},
	{CategoryRel, uint32(UpwardsArrowWithTipLeftwards)},
	{CategoryRel, uint32(UpwardsArrowWithTipRightwards)},
	{CategoryRel, uint32(AnticlockwiseTopSemicircleArrow)},
	{CategoryRel, uint32(ClockwiseTopSemicircleArrow)},
	{CategoryRel, uint32(AnticlockwiseOpenCircleArrow)},
	{CategoryRel, uint32(ClockwiseOpenCircleArrow)},
	{CategoryRel, uint32(LeftwardsHarpoonWithBarbUpwards)},
	{CategoryRel, uint32(LeftwardsHarpoonWithBarbDownwards)},
	{CategoryRel, uint32(UpwardsHarpoonWithBarbRightwards)},
	{CategoryRel, uint32(UpwardsHarpoonWithBarbLeftwards)},
	{CategoryRel, uint32(RightwardsHarpoonWithBarbUpwards)},
	{CategoryRel, uint32(RightwardsHarpoonWithBarbDownwards)},
	{CategoryRel, uint32(DownwardsHarpoonWithBarbRightwards)},
	{CategoryRel, uint32(DownwardsHarpoonWithBarbLeftwards)},
	{CategoryRel, uint32(RightwardsArrowOverLeftwardsArrow)},
	{CategoryRel, uint32(LeftwardsArrowOverRightwardsArrow)},
	{CategoryRel, uint32(LeftwardsPairedArrows)},
	{CategoryRel, uint32(UpwardsPairedArrows)},
	{CategoryRel, uint32(RightwardsPairedArrows)},
	{CategoryRel, uint32(DownwardsPairedArrows)},
	{CategoryRel, uint32(LeftwardsHarpoonOverRightwardsHarpoon)},
	{CategoryRel, uint32(RightwardsHarpoonOverLeftwardsHarpoon)},
	{CategoryRel, uint32(LeftwardsDoubleArrowWithStroke)},
	{CategoryRel, uint32(LeftRightDoubleArrowWithStroke)},
	{CategoryRel, uint32(RightwardsDoubleArrowWithStroke)},
	{CategoryRel, uint32(LeftwardsDoubleArrow)},
	{CategoryParen, uint32(UpwardsDoubleArrow)},
	{CategoryRel, uint32(RightwardsDoubleArrow)},
	{CategoryParen, uint32(DownwardsDoubleArrow)},
	{CategoryRel, uint32(LeftRightDoubleArrow)},
	{CategoryParen, uint32(UpDownDoubleArrow)},
	{CategoryRel, uint32(LeftwardsTripleArrow)},
	{CategoryRel, uint32(RightwardsTripleArrow)},
	{CategoryRel, uint32(RightwardsSquiggleArrow)},
	{CategoryRel, uint32(ForAll)},
	{CategoryRel, uint32(ThereExists)},
	{CategoryRel, uint32(ThereDoesNotExist)},
	{CategoryRel, uint32(ElementOf)},
	{CategoryRel, uint32(NotAnElementOf)},
	{CategoryRel, uint32(ContainsAsMember)},
	{CategoryRel, uint32(SmallContainsAsMember)},
	{CategoryBig, uint32(NAryProduct)},
	{CategoryBig, uint32(NAryCoproduct)},
	{CategoryBig, uint32(NArySummation)},
	{CategoryBin, uint32(MinusSign)},
	{CategoryBin, uint32(MinusOrPlusSign)},
	{CategoryBin, uint32(DotPlus)},
	{CategoryRel, uint32(SetMinus)},
	{CategoryRel, uint32(AsteriskOperator)},
	{CategoryRel, uint32(RingOperator)},
	{CategoryRel, uint32(BulletOperator)},
	{CategoryRel, uint32(ProportionalTo)},
	{CategoryRel, uint32(Divides)},
	{CategoryRel, uint32(DoesNotDivide)},
	{CategoryRel, uint32(ParallelTo)},
	{CategoryRel, uint32(NotParallelTo)},
	{CategoryRel, uint32(LogicalAnd)},
	{CategoryRel, uint32(LogicalOr)},
	{CategoryRel, uint32(Intersection)},
	{CategoryRel, uint32(Union)},
	{CategoryBig, uint32(Integral)},
	{CategoryBig, uint32(DoubleIntegral)},
	{CategoryBig, uint32(TripleIntegral)},
	{CategoryBig, uint32(ContourIntegral)},
	{CategoryBig, uint32(SurfaceIntegral)},
	{CategoryBig, uint32(VolumeIntegral)},
	{CategoryBig, uint32(ClockwiseIntegral)},
	{CategoryBig, uint32(ClockwiseContourIntegral)},
	{CategoryBig, uint32(AnticlockwiseContourIntegral)},
	{CategoryRel, uint32(Therefore)},
	{CategoryRel, uint32(Because)},
	{CategoryRel, uint32(Proportion)},
	{CategoryRel, uint32(Excess)},
	{CategoryRel, uint32(GeometricProportion)},
	{CategoryRel, uint32(Homothetic)},
	{CategoryRel, uint32(TildeOperator)},
	{CategoryRel, uint32(ReversedTilde)},
	{CategoryRel, uint32(WreathProduct)},
	{CategoryRel, uint32(NotTilde)},
	{CategoryRel, uint32(MinusTilde)},
	{CategoryRel, uint32(AsymptoticallyEqualTo)},
	{CategoryRel, uint32(NotAsymptoticallyEqualTo)},
	{CategoryRel, uint32(ApproximatelyEqualTo)},
	{CategoryRel, uint32(AlmostEqualTo)},
	{CategoryRel, uint32(NotAlmostEqualTo)},
	{CategoryRel, uint32(AlmostEqualOrEqualTo)},
	{CategoryRel, uint32(EquivalentTo)},
	{CategoryRel, uint32(GeometricallyEquivalentTo)},
	{CategoryRel, uint32(DifferenceBetween)},
	{CategoryRel, uint32(ApproachesTheLimit)},
	{CategoryRel, uint32(GeometricallyEqualTo)},
	{CategoryRel, uint32(ApproximatelyEqualToOrTheImageOf)},
	{CategoryRel, uint32(ImageOfOrApproximatelyEqualTo)},
	{CategoryRel, uint32(ColonEquals)},
	{CategoryRel, uint32(EqualsColon)},
	{CategoryRel, uint32(RingInEqualTo)},
	{CategoryRel, uint32(RingEqualTo)},
	{CategoryRel, uint32(CorrespondsTo)},
	{CategoryRel, uint32(Estimates)},
	{CategoryRel, uint32(EquiangularTo)},
	{CategoryRel, uint32(StarEquals)},
	{CategoryRel, uint32(DeltaEqualTo)},
	{CategoryRel, uint32(EqualToByDefinition)},
	{CategoryRel, uint32(MeasuredBy)},
	{CategoryRel, uint32(QuestionedEqualTo)},
	{CategoryRel, uint32(NotEqualTo)},
	{CategoryRel, uint32(IdenticalTo)},
	{CategoryRel, uint32(NotIdenticalTo)},
	{CategoryRel, uint32(LessThanOrEqualTo)},
	{CategoryRel, uint32(GreaterThanOrEqualTo)},
	{CategoryRel, uint32(LessThanOverEqualTo)},
	{CategoryRel, uint32(GreaterThanOverEqualTo)},
	{CategoryRel, uint32(LessThanButNotEqualTo)},
	{CategoryRel, uint32(GreaterThanButNotEqualTo)},
	{CategoryRel, uint32(MuchLessThan)},
	{CategoryRel, uint32(MuchGreaterThan)},
	{CategoryRel, uint32(Between)},
	{CategoryRel, uint32(NotLessThan)},
	{CategoryRel, uint32(NotGreaterThan)},
	{CategoryRel, uint32(NeitherLessThanNorEqualTo)},
	{CategoryRel, uint32(NeitherGreaterThanNorEqualTo)},
	{CategoryRel, uint32(LessThanOrEquivalentTo)},
	{CategoryRel, uint32(GreaterThanOrEquivalentTo)},
	{CategoryRel, uint32(NeitherLessThanNorEquivalentTo)},
	{CategoryRel, uint32(NeitherGreaterThanNorEquivalentTo)},
	{CategoryRel, uint32(LessThanOrGreaterThan)},
	{CategoryRel, uint32(GreaterThanOrLessThan)},
	{CategoryRel, uint32(NeitherLessThanNorGreaterThan)},
	{CategoryRel, uint32(NeitherGreaterThanNorLessThan)},
	{CategoryRel, uint32(Precedes)},
	{CategoryRel, uint32(Succeeds)},
	{CategoryRel, uint32(PrecedesOrEqualTo)},
	{CategoryRel, uint32(SucceedsOrEqualTo)},
	{CategoryRel, uint32(PrecedesOrEquivalentTo)},
	{CategoryRel, uint32(SucceedsOrEquivalentTo)},
	{CategoryRel, uint32(DoesNotPrecede)},
	{CategoryRel, uint32(DoesNotSucceed)},
	{CategoryRel, uint32(SubsetOf)},
	{CategoryRel, uint32(SupersetOf)},
	{CategoryRel, uint32(NotASubsetOf)},
	{CategoryRel, uint32(NotASupersetOf)},
	{CategoryRel, uint32(SubsetOfOrEqualTo)},
	{CategoryRel, uint32(SupersetOfOrEqualTo)},
	{CategoryRel, uint32(NeitherASubsetOfNorEqualTo)},
	{CategoryRel, uint32(NeitherASupersetOfNorEqualTo)},
	{CategoryRel, uint32(SubsetOfWithNotEqualTo)},
	{CategoryRel, uint32(SupersetOfWithNotEqualTo)},
	{CategoryRel, uint32(MultisetUnion)},
	{CategoryRel, uint32(SquareImageOf)},
	{CategoryRel, uint32(SquareOriginalOf)},
	{CategoryRel, uint32(SquareImageOfOrEqualTo)},
	{CategoryRel, uint32(SquareOriginalOfOrEqualTo)},
	{CategoryRel, uint32(SquareCap)},
	{CategoryRel, uint32(SquareCup)},
	{CategoryRel, uint32(CircledPlus)},
	{CategoryRel, uint32(CircledMinus)},
	{CategoryRel, uint32(CircledTimes)},
	{CategoryRel, uint32(CircledDivisionSlash)},
	{CategoryRel, uint32(CircledDotOperator)},
	{CategoryRel, uint32(CircledRingOperator)},
	{CategoryRel, uint32(CircledAsteriskOperator)},
	{CategoryRel, uint32(CircledDash)},
	{CategoryRel, uint32(SquaredPlus)},
	{CategoryRel, uint32(SquaredMinus)},
	{CategoryRel, uint32(SquaredTimes)},
	{CategoryRel, uint32(SquaredDotOperator)},
	{CategoryRel, uint32(RightTack)},
	{CategoryRel, uint32(LeftTack)},
	{CategoryRel, uint32(True)},
	{CategoryRel, uint32(Forces)},
	{CategoryRel, uint32(TripleVerticalBarRightTurnstile)},
	{CategoryRel, uint32(DoubleVerticalBarDoubleRightTurnstile)},
	{CategoryRel, uint32(DoesNotProve)},
	{CategoryRel, uint32(NotTrue)},
	{CategoryRel, uint32(DoesNotForce)},
	{CategoryRel, uint32(NegatedDoubleVerticalBarDoubleRightTurnstile)},
	{CategoryRel, uint32(NormalSubgroupOf)},
	{CategoryRel, uint32(ContainsAsNormalSubgroup)},
	{CategoryRel, uint32(NormalSubgroupOfOrEqualTo)},
	{CategoryRel, uint32(ContainsAsNormalSubgroupOrEqualTo)},
	{CategoryRel, uint32(Multimap)},
	{CategoryRel, uint32(Intercalate)},
	{CategoryRel, uint32(Xor)},
	{CategoryRel, uint32(Nand)},
	{CategoryBig, uint32(NAryLogicalAnd)},
	{CategoryBig, uint32(NAryLogicalOr)},
	{CategoryBig, uint32(NAryIntersection)},
	{CategoryBig, uint32(NAryUnion)},
	{CategoryRel, uint32(DiamondOperator)},
	{CategoryRel, uint32(StarOperator)},
	{CategoryRel, uint32(DivisionTimes)},
	{CategoryRel, uint32(Bowtie)},
	{CategoryRel, uint32(LeftNormalFactorSemidirectProduct)},
	{CategoryRel, uint32(RightNormalFactorSemidirectProduct)},
	{CategoryRel, uint32(LeftSemidirectProduct)},
	{CategoryRel, uint32(RightSemidirectProduct)},
	{CategoryRel, uint32(ReversedTildeEquals)},
	{CategoryRel, uint32(CurlyLogicalOr)},
	{CategoryRel, uint32(CurlyLogicalAnd)},
	{CategoryRel, uint32(DoubleSubset)},
	{CategoryRel, uint32(DoubleSuperset)},
	{CategoryRel, uint32(DoubleIntersection)},
	{CategoryRel, uint32(DoubleUnion)},
	{CategoryRel, uint32(Pitchfork)},
	{CategoryRel, uint32(LessThanWithDot)},
	{CategoryRel, uint32(VeryMuchLessThan)},
	{CategoryRel, uint32(LessThanEqualToOrGreaterThan)},
	{CategoryRel, uint32(EqualToOrPrecedes)},
	{CategoryRel, uint32(EqualToOrSucceeds)},
	{CategoryRel, uint32(DoesNotPrecedeOrEqual)},
	{CategoryRel, uint32(DoesNotSucceedOrEqual)},
	{CategoryRel, uint32(PrecedesButNotEquivalentTo)},
	{CategoryRel, uint32(SucceedsButNotEquivalentTo)},
	{CategoryRel, uint32(VerticalEllipsis)},
	{CategoryRel, uint32(DownRightDiagonalEllipsis)},
	{CategoryParen, uint32(LeftCeiling)},
	{CategoryParen, uint32(RightCeiling)},
	{CategoryParen, uint32(LeftFloor)},
	{CategoryParen, uint32(RightFloor)},
	{CategoryRel, uint32(Frown)},
	{CategoryRel, uint32(Smile)},
	{CategoryOp, uint32(TopSquareBracket)},
	{CategoryOp, uint32(BottomSquareBracket)},
	{CategoryOp, uint32(TopParenthesis)},
	{CategoryOp, uint32(BottomParenthesis)},
	{CategoryOp, uint32(TopCurlyBracket)},
	{CategoryOp, uint32(BottomCurlyBracket)},
	{CategoryRel, uint32(Perpendicular)},
	{CategoryParen, uint32(MathematicalLeftWhiteSquareBracket)},
	{CategoryParen, uint32(MathematicalRightWhiteSquareBracket)},
	{CategoryParen, uint32(MathematicalLeftAngleBracket)},
	{CategoryParen, uint32(MathematicalRightAngleBracket)},
	{CategoryParen, uint32(MathematicalLeftFlattenedParenthesis)},
	{CategoryParen, uint32(MathematicalRightFlattenedParenthesis)},
	{CategoryRel, uint32(LongLeftwardsArrow)},
	{CategoryRel, uint32(LongRightwardsArrow)},
	{CategoryRel, uint32(LongLeftRightArrow)},
	{CategoryRel, uint32(LongLeftwardsDoubleArrow)},
	{CategoryRel, uint32(LongRightwardsDoubleArrow)},
	{CategoryRel, uint32(LongLeftRightDoubleArrow)},
	{CategoryRel, uint32(LongRightwardsArrowFromBar)},
	{CategoryRel, uint32(LeftwardsArrowTail)},
	{CategoryRel, uint32(RightwardsArrowTail)},
	{CategoryParen, uint32(LeftWhiteCurlyBracket)},
	{CategoryParen, uint32(RightWhiteCurlyBracket)},
	{CategoryParen, uint32(ZNotationLeftImageBracket)},
	{CategoryParen, uint32(ZNotationRightImageBracket)},
	{CategoryParen, uint32(ZNotationLeftBindingBracket)},
	{CategoryParen, uint32(ZNotationRightBindingBracket)},
	{CategoryRel, uint32(SquaredRisingDiagonalSlash)},
	{CategoryRel, uint32(SquaredFallingDiagonalSlash)},
	{CategoryRel, uint32(SquaredSquare)},
	{CategoryBig, uint32(NAryCircledDotOperator)},
	{CategoryBig, uint32(NAryCircledPlusOperator)},
	{CategoryBig, uint32(NAryCircledTimesOperator)},
	{CategoryBig, uint32(NAryUnionOperatorWithDot)},
	{CategoryBig, uint32(NAryUnionOperatorWithPlus)},
	{CategoryBig, uint32(NArySquareIntersectionOperator)},
	{CategoryBig, uint32(NArySquareUnionOperator)},
	{CategoryBig, uint32(TwoLogicalAndOperator)},
	{CategoryBig, uint32(TwoLogicalOrOperator)},
	{CategoryBig, uint32(NAryTimesOperator)},
	{CategoryBig, uint32(SummationWithIntegral)},
	{CategoryBig, uint32(QuadrupleIntegralOperator)},
	{CategoryBig, uint32(FinitePartlIntegral)},
	{CategoryBig, uint32(IntegralWithDoubleStroke)},
	{CategoryBig, uint32(IntegralAverageWithSlash)},
	{CategoryBig, uint32(CirculationFunction)},
	{CategoryBig, uint32(AnticlockwiseIntegration)},
	{CategoryRel, uint32(ZNotationSchemaComposition)},
	{CategoryRel, uint32(AmalgamationOrCoproduct)},
	{CategoryRel, uint32(LogicalAndWithDoubleOverbar)},
	{CategoryRel, uint32(EqualsSignWithDotBelow)},
	{CategoryRel, uint32(LessThanOrSlantedEqualTo)},
	{CategoryRel, uint32(GreaterThanOrSlantedEqualTo)},
	{CategoryRel, uint32(LessThanOrApproximate)},
	{CategoryRel, uint32(GreaterThanOrApproximate)},
	{CategoryRel, uint32(LessThanAndSingleLineNotEqualTo)},
	{CategoryRel, uint32(GreaterThanAndSingleLineNotEqualTo)},
	{CategoryRel, uint32(LessThanAboveDoubleLineEqualAboveGreaterThan)},
	{CategoryRel, uint32(SlantedEqualToOrLessThan)},
	{CategoryRel, uint32(SlantedEqualToOrGreaterThan)},
	{CategoryRel, uint32(PrecedesAboveSingleLineEqualsSign)},
	{CategoryRel, uint32(SucceedsAboveSingleLineEqualsSign)},
	{CategoryRel, uint32(PrecedesAboveNotEqualTo)},
	{CategoryRel, uint32(SucceedsAboveNotEqualTo)},
	{CategoryRel, uint32(PrecedesAboveAlmostEqualTo)},
	{CategoryRel, uint32(SucceedsAboveAlmostEqualTo)},
	{CategoryRel, uint32(PrecedesAboveNotAlmostEqualTo)},
	{CategoryRel, uint32(SucceedsAboveNotAlmostEqualTo)},
	{CategoryRel, uint32(SubsetOfAboveNotEqualTo)},
	{CategoryRel, uint32(SupersetOfAboveNotEqualTo)},
	{CategoryRel, uint32(SmallReverseSolidus)},
}
