// Package diag defines the structured errors of the LaTeX front-end.
//
// A LatexError is plain data: a byte offset, a kind and the few tokens or
// names the kind needs. Building one never formats anything. The message is
// rendered only when Message or Error is called.
package diag

import (
	"strconv"

	"github.com/agenthands/latex2mml/pkg/compiler/lexer"
)

// Kind identifies the failure.
type Kind uint8

const (
	KindUnexpectedToken       Kind = iota // Expected, Got
	KindUnclosedGroup                     // Expected
	KindUnexpectedClose                   // Got
	KindUnexpectedEOF                     //
	KindMissingParenthesis                // Expected is the construct, Got what followed it
	KindUnknownEnvironment                // Name
	KindUnknownCommand                    // Name
	KindMismatchedEnvironment             // Name is the opened environment, GotName the closed one
	KindCannotBeUsedHere                  // Got, Place
	KindExpectedText                      // Name is the context
)

var kindNames = [...]string{
	KindUnexpectedToken:       "UnexpectedToken",
	KindUnclosedGroup:         "UnclosedGroup",
	KindUnexpectedClose:       "UnexpectedClose",
	KindUnexpectedEOF:         "UnexpectedEOF",
	KindMissingParenthesis:    "MissingParenthesis",
	KindUnknownEnvironment:    "UnknownEnvironment",
	KindUnknownCommand:        "UnknownCommand",
	KindMismatchedEnvironment: "MismatchedEnvironment",
	KindCannotBeUsedHere:      "CannotBeUsedHere",
	KindExpectedText:          "ExpectedText",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Place names where a misplaced token would have been valid.
type Place uint8

const (
	AfterBigOp Place = iota
	BeforeSomeOps
	AfterOpOrIdent
)

func (p Place) String() string {
	switch p {
	case AfterBigOp:
		return `after \int, \sum, ...`
	case BeforeSomeOps:
		return "before supported operators"
	case AfterOpOrIdent:
		return "after an identifier or operator"
	}
	return "Place(" + strconv.Itoa(int(p)) + ")"
}

// LatexError reports a structural problem at a byte offset of the source.
// Tokens and names borrow from the source text. The constructors return
// a pointer, so building an error costs one allocation on the error path.
type LatexError struct {
	Offset   int
	Kind     Kind
	Expected lexer.Token
	Got      lexer.Token
	Name     string
	GotName  string
	Place    Place
}

func UnexpectedToken(offset int, expected, got lexer.Token) *LatexError {
	return &LatexError{Offset: offset, Kind: KindUnexpectedToken, Expected: expected, Got: got}
}

func UnclosedGroup(offset int, expected lexer.Token) *LatexError {
	return &LatexError{Offset: offset, Kind: KindUnclosedGroup, Expected: expected}
}

func UnexpectedClose(offset int, got lexer.Token) *LatexError {
	return &LatexError{Offset: offset, Kind: KindUnexpectedClose, Got: got}
}

func UnexpectedEOF(offset int) *LatexError {
	return &LatexError{Offset: offset, Kind: KindUnexpectedEOF}
}

// MissingParenthesis reports that location (e.g. \left) was not followed
// by a fence.
func MissingParenthesis(offset int, location, got lexer.Token) *LatexError {
	return &LatexError{Offset: offset, Kind: KindMissingParenthesis, Expected: location, Got: got}
}

func UnknownEnvironment(offset int, name string) *LatexError {
	return &LatexError{Offset: offset, Kind: KindUnknownEnvironment, Name: name}
}

func UnknownCommand(offset int, name string) *LatexError {
	return &LatexError{Offset: offset, Kind: KindUnknownCommand, Name: name}
}

func MismatchedEnvironment(offset int, expected, got string) *LatexError {
	return &LatexError{Offset: offset, Kind: KindMismatchedEnvironment, Name: expected, GotName: got}
}

func CannotBeUsedHere(offset int, got lexer.Token, place Place) *LatexError {
	return &LatexError{Offset: offset, Kind: KindCannotBeUsedHere, Got: got, Place: place}
}

// ExpectedText reports missing text content; context names the construct,
// e.g. `\text` or `\begin`.
func ExpectedText(offset int, context string) *LatexError {
	return &LatexError{Offset: offset, Kind: KindExpectedText, Name: context}
}

// Message renders the human-readable description. It is defined for every
// kind and allocates only here.
func (e *LatexError) Message() string {
	switch e.Kind {
	case KindUnexpectedToken:
		return `Expected token "` + e.Expected.String() + `", but found token "` + e.Got.String() + `".`
	case KindUnclosedGroup:
		return `Expected token "` + e.Expected.String() + `", but not found.`
	case KindUnexpectedClose:
		return `Unexpected closing token: "` + e.Got.String() + `".`
	case KindUnexpectedEOF:
		return "Unexpected end of file."
	case KindMissingParenthesis:
		return `There must be a parenthesis after "` + e.Expected.String() +
			`", but not found. Instead, "` + e.Got.String() + `" was found.`
	case KindUnknownEnvironment:
		return `Unknown environment "` + e.Name + `".`
	case KindUnknownCommand:
		return `Unknown command "\` + e.Name + `".`
	case KindMismatchedEnvironment:
		return `Expected "\end{` + e.Name + `}", but got "\end{` + e.GotName + `}".`
	case KindCannotBeUsedHere:
		return `Got "` + e.Got.String() + `", which may only appear ` + e.Place.String() + "."
	case KindExpectedText:
		return "Expected text in " + e.Name + "."
	}
	return "Unknown error " + e.Kind.String() + "."
}

// Error implements error as "<offset>: <message>".
func (e *LatexError) Error() string {
	return strconv.Itoa(e.Offset) + ": " + e.Message()
}
