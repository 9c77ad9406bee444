package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/peterh/liner"

	"github.com/agenthands/latex2mml"
	"github.com/agenthands/latex2mml/pkg/compiler/diag"
	"github.com/agenthands/latex2mml/pkg/compiler/lexer"
)

const historyFile = ".latexmml_history"

var (
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	caretStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	offsetStyle = lipgloss.NewStyle().Faint(true)
	kindStyles  = map[lexer.Kind]lipgloss.Style{
		lexer.KindLetter:         lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		lexer.KindNormalLetter:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		lexer.KindNumber:         lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		lexer.KindOperator:       lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		lexer.KindRelation:       lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		lexer.KindBinaryOp:       lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		lexer.KindBigOp:          lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		lexer.KindParen:          lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		lexer.KindUnknownCommand: errorStyle,
	}
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var code int
	switch os.Args[1] {
	case "convert":
		code = runConvert(os.Args[2:])
	case "tokens":
		code = runTokens(os.Args[2:])
	case "repl":
		code = runRepl(os.Args[2:])
	default:
		fmt.Println("Unknown command:", os.Args[1])
		usage()
		code = 1
	}
	os.Exit(code)
}

func usage() {
	fmt.Println("Usage: latexmml [convert|tokens|repl] ...")
	fmt.Println("  convert [-display] [-pretty] [-xmlns] [-trace] <expr|->")
	fmt.Println("  tokens <expr|->")
	fmt.Println("  repl [-display]")
}

// optionFlags registers the conversion flags shared by convert and repl.
func optionFlags(fs *flag.FlagSet) *latex2mml.Options {
	opts := latex2mml.DefaultOptions()
	fs.BoolVar(&opts.Display, "display", opts.Display, "Render in display (block) mode")
	fs.BoolVar(&opts.Pretty, "pretty", opts.Pretty, "Indent the generated MathML")
	fs.BoolVar(&opts.XMLNS, "xmlns", opts.XMLNS, "Emit the MathML namespace attribute")
	return &opts
}

func enableTracing() {
	for _, t := range []tracing.Trace{gtrace.CoreTracer, gtrace.SyntaxTracer} {
		if t != nil {
			t.SetTraceLevel(tracing.LevelDebug)
		}
	}
}

// readSource returns the expression argument, or stdin for "-".
func readSource(fs *flag.FlagSet) (string, error) {
	if fs.NArg() != 1 {
		return "", errors.New("expected exactly one expression")
	}
	if fs.Arg(0) != "-" {
		return fs.Arg(0), nil
	}
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(src), "\r\n"), nil
}

func runConvert(args []string) int {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	opts := optionFlags(fs)
	trace := fs.Bool("trace", false, "Enable debug tracing")
	fs.Parse(args)

	if *trace {
		enableTracing()
	}
	src, err := readSource(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		return 1
	}
	out, err := latex2mml.Convert(src, *opts)
	if err != nil {
		printError(os.Stderr, src, err)
		return 1
	}
	fmt.Println(out)
	return 0
}

func runTokens(args []string) int {
	fs := flag.NewFlagSet("tokens", flag.ExitOnError)
	fs.Parse(args)

	src, err := readSource(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		return 1
	}
	l := lexer.New(src)
	for {
		tok := l.Next(false)
		fmt.Println(formatToken(tok))
		if tok.Kind == lexer.KindEOF {
			return 0
		}
		if tok.Kind == lexer.KindText || tok.Kind == lexer.KindOperatorName {
			if next := l.Next(false); next.Kind == lexer.KindGroupBegin {
				fmt.Println(formatToken(next))
				if text, ok := l.ReadTextContent(); ok {
					fmt.Printf("%s  text %q\n", offsetStyle.Render(fmt.Sprintf("%5d", next.Offset+1)), text)
				}
			} else {
				fmt.Println(formatToken(next))
			}
		}
	}
}

func formatToken(tok lexer.Token) string {
	text := tok.String()
	if style, ok := kindStyles[tok.Kind]; ok {
		text = style.Render(text)
	}
	line := fmt.Sprintf("%s  %-16s %s", offsetStyle.Render(fmt.Sprintf("%5d", tok.Offset)), kindName(tok.Kind), text)
	if op, ok := tok.Trailing(); ok {
		line += fmt.Sprintf("  (trailing %q)", op.Rune())
	}
	return line
}

var kindNames = map[lexer.Kind]string{
	lexer.KindEOF:              "eof",
	lexer.KindLetter:           "letter",
	lexer.KindNormalLetter:     "normal-letter",
	lexer.KindNumber:           "number",
	lexer.KindOperator:         "operator",
	lexer.KindRelation:         "relation",
	lexer.KindBinaryOp:         "binary-op",
	lexer.KindBigOp:            "big-op",
	lexer.KindParen:            "paren",
	lexer.KindSpace:            "space",
	lexer.KindFunction:         "function",
	lexer.KindText:             "text",
	lexer.KindOperatorName:     "operator-name",
	lexer.KindUnknownCommand:   "unknown-command",
	lexer.KindNonBreakingSpace: "nbsp",
}

func kindName(k lexer.Kind) string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "punct"
}

// printError writes the message and a caret under the offending character.
func printError(w io.Writer, src string, err error) {
	var le *diag.LatexError
	if !errors.As(err, &le) || le.Offset > len(src) {
		fmt.Fprintln(w, errorStyle.Render(err.Error()))
		return
	}
	fmt.Fprintln(w, errorStyle.Render("error: ")+le.Message())

	start := strings.LastIndexByte(src[:le.Offset], '\n') + 1
	end := strings.IndexByte(src[le.Offset:], '\n')
	if end < 0 {
		end = len(src)
	} else {
		end += le.Offset
	}
	col := utf8.RuneCountInString(src[start:le.Offset])
	fmt.Fprintln(w, "  "+src[start:end])
	fmt.Fprintln(w, "  "+strings.Repeat(" ", col)+caretStyle.Render("^"))
}

func runRepl(args []string) int {
	fs := flag.NewFlagSet("repl", flag.ExitOnError)
	opts := optionFlags(fs)
	fs.Parse(args)

	fmt.Println("latexmml: type a LaTeX expression, :quit to exit.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt("tex> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return 0
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
			return 1
		}

		src := strings.TrimSpace(line)
		switch src {
		case "":
			continue
		case ":quit", ":q":
			return 0
		case ":display":
			opts.Display = !opts.Display
			fmt.Printf("display mode: %v\n", opts.Display)
			continue
		}

		ln.AppendHistory(line)
		out, err := latex2mml.Convert(src, *opts)
		if err != nil {
			printError(os.Stderr, src, err)
			continue
		}
		fmt.Println(out)
	}
}
