/*
Command earleydemo is an interactive sandbox for the recognizer: it compiles
a small built-in arithmetic grammar with precedence-constrained sub-
expressions and reads lines from a REPL, reporting ACCEPT or REJECT for
each. It exists to let a human drive the recognizer the way
_examples/npillmayer-gorgo/terex/terexlang/trepl drives a parser: a thin
loop around readline, not a product.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	flag "github.com/spf13/pflag"

	"github.com/npillmayer/schuko/tracing"

	"github.com/dotted-rule/earleyprec/grammar"
	"github.com/dotted-rule/earleyprec/recognizer/earley"
	"github.com/dotted-rule/earleyprec/scanner"
)

func tracer() tracing.Trace {
	return tracing.Select("earleyprec.demo")
}

// arithmeticGrammar builds:
//
//	expr[20] -> add
//	expr[10] -> mul
//	expr[0]  -> num
//	add[20] -> expr<20 "+" expr<=20
//	mul[10] -> expr<=10 "*" expr<10
//	num[0]  -> digit
//
// The precedence annotations are what make "1+2*3" parse as addition of a
// literal and a product rather than admitting the (also scannable, but
// lower-precedence) reading where '+' binds inside a looser '*'. mul's left
// and right relations are mirrored from add's (<= left, < right instead of
// add's < left, <= right), so '*' groups to the left and '+' groups to the
// right.
func arithmeticGrammar() (*grammar.Grammar, error) {
	b := grammar.NewBuilder("arith")
	b.Define("expr", 20, grammar.Ref("add"))
	b.Define("expr", 10, grammar.Ref("mul"))
	b.Define("expr", 0, grammar.Ref("num"))
	b.Define("add", 20, grammar.Seq(grammar.RefLT("expr", 20), grammar.Term('+'), grammar.RefLE("expr", 20)))
	b.Define("mul", 10, grammar.Seq(grammar.RefLE("expr", 10), grammar.Term('*'), grammar.RefLT("expr", 10)))
	for _, d := range "0123456789" {
		b.Define("num", 0, grammar.Term(d))
	}
	return b.Compile()
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{Text: "  info", Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack)}
	pterm.Error.Prefix = pterm.Prefix{Text: "  error", Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack)}
}

func main() {
	initDisplay()
	tracer().SetTraceLevel(tracing.LevelInfo)

	tlevel := flag.String("trace", "Info", "trace level [Debug|Info|Error]")
	keepSpace := flag.Bool("keep-space", false, "treat whitespace as a significant terminal instead of skipping it")
	flag.Parse()
	switch strings.ToLower(*tlevel) {
	case "debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().SetTraceLevel(tracing.LevelInfo)
	}

	g, err := arithmeticGrammar()
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	pterm.Info.Println("Welcome to earleydemo. Grammar is expr -> add | mul | num, '+' at 20, '*' at 10")

	rl, err := readline.New("earley> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer rl.Close()

	tracer().Infof("Quit with <ctrl>D")
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on ctrl-D
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		accept, err := run(g, line, *keepSpace)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if accept {
			pterm.Success.Printfln("%q: ACCEPT", line)
		} else {
			pterm.Warning.Printfln("%q: REJECT", line)
		}
	}
}

// run feeds line's symbols through a fresh recognizer over g and reports
// whether "expr" was fully recognized over the whole line.
func run(g *grammar.Grammar, line string, keepSpace bool) (bool, error) {
	var opts []scanner.Option
	if keepSpace {
		opts = append(opts, scanner.SkipSpace(false))
	}
	symbols := scanner.FromString(line, opts...)
	r, err := earley.NewRecognizer("expr", g, nil)
	if err != nil {
		return false, fmt.Errorf("earleydemo: %w", err)
	}
	r.Feed(symbols)
	return r.Accepted(), nil
}
