/*
Lrforge builds an LR(0)/SLR(1) parser from a user-supplied context-free
grammar and uses it to recognize input sentences, printing a step-by-step
shift-reduce trace for each.

It reads a grammar from a file (or stdin if none given), augments it,
constructs the canonical collection of item sets, determines whether the
grammar is LR(0) or SLR(1), and either builds the corresponding table or
reports the conflicts that make the grammar unparseable by either regime.
Once a table exists, it reads sentences one per line from a file, from
stdin, or from an interactive readline session, and prints a trace and an
accept/reject verdict for each.

Usage:

	lrforge [flags]

The flags are:

	-g, --grammar FILE
		Read the grammar from FILE instead of stdin.

	-s, --sentences FILE
		Read sentences to recognize from FILE instead of stdin/readline.

	-i, --interactive
		Read sentences through an interactive readline session. Without
		this flag (and without -s), sentences are read line by line from
		stdin with no line editing, whether or not stdin is a tty.

	-c, --config FILE
		Load default flag values from a TOML config file. Defaults to
		"lrforge.toml" in the current working directory.

	-v, --verbose
		Print the grammar summary, the FOLLOW sets (only when the grammar
		needed SLR(1) analysis, since an LR(0) grammar never computes them),
		the regime, and the full ACTION/GOTO table before recognizing any
		sentences.

	-a, --allow-ambiguous
		If the grammar is neither LR(0) nor SLR(1), build a table anyway by
		resolving every shift/reduce conflict in favor of shift and every
		reduce/reduce conflict in favor of the lowest-numbered production,
		instead of aborting with an error.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/halvard/lrforge/internal/config"
	"github.com/halvard/lrforge/internal/frontend"
	"github.com/halvard/lrforge/internal/grammar"
	"github.com/halvard/lrforge/internal/lrtable"
	"github.com/halvard/lrforge/internal/prettyprint"
	"github.com/halvard/lrforge/internal/recognizer"
	"github.com/halvard/lrforge/internal/repl"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates every sentence was recognized (or none were
	// supplied and the table built cleanly).
	ExitSuccess = iota

	// ExitGrammarError indicates the grammar failed to ingest or failed to
	// produce a conflict-free LR(0)/SLR(1) table. It is also returned when
	// the config file, grammar file, or sentence input cannot be read.
	ExitGrammarError

	// ExitRejected indicates at least one input sentence was rejected.
	ExitRejected
)

var (
	returnCode      int     = ExitSuccess
	grammarFile     *string = pflag.StringP("grammar", "g", "", "Read the grammar from this file instead of stdin")
	sentenceFile    *string = pflag.StringP("sentences", "s", "", "Read sentences to recognize from this file instead of stdin/readline")
	forceInteract   *bool   = pflag.BoolP("interactive", "i", false, "Force an interactive readline session for sentence input")
	configFile      *string = pflag.StringP("config", "c", "lrforge.toml", "TOML file of default flag values")
	verbose         *bool   = pflag.BoolP("verbose", "v", false, "Print grammar summary, FOLLOW sets, and the ACTION/GOTO table before recognizing")
	allowAmbiguous  *bool   = pflag.BoolP("allow-ambiguous", "a", false, "Resolve shift/reduce and reduce/reduce conflicts instead of aborting")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	cfg, cfgErr := config.Load(*configFile)
	if cfgErr != nil {
		fmt.Fprintf(os.Stderr, "ERROR: loading config: %s\n", cfgErr.Error())
		returnCode = ExitGrammarError
		return
	}
	applyConfigDefaults(cfg)

	g, result, err := buildFromGrammarSource(*grammarFile, *allowAmbiguous)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitGrammarError
		return
	}

	if *verbose {
		fmt.Print(prettyprint.Grammar(g))
		if result.Follow != nil {
			fmt.Print(prettyprint.Follow(g, result.Follow))
		}
		fmt.Printf("regime: %s\n", result.Table.Regime)
		if result.Table.Resolved {
			fmt.Println("conflicts were force-resolved (shift over reduce, lowest production over other reduces)")
		}
		fmt.Print(prettyprint.Table(g, result.Collection, result.Table))
	}

	anyRejected, err := recognizeAll(g, result, *sentenceFile, *forceInteract)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitGrammarError
		return
	}
	if anyRejected {
		returnCode = ExitRejected
	}
}

func applyConfigDefaults(cfg config.Config) {
	if *grammarFile == "" && cfg.GrammarFile != "" {
		*grammarFile = cfg.GrammarFile
	}
	if *sentenceFile == "" && cfg.SentenceFile != "" {
		*sentenceFile = cfg.SentenceFile
	}
	if cfg.TraceVerbose {
		*verbose = true
	}
	if cfg.AllowAmbiguous {
		*allowAmbiguous = true
	}
}

func buildFromGrammarSource(path string, allowAmbiguous bool) (grammar.Grammar, lrtable.Result, error) {
	var src io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return grammar.Grammar{}, lrtable.Result{}, err
		}
		defer f.Close()
		src = f
	}

	lines, err := frontend.ReadGrammarLines(src)
	if err != nil {
		return grammar.Grammar{}, lrtable.Result{}, err
	}

	g, err := grammar.Ingest(lines)
	if err != nil {
		return grammar.Grammar{}, lrtable.Result{}, err
	}

	result, err := lrtable.Build(g, allowAmbiguous)
	if err != nil {
		return grammar.Grammar{}, lrtable.Result{}, err
	}

	return g, result, nil
}

func recognizeAll(g grammar.Grammar, result lrtable.Result, sentenceFile string, forceInteractive bool) (bool, error) {
	var reader repl.Reader
	var err error

	switch {
	case sentenceFile != "":
		f, openErr := os.Open(sentenceFile)
		if openErr != nil {
			return false, openErr
		}
		defer f.Close()
		reader = repl.NewDirectReader(f)
	case forceInteractive:
		reader, err = repl.NewInteractiveReader()
		if err != nil {
			return false, err
		}
	default:
		reader = repl.NewDirectReader(os.Stdin)
	}
	defer reader.Close()

	anyRejected := false
	err = repl.Session(reader, func(sentence string) error {
		tokens := frontend.Tokenize(sentence)
		trace := recognizer.Run(g, result, tokens)
		fmt.Print(prettyprint.Trace(trace))
		if trace.Outcome == recognizer.Rejected {
			anyRejected = true
		}
		return nil
	})
	return anyRejected, err
}
