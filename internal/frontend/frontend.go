// Package frontend reads the textual grammar and input-sentence formats
// described in the external interfaces: a line-oriented "L -> α | β" grammar
// source, and single-line whitespace-separated input sentences.
package frontend

import (
	"bufio"
	"io"
	"strings"

	"github.com/halvard/lrforge/internal/grammar"
)

// ReadGrammarLines reads non-empty lines from r until an empty line or EOF,
// returning them for grammar.Ingest. It performs no parsing of its own; it
// only collects the raw textual productions the way a blank-line-terminated
// stdin session would.
func ReadGrammarLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Tokenize splits a single input sentence on whitespace into grammar symbols.
// The caller's recognizer appends '#' itself; Tokenize never does.
func Tokenize(sentence string) []grammar.Symbol {
	fields := strings.Fields(sentence)
	syms := make([]grammar.Symbol, len(fields))
	for i, f := range fields {
		syms[i] = grammar.Symbol(f)
	}
	return syms
}
