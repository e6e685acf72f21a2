// Package prettyprint renders grammar summaries, item sets, FOLLOW sets, and
// the combined ACTION/GOTO table as human-readable text.
package prettyprint

import (
	"fmt"
	"strings"

	"github.com/halvard/lrforge/internal/grammar"
)

// Grammar renders the post-ingestion summary: start symbol, augmented start
// symbol, nonterminal set, and every production numbered.
func Grammar(g grammar.Grammar) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "start symbol:           %s\n", g.Start())
	fmt.Fprintf(&sb, "augmented start symbol: %s\n", g.AugmentedStart())
	fmt.Fprintf(&sb, "nonterminals:           %s\n", joinSymbols(g.NonTerminals()))
	fmt.Fprintf(&sb, "terminals:              %s\n", joinSymbols(g.Terminals()))
	sb.WriteString("productions:\n")
	for i, p := range g.Productions() {
		fmt.Fprintf(&sb, "  %d: %s\n", i, p.String())
	}
	return sb.String()
}

// Follow renders FOLLOW(A) for every nonterminal A, one per line, in
// ascending symbol order.
func Follow(g grammar.Grammar, follow grammar.FollowSets) string {
	var sb strings.Builder
	for _, nt := range g.NonTerminals() {
		fmt.Fprintf(&sb, "FOLLOW(%s) = %s\n", nt, follow[nt].String())
	}
	return sb.String()
}

func joinSymbols(syms []grammar.Symbol) string {
	parts := make([]string, len(syms))
	for i, s := range syms {
		parts[i] = string(s)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
