package grammar

import (
	"strings"

	"github.com/halvard/lrforge/internal/lrerrors"
	"github.com/halvard/lrforge/internal/util"
)

// Grammar is the frozen result of ingesting a user's grammar. Once built it
// is never mutated again; FIRST/FOLLOW, the canonical collection, and the
// ACTION/GOTO table are each derived from it by read-only reference.
type Grammar struct {
	productions  []Production
	terminals    util.StringSet
	nonterminals util.StringSet
	start        Symbol
	augStart     Symbol
}

// Ingest parses a sequence of textual productions of the form
// "L -> a1 a2 | b1 | ε" (one per line, blank lines already stripped by the
// caller) and returns the frozen, augmented Grammar. Production 0 is always
// the augmented production S' -> S.
//
// Ordering of the returned productions: the augmented production first, then
// the user's productions in the order their alternatives were read,
// top-to-bottom, left-to-right within a line.
func Ingest(lines []string) (Grammar, error) {
	type rawAlt struct {
		left  string
		right []string
	}

	var alts []rawAlt
	var origStart string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		arrowIdx := strings.Index(line, "->")
		if arrowIdx == -1 {
			return Grammar{}, &lrerrors.GrammarSyntaxError{Line: line, Reason: "missing '->'"}
		}

		left := strings.TrimSpace(line[:arrowIdx])
		if left == "" {
			return Grammar{}, &lrerrors.GrammarSyntaxError{Line: line, Reason: "empty left-hand side"}
		}

		if origStart == "" {
			origStart = left
		}

		rightPart := strings.TrimSpace(line[arrowIdx+2:])
		alternatives := strings.Split(rightPart, "|")

		for _, alt := range alternatives {
			alt = strings.TrimSpace(alt)
			if alt == "" {
				return Grammar{}, &lrerrors.GrammarSyntaxError{
					Line:   line,
					Reason: "alternative is empty; write 'ε' explicitly for an empty production",
				}
			}

			if alt == string(Epsilon) || strings.EqualFold(alt, "epsilon") {
				alts = append(alts, rawAlt{left: left, right: nil})
				continue
			}

			fields := strings.Fields(alt)
			alts = append(alts, rawAlt{left: left, right: fields})
		}
	}

	if len(alts) == 0 {
		return Grammar{}, &lrerrors.EmptyGrammar{}
	}

	// Pass 1: every symbol that appears on some left-hand side is a
	// nonterminal.
	nonterminals := util.NewStringSet()
	for _, a := range alts {
		nonterminals.Add(a.left)
	}

	// Pass 2: everything else seen in a right-hand side is a terminal.
	terminals := util.NewStringSet()
	for _, a := range alts {
		for _, sym := range a.right {
			if !nonterminals.Has(sym) {
				terminals.Add(sym)
			}
		}
	}

	augStart := uniqueAugmentedName(origStart, nonterminals, terminals)
	nonterminals.Add(augStart)
	terminals.Add(string(EndOfInput))

	productions := make([]Production, 0, len(alts)+1)
	productions = append(productions, Production{
		Left:  Symbol(augStart),
		Right: []Symbol{Symbol(origStart)},
	})
	for _, a := range alts {
		right := make([]Symbol, len(a.right))
		for i, s := range a.right {
			right[i] = Symbol(s)
		}
		productions = append(productions, Production{Left: Symbol(a.left), Right: right})
	}

	return Grammar{
		productions:  productions,
		terminals:    terminals,
		nonterminals: nonterminals,
		start:        Symbol(origStart),
		augStart:     Symbol(augStart),
	}, nil
}

// uniqueAugmentedName appends primes to start until the result collides with
// neither an existing nonterminal nor an existing terminal.
func uniqueAugmentedName(start string, nonterminals, terminals util.StringSet) string {
	candidate := start + "'"
	for nonterminals.Has(candidate) || terminals.Has(candidate) {
		candidate += "'"
	}
	return candidate
}

// Productions returns all productions, augmented production first.
func (g Grammar) Productions() []Production {
	return g.productions
}

// Production returns the production at index i.
func (g Grammar) Production(i int) Production {
	return g.productions[i]
}

// NumProductions returns the number of productions, including the augmented
// production.
func (g Grammar) NumProductions() int {
	return len(g.productions)
}

// ProductionsOf returns the indices of every production whose left side is
// left, in insertion order.
func (g Grammar) ProductionsOf(left Symbol) []int {
	var idxs []int
	for i, p := range g.productions {
		if p.Left == left {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

// Start returns the original (non-augmented) start symbol.
func (g Grammar) Start() Symbol {
	return g.start
}

// AugmentedStart returns the synthesized S' symbol.
func (g Grammar) AugmentedStart() Symbol {
	return g.augStart
}

// IsTerminal reports whether sym is in the grammar's terminal set.
func (g Grammar) IsTerminal(sym Symbol) bool {
	return g.terminals.Has(string(sym))
}

// IsNonTerminal reports whether sym is in the grammar's nonterminal set.
func (g Grammar) IsNonTerminal(sym Symbol) bool {
	return g.nonterminals.Has(string(sym))
}

// Terminals returns the terminal set in ascending lexical order.
func (g Grammar) Terminals() []Symbol {
	return toSymbols(g.terminals.Sorted())
}

// NonTerminals returns the nonterminal set in ascending lexical order.
func (g Grammar) NonTerminals() []Symbol {
	return toSymbols(g.nonterminals.Sorted())
}

func toSymbols(ss []string) []Symbol {
	out := make([]Symbol, len(ss))
	for i, s := range ss {
		out[i] = Symbol(s)
	}
	return out
}
