package automaton

import "github.com/halvard/lrforge/internal/grammar"

// Closure computes CLOSURE(I): repeatedly add (q, 0) for every production q
// whose left side is the nonterminal immediately after the dot of some item
// already in the working set, until a pass adds nothing.
func Closure(g grammar.Grammar, seed []Item) ItemSet {
	inSet := make(map[Item]bool)
	var working []Item
	for _, it := range seed {
		if !inSet[it] {
			inSet[it] = true
			working = append(working, it)
		}
	}

	for i := 0; i < len(working); i++ {
		it := working[i]
		sym, ok := it.SymbolAfterDot(g)
		if !ok || !g.IsNonTerminal(sym) {
			continue
		}
		for _, prodIdx := range g.ProductionsOf(sym) {
			cand := Item{ProductionIndex: prodIdx, DotPosition: 0}
			if !inSet[cand] {
				inSet[cand] = true
				working = append(working, cand)
			}
		}
	}

	return NewItemSet(working)
}

// Goto computes GOTO(I, X): advance the dot past X in every item of I where
// X is the symbol after the dot, then close the result. Returns the empty
// ItemSet if no item of I has X after its dot.
func Goto(g grammar.Grammar, set ItemSet, x grammar.Symbol) ItemSet {
	var advanced []Item
	for _, it := range set.Items() {
		sym, ok := it.SymbolAfterDot(g)
		if ok && sym == x {
			advanced = append(advanced, it.Advance())
		}
	}
	if len(advanced) == 0 {
		return ItemSet{}
	}
	return Closure(g, advanced)
}

// SymbolsAfterDot returns the set of distinct symbols (terminal or
// nonterminal) appearing immediately after the dot in some item of set, in
// first-seen order across the set's canonical item ordering.
func SymbolsAfterDot(g grammar.Grammar, set ItemSet) []grammar.Symbol {
	seen := make(map[grammar.Symbol]bool)
	var syms []grammar.Symbol
	for _, it := range set.Items() {
		sym, ok := it.SymbolAfterDot(g)
		if !ok {
			continue
		}
		if !seen[sym] {
			seen[sym] = true
			syms = append(syms, sym)
		}
	}
	return syms
}
