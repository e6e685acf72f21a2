package grammar

import "github.com/halvard/lrforge/internal/util"

// FirstSets maps every terminal and nonterminal to its FIRST set. Terminals
// map to a singleton containing themselves; this lets callers look up
// FIRST(X) uniformly for any symbol X without a type switch.
type FirstSets map[Symbol]util.StringSet

// FollowSets maps every nonterminal to its FOLLOW set.
type FollowSets map[Symbol]util.StringSet

// ComputeFirst builds FIRST(X) for every symbol in the grammar by fixed-point
// iteration over the productions: start every terminal at {itself} and every
// nonterminal at {}, then repeatedly apply the three FIRST rules until no
// set grows.
func ComputeFirst(g Grammar) FirstSets {
	first := make(FirstSets)
	for _, t := range g.Terminals() {
		first[t] = util.NewStringSet(string(t))
	}
	for _, nt := range g.NonTerminals() {
		first[nt] = util.NewStringSet()
	}

	changed := true
	for changed {
		changed = false
		for _, p := range g.productions {
			if p.IsEpsilon() {
				if !first[p.Left].Has(string(Epsilon)) {
					first[p.Left].Add(string(Epsilon))
					changed = true
				}
				continue
			}

			allNullableSoFar := true
			for _, sym := range p.Right {
				symFirst := first[sym]
				for _, f := range symFirst.Sorted() {
					if f == string(Epsilon) {
						continue
					}
					if !first[p.Left].Has(f) {
						first[p.Left].Add(f)
						changed = true
					}
				}
				if !symFirst.Has(string(Epsilon)) {
					allNullableSoFar = false
					break
				}
			}
			if allNullableSoFar && !first[p.Left].Has(string(Epsilon)) {
				first[p.Left].Add(string(Epsilon))
				changed = true
			}
		}
	}

	return first
}

// FirstOfSequence computes FIRST of a string of symbols: the union of the
// FIRST sets of each symbol up to and including the first non-nullable one,
// with ε included only if every symbol in seq is nullable (or seq is empty).
func FirstOfSequence(first FirstSets, seq []Symbol) util.StringSet {
	result := util.NewStringSet()
	allNullable := true
	for _, sym := range seq {
		symFirst := first[sym]
		for _, f := range symFirst.Sorted() {
			if f != string(Epsilon) {
				result.Add(f)
			}
		}
		if !symFirst.Has(string(Epsilon)) {
			allNullable = false
			break
		}
	}
	if allNullable {
		result.Add(string(Epsilon))
	}
	return result
}

// ComputeFollow builds FOLLOW(A) for every nonterminal A by fixed-point
// iteration: seed FOLLOW(original start) with '#', then repeatedly apply the
// two FOLLOW rules (the sequence-after-A rule and the trailing/nullable-tail
// propagation rule) until no set grows. The augmented start symbol is given
// no seed beyond whatever the fixed point assigns it, since nothing ever
// appears after it.
func ComputeFollow(g Grammar, first FirstSets) FollowSets {
	follow := make(FollowSets)
	for _, nt := range g.NonTerminals() {
		follow[nt] = util.NewStringSet()
	}
	follow[g.Start()].Add(string(EndOfInput))

	changed := true
	for changed {
		changed = false
		for _, p := range g.productions {
			for i, sym := range p.Right {
				if !g.IsNonTerminal(sym) {
					continue
				}

				rest := p.Right[i+1:]
				restFirst := FirstOfSequence(first, rest)

				for _, f := range restFirst.Sorted() {
					if f == string(Epsilon) {
						continue
					}
					if !follow[sym].Has(f) {
						follow[sym].Add(f)
						changed = true
					}
				}

				if restFirst.Has(string(Epsilon)) {
					for _, f := range follow[p.Left].Sorted() {
						if !follow[sym].Has(f) {
							follow[sym].Add(f)
							changed = true
						}
					}
				}
			}
		}
	}

	return follow
}
