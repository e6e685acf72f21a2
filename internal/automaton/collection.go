package automaton

import "github.com/halvard/lrforge/internal/grammar"

// TransitionKey is a (state, symbol) pair used to index the Collection's
// transition map.
type TransitionKey struct {
	State  int
	Symbol grammar.Symbol
}

// Collection is the canonical collection of LR(0) item sets plus the
// transition map discovered while building it. States are numbered in FIFO
// discovery order starting at 0; state 0 is always CLOSURE({(0, 0)}).
type Collection struct {
	States      []ItemSet
	Transitions map[TransitionKey]int
}

// StateOf returns the index of the state structurally equal to set, and
// whether one was found. Intended for tests and diagnostics; construction
// itself uses an internal key-based index for speed.
func (c Collection) StateOf(set ItemSet) (int, bool) {
	for i, s := range c.States {
		if s.Equal(set) {
			return i, true
		}
	}
	return -1, false
}

// Goto returns the target state of the transition out of state on symbol,
// and whether one exists.
func (c Collection) Goto(state int, symbol grammar.Symbol) (int, bool) {
	t, ok := c.Transitions[TransitionKey{State: state, Symbol: symbol}]
	return t, ok
}

// BuildCollection runs the FIFO worklist construction described for the
// Item-Set Builder: start from CLOSURE({(0, 0)}), and for each discovered
// state in turn, compute GOTO on every symbol seen after a dot, interning
// newly-discovered item sets by structural equality via a content key.
func BuildCollection(g grammar.Grammar) Collection {
	initial := Closure(g, []Item{{ProductionIndex: 0, DotPosition: 0}})

	col := Collection{
		Transitions: make(map[TransitionKey]int),
	}
	indexByKey := make(map[string]int)

	col.States = append(col.States, initial)
	indexByKey[initial.Key()] = 0

	worklist := []int{0}
	for len(worklist) > 0 {
		state := worklist[0]
		worklist = worklist[1:]

		current := col.States[state]
		for _, sym := range SymbolsAfterDot(g, current) {
			target := Goto(g, current, sym)
			if target.Len() == 0 {
				continue
			}

			targetIdx, exists := indexByKey[target.Key()]
			if !exists {
				targetIdx = len(col.States)
				col.States = append(col.States, target)
				indexByKey[target.Key()] = targetIdx
				worklist = append(worklist, targetIdx)
			}

			col.Transitions[TransitionKey{State: state, Symbol: sym}] = targetIdx
		}
	}

	return col
}

// Reducers returns the items of set whose dot is at the end of their
// production (the set's reducible items).
func Reducers(g grammar.Grammar, set ItemSet) []Item {
	var out []Item
	for _, it := range set.Items() {
		if it.AtEnd(g) {
			out = append(out, it)
		}
	}
	return out
}

// ShiftSymbols returns the terminals appearing immediately after the dot in
// some item of set.
func ShiftSymbols(g grammar.Grammar, set ItemSet) []grammar.Symbol {
	var out []grammar.Symbol
	for _, sym := range SymbolsAfterDot(g, set) {
		if g.IsTerminal(sym) {
			out = append(out, sym)
		}
	}
	return out
}
