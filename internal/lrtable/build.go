package lrtable

import (
	"github.com/halvard/lrforge/internal/automaton"
	"github.com/halvard/lrforge/internal/grammar"
	"github.com/halvard/lrforge/internal/lrerrors"
)

// Result bundles everything the Recognizer and pretty-printers need: the
// canonical collection and transition map (GOTO lives inside it, restricted
// to nonterminal keys), the synthesized ACTION table, the regime it was
// built under, and the FOLLOW sets (nil if the grammar turned out to be
// LR(0) and FIRST/FOLLOW was never needed for table construction).
type Result struct {
	Collection automaton.Collection
	Table      Table
	Follow     grammar.FollowSets
}

// Build runs the regime-selection driver described for the Table Builder:
// attempt LR(0) first; if it conflicts, compute FIRST/FOLLOW and attempt
// SLR(1); if that also conflicts and allowAmbiguous is false, return a
// NotParseable error carrying the LR(0) conflict descriptors. If
// allowAmbiguous is true, build under SLR(1) anyway, force-resolving every
// remaining conflict by preferring shift over reduce and the
// lowest-numbered production over any other reducer.
func Build(g grammar.Grammar, allowAmbiguous bool) (Result, error) {
	col := automaton.BuildCollection(g)

	hasConflict, descriptors := AnalyzeLR0(g, col)
	if !hasConflict {
		table := synthesize(g, col, RegimeLR0, nil, false)
		return Result{Collection: col, Table: table}, nil
	}

	first := grammar.ComputeFirst(g)
	follow := grammar.ComputeFollow(g, first)

	if !AnalyzeSLR1(g, col, follow) {
		table := synthesize(g, col, RegimeSLR1, follow, false)
		return Result{Collection: col, Table: table, Follow: follow}, nil
	}

	if allowAmbiguous {
		table := synthesize(g, col, RegimeSLR1, follow, true)
		return Result{Collection: col, Table: table, Follow: follow}, nil
	}

	return Result{}, &lrerrors.NotParseable{Conflicts: descriptors}
}

// synthesize writes the ACTION table for every state of col under regime.
// follow may be nil when regime is RegimeLR0. When resolveConflicts is
// true, a shift action is always written even over an existing reduce
// (shift wins), and a reduce action is only written into an empty cell (the
// lowest-numbered reducible production wins, since items are visited in
// ascending production order).
func synthesize(g grammar.Grammar, col automaton.Collection, regime Regime, follow grammar.FollowSets, resolveConflicts bool) Table {
	action := make(map[ActionKey]ActionEntry)

	for stateIdx, state := range col.States {
		for _, it := range state.Items() {
			sym, ok := it.SymbolAfterDot(g)
			if ok && g.IsTerminal(sym) {
				if target, exists := col.Goto(stateIdx, sym); exists {
					action[ActionKey{State: stateIdx, Terminal: sym}] = ActionEntry{
						Kind:   ActionShift,
						Target: target,
					}
				}
				continue
			}

			if !it.AtEnd(g) {
				continue
			}

			p := g.Production(it.ProductionIndex)
			if p.Left == g.AugmentedStart() && len(p.Right) == 1 && p.Right[0] == g.Start() {
				action[ActionKey{State: stateIdx, Terminal: grammar.EndOfInput}] = ActionEntry{Kind: ActionAccept}
				continue
			}

			reduceOn := reduceTerminals(g, regime, follow, p.Left)
			for _, a := range reduceOn {
				key := ActionKey{State: stateIdx, Terminal: a}
				if resolveConflicts {
					if _, occupied := action[key]; occupied {
						continue
					}
				}
				action[key] = ActionEntry{
					Kind:       ActionReduce,
					Production: it.ProductionIndex,
				}
			}
		}
	}

	return Table{Action: action, Regime: regime, Resolved: resolveConflicts}
}

// reduceTerminals returns the set of terminals (plus #) on which a reducer
// with left side left should write a REDUCE action: every terminal under
// LR(0), or FOLLOW(left) intersected with the terminal set under SLR(1).
func reduceTerminals(g grammar.Grammar, regime Regime, follow grammar.FollowSets, left grammar.Symbol) []grammar.Symbol {
	if regime == RegimeLR0 {
		return g.Terminals()
	}

	var out []grammar.Symbol
	for _, t := range g.Terminals() {
		if follow[left].Has(string(t)) {
			out = append(out, t)
		}
	}
	return out
}
