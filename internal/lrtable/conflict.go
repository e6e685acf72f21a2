// Package lrtable analyzes the canonical collection for shift-reduce and
// reduce-reduce conflicts under the LR(0) and SLR(1) regimes, then
// synthesizes the ACTION/GOTO table under whichever regime is conflict-free.
package lrtable

import (
	"fmt"

	"github.com/halvard/lrforge/internal/automaton"
	"github.com/halvard/lrforge/internal/grammar"
	"github.com/halvard/lrforge/internal/lrerrors"
)

// AnalyzeLR0 inspects every state of col for LR(0) conflicts: a
// shift-reduce conflict is any state with at least one reducible item and
// at least one shiftable terminal; a reduce-reduce conflict is any state
// with two or more reducible items, unconditionally (never deferred to
// SLR(1) analysis). Returns whether any conflict was found, plus a
// descriptor per conflict for diagnostics.
func AnalyzeLR0(g grammar.Grammar, col automaton.Collection) (bool, []lrerrors.ConflictDescriptor) {
	var descriptors []lrerrors.ConflictDescriptor
	hasConflict := false

	for stateIdx, state := range col.States {
		reducers := automaton.Reducers(g, state)
		shiftSyms := automaton.ShiftSymbols(g, state)

		if len(reducers) > 0 && len(shiftSyms) > 0 {
			hasConflict = true
			for _, r := range reducers {
				descriptors = append(descriptors, lrerrors.ConflictDescriptor{
					State:   stateIdx,
					Kind:    "shift-reduce",
					Item:    r.String(g),
					Symbols: symbolStrings(shiftSyms),
				})
			}
		}

		if len(reducers) >= 2 {
			hasConflict = true
			for i := 0; i < len(reducers); i++ {
				for j := i + 1; j < len(reducers); j++ {
					descriptors = append(descriptors, lrerrors.ConflictDescriptor{
						State: stateIdx,
						Kind:  "reduce-reduce",
						Item:  reducers[i].String(g),
						Other: reducers[j].String(g),
					})
				}
			}
		}
	}

	return hasConflict, descriptors
}

// AnalyzeSLR1 inspects every state of col for SLR(1) conflicts: a
// shift-reduce conflict is a reducer whose left side's FOLLOW set contains a
// terminal also shiftable in the same state; a reduce-reduce conflict is two
// distinct reducers whose FOLLOW sets (restricted to terminals) intersect.
func AnalyzeSLR1(g grammar.Grammar, col automaton.Collection, follow grammar.FollowSets) bool {
	for _, state := range col.States {
		reducers := automaton.Reducers(g, state)
		shiftSyms := automaton.ShiftSymbols(g, state)

		for _, r := range reducers {
			left := g.Production(r.ProductionIndex).Left
			for _, t := range shiftSyms {
				if follow[left].Has(string(t)) {
					return true
				}
			}
		}

		for i := 0; i < len(reducers); i++ {
			leftI := g.Production(reducers[i].ProductionIndex).Left
			for j := i + 1; j < len(reducers); j++ {
				leftJ := g.Production(reducers[j].ProductionIndex).Left
				for _, term := range g.Terminals() {
					if follow[leftI].Has(string(term)) && follow[leftJ].Has(string(term)) {
						return true
					}
				}
			}
		}
	}
	return false
}

func symbolStrings(syms []grammar.Symbol) []string {
	out := make([]string, len(syms))
	for i, s := range syms {
		out[i] = fmt.Sprint(s)
	}
	return out
}
