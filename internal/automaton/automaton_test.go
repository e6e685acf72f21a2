package automaton

import (
	"testing"

	"github.com/halvard/lrforge/internal/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCollection_ArithmeticHasTwelveStates(t *testing.T) {
	g, err := grammar.Ingest([]string{
		"E -> E + T | T",
		"T -> T * F | F",
		"F -> ( E ) | id",
	})
	require.NoError(t, err)

	col := BuildCollection(g)
	assert.Len(t, col.States, 12)
	assert.Contains(t, col.States[0].Items(), Item{ProductionIndex: 0, DotPosition: 0})
}

func TestBuildCollection_SingleProductionGrammarHasFourStates(t *testing.T) {
	g, err := grammar.Ingest([]string{"S -> a"})
	require.NoError(t, err)

	col := BuildCollection(g)
	assert.Len(t, col.States, 4)
}

func TestClosure_IdempotentOnAlreadyClosedSet(t *testing.T) {
	g, err := grammar.Ingest([]string{
		"E -> E + T | T",
		"T -> T * F | F",
		"F -> ( E ) | id",
	})
	require.NoError(t, err)

	col := BuildCollection(g)
	for i, state := range col.States {
		for _, sym := range SymbolsAfterDot(g, state) {
			target := Goto(g, state, sym)
			again := Closure(g, target.Items())
			assert.Truef(t, target.Equal(again), "state %d: closure(goto(s,%s)) not idempotent", i, sym)
		}
	}
}

func TestBuildCollection_EpsilonProductionReducibleAtDotZero(t *testing.T) {
	g, err := grammar.Ingest([]string{
		"S -> A b",
		"A -> a | ε",
	})
	require.NoError(t, err)

	col := BuildCollection(g)
	found := false
	for _, state := range col.States {
		for _, it := range state.Items() {
			p := g.Production(it.ProductionIndex)
			if p.IsEpsilon() && it.DotPosition == 0 && it.AtEnd(g) {
				found = true
			}
		}
	}
	assert.True(t, found, "expected an epsilon item that is simultaneously at dot 0 and reducible")
}
