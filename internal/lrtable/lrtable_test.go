package lrtable

import (
	"testing"

	"github.com/halvard/lrforge/internal/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_ArithmeticIsSLR1NotLR0(t *testing.T) {
	g, err := grammar.Ingest([]string{
		"E -> E + T | T",
		"T -> T * F | F",
		"F -> ( E ) | id",
	})
	require.NoError(t, err)

	result, err := Build(g, false)
	require.NoError(t, err)
	assert.Equal(t, RegimeSLR1, result.Table.Regime)
	assert.Len(t, result.Collection.States, 12)
}

func TestBuild_PureLR0Grammar(t *testing.T) {
	g, err := grammar.Ingest([]string{"S -> a S b | a b"})
	require.NoError(t, err)

	result, err := Build(g, false)
	require.NoError(t, err)
	assert.Equal(t, RegimeLR0, result.Table.Regime)
}

func TestBuild_NonSLR1GrammarRejected(t *testing.T) {
	g, err := grammar.Ingest([]string{
		"S -> i S e S | i S | a",
	})
	require.NoError(t, err)

	_, err = Build(g, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neither LR(0) nor SLR(1)")
}

func TestBuild_AllowAmbiguousResolvesShiftReduceInFavorOfShift(t *testing.T) {
	g, err := grammar.Ingest([]string{
		"S -> i S e S | i S | a",
	})
	require.NoError(t, err)

	result, err := Build(g, true)
	require.NoError(t, err)
	assert.Equal(t, RegimeSLR1, result.Table.Regime)
	assert.True(t, result.Table.Resolved)

	foundConflictCell := false
	for stateIdx, state := range result.Collection.States {
		for _, it := range state.Items() {
			if it.AtEnd(g) {
				continue
			}
			if sym, ok := it.SymbolAfterDot(g); ok && sym == grammar.Symbol("e") {
				entry, ok := result.Table.Action[ActionKey{State: stateIdx, Terminal: "e"}]
				if ok && entry.Kind == ActionShift {
					foundConflictCell = true
				}
			}
		}
	}
	assert.True(t, foundConflictCell, "expected the dangling-else shift/reduce conflict on 'e' to resolve to shift")
}

func TestBuild_AcceptActionOnAugmentedItem(t *testing.T) {
	g, err := grammar.Ingest([]string{"S -> a"})
	require.NoError(t, err)

	result, err := Build(g, false)
	require.NoError(t, err)

	accepts := 0
	for key, entry := range result.Table.Action {
		if entry.Kind == ActionAccept {
			accepts++
			assert.Equal(t, grammar.EndOfInput, key.Terminal)
		}
	}
	assert.Equal(t, 1, accepts, "expected exactly one accept action")
}
