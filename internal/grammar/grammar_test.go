package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngest_SimpleArithmetic(t *testing.T) {
	lines := []string{
		"E -> E + T | T",
		"T -> T * F | F",
		"F -> ( E ) | id",
	}

	g, err := Ingest(lines)
	require.NoError(t, err)

	assert.Equal(t, Symbol("E"), g.Start())
	assert.Equal(t, Symbol("E'"), g.AugmentedStart())
	assert.Equal(t, Production{Left: "E'", Right: []Symbol{"E"}}, g.Production(0))
	assert.Equal(t, 7, g.NumProductions())

	for _, nt := range []Symbol{"E", "T", "F", "E'"} {
		assert.Truef(t, g.IsNonTerminal(nt), "expected %s to be a nonterminal", nt)
	}
	for _, term := range []Symbol{"+", "*", "(", ")", "id", "#"} {
		assert.Truef(t, g.IsTerminal(term), "expected %s to be a terminal", term)
	}
}

func TestIngest_AugmentedNameCollision(t *testing.T) {
	lines := []string{
		"S -> S'",
		"S' -> a",
	}

	g, err := Ingest(lines)
	require.NoError(t, err)
	assert.Equal(t, Symbol("S''"), g.AugmentedStart())
}

func TestIngest_EpsilonProduction(t *testing.T) {
	lines := []string{
		"S -> A b",
		"A -> a | ε",
	}

	g, err := Ingest(lines)
	require.NoError(t, err)

	found := false
	for _, p := range g.Productions() {
		if p.Left == "A" && p.IsEpsilon() {
			found = true
		}
	}
	assert.True(t, found, "expected an ε-production for A")
}

func TestIngest_MissingArrow(t *testing.T) {
	_, err := Ingest([]string{"S a b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing '->'")
}

func TestIngest_EmptyGrammar(t *testing.T) {
	_, err := Ingest([]string{"", "   "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestComputeFirstAndFollow(t *testing.T) {
	g, err := Ingest([]string{
		"E -> E + T | T",
		"T -> T * F | F",
		"F -> ( E ) | id",
	})
	require.NoError(t, err)

	first := ComputeFirst(g)
	assert.True(t, first["F"].Has("("))
	assert.True(t, first["F"].Has("id"))
	assert.True(t, first["T"].Has("("))
	assert.True(t, first["E"].Has("id"))

	follow := ComputeFollow(g, first)
	assert.True(t, follow["E"].Has("+"))
	assert.True(t, follow["E"].Has(")"))
	assert.True(t, follow["E"].Has("#"))
	assert.True(t, follow["T"].Has("*"))
	assert.True(t, follow["F"].Has("+"))
}

func TestComputeFirstFollow_Epsilon(t *testing.T) {
	g, err := Ingest([]string{
		"S -> A b",
		"A -> a | ε",
	})
	require.NoError(t, err)

	first := ComputeFirst(g)
	assert.True(t, first["A"].Has("ε"))

	follow := ComputeFollow(g, first)
	assert.True(t, follow["A"].Has("b"))
}
