package recognizer

import (
	"testing"

	"github.com/halvard/lrforge/internal/grammar"
	"github.com/halvard/lrforge/internal/lrtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenize(sentence string) []grammar.Symbol {
	var syms []grammar.Symbol
	word := ""
	for _, r := range sentence {
		if r == ' ' {
			if word != "" {
				syms = append(syms, grammar.Symbol(word))
				word = ""
			}
			continue
		}
		word += string(r)
	}
	if word != "" {
		syms = append(syms, grammar.Symbol(word))
	}
	return syms
}

func mustBuild(t *testing.T, lines []string) (grammar.Grammar, lrtable.Result) {
	t.Helper()
	g, err := grammar.Ingest(lines)
	require.NoError(t, err)
	result, err := lrtable.Build(g, false)
	require.NoError(t, err)
	return g, result
}

func TestRun_ArithmeticAcceptsAndRejects(t *testing.T) {
	g, result := mustBuild(t, []string{
		"E -> E + T | T",
		"T -> T * F | F",
		"F -> ( E ) | id",
	})

	accept := Run(g, result, tokenize("id + id * id"))
	assert.Equal(t, Accepted, accept.Outcome)

	reject := Run(g, result, tokenize("id + +"))
	assert.Equal(t, Rejected, reject.Outcome)
}

func TestRun_EmptyInputRejectsAtStateZero(t *testing.T) {
	g, result := mustBuild(t, []string{
		"E -> E + T | T",
		"T -> T * F | F",
		"F -> ( E ) | id",
	})

	trace := Run(g, result, nil)
	assert.Equal(t, Rejected, trace.Outcome)
	require.Len(t, trace.Steps, 1)
	assert.Equal(t, []int{0}, trace.Steps[0].StateStack)
}

func TestRun_UnknownSymbolRejectsBeforeStepping(t *testing.T) {
	g, result := mustBuild(t, []string{
		"E -> E + T | T",
		"T -> T * F | F",
		"F -> ( E ) | id",
	})

	trace := Run(g, result, tokenize("id + x"))
	assert.Equal(t, Rejected, trace.Outcome)
	require.Error(t, trace.Err)
	assert.Empty(t, trace.Steps, "should reject before stepping")
}

func TestRun_PureLR0Grammar(t *testing.T) {
	g, result := mustBuild(t, []string{"S -> a S b | a b"})

	assert.Equal(t, Accepted, Run(g, result, tokenize("a a b b")).Outcome)
	assert.Equal(t, Rejected, Run(g, result, tokenize("a a b")).Outcome)
}

func TestRun_EpsilonGrammar(t *testing.T) {
	g, result := mustBuild(t, []string{
		"S -> A B",
		"A -> a | ε",
		"B -> b",
	})

	assert.Equal(t, Accepted, Run(g, result, tokenize("a b")).Outcome)
	assert.Equal(t, Accepted, Run(g, result, tokenize("b")).Outcome)
}
