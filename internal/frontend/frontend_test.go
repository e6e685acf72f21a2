package frontend

import (
	"strings"
	"testing"

	"github.com/halvard/lrforge/internal/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadGrammarLines_StopsAtBlankLine(t *testing.T) {
	src := "E -> E + T | T\nT -> id\n\nthis line is never read\n"
	lines, err := ReadGrammarLines(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"E -> E + T | T", "T -> id"}, lines)
}

func TestReadGrammarLines_FeedsIngest(t *testing.T) {
	src := "S -> a\n"
	lines, err := ReadGrammarLines(strings.NewReader(src))
	require.NoError(t, err)

	g, err := grammar.Ingest(lines)
	require.NoError(t, err)
	assert.Equal(t, grammar.Symbol("S"), g.Start())
}

func TestTokenize(t *testing.T) {
	got := Tokenize("id  +   id * id")
	want := []grammar.Symbol{"id", "+", "id", "*", "id"}
	assert.Equal(t, want, got)
}
