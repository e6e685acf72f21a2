package lrerrors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrammarSyntaxError_Message(t *testing.T) {
	err := &GrammarSyntaxError{Line: "S a b", Reason: "missing '->'"}
	assert.Contains(t, err.Error(), "missing '->'")
	assert.Contains(t, err.Error(), "S a b")
}

func TestNotParseable_ListsConflicts(t *testing.T) {
	err := &NotParseable{
		Conflicts: []ConflictDescriptor{
			{State: 3, Kind: "shift-reduce", Item: "S -> a .", Symbols: []string{"b", "c"}},
			{State: 5, Kind: "reduce-reduce", Item: "A -> .", Other: "B -> ."},
		},
	}
	msg := err.Error()
	assert.Contains(t, msg, "state 3")
	assert.Contains(t, msg, "state 5")
	assert.Contains(t, msg, "neither LR(0) nor SLR(1)")
}

func TestUndefinedInputSymbol_Message(t *testing.T) {
	err := &UndefinedInputSymbol{Offending: []string{"x"}, Terminals: []string{"id", "+"}}
	assert.Contains(t, err.Error(), "x")
	assert.Contains(t, err.Error(), "id")
}

func TestParseReject_Message(t *testing.T) {
	err := &ParseReject{Step: 4, Reason: "no action for state 2 on y"}
	assert.Contains(t, err.Error(), "step 4")
}
