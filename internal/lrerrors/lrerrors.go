// Package lrerrors holds the typed error kinds named in the driver's error
// handling design: one exported type per failure mode, each carrying enough
// structured data to format a useful diagnostic at the top-level driver.
package lrerrors

import (
	"fmt"
	"strings"
)

// GrammarSyntaxError reports a malformed production line: a missing "->", an
// empty left-hand side, or an alternative that is empty without being
// written as the literal token "ε".
type GrammarSyntaxError struct {
	Line   string
	Reason string
}

func (e *GrammarSyntaxError) Error() string {
	return fmt.Sprintf("grammar syntax error: %s: %q", e.Reason, e.Line)
}

// EmptyGrammar reports that ingestion produced zero productions.
type EmptyGrammar struct{}

func (e *EmptyGrammar) Error() string {
	return "grammar is empty; no productions were ingested"
}

// ConflictDescriptor names one conflict found during LR(0) conflict
// analysis: a state in which some reducible item collides with either a
// shift or another reduce.
type ConflictDescriptor struct {
	State    int
	Kind     string // "shift-reduce" or "reduce-reduce"
	Item     string
	Other    string // populated for reduce-reduce; blank for shift-reduce
	Symbols  []string
}

func (c ConflictDescriptor) String() string {
	if c.Other != "" {
		return fmt.Sprintf("state %d: reduce/reduce conflict between %s and %s on {%s}",
			c.State, c.Item, c.Other, strings.Join(c.Symbols, ", "))
	}
	return fmt.Sprintf("state %d: shift/reduce conflict on item %s over {%s}",
		c.State, c.Item, strings.Join(c.Symbols, ", "))
}

// NotParseable reports that a grammar is neither LR(0) nor SLR(1), along with
// the conflicts found during the (always-attempted) LR(0) pass.
type NotParseable struct {
	Conflicts []ConflictDescriptor
}

func (e *NotParseable) Error() string {
	var sb strings.Builder
	sb.WriteString("grammar is neither LR(0) nor SLR(1)")
	for _, c := range e.Conflicts {
		sb.WriteString("\n  ")
		sb.WriteString(c.String())
	}
	return sb.String()
}

// UndefinedInputSymbol reports that a tokenized input sentence referenced one
// or more symbols absent from the grammar's terminal set.
type UndefinedInputSymbol struct {
	Offending []string
	Terminals []string
}

func (e *UndefinedInputSymbol) Error() string {
	return fmt.Sprintf("undefined input symbol(s) {%s}; valid terminals are {%s}",
		strings.Join(e.Offending, ", "), strings.Join(e.Terminals, ", "))
}

// ParseReject reports that the recognizer halted in an ERROR cell or hit a
// missing GOTO entry during a reduction.
type ParseReject struct {
	Step   int
	Reason string
}

func (e *ParseReject) Error() string {
	return fmt.Sprintf("rejected at step %d: %s", e.Step, e.Reason)
}
