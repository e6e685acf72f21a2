package grammar

import "strings"

// Symbol is an opaque grammar token. It is deliberately just a string: the
// grammar ingestion process decides whether a given Symbol is a terminal or a
// nonterminal by where it was seen, not by any property of the string itself.
type Symbol string

const (
	// Epsilon marks an empty production body. It is never itself a terminal
	// or nonterminal; it only appears as a sentinel in FIRST sets and as the
	// visual marker for an empty right-hand side.
	Epsilon Symbol = "ε"

	// EndOfInput is appended to every tokenized input sentence and is always
	// a member of the terminal set. It is also always a member of FOLLOW of
	// the grammar's original (non-augmented) start symbol.
	EndOfInput Symbol = "#"
)

// Production is one right-hand side alternative of a rule: Left -> Right.
// An empty Right denotes an ε-production.
type Production struct {
	Left  Symbol
	Right []Symbol
}

// IsEpsilon reports whether p has an empty body.
func (p Production) IsEpsilon() bool {
	return len(p.Right) == 0
}

// String renders the production the way the pretty-printers and trace lines
// do: "Left -> a b c" or "Left -> ε" for an empty body.
func (p Production) String() string {
	var sb strings.Builder
	sb.WriteString(string(p.Left))
	sb.WriteString(" -> ")
	if p.IsEpsilon() {
		sb.WriteString(string(Epsilon))
		return sb.String()
	}
	for i, s := range p.Right {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(string(s))
	}
	return sb.String()
}

// Equal reports whether p and o are the same production.
func (p Production) Equal(o Production) bool {
	if p.Left != o.Left || len(p.Right) != len(o.Right) {
		return false
	}
	for i := range p.Right {
		if p.Right[i] != o.Right[i] {
			return false
		}
	}
	return true
}
