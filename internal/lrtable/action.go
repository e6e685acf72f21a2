package lrtable

import "github.com/halvard/lrforge/internal/grammar"

// ActionKind tags an ActionEntry's variant.
type ActionKind int

const (
	// ActionError is the zero value, representing an absent cell.
	ActionError ActionKind = iota
	ActionShift
	ActionReduce
	ActionAccept
)

func (k ActionKind) String() string {
	switch k {
	case ActionShift:
		return "shift"
	case ActionReduce:
		return "reduce"
	case ActionAccept:
		return "accept"
	default:
		return "error"
	}
}

// ActionEntry is the tagged union {SHIFT(state), REDUCE(production), ACCEPT,
// ERROR} named in the data model. ERROR is represented by the entry simply
// being absent from the Table's Action map.
type ActionEntry struct {
	Kind       ActionKind
	Target     int // state to shift to, when Kind == ActionShift
	Production int // production to reduce by, when Kind == ActionReduce
}

// ActionKey indexes the ACTION table by (state, terminal-or-#).
type ActionKey struct {
	State    int
	Terminal grammar.Symbol
}

// Table is the frozen ACTION/GOTO table plus the regime it was built under.
type Table struct {
	Action map[ActionKey]ActionEntry
	Regime Regime

	// Resolved is true when the table was synthesized from a conflicting
	// grammar by force-resolving every conflict: shift over reduce, and the
	// lowest-numbered production over any other reducer.
	Resolved bool
}

// Regime names which analysis the table was built under.
type Regime int

const (
	RegimeLR0 Regime = iota
	RegimeSLR1
)

func (r Regime) String() string {
	if r == RegimeLR0 {
		return "LR(0)"
	}
	return "SLR(1)"
}
