package prettyprint

import (
	"fmt"
	"strings"

	"github.com/halvard/lrforge/internal/automaton"
	"github.com/halvard/lrforge/internal/grammar"
)

// Collection renders every state of col as a numbered block of its items,
// each rendered "A -> α .β" with the dot positioned, matching the Item
// String format.
func Collection(g grammar.Grammar, col automaton.Collection) string {
	var sb strings.Builder
	for i, state := range col.States {
		fmt.Fprintf(&sb, "state %d:\n", i)
		for _, it := range state.Items() {
			fmt.Fprintf(&sb, "  %s\n", it.String(g))
		}
	}
	return sb.String()
}
