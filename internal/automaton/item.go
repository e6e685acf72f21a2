// Package automaton builds the canonical collection of LR(0) item sets for a
// grammar.Grammar: CLOSURE, GOTO, and the state-by-state worklist
// construction that numbers states in FIFO discovery order.
package automaton

import (
	"fmt"
	"sort"

	"github.com/halvard/lrforge/internal/grammar"
)

// Item is a dotted production: the production at ProductionIndex with the
// dot sitting before DotPosition of its right-hand side.
type Item struct {
	ProductionIndex int
	DotPosition     int
}

// String renders an item as "A -> α .β" (the dot is written directly before
// the next symbol, and an ε-item as "A -> .ε"), matching the pretty-printer's
// format. It needs the grammar to look up the production's symbols.
func (it Item) String(g grammar.Grammar) string {
	p := g.Production(it.ProductionIndex)
	if p.IsEpsilon() {
		if it.DotPosition == 0 {
			return fmt.Sprintf("%s -> .%s", p.Left, grammar.Epsilon)
		}
	}

	before := make([]grammar.Symbol, it.DotPosition)
	copy(before, p.Right[:it.DotPosition])
	after := p.Right[it.DotPosition:]

	s := fmt.Sprintf("%s ->", p.Left)
	for _, sym := range before {
		s += " " + string(sym)
	}
	s += " ."
	for _, sym := range after {
		s += string(sym) + " "
	}
	if len(after) > 0 {
		s = s[:len(s)-1]
	}
	return s
}

// AtEnd reports whether the dot sits after the last symbol of its
// production, i.e. this item is reducible.
func (it Item) AtEnd(g grammar.Grammar) bool {
	return it.DotPosition >= len(g.Production(it.ProductionIndex).Right)
}

// SymbolAfterDot returns the symbol immediately after the dot and true, or
// the zero Symbol and false if the dot is at the end.
func (it Item) SymbolAfterDot(g grammar.Grammar) (grammar.Symbol, bool) {
	p := g.Production(it.ProductionIndex)
	if it.DotPosition >= len(p.Right) {
		return "", false
	}
	return p.Right[it.DotPosition], true
}

// Advance returns the item with its dot moved one position forward.
func (it Item) Advance() Item {
	return Item{ProductionIndex: it.ProductionIndex, DotPosition: it.DotPosition + 1}
}

// ItemSet is an unordered set of items; two ItemSets are equal iff they
// contain the same items. It is kept as a sorted slice internally so that
// Key and Equal are cheap and deterministic.
type ItemSet struct {
	items []Item
}

// NewItemSet builds an ItemSet from a (possibly duplicate-laden, unordered)
// slice of items, deduplicating and sorting for a canonical internal order.
func NewItemSet(items []Item) ItemSet {
	seen := make(map[Item]bool, len(items))
	unique := make([]Item, 0, len(items))
	for _, it := range items {
		if !seen[it] {
			seen[it] = true
			unique = append(unique, it)
		}
	}
	sort.Slice(unique, func(i, j int) bool {
		if unique[i].ProductionIndex != unique[j].ProductionIndex {
			return unique[i].ProductionIndex < unique[j].ProductionIndex
		}
		return unique[i].DotPosition < unique[j].DotPosition
	})
	return ItemSet{items: unique}
}

// Items returns the items of the set in canonical (sorted) order.
func (s ItemSet) Items() []Item {
	return s.items
}

// Len returns the number of items in the set.
func (s ItemSet) Len() int {
	return len(s.items)
}

// Equal reports structural equality: same items, regardless of how each was
// built.
func (s ItemSet) Equal(o ItemSet) bool {
	if len(s.items) != len(o.items) {
		return false
	}
	for i := range s.items {
		if s.items[i] != o.items[i] {
			return false
		}
	}
	return true
}

// Key returns a string uniquely identifying this set's content, suitable for
// use as a map key when interning states during canonical-collection
// construction.
func (s ItemSet) Key() string {
	key := ""
	for _, it := range s.items {
		key += fmt.Sprintf("%d.%d|", it.ProductionIndex, it.DotPosition)
	}
	return key
}
