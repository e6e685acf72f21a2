package prettyprint

import (
	"fmt"

	"github.com/dekarrin/rosed"
	"github.com/halvard/lrforge/internal/automaton"
	"github.com/halvard/lrforge/internal/grammar"
	"github.com/halvard/lrforge/internal/lrtable"
)

// Table renders the combined ACTION/GOTO table: columns are terminals ∪ {#}
// then nonterminals \ {augmented start}, rows are states. Cells encode
// sN/rN/acc/blank for ACTION, target state or blank for GOTO.
func Table(g grammar.Grammar, col automaton.Collection, table lrtable.Table) string {
	terminals := g.Terminals()

	var nonterminals []grammar.Symbol
	for _, nt := range g.NonTerminals() {
		if nt != g.AugmentedStart() {
			nonterminals = append(nonterminals, nt)
		}
	}

	var data [][]string

	headers := []string{"state", "|"}
	for _, t := range terminals {
		headers = append(headers, fmt.Sprintf("A:%s", t))
	}
	headers = append(headers, "|")
	for _, nt := range nonterminals {
		headers = append(headers, fmt.Sprintf("G:%s", nt))
	}
	data = append(data, headers)

	for stateIdx := range col.States {
		row := []string{fmt.Sprint(stateIdx), "|"}

		for _, t := range terminals {
			cell := ""
			if entry, ok := table.Action[lrtable.ActionKey{State: stateIdx, Terminal: t}]; ok {
				switch entry.Kind {
				case lrtable.ActionShift:
					cell = fmt.Sprintf("s%d", entry.Target)
				case lrtable.ActionReduce:
					cell = fmt.Sprintf("r%d", entry.Production)
				case lrtable.ActionAccept:
					cell = "acc"
				}
			}
			row = append(row, cell)
		}

		row = append(row, "|")

		for _, nt := range nonterminals {
			cell := ""
			if target, ok := col.Goto(stateIdx, nt); ok {
				cell = fmt.Sprint(target)
			}
			row = append(row, cell)
		}

		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
