// Package recognizer drives the table-driven shift-reduce automaton: given
// a lrtable.Result and a tokenized sentence, it simulates ACTION/GOTO and
// emits one trace line per step.
package recognizer

import (
	"fmt"
	"strings"

	"github.com/halvard/lrforge/internal/grammar"
	"github.com/halvard/lrforge/internal/lrerrors"
	"github.com/halvard/lrforge/internal/lrtable"
	"github.com/halvard/lrforge/internal/util"
)

// Outcome is the terminal status of a recognition run.
type Outcome int

const (
	Accepted Outcome = iota
	Rejected
)

// Step records one line of the trace: the step number, the state stack
// bottom-to-top at the time of the decision, the remaining input cursor to
// end inclusive of the trailing '#', and a human-readable action
// description.
type Step struct {
	Number       int
	StateStack   []int
	RemainingIn  []grammar.Symbol
	Description  string
}

// String renders a Step the way §6 specifies: step number, stack contents,
// remaining input, action descriptor.
func (s Step) String() string {
	stack := make([]string, len(s.StateStack))
	for i, st := range s.StateStack {
		stack[i] = fmt.Sprint(st)
	}
	remaining := make([]string, len(s.RemainingIn))
	for i, sym := range s.RemainingIn {
		remaining[i] = string(sym)
	}
	return fmt.Sprintf("step %d | stack: %s | input: %s | %s",
		s.Number, strings.Join(stack, " "), strings.Join(remaining, " "), s.Description)
}

// Trace is the full sequence of steps a run produced, plus its outcome.
type Trace struct {
	Steps   []Step
	Outcome Outcome
	Err     error
}

// Run takes a sentence already split into symbols by the caller's
// front-end, validates every symbol is a known terminal, appends '#', and
// drives result's ACTION/GOTO table to either ACCEPT or REJECT, recording a
// Step for every iteration of the loop.
func Run(g grammar.Grammar, result lrtable.Result, tokens []grammar.Symbol) Trace {
	for _, tok := range tokens {
		if !g.IsTerminal(tok) {
			return Trace{
				Outcome: Rejected,
				Err: &lrerrors.UndefinedInputSymbol{
					Offending: []string{string(tok)},
					Terminals: symbolStrings(g.Terminals()),
				},
			}
		}
	}

	input := append(append([]grammar.Symbol{}, tokens...), grammar.EndOfInput)

	var stack util.Stack[int]
	stack.Push(0)

	cursor := 0
	var steps []Step

	for step := 1; ; step++ {
		s := stack.Peek()
		a := input[cursor]

		entry, ok := result.Table.Action[lrtable.ActionKey{State: s, Terminal: a}]
		if !ok {
			steps = append(steps, Step{
				Number:      step,
				StateStack:  append([]int{}, stack.Of...),
				RemainingIn: append([]grammar.Symbol{}, input[cursor:]...),
				Description: "reject",
			})
			return Trace{
				Steps:   steps,
				Outcome: Rejected,
				Err: &lrerrors.ParseReject{
					Step:   step,
					Reason: fmt.Sprintf("no action for state %d on %s", s, a),
				},
			}
		}

		switch entry.Kind {
		case lrtable.ActionShift:
			stack.Push(entry.Target)
			cursor++
			steps = append(steps, Step{
				Number:      step,
				StateStack:  append([]int{}, stack.Of...),
				RemainingIn: append([]grammar.Symbol{}, input[cursor:]...),
				Description: fmt.Sprintf("shift to %d", entry.Target),
			})

		case lrtable.ActionReduce:
			p := g.Production(entry.Production)
			for i := 0; i < len(p.Right); i++ {
				stack.Pop()
			}
			prevState := stack.Peek()
			target, exists := result.Collection.Goto(prevState, p.Left)
			if !exists {
				steps = append(steps, Step{
					Number:      step,
					StateStack:  append([]int{}, stack.Of...),
					RemainingIn: append([]grammar.Symbol{}, input[cursor:]...),
					Description: "reject",
				})
				return Trace{
					Steps:   steps,
					Outcome: Rejected,
					Err: &lrerrors.ParseReject{
						Step:   step,
						Reason: fmt.Sprintf("no GOTO for state %d on %s", prevState, p.Left),
					},
				}
			}
			stack.Push(target)
			steps = append(steps, Step{
				Number:      step,
				StateStack:  append([]int{}, stack.Of...),
				RemainingIn: append([]grammar.Symbol{}, input[cursor:]...),
				Description: fmt.Sprintf("reduce: %s", p.String()),
			})

		case lrtable.ActionAccept:
			steps = append(steps, Step{
				Number:      step,
				StateStack:  append([]int{}, stack.Of...),
				RemainingIn: append([]grammar.Symbol{}, input[cursor:]...),
				Description: "accept",
			})
			return Trace{Steps: steps, Outcome: Accepted}
		}
	}
}

func symbolStrings(syms []grammar.Symbol) []string {
	out := make([]string, len(syms))
	for i, s := range syms {
		out[i] = string(s)
	}
	return out
}
