package prettyprint

import (
	"strings"

	"github.com/halvard/lrforge/internal/recognizer"
)

// Trace renders a recognizer.Trace as one line per step followed by a final
// accept/reject summary line.
func Trace(t recognizer.Trace) string {
	var sb strings.Builder
	for _, step := range t.Steps {
		sb.WriteString(step.String())
		sb.WriteByte('\n')
	}
	if t.Outcome == recognizer.Accepted {
		sb.WriteString("result: accept\n")
	} else {
		sb.WriteString("result: reject")
		if t.Err != nil {
			sb.WriteString(": " + t.Err.Error())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
