package values

import (
	"fmt"
	"strconv"
	"strings"
)

// treeWriter accumulates an indented, line-oriented dump of a value tree.
type treeWriter struct {
	w strings.Builder
}

func (tw *treeWriter) line(depth int, format string, args ...any) {
	for range depth {
		tw.w.WriteString("  ")
	}
	fmt.Fprintf(&tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// DumpTree renders the structure of a LengthPercentage for troubleshooting:
// one line per node, leaves quoted in their canonical serialization.
func DumpTree(lp LengthPercentage) string {
	var tw treeWriter
	dumpLengthPercentage(&tw, 0, lp)
	return tw.w.String()
}

func dumpLengthPercentage(tw *treeWriter, depth int, lp LengthPercentage) {
	switch {
	case lp.Length != nil:
		dumpLength(tw, depth, *lp.Length)
	case lp.Percentage != nil:
		tw.line(depth, "percentage: %s", strconv.Quote(lp.Percentage.String()))
	case lp.Calc != nil:
		dumpCalcLP(tw, depth, *lp.Calc)
	default:
		tw.line(depth, "zero")
	}
}

func dumpLength(tw *treeWriter, depth int, l Length) {
	switch {
	case l.Absolute != nil:
		tw.line(depth, "absolute: %s", strconv.Quote(l.String()))
	case l.Relative != nil:
		tw.line(depth, "relative: %s", strconv.Quote(l.String()))
	case l.Calc != nil:
		dumpCalcLength(tw, depth, *l.Calc)
	default:
		tw.line(depth, "zero")
	}
}

func dumpCalcLP(tw *treeWriter, depth int, c Calc[LengthPercentage]) {
	if c.Leaf != nil {
		tw.line(depth, "leaf:")
		dumpLengthPercentage(tw, depth+1, *c.Leaf)
		return
	}
	tw.line(depth, "sum:")
	dumpCalcLP(tw, depth+1, c.Sum.Left)
	dumpCalcLP(tw, depth+1, c.Sum.Right)
}

func dumpCalcLength(tw *treeWriter, depth int, c Calc[Length]) {
	if c.Leaf != nil {
		tw.line(depth, "leaf:")
		dumpLength(tw, depth+1, *c.Leaf)
		return
	}
	tw.line(depth, "sum:")
	dumpCalcLength(tw, depth+1, c.Sum.Left)
	dumpCalcLength(tw, depth+1, c.Sum.Right)
}
