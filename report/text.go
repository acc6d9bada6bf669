package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/cespare/advent/dial"
)

const rule = "============================================================"

func writeText(w io.Writer, res *dial.Result, opts Options) error {
	bw := bufio.NewWriter(w)
	total := humanize.Comma(int64(res.Total))

	fmt.Fprintf(bw, "SOLUTION: The password is %s\n", total)
	fmt.Fprintln(bw, rule)

	sample, _ := head(res.Trace, opts.Sample)
	if len(sample) > 0 {
		fmt.Fprintf(bw, "\nSample positions (first %d rotations):\n", len(sample))
		writeTextTable(bw, sample, true)
	}

	zeros, more := head(res.ZeroSteps(), opts.Zeros)
	if len(zeros) > 0 {
		fmt.Fprintf(bw, "\nRotations that reach 0 (%s):\n", res.Mode)
		writeTextTable(bw, zeros, false)
		if more > 0 {
			fmt.Fprintf(bw, "... and %s more\n", humanize.Comma(int64(more)))
		}
	}

	st := dial.Summarize(res)
	fmt.Fprintln(bw, "\nStatistics:")
	fmt.Fprintf(bw, "Total rotations: %s\n", humanize.Comma(int64(st.Rotations)))
	fmt.Fprintf(bw, "Times at zero:   %s\n", humanize.Comma(int64(st.Zeros)))
	fmt.Fprintf(bw, "Clicks on zero:  %s\n", humanize.Comma(int64(st.Crossings)))
	if st.Rotations > 0 {
		fmt.Fprintf(bw, "Min position:    %d\n", st.Min)
		fmt.Fprintf(bw, "Max position:    %d\n", st.Max)
		fmt.Fprintf(bw, "Avg position:    %.2f\n", st.Mean)
	}
	fmt.Fprintf(bw, "Final position:  %d\n", res.Final)

	fmt.Fprintln(bw, "\n"+rule)
	fmt.Fprintf(bw, "ANSWER: %d\n", res.Total)
	fmt.Fprintln(bw, rule)
	return bw.Flush()
}

func writeTextTable(w io.Writer, steps []dial.Step, marker bool) {
	fmt.Fprintf(w, "%-6s %-12s %-6s %-6s %-7s\n", "Step", "Instruction", "Start", "End", "Clicks")
	fmt.Fprintln(w, strings.Repeat("-", 50))
	for _, s := range steps {
		line := fmt.Sprintf("%-6d %-12s %-6d %-6d %-7d", s.Index, s.Instruction, s.Start, s.End, s.Crossings)
		if marker && s.End == 0 {
			line += " <- ZERO!"
		} else if !marker {
			line += " " + note(s)
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}
