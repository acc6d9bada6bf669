package report

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/cespare/advent/dial"
)

func writeMarkdown(w io.Writer, res *dial.Result, opts Options) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# Dial password: %s\n\n", humanize.Comma(int64(res.Total)))
	fmt.Fprintf(bw, "Ring of %d positions starting at %d, counting %s crossings.\n",
		res.Dial.Size, res.Dial.Start, res.Mode)

	sample, more := head(res.Trace, opts.Sample)
	if len(sample) > 0 {
		fmt.Fprintf(bw, "\n## First %d rotations\n\n", len(sample))
		writeMarkdownTable(bw, sample)
		if more > 0 {
			fmt.Fprintf(bw, "\n_%s more rotations not shown._\n", humanize.Comma(int64(more)))
		}
	}

	zeros, more := head(res.ZeroSteps(), opts.Zeros)
	if len(zeros) > 0 {
		fmt.Fprint(bw, "\n## Rotations that reach 0\n\n")
		writeMarkdownTable(bw, zeros)
		if more > 0 {
			fmt.Fprintf(bw, "\n_... and %s more._\n", humanize.Comma(int64(more)))
		}
	}

	st := dial.Summarize(res)
	fmt.Fprint(bw, "\n## Statistics\n\n")
	fmt.Fprintln(bw, "| Statistic | Value |")
	fmt.Fprintln(bw, "| --- | --- |")
	fmt.Fprintf(bw, "| Rotations | %s |\n", humanize.Comma(int64(st.Rotations)))
	fmt.Fprintf(bw, "| Times at zero | %s |\n", humanize.Comma(int64(st.Zeros)))
	fmt.Fprintf(bw, "| Clicks on zero | %s |\n", humanize.Comma(int64(st.Crossings)))
	if st.Rotations > 0 {
		fmt.Fprintf(bw, "| Min position | %d |\n", st.Min)
		fmt.Fprintf(bw, "| Max position | %d |\n", st.Max)
		fmt.Fprintf(bw, "| Avg position | %.2f |\n", st.Mean)
	}
	fmt.Fprintf(bw, "| Final position | %d |\n", res.Final)
	return bw.Flush()
}

func writeMarkdownTable(w io.Writer, steps []dial.Step) {
	fmt.Fprintln(w, "| Step | Instruction | Start | End | Clicks | Note |")
	fmt.Fprintln(w, "| ---: | --- | ---: | ---: | ---: | --- |")
	for _, s := range steps {
		fmt.Fprintf(w, "| %s | `%s` | %d | %d | %d | %s |\n",
			humanize.Ordinal(s.Index), s.Instruction, s.Start, s.End, s.Crossings, note(s))
	}
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

func writeHTML(w io.Writer, res *dial.Result, opts Options) error {
	var buf bytes.Buffer
	if err := writeMarkdown(&buf, res, opts); err != nil {
		return err
	}
	return markdown.Convert(buf.Bytes(), w)
}
