// Package report renders dial results.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/cespare/advent/dial"
)

// A Format is an output format for Write.
type Format string

const (
	Text     Format = "text"
	Markdown Format = "markdown"
	HTML     Format = "html"
	YAML     Format = "yaml"
	Pretty   Format = "pretty"
)

var formats = []Format{Text, Markdown, HTML, YAML, Pretty}

// ParseFormat returns the Format named by s.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return "", fmt.Errorf("unknown format %q (want one of %s)", s, strings.Join(names, ", "))
}

// Options control how much of the trace the human-readable formats show.
type Options struct {
	Sample int // number of leading steps in the sample table
	Zeros  int // maximum number of zero steps listed
}

// DefaultOptions match the amount of detail the puzzle answer needs.
var DefaultOptions = Options{Sample: 20, Zeros: 20}

// Write renders res to w in the given format.
func Write(w io.Writer, format Format, res *dial.Result, opts Options) error {
	switch format {
	case Text:
		return writeText(w, res, opts)
	case Markdown:
		return writeMarkdown(w, res, opts)
	case HTML:
		return writeHTML(w, res, opts)
	case YAML:
		return writeYAML(w, res)
	case Pretty:
		return writePretty(w, res)
	}
	return fmt.Errorf("unknown format %q", format)
}

func head(steps []dial.Step, n int) (shown []dial.Step, more int) {
	if len(steps) <= n {
		return steps, 0
	}
	return steps[:n], len(steps) - n
}

func note(s dial.Step) string {
	switch {
	case s.Crossings == 0:
		return ""
	case s.End == 0 && s.Crossings == 1:
		return "ends at 0"
	case s.End == 0:
		return fmt.Sprintf("ends at 0 (clicked %dx)", s.Crossings)
	default:
		return fmt.Sprintf("passes through 0 %d time(s)", s.Crossings)
	}
}
