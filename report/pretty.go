package report

import (
	"io"

	"github.com/kr/pretty"

	"github.com/cespare/advent/dial"
)

func writePretty(w io.Writer, res *dial.Result) error {
	_, err := pretty.Fprintf(w, "%# v\n", res)
	return err
}
