// Package source supplies dial instructions from text, files, SQL tables,
// and S3 objects.
package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cespare/advent/dial"
)

// A Source produces an ordered list of instructions.
type Source interface {
	Instructions(ctx context.Context) ([]dial.Instruction, error)
}

// ParseLines parses raw instruction strings. Blank lines are skipped but
// still counted, so a *dial.ParseError carries the 1-based line number of
// the offending string within raws.
func ParseLines(raws []string) ([]dial.Instruction, error) {
	insns := make([]dial.Instruction, 0, len(raws))
	for i, raw := range raws {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		in, err := dial.Parse(raw)
		if err != nil {
			setLine(err, i+1)
			return nil, err
		}
		insns = append(insns, in)
	}
	return insns, nil
}

func setLine(err error, line int) {
	var pe *dial.ParseError
	if errors.As(err, &pe) {
		pe.Line = line
	}
}

// MaxLineLen is the longest line ReadLines accepts.
const MaxLineLen = 1 << 20

// ReadLines reads all newline-delimited lines from r. A line longer than
// MaxLineLen is reported as a *dial.ParseError for that line.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineLen)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &dial.ParseError{
				Line:   len(lines) + 1,
				Reason: fmt.Sprintf("line longer than %d bytes", MaxLineLen),
			}
		}
		return nil, err
	}
	return lines, nil
}

// Reader reads newline-delimited instructions from an io.Reader.
type Reader struct {
	R io.Reader
}

func (r Reader) Instructions(_ context.Context) ([]dial.Instruction, error) {
	lines, err := ReadLines(r.R)
	if err != nil {
		return nil, fmt.Errorf("error reading instructions: %w", err)
	}
	return ParseLines(lines)
}

// File reads newline-delimited instructions from the named file.
type File string

func (f File) Instructions(ctx context.Context) ([]dial.Instruction, error) {
	file, err := os.Open(string(f))
	if err != nil {
		return nil, err
	}
	defer file.Close()
	insns, err := Reader{file}.Instructions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f, err)
	}
	return insns, nil
}
