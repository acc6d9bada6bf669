package dial

import (
	"errors"
	"fmt"
	"strconv"
)

// A Direction is the way an instruction turns the dial.
type Direction byte

const (
	Left  Direction = 'L'
	Right Direction = 'R'
)

func (d Direction) String() string {
	switch d {
	case Left, Right:
		return string(d)
	}
	return fmt.Sprintf("Direction(%q)", byte(d))
}

// An Instruction is a single rotation: a direction and a number of clicks.
type Instruction struct {
	Dir       Direction
	Magnitude int
}

// String returns the instruction in its input form, such as "L68".
func (in Instruction) String() string {
	return string(in.Dir) + strconv.Itoa(in.Magnitude)
}

// ErrMalformed is matched (with errors.Is) by every error Parse returns.
var ErrMalformed = errors.New("malformed instruction")

// A ParseError describes an instruction string that could not be parsed.
type ParseError struct {
	Line   int // 1-based position in the source; 0 if unknown
	Raw    string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s %q: %s", e.Line, ErrMalformed, e.Raw, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", ErrMalformed, e.Raw, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrMalformed }

// Parse parses a raw instruction of the form <direction><magnitude>,
// where direction is L or R and magnitude is a run of decimal digits.
func Parse(s string) (Instruction, error) {
	if s == "" {
		return Instruction{}, &ParseError{Raw: s, Reason: "empty"}
	}
	dir := Direction(s[0])
	if dir != Left && dir != Right {
		return Instruction{}, &ParseError{Raw: s, Reason: fmt.Sprintf("unknown direction %q", s[0])}
	}
	digits := s[1:]
	if digits == "" {
		return Instruction{}, &ParseError{Raw: s, Reason: "missing magnitude"}
	}
	// strconv accepts a leading sign; the input format doesn't.
	for i := 0; i < len(digits); i++ {
		if c := digits[i]; c < '0' || c > '9' {
			return Instruction{}, &ParseError{Raw: s, Reason: fmt.Sprintf("non-digit %q in magnitude", c)}
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return Instruction{}, &ParseError{Raw: s, Reason: "magnitude out of range"}
	}
	return Instruction{Dir: dir, Magnitude: n}, nil
}
