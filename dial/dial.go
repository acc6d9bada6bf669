// Package dial simulates a rotary dial on a ring of positions and counts
// how often it lands on 0.
package dial

// A Mode selects what counts as a crossing.
type Mode int

const (
	// EndpointOnly counts an instruction once if it ends on 0.
	EndpointOnly Mode = iota
	// EveryClick counts every single click that lands on 0.
	EveryClick
)

func (m Mode) String() string {
	switch m {
	case EndpointOnly:
		return "endpoint"
	case EveryClick:
		return "every-click"
	}
	return "unknown"
}

// A Dial describes the ring: positions 0 through Size-1, starting at Start.
// Size must be positive. Start is assumed to be in range.
type Dial struct {
	Size  int
	Start int
}

// Default is the dial from the puzzle: 100 positions, starting at 50.
var Default = Dial{Size: 100, Start: 50}

// A Step is one entry of a trace.
type Step struct {
	Index       int // 1-based
	Instruction Instruction
	Start       int
	End         int
	Crossings   int
}

// A Result is the outcome of a run.
type Result struct {
	Mode  Mode
	Dial  Dial
	Trace []Step
	Total int
	Final int
}

// ZeroSteps returns the steps that had at least one crossing, in order.
func (r *Result) ZeroSteps() []Step {
	var steps []Step
	for _, s := range r.Trace {
		if s.Crossings > 0 {
			steps = append(steps, s)
		}
	}
	return steps
}

// Run applies insns in order starting from d.Start.
func (d Dial) Run(insns []Instruction, mode Mode) *Result {
	res := &Result{
		Mode:  mode,
		Dial:  d,
		Trace: make([]Step, 0, len(insns)),
		Final: d.Start,
	}
	pos := d.Start
	for i, in := range insns {
		end, n := d.turn(pos, in, mode)
		res.Trace = append(res.Trace, Step{
			Index:       i + 1,
			Instruction: in,
			Start:       pos,
			End:         end,
			Crossings:   n,
		})
		res.Total += n
		pos = end
	}
	res.Final = pos
	return res
}

// turn applies a single instruction starting at pos and returns the new
// position and the number of crossings.
func (d Dial) turn(pos int, in Instruction, mode Mode) (end, crossings int) {
	m := in.Magnitude
	if m <= 0 {
		return pos, 0
	}
	// Whole turns don't move the dial; only rem does. Splitting m first
	// keeps pos+rem from overflowing for any magnitude.
	full, rem := m/d.Size, m%d.Size
	if in.Dir == Left {
		end = mod(pos-rem, d.Size)
	} else {
		end = mod(pos+rem, d.Size)
	}
	switch mode {
	case EveryClick:
		crossings = full + d.partialCrossings(pos, rem, in.Dir)
	default:
		if end == 0 {
			crossings = 1
		}
	}
	return end, crossings
}

// partialCrossings reports whether moving rem (< Size) clicks from pos in
// direction dir lands on 0. Each whole turn lands on 0 exactly once.
func (d Dial) partialCrossings(pos, rem int, dir Direction) int {
	if dir == Right {
		// pos+rem < 2*Size
		return (pos + rem) / d.Size
	}
	// Moving left, the first 0 is pos clicks away (a full turn from 0).
	if pos > 0 && rem >= pos {
		return 1
	}
	return 0
}

// mod is a floor modulo: the result is always in [0, n).
func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
