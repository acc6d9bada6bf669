package dial

import (
	_ "embed"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

//go:embed testdata/example.txt
var example string

func parseAll(t *testing.T, s string) []Instruction {
	t.Helper()
	var insns []Instruction
	for _, f := range strings.Fields(s) {
		in, err := Parse(f)
		if err != nil {
			t.Fatal(err)
		}
		insns = append(insns, in)
	}
	return insns
}

func TestExample(t *testing.T) {
	insns := parseAll(t, example)
	wantEnds := []int{82, 52, 0, 95, 55, 0, 99, 0, 14, 32}
	for _, tt := range []struct {
		mode      Mode
		crossings []int
		total     int
	}{
		{EndpointOnly, []int{0, 0, 1, 0, 0, 1, 0, 1, 0, 0}, 3},
		{EveryClick, []int{1, 0, 1, 0, 1, 1, 0, 1, 0, 1}, 6},
	} {
		res := Default.Run(insns, tt.mode)
		var ends, crossings []int
		for _, s := range res.Trace {
			ends = append(ends, s.End)
			crossings = append(crossings, s.Crossings)
		}
		if diff := pretty.Diff(ends, wantEnds); len(diff) > 0 {
			t.Errorf("%s: end positions differ: %v", tt.mode, diff)
		}
		if diff := pretty.Diff(crossings, tt.crossings); len(diff) > 0 {
			t.Errorf("%s: crossings differ: %v", tt.mode, diff)
		}
		if res.Total != tt.total {
			t.Errorf("%s: got total %d; want %d", tt.mode, res.Total, tt.total)
		}
		if res.Final != 32 {
			t.Errorf("%s: got final %d; want 32", tt.mode, res.Final)
		}
	}
}

func TestExampleTrace(t *testing.T) {
	res := Default.Run(parseAll(t, example), EveryClick)
	want := []Step{
		{1, Instruction{Left, 68}, 50, 82, 1},
		{2, Instruction{Left, 30}, 82, 52, 0},
		{3, Instruction{Right, 48}, 52, 0, 1},
	}
	if diff := pretty.Diff(res.Trace[:3], want); len(diff) > 0 {
		t.Errorf("trace prefix differs: %v", diff)
	}
	for i := 1; i < len(res.Trace); i++ {
		if res.Trace[i].Start != res.Trace[i-1].End {
			t.Errorf("step %d starts at %d; previous ended at %d",
				i+1, res.Trace[i].Start, res.Trace[i-1].End)
		}
	}
}

func TestEmpty(t *testing.T) {
	for _, mode := range []Mode{EndpointOnly, EveryClick} {
		res := Default.Run(nil, mode)
		if res.Final != 50 || res.Total != 0 || len(res.Trace) != 0 {
			t.Errorf("%s: got final=%d total=%d len(trace)=%d; want 50, 0, 0",
				mode, res.Final, res.Total, len(res.Trace))
		}
	}
}

func TestSingle(t *testing.T) {
	for _, tt := range []struct {
		start     int
		insn      string
		mode      Mode
		end       int
		crossings int
	}{
		{0, "R0", EveryClick, 0, 0},
		{0, "R0", EndpointOnly, 0, 0},
		{0, "L0", EveryClick, 0, 0},
		{99, "R1", EndpointOnly, 0, 1},
		{99, "R1", EveryClick, 0, 1},
		{1, "L1", EveryClick, 0, 1},
		{0, "L1", EveryClick, 99, 0},
		{50, "R100", EndpointOnly, 50, 0},
		{50, "R100", EveryClick, 50, 1},
		{50, "L100", EveryClick, 50, 1},
		{50, "R1000", EveryClick, 50, 10},
		{50, "L1000", EveryClick, 50, 10},
		{0, "R100", EndpointOnly, 0, 1},
		{0, "R100", EveryClick, 0, 1},
		{0, "L100", EveryClick, 0, 1},
		{0, "L300", EveryClick, 0, 3},
		{0, "R99", EveryClick, 99, 0},
		{0, "L99", EveryClick, 1, 0},
		{50, "R150", EveryClick, 0, 2},
		{50, "L250", EveryClick, 0, 3},
		{30, "L230", EveryClick, 0, 3},
		{30, "R230", EveryClick, 60, 2},
		{50, "R9223372036854775807", EndpointOnly, 57, 0},
		{50, "R9223372036854775807", EveryClick, 57, 92233720368547758},
		{50, "L9223372036854775807", EndpointOnly, 43, 0},
		{50, "L9223372036854775807", EveryClick, 43, 92233720368547758},
		{93, "R9223372036854775807", EndpointOnly, 0, 1},
		{93, "R9223372036854775807", EveryClick, 0, 92233720368547759},
	} {
		d := Dial{Size: 100, Start: tt.start}
		res := d.Run([]Instruction{mustParse(t, tt.insn)}, tt.mode)
		if res.Final != tt.end || res.Trace[0].Crossings != tt.crossings {
			t.Errorf("start=%d %s (%s): got end=%d crossings=%d; want end=%d crossings=%d",
				tt.start, tt.insn, tt.mode, res.Final, res.Trace[0].Crossings, tt.end, tt.crossings)
		}
	}
}

func TestRingSize(t *testing.T) {
	d := Dial{Size: 10, Start: 5}
	res := d.Run([]Instruction{{Right, 5}, {Left, 25}, {Right, 3}}, EveryClick)
	// 5 -R5-> 0 (1), 0 -L25-> 5 (2), 5 -R3-> 8 (0)
	if res.Final != 8 || res.Total != 3 {
		t.Errorf("got final=%d total=%d; want 8, 3", res.Final, res.Total)
	}
}

func mustParse(t *testing.T, s string) Instruction {
	t.Helper()
	in, err := Parse(s)
	if err != nil {
		t.Fatal(err)
	}
	return in
}

// clickByClick is the literal definition of EveryClick.
func clickByClick(size, pos int, in Instruction) (end, crossings int) {
	for i := 0; i < in.Magnitude; i++ {
		if in.Dir == Left {
			pos = mod(pos-1, size)
		} else {
			pos = mod(pos+1, size)
		}
		if pos == 0 {
			crossings++
		}
	}
	return pos, crossings
}

func randomInstructions(rng *rand.Rand, n, maxMag int) []Instruction {
	insns := make([]Instruction, n)
	for i := range insns {
		dir := Left
		if rng.Intn(2) == 0 {
			dir = Right
		}
		insns[i] = Instruction{Dir: dir, Magnitude: rng.Intn(maxMag + 1)}
	}
	return insns
}

func TestEveryClickMatchesStepping(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, size := range []int{1, 2, 7, 100} {
		d := Dial{Size: size, Start: rng.Intn(size)}
		insns := randomInstructions(rng, 500, 3*size+5)
		res := d.Run(insns, EveryClick)
		pos := d.Start
		for _, s := range res.Trace {
			end, n := clickByClick(size, pos, s.Instruction)
			if s.End != end || s.Crossings != n {
				t.Fatalf("size=%d step %d (%s from %d): got end=%d crossings=%d; want end=%d crossings=%d",
					size, s.Index, s.Instruction, pos, s.End, s.Crossings, end, n)
			}
			pos = end
		}
	}
}

func TestProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 50; i++ {
		insns := randomInstructions(rng, 200, 450)
		endpoint := Default.Run(insns, EndpointOnly)
		every := Default.Run(insns, EveryClick)
		for _, res := range []*Result{endpoint, every} {
			if res.Final < 0 || res.Final > 99 {
				t.Fatalf("%s: final position %d out of range", res.Mode, res.Final)
			}
		}
		if endpoint.Final != every.Final {
			t.Fatalf("modes disagree on final position: %d vs %d", endpoint.Final, every.Final)
		}
		for j := range insns {
			e, c := endpoint.Trace[j].Crossings, every.Trace[j].Crossings
			if e != 0 && e != 1 {
				t.Fatalf("step %d: endpoint crossing count %d", j+1, e)
			}
			if c < e {
				t.Fatalf("step %d: every-click count %d < endpoint count %d", j+1, c, e)
			}
		}
	}
}

func TestInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, in := range randomInstructions(rng, 200, 1000) {
		inv := in
		if in.Dir == Left {
			inv.Dir = Right
		} else {
			inv.Dir = Left
		}
		start := rng.Intn(100)
		d := Dial{Size: 100, Start: start}
		res := d.Run([]Instruction{in, inv}, EveryClick)
		if res.Final != start {
			t.Errorf("%s then %s from %d: got %d", in, inv, start, res.Final)
		}
	}
}

func TestZeroSteps(t *testing.T) {
	res := Default.Run(parseAll(t, example), EndpointOnly)
	var got []int
	for _, s := range res.ZeroSteps() {
		got = append(got, s.Index)
	}
	if want := []int{3, 6, 8}; !reflect.DeepEqual(got, want) {
		t.Errorf("got zero steps %v; want %v", got, want)
	}
}

func TestSummarize(t *testing.T) {
	res := Default.Run(parseAll(t, example), EveryClick)
	got := Summarize(res)
	want := Stats{
		Rotations: 10,
		Zeros:     3,
		Crossings: 6,
		Min:       0,
		Max:       99,
		Mean:      42.9,
	}
	if diff := pretty.Diff(got, want); len(diff) > 0 {
		t.Errorf("Summarize: %v", diff)
	}
	if st := Summarize(Default.Run(nil, EveryClick)); st != (Stats{}) {
		t.Errorf("Summarize of empty run: got %+v", st)
	}
}
