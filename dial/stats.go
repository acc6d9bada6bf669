package dial

// Stats summarizes the end positions of a trace.
type Stats struct {
	Rotations int
	Zeros     int // steps ending on 0
	Crossings int
	Min       int
	Max       int
	Mean      float64
}

// Summarize computes Stats for r. The starting position is not included.
func Summarize(r *Result) Stats {
	st := Stats{Crossings: r.Total}
	if len(r.Trace) == 0 {
		return st
	}
	st.Min, st.Max = r.Trace[0].End, r.Trace[0].End
	var sum int
	for _, s := range r.Trace {
		st.Rotations++
		if s.End == 0 {
			st.Zeros++
		}
		if s.End < st.Min {
			st.Min = s.End
		}
		if s.End > st.Max {
			st.Max = s.End
		}
		sum += s.End
	}
	st.Mean = float64(sum) / float64(st.Rotations)
	return st
}
