package report

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/cespare/advent/dial"
)

type yamlStep struct {
	Step        int    `yaml:"step"`
	Instruction string `yaml:"instruction"`
	Start       int    `yaml:"start"`
	End         int    `yaml:"end"`
	Crossings   int    `yaml:"crossings"`
}

type yamlStats struct {
	Rotations int     `yaml:"rotations"`
	Zeros     int     `yaml:"zeros"`
	Min       int     `yaml:"min"`
	Max       int     `yaml:"max"`
	Mean      float64 `yaml:"mean"`
}

type yamlResult struct {
	Mode  string     `yaml:"mode"`
	Size  int        `yaml:"size"`
	Start int        `yaml:"start"`
	Final int        `yaml:"final"`
	Total int        `yaml:"total"`
	Stats yamlStats  `yaml:"stats"`
	Steps []yamlStep `yaml:"steps"`
}

func writeYAML(w io.Writer, res *dial.Result) error {
	st := dial.Summarize(res)
	out := yamlResult{
		Mode:  res.Mode.String(),
		Size:  res.Dial.Size,
		Start: res.Dial.Start,
		Final: res.Final,
		Total: res.Total,
		Stats: yamlStats{
			Rotations: st.Rotations,
			Zeros:     st.Zeros,
			Min:       st.Min,
			Max:       st.Max,
			Mean:      st.Mean,
		},
		Steps: make([]yamlStep, len(res.Trace)),
	}
	for i, s := range res.Trace {
		out.Steps[i] = yamlStep{
			Step:        s.Index,
			Instruction: s.Instruction.String(),
			Start:       s.Start,
			End:         s.End,
			Crossings:   s.Crossings,
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}
