package analysis

import (
	"math"

	"github.com/san-kum/pdeviz/internal/field"
)

// Summary collects the inspectable properties of a sampled field or curve.
type Summary struct {
	Family     field.Family `json:"family"`
	Label      string       `json:"label"`
	Rows       int          `json:"rows"`
	Cols       int          `json:"cols"`
	Min        float64      `json:"min"`
	Max        float64      `json:"max"`
	Masked     int          `json:"masked"`
	Degenerate bool         `json:"degenerate"`

	// HalfPeriodsU/V count lobes along the strongest row and column.
	HalfPeriodsU int `json:"half_periods_u"`
	HalfPeriodsV int `json:"half_periods_v"`

	// Zeros and DominantFrequency are filled for curves.
	Zeros             int     `json:"zeros"`
	DominantFrequency float64 `json:"dominant_frequency"`
}

// Summarize inspects a 2D field.
func Summarize(f *field.Field) Summary {
	rows, cols := f.Dims()
	s := Summary{
		Family:     f.Family,
		Label:      f.Label,
		Rows:       rows,
		Cols:       cols,
		Degenerate: f.Degenerate,
	}
	if f.Mask != nil {
		s.Masked = f.Mask.Count()
	}

	values := f.Values
	if f.Raw != nil {
		values = f.Raw
	}
	s.Min, s.Max = Extrema(values.RawMatrix().Data)

	bestRow, bestCol := strongest(rows, cols, values.At)
	row := make([]float64, cols)
	for j := range row {
		row[j] = values.At(bestRow, j)
	}
	col := make([]float64, rows)
	for i := range col {
		col[i] = values.At(i, bestCol)
	}
	s.HalfPeriodsU = HalfPeriods(row, DefaultTolerance)
	s.HalfPeriodsV = HalfPeriods(col, DefaultTolerance)
	return s
}

// SummarizeCurve inspects a 1D curve.
func SummarizeCurve(c *field.Curve) Summary {
	s := Summary{Family: c.Family, Label: c.Label, Rows: 1, Cols: c.Len()}
	s.Min, s.Max = Extrema(c.Y)
	s.Zeros = SignChanges(c.Y, DefaultTolerance)
	if n := c.Len(); n > 1 {
		s.DominantFrequency = DominantFrequency(c.Y, c.X[n-1]-c.X[0])
	}
	return s
}

// strongest finds the row and column holding the largest magnitude sample.
func strongest(rows, cols int, at func(i, j int) float64) (int, int) {
	bi, bj, best := 0, 0, -1.0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := math.Abs(at(i, j))
			if !math.IsNaN(v) && v > best {
				bi, bj, best = i, j, v
			}
		}
	}
	return bi, bj
}
