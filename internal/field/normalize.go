package field

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// NormalizeMinMax rescales m in place to [0, 1]. NaN entries are left as
// they are. A constant matrix has no range to rescale: every finite entry
// becomes 0.5 and degenerate is reported.
func NormalizeMinMax(m *mat.Dense) (degenerate bool) {
	data := m.RawMatrix().Data
	lo, hi, ok := finiteRange(data)
	if !ok {
		return true
	}
	if hi == lo {
		for i, v := range data {
			if !math.IsNaN(v) {
				data[i] = 0.5
			}
		}
		return true
	}

	span := hi - lo
	for i, v := range data {
		if math.IsNaN(v) {
			continue
		}
		data[i] = math.Min(1, math.Max(0, (v-lo)/span))
	}
	return false
}

func finiteRange(data []float64) (lo, hi float64, ok bool) {
	if len(data) == 0 {
		return 0, 0, false
	}
	if !floats.HasNaN(data) {
		return floats.Min(data), floats.Max(data), true
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range data {
		if math.IsNaN(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi, !math.IsInf(lo, 1)
}
