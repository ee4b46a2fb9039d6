package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/san-kum/pdeviz/internal/field"
)

var ErrMismatch = errors.New("export: curves sampled on different x")

// Value is a sample that encodes NaN as JSON null.
type Value float64

func (v Value) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, float64(v), 'g', -1, 64), nil
}

type CurveData struct {
	Family string    `json:"family"`
	Label  string    `json:"label"`
	X      []float64 `json:"x"`
	Y      []float64 `json:"y"`
}

// FieldData is a field in row-major order: Values[i][j] sits at (U[j], V[i]).
// Masked points are null.
type FieldData struct {
	Family     string    `json:"family"`
	Label      string    `json:"label"`
	U          []float64 `json:"u"`
	V          []float64 `json:"v"`
	Values     [][]Value `json:"values"`
	Degenerate bool      `json:"degenerate,omitempty"`
}

func NewCurveData(c *field.Curve) CurveData {
	return CurveData{Family: string(c.Family), Label: c.Label, X: c.X, Y: c.Y}
}

func NewFieldData(f *field.Field) FieldData {
	rows, cols := f.Dims()
	data := FieldData{
		Family:     string(f.Family),
		Label:      f.Label,
		U:          f.Grid.U,
		V:          f.Grid.V,
		Values:     make([][]Value, rows),
		Degenerate: f.Degenerate,
	}
	for i := range data.Values {
		row := make([]Value, cols)
		for j := range row {
			if f.Visible(i, j) {
				row[j] = Value(f.Values.At(i, j))
			} else {
				row[j] = Value(math.NaN())
			}
		}
		data.Values[i] = row
	}
	return data
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// WriteCurvesCSV writes one x column followed by a column per curve, headed
// by the curve labels. All curves must share the same x samples.
func WriteCurvesCSV(w io.Writer, curves ...*field.Curve) error {
	if len(curves) == 0 {
		return nil
	}
	x := curves[0].X
	header := []string{"x"}
	for _, c := range curves {
		if len(c.X) != len(x) {
			return fmt.Errorf("%w: %s has %d samples, want %d", ErrMismatch, c.Label, len(c.X), len(x))
		}
		for i := range x {
			if c.X[i] != x[i] {
				return fmt.Errorf("%w: %s differs at sample %d", ErrMismatch, c.Label, i)
			}
		}
		header = append(header, c.Label)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return err
	}
	record := make([]string, len(curves)+1)
	for i := range x {
		record[0] = formatFloat(x[i])
		for k, c := range curves {
			record[k+1] = formatFloat(c.Y[i])
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteFieldCSV writes the field in long form (u, v, value), one row per
// visible grid point. Masked points are skipped.
func WriteFieldCSV(w io.Writer, f *field.Field) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"u", "v", "value"}); err != nil {
		return err
	}
	rows, cols := f.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if !f.Visible(i, j) {
				continue
			}
			record := []string{
				formatFloat(f.Grid.U[j]),
				formatFloat(f.Grid.V[i]),
				formatFloat(f.Values.At(i, j)),
			}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
