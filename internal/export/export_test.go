package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/san-kum/pdeviz/internal/field"
)

func legendreCurves(t *testing.T, degrees ...int) []*field.Curve {
	t.Helper()
	var curves []*field.Curve
	for _, l := range degrees {
		c, err := field.Legendre(field.DefaultLegendreParams(l))
		if err != nil {
			t.Fatalf("legendre %d: %v", l, err)
		}
		curves = append(curves, c)
	}
	return curves
}

func TestWriteCurvesCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCurvesCSV(&buf, legendreCurves(t, 0, 1, 2)...); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(records) != field.DefaultCurveSamples+1 {
		t.Errorf("expected %d records, got %d", field.DefaultCurveSamples+1, len(records))
	}
	if got := strings.Join(records[0], ","); got != "x,l=0,l=1,l=2" {
		t.Errorf("unexpected header %q", got)
	}
	// P_l(1) = 1 for every degree.
	last := records[len(records)-1]
	for _, v := range last {
		if v != "1" {
			t.Errorf("expected 1 at x=1, got %v", last)
			break
		}
	}
}

func TestWriteCurvesCSVMismatch(t *testing.T) {
	a := legendreCurves(t, 0)[0]
	b, err := field.Bessel(field.DefaultBesselParams(0))
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteCurvesCSV(&bytes.Buffer{}, a, b); !errors.Is(err, ErrMismatch) {
		t.Errorf("expected ErrMismatch, got %v", err)
	}
}

func TestWriteFieldCSVSkipsMasked(t *testing.T) {
	p := field.DefaultMultipoleParams(1)
	p.ThetaSamples, p.RadialSamples = 20, 10
	f, err := field.Multipole(p)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteFieldCSV(&buf, f); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	rows, cols := f.Dims()
	want := rows*cols - f.Mask.Count()
	if len(records)-1 != want {
		t.Errorf("expected %d data rows, got %d", want, len(records)-1)
	}
	for _, r := range records[1:] {
		if r[2] == "NaN" {
			t.Fatal("masked value written")
		}
	}
}

func TestWriteJSONField(t *testing.T) {
	p := field.DefaultMultipoleParams(0)
	p.ThetaSamples, p.RadialSamples = 8, 6
	f, err := field.Multipole(p)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, NewFieldData(f)); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var decoded struct {
		Family string       `json:"family"`
		Values [][]*float64 `json:"values"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.Family != "multipole" {
		t.Errorf("expected family multipole, got %s", decoded.Family)
	}
	// r=0 is masked, r=5 is not.
	if decoded.Values[0][0] != nil {
		t.Errorf("expected null at r=0, got %v", *decoded.Values[0][0])
	}
	if v := decoded.Values[5][0]; v == nil || *v != 0.2 {
		t.Errorf("expected 0.2 at r=5, got %v", v)
	}
}

func TestWriteJSONCurves(t *testing.T) {
	var data []CurveData
	for _, c := range legendreCurves(t, 0, 3) {
		data = append(data, NewCurveData(c))
	}
	var buf bytes.Buffer
	if err := WriteJSON(&buf, data); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"label": "l=3"`) {
		t.Error("expected label in output")
	}
}
