// Package rd10249 holds allowable-stress reference data from РД 10-249-98
// ("Нормы расчета на прочность стационарных котлов и трубопроводов пара и
// горячей воды") and answers temperature/service-life queries against it.
//
// The standard tabulates the allowable stress [σ] only where the material is
// qualified for the temperature/duration combination, so the table is sparse.
// Queries between tabulated points are answered by piecewise-linear
// interpolation over the present cells; queries outside the footprint of the
// present cells are refused, since extrapolating past the standard's
// applicability range is not a valid engineering inference.
package rd10249

import (
	"github.com/alpenrose85-eng/troynik/internal/interp"
)

// noStress marks a temperature/duration combination the standard gives no
// figure for. Real allowable stresses are strictly positive.
const noStress = 0

// Table is an immutable allowable-stress table for one steel grade. Build it
// once with New (or take the embedded Steel12Kh1MF) and share it freely:
// queries are pure reads and safe for concurrent use.
type Table struct {
	grade string
	temps []float64 // °C, ascending
	hours []float64 // cumulative operating hours, ascending
	cells [][]float64
	fit   *interp.Scattered // nil when the present cells have no triangulation
}

// New builds a table from axis values and a row-per-temperature cell grid
// with noStress marking gaps. The grid shape must match the axes; reference
// tables are literal data, so a mismatch is a programming error and panics.
// Interpolation over fewer than three present cells (or a degenerate cloud)
// is silently unavailable: such a table answers only exact cell queries.
func New(grade string, tempsC, durationsH []float64, cells [][]float64) *Table {
	if len(cells) != len(tempsC) {
		panic("rd10249: cell rows do not match temperature axis")
	}
	t := &Table{
		grade: grade,
		temps: append([]float64(nil), tempsC...),
		hours: append([]float64(nil), durationsH...),
		cells: make([][]float64, len(cells)),
	}
	var samples []interp.Point
	for i, row := range cells {
		if len(row) != len(durationsH) {
			panic("rd10249: cell row does not match duration axis")
		}
		t.cells[i] = append([]float64(nil), row...)
		for j, v := range row {
			if v != noStress {
				samples = append(samples, interp.Point{X: tempsC[i], Y: durationsH[j], V: v})
			}
		}
	}
	if fit, err := interp.NewScattered(samples); err == nil {
		t.fit = fit
	}
	return t
}

// Query returns the allowable stress (MPa) at a design temperature (°C) and
// a cumulative operating time (hours). The boolean is false when the value
// is undeterminable: the point lies outside the tabulated footprint, the
// interpolation around it is degenerate, or the table holds no values at all.
// At a tabulated cell the stored value is returned exactly.
func (t *Table) Query(tempC, hours float64) (float64, bool) {
	if t == nil {
		return 0, false
	}
	if i, j := indexOf(t.temps, tempC), indexOf(t.hours, hours); i >= 0 && j >= 0 {
		if v := t.cells[i][j]; v != noStress {
			return v, true
		}
	}
	return t.fit.At(tempC, hours)
}

// Grade names the steel grade the table belongs to.
func (t *Table) Grade() string { return t.grade }

// Temperatures returns a copy of the temperature axis (°C, ascending).
func (t *Table) Temperatures() []float64 {
	return append([]float64(nil), t.temps...)
}

// Durations returns a copy of the duration axis (hours, ascending).
func (t *Table) Durations() []float64 {
	return append([]float64(nil), t.hours...)
}

// Cell returns the tabulated stress at row i (temperature index) and column
// j (duration index). The boolean is false for gaps and out-of-range indexes.
func (t *Table) Cell(i, j int) (float64, bool) {
	if i < 0 || i >= len(t.cells) || j < 0 || j >= len(t.hours) {
		return 0, false
	}
	if v := t.cells[i][j]; v != noStress {
		return v, true
	}
	return 0, false
}

func indexOf(axis []float64, v float64) int {
	for i, a := range axis {
		if a == v {
			return i
		}
	}
	return -1
}
