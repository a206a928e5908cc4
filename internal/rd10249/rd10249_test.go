package rd10249

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestQueryTabulatedValues(t *testing.T) {
	table := Steel12Kh1MF()
	tests := []struct {
		tempC float64
		hours float64
		want  float64
	}{
		{20, 1e5, 173},
		{350, 1e5, 152},
		{450, 1e5, 138},
		{450, 4e5, 138},
		{480, 1e4, 133},
		{510, 3e5, 79},
		{550, 1e5, 66},
		{550, 2e5, 56},
		{600, 4e5, 27},
		{610, 1e5, 33},
		{620, 1e4, 35},
	}
	for _, tt := range tests {
		got, ok := table.Query(tt.tempC, tt.hours)
		if !ok {
			t.Errorf("Query(%v, %v): not determinable, want %v", tt.tempC, tt.hours, tt.want)
			continue
		}
		if got != tt.want {
			t.Errorf("Query(%v, %v) = %v, want exactly %v", tt.tempC, tt.hours, got, tt.want)
		}
	}
}

func TestQueryInterpolatesBetweenTabulatedPoints(t *testing.T) {
	table := Steel12Kh1MF()
	// Both points sit inside the 540..550 C / 2e5..3e5 h cell whose four
	// corners (62, 56, 58, 52) lie on one plane, so the value does not
	// depend on how the cell was split into triangles.
	tests := []struct {
		tempC float64
		hours float64
		want  float64
	}{
		{545, 2.5e5, 57},
		{545, 269142, 56.23432},
		{540, 2.5e5, 60},
		{550, 2.5e5, 54},
		// On the 1e5 h grid line between the 540 C (73) and 550 C (66)
		// rows: linear along the shared triangle edge.
		{545, 1e5, 69.5},
	}
	for _, tt := range tests {
		got, ok := table.Query(tt.tempC, tt.hours)
		if !ok {
			t.Errorf("Query(%v, %v): not determinable, want %v", tt.tempC, tt.hours, tt.want)
			continue
		}
		if math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("Query(%v, %v) = %v, want %v", tt.tempC, tt.hours, got, tt.want)
		}
	}
}

func TestQueryRefusesOutsideTable(t *testing.T) {
	table := Steel12Kh1MF()
	tests := []struct {
		name  string
		tempC float64
		hours float64
	}{
		{"cold metal, long life", 20, 4e5},
		{"cold metal, short life", 250, 1e4},
		{"above the hottest row", 700, 1e5},
		{"below the shortest life", 545, 5e3},
		{"beyond the longest life", 545, 6e5},
		{"empty corner of the grid", 450, 1e4},
	}
	for _, tt := range tests {
		if got, ok := table.Query(tt.tempC, tt.hours); ok {
			t.Errorf("%s: Query(%v, %v) = %v, want undeterminable", tt.name, tt.tempC, tt.hours, got)
		}
	}
}

func TestQueryFillsGapsInsideTheCloud(t *testing.T) {
	table := Steel12Kh1MF()
	// The 300 C / 2e5 h cell is blank in the standard, but the point is
	// surrounded by tabulated figures, so interpolation still answers.
	got, ok := table.Query(300, 2e5)
	if !ok {
		t.Fatalf("Query(300, 2e5): not determinable, want an interpolated value")
	}
	if got <= 27 || got >= 173 {
		t.Errorf("Query(300, 2e5) = %v, want a value strictly inside the tabulated range", got)
	}
}

func TestQueryDeterministic(t *testing.T) {
	table := Steel12Kh1MF()
	first, ok1 := table.Query(545, 269142)
	second, ok2 := table.Query(545, 269142)
	if ok1 != ok2 || first != second {
		t.Errorf("repeated Query diverged: (%v, %v) then (%v, %v)", first, ok1, second, ok2)
	}
}

func TestQueryEmptyAndNilTables(t *testing.T) {
	blank := New("empty", []float64{100, 200, 300}, []float64{1e4, 1e5}, [][]float64{{0, 0}, {0, 0}, {0, 0}})
	if got, ok := blank.Query(150, 5e4); ok {
		t.Errorf("blank table Query = %v, want undeterminable", got)
	}
	var nilTable *Table
	if got, ok := nilTable.Query(545, 1e5); ok {
		t.Errorf("nil table Query = %v, want undeterminable", got)
	}
}

func TestAccessorsCopyTheirSlices(t *testing.T) {
	table := Steel12Kh1MF()
	temps := table.Temperatures()
	temps[0] = -1
	if again := table.Temperatures(); again[0] != 20 {
		t.Errorf("Temperatures()[0] = %v after caller mutation, want 20", again[0])
	}
	durs := table.Durations()
	durs[0] = -1
	if again := table.Durations(); again[0] != 1e4 {
		t.Errorf("Durations()[0] = %v after caller mutation, want 1e4", again[0])
	}
	if _, ok := table.Cell(-1, 0); ok {
		t.Error("Cell(-1, 0) reported a value")
	}
	if _, ok := table.Cell(0, 99); ok {
		t.Error("Cell(0, 99) reported a value")
	}
	if v, ok := table.Cell(0, 1); !ok || v != 173 {
		t.Errorf("Cell(0, 1) = %v, %v, want 173, true", v, ok)
	}
	if _, ok := table.Cell(0, 0); ok {
		t.Error("Cell(0, 0) reported a value for a blank entry")
	}
}

func TestShowHandler(t *testing.T) {
	h := &Handler{Table: Steel12Kh1MF()}
	rec := httptest.NewRecorder()
	h.Show(rec, httptest.NewRequest(http.MethodGet, "/api/user/reference/rd10249/table", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	var view struct {
		Grade     string       `json:"grade"`
		StressMPa [][]*float64 `json:"stress_mpa"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&view); err != nil {
		t.Fatalf("decoding table: %v", err)
	}
	if view.Grade != "12Х1МФ" {
		t.Errorf("grade = %q, want 12Х1МФ", view.Grade)
	}
	if len(view.StressMPa) != 23 {
		t.Fatalf("rows = %d, want 23", len(view.StressMPa))
	}
	if view.StressMPa[0][0] != nil {
		t.Error("20 C / 1e4 h cell is not null, want a gap")
	}
	if v := view.StressMPa[0][1]; v == nil || *v != 173 {
		t.Error("20 C / 1e5 h cell does not carry 173")
	}
}

func TestStressHandler(t *testing.T) {
	h := &Handler{Table: Steel12Kh1MF()}
	tests := []struct {
		name   string
		target string
		status int
	}{
		{"tabulated point", "/api/user/reference/rd10249/stress?temperature=550&hours=100000", http.StatusOK},
		{"interpolated point", "/api/user/reference/rd10249/stress?temperature=545&hours=269142", http.StatusOK},
		{"outside the table", "/api/user/reference/rd10249/stress?temperature=20&hours=400000", http.StatusUnprocessableEntity},
		{"missing temperature", "/api/user/reference/rd10249/stress?hours=100000", http.StatusBadRequest},
		{"garbage hours", "/api/user/reference/rd10249/stress?temperature=550&hours=ten", http.StatusBadRequest},
		{"negative hours", "/api/user/reference/rd10249/stress?temperature=550&hours=-5", http.StatusBadRequest},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		h.Stress(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))
		if rec.Code != tt.status {
			t.Errorf("%s: status = %d, want %d", tt.name, rec.Code, tt.status)
		}
	}
}
