package interp

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestNewScatteredDegenerate(t *testing.T) {
	tests := []struct {
		name    string
		samples []Point
	}{
		{"empty", nil},
		{"single", []Point{{X: 1, Y: 1, V: 5}}},
		{"pair", []Point{{X: 1, Y: 1, V: 5}, {X: 2, Y: 3, V: 7}}},
		{"collinear", []Point{
			{X: 0, Y: 0, V: 1},
			{X: 1, Y: 1, V: 2},
			{X: 2, Y: 2, V: 3},
			{X: 3, Y: 3, V: 4},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewScattered(tt.samples)
			if !errors.Is(err, ErrDegenerate) {
				t.Errorf("error: got %v, want ErrDegenerate", err)
			}
			if s != nil {
				t.Errorf("fit: got %v, want nil", s)
			}
		})
	}
}

func TestAtReturnsSampleValuesAtSampleLocations(t *testing.T) {
	samples := []Point{
		{X: 20, Y: 1e5, V: 173},
		{X: 450, Y: 1e5, V: 138},
		{X: 450, Y: 4e5, V: 138},
		{X: 620, Y: 1e4, V: 35},
		{X: 540, Y: 2e5, V: 62},
		{X: 550, Y: 3e5, V: 52},
	}
	s, err := NewScattered(samples)
	if err != nil {
		t.Fatalf("NewScattered: %v", err)
	}

	for _, p := range samples {
		got, ok := s.At(p.X, p.Y)
		if !ok {
			t.Errorf("At(%g, %g): refused, want %g", p.X, p.Y, p.V)
			continue
		}
		if !almostEqual(got, p.V, 1e-9) {
			t.Errorf("At(%g, %g): got %g, want %g", p.X, p.Y, got, p.V)
		}
	}
}

func TestAtReproducesPlane(t *testing.T) {
	// v = 1 + 2x - 3y. Barycentric interpolation of values that already lie
	// on a plane returns the plane no matter how the cloud is triangulated.
	plane := func(x, y float64) float64 { return 1 + 2*x - 3*y }
	var samples []Point
	for _, x := range []float64{0, 10, 20} {
		for _, y := range []float64{0, 5, 9} {
			samples = append(samples, Point{X: x, Y: y, V: plane(x, y)})
		}
	}
	s, err := NewScattered(samples)
	if err != nil {
		t.Fatalf("NewScattered: %v", err)
	}

	queries := []struct{ x, y float64 }{
		{3, 2},
		{0.5, 0.5},
		{10, 2.5},
		{19.99, 8.99},
		{5, 0}, // on the hull boundary
	}
	for _, q := range queries {
		got, ok := s.At(q.x, q.y)
		if !ok {
			t.Errorf("At(%g, %g): refused, want value", q.x, q.y)
			continue
		}
		if want := plane(q.x, q.y); !almostEqual(got, want, 1e-9) {
			t.Errorf("At(%g, %g): got %g, want %g", q.x, q.y, got, want)
		}
	}
}

func TestAtRefusesOutsideHull(t *testing.T) {
	samples := []Point{
		{X: 0, Y: 0, V: 1},
		{X: 10, Y: 0, V: 2},
		{X: 10, Y: 5, V: 3},
		{X: 0, Y: 5, V: 4},
	}
	s, err := NewScattered(samples)
	if err != nil {
		t.Fatalf("NewScattered: %v", err)
	}

	tests := []struct {
		name string
		x, y float64
	}{
		{"left", -1, 2},
		{"right", 11, 2},
		{"above", 5, 6},
		{"below", 5, -0.5},
		{"far", 1e6, 1e6},
		{"nan-x", math.NaN(), 2},
		{"nan-y", 5, math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if v, ok := s.At(tt.x, tt.y); ok {
				t.Errorf("At(%g, %g): got %g, want refusal", tt.x, tt.y, v)
			}
		})
	}
}

func TestNilScattered(t *testing.T) {
	var s *Scattered
	if _, ok := s.At(1, 1); ok {
		t.Error("nil fit answered a query")
	}
	if n := s.Len(); n != 0 {
		t.Errorf("Len: got %d, want 0", n)
	}
}
