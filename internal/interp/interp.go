// Package interp fits scattered two-dimensional data with a piecewise-linear
// surface. The samples are Delaunay-triangulated once; evaluation inside the
// convex hull is barycentric interpolation on the containing triangle, and
// evaluation outside the hull is refused rather than extrapolated.
package interp

import (
	"errors"
	"fmt"
	"math"

	"github.com/fogleman/delaunay"
)

// Point is one sample of a scalar field V measured at (X, Y).
type Point struct {
	X float64
	Y float64
	V float64
}

// ErrDegenerate reports a sample set that cannot carry a triangulation:
// fewer than three samples, or all samples on one line.
var ErrDegenerate = errors.New("interp: sample set has no triangulation")

// Scattered interpolates a scalar field over irregularly spaced samples.
// The zero value is unusable; build one with NewScattered. A Scattered is
// immutable and safe for concurrent use.
type Scattered struct {
	tri  *delaunay.Triangulation
	vals []float64
}

// NewScattered triangulates the sample locations and keeps the mesh for
// later evaluation. Sample values are not inspected; only the locations
// decide whether a triangulation exists.
func NewScattered(samples []Point) (*Scattered, error) {
	if len(samples) < 3 {
		return nil, ErrDegenerate
	}
	pts := make([]delaunay.Point, len(samples))
	vals := make([]float64, len(samples))
	for i, s := range samples {
		pts[i] = delaunay.Point{X: s.X, Y: s.Y}
		vals[i] = s.V
	}
	tri, err := delaunay.Triangulate(pts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDegenerate, err)
	}
	if len(tri.Triangles) == 0 {
		return nil, ErrDegenerate
	}
	return &Scattered{tri: tri, vals: vals}, nil
}

// weightTol absorbs round-off in the barycentric weights of points sitting
// exactly on a triangle edge or hull boundary. Weights are normalized, so an
// absolute tolerance is enough even for strongly anisotropic sample clouds.
const weightTol = 1e-9

// At evaluates the fit at (x, y). The boolean is false when the point lies
// outside the convex hull of the samples, when the mesh around it is
// degenerate, or when the receiver is nil: the fit never extrapolates and
// never guesses. Querying a sample's own location returns its value exactly.
func (s *Scattered) At(x, y float64) (float64, bool) {
	if s == nil || s.tri == nil {
		return 0, false
	}
	if math.IsNaN(x) || math.IsNaN(y) {
		return 0, false
	}
	pts := s.tri.Points
	idx := s.tri.Triangles
	for i := 0; i < len(idx); i += 3 {
		ia, ib, ic := idx[i], idx[i+1], idx[i+2]
		a, b, c := pts[ia], pts[ib], pts[ic]

		den := (b.Y-c.Y)*(a.X-c.X) + (c.X-b.X)*(a.Y-c.Y)
		if den == 0 {
			// Zero-area triangle: no linear fit on it.
			continue
		}
		wa := ((b.Y-c.Y)*(x-c.X) + (c.X-b.X)*(y-c.Y)) / den
		wb := ((c.Y-a.Y)*(x-c.X) + (a.X-c.X)*(y-c.Y)) / den
		wc := 1 - wa - wb
		if wa >= -weightTol && wb >= -weightTol && wc >= -weightTol {
			return wa*s.vals[ia] + wb*s.vals[ib] + wc*s.vals[ic], true
		}
	}
	return 0, false
}

// Len reports the number of samples behind the fit.
func (s *Scattered) Len() int {
	if s == nil {
		return 0
	}
	return len(s.vals)
}
