package arrangement

import (
	"github.com/tildedata/mphom/bigrade"
	"github.com/tildedata/mphom/template"
)

// Line is the point-line dual of one template point (spec §4.2 "dual
// transform"): the line v = X*u - Y in the (u,v) strip, u ∈ [0,∞]. Its
// index in the slice passed to Build is that anchor's position-tracking
// identity, referenced throughout the DCEL via HalfEdge.Line and
// Face.Below/Above.
type Line struct {
	X, Y bigrade.Exact
}

// At evaluates the line's v value at parameter u.
func (l Line) At(u bigrade.Exact) bigrade.Exact {
	return l.X.Mul(u).Sub(l.Y)
}

// LinesFromPoints resolves every template point's bigrade indices to Exact
// coordinates via the x/y grade vectors and returns the corresponding dual
// lines, index-aligned with pts.
func LinesFromPoints(pts []template.Point, xg, yg bigrade.Grades) ([]Line, error) {
	lines := make([]Line, len(pts))
	for i, p := range pts {
		x, err := xg.At(p.Grade.X)
		if err != nil {
			return nil, err
		}
		y, err := yg.At(p.Grade.Y)
		if err != nil {
			return nil, err
		}
		lines[i] = Line{X: x, Y: y}
	}

	return lines, nil
}
