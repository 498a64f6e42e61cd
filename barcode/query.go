package barcode

import (
	"math"

	"github.com/tildedata/mphom/bigrade"
	"github.com/tildedata/mphom/template"
	"github.com/tildedata/mphom/updater"
)

// Bar is one numeric entry of a queried barcode (spec §4.5 / §6's
// `Barcode = Vec<(f64, f64_or_inf)>`).
type Bar struct {
	Birth, Death float64
	Infinite     bool
}

// Query rescales a face's barcode template (the output of
// updater.State.BarcodeTemplate) against one query line (spec §4.5):
// each bar's birth/death template-point indices are resolved to real
// grade coordinates via xg/yg and projected onto the query line; bars
// whose birth or death does not lie on the query side of the line are
// suppressed, as are bars whose projected birth and death coincide
// (zero-length, spec step 3's "bars with equal endpoints are dropped").
//
// Decided (spec is silent on a death point failing to project while the
// birth succeeds): the whole bar is suppressed, since a half-projected
// bar has no well-defined numeric extent.
func Query(bars []updater.Bar, points []template.Point, xg, yg bigrade.Grades, thetaDeg, offset float64) ([]Bar, error) {
	if thetaDeg < 0 || thetaDeg > 90 {
		return nil, ErrBadQuery
	}

	var out []Bar
	for _, b := range bars {
		birth, ok := projectPoint(points, xg, yg, b.A, thetaDeg, offset)
		if !ok {
			continue
		}

		if b.BInfinite {
			out = append(out, Bar{Birth: birth, Death: math.Inf(1), Infinite: true})
			continue
		}

		death, ok := projectPoint(points, xg, yg, b.B, thetaDeg, offset)
		if !ok {
			continue
		}
		if birth == death {
			continue
		}
		out = append(out, Bar{Birth: birth, Death: death})
	}

	return out, nil
}

func projectPoint(points []template.Point, xg, yg bigrade.Grades, idx int, thetaDeg, offset float64) (float64, bool) {
	p := points[idx]
	x, err := xg.At(p.Grade.X)
	if err != nil {
		return 0, false
	}
	y, err := yg.At(p.Grade.Y)
	if err != nil {
		return 0, false
	}

	return project(thetaDeg, offset, x.Float(), y.Float())
}
