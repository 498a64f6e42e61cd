package barcode

import "math"

// project maps a grade coordinate (x,y) onto the query line's own axis
// (spec §4.5 step 2). ok is false when the point does not lie on the
// query side of the line and the bar it belongs to must be suppressed.
//
// 1. θ = 0: the query line is horizontal at height offset; a point
//    projects to its x-coordinate provided it sits at or below that
//    height.
// 2. θ = 90: the query line is vertical at x = -offset; a point
//    projects to its y-coordinate provided it sits at or left of that
//    line.
// 3. Otherwise: the query line is y = x*tanθ + offset/cosθ; a point
//    projects to the line's own value at that x provided the point
//    sits on or below the line.
func project(thetaDeg, offset, x, y float64) (float64, bool) {
	switch {
	case thetaDeg == 0:
		if y <= offset {
			return x, true
		}

		return 0, false

	case thetaDeg == 90:
		if x <= -offset {
			return y, true
		}

		return 0, false

	default:
		rad := thetaDeg * math.Pi / 180
		line := x*math.Tan(rad) + offset/math.Cos(rad)
		if y <= line {
			return math.Max(line, y), true
		}

		return 0, false
	}
}
