package template

import (
	"sort"

	"github.com/tildedata/mphom/bigrade"
)

// Point is a template point (spec §4.2): a bigrade carrying the three
// bigraded Betti multiplicities at that grade, plus anchor bookkeeping.
// IsAnchor is set for points that are the product-order join of some
// strongly-incomparable pair of support points (whether or not that join
// coincided with an existing support point). Strict is meaningful only
// when IsAnchor is true: it is true for anchors newly introduced by a
// join (the common case, spec scenario "strict-anchor swap"), false for
// an anchor that coincides with a pre-existing support point (the join
// degenerates onto a point that already carries its own Betti
// multiplicities).
type Point struct {
	Grade         bigrade.Bigrade
	Xi0, Xi1, Xi2 int
	IsAnchor      bool
	Strict        bool
}

// BuildPoints computes the template-point vector from the three dense
// bigraded Betti number grids (as produced by presentation.BigradedBetti):
// every grade with a nonzero xi, plus the anchor completions from every
// pair of strongly-incomparable such grades (spec §4.2). The result is
// sorted colex for determinism; its index order is the one later stages
// (arrangement, barcode) address points by.
func BuildPoints(xi0, xi1, xi2 [][]int, xSize, ySize int) ([]Point, error) {
	if len(xi0) != xSize || len(xi1) != xSize || len(xi2) != xSize {
		return nil, ErrGradeOutOfRange
	}
	for x := 0; x < xSize; x++ {
		if len(xi0[x]) != ySize || len(xi1[x]) != ySize || len(xi2[x]) != ySize {
			return nil, ErrGradeOutOfRange
		}
	}

	var pts []Point
	indexOf := make(map[bigrade.Bigrade]int)
	for x := 0; x < xSize; x++ {
		for y := 0; y < ySize; y++ {
			if xi0[x][y] == 0 && xi1[x][y] == 0 && xi2[x][y] == 0 {
				continue
			}
			g := bigrade.Bigrade{X: x, Y: y}
			indexOf[g] = len(pts)
			pts = append(pts, Point{Grade: g, Xi0: xi0[x][y], Xi1: xi1[x][y], Xi2: xi2[x][y]})
		}
	}

	n := len(pts) // anchors are generated from the original support only
	seenAnchor := make(map[bigrade.Bigrade]bool)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !bigrade.Incomparable(pts[i].Grade, pts[j].Grade) {
				continue
			}
			join := bigrade.Join(pts[i].Grade, pts[j].Grade)
			if idx, ok := indexOf[join]; ok {
				pts[idx].IsAnchor = true
				continue
			}
			if seenAnchor[join] {
				continue
			}
			seenAnchor[join] = true
			indexOf[join] = len(pts)
			pts = append(pts, Point{Grade: join, IsAnchor: true, Strict: true})
		}
	}

	sort.SliceStable(pts, func(i, j int) bool { return bigrade.LessColex(pts[i].Grade, pts[j].Grade) })

	return pts, nil
}

// Support reports whether p is a genuine Betti-support point (as opposed
// to a pure anchor with no multiplicities of its own).
func (p Point) Support() bool { return p.Xi0 != 0 || p.Xi1 != 0 || p.Xi2 != 0 }
