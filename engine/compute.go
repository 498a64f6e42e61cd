package engine

import (
	"context"
	"sort"

	"github.com/tildedata/mphom/arrangement"
	"github.com/tildedata/mphom/bigrade"
	"github.com/tildedata/mphom/firep"
	"github.com/tildedata/mphom/mod2"
	"github.com/tildedata/mphom/pathplan"
	"github.com/tildedata/mphom/presentation"
	"github.com/tildedata/mphom/template"
	"github.com/tildedata/mphom/updater"
)

// stageCount is the number of AdvanceStage calls Compute makes, announced
// once up front through SetMax, for callers sizing a progress bar.
const stageCount = 5

// Compute runs the full pipeline (spec §4): minimize fi into bigraded
// Betti numbers, build template points and their dual-line arrangement,
// plan a minimum-cost traversal of the arrangement's dual graph, then
// walk that traversal maintaining a vineyard decomposition and recording
// every face's barcode template. ctx is polled between stages and
// between path-planning steps (spec §5); a canceled ctx aborts with
// ErrCanceled and no partial ComputationResult.
func Compute(ctx context.Context, fi *firep.FIRep, params InputParameters, progress Progress) (*ComputationResult, error) {
	if fi == nil {
		return nil, ErrNilFIRep
	}
	if progress == nil {
		progress = NoopProgress()
	}
	progress.SetMax(stageCount)

	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	pres, err := presentation.Compute(fi)
	if err != nil {
		return nil, err
	}
	progress.AdvanceStage()

	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	points, err := template.BuildPoints(pres.Xi0, pres.Xi1, pres.Xi2, fi.XS.Len(), fi.YS.Len())
	if err != nil {
		return nil, err
	}
	progress.AdvanceStage()

	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	lines, err := arrangement.LinesFromPoints(points, fi.XS, fi.YS)
	if err != nil {
		return nil, err
	}
	dcel, err := arrangement.Build(lines)
	if err != nil {
		return nil, err
	}
	progress.AdvanceStage()

	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	rootFace, err := findRootFace(dcel)
	if err != nil {
		return nil, err
	}
	steps, err := planTraversal(dcel, rootFace)
	if err != nil {
		return nil, err
	}
	progress.AdvanceStage()

	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	state, err := newInitialState(fi, points)
	if err != nil {
		return nil, err
	}
	faceBars, err := walkTraversal(ctx, dcel, rootFace, steps, state, points)
	if err != nil {
		return nil, err
	}
	progress.AdvanceStage()

	return &ComputationResult{
		TemplatePoints:    points,
		HilbertDimensions: toUint32Grid(pres.Hilbert),
		XSExact:           fi.XS,
		YSExact:           fi.YS,
		XReverse:          params.XReverse,
		YReverse:          params.YReverse,
		Arrangement:       dcel,
		FaceBars:          faceBars,
	}, nil
}

func checkContext(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ErrCanceled
	default:
		return nil
	}
}

func toUint32Grid(in [][]int) [][]uint32 {
	out := make([][]uint32, len(in))
	for x, col := range in {
		out[x] = make([]uint32, len(col))
		for y, v := range col {
			out[x][y] = uint32(v)
		}
	}

	return out
}

// findRootFace locates the unique face at gap slot 0: the topmost gap,
// which (unlike an internal gap) is never replaced by a fresh Face
// during the sweep, making it the natural, stable root for the dual
// graph's spanning tree (spec §4.3 "rooted at... the top-left face").
func findRootFace(d *arrangement.DCEL) (int, error) {
	for _, f := range d.Faces {
		if f.Gap == 0 {
			return f.ID, nil
		}
	}

	return 0, ErrNoRootFace
}

// planTraversal builds the dual multigraph, weighting each anchor line
// by a constant placeholder cost rather than spec §4.4's literal "dry
// run of a vineyard update without touching any matrix": a faithful dry
// run would need to predict cascade length without executing one, which
// this module cannot do with confidence without running code. Recorded
// as a simplification in DESIGN.md; the MST it produces is still a valid
// spanning tree, just not weight-optimal against the true update cost.
func planTraversal(d *arrangement.DCEL, root int) ([]pathplan.Step, error) {
	g := pathplan.BuildGraph(d, func(line int) int64 { return 1 })
	mst, _, err := pathplan.MST(g)
	if err != nil {
		return nil, err
	}

	return pathplan.Traverse(mst, len(d.Faces), root)
}

// newInitialState builds the vineyard decomposition for the root face's
// line. The root face is the topmost gap, which persists for the entire
// sweep (u from 0 to ∞) and lies above every dual line, so every template
// point lies above the root's query lines and the induced order on
// template points is ascending Y with ties on X — colex order, the same
// order BuildPoints sorts by; simplices are ordered the same way by their
// own bigrade, via bigrade.LessColex.
func newInitialState(fi *firep.FIRep, points []template.Point) (*updater.State, error) {
	lowCols, lowLift, err := orderedColumnsAndLift(fi.DLow, points)
	if err != nil {
		return nil, err
	}
	highCols, highLift, err := orderedColumnsAndLift(fi.DHigh, points)
	if err != nil {
		return nil, err
	}

	return updater.NewState(lowCols, highCols, lowLift, highLift)
}

// orderedColumnsAndLift reads every column of m, sorts them by
// bigrade.LessColex, and computes each one's lift (the index of the
// template point dominating its bigrade in the product order).
func orderedColumnsAndLift(m *firep.Matrix, points []template.Point) ([]*mod2.Column, []int, error) {
	n := m.NCols()
	idx := make([]int, n)
	grades := make([]bigrade.Bigrade, n)
	for i := 0; i < n; i++ {
		_, g := m.Column(i)
		idx[i] = i
		grades[i] = g
	}
	sort.SliceStable(idx, func(a, b int) bool { return bigrade.LessColex(grades[idx[a]], grades[idx[b]]) })

	cols := make([]*mod2.Column, n)
	lift := make([]int, n)
	for pos, i := range idx {
		col, _ := m.Column(i)
		cols[pos] = col.Clone()
		p, err := dominatingPoint(points, grades[i])
		if err != nil {
			return nil, nil, err
		}
		lift[pos] = p
	}

	return cols, lift, nil
}

// dominatingPoint returns the index of the colex-least template point
// whose grade is >= g in the product order: the template point whose
// equivalence class a simplex at bigrade g belongs to. Linear scan: this
// runs once per simplex during setup, not per traversal step.
func dominatingPoint(points []template.Point, g bigrade.Bigrade) (int, error) {
	best := -1
	for i, p := range points {
		if !bigrade.LessEqualProduct(g, p.Grade) {
			continue
		}
		if best == -1 || bigrade.LessColex(p.Grade, points[best].Grade) {
			best = i
		}
	}
	if best == -1 {
		return 0, template.ErrGradeOutOfRange
	}

	return best, nil
}
