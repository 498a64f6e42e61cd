package presentation

import (
	"github.com/tildedata/mphom/bigrade"
	"github.com/tildedata/mphom/firep"
	"github.com/tildedata/mphom/mod2"
)

// reduceBigraded runs one left-to-right bigraded reduction pass over n
// columns (colAt(i) for i in [0,n)), which must already be sorted
// non-decreasing in whatever order the caller visits them in. Column i is
// reduced by adding in the working column of any earlier-processed column
// that shares its pivot row; since columns are visited left to right, any
// such earlier column necessarily has bigrade <=order the current one, so
// the "bigrade <= g" restriction from the reduction rule falls out of the
// traversal order for free and never needs to be checked explicitly.
//
// If slaveAt is non-nil, a parallel "slave" column starts at slaveAt(i) and
// receives the identical sequence of additions; slaves for columns whose
// working column zeroes out are returned (finalized) in zeroedSlave, which
// is used to recover kernel generators (spec §4.1's "slave identity
// matrix").
//
// survived[i] reports whether column i's working copy is still nonzero
// after reduction; working[i] holds that (finalized) working copy in every
// case, nonzero or not.
func reduceBigraded(n int, colAt func(i int) *mod2.Column, slaveAt func(i int) *mod2.Column) (survived []bool, working []*mod2.Column, zeroedSlave []*mod2.Column) {
	pivotOwner := make(map[int]int, n)
	working = make([]*mod2.Column, n)
	survived = make([]bool, n)
	zeroedSlave = make([]*mod2.Column, n)
	var slaves []*mod2.Column
	if slaveAt != nil {
		slaves = make([]*mod2.Column, n)
	}

	for i := 0; i < n; i++ {
		working[i] = colAt(i).Clone()
		if slaveAt != nil {
			slaves[i] = slaveAt(i).Clone()
		}
		for {
			p, ok := working[i].PeekMax()
			if !ok {
				break
			}
			owner, exists := pivotOwner[p]
			if !exists {
				break
			}
			working[i].PopMax()
			// working[owner] was finalized when it became a pivot owner below,
			// and is never mutated again afterward, so this fast path applies.
			_ = working[i].AddPopped(working[owner])
			if slaveAt != nil {
				slaves[i].Add(slaves[owner].Clone())
			}
		}
		if p, ok := working[i].PeekMax(); ok {
			working[i].Finalize()
			pivotOwner[p] = i
			survived[i] = true
		} else if slaveAt != nil {
			slaves[i].Finalize()
			zeroedSlave[i] = slaves[i]
		}
	}

	return survived, working, zeroedSlave
}

// ReduceImage reduces D_high (already converted to Lex order by the
// caller) into H', the minimal set of generators of im(D_high): one column
// per surviving pivot, carrying its original D_high bigrade. Grounded on
// matrix/impl_linear_algebra.go's per-concern kernel split: this is the
// "image" half of the two near-identical reductions S2 performs.
func ReduceImage(dHigh *firep.Matrix) (*firep.Matrix, error) {
	n := dHigh.NCols()
	survived, working, _ := reduceBigraded(n, func(i int) *mod2.Column {
		c, _ := dHigh.Column(i)
		return c
	}, nil)

	out := firep.NewMatrix(firep.Lex, dHigh.RowBound(), dHigh.XSize(), dHigh.YSize())
	for i := 0; i < n; i++ {
		if !survived[i] {
			continue
		}
		_, g := dHigh.Column(i)
		if err := out.AppendColumn(working[i], g); err != nil {
			return nil, err
		}
	}
	out.BuildIndex()

	return out, nil
}

// kernelResult is ReduceKernel's output: K itself plus a lookup from the
// original D_low column index (equivalently, K column's own pivot row in
// C_h-index space — see the doc comment on ReduceKernel) to its position
// in K.
type kernelResult struct {
	K          *firep.Matrix
	PivotToCol map[int]int
}

// ReduceKernel reduces D_low (already in colex order, per FIRep's
// invariant) via the same left-to-right sweep as ReduceImage, but tracking
// a slave identity column per D_low column instead of discarding zeroed
// columns: whenever column i's working copy zeroes out, its slave — a
// subset of D_low's column indices (i.e. of C_h's basis, the same index
// space D_low's columns enumerate) — is a cycle, hence a kernel generator.
// These are appended to K in the order they occur, which is D_low's
// existing colex order, so no extra sort is needed (spec §4.1: "kernel
// generators are emitted in colex order").
//
// Invariant: a slave column only ever receives contributions from
// earlier-indexed slaves (by construction, since pivotOwner only maps to
// already-processed indices), so slave[i] always contains i itself and
// otherwise only indices < i. Its own maximum entry is therefore always i,
// meaning K's columns already carry pairwise-distinct pivots (each column's
// own defining index) without any further reduction among themselves — the
// PivotToCol map below is exactly that index, trivially.
func ReduceKernel(dLow *firep.Matrix) (kernelResult, error) {
	n := dLow.NCols()
	_, _, zeroedSlave := reduceBigraded(n, func(i int) *mod2.Column {
		c, _ := dLow.Column(i)
		return c
	}, func(i int) *mod2.Column {
		return mod2.NewColumn(i)
	})

	k := firep.NewMatrix(firep.Colex, n, dLow.XSize(), dLow.YSize())
	pivotToCol := make(map[int]int)
	for i := 0; i < n; i++ {
		if zeroedSlave[i] == nil {
			continue
		}
		_, g := dLow.Column(i)
		if err := k.AppendColumn(zeroedSlave[i], g); err != nil {
			return kernelResult{}, err
		}
		pivotToCol[i] = k.NCols() - 1
	}
	k.BuildIndex()

	return kernelResult{K: k, PivotToCol: pivotToCol}, nil
}

// ExpressInKernelBasis reduces every column of hPrime (already converted
// to Colex order by the caller, to match K) against kr.K, producing a
// presentation matrix whose columns record which kernel generators (by
// index into kr.K) each H' column decomposes into. Every hPrime column is
// required to lie fully in ker(D_low)'s span; ErrNotInKernelSpan signals an
// internal inconsistency rather than a user-input error.
func ExpressInKernelBasis(hPrime *firep.Matrix, kr kernelResult) (*firep.Matrix, error) {
	pres := firep.NewMatrix(firep.Colex, kr.K.NCols(), hPrime.XSize(), hPrime.YSize())
	for j := 0; j < hPrime.NCols(); j++ {
		col, g := hPrime.Column(j)
		work := col.Clone()
		coeffs := mod2.NewColumn()
		for {
			p, ok := work.PeekMax()
			if !ok {
				break
			}
			kIdx, exists := kr.PivotToCol[p]
			if !exists {
				return nil, ErrNotInKernelSpan
			}
			kCol, _ := kr.K.Column(kIdx)
			work.PopMax()
			if err := work.AddPopped(kCol); err != nil {
				return nil, err
			}
			coeffs.PushRow(kIdx)
		}
		coeffs.Finalize()
		if err := pres.AppendColumn(coeffs, g); err != nil {
			return nil, err
		}
	}
	pres.BuildIndex()

	return pres, nil
}

// kernelRowGrades extracts the bigrade of each K column, in K's column
// order, for use as the presentation matrix's row-bigrade vector.
func kernelRowGrades(k *firep.Matrix) []bigrade.Bigrade {
	out := make([]bigrade.Bigrade, k.NCols())
	for i := range out {
		_, g := k.Column(i)
		out[i] = g
	}

	return out
}
