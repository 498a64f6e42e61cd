package updater

import "github.com/tildedata/mphom/mod2"

// DebugVerify gates an expensive dense D = R*U sanity check (spec
// §4.4's implied invariant, never user-facing): off by default since
// Verify is O(n^2) and only useful while developing the transposition
// logic itself.
var DebugVerify = false

// Verify checks both matrices' D = R*U invariant against the pristine
// boundary matrices under the current permutation, returning
// ErrInvariantViolation if either fails. A no-op, always returning nil,
// unless DebugVerify is true.
func Verify(s *State) error {
	if !DebugVerify {
		return nil
	}
	if err := verifyOne(s.pristineLow, s.PermLow, s.RLow, s.ULow); err != nil {
		return err
	}

	return verifyOne(s.pristineHigh, s.PermHigh, s.RHigh, s.UHigh)
}

func verifyOne(pristine []*mod2.Column, perm []int, r, u *Matrix) error {
	for j, p := range perm {
		recon := pristine[p].Clone()
		for _, k := range u.Cols[j].Rows() {
			recon.Add(r.Cols[k])
		}
		recon.Finalize()

		got := r.Cols[j].Clone()
		got.Finalize()

		if !columnsEqual(recon, got) {
			return ErrInvariantViolation
		}
	}

	return nil
}

func columnsEqual(a, b *mod2.Column) bool {
	ar, br := a.Rows(), b.Rows()
	if len(ar) != len(br) {
		return false
	}
	for i := range ar {
		if ar[i] != br[i] {
			return false
		}
	}

	return true
}
