package bigrade

import (
	"fmt"
	"math/big"
)

// Epsilon is the float64 proximity threshold below which two Exact values'
// double shadows are considered "close" and must be confirmed (or refuted)
// against the underlying big.Rat before a comparison result is trusted.
// See Exact.Cmp and the package-level comparator precision policy in
// arrangement's sweep (spec §4.2, §9 "never compare doubles for equality
// without the exact fallback").
const Epsilon = 1e-9

// Exact is an arbitrary-precision rational paired with a float64 "shadow"
// that accelerates comparisons. The shadow is always kept consistent with
// the rational; callers never set it independently.
type Exact struct {
	rat   *big.Rat
	shadow float64
}

// NewExactInt builds an Exact from an int64 integer.
func NewExactInt(n int64) Exact {
	r := new(big.Rat).SetInt64(n)

	return Exact{rat: r, shadow: ratFloat(r)}
}

// NewExactRat builds an Exact equal to num/den. Panics if den == 0, mirroring
// math/big.Rat.SetFrac's own precondition.
func NewExactRat(num, den int64) Exact {
	r := new(big.Rat).SetFrac64(num, den)

	return Exact{rat: r, shadow: ratFloat(r)}
}

// NewExactFromString parses a decimal or rational-literal string ("3",
// "3.5", "7/2") into an Exact, per the persisted-format decimal-string
// convention (§6).
func NewExactFromString(s string) (Exact, error) {
	r := new(big.Rat)
	if _, ok := r.SetString(s); !ok {
		return Exact{}, fmt.Errorf("bigrade: invalid exact literal %q", s)
	}

	return Exact{rat: r, shadow: ratFloat(r)}, nil
}

func ratFloat(r *big.Rat) float64 {
	f, _ := new(big.Float).SetRat(r).Float64()

	return f
}

// Float returns the float64 shadow. Safe to use for display and for
// non-topology-gating comparisons (e.g. sorting for presentation only).
func (e Exact) Float() float64 { return e.shadow }

// Rat returns a defensive copy of the underlying big.Rat.
func (e Exact) Rat() *big.Rat {
	if e.rat == nil {
		return new(big.Rat)
	}

	return new(big.Rat).Set(e.rat)
}

// String renders the exact value as "num/den" (or the bare integer when
// den == 1), matching the persisted-format decimal-string convention.
func (e Exact) String() string {
	if e.rat == nil {
		return "0"
	}

	return e.rat.RatString()
}

// IsZero reports whether the exact value is zero.
func (e Exact) IsZero() bool {
	return e.rat == nil || e.rat.Sign() == 0
}

// Add returns e + o, exact.
func (e Exact) Add(o Exact) Exact {
	r := new(big.Rat).Add(e.safeRat(), o.safeRat())

	return Exact{rat: r, shadow: ratFloat(r)}
}

// Sub returns e - o, exact.
func (e Exact) Sub(o Exact) Exact {
	r := new(big.Rat).Sub(e.safeRat(), o.safeRat())

	return Exact{rat: r, shadow: ratFloat(r)}
}

// Mul returns e * o, exact.
func (e Exact) Mul(o Exact) Exact {
	r := new(big.Rat).Mul(e.safeRat(), o.safeRat())

	return Exact{rat: r, shadow: ratFloat(r)}
}

// Neg returns -e, exact.
func (e Exact) Neg() Exact {
	r := new(big.Rat).Neg(e.safeRat())

	return Exact{rat: r, shadow: ratFloat(r)}
}

// Div returns e / o, exact. Panics if o is zero, mirroring big.Rat.Quo's own
// precondition (callers in arrangement never divide by a zero slope delta,
// since parallel dual lines never generate a crossing event).
func (e Exact) Div(o Exact) Exact {
	r := new(big.Rat).Quo(e.safeRat(), o.safeRat())

	return Exact{rat: r, shadow: ratFloat(r)}
}

func (e Exact) safeRat() *big.Rat {
	if e.rat == nil {
		return new(big.Rat)
	}

	return e.rat
}

// Cmp compares e and o per the comparator precision policy (§4.2, §9):
// the two float64 shadows are compared first; if they differ by more than
// Epsilon the float comparison is trusted outright (cheap, the common
// case). Otherwise the doubles are "close" and the exact big.Rat values
// are compared to settle the question definitively.
//
// Returns -1, 0, or +1 as e <, ==, > o.
func (e Exact) Cmp(o Exact) int {
	df := e.shadow - o.shadow
	if df > Epsilon {
		return 1
	}
	if df < -Epsilon {
		return -1
	}

	return e.safeRat().Cmp(o.safeRat())
}

// Equal reports whether e and o compare equal under Cmp.
func (e Exact) Equal(o Exact) bool { return e.Cmp(o) == 0 }

// Less reports whether e < o under Cmp.
func (e Exact) Less(o Exact) bool { return e.Cmp(o) < 0 }

// GobEncode serialises e as its decimal-string representation, matching
// the persisted-format convention ("Rationals are serialised as decimal
// strings", §6) — gob cannot reach rat/shadow directly since both are
// unexported.
func (e Exact) GobEncode() ([]byte, error) {
	return []byte(e.String()), nil
}

// GobDecode parses data back via NewExactFromString.
func (e *Exact) GobDecode(data []byte) error {
	v, err := NewExactFromString(string(data))
	if err != nil {
		return err
	}
	*e = v

	return nil
}
