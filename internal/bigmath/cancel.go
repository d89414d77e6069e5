package bigmath

import (
	"math/big"
)

// Tracker tracks the worst cancellation over a sequence of tracked sums.
type Tracker struct {
	Prec uint
	Lost int // [bits]
}

// Sum returns the sum of terms and records how many leading bits cancelled
// against the largest term.
func (t *Tracker) Sum(terms ...*big.Float) *big.Float {
	r := new(big.Float).SetPrec(t.Prec)
	top, seen := 0, false
	for _, term := range terms {
		r.Add(r, term)
		if term.Sign() == 0 {
			continue
		}
		if e := exponent(term); !seen || e > top {
			top, seen = e, true
		}
	}
	if !seen {
		return r
	}
	lost := int(t.Prec)
	if r.Sign() != 0 {
		lost = top - exponent(r)
	}
	if lost > t.Lost {
		t.Lost = lost
	}
	return r
}

// Diff is Sum(u, -v).
func (t *Tracker) Diff(u, v *big.Float) *big.Float {
	return t.Sum(u, new(big.Float).Neg(v))
}

// Neg negates x in place.
func Neg(x *big.Float) *big.Float {
	return x.Neg(x)
}

// Product returns the product of factors.
func (t *Tracker) Product(factors ...*big.Float) *big.Float {
	r := new(big.Float).SetPrec(t.Prec).SetInt64(1)
	for _, f := range factors {
		r.Mul(r, f)
	}
	return r
}

// Remaining returns the significant bits left after the worst cancellation.
func (t *Tracker) Remaining() int {
	return int(t.Prec) - t.Lost
}
