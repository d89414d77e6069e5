// Package bigmath holds the arbitrary-precision pieces of the modal solvers:
// pi, sine and cosine, spherical Bessel tables and cancellation accounting.
package bigmath

import (
	"math"
	"math/big"
)

// New returns v as a big.Float with the given precision.
func New(v float64, prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).SetFloat64(v)
}

// Int returns n as a big.Float with the given precision.
func Int(n int64, prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).SetInt64(n)
}

func exponent(x *big.Float) int {
	return x.MantExp(nil)
}

// arctan(1/n) by its Taylor series
func arctanInv(n int64, prec uint) *big.Float {
	power := new(big.Float).SetPrec(prec).Quo(Int(1, prec), Int(n, prec))
	sum := new(big.Float).Copy(power)
	n2 := Int(n*n, prec)
	term := new(big.Float).SetPrec(prec)
	for k := int64(1); ; k++ {
		power.Quo(power, n2)
		term.Quo(power, Int(2*k+1, prec))
		if k%2 == 1 {
			sum.Sub(sum, term)
		} else {
			sum.Add(sum, term)
		}
		if term.Sign() == 0 || exponent(term) < exponent(sum)-int(prec)-2 {
			break
		}
	}
	return sum
}

// Pi returns pi to prec bits (Machin's formula).
func Pi(prec uint) *big.Float {
	wp := prec + 16
	pi := new(big.Float).SetPrec(wp).Mul(Int(16, wp), arctanInv(5, wp))
	pi.Sub(pi, new(big.Float).SetPrec(wp).Mul(Int(4, wp), arctanInv(239, wp)))
	return pi.SetPrec(prec)
}

// taylor sums sin r and cos r for |r| <= pi/4
func taylor(r *big.Float, prec uint) (sin, cos *big.Float) {
	r2 := new(big.Float).SetPrec(prec).Mul(r, r)
	sin = new(big.Float).SetPrec(prec)
	cos = new(big.Float).SetPrec(prec)
	if r.Sign() == 0 {
		return sin, cos.SetInt64(1)
	}

	term := new(big.Float).SetPrec(prec).Set(r)
	for k := int64(1); term.Sign() != 0; k += 2 {
		sin.Add(sin, term)
		term.Mul(term, r2)
		term.Quo(term, Int(-(k+1)*(k+2), prec))
		if exponent(term) < exponent(sin)-int(prec)-2 {
			break
		}
	}

	term.SetInt64(1)
	for k := int64(0); term.Sign() != 0; k += 2 {
		cos.Add(cos, term)
		term.Mul(term, r2)
		term.Quo(term, Int(-(k+1)*(k+2), prec))
		if exponent(term) < exponent(cos)-int(prec)-2 {
			break
		}
	}
	return sin, cos
}

// SinCos returns sin x and cos x rounded to prec bits.
func SinCos(x *big.Float, prec uint) (sin, cos *big.Float) {
	wp := prec + 32
	if e := exponent(x); e > 0 {
		wp += uint(e)
	}
	halfPi := Pi(wp)
	halfPi.Quo(halfPi, Int(2, wp))

	q, _ := new(big.Float).SetPrec(wp).Quo(x, halfPi).Float64()
	k := int64(math.Round(q))
	r := new(big.Float).SetPrec(wp).Mul(Int(k, wp), halfPi)
	r.Sub(new(big.Float).SetPrec(wp).Set(x), r)

	s, c := taylor(r, wp)
	switch ((k % 4) + 4) % 4 {
	case 1:
		s, c = c, s.Neg(s)
	case 2:
		s, c = s.Neg(s), c.Neg(c)
	case 3:
		s, c = c.Neg(c), s
	}
	return s.SetPrec(prec), c.SetPrec(prec)
}
