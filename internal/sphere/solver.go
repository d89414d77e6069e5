package sphere

import (
	"fmt"
	"math"
	"math/big"

	"github.com/wildstyl3r/seaecho/internal/acoustic"
	"github.com/wildstyl3r/seaecho/internal/bigmath"
	"github.com/wildstyl3r/seaecho/internal/environment"
)

// Solve sums the elastic sphere partial-wave series of Faran (1951) in the boundary
// form of MacLennan (1981). precisionHint adds bits on top of the configured precision.
func Solve(s Sphere, env environment.Environment, f float64, prec acoustic.Precision, precisionHint int) (acoustic.Result, error) {
	p, err := Derive(s, env, f)
	if err != nil {
		return acoustic.Result{}, err
	}
	return SolveDerived(p, prec, precisionHint)
}

// SolveDerived sums the series for parameters already returned by Derive.
func SolveDerived(p acoustic.Parameters, prec acoustic.Precision, precisionHint int) (acoustic.Result, error) {
	if !positive(p.Ka) || !positive(p.DensityRatio) || !positive(p.SoundSpeedRatio) || !positive(p.ShearSpeedRatio) {
		return acoustic.Result{}, fmt.Errorf("%w: ka = %g, ratios %g, %g, %g", acoustic.ErrInvalidScattererGeometry,
			p.Ka, p.DensityRatio, p.SoundSpeedRatio, p.ShearSpeedRatio)
	}
	prec = prec.Complete()
	bits := prec.Bits(maxKa(p), precisionHint)

	num := func(v float64) *big.Float { return bigmath.New(v, bits) }
	q := num(p.Ka)
	q1 := new(big.Float).SetPrec(bits).Quo(q, num(p.SoundSpeedRatio))
	q2 := new(big.Float).SetPrec(bits).Quo(q, num(p.ShearSpeedRatio))
	q1sq := new(big.Float).SetPrec(bits).Mul(q1, q1)
	q2sq := new(big.Float).SetPrec(bits).Mul(q2, q2)

	// alpha = 2 (rho1/rho) (cT/c)^2, beta = (rho1/rho) (cL/c)^2 - alpha
	rho := num(p.DensityRatio)
	alpha := new(big.Float).SetPrec(bits).Mul(rho, num(p.ShearSpeedRatio))
	alpha.Mul(alpha, num(2*p.ShearSpeedRatio))
	beta := new(big.Float).SetPrec(bits).Mul(rho, num(p.SoundSpeedRatio))
	beta.Mul(beta, num(p.SoundSpeedRatio))
	beta.Sub(beta, alpha)
	two := bigmath.Int(2, bits)

	start := int(math.Ceil(p.Ka)) + 8
	water := bigmath.NewBessel(q, start, bits)
	long := bigmath.NewBessel(q1, start, bits)
	shear := bigmath.NewBessel(q2, start, bits)

	series := bigmath.Series{
		Ka:        p.Ka,
		Prec:      bits,
		Precision: prec,
		Tables:    []*bigmath.Bessel{water, long, shear},
		Mode: func(n int, t *bigmath.Tracker) (*big.Float, *big.Float) {
			L := bigmath.Int(int64(n*(n+1)), bits)
			ja, dja := long.J(n), long.DJ(n)
			jb, djb := shear.J(n), shear.DJ(n)

			A2 := t.Sum(
				t.Product(bigmath.Int(int64(2*n*(n+1)-2), bits), jb),
				bigmath.Neg(t.Product(q2sq, jb)),
				bigmath.Neg(t.Product(two, q2, djb)),
			)
			A1 := t.Diff(t.Product(q1, dja), ja)
			A1.Mul(A1, t.Product(two, L))

			Pa := t.Sum(
				t.Product(beta, q1sq, ja),
				bigmath.Neg(t.Product(alpha, L, ja)),
				t.Product(alpha, q1sq, ja),
				t.Product(two, alpha, q1, dja),
			)
			Pb := t.Diff(jb, t.Product(q2, djb))

			B2 := t.Diff(t.Product(A2, Pa), t.Product(A1, alpha, Pb))
			B1 := t.Diff(t.Product(A2, q1, dja), t.Product(A1, jb))
			B1.Mul(B1, q)

			tanNum := t.Diff(t.Product(B1, water.J(n)), t.Product(B2, water.DJ(n)))
			tanDen := t.Diff(t.Product(B2, water.DY(n)), t.Product(B1, water.Y(n)))
			return tanNum, tanDen
		},
	}
	sum, err := series.Sum()
	if err != nil {
		return acoustic.Result{}, err
	}
	return sum.Result(p.Wavenumber(), bits, prec.Tolerance), nil
}
