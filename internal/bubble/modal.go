package bubble

import (
	"math"
	"math/big"

	"github.com/wildstyl3r/seaecho/internal/acoustic"
	"github.com/wildstyl3r/seaecho/internal/bigmath"
)

func init() {
	allocators[ModalID] = func() Model { return new(Modal) }
}

// Modal is Anderson's (1950) fluid sphere series with the bubble gas as the fluid.
// It has no thermal or viscous loss; radiation enters through the exact solution.
type Modal struct{}

func (m *Modal) ID() ModelID           { return ModalID }
func (m *Modal) Damping() DampingTerms { return RadiationTerm }

func (m *Modal) Scatter(p acoustic.Parameters, prec acoustic.Precision) (acoustic.Result, error) {
	prec = prec.Complete()
	x := p.Ka
	h := p.SoundSpeedRatio
	xi := x / h
	bits := prec.Bits(math.Max(x, xi), 0)

	X := bigmath.New(x, bits)
	Xi := new(big.Float).SetPrec(bits).Quo(X, bigmath.New(h, bits))
	gh := bigmath.New(p.DensityRatio, bits)
	gh.Mul(gh, bigmath.New(h, bits))

	start := int(math.Ceil(x)) + 8
	water := bigmath.NewBessel(X, start, bits)
	gas := bigmath.NewBessel(Xi, start, bits)

	series := bigmath.Series{
		Ka:        x,
		Prec:      bits,
		Precision: prec,
		Tables:    []*bigmath.Bessel{water, gas},
		Mode: func(n int, t *bigmath.Tracker) (num, den *big.Float) {
			ji, dji := gas.J(n), gas.DJ(n)
			num = t.Diff(t.Product(gh, ji, water.DJ(n)), t.Product(dji, water.J(n)))
			den = t.Diff(t.Product(dji, water.Y(n)), t.Product(gh, ji, water.DY(n)))
			return num, den
		},
	}
	sum, err := series.Sum()
	if err != nil {
		return acoustic.Result{}, err
	}
	return sum.Result(p.Wavenumber(), bits, prec.Tolerance), nil
}
