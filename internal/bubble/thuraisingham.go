package bubble

import (
	"math"
	"math/cmplx"

	"github.com/wildstyl3r/seaecho/internal/acoustic"
)

func init() {
	allocators[ThuraisinghamID] = func() Model { return new(Thuraisingham) }
}

// Thuraisingham is the exact monopole solution with a complex bubble stiffness.
// It stays finite from the resonance region up to ka of order one.
type Thuraisingham struct{}

func (m *Thuraisingham) ID() ModelID           { return ThuraisinghamID }
func (m *Thuraisingham) Damping() DampingTerms { return AllTerms }

func (m *Thuraisingham) Scatter(p acoustic.Parameters, prec acoustic.Precision) (acoustic.Result, error) {
	x := p.Ka
	r := p.ResonanceFrequency / p.Frequency
	s := complex(r*r, -(p.Damping.Thermal + p.Damping.Viscous))

	sin, cos := math.Sin(x), math.Cos(x)
	num := complex(sin, 0) + s*complex(x*cos-sin, 0)
	den := s*complex(x, 0) + 1i*(s-1)
	a0 := -num * cmplx.Exp(complex(0, -x)) / den
	return acoustic.NewResult(-1i * a0 / complex(p.Wavenumber(), 0)), nil
}

func (m *Thuraisingham) ModelDamping(p acoustic.Parameters) acoustic.Damping {
	r := p.ResonanceFrequency / p.Frequency
	return acoustic.Damping{
		Radiation: p.Ka * r * r,
		Thermal:   p.Damping.Thermal,
		Viscous:   p.Damping.Viscous,
	}
}
