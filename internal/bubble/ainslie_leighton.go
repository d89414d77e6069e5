package bubble

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/wildstyl3r/seaecho/internal/acoustic"
)

func init() {
	allocators[AinslieLeightonID] = func() Model { return new(AinslieLeighton) }
}

// AinslieLeighton follows Ainslie and Leighton (2011): Prosperetti's complex
// polytropic function gives both the resonance and the thermal damping.
type AinslieLeighton struct{}

func (m *AinslieLeighton) ID() ModelID           { return AinslieLeightonID }
func (m *AinslieLeighton) Damping() DampingTerms { return AllTerms }

// Polytropic returns Prosperetti's Phi for the thermal Peclet ratio chi = D/(omega a^2).
func Polytropic(gamma, chi float64) complex128 {
	z := cmplx.Sqrt(complex(0, 1/chi))
	var zc complex128 // z coth z - 1
	switch {
	case cmplx.Abs(z) < 1e-3:
		z2 := z * z
		zc = z2/3 - z2*z2/45
	case real(z) > 20:
		zc = z - 1
	default:
		zc = z*cmplx.Cosh(z)/cmplx.Sinh(z) - 1
	}
	return complex(3*gamma, 0) / (1 - complex(3*(gamma-1)*chi, 0)*1i*zc)
}

type alTerms struct {
	omega0  float64 // [rad/s]
	viscous float64 // [1/s]
	thermal float64 // [1/s]
}

func (m *AinslieLeighton) terms(p acoustic.Parameters) alTerms {
	a := p.Radius
	omega := p.Omega()
	rhoA2 := p.Density * a * a
	phi := Polytropic(p.Gas.Gamma, p.Gas.Diffusivity/(omega*a*a))
	return alTerms{
		omega0:  math.Sqrt((p.Gas.Pressure*real(phi) - 2.*p.SurfaceTension/a) / rhoA2),
		viscous: 2. * p.Viscosity / rhoA2,
		thermal: p.Gas.Pressure * imag(phi) / (2. * rhoA2 * omega),
	}
}

// Resonance is omega0/2pi with the real part of Phi evaluated at p.Frequency [Hz].
func (m *AinslieLeighton) Resonance(p acoustic.Parameters) float64 {
	return m.terms(p).omega0 / (2. * math.Pi)
}

// ModelDamping reports 2 beta/omega per mechanism, the form the other models use.
func (m *AinslieLeighton) ModelDamping(p acoustic.Parameters) acoustic.Damping {
	t := m.terms(p)
	omega := p.Omega()
	r := t.omega0 / omega
	return acoustic.Damping{
		Radiation: p.Ka * r * r,
		Thermal:   2. * t.thermal / omega,
		Viscous:   2. * t.viscous / omega,
	}
}

func (m *AinslieLeighton) Scatter(p acoustic.Parameters, prec acoustic.Precision) (acoustic.Result, error) {
	t := m.terms(p)
	if math.IsNaN(t.omega0) {
		return acoustic.Result{}, fmt.Errorf("%w: %s resonance undefined for radius %g", acoustic.ErrInvalidScattererGeometry, m.ID(), p.Radius)
	}
	omega := p.Omega()
	beta := (t.viscous + t.thermal) / omega
	eps := p.Ka
	r := t.omega0 / omega
	im := 2.*beta + eps*r*r
	if !(im > 0) {
		return acoustic.Result{}, fmt.Errorf("%w: %s damping %g at resonance", acoustic.ErrInvalidScattererGeometry, m.ID(), im)
	}
	den := complex(r*r-1.-2.*beta*eps, -im)
	return acoustic.NewResult(complex(p.Radius, 0) / den), nil
}
