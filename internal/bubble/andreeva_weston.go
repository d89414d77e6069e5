package bubble

import (
	"math"

	"github.com/wildstyl3r/seaecho/internal/acoustic"
)

// AndreevaWestonMaxKa bounds the small-bubble assumptions of the model.
const AndreevaWestonMaxKa = 0.5

func init() {
	allocators[AndreevaWestonID] = func() Model { return new(AndreevaWeston) }
}

// AndreevaWeston uses the surface tension corrected Minnaert resonance with the
// large-X asymptote 3(gamma-1)/X of the thermal damping.
type AndreevaWeston struct{}

func (m *AndreevaWeston) ID() ModelID           { return AndreevaWestonID }
func (m *AndreevaWeston) Damping() DampingTerms { return AllTerms }

// Resonance is the Minnaert frequency with the Laplace pressure term [Hz].
func (m *AndreevaWeston) Resonance(p acoustic.Parameters) float64 {
	a := p.Radius
	stiffness := 3.*p.Gas.Gamma*p.Gas.Pressure - 2.*p.SurfaceTension/a
	return math.Sqrt(stiffness/p.Density) / (2. * math.Pi * a)
}

func (m *AndreevaWeston) ModelDamping(p acoustic.Parameters) acoustic.Damping {
	return acoustic.Damping{
		Radiation: p.Damping.Radiation,
		Thermal:   3. * (p.Gas.Gamma - 1.) / p.ThermalX,
		Viscous:   p.Damping.Viscous,
	}
}

func (m *AndreevaWeston) Scatter(p acoustic.Parameters, prec acoustic.Precision) (acoustic.Result, error) {
	delta := m.ModelDamping(p).Total()

	var warnings []error
	if p.Ka > AndreevaWestonMaxKa {
		warnings = append(warnings, &acoustic.ValidityError{Model: string(m.ID()), Ka: p.Ka, MaxKa: AndreevaWestonMaxKa})
	}
	return acoustic.NewResult(resonator(p.Radius, m.Resonance(p)/p.Frequency, delta), warnings...), nil
}
