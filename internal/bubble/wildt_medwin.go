package bubble

import (
	"math"

	"github.com/wildstyl3r/seaecho/internal/acoustic"
)

func init() {
	allocators[WildtMedwinID] = func() Model { return new(WildtMedwin) }
}

// WildtMedwin extends the Medwin-Clay resonator to large ka: the radiation term
// scales with (fR/f)^2 and the cross-section blends into the geometric a^2/4.
type WildtMedwin struct{}

func (m *WildtMedwin) ID() ModelID           { return WildtMedwinID }
func (m *WildtMedwin) Damping() DampingTerms { return AllTerms }

func (m *WildtMedwin) ModelDamping(p acoustic.Parameters) acoustic.Damping {
	r := p.ResonanceFrequency / p.Frequency
	return acoustic.Damping{
		Radiation: p.Ka * r * r,
		Thermal:   p.Damping.Thermal,
		Viscous:   p.Damping.Viscous,
	}
}

func (m *WildtMedwin) Scatter(p acoustic.Parameters, prec acoustic.Precision) (acoustic.Result, error) {
	r := p.ResonanceFrequency / p.Frequency
	delta := m.ModelDamping(p).Total()
	ka2 := p.Ka * p.Ka
	w := math.Sqrt((1. + ka2/4.) / (1. + ka2))
	return acoustic.NewResult(resonator(p.Radius, r, delta) * complex(w, 0)), nil
}
