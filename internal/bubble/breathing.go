package bubble

import (
	"github.com/wildstyl3r/seaecho/internal/acoustic"
)

func init() {
	allocators[BreathingID] = func() Model { return new(Breathing) }
}

// Breathing is the undamped Minnaert oscillator with re-radiation loss only.
type Breathing struct{}

func (m *Breathing) ID() ModelID           { return BreathingID }
func (m *Breathing) Damping() DampingTerms { return RadiationTerm }

func (m *Breathing) Scatter(p acoustic.Parameters, prec acoustic.Precision) (acoustic.Result, error) {
	return acoustic.NewResult(resonator(p.Radius, p.MinnaertFrequency/p.Frequency, p.Damping.Radiation)), nil
}
