package bubble

import (
	"fmt"

	"github.com/wildstyl3r/seaecho/internal/acoustic"
)

func init() {
	allocators[MedwinClayID] = func() Model { return new(MedwinClay) }
}

// MedwinClay is the damped resonator with the thermal and surface tension corrected
// resonance of Medwin and Clay (1998).
type MedwinClay struct{}

func (m *MedwinClay) ID() ModelID           { return MedwinClayID }
func (m *MedwinClay) Damping() DampingTerms { return AllTerms }

func (m *MedwinClay) Scatter(p acoustic.Parameters, prec acoustic.Precision) (acoustic.Result, error) {
	delta := m.Damping().Select(p.Damping).Total()
	if !(delta > 0) {
		return acoustic.Result{}, fmt.Errorf("%w: %s damping %g at resonance", acoustic.ErrInvalidScattererGeometry, m.ID(), delta)
	}
	return acoustic.NewResult(resonator(p.Radius, p.ResonanceFrequency/p.Frequency, delta)), nil
}
