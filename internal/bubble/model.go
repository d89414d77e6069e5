package bubble

import (
	"fmt"
	"sort"

	"github.com/facette/natsort"
	"github.com/wildstyl3r/seaecho/internal/acoustic"
)

type ModelID string

const (
	MedwinClayID      ModelID = "Medwin_Clay"
	BreathingID       ModelID = "Breathing"
	AinslieLeightonID ModelID = "Ainslie_Leighton"
	AndreevaWestonID  ModelID = "Andreeva_Weston"
	WildtMedwinID     ModelID = "Wildt_Medwin"
	ThuraisinghamID   ModelID = "Thuraisingham"
	ModalID           ModelID = "Modal"
)

// DampingTerms is the set of loss mechanisms a model accounts for.
type DampingTerms uint8

const (
	RadiationTerm DampingTerms = 1 << iota
	ThermalTerm
	ViscousTerm

	AllTerms = RadiationTerm | ThermalTerm | ViscousTerm
)

func (d DampingTerms) Has(t DampingTerms) bool {
	return d&t == t
}

// Select keeps only the terms in d.
func (d DampingTerms) Select(dm acoustic.Damping) acoustic.Damping {
	var out acoustic.Damping
	if d.Has(RadiationTerm) {
		out.Radiation = dm.Radiation
	}
	if d.Has(ThermalTerm) {
		out.Thermal = dm.Thermal
	}
	if d.Has(ViscousTerm) {
		out.Viscous = dm.Viscous
	}
	return out
}

// Model computes the backscattering amplitude of a bubble from its derived parameters.
type Model interface {
	ID() ModelID
	Damping() DampingTerms
	Scatter(p acoustic.Parameters, prec acoustic.Precision) (acoustic.Result, error)
}

type dampingReporter interface {
	ModelDamping(p acoustic.Parameters) acoustic.Damping
}

// EffectiveDamping returns the damping terms m actually applies to p.
func EffectiveDamping(m Model, p acoustic.Parameters) acoustic.Damping {
	if r, ok := m.(dampingReporter); ok {
		return r.ModelDamping(p)
	}
	return m.Damping().Select(p.Damping)
}

// allocators holds all available models
var allocators = map[ModelID]func() Model{}

// New returns the model registered under id.
func New(id ModelID) (Model, error) {
	allocator, ok := allocators[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", acoustic.ErrUnknownModel, id)
	}
	return allocator(), nil
}

// IDs returns the registered identifiers in natural order.
func IDs() []ModelID {
	names := make([]string, 0, len(allocators))
	for id := range allocators {
		names = append(names, string(id))
	}
	sort.Slice(names, func(i, j int) bool {
		return natsort.Compare(names[i], names[j])
	})
	ids := make([]ModelID, len(names))
	for i, n := range names {
		ids[i] = ModelID(n)
	}
	return ids
}

// resonator is the single-degree-of-freedom amplitude a / ((fr/f)^2 - 1 - i delta).
func resonator(a, ratio, delta float64) complex128 {
	return complex(a, 0) / complex(ratio*ratio-1., -delta)
}
