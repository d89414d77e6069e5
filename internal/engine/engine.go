// Package engine is the entry point for callers: it derives environments and turns
// one (scatterer, environment, frequency) triple into a Record.
package engine

import (
	"fmt"
	"slices"

	"github.com/wildstyl3r/seaecho/internal/acoustic"
	"github.com/wildstyl3r/seaecho/internal/bubble"
	"github.com/wildstyl3r/seaecho/internal/environment"
	"github.com/wildstyl3r/seaecho/internal/sphere"
)

type Kind string

const (
	BubbleKind Kind = "bubble"
	SphereKind Kind = "sphere"
)

// SphereModel is the model name carried by sphere records.
const SphereModel = "Elastic_Sphere"

// Record is the result of one sweep point. Build it with the Compute functions
// and treat it as read-only.
type Record struct {
	Frequency          float64 // [Hz]
	Kind               Kind
	Model              string
	Size               float64 // [m] radius
	Ka                 float64
	TS                 float64    // [dB re 1 m^2]
	Amplitude          complex128 // [m]
	ResonanceFrequency float64    // [Hz], bubbles only
	Damping            acoustic.Damping
	ModesUsed          int
	Converged          bool
	Precision          uint // [bits]
	Warnings           []error
}

func DeriveEnvironment(c environment.Conditions, opts environment.Options) (environment.Environment, error) {
	return environment.Derive(c, opts)
}

// ComputeBubbleTS evaluates bubble model id. Advisory conditions come back in
// Record.Warnings with a nil error.
func ComputeBubbleTS(id bubble.ModelID, b bubble.Bubble, env environment.Environment, f float64, prec acoustic.Precision) (Record, error) {
	m, err := bubble.New(id)
	if err != nil {
		return Record{}, err
	}
	p, err := bubble.Derive(b, env, f)
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", id, err)
	}
	res, err := m.Scatter(p, prec.Complete())
	if err != nil {
		return Record{}, fmt.Errorf("%s at %g Hz: %w", id, f, err)
	}

	resonance := p.ResonanceFrequency
	if r, ok := m.(interface {
		Resonance(acoustic.Parameters) float64
	}); ok {
		resonance = r.Resonance(p)
	}
	return Record{
		Frequency:          f,
		Kind:               BubbleKind,
		Model:              string(id),
		Size:               p.Radius,
		Ka:                 p.Ka,
		TS:                 res.TS,
		Amplitude:          res.Amplitude,
		ResonanceFrequency: resonance,
		Damping:            bubble.EffectiveDamping(m, p),
		ModesUsed:          res.ModesUsed,
		Converged:          res.Converged,
		Precision:          res.Precision,
		Warnings:           slices.Clone(res.Warnings),
	}, nil
}

// ComputeSphereTS runs the elastic solver. precisionHint adds working bits, for
// retrying after an instability error.
func ComputeSphereTS(s sphere.Sphere, env environment.Environment, f float64, prec acoustic.Precision, precisionHint int) (Record, error) {
	p, err := sphere.Derive(s, env, f)
	if err != nil {
		return Record{}, err
	}
	res, err := sphere.SolveDerived(p, prec, precisionHint)
	if err != nil {
		return Record{}, fmt.Errorf("%s sphere at %g Hz: %w", s.Material.Name, f, err)
	}
	return Record{
		Frequency: f,
		Kind:      SphereKind,
		Model:     SphereModel,
		Size:      p.Radius,
		Ka:        p.Ka,
		TS:        res.TS,
		Amplitude: res.Amplitude,
		ModesUsed: res.ModesUsed,
		Converged: res.Converged,
		Precision: res.Precision,
		Warnings:  slices.Clone(res.Warnings),
	}, nil
}

// ComputeSphereTSRetry doubles the precision hint after each instability error,
// up to retries extra attempts.
func ComputeSphereTSRetry(s sphere.Sphere, env environment.Environment, f float64, prec acoustic.Precision, retries int) (Record, error) {
	hint := 0
	for {
		rec, err := ComputeSphereTS(s, env, f, prec, hint)
		if err == nil || retries <= 0 || !isInstability(err) {
			return rec, err
		}
		retries--
		hint = max(2*hint, int(prec.Complete().BaseBits))
	}
}

// Models lists the registered bubble models in natural order.
func Models() []bubble.ModelID {
	return bubble.IDs()
}
