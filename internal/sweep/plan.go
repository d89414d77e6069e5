// Package sweep turns a unified sweep configuration into grid points and
// evaluates them in parallel.
package sweep

import (
	"errors"
	"fmt"

	"github.com/wildstyl3r/seaecho/internal/acoustic"
	"github.com/wildstyl3r/seaecho/internal/bubble"
	"github.com/wildstyl3r/seaecho/internal/config"
	"github.com/wildstyl3r/seaecho/internal/engine"
	"github.com/wildstyl3r/seaecho/internal/environment"
	"github.com/wildstyl3r/seaecho/internal/sphere"
	"github.com/wildstyl3r/seaecho/internal/utils"
)

var ErrPlan = errors.New("invalid sweep")

// Point is one grid node. Size is a radius [m].
type Point struct {
	Frequency float64 // [Hz]
	Size      float64 // [m]
}

// Plan is everything needed to evaluate a sweep.
type Plan struct {
	Name       string
	Params     config.SweepParameters
	Env        environment.Environment
	EnvWarning error // formula range violations, the environment is still usable
	Kind       engine.Kind
	Models     []bubble.ModelID
	Gas        bubble.Gas
	Material   sphere.Material
	Precision  acoustic.Precision
	Points     []Point
}

func NewPlan(name string, sp config.SweepParameters) (Plan, error) {
	plan := Plan{Name: name, Params: sp, Precision: sp.Precision.Complete()}

	env, err := engine.DeriveEnvironment(environment.Conditions{
		Temperature: sp.Temperature,
		Salinity:    sp.Salinity,
		Depth:       sp.Depth,
		Pressure:    sp.Pressure,
		PH:          sp.PH,
	}, environment.Options{SoundSpeed: environment.SoundSpeedFormula(sp.SoundSpeedFormula)})
	if err != nil && !(env.SoundSpeed > 0) {
		return plan, fmt.Errorf("%s: %w", name, err)
	}
	plan.Env, plan.EnvWarning = env, err

	switch engine.Kind(sp.Kind) {
	case engine.BubbleKind:
		plan.Kind = engine.BubbleKind
		gas, ok := bubble.GasByName(sp.Gas)
		if !ok {
			return plan, fmt.Errorf("%w: %s: unknown gas %q", ErrPlan, name, sp.Gas)
		}
		plan.Gas = gas
		if len(sp.Models) == 0 {
			return plan, fmt.Errorf("%w: %s: no models", ErrPlan, name)
		}
		for _, m := range sp.Models {
			if _, err := bubble.New(bubble.ModelID(m)); err != nil {
				return plan, fmt.Errorf("%s: %w", name, err)
			}
			plan.Models = append(plan.Models, bubble.ModelID(m))
		}
	case engine.SphereKind:
		plan.Kind = engine.SphereKind
		if sp.Density > 0 {
			plan.Material = sphere.Material{
				Name:              name,
				Density:           sp.Density,
				LongitudinalSpeed: sp.LongitudinalSpeed,
				ShearSpeed:        sp.ShearSpeed,
			}
		} else {
			m, ok := sphere.MaterialByName(sp.Material)
			if !ok {
				return plan, fmt.Errorf("%w: %s: unknown material %q", ErrPlan, name, sp.Material)
			}
			plan.Material = m
		}
		if err := plan.Material.Validate(); err != nil {
			return plan, fmt.Errorf("%s: %w", name, err)
		}
	default:
		return plan, fmt.Errorf("%w: %s: unknown kind %q", ErrPlan, name, sp.Kind)
	}

	switch sp.Sweep {
	case "frequency":
		if !(sp.Radius > 0) {
			return plan, fmt.Errorf("%w: %s: frequency sweep needs Radius or Diameter", ErrPlan, name)
		}
		frequencies, err := grid(sp.FrequencyMin, sp.FrequencyMax, sp.FrequencyStep, sp.Points, sp.Spacing)
		if err != nil {
			if !(sp.Frequency > 0) {
				return plan, fmt.Errorf("%w: %s: frequency grid: %w", ErrPlan, name, err)
			}
			frequencies = []float64{sp.Frequency}
		}
		for _, f := range frequencies {
			plan.Points = append(plan.Points, Point{Frequency: f, Size: sp.Radius})
		}
	case "size":
		if !(sp.Frequency > 0) {
			return plan, fmt.Errorf("%w: %s: size sweep needs Frequency", ErrPlan, name)
		}
		sizes, err := grid(sp.SizeMin, sp.SizeMax, sp.SizeStep, sp.Points, sp.Spacing)
		if err != nil {
			return plan, fmt.Errorf("%w: %s: size grid: %w", ErrPlan, name, err)
		}
		for _, a := range sizes {
			plan.Points = append(plan.Points, Point{Frequency: sp.Frequency, Size: a})
		}
	default:
		return plan, fmt.Errorf("%w: %s: unknown sweep %q", ErrPlan, name, sp.Sweep)
	}
	return plan, nil
}

func grid(lo, hi, step float64, points int, spacing string) ([]float64, error) {
	if !(lo > 0) || hi < lo {
		return nil, fmt.Errorf("bounds [%g, %g]", lo, hi)
	}
	var out []float64
	switch {
	case points > 0 && spacing == "log":
		out = utils.Logspace(lo, hi, points)
	case points > 0 && spacing == "linear":
		out = utils.Linspace(lo, hi, points)
	case points > 0:
		return nil, fmt.Errorf("unknown spacing %q", spacing)
	case step > 0:
		out = utils.Steps(lo, hi, step)
	default:
		return nil, errors.New("neither Points nor a step given")
	}
	return out, nil
}

// Jobs is the number of evaluations of the plan.
func (p Plan) Jobs() int {
	if p.Kind == engine.BubbleKind {
		return len(p.Points) * len(p.Models)
	}
	return len(p.Points)
}
