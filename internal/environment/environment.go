package environment

import (
	"errors"
	"fmt"
	"math"

	"github.com/wildstyl3r/seaecho/internal/acoustic"
	"github.com/wildstyl3r/seaecho/internal/constants"
)

type SoundSpeedFormula string

const (
	Coppens   SoundSpeedFormula = "coppens"
	Mackenzie SoundSpeedFormula = "mackenzie"
)

const DefaultPH = 8.0

// Conditions are the measured properties of the water column at the scatterer.
type Conditions struct {
	Temperature float64 // [C]
	Salinity    float64 // [ppt]
	Depth       float64 // [m]
	Pressure    float64 // [Pa] hydrostatic, alternative to Depth
	PH          float64
}

type Options struct {
	SoundSpeed SoundSpeedFormula
}

// Environment is Conditions plus everything derived from them.
type Environment struct {
	Conditions

	Density            float64 // [kg/m^3]
	SoundSpeed         float64 // [m/s]
	Viscosity          float64 // [Pa s]
	KinematicViscosity float64 // [m^2/s]
	SurfaceTension     float64 // [N/m]
	VaporPressure      float64 // [Pa]
	SpecificHeat       float64 // [J/(kg K)]
	AmbientPressure    float64 // [Pa] absolute
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func invalid(quantity string, value float64, reason string) error {
	return fmt.Errorf("%w: %s = %g %s", acoustic.ErrInvalidEnvironment, quantity, value, reason)
}

// DepthFromPressure converts hydrostatic (gauge) pressure into depth using the
// one-atmosphere density of the water [m].
func DepthFromPressure(pressure, temperature, salinity float64) float64 {
	return pressure / (surfaceDensity(temperature, salinity) * constants.Gravity)
}

func (c Conditions) normalize() (Conditions, error) {
	for _, q := range []struct {
		name  string
		value float64
	}{{"temperature", c.Temperature}, {"salinity", c.Salinity}, {"depth", c.Depth}, {"pressure", c.Pressure}, {"pH", c.PH}} {
		if !finite(q.value) {
			return c, invalid(q.name, q.value, "is not finite")
		}
	}
	if c.Salinity < 0 {
		return c, invalid("salinity", c.Salinity, "is negative")
	}
	if c.Depth < 0 {
		return c, invalid("depth", c.Depth, "is negative")
	}
	if c.Pressure < 0 {
		return c, invalid("pressure", c.Pressure, "is negative")
	}
	if c.Pressure > 0 {
		if c.Depth > 0 {
			return c, fmt.Errorf("%w: both depth and pressure are given", acoustic.ErrInvalidEnvironment)
		}
		c.Depth = DepthFromPressure(c.Pressure, c.Temperature, c.Salinity)
		c.Pressure = 0
	}
	if c.PH == 0 {
		c.PH = DefaultPH
	}
	return c, nil
}

// Derive computes the seawater properties for c. Inputs outside a formula's validated
// range still produce a full Environment together with the joined range errors.
func Derive(c Conditions, opts Options) (Environment, error) {
	c, err := c.normalize()
	if err != nil {
		return Environment{}, err
	}

	ssRange := CoppensRange
	soundSpeed := soundSpeedCoppens
	switch opts.SoundSpeed {
	case Coppens, "":
	case Mackenzie:
		ssRange = MackenzieRange
		soundSpeed = soundSpeedMackenzie
	default:
		return Environment{}, fmt.Errorf("%w: unknown sound speed formula %q", acoustic.ErrInvalidEnvironment, opts.SoundSpeed)
	}

	T, S, z := c.Temperature, c.Salinity, c.Depth
	env := Environment{Conditions: c}
	env.Density = density(T, S, z)
	env.SoundSpeed = soundSpeed(T, S, z)
	env.Viscosity = viscosity(T, S)
	env.KinematicViscosity = env.Viscosity / env.Density
	env.SurfaceTension = surfaceTension(T, S)
	env.VaporPressure = vaporPressure(T, S)
	env.SpecificHeat = specificHeat(T, S)
	env.AmbientPressure = constants.AtmosphericPressure + env.Density*constants.Gravity*z

	var violations []error
	for _, r := range []Range{DensityRange, ssRange, ViscosityRange, SurfaceTensionRange, SpecificHeatRange} {
		if err := r.Check(c); err != nil {
			violations = append(violations, err)
		}
	}
	return env, errors.Join(violations...)
}

// Absorption returns the Ainslie-McColm absorption coefficient at frequency f [Hz] in dB/km.
// The value is returned together with a range error when the conditions leave the
// formula's validated domain.
func (e Environment) Absorption(f float64) (float64, error) {
	if !(f > 0) || !finite(f) {
		return 0, fmt.Errorf("%w: frequency = %g", acoustic.ErrInvalidScattererGeometry, f)
	}
	T, S := e.Temperature, e.Salinity
	z := e.Depth / 1000.
	fk := f / 1000.
	f2 := fk * fk

	fBoron := 0.78 * math.Sqrt(S/35.) * math.Exp(T/26.)
	fMag := 42. * math.Exp(T/17.)

	boric := 0.106 * fBoron * f2 / (f2 + fBoron*fBoron) * math.Exp((e.PH-8.)/0.56)
	magnesium := 0.52 * (1. + T/43.) * (S / 35.) * fMag * f2 / (f2 + fMag*fMag) * math.Exp(-z/6.)
	water := 0.00049 * f2 * math.Exp(-(T/27. + z/17.))
	return boric + magnesium + water, AbsorptionRange.Check(e.Conditions)
}
