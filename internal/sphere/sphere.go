// Package sphere computes the backscatter of solid elastic spheres, the usual
// echosounder calibration targets.
package sphere

import (
	"fmt"
	"math"

	"github.com/wildstyl3r/seaecho/internal/acoustic"
	"github.com/wildstyl3r/seaecho/internal/environment"
)

type Sphere struct {
	Material Material
	Radius   float64 // [m]
}

// Derive computes ka products and property ratios of s at frequency f [Hz].
func Derive(s Sphere, env environment.Environment, f float64) (acoustic.Parameters, error) {
	if !positive(s.Radius) {
		return acoustic.Parameters{}, fmt.Errorf("%w: sphere radius = %g", acoustic.ErrInvalidScattererGeometry, s.Radius)
	}
	if !positive(f) {
		return acoustic.Parameters{}, fmt.Errorf("%w: frequency = %g", acoustic.ErrInvalidScattererGeometry, f)
	}
	if !positive(env.SoundSpeed) || !positive(env.Density) {
		return acoustic.Parameters{}, fmt.Errorf("%w: sound speed = %g, density = %g", acoustic.ErrInvalidScattererGeometry, env.SoundSpeed, env.Density)
	}
	m := s.Material
	if err := m.Validate(); err != nil {
		return acoustic.Parameters{}, err
	}

	p := acoustic.Parameters{
		Frequency:       f,
		Radius:          s.Radius,
		SoundSpeed:      env.SoundSpeed,
		Density:         env.Density,
		Viscosity:       env.Viscosity,
		SurfaceTension:  env.SurfaceTension,
		AmbientPressure: env.AmbientPressure,
	}
	p.Ka = p.Wavenumber() * s.Radius
	p.DensityRatio = m.Density / env.Density
	p.SoundSpeedRatio = m.LongitudinalSpeed / env.SoundSpeed
	p.ShearSpeedRatio = m.ShearSpeed / env.SoundSpeed
	p.KaLongitudinal = p.Ka / p.SoundSpeedRatio
	p.KaShear = p.Ka / p.ShearSpeedRatio

	// bulk modulus of the solid K = rho (cL^2 - 4/3 cT^2)
	bulk := m.Density * (m.LongitudinalSpeed*m.LongitudinalSpeed - 4./3.*m.ShearSpeed*m.ShearSpeed)
	p.CompressibilityRatio = env.Density * env.SoundSpeed * env.SoundSpeed / bulk
	return p, nil
}

func maxKa(p acoustic.Parameters) float64 {
	return math.Max(p.Ka, math.Max(p.KaLongitudinal, p.KaShear))
}
