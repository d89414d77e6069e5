package bubble

import (
	"fmt"
	"math"

	"github.com/wildstyl3r/seaecho/internal/acoustic"
	"github.com/wildstyl3r/seaecho/internal/environment"
)

// MinnaertFrequency is the breathing resonance of an adiabatic bubble without surface tension [Hz].
func MinnaertFrequency(a, gamma, pressure, density float64) float64 {
	return math.Sqrt(3.*gamma*pressure/density) / (2. * math.Pi * a)
}

func RadiationDamping(ka float64) float64 {
	return ka
}

func ThermalDamping(dOverB, resonance, f float64) float64 {
	r := resonance / f
	return dOverB * r * r
}

func ViscousDamping(viscosity, density, omega, a float64) float64 {
	return 4. * viscosity / (density * omega * a * a)
}

// thermalRatios returns (sinh X + sin X)/(cosh X - cos X) and (sinh X - sin X)/(cosh X - cos X).
func thermalRatios(X float64) (r1, r2 float64) {
	switch {
	case X > 40:
		return 1, 1
	case X < 1:
		X2 := X * X
		X4 := X2 * X2
		den := X2 * (1 + X4*(1./360+X4*(1./1814400+X4/43589145600)))
		plus := X * (2 + X4*(1./60+X4*(1./181440+X4/3113510400)))
		minus := X * X2 * (1./3 + X4*(1./2520+X4*(1./19958400+X4/653837184000)))
		return plus / den, minus / den
	}
	den := math.Cosh(X) - math.Cos(X)
	return (math.Sinh(X) + math.Sin(X)) / den, (math.Sinh(X) - math.Sin(X)) / den
}

// MedwinClayCorrection returns the thermal argument X and the factors b, d/b and beta
// that shift the Minnaert resonance for heat conduction and surface tension.
func MedwinClayCorrection(a, omega float64, gas Gas, surfaceTension, pressure float64) (float64, acoustic.Correction) {
	gamma := gas.SpecificHeatRatio
	X := a * math.Sqrt(2.*omega*gas.SurfaceDensity()*gas.SpecificHeat/gas.ThermalConductivity)
	r1, r2 := thermalRatios(X)

	dOverB := 3. * (gamma - 1.) * (X*r1 - 2.) / (X*X + 3.*(gamma-1.)*X*r2)
	b := 1. / ((1. + dOverB*dOverB) * (1. + 3.*(gamma-1.)/X*r2))
	beta := 1. + 2.*surfaceTension/(pressure*a)*(1.-1./(3.*gamma*b))
	return X, acoustic.Correction{
		B:           b,
		DOverB:      dOverB,
		SurfaceBeta: beta,
		Polytropic:  3. * gamma * b,
	}
}

func checkFrequency(f float64, env environment.Environment) error {
	if !(f > 0) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: frequency = %g", acoustic.ErrInvalidScattererGeometry, f)
	}
	if !(env.SoundSpeed > 0) || !(env.Density > 0) {
		return fmt.Errorf("%w: sound speed = %g, density = %g", acoustic.ErrInvalidScattererGeometry, env.SoundSpeed, env.Density)
	}
	return nil
}

// Derive computes the scattering parameters of bubble b at frequency f [Hz].
func Derive(b Bubble, env environment.Environment, f float64) (acoustic.Parameters, error) {
	if err := b.validate(); err != nil {
		return acoustic.Parameters{}, err
	}
	if err := checkFrequency(f, env); err != nil {
		return acoustic.Parameters{}, err
	}

	a := b.Radius()
	p := acoustic.Parameters{
		Frequency:       f,
		Radius:          a,
		SoundSpeed:      env.SoundSpeed,
		Density:         env.Density,
		Viscosity:       env.Viscosity,
		SurfaceTension:  env.SurfaceTension,
		AmbientPressure: env.AmbientPressure,
		Gas:             b.GasState(env),
	}
	omega := p.Omega()
	p.Ka = p.Wavenumber() * a

	p.MinnaertFrequency = MinnaertFrequency(a, b.Gas.SpecificHeatRatio, env.AmbientPressure, env.Density)
	p.ThermalX, p.Correction = MedwinClayCorrection(a, omega, b.Gas, env.SurfaceTension, env.AmbientPressure)
	p.ResonanceFrequency = p.MinnaertFrequency * math.Sqrt(p.Correction.B*p.Correction.SurfaceBeta)

	p.Damping = acoustic.Damping{
		Radiation: RadiationDamping(p.Ka),
		Thermal:   ThermalDamping(p.Correction.DOverB, p.ResonanceFrequency, f),
		Viscous:   ViscousDamping(env.Viscosity, env.Density, omega, a),
	}
	if !(p.Damping.Total() > 0) {
		return p, fmt.Errorf("%w: non-positive damping %g", acoustic.ErrInvalidScattererGeometry, p.Damping.Total())
	}

	p.DensityRatio = p.Gas.Density / env.Density
	p.SoundSpeedRatio = p.Gas.SoundSpeed / env.SoundSpeed
	p.CompressibilityRatio = env.Density * env.SoundSpeed * env.SoundSpeed / (p.Gas.Density * p.Gas.SoundSpeed * p.Gas.SoundSpeed)
	return p, nil
}
