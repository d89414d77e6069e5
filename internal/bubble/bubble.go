package bubble

import (
	"fmt"
	"math"

	"github.com/wildstyl3r/seaecho/internal/acoustic"
	"github.com/wildstyl3r/seaecho/internal/constants"
	"github.com/wildstyl3r/seaecho/internal/environment"
)

// Bubble is a free spherical gas bubble at the depth of its environment.
type Bubble struct {
	Diameter float64 // [m]
	Gas      Gas
}

func (b Bubble) Radius() float64 {
	return b.Diameter / 2
}

func (b Bubble) validate() error {
	if !(b.Diameter > 0) || math.IsInf(b.Diameter, 0) {
		return fmt.Errorf("%w: bubble diameter = %g", acoustic.ErrInvalidScattererGeometry, b.Diameter)
	}
	g := b.Gas
	if !(g.MolarMass > 0) || !(g.SpecificHeatRatio > 1) || !(g.SpecificHeat > 0) || !(g.ThermalConductivity > 0) {
		return fmt.Errorf("%w: gas %q", acoustic.ErrInvalidMaterial, g.Name)
	}
	return nil
}

// GasState returns pressure, density and sound speed of the gas at depth.
// Pressure balances hydrostatics and surface tension less the vapour pressure.
func (b Bubble) GasState(env environment.Environment) acoustic.GasState {
	a := b.Radius()
	g := b.Gas
	p := env.AmbientPressure + 2.*env.SurfaceTension/a - env.VaporPressure
	rho := p * g.MolarMass / (constants.GasConstant * (env.Temperature + constants.ZeroCelsius))
	return acoustic.GasState{
		Pressure:    p,
		Density:     rho,
		SoundSpeed:  math.Sqrt(g.SpecificHeatRatio * p / rho),
		Gamma:       g.SpecificHeatRatio,
		Diffusivity: g.ThermalConductivity / (rho * g.SpecificHeat),
	}
}

// SurfaceDensity is the gas density at one atmosphere and the reference temperature [kg/m^3].
func (g Gas) SurfaceDensity() float64 {
	return constants.AtmosphericPressure * g.MolarMass /
		(constants.GasConstant * (constants.ReferenceGasTemperature + constants.ZeroCelsius))
}
