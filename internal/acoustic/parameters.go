package acoustic

import (
	"math"
	"math/cmplx"
)

// Parameters holds the quantities derived for one (scatterer, environment, frequency) triple.
type Parameters struct {
	Frequency       float64 // [Hz]
	Radius          float64 // [m]
	SoundSpeed      float64 // [m/s] of the surrounding water
	Density         float64 // [kg/m^3] of the surrounding water
	Viscosity       float64 // [Pa s]
	SurfaceTension  float64 // [N/m]
	AmbientPressure float64 // [Pa]
	Ka              float64

	// gas bubbles
	MinnaertFrequency  float64 // [Hz]
	ResonanceFrequency float64 // [Hz], thermal and surface tension corrected
	Damping            Damping
	ThermalX           float64 // Medwin-Clay thermal argument X
	Correction         Correction
	Gas                GasState

	DensityRatio         float64 // scatterer / water
	SoundSpeedRatio      float64 // scatterer / water (longitudinal for spheres)
	ShearSpeedRatio      float64
	CompressibilityRatio float64

	// elastic spheres
	KaLongitudinal float64
	KaShear        float64
}

// GasState describes the gas inside a bubble at depth.
type GasState struct {
	Pressure    float64 // [Pa]
	Density     float64 // [kg/m^3]
	SoundSpeed  float64 // [m/s]
	Gamma       float64 // ratio of specific heats
	Diffusivity float64 // [m^2/s] thermal
}

// Damping is the dimensionless damping constant split by loss mechanism.
type Damping struct {
	Radiation float64
	Thermal   float64
	Viscous   float64
}

func (d Damping) Total() float64 {
	return d.Radiation + d.Thermal + d.Viscous
}

// Correction holds the Medwin-Clay resonance correction factors [b, d/b, beta].
type Correction struct {
	B           float64
	DOverB      float64
	SurfaceBeta float64
	Polytropic  float64 // effective polytropic index 3*gamma*b
}

// Omega returns the angular frequency [rad/s].
func (p Parameters) Omega() float64 {
	return 2. * math.Pi * p.Frequency
}

// Wavenumber returns k in water [1/m].
func (p Parameters) Wavenumber() float64 {
	return p.Omega() / p.SoundSpeed
}

// TS converts a backscattering amplitude [m] into target strength re 1 m [dB].
func TS(amplitude complex128) float64 {
	return 20. * math.Log10(cmplx.Abs(amplitude))
}

// TSFromCrossSection converts a backscattering cross-section [m^2] into target strength [dB].
func TSFromCrossSection(sigmaBs float64) float64 {
	return 10. * math.Log10(sigmaBs)
}
