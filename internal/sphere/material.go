package sphere

import (
	"fmt"
	"math"

	"github.com/wildstyl3r/seaecho/internal/acoustic"
)

// Material is an isotropic elastic solid.
type Material struct {
	Name              string
	Density           float64 // [kg/m^3]
	LongitudinalSpeed float64 // [m/s]
	ShearSpeed        float64 // [m/s]
}

// TungstenCarbide with 6% cobalt binder (MacLennan and Dunn 1984, Foote 1990).
var TungstenCarbide = Material{
	Name:              "tungsten_carbide",
	Density:           14900,
	LongitudinalSpeed: 6853,
	ShearSpeed:        4171,
}

// Copper is annealed copper at about 25 C.
var Copper = Material{
	Name:              "copper",
	Density:           8940,
	LongitudinalSpeed: 4660,
	ShearSpeed:        2325,
}

var materials = map[string]Material{
	TungstenCarbide.Name: TungstenCarbide,
	Copper.Name:          Copper,
}

func MaterialByName(name string) (Material, bool) {
	m, ok := materials[name]
	return m, ok
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// Validate rejects non-physical materials.
func (m Material) Validate() error {
	if !positive(m.Density) || !positive(m.LongitudinalSpeed) || !positive(m.ShearSpeed) {
		return fmt.Errorf("%w: %q density %g, longitudinal %g, shear %g",
			acoustic.ErrInvalidMaterial, m.Name, m.Density, m.LongitudinalSpeed, m.ShearSpeed)
	}
	if m.ShearSpeed >= m.LongitudinalSpeed {
		return fmt.Errorf("%w: %q shear speed %g not below longitudinal %g",
			acoustic.ErrInvalidMaterial, m.Name, m.ShearSpeed, m.LongitudinalSpeed)
	}
	// nu <= -1 means a non-positive bulk modulus
	if nu := m.PoissonRatio(); !(nu > -1) {
		return fmt.Errorf("%w: %q Poisson ratio %g", acoustic.ErrInvalidMaterial, m.Name, nu)
	}
	return nil
}

// PoissonRatio of the material.
func (m Material) PoissonRatio() float64 {
	cl2 := m.LongitudinalSpeed * m.LongitudinalSpeed
	ct2 := m.ShearSpeed * m.ShearSpeed
	return (cl2 - 2*ct2) / (2 * (cl2 - ct2))
}
