package bubble

// Gas holds the thermodynamic properties of a bubble's contents.
type Gas struct {
	Name                string
	MolarMass           float64 // [kg/mol]
	SpecificHeatRatio   float64
	SpecificHeat        float64 // [J/(kg K)] at constant pressure
	ThermalConductivity float64 // [W/(m K)]
}

var Air = Gas{
	Name:                "air",
	MolarMass:           28.96e-3,
	SpecificHeatRatio:   1.4,
	SpecificHeat:        1005,
	ThermalConductivity: 0.0257,
}

var Methane = Gas{
	Name:                "methane",
	MolarMass:           16.04e-3,
	SpecificHeatRatio:   1.31,
	SpecificHeat:        2220,
	ThermalConductivity: 0.0343,
}

var gases = map[string]Gas{
	Air.Name:     Air,
	Methane.Name: Methane,
}

// GasByName looks up a preset.
func GasByName(name string) (Gas, bool) {
	g, ok := gases[name]
	return g, ok
}
