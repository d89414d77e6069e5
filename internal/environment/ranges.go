package environment

import (
	"errors"

	"github.com/wildstyl3r/seaecho/internal/acoustic"
)

type Limit struct {
	Quantity string
	Min, Max float64
}

// Range is the validated domain of one empirical formula.
type Range struct {
	Formula string
	Limits  []Limit
}

var DensityRange = Range{"UNESCO EOS-80 density", []Limit{
	{"temperature", -2, 40},
	{"salinity", 0, 42},
	{"depth", 0, 10000},
}}

var CoppensRange = Range{"Coppens (1981) sound speed", []Limit{
	{"temperature", 0, 35},
	{"salinity", 0, 45},
	{"depth", 0, 4000},
}}

var MackenzieRange = Range{"Mackenzie (1981) sound speed", []Limit{
	{"temperature", 2, 30},
	{"salinity", 25, 40},
	{"depth", 0, 8000},
}}

var ViscosityRange = Range{"Sharqawy (2010) viscosity", []Limit{
	{"temperature", 0, 180},
	{"salinity", 0, 150},
}}

var SurfaceTensionRange = Range{"Nayar (2014) surface tension", []Limit{
	{"temperature", 0, 40},
	{"salinity", 0, 131},
}}

var SpecificHeatRange = Range{"Millero (1973) specific heat", []Limit{
	{"temperature", 0, 35},
	{"salinity", 0, 40},
}}

var AbsorptionRange = Range{"Ainslie-McColm (1998) absorption", []Limit{
	{"temperature", -6, 35},
	{"salinity", 5, 50},
	{"depth", 0, 7000},
	{"pH", 7.7, 8.3},
}}

func (c Conditions) value(quantity string) float64 {
	switch quantity {
	case "temperature":
		return c.Temperature
	case "salinity":
		return c.Salinity
	case "depth":
		return c.Depth
	case "pH":
		return c.PH
	}
	return 0
}

// Check returns the joined range violations of c, or nil.
func (r Range) Check(c Conditions) error {
	var violations []error
	for _, l := range r.Limits {
		v := c.value(l.Quantity)
		if v < l.Min || v > l.Max {
			violations = append(violations, &acoustic.RangeError{
				Formula:  r.Formula,
				Quantity: l.Quantity,
				Value:    v,
				Min:      l.Min,
				Max:      l.Max,
				Kind:     acoustic.ErrInvalidEnvironment,
			})
		}
	}
	return errors.Join(violations...)
}
