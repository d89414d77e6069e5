package config

import (
	"github.com/wildstyl3r/seaecho/internal/constants"
	"github.com/wildstyl3r/seaecho/internal/utils"
)

var unitToSI = map[string]float64{
	"Pa":   1,                 // [Pa]
	"kPa":  1e3,               // [Pa]
	"dbar": constants.Decibar, // [Pa]
	"bar":  constants.Bar,     // [Pa]
	"mbar": 1e2,               // [Pa]
	"m":    1,                 // [m]
	"cm":   1e-2,              // [m]
	"mm":   1e-3,              // [m]
	"um":   1e-6,              // [m]
	"Hz":   1,                 // [Hz]
	"kHz":  1e3,               // [Hz]
	"MHz":  1e6,               // [Hz]
}

type UnitClass int

const (
	Length UnitClass = iota
	Pressure
	Frequency
)

var unitsInClass = map[UnitClass][]string{
	Length:    {"um", "mm", "cm", "m"},
	Pressure:  {"mbar", "kPa", "dbar", "bar", "Pa"},
	Frequency: {"Hz", "kHz", "MHz"},
}

var classesOfUnits = map[string]UnitClass{}

func init() {
	for class, units := range unitsInClass {
		for _, unit := range units {
			classesOfUnits[unit] = class
		}
	}
}

type UnitElement = struct {
	Class UnitClass
	Power int
}

// checkUnits reports unknown units and units repeating a class, and completes the
// list with the default unit of every missing class.
func checkUnits(units []string) (extended, conflicts []string) {
	classes := map[UnitClass]struct{}{}
	for _, unit := range units {
		class, known := classesOfUnits[unit]
		if !known {
			conflicts = append(conflicts, unit)
			continue
		}
		if _, some := classes[class]; some {
			conflicts = append(conflicts, unit)
		} else {
			classes[class] = struct{}{}
			extended = append(extended, unit)
		}
	}
	for _, unit := range defaultUnits {
		if _, some := classes[classesOfUnits[unit]]; !some {
			extended = append(extended, unit)
		}
	}
	return
}

// SI converts v given in units into SI when direct is set, and from SI into units otherwise.
func SI(v float64, classes []UnitElement, units []string, direct bool) float64 {
	for i := range classes {
		uc := classes[i]
		unit := utils.Intersect(unitsInClass[uc.Class], units)
		if unit == nil {
			continue
		}
		factor := unitToSI[*unit]
		if (uc.Power > 0) != direct {
			factor = 1 / factor
		}
		for range utils.IntAbs(uc.Power) {
			v *= factor
		}
	}
	return v
}

// FromSI converts a single-class SI value into the configured output unit.
func FromSI(v float64, class UnitClass, units []string) float64 {
	return SI(v, []UnitElement{{Class: class, Power: 1}}, units, false)
}

// UnitName returns the unit of class in units.
func UnitName(class UnitClass, units []string) string {
	if unit := utils.Intersect(unitsInClass[class], units); unit != nil {
		return *unit
	}
	return defaultUnits[class]
}
