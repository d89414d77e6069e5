package acoustic

import "math"

// Precision configures the arbitrary-precision modal series. It is passed by value to every
// solver call and is never stored globally.
type Precision struct {
	Tolerance float64 // relative magnitude of the newest term that counts as negligible
	Run       int     // consecutive negligible terms required to stop
	MaxModes  int     // hard ceiling on summed modes
	BaseBits  uint    // working precision floor [bits]
	BitsPerKa uint    // extra bits per unit of the largest ka product
	GuardBits int     // bits kept above float64 mantissa after cancellation
}

func DefaultPrecision() Precision {
	return Precision{
		Tolerance: 1e-8,
		Run:       3,
		MaxModes:  400,
		BaseBits:  128,
		BitsPerKa: 8,
		GuardBits: 16,
	}
}

// Bits returns the working precision for the given largest ka product and caller hint.
func (p Precision) Bits(maxKa float64, hint int) uint {
	bits := int(p.BaseBits) + int(p.BitsPerKa)*int(math.Ceil(maxKa)) + hint
	if bits < 2 {
		bits = 2
	}
	return uint(bits)
}

// RequiredBits is the number of significant bits each boundary-condition term must retain.
func (p Precision) RequiredBits() int {
	return 53 + p.GuardBits
}

// Complete fills zero fields with defaults.
func (p Precision) Complete() Precision {
	d := DefaultPrecision()
	if p.Tolerance <= 0 {
		p.Tolerance = d.Tolerance
	}
	if p.Run <= 0 {
		p.Run = d.Run
	}
	if p.MaxModes <= 0 {
		p.MaxModes = d.MaxModes
	}
	if p.BaseBits == 0 {
		p.BaseBits = d.BaseBits
	}
	if p.BitsPerKa == 0 {
		p.BitsPerKa = d.BitsPerKa
	}
	if p.GuardBits <= 0 {
		p.GuardBits = d.GuardBits
	}
	return p
}
