package acoustic

// Result is the outcome of one scattering evaluation.
type Result struct {
	Amplitude complex128 // [m] backscattering amplitude
	TS        float64    // [dB re 1 m^2]
	ModesUsed int        // zero for closed-form models
	Converged bool
	Precision uint // [bits], zero for closed-form models
	Warnings  []error
}

// NewResult fills TS from the amplitude of a closed-form model.
func NewResult(amplitude complex128, warnings ...error) Result {
	return Result{
		Amplitude: amplitude,
		TS:        TS(amplitude),
		Converged: true,
		Warnings:  warnings,
	}
}
