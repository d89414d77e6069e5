package acoustic

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func verbose() {
	chk.Verbose = true
}

func Test_precision01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("precision01. working precision and defaults")

	p := Precision{MaxModes: 50}.Complete()
	chk.Int(tst, "max modes kept", p.MaxModes, 50)
	chk.Int(tst, "run", p.Run, 3)
	chk.Float64(tst, "tolerance", 1e-20, p.Tolerance, 1e-8)
	chk.Int(tst, "bits at ka 3.05", int(p.Bits(3.05, 0)), 128+8*4)
	chk.Int(tst, "bits with hint", int(p.Bits(3.05, 16)), 128+8*4+16)
	chk.Int(tst, "bits floor", int(Precision{}.Bits(0, -500)), 2)
	chk.Int(tst, "required", p.RequiredBits(), 69)
}

func Test_errors01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("errors01. advisory and fatal conditions")

	validity := &ValidityError{Model: "Andreeva_Weston", Ka: 0.6, MaxKa: 0.5}
	convergence := &ConvergenceError{Modes: 400, LastTerm: 1e-5, Tolerance: 1e-8}
	instability := &InstabilityError{Mode: 7, Ka: 3, Precision: 64, LostBits: 20, Reason: "cancellation"}
	rangeErr := &RangeError{Formula: "Coppens", Quantity: "depth", Value: 5000, Min: 0, Max: 4000, Kind: ErrInvalidEnvironment}

	if !IsAdvisory(validity) || !IsAdvisory(fmt.Errorf("wrapped: %w", convergence)) {
		tst.Errorf("validity and convergence are advisory\n")
	}
	if IsAdvisory(instability) || IsAdvisory(rangeErr) {
		tst.Errorf("instability and range errors are not advisory\n")
	}
	if !errors.Is(rangeErr, ErrInvalidEnvironment) || !errors.Is(instability, ErrNumericalInstability) {
		tst.Errorf("context errors must unwrap to their sentinels\n")
	}
	var ie *InstabilityError
	if !errors.As(fmt.Errorf("sphere: %w", instability), &ie) || ie.Mode != 7 {
		tst.Errorf("InstabilityError lost through wrapping\n")
	}
}

func Test_ts01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ts01. target strength conversions")

	chk.Float64(tst, "TS of 1 m", 1e-15, TS(complex(0, 1)), 0)
	chk.Float64(tst, "TS of 1 cm", 1e-12, TS(complex(0.006, 0.008)), -40)
	chk.Float64(tst, "TS from cross-section", 1e-12, TSFromCrossSection(1e-4), -40)
	r := NewResult(complex(0.01, 0))
	if !r.Converged || r.ModesUsed != 0 || len(r.Warnings) != 0 {
		tst.Errorf("closed-form result: %+v\n", r)
	}
	p := Parameters{Frequency: 1490 / (2 * 3.141592653589793), SoundSpeed: 1490}
	chk.Float64(tst, "wavenumber", 1e-12, p.Wavenumber(), 1)
}
