package sphere

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/wildstyl3r/seaecho/internal/acoustic"
	"github.com/wildstyl3r/seaecho/internal/environment"
	"github.com/wildstyl3r/seaecho/internal/utils"
)

func verbose() {
	chk.Verbose = true
}

// calibration water used by Foote (1990) for the 38.1 mm sphere
var water = environment.Environment{Density: 1026, SoundSpeed: 1490}

var calibrationSphere = Sphere{Material: TungstenCarbide, Radius: 38.1e-3 / 2}

func Test_material01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("material01. invalid materials are rejected before any series work")

	bad := []Material{
		{Name: "soft", Density: 1000, LongitudinalSpeed: 1000, ShearSpeed: 1200},
		{Name: "equal", Density: 1000, LongitudinalSpeed: 1000, ShearSpeed: 1000},
		{Name: "massless", Density: 0, LongitudinalSpeed: 5000, ShearSpeed: 3000},
		{Name: "negative", Density: 7000, LongitudinalSpeed: -5000, ShearSpeed: 3000},
		{Name: "auxetic", Density: 7000, LongitudinalSpeed: 1000, ShearSpeed: 900},
	}
	for _, m := range bad {
		_, err := Solve(Sphere{Material: m, Radius: 0.01}, water, 38e3, acoustic.DefaultPrecision(), 0)
		if !errors.Is(err, acoustic.ErrInvalidMaterial) {
			tst.Errorf("%s: expected ErrInvalidMaterial, got %v\n", m.Name, err)
		}
	}

	_, err := Solve(Sphere{Material: Copper, Radius: -1}, water, 38e3, acoustic.DefaultPrecision(), 0)
	if !errors.Is(err, acoustic.ErrInvalidScattererGeometry) {
		tst.Errorf("expected ErrInvalidScattererGeometry, got %v\n", err)
	}

	m, ok := MaterialByName("tungsten_carbide")
	if !ok || m != TungstenCarbide {
		tst.Errorf("tungsten_carbide preset not found\n")
	}
	chk.Float64(tst, "WC Poisson ratio", 1e-12, TungstenCarbide.PoissonRatio(), 0.20579340350495537)
}

func Test_solve01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve01. 38.1 mm tungsten carbide calibration sphere")

	res, err := Solve(calibrationSphere, water, 38e3, acoustic.DefaultPrecision(), 0)
	if err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}
	chk.Float64(tst, "TS at 38 kHz", 1e-6, res.TS, -42.39225022163909)
	chk.Int(tst, "modes at 38 kHz", res.ModesUsed, 14)
	if !res.Converged || len(res.Warnings) != 0 {
		tst.Errorf("expected a converged result without warnings: %v\n", res.Warnings)
	}
	if res.Precision != 128+8*4 {
		tst.Errorf("unexpected working precision %d\n", res.Precision)
	}

	res, err = Solve(calibrationSphere, water, 120e3, acoustic.DefaultPrecision(), 0)
	if err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}
	chk.Float64(tst, "TS at 120 kHz", 1e-6, res.TS, -39.4808103592739)
	chk.Int(tst, "modes at 120 kHz", res.ModesUsed, 23)

	hinted, err := Solve(calibrationSphere, water, 120e3, acoustic.DefaultPrecision(), 64)
	if err != nil {
		tst.Errorf("Solve with hint failed: %v\n", err)
		return
	}
	chk.Float64(tst, "TS independent of precision", 1e-10, hinted.TS, res.TS)
	if hinted.Precision != res.Precision+64 {
		tst.Errorf("hint not applied: %d vs %d\n", hinted.Precision, res.Precision)
	}
}

func Test_solve02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve02. copper sphere")

	res, err := Solve(Sphere{Material: Copper, Radius: 30e-3}, water, 38e3, acoustic.DefaultPrecision(), 0)
	if err != nil {
		tst.Errorf("Solve failed: %v\n", err)
		return
	}
	chk.Float64(tst, "TS", 1e-6, res.TS, -33.64032220292106)
	chk.Int(tst, "modes", res.ModesUsed, 16)
}

func Test_solve03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve03. 20 mm sphere, modes used grow with frequency")

	var modes []int
	for _, f := range utils.Linspace(10e3, 100e3, 10) {
		res, err := Solve(Sphere{Material: TungstenCarbide, Radius: 20e-3}, water, f, acoustic.DefaultPrecision(), 0)
		if err != nil {
			tst.Errorf("Solve at %g Hz failed: %v\n", f, err)
			return
		}
		modes = append(modes, res.ModesUsed)
		if f == 100e3 {
			chk.Float64(tst, "TS at 100 kHz", 1e-6, res.TS, -38.94893592736244)
		}
	}
	chk.Ints(tst, "modes", modes, []int{9, 11, 13, 14, 16, 17, 18, 19, 20, 22})
	if !utils.IsNonDecreasing(modes) {
		tst.Errorf("modes used decreased with frequency: %v\n", modes)
	}
}

func Test_solve04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve04. low precision is reported, never silently wrong")

	prec := acoustic.DefaultPrecision()
	prec.BaseBits = 32
	_, err := Solve(calibrationSphere, water, 38e3, prec, 0)
	if !errors.Is(err, acoustic.ErrNumericalInstability) {
		tst.Errorf("expected ErrNumericalInstability, got %v\n", err)
		return
	}
	var ie *acoustic.InstabilityError
	if !errors.As(err, &ie) {
		tst.Errorf("expected *InstabilityError, got %T\n", err)
		return
	}
	if ie.Precision != 32+8*4 {
		tst.Errorf("instability reports %d bits\n", ie.Precision)
	}
	if acoustic.IsAdvisory(err) {
		tst.Errorf("instability must not be advisory\n")
	}
}

func Test_solve05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve05. mode ceiling gives a partial sum with a warning")

	prev := math.Inf(1)
	for _, ceiling := range []int{6, 8, 10, 12} {
		prec := acoustic.DefaultPrecision()
		prec.MaxModes = ceiling
		res, err := Solve(calibrationSphere, water, 38e3, prec, 0)
		if err != nil {
			tst.Errorf("Solve failed: %v\n", err)
			return
		}
		chk.Int(tst, "modes", res.ModesUsed, ceiling)
		if res.Converged || len(res.Warnings) != 1 {
			tst.Errorf("expected one warning and Converged false\n")
			return
		}
		var ce *acoustic.ConvergenceError
		if !errors.As(res.Warnings[0], &ce) || !acoustic.IsAdvisory(res.Warnings[0]) {
			tst.Errorf("expected advisory ConvergenceError, got %v\n", res.Warnings[0])
			return
		}
		if ce.LastTerm >= prev {
			tst.Errorf("relative term did not decrease: %g after %g\n", ce.LastTerm, prev)
		}
		prev = ce.LastTerm
		chk.Float64(tst, "partial TS", 0.5, res.TS, -42.39225022163909)
	}
}

func Test_solve06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve06. solving derived parameters")

	p, err := Derive(calibrationSphere, water, 38e3)
	if err != nil {
		tst.Errorf("Derive failed: %v\n", err)
		return
	}
	res, err := SolveDerived(p, acoustic.DefaultPrecision(), 0)
	if err != nil {
		tst.Errorf("SolveDerived failed: %v\n", err)
		return
	}
	chk.Float64(tst, "TS", 1e-6, res.TS, -42.39225022163909)
	chk.Int(tst, "modes", res.ModesUsed, 14)

	_, err = SolveDerived(acoustic.Parameters{}, acoustic.DefaultPrecision(), 0)
	if !errors.Is(err, acoustic.ErrInvalidScattererGeometry) {
		tst.Errorf("expected ErrInvalidScattererGeometry, got %v\n", err)
	}
}

func Test_rigid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rigid01. rigid sphere tends to the geometric limit")

	a := calibrationSphere.Radius
	f := 100 * water.SoundSpeed / (2 * math.Pi * a)
	res, err := RigidTS(a, water, f, acoustic.DefaultPrecision())
	if err != nil {
		tst.Errorf("RigidTS failed: %v\n", err)
		return
	}
	chk.Float64(tst, "TS vs geometric", 0.1, res.TS, GeometricTS(a))
	if !res.Converged {
		tst.Errorf("rigid series did not converge in %d modes\n", res.ModesUsed)
	}

	_, err = RigidTS(0, water, f, acoustic.DefaultPrecision())
	if !errors.Is(err, acoustic.ErrInvalidScattererGeometry) {
		tst.Errorf("expected ErrInvalidScattererGeometry, got %v\n", err)
	}
}

func Test_rigid02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rigid02. dense stiff spheres approach the rigid sphere")

	a := calibrationSphere.Radius
	f := 20 * water.SoundSpeed / (2 * math.Pi * a)
	rigid, err := RigidTS(a, water, f, acoustic.DefaultPrecision())
	if err != nil {
		tst.Errorf("RigidTS failed: %v\n", err)
		return
	}
	chk.Float64(tst, "rigid TS at ka 20", 1e-6, rigid.TS, -40.648747249357875)

	prev := math.Inf(1)
	for _, scale := range []float64{1, 10, 100, 1000} {
		m := TungstenCarbide
		m.Name = "scaled"
		m.Density *= scale
		m.LongitudinalSpeed *= scale
		m.ShearSpeed *= scale
		res, err := Solve(Sphere{Material: m, Radius: a}, water, f, acoustic.DefaultPrecision(), 0)
		if err != nil {
			tst.Errorf("scale %g: Solve failed: %v\n", scale, err)
			return
		}
		gap := math.Abs(res.TS - rigid.TS)
		if chk.Verbose {
			tst.Logf("scale %6g: TS %.9f dB, gap %.3e dB\n", scale, res.TS, gap)
		}
		if gap >= prev {
			tst.Errorf("scale %g: gap to rigid %g dB did not shrink from %g dB\n", scale, gap, prev)
		}
		prev = gap
	}
	if prev > 1e-3 {
		tst.Errorf("stiffest sphere still %g dB from rigid\n", prev)
	}
}
