package bubble

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/wildstyl3r/seaecho/internal/acoustic"
	"github.com/wildstyl3r/seaecho/internal/environment"
	"github.com/wildstyl3r/seaecho/internal/utils"
)

func verbose() {
	chk.Verbose = true
}

// 10 C, 35 ppt, 50 m
func testEnv(tst *testing.T) environment.Environment {
	env, err := environment.Derive(environment.Conditions{Temperature: 10, Salinity: 35, Depth: 50}, environment.Options{})
	if err != nil {
		tst.Fatalf("cannot derive environment: %v\n", err)
	}
	return env
}

func Test_derive01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("derive01. 2 mm air bubble at 18 kHz")

	env := testEnv(tst)
	p, err := Derive(Bubble{Diameter: 2e-3, Gas: Air}, env, 18e3)
	if err != nil {
		tst.Errorf("Derive failed: %v\n", err)
		return
	}
	chk.Float64(tst, "radius", 1e-15, p.Radius, 1e-3)
	chk.Float64(tst, "ka", 1e-12, p.Ka, 0.07587398226058553)
	chk.Float64(tst, "Minnaert", 1e-7, p.MinnaertFrequency, 7914.779064930123)
	chk.Float64(tst, "resonance", 1e-7, p.ResonanceFrequency, 7869.326656455639)
	chk.Float64(tst, "X", 1e-9, p.ThermalX, 103.02807314780856)
	chk.Float64(tst, "d/b", 1e-12, p.Correction.DOverB, 0.011289716317783758)
	chk.Float64(tst, "b", 1e-12, p.Correction.B, 0.988360812873994)
	chk.Float64(tst, "beta", 1e-12, p.Correction.SurfaceBeta, 1.0001889125770544)
	chk.Float64(tst, "radiation", 1e-12, p.Damping.Radiation, 0.07587398226058553)
	chk.Float64(tst, "thermal", 1e-12, p.Damping.Thermal, 0.0021578098224783165)
	chk.Float64(tst, "viscous", 1e-15, p.Damping.Viscous, 4.809331365182985e-05)
	chk.Float64(tst, "gas pressure", 1e-6, p.Gas.Pressure, 603779.5831980873)
	chk.Float64(tst, "gas density", 1e-9, p.Gas.Density, 7.427218999980992)
	chk.Float64(tst, "gas sound speed", 1e-8, p.Gas.SoundSpeed, 337.35730185986387)
	chk.Float64(tst, "gas diffusivity", 1e-15, p.Gas.Diffusivity, 3.443030197917691e-06)
	chk.Float64(tst, "density ratio", 1e-15, p.DensityRatio, p.Gas.Density/env.Density)
	chk.Float64(tst, "compressibility", 1e-9, p.CompressibilityRatio, env.Density*env.SoundSpeed*env.SoundSpeed/(1.4*p.Gas.Pressure))
}

func Test_derive02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("derive02. invalid input")

	env := testEnv(tst)
	for _, d := range []float64{0, -1e-3, math.NaN(), math.Inf(1)} {
		if _, err := Derive(Bubble{Diameter: d, Gas: Air}, env, 18e3); !errors.Is(err, acoustic.ErrInvalidScattererGeometry) {
			tst.Errorf("diameter %g: expected ErrInvalidScattererGeometry, got %v\n", d, err)
		}
	}
	for _, f := range []float64{0, -5, math.NaN()} {
		if _, err := Derive(Bubble{Diameter: 1e-3, Gas: Air}, env, f); !errors.Is(err, acoustic.ErrInvalidScattererGeometry) {
			tst.Errorf("frequency %g: expected ErrInvalidScattererGeometry, got %v\n", f, err)
		}
	}
	if _, err := Derive(Bubble{Diameter: 1e-3, Gas: Air}, environment.Environment{}, 18e3); !errors.Is(err, acoustic.ErrInvalidScattererGeometry) {
		tst.Errorf("zero sound speed: expected ErrInvalidScattererGeometry, got %v\n", err)
	}
	if _, err := Derive(Bubble{Diameter: 1e-3, Gas: Gas{Name: "vacuum"}}, env, 18e3); !errors.Is(err, acoustic.ErrInvalidMaterial) {
		tst.Errorf("empty gas: expected ErrInvalidMaterial, got %v\n", err)
	}
}

func Test_ratios01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ratios01. thermal ratios across branches")

	direct := func(X float64) (float64, float64) {
		den := math.Cosh(X) - math.Cos(X)
		return (math.Sinh(X) + math.Sin(X)) / den, (math.Sinh(X) - math.Sin(X)) / den
	}
	for _, X := range []float64{0.6, 0.9, 0.999} {
		r1, r2 := thermalRatios(X)
		d1, d2 := direct(X)
		chk.Float64(tst, "r1 series", 1e-10*d1, r1, d1)
		chk.Float64(tst, "r2 series", 1e-10*d2, r2, d2)
	}
	r1, r2 := direct(40)
	chk.Float64(tst, "r1 asymptote", 1e-15, r1, 1)
	chk.Float64(tst, "r2 asymptote", 1e-15, r2, 1)

	for _, X := range []float64{1e-8, 1e-3, 0.5, 1, 5, 39.9, 40.1, 1e3, 1e8} {
		r1, r2 := thermalRatios(X)
		if math.IsNaN(r1) || math.IsInf(r1, 0) || math.IsNaN(r2) || math.IsInf(r2, 0) {
			tst.Errorf("X = %g: non-finite ratios %g %g\n", X, r1, r2)
		}
	}

	// tiny bubbles are isothermal: b -> 1/gamma
	_, c := MedwinClayCorrection(1e-9, 2*math.Pi*1e3, Air, 0, 1.01e5)
	chk.Float64(tst, "isothermal b", 1e-6, c.B, 1/1.4)
}

func Test_registry01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("registry01")

	ids := IDs()
	expected := []ModelID{AinslieLeightonID, AndreevaWestonID, BreathingID, MedwinClayID, ModalID, ThuraisinghamID, WildtMedwinID}
	chk.Int(tst, "number of models", len(ids), len(expected))
	for i := range expected {
		if ids[i] != expected[i] {
			tst.Errorf("IDs()[%d] = %q, expected %q\n", i, ids[i], expected[i])
		}
		m, err := New(expected[i])
		if err != nil || m.ID() != expected[i] {
			tst.Errorf("New(%q) = %v, %v\n", expected[i], m, err)
		}
	}
	if _, err := New("Rayleigh"); !errors.Is(err, acoustic.ErrUnknownModel) {
		tst.Errorf("expected ErrUnknownModel, got %v\n", err)
	}

	d := acoustic.Damping{Radiation: 1, Thermal: 2, Viscous: 4}
	chk.Float64(tst, "breathing damping", 1e-15, (&Breathing{}).Damping().Select(d).Total(), 1)
	chk.Float64(tst, "all damping", 1e-15, AllTerms.Select(d).Total(), 7)
	if !(ThermalTerm | ViscousTerm).Has(ViscousTerm) || RadiationTerm.Has(ThermalTerm) {
		tst.Errorf("DampingTerms.Has is wrong\n")
	}
}

func Test_models01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("models01. 2 mm bubble, 18 kHz, 50 m")

	env := testEnv(tst)
	p, err := Derive(Bubble{Diameter: 2e-3, Gas: Air}, env, 18e3)
	if err != nil {
		tst.Errorf("Derive failed: %v\n", err)
		return
	}

	expected := map[ModelID]float64{
		MedwinClayID:      -58.19784860384708,
		BreathingID:       -58.17201262922409,
		WildtMedwinID:     -58.17810518434747,
		AndreevaWestonID:  -58.188341752765794,
		ThuraisinghamID:   -58.17274045715328,
		AinslieLeightonID: -58.14958635765251,
	}
	for _, id := range IDs() {
		m, _ := New(id)
		res, err := m.Scatter(p, acoustic.DefaultPrecision())
		if err != nil {
			tst.Errorf("%s failed: %v\n", id, err)
			continue
		}
		if math.IsNaN(res.TS) || math.IsInf(res.TS, 0) {
			tst.Errorf("%s: TS = %g\n", id, res.TS)
		}
		chk.Float64(tst, string(id)+" TS", 1e-12, res.TS, acoustic.TS(res.Amplitude))
		if ts, ok := expected[id]; ok {
			chk.Float64(tst, string(id), 1e-6, res.TS, ts)
		}
		// far above resonance every model is close to the geometric resonator
		chk.Float64(tst, string(id)+" vs Medwin-Clay", 0.1, res.TS, expected[MedwinClayID])
		if len(res.Warnings) != 0 {
			tst.Errorf("%s: unexpected warnings %v\n", id, res.Warnings)
		}
	}
}

func Test_models02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("models02. resonance peak")

	env := testEnv(tst)
	b := Bubble{Diameter: 2e-3, Gas: Air}
	mc := new(MedwinClay)
	ts := func(f float64) float64 {
		p, err := Derive(b, env, f)
		if err != nil {
			tst.Fatalf("Derive failed: %v\n", err)
		}
		res, _ := mc.Scatter(p, acoustic.Precision{})
		return res.TS
	}
	peak := utils.TernarySearchMax(ts, 4e3, 14e3, 0.1)
	p, _ := Derive(b, env, peak)
	if math.Abs(peak-p.ResonanceFrequency)/p.ResonanceFrequency > 0.01 {
		tst.Errorf("peak at %g Hz, resonance %g Hz\n", peak, p.ResonanceFrequency)
	}
	if ts(peak) < ts(18e3)+20 {
		tst.Errorf("no resonance enhancement: %g dB at peak\n", ts(peak))
	}

	// the denominator keeps a positive imaginary part at resonance
	p, _ = Derive(b, env, p.ResonanceFrequency)
	if !(p.Damping.Total() > 0) {
		tst.Errorf("damping %g at resonance\n", p.Damping.Total())
	}
	res, _ := mc.Scatter(p, acoustic.Precision{})
	if cmplx.Abs(res.Amplitude) > p.Radius/p.Damping.Total()*(1+1e-12) {
		tst.Errorf("|f| = %g above a/delta at resonance\n", cmplx.Abs(res.Amplitude))
	}

	al := new(AinslieLeighton)
	alTS := func(f float64) float64 {
		p, err := Derive(b, env, f)
		if err != nil {
			tst.Fatalf("Derive failed: %v\n", err)
		}
		res, err := al.Scatter(p, acoustic.Precision{})
		if err != nil {
			tst.Fatalf("Ainslie-Leighton failed at %g Hz: %v\n", f, err)
		}
		return res.TS
	}
	alPeak := utils.TernarySearchMax(alTS, 4e3, 14e3, 0.1)
	p, _ = Derive(b, env, alPeak)
	if fr := al.Resonance(p); math.Abs(alPeak-fr)/fr > 0.01 {
		tst.Errorf("Ainslie-Leighton peak at %g Hz, resonance %g Hz\n", alPeak, fr)
	}
	if alTS(alPeak) < alTS(18e3)+20 {
		tst.Errorf("no Ainslie-Leighton resonance enhancement: %g dB at peak\n", alTS(alPeak))
	}

	for _, f := range []float64{2e3, 7.8e3, 7.9e3, 30e3} {
		p, _ := Derive(b, env, f)
		d := EffectiveDamping(al, p)
		if !(d.Thermal > 0) || !(d.Viscous > 0) || !(d.Radiation > 0) {
			tst.Errorf("Ainslie-Leighton damping at %g Hz: %+v\n", f, d)
		}
	}
}

func Test_models03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("models03. Andreeva-Weston validity")

	env := testEnv(tst)
	f := 0.6 * env.SoundSpeed / (2 * math.Pi * 1e-3)
	p, err := Derive(Bubble{Diameter: 2e-3, Gas: Air}, env, f)
	if err != nil {
		tst.Errorf("Derive failed: %v\n", err)
		return
	}
	res, err := new(AndreevaWeston).Scatter(p, acoustic.Precision{})
	if err != nil {
		tst.Errorf("advisory must not be an error: %v\n", err)
		return
	}
	chk.Int(tst, "warnings", len(res.Warnings), 1)
	var verr *acoustic.ValidityError
	if !errors.As(res.Warnings[0], &verr) || !acoustic.IsAdvisory(res.Warnings[0]) {
		tst.Errorf("expected ValidityError, got %v\n", res.Warnings[0])
		return
	}
	chk.Float64(tst, "ka", 1e-12, verr.Ka, 0.6)
	chk.Float64(tst, "TS", 1e-6, res.TS, -61.33165680965871)
}

func Test_models04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("models04. breathing limits")

	env := testEnv(tst)
	b := Bubble{Diameter: 2e-3, Gas: Air}
	p, _ := Derive(b, env, 10)
	res, _ := new(Breathing).Scatter(p, acoustic.Precision{})
	if math.Abs(imag(res.Amplitude)) > 1e-6*math.Abs(real(res.Amplitude)) {
		tst.Errorf("low frequency amplitude should be real: %v\n", res.Amplitude)
	}
	p, _ = Derive(b, env, 5e6)
	wm, _ := new(WildtMedwin).Scatter(p, acoustic.Precision{})
	chk.Float64(tst, "Wildt-Medwin geometric limit", 0.2, wm.TS, 20*math.Log10(p.Radius/2))
}

func Test_modal01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("modal01. partial waves for a bubble")

	env := testEnv(tst)
	b := Bubble{Diameter: 2e-3, Gas: Air}
	for _, f := range []float64{4e3, 18e3, 30e3} {
		p, _ := Derive(b, env, f)
		res, err := new(Modal).Scatter(p, acoustic.DefaultPrecision())
		if err != nil {
			tst.Errorf("Modal failed at %g Hz: %v\n", f, err)
			continue
		}
		br, _ := new(Breathing).Scatter(p, acoustic.DefaultPrecision())
		chk.Float64(tst, "modal vs breathing", 0.2, res.TS, br.TS)
		if !res.Converged || res.ModesUsed < 2 || res.Precision < 128 {
			tst.Errorf("%g Hz: %+v\n", f, res)
		}
	}

	p, _ := Derive(b, env, 18e3)
	_, err := new(Modal).Scatter(p, acoustic.Precision{BaseBits: 24, BitsPerKa: 1})
	if !errors.Is(err, acoustic.ErrNumericalInstability) {
		tst.Errorf("expected ErrNumericalInstability, got %v\n", err)
	}
}
