package bigmath

import (
	"math"
	"math/big"
	"math/cmplx"

	"github.com/wildstyl3r/seaecho/internal/acoustic"
)

// ModeFunc returns the numerator and denominator of tan(eta_n) for mode n.
// Every sum that may cancel goes through t.
type ModeFunc func(n int, t *Tracker) (num, den *big.Float)

// Series sums the partial-wave expansion sum (2n+1)(-1)^n sin(eta_n) exp(i eta_n).
type Series struct {
	Ka        float64
	Prec      uint
	Precision acoustic.Precision
	Tables    []*Bessel // grown on demand, the first one is checked against its Wronskian
	Mode      ModeFunc
}

type SeriesSum struct {
	Value     complex128
	Modes     int
	Converged bool
	LastTerm  float64 // |term| / |sum| of the last mode
}

func (s Series) instability(n int, lost int, reason string) error {
	return &acoustic.InstabilityError{
		Mode:      n,
		Ka:        s.Ka,
		Precision: s.Prec,
		LostBits:  lost,
		Reason:    reason,
	}
}

// Sum runs the series until Run consecutive modes past ka are negligible or the mode
// ceiling is hit. The ceiling is reported through Converged, instability as an error.
func (s Series) Sum() (SeriesSum, error) {
	p := s.Precision
	wronskianLimit := math.Ldexp(1, -p.RequiredBits())

	re := Int(0, s.Prec)
	im := Int(0, s.Prec)
	var out SeriesSum
	run := 0
	for n := 0; n < p.MaxModes; n++ {
		for _, table := range s.Tables {
			table.Grow(n, p.MaxModes)
		}
		if r := s.Tables[0].WronskianResidual(n); r > wronskianLimit {
			return out, s.instability(n, int(s.Prec), "Bessel Wronskian residual")
		}

		t := Tracker{Prec: s.Prec}
		num, den := s.Mode(n, &t)
		if t.Remaining() < p.RequiredBits() {
			return out, s.instability(n, t.Lost, "boundary condition cancellation")
		}
		norm := t.Product(den, den)
		norm.Add(norm, t.Product(num, num))
		if norm.Sign() == 0 {
			return out, s.instability(n, int(s.Prec), "vanishing mode determinant")
		}

		// (2n+1)(-1)^n num (den + i num) / (den^2 + num^2)
		w := Int(int64(2*n+1), s.Prec)
		if n%2 == 1 {
			w.Neg(w)
		}
		w.Quo(w.Mul(w, num), norm)
		termRe := t.Product(w, den)
		termIm := t.Product(w, num)
		re.Add(re, termRe)
		im.Add(im, termIm)

		tr, _ := termRe.Float64()
		ti, _ := termIm.Float64()
		sr, _ := re.Float64()
		si, _ := im.Float64()
		out.Value = complex(sr, si)
		out.Modes = n + 1
		out.LastTerm = cmplx.Abs(complex(tr, ti)) / cmplx.Abs(out.Value)

		if float64(n) >= s.Ka && out.LastTerm < p.Tolerance {
			run++
			if run >= p.Run {
				out.Converged = true
				return out, nil
			}
		} else {
			run = 0
		}
	}
	return out, nil
}

// Result scales the sum by 1/k into a backscattering amplitude. A series stopped
// by the mode ceiling carries a ConvergenceError warning.
func (s SeriesSum) Result(k float64, bits uint, tolerance float64) acoustic.Result {
	amplitude := s.Value / complex(k, 0)
	res := acoustic.Result{
		Amplitude: amplitude,
		TS:        acoustic.TS(amplitude),
		ModesUsed: s.Modes,
		Converged: s.Converged,
		Precision: bits,
	}
	if !s.Converged {
		res.Warnings = append(res.Warnings, &acoustic.ConvergenceError{
			Modes:     s.Modes,
			LastTerm:  s.LastTerm,
			Tolerance: tolerance,
		})
	}
	return res
}
