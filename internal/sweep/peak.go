package sweep

import (
	"math"

	"github.com/wildstyl3r/seaecho/internal/bubble"
	"github.com/wildstyl3r/seaecho/internal/engine"
	"github.com/wildstyl3r/seaecho/internal/sphere"
	"github.com/wildstyl3r/seaecho/internal/utils"
)

// Peak is the refined maximum of TS along the swept variable. Low and High are the
// half-power (-3 dB) points, zero when the grid ends before TS falls that far.
type Peak struct {
	Model string
	At    float64 // frequency [Hz] or radius [m]
	TS    float64 // [dB]
	Low   float64 `toml:",omitempty"`
	High  float64 `toml:",omitempty"`
}

// Width is High - Low, zero unless both half-power points were found.
func (p Peak) Width() float64 {
	if p.Low == 0 || p.High == 0 {
		return 0
	}
	return p.High - p.Low
}

func sphereAt(plan Plan, radius float64) sphere.Sphere {
	return sphere.Sphere{Material: plan.Material, Radius: radius}
}

// FindPeaks brackets the largest TS of every model on the grid and refines it with
// a ternary search to within a thousandth of the grid spacing. The half-power points
// are then located by bisection between the peak and the grid ends.
func FindPeaks(plan Plan, rows []Row) []Peak {
	if len(plan.Points) < 3 {
		return nil
	}
	bySize := plan.Params.Sweep == "size"
	models := len(rows) / len(plan.Points)
	var peaks []Peak
	for j := range models {
		xs := make([]float64, len(plan.Points))
		ys := make([]float64, len(plan.Points))
		for i, p := range plan.Points {
			xs[i] = p.Frequency
			if bySize {
				xs[i] = p.Size
			}
			ys[i] = math.Inf(-1)
			if r := rows[i*models+j]; r.Err == nil {
				ys[i] = r.Record.TS
			}
		}
		model := rows[j].Model
		ts := func(x float64) float64 {
			point := plan.Points[0]
			if bySize {
				point.Size = x
			} else {
				point.Frequency = x
			}
			rec, err := evaluateRecord(plan, point, model)
			if err != nil {
				return math.Inf(-1)
			}
			return rec.TS
		}
		left, right := utils.BracketMax(xs, ys)
		x, fx := utils.TernarySearchMaxF(ts, left, right, (right-left)*1e-3)
		peak := Peak{Model: model, At: x, TS: fx}

		half := fx - 3.
		above := func(x float64) bool { return ts(x) >= half }
		eps := (right - left) * 1e-4
		if first := xs[0]; ys[0] < half && first < x {
			lo, hi := utils.BinarySearch(above, first, x, eps)
			peak.Low = (lo + hi) * 0.5
		}
		if last := xs[len(xs)-1]; ys[len(ys)-1] < half && last > x {
			lo, hi := utils.BinarySearch(above, last, x, eps)
			peak.High = (lo + hi) * 0.5
		}
		peaks = append(peaks, peak)
	}
	return peaks
}

func evaluateRecord(plan Plan, point Point, model string) (engine.Record, error) {
	if plan.Kind == engine.BubbleKind {
		b := bubble.Bubble{Diameter: 2 * point.Size, Gas: plan.Gas}
		return engine.ComputeBubbleTS(bubble.ModelID(model), b, plan.Env, point.Frequency, plan.Precision)
	}
	return engine.ComputeSphereTSRetry(sphereAt(plan, point.Size), plan.Env, point.Frequency, plan.Precision, plan.Params.Retries)
}
