package sphere

import (
	"fmt"
	"math"
	"math/big"

	"github.com/wildstyl3r/seaecho/internal/acoustic"
	"github.com/wildstyl3r/seaecho/internal/bigmath"
	"github.com/wildstyl3r/seaecho/internal/environment"
)

// RigidTS sums the series of a rigid immovable sphere, b_n = -j_n'/h_n'. Elastic
// spheres approach it as the solid gets dense and stiff, and its high ka limit is
// the geometric 20 log10(a/2).
func RigidTS(radius float64, env environment.Environment, f float64, prec acoustic.Precision) (acoustic.Result, error) {
	if !positive(radius) || !positive(f) || !positive(env.SoundSpeed) {
		return acoustic.Result{}, fmt.Errorf("%w: radius = %g, frequency = %g, sound speed = %g",
			acoustic.ErrInvalidScattererGeometry, radius, f, env.SoundSpeed)
	}
	prec = prec.Complete()
	k := 2. * math.Pi * f / env.SoundSpeed
	ka := k * radius
	bits := prec.Bits(ka, 0)

	water := bigmath.NewBessel(bigmath.New(ka, bits), int(math.Ceil(ka))+8, bits)
	series := bigmath.Series{
		Ka:        ka,
		Prec:      bits,
		Precision: prec,
		Tables:    []*bigmath.Bessel{water},
		Mode: func(n int, t *bigmath.Tracker) (*big.Float, *big.Float) {
			dj := new(big.Float).Neg(water.DJ(n))
			return dj, water.DY(n)
		},
	}
	sum, err := series.Sum()
	if err != nil {
		return acoustic.Result{}, err
	}
	return sum.Result(k, bits, prec.Tolerance), nil
}

// GeometricTS is the high ka limit of a rigid sphere [dB].
func GeometricTS(radius float64) float64 {
	return acoustic.TSFromCrossSection(radius * radius / 4.)
}
