package bigmath

import (
	"math"
	"math/big"
)

// Bessel tabulates the spherical Bessel functions j_n, y_n and their
// derivatives at one argument for n = 0..Order().
type Bessel struct {
	X    *big.Float
	prec uint

	sin, cos *big.Float
	j, y     []*big.Float
	dj, dy   []*big.Float
}

// NewBessel fills the table at x (> 0) up to order (at least 1).
func NewBessel(x *big.Float, order int, prec uint) *Bessel {
	if order < 1 {
		order = 1
	}
	b := &Bessel{X: new(big.Float).SetPrec(prec).Set(x), prec: prec}
	b.sin, b.cos = SinCos(b.X, prec)
	b.fill(order)
	return b
}

func (b *Bessel) Order() int {
	return len(b.j) - 1
}

// Grow makes the table cover order n, doubling its size but never beyond limit.
func (b *Bessel) Grow(n, limit int) {
	if n <= b.Order() {
		return
	}
	order := 2 * b.Order()
	if order < n {
		order = n
	}
	if order > limit {
		order = limit
	}
	if order < n {
		order = n
	}
	b.fill(order)
}

func (b *Bessel) J(n int) *big.Float  { return b.j[n] }
func (b *Bessel) Y(n int) *big.Float  { return b.y[n] }
func (b *Bessel) DJ(n int) *big.Float { return b.dj[n] }
func (b *Bessel) DY(n int) *big.Float { return b.dy[n] }

// (2n+1)/x
func (b *Bessel) ratio(n int) *big.Float {
	r := Int(int64(2*n+1), b.prec)
	return r.Quo(r, b.X)
}

// millerStart returns a recurrence start index beyond order whose value is
// negligible against j_order at prec bits.
func millerStart(x float64, order int, prec uint) int {
	n := order
	if m := int(math.Ceil(x)) + 1; m > n {
		n = m
	}
	decay := 0.
	for decay > -float64(prec+10) {
		decay += math.Log2(x / float64(2*n+3))
		n++
	}
	return n + 1
}

func (b *Bessel) fill(order int) {
	x := b.X
	xf, _ := x.Float64()

	// j_n: Miller's downward recurrence normalised with sum (2n+1) j_n^2 = 1
	start := millerStart(xf, order, b.prec)
	raw := make([]*big.Float, start+1)
	raw[start] = Int(1, b.prec)
	next := Int(0, b.prec)
	for n := start; n > 0; n-- {
		v := b.ratio(n)
		v.Mul(v, raw[n])
		v.Sub(v, next)
		next = raw[n]
		raw[n-1] = v
	}
	norm := Int(0, b.prec)
	sq := new(big.Float).SetPrec(b.prec)
	for n := start; n >= 0; n-- {
		sq.Mul(raw[n], raw[n])
		sq.Mul(sq, Int(int64(2*n+1), b.prec))
		norm.Add(norm, sq)
	}
	norm.Sqrt(norm)

	// sign from the closed forms j0 = sin x/x, j1 = sin x/x^2 - cos x/x
	j0 := new(big.Float).SetPrec(b.prec).Quo(b.sin, x)
	j1 := new(big.Float).SetPrec(b.prec).Quo(j0, x)
	j1.Sub(j1, new(big.Float).SetPrec(b.prec).Quo(b.cos, x))
	dot := new(big.Float).SetPrec(b.prec).Mul(raw[0], j0)
	dot.Add(dot, new(big.Float).SetPrec(b.prec).Mul(raw[1], j1))
	if dot.Sign() < 0 {
		norm.Neg(norm)
	}

	b.j = make([]*big.Float, order+1)
	for n := range b.j {
		b.j[n] = raw[n].Quo(raw[n], norm)
	}

	// y_n: upward recurrence is stable
	if len(b.y) < 2 {
		y0 := new(big.Float).SetPrec(b.prec).Quo(b.cos, x)
		y0.Neg(y0)
		y1 := new(big.Float).SetPrec(b.prec).Quo(y0, x)
		y1.Sub(y1, new(big.Float).SetPrec(b.prec).Quo(b.sin, x))
		b.y = []*big.Float{y0, y1}
	}
	for n := len(b.y) - 1; n < order; n++ {
		v := b.ratio(n)
		v.Mul(v, b.y[n])
		v.Sub(v, b.y[n-1])
		b.y = append(b.y, v)
	}

	b.dj = b.derivatives(b.j)
	b.dy = b.derivatives(b.y)
}

// f_0' = -f_1, f_n' = f_{n-1} - (n+1)/x f_n
func (b *Bessel) derivatives(f []*big.Float) []*big.Float {
	d := make([]*big.Float, len(f))
	d[0] = new(big.Float).SetPrec(b.prec).Neg(f[1])
	for n := 1; n < len(f); n++ {
		v := Int(int64(n+1), b.prec)
		v.Quo(v, b.X)
		v.Mul(v, f[n])
		d[n] = v.Sub(f[n-1], v)
	}
	return d
}

// WronskianResidual returns |x^2 (j_n y_n' - j_n' y_n) - 1|.
func (b *Bessel) WronskianResidual(n int) float64 {
	w := new(big.Float).SetPrec(b.prec).Mul(b.j[n], b.dy[n])
	w.Sub(w, new(big.Float).SetPrec(b.prec).Mul(b.dj[n], b.y[n]))
	w.Mul(w, b.X)
	w.Mul(w, b.X)
	w.Sub(w, Int(1, b.prec))
	r, _ := w.Abs(w).Float64()
	return r
}
