package utils

import "math"

// TernarySearchMax locates the maximum of a unimodal f on [left, right] to within eps.
func TernarySearchMax(f func(float64) float64, left, right, eps float64) float64 {
	for right-left > eps {
		a := math.FMA(left, 2., right) / 3.
		b := math.FMA(right, 2., left) / 3.
		if f(a) > f(b) {
			right = b
		} else {
			left = a
		}
	}
	return (left + right) * 0.5
}

func TernarySearchMaxF(f func(float64) float64, left, right, eps float64) (x, fx float64) {
	x = TernarySearchMax(f, left, right, eps)
	return x, f(x)
}

// BracketMax returns the grid interval around the largest sample of ys,
// clamped to the grid ends.
func BracketMax(xs, ys []float64) (left, right float64) {
	i := Argmax(ys)
	left, right = xs[max(i-1, 0)], xs[min(i+1, len(xs)-1)]
	return
}

// return the point of the condition support that is not farther than eps from the support boundary
// invariant: at *right* condition must be TRUE
func BinarySearch(condition func(float64) bool, falseDom, trueDom, eps float64) (float64, float64) {
	for math.Abs(trueDom-falseDom) > eps {
		c := (falseDom + trueDom) * 0.5
		if condition(c) {
			trueDom = c
		} else {
			falseDom = c
		}
	}
	return falseDom, trueDom
}
