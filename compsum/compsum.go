// Package compsum implements second-order compensated floating-point
// summation after A. Klein, "A Generalized Kahan-Babuska-Summation-Algorithm",
// Computing 76, 279-293 (2006).
//
// A plain running sum silently drops contributions once they fall below
// the unit-in-last-place of the running total. The Accumulator carries
// two correction terms alongside the sum so that the recoverable total
// stays accurate to O(machine epsilon) regardless of how many terms of
// similar or smaller magnitude have been folded in.
package compsum

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Accumulator carries a running sum with two orders of round-off
// compensation. The intended total is Sum + FirstOrder + SecondOrder;
// no single field alone represents it. The zero value is ready to use.
//
// An Accumulator must not be shared between goroutines without external
// synchronization; the three-field update is not atomic.
type Accumulator struct {
	Sum         float64
	FirstOrder  float64 // first-order round-off correction
	SecondOrder float64 // second-order round-off correction
}

// Add folds a single contribution into the accumulator.
//
// The rounding error of Sum + contribution is recovered with Neumaier's
// magnitude-ordered correction and pushed into FirstOrder; the error of
// that fold is in turn pushed into SecondOrder. Non-finite input is not
// special-cased: a NaN contribution poisons the total, and an infinite
// one drives Sum to Inf while its correction term (Inf - Inf) turns the
// recovered Total into NaN.
func (a *Accumulator) Add(contribution float64) {
	t := a.Sum + contribution

	var c float64
	if math.Abs(a.Sum) >= math.Abs(contribution) {
		c = (a.Sum - t) + contribution
	} else {
		c = (contribution - t) + a.Sum
	}

	a.Sum = t

	t2 := a.FirstOrder + c

	var cc float64
	if math.Abs(a.FirstOrder) >= math.Abs(c) {
		cc = (a.FirstOrder - t2) + c
	} else {
		cc = (c - t2) + a.FirstOrder
	}

	a.FirstOrder = t2
	a.SecondOrder += cc
}

// AddAll folds every contribution into the accumulator, in order.
func (a *Accumulator) AddAll(contributions []float64) {
	for _, x := range contributions {
		a.Add(x)
	}
}

// Total returns the recoverable sum, Sum + FirstOrder + SecondOrder.
func (a *Accumulator) Total() float64 {
	return a.Sum + a.FirstOrder + a.SecondOrder
}

// Reset zeroes the accumulator for reuse.
func (a *Accumulator) Reset() {
	*a = Accumulator{}
}

// Sum returns the compensated sum of values.
func Sum(values []float64) float64 {
	var acc Accumulator
	acc.AddAll(values)

	return acc.Total()
}

// Dot returns the compensated dot product of x and y. If the lengths
// differ, the extra elements of the longer slice are ignored. The
// element products are formed in one block pass and then accumulated
// with second-order compensation, so the result does not degrade with
// vector length the way a naive loop does.
func Dot(x, y []float64) float64 {
	n := min(len(x), len(y))
	prod := make([]float64, n)
	vecmath.MulBlock(prod, x[:n], y[:n])

	return Sum(prod)
}
