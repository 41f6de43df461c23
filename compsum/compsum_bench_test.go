package compsum

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-numerics/internal/testutil"
)

func BenchmarkAdd(b *testing.B) {
	vals := testutil.MixedMagnitudes(1, 1024, 10)

	b.ReportAllocs()

	var acc Accumulator
	for i := range b.N {
		acc.Add(vals[i&1023])
	}

	sink = acc.Total()
}

func BenchmarkSum(b *testing.B) {
	sizes := []int{64, 1024, 16384, 262144}
	for _, n := range sizes {
		vals := testutil.MixedMagnitudes(1, n, 10)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				sink = Sum(vals)
			}
		})
	}
}

func BenchmarkSumNaive(b *testing.B) {
	sizes := []int{64, 1024, 16384, 262144}
	for _, n := range sizes {
		vals := testutil.MixedMagnitudes(1, n, 10)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				var s float64
				for _, v := range vals {
					s += v
				}
				sink = s
			}
		})
	}
}

func BenchmarkDot(b *testing.B) {
	sizes := []int{64, 1024, 16384}
	for _, n := range sizes {
		x := testutil.MixedMagnitudes(1, n, 6)
		y := testutil.MixedMagnitudes(2, n, 6)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 16))

			for range b.N {
				sink = Dot(x, y)
			}
		})
	}
}

var sink float64
