package ellint

import (
	"strconv"
	"testing"
)

func BenchmarkCel(b *testing.B) {
	b.ReportAllocs()

	for range b.N {
		sink = Cel(0.1, 4.1, 1.2, 1.1)
	}
}

func BenchmarkCelNegativeP(b *testing.B) {
	b.ReportAllocs()

	for range b.N {
		sink = Cel(0.1, -4.1, 1.2, 1.1)
	}
}

func BenchmarkEllipticK(b *testing.B) {
	// Iteration count grows as kSq approaches 1.
	for _, kSq := range []float64{0.1, 0.9, 0.999999} {
		b.Run(strconv.FormatFloat(kSq, 'g', -1, 64), func(b *testing.B) {
			b.ReportAllocs()

			for range b.N {
				sink = EllipticK(kSq)
			}
		})
	}
}

func BenchmarkEllipticE(b *testing.B) {
	b.ReportAllocs()

	for range b.N {
		sink = EllipticE(0.5)
	}
}

var sink float64
