package ellint

import "math"

const (
	machEps = 0x1p-52 // gap between 1.0 and the next float64
	sqrtEps = 0x1p-26

	// Convergence is quadratic; double precision needs at most ~9
	// rounds for any representable input. The cap only guards
	// termination on pathological values (NaN parameters and the
	// like), where the best available estimate is returned.
	maxIterations = 40
)

// Cel computes Bulirsch's general complete elliptic integral
// cel(kc, p, a, b). The sign of kc is irrelevant and ignored.
//
// For kc == 0 the integral diverges unless b == 0; the divergent case
// returns +Inf, the finite limit is computed by substituting a
// near-zero kc of machine epsilon.
func Cel(kc, p, a, b float64) float64 {
	if kc == 0 {
		if b != 0 {
			return math.Inf(1)
		}
		kc = machEps
	} else {
		kc = math.Abs(kc)
	}

	m := 1.0 // μ
	e := kc  // ν·μ; kc carries ν across iterations

	var f, g float64

	if p > 0 {
		p = math.Sqrt(p)
		b /= p
	} else {
		// One Landen transform maps p <= 0 onto positive p.
		f = kc * kc
		q := 1 - f
		g = 1 - p
		f -= p
		q *= b - a*p
		p = math.Sqrt(f / g)
		a = (a - b) / g
		b = -q/(g*g*p) + a*p
	}

	for range maxIterations {
		f = a
		a += b / p
		g = e / p
		b += f * g
		b += b
		p += g
		g = m
		m += kc

		// |μ - ν| > μ·√eps, robust against cancellation in 1 - ν/μ.
		if math.Abs(g-kc) <= g*sqrtEps {
			break
		}

		kc = math.Sqrt(e)
		kc += kc
		e = kc * m
	}

	return math.Pi / 2 * (a*m + b) / (m * (m + p))
}

// EllipticK returns the complete elliptic integral of the first kind
// K(k) for the squared modulus kSq = k². Valid for kSq in [0, 1);
// EllipticK(1) returns +Inf.
func EllipticK(kSq float64) float64 {
	return Cel(math.Sqrt(1-kSq), 1, 1, 1)
}

// EllipticE returns the complete elliptic integral of the second kind
// E(k) for the squared modulus kSq = k². Valid for kSq in [0, 1];
// E stays finite at kSq = 1.
func EllipticE(kSq float64) float64 {
	kcSq := 1 - kSq

	return Cel(math.Sqrt(kcSq), 1, 1, kcSq)
}
