// Package ellint evaluates complete elliptic integrals in double
// precision using Bulirsch's cel algorithm, from "Numerical Calculation
// of Elliptic Integrals and Elliptic Functions. III", Numerische
// Mathematik 13, 305-315 (1969).
//
// The general form is
//
//	cel(kc, p, a, b) = ∫₀^{π/2} (a cos²φ + b sin²φ) /
//	                   ((cos²φ + p sin²φ) √(cos²φ + kc² sin²φ)) dφ
//
// evaluated by a descending Landen transformation, an AGM-type
// iteration that converges quadratically. The classical integrals of
// the first and second kind are special cases:
//
//	K := ellint.EllipticK(kSq) // = Cel(√(1-kSq), 1, 1, 1)
//	E := ellint.EllipticE(kSq) // = Cel(√(1-kSq), 1, 1, 1-kSq)
//
// kSq is the squared modulus k². K(k) diverges logarithmically as
// kSq → 1 and EllipticK(1) returns +Inf; E(k) stays finite on the
// whole closed interval [0, 1].
//
// All functions are pure and safe for concurrent use.
package ellint
