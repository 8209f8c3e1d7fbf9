// SPDX-License-Identifier: MIT

// Package matrix - scalar helpers shared by real and complex kernels.
//
// Purpose:
//   - Close the element type over float64 and complex128 so every kernel in
//     this module is written once.
//   - Keep the handful of type-dependent primitives (conjugate, modulus,
//     real embedding) in one place.
//
// Notes:
//   - The constraint is intentionally exact (no ~float64): the helpers convert
//     back through `any`, which only round-trips for the exact types.

package matrix

import (
	"math"
	"math/cmplx"
)

// Scalar is the closed set of element types supported by Dense and by the
// factorization engine.
type Scalar interface {
	float64 | complex128
}

// Conj returns the complex conjugate of x (identity for float64).
// Complexity: O(1).
func Conj[T Scalar](x T) T {
	switch v := any(x).(type) {
	case complex128:
		return any(cmplx.Conj(v)).(T)
	default:
		return x
	}
}

// Abs returns |x|. For complex values it is the modulus computed without
// intermediate overflow.
func Abs[T Scalar](x T) float64 {
	switch v := any(x).(type) {
	case float64:
		return math.Abs(v)
	case complex128:
		return cmplx.Abs(v)
	}

	return 0
}

// Abs2 returns |x|², avoiding the square root of Abs.
func Abs2[T Scalar](x T) float64 {
	switch v := any(x).(type) {
	case float64:
		return v * v
	case complex128:
		re, im := real(v), imag(v)
		return re*re + im*im
	}

	return 0
}

// Real returns the real part of x.
func Real[T Scalar](x T) float64 {
	switch v := any(x).(type) {
	case float64:
		return v
	case complex128:
		return real(v)
	}

	return 0
}

// FromReal embeds a real number into T.
func FromReal[T Scalar](f float64) T {
	var zero T
	switch any(zero).(type) {
	case complex128:
		return any(complex(f, 0)).(T)
	default:
		return any(f).(T)
	}
}

// IsComplex reports whether T is complex128.
func IsComplex[T Scalar]() bool {
	var zero T
	_, ok := any(zero).(complex128)

	return ok
}

// IsFinite reports whether x has no NaN or infinite component.
func IsFinite[T Scalar](x T) bool {
	switch v := any(x).(type) {
	case float64:
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	case complex128:
		return !cmplx.IsNaN(v) && !cmplx.IsInf(v)
	}

	return true
}

// Norm2 returns the Euclidean norm of x, scaled to avoid overflow
// (LAPACK dnrm2 style accumulation).
// Complexity: O(len(x)).
func Norm2[T Scalar](x []T) float64 {
	acc := ssq{scale: 0, sum: 1}
	switch v := any(x).(type) {
	case []float64:
		for _, a := range v {
			acc.add(a)
		}
	case []complex128:
		for _, c := range v {
			acc.add(real(c))
			acc.add(imag(c))
		}
	}

	return acc.scale * math.Sqrt(acc.sum)
}

// ssq is a scaled sum of squares: value = scale² · sum.
type ssq struct {
	scale, sum float64
}

func (s *ssq) add(v float64) {
	if v == 0 {
		return
	}
	a := math.Abs(v)
	if s.scale < a {
		r := s.scale / a
		s.sum = 1 + s.sum*r*r
		s.scale = a
		return
	}
	r := a / s.scale
	s.sum += r * r
}

// Dot returns xᴴy (conjugating x). Lengths must match; the caller checks.
// Complexity: O(len(x)).
func Dot[T Scalar](x, y []T) T {
	var s T
	for i := range x {
		s += Conj(x[i]) * y[i]
	}

	return s
}
