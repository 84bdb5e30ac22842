// SPDX-License-Identifier: MIT
// Package: choice/mallows
//
// normalization.go — normalization constants and probability densities.
//
// Untransformed (closed form, no enumeration):
//
//	Z(n,φ) = Π_{j=1}^{n-1} Σ_{i=0}^{j} φ^i        p(d) = φ^d / Z(n,φ)
//
// Transformed (t ≠ 0, enumeration required):
//
//	Z = Σ_k φ^(d_k^{e^t})  over all n! distances     p(d) = φ^(d^{e^t}) / Z
//
// At t = 0 both agree because d^{e^0} = d.
//
// Caching:
//   • Z(n,φ) is a pure function of two scalars and is memoized.
//   • The transformed constant depends on (φ, t, distances); it is never
//     cached here. Model caches its own culture, keyed by its immutable
//     (reference, φ, t).

package mallows

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
)

type normKey struct {
	n   int
	phi float64
}

// normCache memoizes NormalizationConstant by (n, φ).
var normCache sync.Map // normKey → float64

// ValidateDispersion reports ErrInvalidDispersion unless φ ∈ (0,1].
func ValidateDispersion(phi float64) error {
	if math.IsNaN(phi) || phi <= 0 || phi > 1 {
		return ErrInvalidDispersion
	}

	return nil
}

// validateTransformation reports ErrInvalidTransformation for NaN or ±Inf.
func validateTransformation(t float64) error {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return ErrInvalidTransformation
	}

	return nil
}

// NormalizationConstant returns the closed-form Mallows constant Z(n, φ).
// φ = 1 yields n!, the uniform case.
//
// Complexity: O(n²) on a cache miss, O(1) afterwards.
func NormalizationConstant(n int, phi float64) (float64, error) {
	if n < 1 {
		return 0, mallowsErrorf("NormalizationConstant", ErrInvalidAlternatives)
	}
	if err := ValidateDispersion(phi); err != nil {
		return 0, mallowsErrorf("NormalizationConstant", err)
	}
	key := normKey{n: n, phi: phi}
	if z, ok := normCache.Load(key); ok {
		return z.(float64), nil
	}

	z := 1.0
	for j := 1; j < n; j++ {
		var sum, term float64
		term = 1
		for i := 0; i <= j; i++ {
			sum += term
			term *= phi
		}
		z *= sum
	}
	normCache.Store(key, z)

	return z, nil
}

// PDF returns φ^d / Z(n, φ), the probability of one ranking at distance d
// from the reference.
func PDF(d, n int, phi float64) (float64, error) {
	if d < 0 {
		return 0, mallowsErrorf("PDF", ErrNegativeDistance)
	}
	z, err := NormalizationConstant(n, phi)
	if err != nil {
		return 0, mallowsErrorf("PDF", err)
	}

	return math.Pow(phi, float64(d)) / z, nil
}

// transformedWeight returns the unnormalized weight φ^(d^{e^t}).
func transformedWeight(d int, phi, t float64) float64 {
	return math.Pow(phi, math.Pow(float64(d), math.Exp(t)))
}

// TransformedNormalizationConstant returns Σ_k φ^(d_k^{e^t}) over distances,
// which must hold the distances of every preference to the reference.
//
// Complexity: O(len(distances)).
func TransformedNormalizationConstant(phi, t float64, distances []int) (float64, error) {
	if err := ValidateDispersion(phi); err != nil {
		return 0, mallowsErrorf("TransformedNormalizationConstant", err)
	}
	if err := validateTransformation(t); err != nil {
		return 0, mallowsErrorf("TransformedNormalizationConstant", err)
	}
	if len(distances) == 0 {
		return 0, mallowsErrorf("TransformedNormalizationConstant", ErrNoDistances)
	}
	weights := make([]float64, len(distances))
	for i, d := range distances {
		if d < 0 {
			return 0, mallowsErrorf("TransformedNormalizationConstant", ErrNegativeDistance)
		}
		weights[i] = transformedWeight(d, phi, t)
	}

	return floats.Sum(weights), nil
}

// TransformedPDF returns φ^(d^{e^t}) / Z where Z is computed from distances.
func TransformedPDF(d int, phi, t float64, distances []int) (float64, error) {
	if d < 0 {
		return 0, mallowsErrorf("TransformedPDF", ErrNegativeDistance)
	}
	z, err := TransformedNormalizationConstant(phi, t, distances)
	if err != nil {
		return 0, mallowsErrorf("TransformedPDF", err)
	}

	return transformedWeight(d, phi, t) / z, nil
}
