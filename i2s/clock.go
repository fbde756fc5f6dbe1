// SPDX-License-Identifier: EPL-2.0

package i2s

import "math"

// ClockConfig is the pair of integer clock dividers programmed into the
// transmitter. The sample clock is BaseClock / 32 / (Div1 * Div2), so with
// both dividers limited to six bits arbitrary rates can only be
// approximated; RealRate reports what a pair actually achieves.
type ClockConfig struct {
	Div1 uint8
	Div2 uint8
}

// maxDivider is the largest value a six-bit divider field can hold.
const maxDivider = 63

// solveDividers finds the divider pair minimizing the absolute error
// between the achieved and the requested rate, by exhaustive search over
// the 63x63 space. The inner loop starts at the outer value: the product is
// commutative, so this halves the search and pins ties to Div1 <= Div2.
// Ties beyond that go to the first pair found, keeping the result
// deterministic. Runs once per rate change.
func solveDividers(base, rate uint32) ClockConfig {
	scaled := base / 32
	best := ClockConfig{Div1: 1, Div2: 1}
	bestDelta := float64(scaled)

	for i := uint8(1); i <= maxDivider; i++ {
		for j := i; j <= maxDivider; j++ {
			delta := math.Abs(float64(scaled)/float64(i)/float64(j) - float64(rate))
			if delta < bestDelta {
				bestDelta = delta
				best = ClockConfig{Div1: i, Div2: j}
			}
		}
	}

	return best
}

// realRate computes the sample rate a divider pair actually produces.
func realRate(base uint32, clock ClockConfig) float64 {
	if clock.Div1 == 0 || clock.Div2 == 0 {
		return 0
	}
	return float64(base) / 32 / float64(clock.Div1) / float64(clock.Div2)
}
