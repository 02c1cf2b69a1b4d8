// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float64ToInt16 quantises a normalised sample to 16-bit PCM. Values outside
// [-1, 1] are clamped, the rest are scaled by 32767 and rounded half to even.
func Float64ToInt16(x float64) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for both signs to keep the scale symmetric
	return int16(math.RoundToEven(x * 32767.0))
}
