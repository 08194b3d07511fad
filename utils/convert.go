// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts a normalized float32 sample in [-1, 1] to a
// signed 16-bit PCM value, clamping out-of-range input.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// Float64ToInt16 converts a normalized float64 sample in [-1, 1] to a
// signed 16-bit PCM value, clamping out-of-range input.
func Float64ToInt16(x float64) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * 32767.0)
}

// Int16ToFloat64 converts a signed 16-bit PCM value to a normalized
// float64 sample in [-1, 1).
func Int16ToFloat64(v int16) float64 {
	return float64(v) / 32768.0
}
