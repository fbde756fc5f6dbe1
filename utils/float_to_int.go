package utils

// Float32ToInt16 converts a normalized sample to 16-bit PCM, clamping
// values outside [-1.0, 1.0].
func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}
