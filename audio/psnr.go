// Package audio is made to handle quality metrics for audio buffers
package audio

import (
	"math"
)

// full-scale value of a signed 16-bit sample
const maxSignalValue = 32767.0

// CalculatePSNR measures the distortion the embedding introduced, in dB.
// Identical buffers yield +Inf; mismatched lengths yield 0.
func CalculatePSNR(original, stego []int16) float64 {
	if len(original) != len(stego) {
		return 0.0
	}
	if len(original) == 0 {
		return 0.0
	}

	var mse float64
	for i := range original {
		diff := float64(original[i]) - float64(stego[i])
		mse += diff * diff
	}
	mse /= float64(len(original))

	if mse == 0 {
		return math.Inf(1)
	}

	// PSNR = 20 * log10(MAX_SIGNAL_VALUE / sqrt(MSE))
	return 20 * math.Log10(maxSignalValue/math.Sqrt(mse))
}

func ValidatePSNR(psnr float64, threshold float64) bool {
	if math.IsInf(psnr, 1) {
		return true
	}
	return psnr >= threshold
}
