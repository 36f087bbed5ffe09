// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// DecibelToAmplitude converts a gain in decibels to the amplitude term A
// used by the Audio-EQ-Cookbook peaking and shelving filter derivations:
// A = 10^(gainDB/40).
func DecibelToAmplitude(gainDB float64) float64 {
	return math.Pow(10, gainDB/40)
}
