// SPDX-License-Identifier: EPL-2.0

// Package eq provides a real-time ten-band parametric equalizer built from
// a cascade of biquad (second-order IIR) filter sections.
//
// This package contains the DSP core:
//   - Biquad: a single second-order section with coefficient design for
//     peaking, low-shelf and high-shelf filter shapes
//   - Equalizer: a fixed ten-band stereo cascade with preset support
//   - AudioProcessor: a buffer-level front end for interleaved or planar
//     sample layouts
//
// # Real-time contract
//
// Biquad.Process, Equalizer.ProcessStereo and
// AudioProcessor.ProcessInterleavedStereo never allocate once their owner
// has reached its working buffer size, never block, and never perform
// I/O. Control-plane calls (SetBandGain, ApplyPreset, SetEnabled, Reset)
// are expected to be rare relative to per-sample processing and may
// briefly hold a lock, but never perform I/O either.
//
// # Band layout
//
// The ten bands are fixed at 31, 62, 125, 250, 500, 1000, 2000, 4000,
// 8000 and 16000 Hz. Band 0 is a low-shelf, band 9 is a high-shelf, and
// bands 1 through 8 are peaking filters. Q is fixed at 1.0 for every
// band; it is not exposed for external control.
//
// # Quick start
//
//	e := eq.NewEqualizer(48000)
//	e.ApplyPreset("bass_boost")
//	e.ProcessStereo(left, right, len(left))
//
// # Sample format
//
// Samples are float32 normalized to [-1.0, 1.0]. Output is always
// hard-clamped to that range after the cascade; this is a deliberate
// brick-wall limiter of last resort, not a soft clipper.
package eq
