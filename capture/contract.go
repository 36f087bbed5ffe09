// SPDX-License-Identifier: EPL-2.0

// Package capture adapts a running audio stream into a live equalizer
// session. It models the boundary between an external capture source
// (a live device loopback, a file, an RTSP feed) and the real-time
// eq.AudioProcessor core: the Adapter interface is the narrow surface a
// capture implementation needs to drive the processor and expose its
// control surface to callers, without requiring the eq package to know
// anything about where frames come from.
package capture

import "github.com/ik5/pareq/eq"

// Adapter drives an eq.AudioProcessor from some external audio source
// and exposes the subset of the processor's control surface that a
// capture session's caller needs: per-band gain, presets, enable/disable.
// Implementations own their own capture lifecycle (Start/Stop) and must
// not call ProcessStereo concurrently with Stop.
type Adapter interface {
	// Start begins reading frames from the underlying source and
	// running them through the equalizer. It returns once capture has
	// begun or immediately on error; it does not block for the
	// lifetime of the session.
	Start() error

	// Stop ends capture and releases any resources. Stop must be safe
	// to call more than once.
	Stop() error

	// SetBandGain, GetBandGain, ApplyPreset, SetEnabled and IsEnabled
	// forward to the adapter's owned eq.AudioProcessor.
	SetBandGain(band int, gainDB float64)
	GetBandGain(band int) float64
	ApplyPreset(name string)
	SetEnabled(enabled bool)
	IsEnabled() bool

	// Processor returns the owned AudioProcessor for callers that need
	// direct access (band frequency plan, sample rate).
	Processor() *eq.AudioProcessor
}
