// SPDX-License-Identifier: EPL-2.0

package eq

import (
	"sync"
	"sync/atomic"

	"github.com/ik5/pareq/utils"
)

const (
	// MinGainDB and MaxGainDB bound every per-band gain written through
	// SetBandGain; values outside this range are silently clamped.
	MinGainDB = -12.0
	MaxGainDB = 12.0

	bandQ = 1.0
)

// Equalizer is a ten-band stereo parametric equalizer built from two
// parallel cascades of Biquad sections — one cascade per channel. Band 0
// is a low-shelf, band 9 is a high-shelf, and bands 1 through 8 are
// peaking filters, each centered on the fixed frequency plan in
// bandFrequencies. Q is fixed at 1.0 for every band and is not exposed
// for external control.
//
// Control-plane calls (SetBandGain, ApplyPreset, Reset, SetEnabled) may
// be called from a different goroutine than ProcessStereo. The enabled
// flag is an atomic.Bool so ProcessStereo never blocks to read it; each
// Biquad publishes its own coefficients through an atomic pointer swap
// (see Biquad), so the processing loop never observes a torn
// (mixed-generation) set of coefficients for the same band. A mutex
// serializes each SetBandGain and each Reset among concurrent
// control-plane callers — it is never held while processing samples.
// ApplyPreset takes it once per band rather than across the whole
// preset, so other control calls can interleave with a preset being
// applied. Filter state is touched only by ProcessStereo and by
// Reset/SetEnabled(false), which the caller must not invoke concurrently
// with an in-flight ProcessStereo call.
type Equalizer struct {
	mu sync.Mutex

	left, right [NumBands]*Biquad
	gains       [NumBands]float64
	sampleRate  float64
	enabled     atomic.Bool
}

// NewEqualizer constructs an Equalizer at the given sample rate with all
// bands at 0 dB, Q=1, and enabled=true.
func NewEqualizer(sampleRate float64) *Equalizer {
	e := &Equalizer{
		sampleRate: sampleRate,
	}
	e.enabled.Store(true)

	for i := range e.left {
		kind := Peaking
		switch i {
		case 0:
			kind = LowShelf
		case NumBands - 1:
			kind = HighShelf
		}

		e.left[i] = NewBiquad()
		e.right[i] = NewBiquad()

		for _, bq := range [2]*Biquad{e.left[i], e.right[i]} {
			bq.SetKind(kind)
			bq.SetFrequency(bandFrequencies[i], sampleRate)
			bq.SetQ(bandQ)
			bq.SetGain(0)
		}
	}

	return e
}

// SetBandGain clamps gDB to [MinGainDB, MaxGainDB] and pushes it to both
// channel filters of band i. Indices outside [0, NumBands) are a silent
// no-op, by design — this keeps the control surface safe for liberal UI
// bindings.
func (e *Equalizer) SetBandGain(i int, gDB float64) {
	if i < 0 || i >= NumBands {
		return
	}

	gDB = utils.Clamp(gDB, MinGainDB, MaxGainDB)

	e.mu.Lock()
	e.gains[i] = gDB
	e.left[i].SetGain(gDB)
	e.right[i].SetGain(gDB)
	e.mu.Unlock()
}

// GetBandGain returns the stored gain for band i, or 0.0 for an
// out-of-range index.
func (e *Equalizer) GetBandGain(i int) float64 {
	if i < 0 || i >= NumBands {
		return 0
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gains[i]
}

// ApplyPreset applies a defined preset's gain vector, taking only the
// first min(NumBands, len(vector)) entries. Unknown names are a silent
// no-op.
func (e *Equalizer) ApplyPreset(name string) {
	gains, ok := presets[name]
	if !ok {
		return
	}

	for i := 0; i < NumBands; i++ {
		e.SetBandGain(i, gains[i])
	}
}

// Reset sets every band's gain to 0 dB and flushes every filter's state.
// After Reset, the Equalizer is equivalent to one freshly constructed at
// the same sample rate.
func (e *Equalizer) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := 0; i < NumBands; i++ {
		e.gains[i] = 0
		e.left[i].SetGain(0)
		e.right[i].SetGain(0)
		e.left[i].Reset()
		e.right[i].Reset()
	}
}

// SetEnabled stores the enabled flag. Disabling additionally resets every
// filter's state (not gains), preventing an audible click if the engine
// is re-enabled after a long silence with heavily excited filters.
func (e *Equalizer) SetEnabled(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.enabled.Store(enabled)
	if !enabled {
		for i := 0; i < NumBands; i++ {
			e.left[i].Reset()
			e.right[i].Reset()
		}
	}
}

// IsEnabled reports whether the equalizer is currently enabled.
func (e *Equalizer) IsEnabled() bool {
	return e.enabled.Load()
}

// BandFrequencies returns the fixed ten-element center/corner frequency
// vector, in band order.
func (e *Equalizer) BandFrequencies() [NumBands]float64 {
	return bandFrequencies
}

// ProcessStereo runs the first n frames of left and right through the
// ten-band cascade in band order 0 through 9, then hard-clamps each
// output sample to [-1.0, 1.0]. If the equalizer is disabled, it returns
// immediately without touching either slice.
//
// Filters are applied strictly in ascending band order; because biquads
// are LTI this does not affect steady-state frequency response, but it
// does affect transient behavior immediately after a parameter change.
func (e *Equalizer) ProcessStereo(left, right []float32, n int) {
	if !e.enabled.Load() {
		return
	}

	for i := 0; i < n; i++ {
		l := float64(left[i])
		r := float64(right[i])

		for band := 0; band < NumBands; band++ {
			l = e.left[band].Process(l)
			r = e.right[band].Process(r)
		}

		left[i] = float32(utils.Clamp(l, -1.0, 1.0))
		right[i] = float32(utils.Clamp(r, -1.0, 1.0))
	}
}
