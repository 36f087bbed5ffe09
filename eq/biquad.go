// SPDX-License-Identifier: EPL-2.0

package eq

import (
	"math"
	"sync/atomic"

	"github.com/ik5/pareq/utils"
)

// FilterKind selects which of the three Audio-EQ-Cookbook derivations a
// Biquad uses when it recomputes its coefficients.
type FilterKind int

const (
	// Peaking boosts or cuts a band around the center frequency while
	// leaving the rest of the spectrum unaffected.
	Peaking FilterKind = iota
	// LowShelf boosts or cuts everything below the corner frequency.
	LowShelf
	// HighShelf boosts or cuts everything above the corner frequency.
	HighShelf
)

// defaultFrequency, defaultSampleRate and defaultQ are the values a
// freshly constructed Biquad starts with: 1 kHz at a 44.1 kHz sample
// rate, 0 dB gain, Q=1.
const (
	defaultFrequency  = 1000.0
	defaultSampleRate = 44100.0
	defaultQ          = 1.0
)

// coeffs is one generation of normalized Direct Form I coefficients
// (a0 == 1 implicitly). A Biquad swaps a *coeffs atomically so the
// processing goroutine never observes a torn, mixed-generation set of
// values for a single band.
type coeffs struct {
	b0, b1, b2 float64
	a1, a2     float64
}

// Biquad is a second-order IIR filter section in Direct Form I, with
// coefficients derived using the Audio-EQ-Cookbook forms for peaking and
// shelving filters.
//
// Internal arithmetic is double precision regardless of the float32
// sample format used at the buffer level; this keeps coefficient
// computation and state recursion numerically stable across the full
// ±12 dB gain range.
//
// A Biquad's coefficients are normalized (a0 == 1) immediately after any
// setter call; Process assumes this and never re-normalizes on the hot
// path. State is untouched by setters — only Reset clears it. Setters
// may be called from a different goroutine than Process: coefficients
// are published through an atomic pointer swap, so Process always reads
// one complete, consistent generation.
type Biquad struct {
	c atomic.Pointer[coeffs]

	// Direct Form I state. Owned exclusively by the goroutine calling
	// Process; setters and Reset must not be invoked concurrently with
	// an in-flight Process call.
	x1, x2 float64
	y1, y2 float64

	// Design parameters, recorded so coefficients can be recomputed
	// whenever any one of them changes. Only touched by setters, which
	// the caller is expected to serialize among themselves: two control
	// calls from the same goroutine must take effect in program order.
	kind       FilterKind
	frequency  float64
	sampleRate float64
	gainDB     float64
	q          float64
}

// NewBiquad returns a Biquad with the default design: peaking, 1 kHz
// center frequency at a 44.1 kHz sample rate, 0 dB gain, Q=1.
func NewBiquad() *Biquad {
	b := &Biquad{
		kind:       Peaking,
		frequency:  defaultFrequency,
		sampleRate: defaultSampleRate,
		gainDB:     0,
		q:          defaultQ,
	}
	b.recompute()
	return b
}

// SetKind changes the filter shape and immediately recomputes coefficients.
func (b *Biquad) SetKind(kind FilterKind) {
	b.kind = kind
	b.recompute()
}

// SetFrequency sets the center/corner frequency and the sample rate it is
// expressed against, then immediately recomputes coefficients.
func (b *Biquad) SetFrequency(freqHz, sampleRateHz float64) {
	b.frequency = freqHz
	b.sampleRate = sampleRateHz
	b.recompute()
}

// SetGain sets the gain in decibels and immediately recomputes coefficients.
func (b *Biquad) SetGain(gainDB float64) {
	b.gainDB = gainDB
	b.recompute()
}

// SetQ sets the quality factor and immediately recomputes coefficients.
func (b *Biquad) SetQ(q float64) {
	b.q = q
	b.recompute()
}

// Process consumes one input sample, advances the filter state, and
// returns the corresponding output sample. It performs no allocation and
// no I/O.
func (b *Biquad) Process(x float64) float64 {
	c := b.c.Load()

	y := c.b0*x + c.b1*b.x1 + c.b2*b.x2 - c.a1*b.y1 - c.a2*b.y2

	b.x2 = b.x1
	b.x1 = x
	b.y2 = b.y1
	b.y1 = y

	return y
}

// Reset zeroes the filter state. It does not touch coefficients, design
// parameters, or gain.
func (b *Biquad) Reset() {
	b.x1, b.x2 = 0, 0
	b.y1, b.y2 = 0, 0
}

// recompute derives b0, b1, b2, a1, a2 from the current design parameters
// using the Audio-EQ-Cookbook forms, normalizes by a0 so that a0 becomes
// 1, and publishes the result with a single atomic store. This is
// mandatory: Process assumes a0 == 1.
func (b *Biquad) recompute() {
	A := utils.DecibelToAmplitude(b.gainDB)
	omega := 2 * math.Pi * b.frequency / b.sampleRate
	sn := math.Sin(omega)
	cs := math.Cos(omega)
	alpha := sn / (2 * b.q)

	var b0, b1, b2, a0, a1, a2 float64

	switch b.kind {
	case LowShelf:
		beta := math.Sqrt(A) / b.q * sn
		b0 = A * ((A + 1) - (A-1)*cs + beta)
		b1 = 2 * A * ((A - 1) - (A+1)*cs)
		b2 = A * ((A + 1) - (A-1)*cs - beta)
		a0 = (A + 1) + (A-1)*cs + beta
		a1 = -2 * ((A - 1) + (A+1)*cs)
		a2 = (A + 1) + (A-1)*cs - beta
	case HighShelf:
		beta := math.Sqrt(A) / b.q * sn
		b0 = A * ((A + 1) + (A-1)*cs + beta)
		b1 = -2 * A * ((A - 1) + (A+1)*cs)
		b2 = A * ((A + 1) + (A-1)*cs - beta)
		a0 = (A + 1) - (A-1)*cs + beta
		a1 = 2 * ((A - 1) - (A+1)*cs)
		a2 = (A + 1) - (A-1)*cs - beta
	default: // Peaking
		b0 = 1 + alpha*A
		b1 = -2 * cs
		b2 = 1 - alpha*A
		a0 = 1 + alpha/A
		a1 = -2 * cs
		a2 = 1 - alpha/A
	}

	invA0 := 1 / a0
	b.c.Store(&coeffs{
		b0: b0 * invA0,
		b1: b1 * invA0,
		b2: b2 * invA0,
		a1: a1 * invA0,
		a2: a2 * invA0,
	})
}
