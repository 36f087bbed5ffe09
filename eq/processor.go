// SPDX-License-Identifier: EPL-2.0

package eq

// AudioProcessor is the buffer-level front end for the ten-band
// equalizer. It owns exactly one Equalizer, accepts either interleaved
// or planar stereo buffers, and deinterleaves/reinterleaves as needed
// around a single call to Equalizer.ProcessStereo.
//
// Scratch buffers used for deinterleaving grow monotonically to the
// largest frame count seen and are never shrunk during a processing
// session, so no allocation occurs on the steady-state hot path once
// they have reached their working size. A caller targeting hard
// real-time should warm the buffers up-front by calling
// ProcessInterleavedStereo once with the expected maximum frame count
// before entering the audio thread.
type AudioProcessor struct {
	eq          *Equalizer
	sampleRate  float64
	initialized bool

	scratchLeft  []float32
	scratchRight []float32
}

// NewAudioProcessor returns an AudioProcessor that is not yet
// initialized; Initialize must be called before any Process* call has an
// effect.
func NewAudioProcessor() *AudioProcessor {
	return &AudioProcessor{}
}

// Initialize (re)constructs the owned Equalizer at the given sample rate
// and marks the processor initialized.
func (p *AudioProcessor) Initialize(sampleRate float64) {
	p.eq = NewEqualizer(sampleRate)
	p.sampleRate = sampleRate
	p.initialized = true
}

// Equalizer returns the owned Equalizer, or nil if neither Initialize
// nor a control-surface call that constructs one on demand has been made
// yet.
func (p *AudioProcessor) Equalizer() *Equalizer {
	return p.eq
}

// SampleRate returns the rate passed to the last Initialize call, or 0
// if the processor has never been initialized.
func (p *AudioProcessor) SampleRate() float64 {
	return p.sampleRate
}

// ensureScratch grows the deinterleave scratch buffers to at least
// numFrames, without ever shrinking them.
func (p *AudioProcessor) ensureScratch(numFrames int) {
	if cap(p.scratchLeft) < numFrames {
		p.scratchLeft = make([]float32, numFrames)
		p.scratchRight = make([]float32, numFrames)
		return
	}
	p.scratchLeft = p.scratchLeft[:numFrames]
	p.scratchRight = p.scratchRight[:numFrames]
}

// ProcessInterleavedStereo processes an interleaved [L0, R0, L1, R1, ...]
// buffer in place. numSamples is the total sample count (frames × 2); if
// it is odd, the last sample is dropped from processing (a caller bug,
// not a recoverable condition — integer division yields the frame
// count). If the processor is not initialized or the equalizer is
// disabled, buffer is returned untouched.
func (p *AudioProcessor) ProcessInterleavedStereo(buffer []float32, numSamples int) {
	if !p.initialized || !p.eq.IsEnabled() {
		return
	}

	numFrames := numSamples / 2
	p.ensureScratch(numFrames)

	for i := 0; i < numFrames; i++ {
		p.scratchLeft[i] = buffer[i*2]
		p.scratchRight[i] = buffer[i*2+1]
	}

	p.eq.ProcessStereo(p.scratchLeft, p.scratchRight, numFrames)

	for i := 0; i < numFrames; i++ {
		buffer[i*2] = p.scratchLeft[i]
		buffer[i*2+1] = p.scratchRight[i]
	}
}

// ProcessSeparateChannels processes two planar channel buffers in place.
// If the processor is not initialized or the equalizer is disabled, both
// buffers are returned untouched.
func (p *AudioProcessor) ProcessSeparateChannels(left, right []float32, numFrames int) {
	if !p.initialized || !p.eq.IsEnabled() {
		return
	}
	p.eq.ProcessStereo(left, right, numFrames)
}

// SetEQBandGain forwards to the owned Equalizer. If the processor has
// not been initialized yet, it constructs one at a default 44.1 kHz
// first, so control-surface calls never panic on an uninitialized
// processor.
func (p *AudioProcessor) SetEQBandGain(i int, gDB float64) {
	p.ensureInitialized()
	p.eq.SetBandGain(i, gDB)
}

// GetEQBandGain forwards to the owned Equalizer, returning 0.0 if no
// Equalizer exists yet (neither Initialize nor a control-surface setter
// has been called).
func (p *AudioProcessor) GetEQBandGain(i int) float64 {
	if p.eq == nil {
		return 0
	}
	return p.eq.GetBandGain(i)
}

// ApplyEQPreset forwards to the owned Equalizer.
func (p *AudioProcessor) ApplyEQPreset(name string) {
	p.ensureInitialized()
	p.eq.ApplyPreset(name)
}

// ResetEQ forwards to the owned Equalizer.
func (p *AudioProcessor) ResetEQ() {
	p.ensureInitialized()
	p.eq.Reset()
}

// SetEQEnabled forwards to the owned Equalizer.
func (p *AudioProcessor) SetEQEnabled(enabled bool) {
	p.ensureInitialized()
	p.eq.SetEnabled(enabled)
}

// IsEQEnabled forwards to the owned Equalizer, returning false if the
// processor has never been initialized.
func (p *AudioProcessor) IsEQEnabled() bool {
	if !p.initialized {
		return false
	}
	return p.eq.IsEnabled()
}

// BandFrequencies forwards to the owned Equalizer, constructing a
// default one first if needed.
func (p *AudioProcessor) BandFrequencies() [NumBands]float64 {
	p.ensureInitialized()
	return p.eq.BandFrequencies()
}

// defaultSampleRateHz is used to construct an Equalizer on demand for
// control-surface calls that arrive before Initialize.
const defaultSampleRateHz = 44100.0

func (p *AudioProcessor) ensureInitialized() {
	if p.eq == nil {
		p.eq = NewEqualizer(defaultSampleRateHz)
	}
}
