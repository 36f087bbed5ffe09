// SPDX-License-Identifier: EPL-2.0

// Package pareq provides a real-time ten-band parametric audio equalizer
// together with the decoding, resampling, and file plumbing needed to
// drive it from common audio formats.
//
// # Core Engine
//
// The eq subpackage is the real-time core: Biquad is a single IIR filter
// section, Equalizer is a ten-band stereo cascade with a fixed frequency
// plan, and AudioProcessor is the buffer-level front end that
// deinterleaves/reinterleaves around it.
//
//	proc := eq.NewAudioProcessor()
//	proc.Initialize(44100)
//	proc.ApplyEQPreset("rock")
//
//	// buffer is interleaved [L0, R0, L1, R1, ...]
//	proc.ProcessInterleavedStereo(buffer, len(buffer))
//
// # Supported Formats
//
// Audio is decoded into a common audio.Source stream through:
//   - WAV (PCM 16-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// # Quick Start
//
// EqualizeToStereo16 decodes, resamples, equalizes, and collects the
// result as interleaved 16-bit PCM in one call:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	src, _ := decoder.Decode(file)
//
//	pcm16, rate, _ := pareq.EqualizeToStereo16(src, 44100, "bass_boost", 4096)
//
// # Live Capture
//
// The capture subpackage adapts a live or file-backed audio source into
// a running equalizer session; see capture.Adapter.
//
// # Writing WAV Files
//
//	wav.WriteStereoPCM16(file, 44100, interleavedSamples)
//
// See the individual subpackages for more detailed documentation.
package pareq
