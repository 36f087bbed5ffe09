// SPDX-License-Identifier: EPL-2.0

package pareq_test

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ik5/pareq"
	"github.com/ik5/pareq/audio"
	"github.com/ik5/pareq/eq"
	"github.com/ik5/pareq/formats/aiff"
	"github.com/ik5/pareq/formats/mp3"
	"github.com/ik5/pareq/formats/vorbis"
	"github.com/ik5/pareq/formats/wav"
)

// Example_basicUsage decodes a WAV file and runs it through the equalizer
// in one call, applying a named preset.
func Example_basicUsage() {
	samples := []int16{100, -100, 200, -200, 300, -300}
	wavData := new(bytes.Buffer)
	if err := wav.WriteWAV16(wavData, 8000, samples); err != nil {
		fmt.Printf("write error: %v\n", err)
		return
	}

	decoder := wav.Decoder{}
	src, err := decoder.Decode(wavData)
	if err != nil {
		fmt.Printf("decode error: %v\n", err)
		return
	}

	pcm16, rate, err := pareq.EqualizeToStereo16(src, 8000, "flat", 4096)
	if err != nil && err != io.EOF {
		fmt.Printf("equalize error: %v\n", err)
		return
	}

	fmt.Printf("Processed %d interleaved samples at %d Hz\n", len(pcm16), rate)
	// Output: Processed 12 interleaved samples at 8000 Hz
}

// Example_directEqualizer shows the lower-level API: construct an
// AudioProcessor directly and drive it from an in-memory buffer.
func Example_directEqualizer() {
	proc := eq.NewAudioProcessor()
	proc.Initialize(44100)
	proc.ApplyEQPreset("bass_boost")

	buffer := []float32{0.1, 0.1, -0.2, -0.2, 0.3, 0.3}
	proc.ProcessInterleavedStereo(buffer, len(buffer))

	fmt.Printf("Enabled: %v\n", proc.IsEQEnabled())
	fmt.Printf("Band 0 gain: %.0f dB\n", proc.GetEQBandGain(0))
	// Output:
	// Enabled: true
	// Band 0 gain: 8 dB
}

// Example_bypassWhenDisabled shows that disabling the equalizer makes
// processing a no-op, leaving the buffer untouched.
func Example_bypassWhenDisabled() {
	proc := eq.NewAudioProcessor()
	proc.Initialize(44100)
	proc.ApplyEQPreset("treble_boost")
	proc.SetEQEnabled(false)

	buffer := []float32{0.25, -0.25, 0.5, -0.5}
	before := append([]float32(nil), buffer...)

	proc.ProcessInterleavedStereo(buffer, len(buffer))

	fmt.Println(buffer[0] == before[0] && buffer[1] == before[1])
	// Output: true
}

// Example_multipleFormats shows how a registry dispatches to the right
// decoder by format key.
func Example_multipleFormats() {
	registry := audio.NewRegistry()
	registry.Register("wav", wav.Decoder{})
	registry.Register("mp3", mp3.Decoder{})
	registry.Register("ogg vorbis", vorbis.Decoder{})
	registry.Register("aiff", aiff.Decoder{})

	for _, format := range []string{"wav", "mp3", "ogg vorbis", "aiff"} {
		if _, ok := registry.Get(format); ok {
			fmt.Printf("%s: decoder registered\n", format)
		}
	}
	// Output:
	// wav: decoder registered
	// mp3: decoder registered
	// ogg vorbis: decoder registered
	// aiff: decoder registered
}
