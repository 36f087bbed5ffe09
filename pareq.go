// SPDX-License-Identifier: EPL-2.0

package pareq

import (
	"fmt"
	"io"

	"github.com/ik5/pareq/audio"
	"github.com/ik5/pareq/eq"
	"github.com/ik5/pareq/utils"
)

// EqualizeToStereo16 is a high-level convenience function that decodes a
// single audio source end to end through the ten-band equalizer and
// returns the result as interleaved 16-bit PCM stereo samples.
//
// The pipeline is:
//  1. Sources carrying more than two channels are folded down to mono
//     with an audio.MonoMixer before anything else runs.
//  2. Resample src to targetRate (preserving its channel count); a
//     source already at targetRate is read directly.
//  3. Mono sources are duplicated to both output channels; stereo
//     sources are processed left/right independently.
//  4. Run the resulting stereo stream through an eq.AudioProcessor with
//     preset applied (pass "" or an unknown name to leave every band at
//     0 dB).
//  5. Convert the processed float32 samples to int16 PCM, clamping to
//     [-1, 1] first.
//
// bufferSize controls the frame count read per ReadSamples call; this
// is a throughput/memory trade-off, not a correctness knob.
//
// This is a convenience wrapper for the common case. For streaming or
// real-time use, construct an eq.AudioProcessor directly and drive it
// from your own buffer loop.
func EqualizeToStereo16(src audio.Source, targetRate int, preset string, bufferSize int) ([]int16, int, error) {
	if src.Channels() > 2 {
		src = audio.NewMonoMixer(src)
	}
	channels := src.Channels()

	var stream audio.Source = src
	if src.SampleRate() != targetRate {
		stream = audio.NewResampler(src, targetRate)
	}

	proc := eq.NewAudioProcessor()
	proc.Initialize(float64(targetRate))
	if preset != "" {
		proc.ApplyEQPreset(preset)
	}

	out := make([]int16, 0, targetRate*2)
	raw := make([]float32, bufferSize*channels)
	left := make([]float32, bufferSize)
	right := make([]float32, bufferSize)

	for {
		n, err := stream.ReadSamples(raw)
		frames := n / channels

		if frames > 0 {
			if channels == 1 {
				copy(left[:frames], raw[:frames])
				copy(right[:frames], raw[:frames])
			} else {
				for i := 0; i < frames; i++ {
					left[i] = raw[i*2]
					right[i] = raw[i*2+1]
				}
			}

			proc.ProcessSeparateChannels(left[:frames], right[:frames], frames)

			for i := 0; i < frames; i++ {
				out = append(out, utils.Float32ToInt16(left[i]), utils.Float32ToInt16(right[i]))
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, targetRate, fmt.Errorf("%w", err)
		}
	}

	return out, targetRate, nil
}
