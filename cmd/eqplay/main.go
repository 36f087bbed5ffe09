// Command eqplay decodes an audio file, runs it through the ten-band
// parametric equalizer, and writes the result as a stereo 16-bit PCM
// WAV file.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/pareq"
	"github.com/ik5/pareq/audio"
	"github.com/ik5/pareq/eq"
	"github.com/ik5/pareq/formats/aiff"
	"github.com/ik5/pareq/formats/mp3"
	"github.com/ik5/pareq/formats/vorbis"
	"github.com/ik5/pareq/formats/wav"
)

func main() {
	var (
		inPath      = flag.String("in", "", "input audio file (wav, mp3, ogg, aiff)")
		outPath     = flag.String("out", "", "output WAV file path")
		preset      = flag.String("preset", "flat", "equalizer preset name")
		sampleRate  = flag.Int("rate", 44100, "output sample rate in Hz")
		bufSize     = flag.Int("buf", 4096, "frame buffer size")
		listPresets = flag.Bool("list-presets", false, "print available preset names and exit")
	)
	flag.Parse()

	logger := slog.Default()

	if *listPresets {
		for _, name := range eq.PresetNames() {
			fmt.Println(name)
		}
		return
	}

	if *inPath == "" || *outPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(logger, *inPath, *outPath, *preset, *sampleRate, *bufSize); err != nil {
		logger.Error("eqplay failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, inPath, outPath, preset string, sampleRate, bufSize int) error {
	registry := audio.NewRegistry()
	registry.Register(".wav", wav.Decoder{})
	registry.Register(".mp3", mp3.Decoder{})
	registry.Register(".ogg", vorbis.Decoder{})
	registry.Register(".aif", aiff.Decoder{})
	registry.Register(".aiff", aiff.Decoder{})

	ext := strings.ToLower(filepath.Ext(inPath))
	decoder, ok := registry.Get(ext)
	if !ok {
		return fmt.Errorf("eqplay: no decoder registered for extension %q", ext)
	}

	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer in.Close()

	src, err := decoder.Decode(in)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer src.Close()

	logger.Info("decoding", "file", inPath, "sample_rate", src.SampleRate(), "channels", src.Channels())

	pcm16, outRate, err := pareq.EqualizeToStereo16(src, sampleRate, preset, bufSize)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer out.Close()

	if err := wav.WriteStereoPCM16(out, outRate, pcm16); err != nil {
		return fmt.Errorf("%w", err)
	}

	logger.Info("wrote output", "file", outPath, "frames", len(pcm16)/2, "sample_rate", outRate, "preset", preset)
	return nil
}
