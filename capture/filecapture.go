// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/ik5/pareq/audio"
	"github.com/ik5/pareq/eq"
)

var logger = slog.Default().With("component", "capture")

// Sink receives one processed frame block per call; left and right are
// reused across calls and must not be retained by the callee.
type Sink func(left, right []float32)

// FileCapture is a stand-in Adapter that pumps a decoded audio.Source
// through an eq.AudioProcessor on its own goroutine, instead of reading
// from a live OS loopback device. It exists so the equalizer's live
// session lifecycle (Start/Stop, cooperative shutdown) can be exercised
// and tested without an OS-level audio backend.
//
// Frame size controls throughput versus latency the same way bufferSize
// does for the file-based pipeline functions at the package root.
type FileCapture struct {
	src       audio.Source
	proc      *eq.AudioProcessor
	sink      Sink
	frameSize int

	left, right []float32
	raw         []float32

	quit    chan struct{}
	done    chan struct{}
	wg      sync.WaitGroup
	started atomic.Bool
}

// NewFileCapture constructs a FileCapture driving a fresh AudioProcessor
// initialized at src's sample rate. sink is invoked once per frame block
// read from src; it may be nil, in which case processed audio is simply
// discarded (useful for benchmarking the processing loop alone).
func NewFileCapture(src audio.Source, frameSize int, sink Sink) *FileCapture {
	if src.Channels() > 2 {
		src = audio.NewMonoMixer(src)
	}

	proc := eq.NewAudioProcessor()
	proc.Initialize(float64(src.SampleRate()))

	return &FileCapture{
		src:       src,
		proc:      proc,
		sink:      sink,
		frameSize: frameSize,
		left:      make([]float32, frameSize),
		right:     make([]float32, frameSize),
		raw:       make([]float32, frameSize*src.Channels()),
	}
}

func (c *FileCapture) Processor() *eq.AudioProcessor { return c.proc }

func (c *FileCapture) SetBandGain(band int, gainDB float64) { c.proc.SetEQBandGain(band, gainDB) }
func (c *FileCapture) GetBandGain(band int) float64         { return c.proc.GetEQBandGain(band) }
func (c *FileCapture) ApplyPreset(name string)              { c.proc.ApplyEQPreset(name) }
func (c *FileCapture) SetEnabled(enabled bool)              { c.proc.SetEQEnabled(enabled) }
func (c *FileCapture) IsEnabled() bool                      { return c.proc.IsEQEnabled() }

// Start spawns the capture/process loop. It returns ErrAlreadyStarted if
// called twice without an intervening Stop.
func (c *FileCapture) Start() error {
	if !c.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}

	c.quit = make(chan struct{})
	c.done = make(chan struct{})

	c.wg.Add(1)
	go c.run()

	logger.Info("capture started", "sample_rate", c.proc.SampleRate(), "frame_size", c.frameSize)
	return nil
}

// Stop signals the processing goroutine to exit and waits for it. Stop
// is safe to call more than once; the second and later calls are a
// no-op.
func (c *FileCapture) Stop() error {
	if !c.started.CompareAndSwap(true, false) {
		return nil
	}

	close(c.quit)
	<-c.done

	if err := c.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	logger.Info("capture stopped")
	return nil
}

func (c *FileCapture) run() {
	defer close(c.done)
	defer c.wg.Done()

	channels := c.src.Channels()

	for {
		select {
		case <-c.quit:
			return
		default:
		}

		n, err := c.src.ReadSamples(c.raw)
		frames := n / max(channels, 1)

		if frames > 0 {
			c.deinterleave(frames, channels)
			c.proc.ProcessSeparateChannels(c.left[:frames], c.right[:frames], frames)
			if c.sink != nil {
				c.sink(c.left[:frames], c.right[:frames])
			}
		}

		if err == io.EOF {
			logger.Info("capture source exhausted")
			return
		}
		if err != nil {
			logger.Error("capture read failed", "error", err)
			return
		}
	}
}

func (c *FileCapture) deinterleave(frames, channels int) {
	if channels == 1 {
		copy(c.left[:frames], c.raw[:frames])
		copy(c.right[:frames], c.raw[:frames])
		return
	}
	for i := 0; i < frames; i++ {
		c.left[i] = c.raw[i*channels]
		c.right[i] = c.raw[i*channels+1]
	}
}
