// SPDX-License-Identifier: EPL-2.0

package eq

import (
	"math"
	"testing"
)

func TestNewEqualizer_BandKinds(t *testing.T) {
	t.Parallel()

	e := NewEqualizer(44100)

	if e.left[0].kind != LowShelf {
		t.Errorf("band 0 kind = %v, want LowShelf", e.left[0].kind)
	}
	if e.left[NumBands-1].kind != HighShelf {
		t.Errorf("band %d kind = %v, want HighShelf", NumBands-1, e.left[NumBands-1].kind)
	}
	for i := 1; i < NumBands-1; i++ {
		if e.left[i].kind != Peaking {
			t.Errorf("band %d kind = %v, want Peaking", i, e.left[i].kind)
		}
	}
}

func TestNewEqualizer_FlatByDefault(t *testing.T) {
	t.Parallel()

	e := NewEqualizer(44100)
	for i := 0; i < NumBands; i++ {
		if g := e.GetBandGain(i); g != 0 {
			t.Errorf("band %d default gain = %v, want 0", i, g)
		}
	}
	if !e.IsEnabled() {
		t.Error("new Equalizer should be enabled by default")
	}
}

func TestEqualizer_FlatPresetIsTransparent(t *testing.T) {
	t.Parallel()

	e := NewEqualizer(44100)
	e.ApplyPreset("flat")

	left := []float32{0.1, -0.2, 0.3, 0.25, -0.4}
	right := []float32{0.05, -0.15, 0.35, 0.2, -0.3}
	origL := append([]float32(nil), left...)
	origR := append([]float32(nil), right...)

	e.ProcessStereo(left, right, len(left))

	for i := range left {
		if math.Abs(float64(left[i]-origL[i])) > 1e-5 {
			t.Errorf("flat preset left[%d] = %v, want ~%v", i, left[i], origL[i])
		}
		if math.Abs(float64(right[i]-origR[i])) > 1e-5 {
			t.Errorf("flat preset right[%d] = %v, want ~%v", i, right[i], origR[i])
		}
	}
}

func TestEqualizer_SetBandGain_ClampsToRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"above max", 20, MaxGainDB},
		{"below min", -20, MinGainDB},
		{"within range", 5, 5},
		{"at max", MaxGainDB, MaxGainDB},
		{"at min", MinGainDB, MinGainDB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := NewEqualizer(44100)
			e.SetBandGain(3, tt.in)
			if got := e.GetBandGain(3); got != tt.want {
				t.Errorf("GetBandGain(3) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEqualizer_SetBandGain_OutOfRangeIndexIsNoop(t *testing.T) {
	t.Parallel()

	e := NewEqualizer(44100)
	e.SetBandGain(-1, 6)
	e.SetBandGain(NumBands, 6)
	e.SetBandGain(1000, 6)

	if g := e.GetBandGain(-1); g != 0 {
		t.Errorf("GetBandGain(-1) = %v, want 0", g)
	}
	if g := e.GetBandGain(NumBands); g != 0 {
		t.Errorf("GetBandGain(NumBands) = %v, want 0", g)
	}

	for i := 0; i < NumBands; i++ {
		if g := e.GetBandGain(i); g != 0 {
			t.Errorf("band %d gain = %v, want untouched 0", i, g)
		}
	}
}

func TestEqualizer_ApplyPreset_UnknownNameIsNoop(t *testing.T) {
	t.Parallel()

	e := NewEqualizer(44100)
	e.SetBandGain(0, 4)
	e.ApplyPreset("does-not-exist")

	if g := e.GetBandGain(0); g != 4 {
		t.Errorf("unknown preset should not modify existing gains, got %v, want 4", g)
	}
}

func TestEqualizer_ApplyPreset_KnownPreset(t *testing.T) {
	t.Parallel()

	e := NewEqualizer(44100)
	e.ApplyPreset("bass_boost")

	want := presets["bass_boost"]
	for i := 0; i < NumBands; i++ {
		if g := e.GetBandGain(i); g != want[i] {
			t.Errorf("band %d gain = %v, want %v", i, g, want[i])
		}
	}
}

func TestEqualizer_Reset(t *testing.T) {
	t.Parallel()

	e := NewEqualizer(44100)
	e.ApplyPreset("rock")

	left := []float32{0.3, -0.3, 0.5}
	right := []float32{0.2, -0.2, 0.4}
	e.ProcessStereo(left, right, len(left))

	e.Reset()

	for i := 0; i < NumBands; i++ {
		if g := e.GetBandGain(i); g != 0 {
			t.Errorf("band %d gain after Reset = %v, want 0", i, g)
		}
		for _, bq := range [2]*Biquad{e.left[i], e.right[i]} {
			if bq.x1 != 0 || bq.x2 != 0 || bq.y1 != 0 || bq.y2 != 0 {
				t.Errorf("band %d filter state not cleared by Reset", i)
			}
		}
	}
}

func TestEqualizer_ResetIsIdempotent(t *testing.T) {
	t.Parallel()

	e := NewEqualizer(44100)
	e.ApplyPreset("jazz")
	e.Reset()
	e.Reset()

	for i := 0; i < NumBands; i++ {
		if g := e.GetBandGain(i); g != 0 {
			t.Errorf("band %d gain after double Reset = %v, want 0", i, g)
		}
	}
}

func TestEqualizer_DisabledBypassIsTransparent(t *testing.T) {
	t.Parallel()

	e := NewEqualizer(44100)
	e.ApplyPreset("treble_boost")
	e.SetEnabled(false)

	left := []float32{0.3, -0.3, 0.5, -0.1}
	right := []float32{0.2, -0.2, 0.4, -0.05}
	origL := append([]float32(nil), left...)
	origR := append([]float32(nil), right...)

	e.ProcessStereo(left, right, len(left))

	for i := range left {
		if left[i] != origL[i] {
			t.Errorf("disabled left[%d] = %v, want untouched %v", i, left[i], origL[i])
		}
		if right[i] != origR[i] {
			t.Errorf("disabled right[%d] = %v, want untouched %v", i, right[i], origR[i])
		}
	}
}

func TestEqualizer_SetEnabledFalseResetsState(t *testing.T) {
	t.Parallel()

	e := NewEqualizer(44100)
	e.ApplyPreset("dance")

	left := []float32{0.3, -0.3, 0.5}
	right := []float32{0.2, -0.2, 0.4}
	e.ProcessStereo(left, right, len(left))

	e.SetEnabled(false)

	for i := 0; i < NumBands; i++ {
		for _, bq := range [2]*Biquad{e.left[i], e.right[i]} {
			if bq.x1 != 0 || bq.x2 != 0 || bq.y1 != 0 || bq.y2 != 0 {
				t.Errorf("band %d filter state not cleared by SetEnabled(false)", i)
			}
		}
		// Gains must survive disabling.
	}
	if e.GetBandGain(0) == 0 {
		t.Error("SetEnabled(false) should not clear gains, only filter state")
	}
}

func TestEqualizer_OutputIsHardClamped(t *testing.T) {
	t.Parallel()

	e := NewEqualizer(44100)
	for i := 0; i < NumBands; i++ {
		e.SetBandGain(i, MaxGainDB)
	}

	const n = 4096
	left := make([]float32, n)
	right := make([]float32, n)
	for i := range left {
		left[i] = float32(math.Sin(2 * math.Pi * 1000 * float64(i) / 44100))
		right[i] = left[i]
	}

	e.ProcessStereo(left, right, n)

	for i := range left {
		if left[i] < -1.0 || left[i] > 1.0 {
			t.Fatalf("left[%d] = %v out of bound [-1,1]", i, left[i])
		}
		if right[i] < -1.0 || right[i] > 1.0 {
			t.Fatalf("right[%d] = %v out of bound [-1,1]", i, right[i])
		}
	}
}

func TestEqualizer_BandFrequencies(t *testing.T) {
	t.Parallel()

	e := NewEqualizer(44100)
	want := [NumBands]float64{31, 62, 125, 250, 500, 1000, 2000, 4000, 8000, 16000}
	if got := e.BandFrequencies(); got != want {
		t.Errorf("BandFrequencies() = %v, want %v", got, want)
	}
}

func TestEqualizer_AllPresetsHaveTenBands(t *testing.T) {
	t.Parallel()

	for _, name := range PresetNames() {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			e := NewEqualizer(44100)
			e.ApplyPreset(name)
			for i := 0; i < NumBands; i++ {
				g := e.GetBandGain(i)
				if g < MinGainDB || g > MaxGainDB {
					t.Errorf("preset %q band %d gain %v out of [%v,%v]", name, i, g, MinGainDB, MaxGainDB)
				}
			}
		})
	}
}

func BenchmarkEqualizer_ProcessStereo(b *testing.B) {
	e := NewEqualizer(44100)
	e.ApplyPreset("rock")

	const n = 512
	left := make([]float32, n)
	right := make([]float32, n)
	for i := range left {
		left[i] = float32(math.Sin(float64(i) * 0.1))
		right[i] = float32(math.Cos(float64(i) * 0.1))
	}

	b.ReportAllocs()
	for b.Loop() {
		e.ProcessStereo(left, right, n)
	}
}
