// SPDX-License-Identifier: EPL-2.0

package eq

// NumBands is the fixed number of equalizer bands.
const NumBands = 10

// bandFrequencies is the fixed, read-only frequency plan in band order.
var bandFrequencies = [NumBands]float64{
	31, 62, 125, 250, 500, 1000, 2000, 4000, 8000, 16000,
}

// presets is the fixed, read-only mapping from preset name to a ten-band
// gain vector in dB. Preset names are case-sensitive ASCII identifiers.
var presets = map[string][NumBands]float64{
	"flat":         {0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	"rock":         {5, 3, -2, -3, -1, 1, 3, 4, 5, 5},
	"pop":          {-1, 2, 4, 4, 2, 0, -1, -1, -1, -1},
	"jazz":         {4, 3, 1, 2, -1, -1, 0, 1, 3, 4},
	"classical":    {5, 4, 3, 2, -1, -1, 0, 2, 3, 4},
	"electronic":   {5, 4, 2, 0, -2, 2, 1, 2, 4, 5},
	"hiphop":       {5, 4, 1, 3, -1, -1, 1, -1, 2, 3},
	"acoustic":     {4, 3, 2, 1, 2, 1, 2, 3, 4, 3},
	"bass_boost":   {8, 6, 4, 2, 0, 0, 0, 0, 0, 0},
	"treble_boost": {0, 0, 0, 0, 0, 0, 2, 4, 6, 8},
	"vocal_boost":  {-2, -1, 0, 1, 4, 4, 3, 1, 0, -1},
	"dance":        {4, 3, 2, 0, 0, -1, 2, 3, 4, 4},
}

// PresetNames returns the defined preset names. The order is unspecified.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}
