package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// toneGenerator streams a sine tone with a short attack/release
// envelope so one-shot effects do not click.
type toneGenerator struct {
	sr      beep.SampleRate
	freq    float64
	pos     int
	samples int
}

func newToneGenerator(sr beep.SampleRate, freq float64, samples int) *toneGenerator {
	return &toneGenerator{sr: sr, freq: freq, samples: samples}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}

		t := float64(g.pos) / float64(g.sr)
		v := math.Sin(2 * math.Pi * g.freq * t)
		v *= envelope(g.pos, g.samples, g.sr)

		samples[i][0] = v
		samples[i][1] = v
		g.pos++
		n++
	}
	return n, true
}

func (g *toneGenerator) Err() error {
	return nil
}

// envelope fades in over 5ms and out over the final 20% of the tone.
func envelope(pos, total int, sr beep.SampleRate) float64 {
	attack := int(sr) / 200
	if attack > 0 && pos < attack {
		return float64(pos) / float64(attack)
	}

	release := total / 5
	if release > 0 && pos >= total-release {
		return float64(total-pos) / float64(release)
	}
	return 1
}
