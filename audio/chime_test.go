package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToneFrequency(t *testing.T) {
	assert.Equal(t, 220.0, ToneFrequency(1))
	assert.InDelta(t, 220*math.Pow(2, 7.0/12), ToneFrequency(4), 1e-9)
	assert.InDelta(t, 440.0, ToneFrequency(6), 1e-9)
	assert.InDelta(t, 880.0*math.Pow(2, 4.0/12), ToneFrequency(13), 1e-9)
	assert.Equal(t, 220.0, ToneFrequency(0))

	for tone := 2; tone <= 13; tone++ {
		assert.Greater(t, ToneFrequency(tone), ToneFrequency(tone-1))
	}
}

// drain reads s to the end and returns the left channel
func drain(s beep.Streamer) []float64 {
	var out []float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := range n {
			out = append(out, buf[i][0])
		}
		if !ok {
			return out
		}
	}
}

func rms(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum / float64(len(v)))
}

func TestChime_FiniteAndDecaying(t *testing.T) {
	rate := beep.SampleRate(8000)
	s := NewChime(440, 500*time.Millisecond, rate)
	out := drain(s)
	require.Len(t, out, rate.N(500*time.Millisecond))
	assert.NoError(t, s.Err())
	assert.Equal(t, 0.0, out[0], "attack starts silent")

	for _, x := range out {
		assert.LessOrEqual(t, math.Abs(x), 1.0)
	}
	tenth := len(out) / 10
	assert.Greater(t, rms(out[tenth:2*tenth]), 3*rms(out[len(out)-tenth:]))

	n, ok := s.Stream(make([][2]float64, 8))
	assert.Zero(t, n)
	assert.False(t, ok)
}

func TestToneChime_Volume(t *testing.T) {
	cfg := Config{SampleRate: 8000, Volume: 0.5}
	loud := drain(NewChime(ToneFrequency(3), ChimeDuration, beep.SampleRate(8000)))
	soft := drain(ToneChime(3, cfg))
	require.Len(t, soft, len(loud))
	assert.InDelta(t, 0.5*rms(loud), rms(soft), 1e-9)

	cfg.Volume = 0
	assert.Zero(t, rms(drain(ToneChime(3, cfg))))
}
