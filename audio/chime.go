package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Chime shape
const (
	BaseFrequency  = 220.0
	ChimeDuration  = 1800 * time.Millisecond
	chimeAttack    = 8 * time.Millisecond
	chimeDecay     = 4.0 // e-folds over the chime
	overtoneWeight = 0.3
)

// pentatonic holds the major pentatonic steps in semitones
var pentatonic = [...]int{0, 2, 4, 7, 9}

// ToneFrequency maps a Tzolkin tone onto a pentatonic ladder from BaseFrequency
// Tone 1 is the base note; every five tones climb an octave
func ToneFrequency(tone int) float64 {
	i := max(tone-1, 0)
	semis := 12*(i/len(pentatonic)) + pentatonic[i%len(pentatonic)]
	return BaseFrequency * math.Pow(2, float64(semis)/12)
}

// chime is a finite sine with a soft octave partial and exponential decay
type chime struct {
	freq     float64
	rate     beep.SampleRate
	total    int
	attack   int
	position int
}

// NewChime creates a chime streamer of the given length
func NewChime(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &chime{
		freq:   freq,
		rate:   rate,
		total:  rate.N(duration),
		attack: max(rate.N(chimeAttack), 1),
	}
}

func (c *chime) Stream(samples [][2]float64) (n int, ok bool) {
	if c.position >= c.total {
		return 0, false
	}
	for i := range samples {
		if c.position >= c.total {
			return i, true
		}
		t := float64(c.position) / float64(c.rate)
		env := math.Exp(-chimeDecay * float64(c.position) / float64(c.total))
		if c.position < c.attack {
			env *= float64(c.position) / float64(c.attack)
		}
		phase := 2 * math.Pi * c.freq * t
		val := env * ((1-overtoneWeight)*math.Sin(phase) + overtoneWeight*math.Sin(2*phase))

		samples[i][0] = val
		samples[i][1] = val
		c.position++
	}
	return len(samples), true
}

func (c *chime) Err() error { return nil }

// newVolume scales s linearly; zero or negative volume silences it
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// ToneChime builds the chime for tone at cfg's rate and volume
func ToneChime(tone int, cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	return newVolume(NewChime(ToneFrequency(tone), ChimeDuration, rate), cfg.Volume)
}
