package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// waveType selects an oscillator shape.
type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveSaw
	waveNoise
)

// oscillator generates a fixed-length wave, optionally gliding to an end
// frequency.
type oscillator struct {
	from, to float64
	phase    float64
	duration int
	position int
	wave     waveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

func newOscillator(from, to float64, duration time.Duration, wave waveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case waveSaw:
			val = 2 * (o.phase - 0.5)
		case waveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.from + (o.to-o.from)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream of known length.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Max(float64(remaining)/float64(e.release), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// tone is one synthesized segment.
type tone struct {
	from, to float64
	length   time.Duration
	wave     waveType
}

// recipes describe the placeholder effects used when a file is missing.
var recipes = map[Name][]tone{
	Wing:   {{from: 500, to: 900, length: 70 * time.Millisecond, wave: waveSquare}},
	Hit:    {{length: 90 * time.Millisecond, wave: waveNoise}},
	Die:    {{from: 440, to: 110, length: 400 * time.Millisecond, wave: waveSaw}},
	Point:  {{from: 988, to: 988, length: 80 * time.Millisecond, wave: waveSine}, {from: 1319, to: 1319, length: 160 * time.Millisecond, wave: waveSine}},
	Swoosh: {{from: 200, to: 1200, length: 250 * time.Millisecond, wave: waveNoise}},
}

// synthesize builds the placeholder streamer for name at the given rate.
func synthesize(name Name, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(recipes[name]))
	for _, t := range recipes[name] {
		osc := newOscillator(t.from, t.to, t.length, t.wave, rate)
		parts = append(parts, newEnvelope(osc, t.length, 5*time.Millisecond, t.length/3, rate))
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   -2,
	}
}

// PCM16 renders the synthesized effect for name as interleaved 16-bit
// little-endian stereo, the layout hosts with their own mixers expect.
func PCM16(name Name, sampleRate int) []byte {
	format := Format(sampleRate)
	s := synthesize(name, format.SampleRate)

	var out []byte
	samples := make([][2]float64, 512)
	frame := make([]byte, format.Width())
	for {
		n, ok := s.Stream(samples)
		for _, sample := range samples[:n] {
			format.EncodeSigned(frame, sample)
			out = append(out, frame...)
		}
		if !ok {
			return out
		}
	}
}
