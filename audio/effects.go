package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// Tone describes one bell note
type Tone struct {
	Freq     float64
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
	Wave     WaveType
	Overtone float64 // share of the octave-up harmonic, 0 disables it
}

// DefaultTone is a short A5 ding with a soft octave
func DefaultTone() Tone {
	return Tone{
		Freq:     880,
		Duration: 90 * time.Millisecond,
		Attack:   4 * time.Millisecond,
		Release:  60 * time.Millisecond,
		Wave:     WaveSine,
		Overtone: 0.3,
	}
}

// oscillator generates a fixed number of samples of one waveform
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

func newOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) *oscillator {
	return &oscillator{freq: freq, duration: rate.N(duration), wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream of known length
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) *envelope {
	total := rate.N(duration)
	att, rel := rate.N(attack), rate.N(release)
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: max(total-rel, att),
	}
}

func (e *envelope) gain() float64 {
	switch {
	case e.position < e.attack:
		return float64(e.position) / float64(e.attack)
	case e.release > 0 && e.position >= e.releaseStart:
		return max(float64(e.releaseStart+e.release-e.position)/float64(e.release), 0)
	}
	return 1
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; 0 or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Streamer renders the tone at rate with a linear volume in [0, 1]
func (t Tone) Streamer(rate beep.SampleRate, volume float64) beep.Streamer {
	fund := newEnvelope(newOscillator(t.Freq, t.Duration, t.Wave, rate), t.Duration, t.Attack, t.Release, rate)
	if t.Overtone <= 0 {
		return newVolume(fund, volume)
	}
	over := newEnvelope(newOscillator(t.Freq*2, t.Duration, t.Wave, rate), t.Duration, t.Attack, t.Release/2, rate)
	return newVolume(beep.Mix(newVolume(fund, 1-t.Overtone), newVolume(over, t.Overtone)), volume)
}
