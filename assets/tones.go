package assets

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const SampleRate = 44100

type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Note is one enveloped oscillator voice.
type Note struct {
	Freq    float64
	Wave    WaveType
	Length  time.Duration
	Attack  time.Duration
	Release time.Duration
	Volume  float64
}

// Tone is a cue: Chord voices play together, Notes play in sequence after
// the chord.
type Tone struct {
	Chord []Note
	Notes []Note
}

var tones = map[string]Tone{
	"grass": {Chord: []Note{
		{Freq: 196, Wave: WaveSine, Length: 90 * time.Millisecond, Attack: 4 * time.Millisecond, Release: 70 * time.Millisecond, Volume: 0.6},
		{Wave: WaveNoise, Length: 40 * time.Millisecond, Attack: time.Millisecond, Release: 35 * time.Millisecond, Volume: 0.15},
	}},
	"stone": {Chord: []Note{
		{Freq: 110, Wave: WaveSaw, Length: 120 * time.Millisecond, Attack: 2 * time.Millisecond, Release: 90 * time.Millisecond, Volume: 0.4},
	}},
	"arm_grow": {Notes: []Note{
		{Freq: 659.25, Wave: WaveSine, Length: 80 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 40 * time.Millisecond, Volume: 0.5},
		{Freq: 880, Wave: WaveSine, Length: 140 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 100 * time.Millisecond, Volume: 0.5},
	}},
	"arm_unlock": {Chord: []Note{
		{Freq: 880, Wave: WaveSine, Length: 400 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 380 * time.Millisecond, Volume: 0.5},
		{Freq: 1760, Wave: WaveSine, Length: 400 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 200 * time.Millisecond, Volume: 0.2},
	}},
	"arm_shortcut": {Notes: []Note{
		{Freq: 987.77, Wave: WaveSquare, Length: 80 * time.Millisecond, Attack: 2 * time.Millisecond, Release: 30 * time.Millisecond, Volume: 0.25},
		{Freq: 1318.51, Wave: WaveSquare, Length: 260 * time.Millisecond, Attack: 2 * time.Millisecond, Release: 200 * time.Millisecond, Volume: 0.25},
	}},
	"ending": {Notes: []Note{
		{Freq: 523.25, Wave: WaveSine, Length: 180 * time.Millisecond, Attack: 10 * time.Millisecond, Release: 60 * time.Millisecond, Volume: 0.5},
		{Freq: 659.25, Wave: WaveSine, Length: 180 * time.Millisecond, Attack: 10 * time.Millisecond, Release: 60 * time.Millisecond, Volume: 0.5},
		{Freq: 783.99, Wave: WaveSine, Length: 180 * time.Millisecond, Attack: 10 * time.Millisecond, Release: 60 * time.Millisecond, Volume: 0.5},
		{Freq: 1046.5, Wave: WaveSine, Length: 600 * time.Millisecond, Attack: 10 * time.Millisecond, Release: 500 * time.Millisecond, Volume: 0.5},
	}},
}

func ToneNames() []string {
	return []string{"grass", "stone", "arm_grow", "arm_unlock", "arm_shortcut", "ending"}
}

// ToneBytes renders the named cue as 16-bit little-endian stereo PCM at
// SampleRate, the format ebiten's audio players take directly.
func ToneBytes(name string) ([]byte, error) {
	tone, ok := tones[name]
	if !ok {
		return nil, fmt.Errorf("assets: unknown tone %q", name)
	}
	return Render(tone.Streamer(beep.SampleRate(SampleRate))), nil
}

func (t Tone) Streamer(rate beep.SampleRate) beep.Streamer {
	var parts []beep.Streamer
	if len(t.Chord) > 0 {
		voices := make([]beep.Streamer, 0, len(t.Chord))
		for _, n := range t.Chord {
			voices = append(voices, n.Streamer(rate))
		}
		parts = append(parts, beep.Mix(voices...))
	}
	for _, n := range t.Notes {
		parts = append(parts, n.Streamer(rate))
	}
	return beep.Seq(parts...)
}

func (n Note) Streamer(rate beep.SampleRate) beep.Streamer {
	osc := newOscillator(n.Freq, n.Length, n.Wave, rate)
	shaped := newEnvelope(osc, n.Length, n.Attack, n.Release, rate)
	return newVolume(shaped, n.Volume)
}

// Render drains s into PCM bytes.
func Render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				out = binary.LittleEndian.AppendUint16(out, uint16(toPCM(v)))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}

func toPCM(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

func newOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, duration: rate.N(duration), wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
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
		case WaveNoise:
			val = rand.Float64()*2 - 1
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

type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{streamer: s, attack: rate.N(attack), release: rate.N(release), total: rate.N(duration)}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.streamer.Stream(samples)
	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is expressed as silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
