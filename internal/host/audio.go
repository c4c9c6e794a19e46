package host

import (
	"io"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const audioSampleRate = 44100

// Beeper turns the discrete OUT 0x03/0x05 audio triggers Space
// Invaders fires (spec.md §6) into short square-wave blips, the same
// oto.Context/oto.Player wiring as IntuitionEngine's OtoPlayer but
// simplified to one-shot triggers rather than a continuously streamed
// chip emulation.
type Beeper struct {
	ctx *oto.Context

	mu      sync.Mutex
	playing map[byte]*oto.Player
}

// NewBeeper opens the audio device. Safe to leave nil — Trigger on a
// nil *Beeper is a no-op, so a headless run can skip audio entirely.
func NewBeeper() (*Beeper, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   audioSampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	return &Beeper{ctx: ctx, playing: make(map[byte]*oto.Player)}, nil
}

// Trigger plays a short tone keyed by port/value, matching the
// i8080.CPU.AudioHook signature so it can be assigned directly:
// cpu.AudioHook = beeper.Trigger.
func (b *Beeper) Trigger(port, value byte) {
	if b == nil || value == 0 {
		return
	}

	freq := toneForValue(port, value)
	src := newSquareWaveReader(freq, audioSampleRate, 120*time.Millisecond)

	b.mu.Lock()
	if prev, ok := b.playing[port]; ok {
		_ = prev.Close()
	}
	player := b.ctx.NewPlayer(src)
	b.playing[port] = player
	b.mu.Unlock()

	player.Play()
}

// toneForValue picks a pitch from the port and bit pattern so distinct
// Space Invaders sound effects (shot, invader death, UFO, ...) are at
// least audibly distinguishable without decoding the original ROM's
// sound-board schematics.
func toneForValue(port, value byte) float64 {
	base := 220.0
	if port == 0x05 {
		base = 330.0
	}
	return base + float64(value)*4
}

// squareWaveReader is an io.Reader of float32LE PCM samples implementing
// a fixed-duration square wave, freeing Trigger from keeping any
// background goroutine alive once the clip ends.
type squareWaveReader struct {
	period   int
	samples  int
	consumed int
}

func newSquareWaveReader(freq, sampleRate float64, dur time.Duration) *squareWaveReader {
	period := int(sampleRate / freq)
	if period < 1 {
		period = 1
	}
	return &squareWaveReader{
		period:  period,
		samples: int(dur.Seconds() * sampleRate),
	}
}

func (s *squareWaveReader) Read(p []byte) (int, error) {
	n := len(p) / 4
	if n == 0 {
		return 0, nil
	}
	if s.consumed >= s.samples {
		return 0, io.EOF
	}
	if n > s.samples-s.consumed {
		n = s.samples - s.consumed
	}

	for i := 0; i < n; i++ {
		phase := (s.consumed + i) % s.period
		v := float32(-1.0)
		if phase < s.period/2 {
			v = 1.0
		}
		putFloat32LE(p[i*4:], v)
	}
	s.consumed += n
	return n * 4, nil
}

func putFloat32LE(b []byte, v float32) {
	bits := math.Float32bits(v)
	b[0] = byte(bits)
	b[1] = byte(bits >> 8)
	b[2] = byte(bits >> 16)
	b[3] = byte(bits >> 24)
}
