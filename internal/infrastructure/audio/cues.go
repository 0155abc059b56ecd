// Package audio produces the four pattern cues. The tones are synthesized
// once up front (decaying sine voices rendered to 16-bit stereo PCM) and
// played through the shared ebiten audio context, so no sound assets ship
// with the game.
package audio

import (
	"encoding/binary"
	"math"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	sampleRate  = 44100
	toneSeconds = 0.35
	volume      = 0.3
)

// Cues holds the pre-rendered tone buffers and the audio context.
type Cues struct {
	ctx   *eaudio.Context
	tones [4][]byte
}

// NewCues renders the four tones and attaches to the process audio context,
// creating it if needed.
func NewCues() *Cues {
	ctx := eaudio.CurrentContext()
	if ctx == nil {
		ctx = eaudio.NewContext(sampleRate)
	}
	c := &Cues{ctx: ctx}
	for sym := range c.tones {
		c.tones[sym] = renderTone(frequencyFor(sym))
	}
	return c
}

// frequencyFor maps a pattern symbol to its tone. Symbols are in [0,4);
// the last one is the catch-all branch.
func frequencyFor(symbol int) float64 {
	switch symbol {
	case 0:
		return 329.63 // E4
	case 1:
		return 392.00 // G4
	case 2:
		return 493.88 // B4
	default:
		return 261.63 // C4
	}
}

// renderTone renders a sine voice with an exponential decay envelope as
// 16-bit little-endian stereo PCM.
func renderTone(freq float64) []byte {
	samples := int(sampleRate * toneSeconds)
	buf := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		progress := float64(i) / float64(samples)
		env := math.Exp(-5 * progress)
		v := math.Sin(2*math.Pi*freq*float64(i)/sampleRate) * env * volume
		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[4*i:], s)
		binary.LittleEndian.PutUint16(buf[4*i+2:], s)
	}
	return buf
}

// Play plays the cue for one symbol. Each press gets its own fire-and-forget
// player so overlapping cues mix.
func (c *Cues) Play(symbol int) {
	data := c.tones[len(c.tones)-1]
	if symbol >= 0 && symbol < len(c.tones) {
		data = c.tones[symbol]
	}
	c.ctx.NewPlayerFromBytes(data).Play()
}

// PlayAll plays all four cues simultaneously.
func (c *Cues) PlayAll() {
	for _, tone := range c.tones {
		c.ctx.NewPlayerFromBytes(tone).Play()
	}
}
