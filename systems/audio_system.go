package systems

import (
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"ebiten-quadgen/generation"
)

const (
	blipFrequency = 880.0
	blipSeconds   = 0.06
)

// AudioSystem plays a short blip whenever a room is painted
type AudioSystem struct {
	audioContext *audio.Context
	lastPlayer   *audio.Player
	blip         []byte
	volume       float64
	muted        bool
	sampleRate   int
}

// NewAudioSystem creates a new audio system
func NewAudioSystem() *AudioSystem {
	sampleRate := 44100
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	} else {
		sampleRate = ctx.SampleRate()
	}
	return &AudioSystem{
		audioContext: ctx,
		blip:         SynthBlip(sampleRate, blipFrequency, blipSeconds),
		volume:       0.3,
		sampleRate:   sampleRate,
	}
}

// SynthBlip renders a square wave with a linear fade out as 16-bit little endian stereo PCM
func SynthBlip(sampleRate int, freq, seconds float64) []byte {
	frames := int(math.Round(float64(sampleRate) * seconds))
	buf := make([]byte, frames*4)
	period := float64(sampleRate) / freq

	for i := 0; i < frames; i++ {
		amp := 0.5 * (1 - float64(i)/float64(frames))
		v := amp
		if math.Mod(float64(i), period) >= period/2 {
			v = -amp
		}
		sample := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], sample)
		binary.LittleEndian.PutUint16(buf[i*4+2:], sample)
	}
	return buf
}

// Paint implements Painter; only rooms make a sound
func (s *AudioSystem) Paint(d generation.DrawInstruction) {
	if s.muted || d.Color != generation.White || d.IsEnd() {
		return
	}
	if s.lastPlayer != nil && !s.lastPlayer.IsPlaying() {
		s.lastPlayer.Close()
	}
	p := s.audioContext.NewPlayerFromBytes(s.blip)
	p.SetVolume(s.volume)
	p.Play()
	s.lastPlayer = p
}

// ToggleMute switches sound on or off
func (s *AudioSystem) ToggleMute() {
	s.muted = !s.muted
}

// IsMuted reports whether sound is off
func (s *AudioSystem) IsMuted() bool {
	return s.muted
}
