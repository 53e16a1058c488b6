package main

import (
	"bytes"
	"math"
	"sync"
	"time"

	"github.com/ByrboxRepo/tetris/internal/engine"
	"github.com/ebitengine/oto/v3"
)

type SoundEvent int

const (
	SoundMove SoundEvent = iota
	SoundRotate
	SoundLine1
	SoundLine2
	SoundLine3
	SoundLine4
	SoundGameOver
	SoundMenuMove
	SoundMenuSelect
)

// soundForEvent picks the effect for an engine event.
func soundForEvent(ev engine.Event) SoundEvent {
	switch ev.Kind {
	case engine.EventRotate:
		return SoundRotate
	case engine.EventLineClear:
		switch {
		case ev.Lines >= 4:
			return SoundLine4
		case ev.Lines == 3:
			return SoundLine3
		case ev.Lines == 2:
			return SoundLine2
		default:
			return SoundLine1
		}
	case engine.EventGameOver:
		return SoundGameOver
	default:
		return SoundMove
	}
}

// SoundEngine synthesizes short tones on the shared oto context. A nil
// engine or a nil context plays nothing.
type SoundEngine struct {
	mu         sync.RWMutex
	enabled    bool
	sampleRate int
	ctx        *oto.Context
	volume     float64
}

func NewSoundEngine(ctx *oto.Context, sampleRate int, enabled bool) *SoundEngine {
	if sampleRate <= 0 {
		sampleRate = defaultSampleRate
	}
	return &SoundEngine{
		enabled:    enabled && ctx != nil,
		sampleRate: sampleRate,
		ctx:        ctx,
		volume:     0.7,
	}
}

func (s *SoundEngine) SetEnabled(enabled bool) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.enabled = enabled && s.ctx != nil
	s.mu.Unlock()
}

func (s *SoundEngine) SetVolume(volume float64) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.volume = clampVolume(volume)
	s.mu.Unlock()
}

func (s *SoundEngine) Play(event SoundEvent) {
	if s == nil {
		return
	}
	s.mu.RLock()
	ctx := s.ctx
	enabled := s.enabled
	volume := s.volume
	sampleRate := s.sampleRate
	s.mu.RUnlock()
	if !enabled || ctx == nil {
		return
	}
	sequence := tonesForEvent(event)
	if len(sequence) == 0 {
		return
	}
	go func() {
		buffer := renderToneSequence(sequence, sampleRate, volume)
		player := ctx.NewPlayer(bytes.NewReader(buffer))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(5 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			debugLog().Debug("sound player close", "err", err)
		}
	}()
}

type toneSpec struct {
	frequency float64
	duration  time.Duration
	volume    float64
}

func tonesForEvent(event SoundEvent) []toneSpec {
	switch event {
	case SoundMove:
		return []toneSpec{{frequency: 380, duration: 25 * time.Millisecond, volume: 0.18}}
	case SoundRotate:
		return []toneSpec{{frequency: 520, duration: 40 * time.Millisecond, volume: 0.25}}
	case SoundLine1:
		return []toneSpec{{frequency: 440, duration: 90 * time.Millisecond, volume: 0.3}}
	case SoundLine2:
		return []toneSpec{
			{frequency: 440, duration: 70 * time.Millisecond, volume: 0.3},
			{frequency: 660, duration: 90 * time.Millisecond, volume: 0.3},
		}
	case SoundLine3:
		return []toneSpec{
			{frequency: 440, duration: 70 * time.Millisecond, volume: 0.3},
			{frequency: 660, duration: 70 * time.Millisecond, volume: 0.3},
			{frequency: 880, duration: 90 * time.Millisecond, volume: 0.3},
		}
	case SoundLine4:
		return []toneSpec{
			{frequency: 660, duration: 80 * time.Millisecond, volume: 0.3},
			{frequency: 880, duration: 80 * time.Millisecond, volume: 0.3},
			{frequency: 990, duration: 120 * time.Millisecond, volume: 0.3},
		}
	case SoundGameOver:
		return []toneSpec{
			{frequency: 330, duration: 120 * time.Millisecond, volume: 0.28},
			{frequency: 247, duration: 120 * time.Millisecond, volume: 0.28},
			{frequency: 180, duration: 240 * time.Millisecond, volume: 0.28},
		}
	case SoundMenuMove:
		return []toneSpec{{frequency: 260, duration: 24 * time.Millisecond, volume: 0.16}}
	case SoundMenuSelect:
		return []toneSpec{{frequency: 520, duration: 70 * time.Millisecond, volume: 0.2}}
	default:
		return nil
	}
}

const (
	bytesPerFrame = 4
	toneGap       = 10 * time.Millisecond
)

func samplesFor(d time.Duration, sampleRate int) int {
	return int(float64(sampleRate) * d.Seconds())
}

// renderToneSequence returns 16-bit little-endian stereo PCM for the tones
// separated by short silences.
func renderToneSequence(sequence []toneSpec, sampleRate int, masterVolume float64) []byte {
	gapSamples := samplesFor(toneGap, sampleRate)
	totalSamples := 0
	for i, tone := range sequence {
		totalSamples += samplesFor(tone.duration, sampleRate)
		if i < len(sequence)-1 {
			totalSamples += gapSamples
		}
	}
	buffer := make([]byte, totalSamples*bytesPerFrame)
	index := 0
	for i, tone := range sequence {
		volume := 0.3
		if tone.volume > 0 {
			volume = tone.volume
		}
		volume *= clampVolume(masterVolume)
		renderTone(buffer, index, tone, sampleRate, volume)
		index += samplesFor(tone.duration, sampleRate) * bytesPerFrame
		if i < len(sequence)-1 {
			index += gapSamples * bytesPerFrame
		}
	}
	return buffer
}

func renderTone(buffer []byte, start int, tone toneSpec, sampleRate int, volume float64) {
	const maxInt16 = 1<<15 - 1
	samples := samplesFor(tone.duration, sampleRate)
	// 3ms linear fade at both ends keeps the tone from clicking.
	fadeSamples := int(float64(sampleRate) * 0.003)
	for i := 0; i < samples; i++ {
		env := 1.0
		if fadeSamples > 0 {
			if i < fadeSamples {
				env = float64(i) / float64(fadeSamples)
			} else if i > samples-fadeSamples {
				env = float64(samples-i) / float64(fadeSamples)
			}
		}
		sample := math.Sin(2 * math.Pi * tone.frequency * float64(i) / float64(sampleRate))
		value := int16(sample * volume * env * maxInt16)
		// Same sample on both channels, little-endian.
		buffer[start+i*4] = byte(value)
		buffer[start+i*4+1] = byte(value >> 8)
		buffer[start+i*4+2] = byte(value)
		buffer[start+i*4+3] = byte(value >> 8)
	}
}

func clampVolume(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

func volumeFromPercent(value int) float64 {
	return clampVolume(float64(value) / 100)
}
