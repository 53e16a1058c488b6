package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ByrboxRepo/tetris/internal/engine"
)

func TestSoundForEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   engine.Event
		want SoundEvent
	}{
		{"move", engine.Event{Kind: engine.EventMove}, SoundMove},
		{"rotate", engine.Event{Kind: engine.EventRotate}, SoundRotate},
		{"single", engine.Event{Kind: engine.EventLineClear, Lines: 1}, SoundLine1},
		{"double", engine.Event{Kind: engine.EventLineClear, Lines: 2}, SoundLine2},
		{"triple", engine.Event{Kind: engine.EventLineClear, Lines: 3}, SoundLine3},
		{"tetris", engine.Event{Kind: engine.EventLineClear, Lines: 4}, SoundLine4},
		{"game over", engine.Event{Kind: engine.EventGameOver}, SoundGameOver},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, soundForEvent(tt.ev))
		})
	}
}

func TestRenderToneSequenceLength(t *testing.T) {
	const rate = 8000
	sequence := []toneSpec{
		{frequency: 440, duration: 100 * time.Millisecond},
		{frequency: 660, duration: 50 * time.Millisecond},
	}

	buffer := renderToneSequence(sequence, rate, 1)

	frames := samplesFor(150*time.Millisecond, rate) + samplesFor(toneGap, rate)
	assert.Len(t, buffer, frames*bytesPerFrame)
}

func TestRenderToneSequenceSilentAtZeroVolume(t *testing.T) {
	buffer := renderToneSequence(tonesForEvent(SoundLine1), 8000, 0)
	for _, b := range buffer {
		if b != 0 {
			t.Fatalf("expected silence, got byte %d", b)
		}
	}
}

func TestNilSoundEngineIsSafe(t *testing.T) {
	var s *SoundEngine
	s.SetEnabled(true)
	s.SetVolume(0.5)
	s.Play(SoundRotate)

	quiet := NewSoundEngine(nil, 0, true)
	assert.False(t, quiet.enabled)
	assert.Equal(t, defaultSampleRate, quiet.sampleRate)
	quiet.Play(SoundRotate)
}

func TestVolumeFromPercent(t *testing.T) {
	assert.InDelta(t, 0.7, volumeFromPercent(70), 1e-9)
	assert.Zero(t, volumeFromPercent(-10))
	assert.Equal(t, 1.0, volumeFromPercent(150))
}
