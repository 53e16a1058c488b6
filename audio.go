package main

import (
	"sync"

	"github.com/ebitengine/oto/v3"
)

const defaultSampleRate = 44100

var (
	audioOnce       sync.Once
	audioCtx        *oto.Context
	audioSampleRate int
	audioErr        error
)

// initAudioContext opens the output device once per process. oto allows a
// single context, so the music file, when configured, decides the sample
// rate and the synthesized effects follow it.
func initAudioContext(musicFile string) (*oto.Context, int, error) {
	audioOnce.Do(func() {
		sampleRate := defaultSampleRate
		if musicFile != "" {
			if dec, err := newSafeDecoder(musicFile); err == nil {
				sampleRate = dec.SampleRate()
			} else {
				debugLog().Warn("music decoder unavailable, using default sample rate", "file", musicFile, "err", err)
			}
		}
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: 2,
			Format:       oto.FormatSignedInt16LE,
		})
		if err != nil {
			audioErr = err
			return
		}
		<-ready
		audioCtx = ctx
		audioSampleRate = sampleRate
	})
	return audioCtx, audioSampleRate, audioErr
}
