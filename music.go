package main

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/hajimehoshi/go-mp3"
)

// MusicPlayer loops a user supplied mp3 file while a game is running.
type MusicPlayer struct {
	ctx    *oto.Context
	file   string
	mu     sync.Mutex
	player *oto.Player
	dec    *safeDecoder
	stop   chan struct{}
	volume float64
}

// NewMusicPlayer returns nil when there is no audio device or no file, and
// every method is safe on a nil player.
func NewMusicPlayer(ctx *oto.Context, file string, volume float64) *MusicPlayer {
	if ctx == nil || file == "" {
		return nil
	}
	return &MusicPlayer{
		ctx:    ctx,
		file:   file,
		volume: clampVolume(volume),
	}
}

func (m *MusicPlayer) SetVolume(volume float64) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.volume = clampVolume(volume)
	m.mu.Unlock()
}

func (m *MusicPlayer) Start() {
	if m == nil {
		return
	}
	m.mu.Lock()
	if m.player != nil {
		m.mu.Unlock()
		return
	}
	dec, err := newSafeDecoder(m.file)
	if err != nil {
		m.mu.Unlock()
		debugLog().Warn("music decode failed", "file", m.file, "err", err)
		return
	}
	vr := &volumeReader{
		reader:    dec,
		getVolume: m.volumeValue,
	}
	player := m.ctx.NewPlayer(vr)
	player.Play()
	m.player = player
	m.dec = dec
	m.stop = make(chan struct{})
	stop := m.stop
	m.mu.Unlock()
	debugLog().Debug("music started", "file", m.file)

	go func() {
		ticker := time.NewTicker(120 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if !player.IsPlaying() {
					if err := dec.Rewind(); err != nil {
						debugLog().Warn("music rewind failed", "err", err)
						return
					}
					player.Play()
				}
			}
		}
	}()
}

func (m *MusicPlayer) Stop() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.stopLocked()
	m.mu.Unlock()
}

func (m *MusicPlayer) stopLocked() {
	if m.stop != nil {
		close(m.stop)
		m.stop = nil
	}
	if m.player != nil {
		_ = m.player.Close()
		m.player = nil
	}
	m.dec = nil
}

func (m *MusicPlayer) volumeValue() float64 {
	m.mu.Lock()
	volume := m.volume
	m.mu.Unlock()
	return volume
}

// safeDecoder serializes access to the mp3 decoder between the oto reader
// goroutine and the loop goroutine.
type safeDecoder struct {
	mu  sync.Mutex
	dec *mp3.Decoder
}

func newSafeDecoder(path string) (*safeDecoder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	dec, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &safeDecoder{dec: dec}, nil
}

func (s *safeDecoder) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dec.Read(p)
}

func (s *safeDecoder) Rewind() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.dec.Seek(0, io.SeekStart)
	return err
}

func (s *safeDecoder) SampleRate() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dec.SampleRate()
}

// volumeReader scales 16-bit PCM samples as they are read.
type volumeReader struct {
	reader    io.Reader
	getVolume func() float64
}

func (v *volumeReader) Read(p []byte) (int, error) {
	n, err := v.reader.Read(p)
	volume := clampVolume(v.getVolume())
	if volume >= 0.999 {
		return n, err
	}
	for i := 0; i+1 < n; i += 2 {
		sample := int16(binary.LittleEndian.Uint16(p[i:]))
		scaled := int16(float64(sample) * volume)
		binary.LittleEndian.PutUint16(p[i:], uint16(scaled))
	}
	return n, err
}
