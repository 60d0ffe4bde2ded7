// Package audio provides looping background music for the gallery.
package audio

import (
	"bytes"
	"fmt"
	"io"
	gomath "math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Manager plays a single looping BGM track with volume control.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	playing  bool
	path     string

	volLevel float64 // 0.0 to 1.0
}

// New creates a new audio manager.
func New() *Manager {
	return &Manager{volLevel: 0.6}
}

// Init initializes the audio system.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	m.sampleRate = DefaultSampleRate
	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	m.initialized = true
	return nil
}

// Close shuts down the audio system.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopInternal()
	speaker.Clear()
	m.initialized = false
}

// PlayFile starts looping the WAV file at path as background music,
// replacing whatever was playing.
func (m *Manager) PlayFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read bgm: %w", err)
	}
	return m.play(data, path)
}

func (m *Manager) play(data []byte, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return fmt.Errorf("audio not initialized")
	}

	m.stopInternal()

	streamer, format, err := wav.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return fmt.Errorf("decode wav: %w", err)
	}

	var resampled beep.Streamer = streamer
	if format.SampleRate != m.sampleRate {
		resampled = beep.Resample(4, format.SampleRate, m.sampleRate, streamer)
	}

	looped := &loopStreamer{seeker: streamer, resampled: resampled}

	m.ctrl = &beep.Ctrl{Streamer: looped}
	m.volume = &effects.Volume{Streamer: m.ctrl, Base: 2}
	m.applyVolume()

	m.streamer = streamer
	m.path = path
	m.playing = true

	speaker.Play(m.volume)
	return nil
}

// Stop stops the current background music.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopInternal()
}

func (m *Manager) stopInternal() {
	if m.ctrl != nil {
		m.ctrl.Paused = true
	}
	if m.initialized {
		speaker.Clear()
	}
	if m.streamer != nil {
		m.streamer.Close()
		m.streamer = nil
	}
	m.ctrl = nil
	m.volume = nil
	m.path = ""
	m.playing = false
}

// Pause pauses playback, keeping the track loaded.
func (m *Manager) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ctrl != nil {
		speaker.Lock()
		m.ctrl.Paused = true
		speaker.Unlock()
		m.playing = false
	}
}

// Resume continues paused playback.
func (m *Manager) Resume() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ctrl != nil {
		speaker.Lock()
		m.ctrl.Paused = false
		speaker.Unlock()
		m.playing = true
	}
}

// Playing reports whether BGM is currently playing.
func (m *Manager) Playing() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.playing
}

// Path returns the path of the loaded BGM track.
func (m *Manager) Path() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.path
}

// SetVolume sets playback volume (0.0 to 1.0).
func (m *Manager) SetVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volLevel = clamp(vol, 0, 1)
	m.applyVolume()
}

// Volume returns the current volume level.
func (m *Manager) Volume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.volLevel
}

func (m *Manager) applyVolume() {
	if m.volume == nil {
		return
	}
	if m.volLevel <= 0 {
		m.volume.Silent = true
		return
	}
	m.volume.Silent = false
	m.volume.Volume = volumeToDb(m.volLevel)
}

// volumeToDb converts a 0-1 volume to the decibel scale effects.Volume
// expects: 1 maps to 0dB, 0.5 to about -6dB.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	return 20 * gomath.Log10(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// loopStreamer restarts the underlying track when it runs out.
type loopStreamer struct {
	seeker    beep.StreamSeekCloser
	resampled beep.Streamer
}

func (l *loopStreamer) Stream(samples [][2]float64) (int, bool) {
	filled := 0
	rewound := false
	for filled < len(samples) {
		n, ok := l.resampled.Stream(samples[filled:])
		filled += n
		if n > 0 {
			rewound = false
		}
		if !ok {
			// A track that yields nothing even after rewinding would
			// spin here forever inside the speaker goroutine
			if rewound {
				return filled, false
			}
			if err := l.seeker.Seek(0); err != nil {
				return filled, false
			}
			rewound = true
		}
	}
	return filled, true
}

func (l *loopStreamer) Err() error {
	return l.seeker.Err()
}
