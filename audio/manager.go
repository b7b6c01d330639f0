// Package audio provides best-effort procedural sound playback. A
// manager that failed to initialize (or was never enabled) swallows
// every Play call silently; gameplay never depends on audio state.
package audio

import (
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/DipFlip/farmpire-survivors/config"
)

const sampleRate = beep.SampleRate(48000)

// Manager owns the speaker and a mixer of fire-and-forget tones.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	sounds      map[string]config.SoundConfig
	rng         *rand.Rand
	initialized bool
}

// NewManager creates a manager from the configured sound table. It
// does not touch the audio device until Initialize.
func NewManager(cfg config.AudioConfig, seed int64) *Manager {
	return &Manager{
		mixer:  &beep.Mixer{},
		sounds: cfg.Sounds,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Initialize opens the speaker. Safe to call more than once.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup silences and releases all streamers.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.mixer.Clear()
	m.initialized = false
}

// Play fires the named sound once, with a pitch multiplier sampled
// uniformly from the sound's configured range. Unknown names and an
// uninitialized manager are silent no-ops.
func (m *Manager) Play(name string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	s, ok := m.sounds[name]
	if !ok {
		return
	}

	pitch := s.PitchMin
	if s.PitchMax > s.PitchMin {
		pitch += m.rng.Float64() * (s.PitchMax - s.PitchMin)
	}
	freq := s.Frequency * pitch

	samples := sampleRate.N(time.Duration(s.Seconds * float64(time.Second)))
	m.mixer.Add(beep.Take(samples, newToneGenerator(sampleRate, freq, samples)))
}
