// Package audio plays short synthesized cues for game events.
package audio

import (
	"math"
	"sync"
	"time"

	"classic-snake/game"
	"classic-snake/game/manager"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

const (
	sampleRate = beep.SampleRate(44100)

	eatFrequency = 880.0
	eatDuration  = 60 * time.Millisecond

	buzzFrequency = 120.0
	buzzDuration  = 150 * time.Millisecond
)

// SoundManager owns the speaker. Until Initialize succeeds every Play call
// is silently dropped.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	log         zerolog.Logger
}

func NewSoundManager(log zerolog.Logger) *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		log:   log,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Close stops playback. The speaker itself stays open for the process.
func (sm *SoundManager) Close() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return nil
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
	return nil
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// FoodEaten plays a short high chirp.
func (sm *SoundManager) FoodEaten(game.Snapshot) {
	s, err := EatSound(sampleRate)
	if err != nil {
		sm.log.Warn().Err(err).Msg("Could not build eat sound")
		return
	}
	sm.play(s)
}

// GameOver plays a low buzz.
func (sm *SoundManager) GameOver(game.Snapshot, manager.CollisionType) {
	sm.play(BuzzSound(sampleRate))
}

// EatSound is a short sine chirp.
func EatSound(sr beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, eatFrequency)
	if err != nil {
		return nil, err
	}
	return beep.Take(sr.N(eatDuration), sine), nil
}

// BuzzSound is a finite low buzz built from a fundamental and two harmonics.
func BuzzSound(sr beep.SampleRate) beep.Streamer {
	return beep.Take(sr.N(buzzDuration), NewBuzzGenerator(sr, buzzFrequency))
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// 20ms fade in
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
