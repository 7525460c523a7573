// Package audio rings the UI bell through the system speaker.
// Without an audio device the bell stays silent and never fails the caller.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

const (
	sampleRate = beep.SampleRate(48000)

	// minRingInterval collapses bursts of bells into one tone
	minRingInterval = 80 * time.Millisecond
)

// Bell plays a Tone on demand
type Bell struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	tone        Tone
	volume      float64
	initialized bool
	lastRing    time.Time
	rings       int
	log         *zap.Logger
}

// NewBell creates an uninitialized bell; Ring is a no-op until Initialize succeeds
func NewBell(tone Tone, volume float64, log *zap.Logger) *Bell {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bell{
		mixer:  &beep.Mixer{},
		tone:   tone,
		volume: min(max(volume, 0), 1),
		log:    log,
	}
}

// Initialize opens the speaker and starts the mixer
func (b *Bell) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		b.log.Info("audio unavailable, bell is silent", zap.Error(err))
		return err
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Ring queues the tone; rings closer than minRingInterval are dropped
func (b *Bell) Ring() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized || b.volume == 0 {
		return
	}
	now := time.Now()
	if now.Sub(b.lastRing) < minRingInterval {
		return
	}
	b.lastRing = now
	b.rings++

	speaker.Lock()
	b.mixer.Add(b.tone.Streamer(sampleRate, b.volume))
	speaker.Unlock()
}

// Rings counts the tones actually queued
func (b *Bell) Rings() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rings
}

// Close silences pending tones
func (b *Bell) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	b.initialized = false
}
