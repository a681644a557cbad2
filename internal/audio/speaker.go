package audio

import (
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Config controls the speaker-backed tone service.
type Config struct {
	Enabled    bool
	Volume     int // 0-100
	SampleRate int
}

// DefaultConfig returns audio defaults: enabled, 70% volume, 44.1kHz.
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     70,
		SampleRate: 44100,
	}
}

// Speaker plays tones on the default output device through beep.
type Speaker struct {
	sampleRate beep.SampleRate
	volume     float64
	silent     bool
	logger     *log.Logger
}

// NewSpeaker initializes the speaker. If audio is disabled it returns
// Silent; initialization failures are returned so the caller can fall back.
func NewSpeaker(cfg Config) (ToneService, error) {
	if !cfg.Enabled {
		return Silent{}, nil
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}

	sr := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	s := &Speaker{
		sampleRate: sr,
		logger:     log.New(os.Stdout, "[AUDIO] ", log.LstdFlags),
	}
	s.setVolume(cfg.Volume)
	return s, nil
}

// setVolume maps 0-100 onto beep's base-2 gain. 0 is silent.
func (s *Speaker) setVolume(v int) {
	if v <= 0 {
		s.silent = true
		return
	}
	if v > 100 {
		v = 100
	}
	s.volume = math.Log2(float64(v) / 100)
}

// Play queues a sine tone on the speaker.
func (s *Speaker) Play(freq float64, d time.Duration) <-chan struct{} {
	done := make(chan struct{})
	if d <= 0 {
		close(done)
		return done
	}

	sine, err := generators.SineTone(s.sampleRate, freq)
	if err != nil {
		s.logger.Printf("tone_rejected freq=%.2f err=%v", freq, err)
		close(done)
		return done
	}

	tone := &effects.Volume{
		Streamer: beep.Take(s.sampleRate.N(d), sine),
		Base:     2,
		Volume:   s.volume,
		Silent:   s.silent,
	}
	speaker.Play(beep.Seq(tone, beep.Callback(func() {
		close(done)
	})))
	return done
}

// Close releases the output device.
func (s *Speaker) Close() {
	speaker.Close()
}
