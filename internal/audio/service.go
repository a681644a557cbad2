package audio

import (
	"sync"
	"time"
)

// ToneService plays a sine tone of the given frequency for d. Playback is
// fire-and-forget: the returned channel closes when the tone has finished
// and callers are free to ignore it.
type ToneService interface {
	Play(freq float64, d time.Duration) <-chan struct{}
}

// Tone is one played tone.
type Tone struct {
	Frequency float64
	Duration  time.Duration
}

// Silent discards every tone. Used when no audio device is available.
type Silent struct{}

// Play returns an already closed channel.
func (Silent) Play(float64, time.Duration) <-chan struct{} {
	done := make(chan struct{})
	close(done)
	return done
}

// Recorder records every requested tone and plays nothing.
type Recorder struct {
	mu    sync.Mutex
	tones []Tone
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Play records the tone.
func (r *Recorder) Play(freq float64, d time.Duration) <-chan struct{} {
	r.mu.Lock()
	r.tones = append(r.tones, Tone{Frequency: freq, Duration: d})
	r.mu.Unlock()

	done := make(chan struct{})
	close(done)
	return done
}

// Tones returns a copy of the recorded tones.
func (r *Recorder) Tones() []Tone {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Tone(nil), r.tones...)
}

// Reset forgets recorded tones.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.tones = nil
	r.mu.Unlock()
}
