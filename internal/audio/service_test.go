package audio

import (
	"math"
	"testing"
	"time"
)

func TestSilentPlayReturnsClosedChannel(t *testing.T) {
	done := Silent{}.Play(440, time.Second)
	select {
	case <-done:
	default:
		t.Fatal("expected Silent.Play to return a closed channel")
	}
}

func TestRecorderRecordsTones(t *testing.T) {
	r := NewRecorder()
	r.Play(261.63, 500*time.Millisecond)
	r.Play(329.63, 300*time.Millisecond)

	tones := r.Tones()
	if len(tones) != 2 {
		t.Fatalf("expected 2 tones, got %d", len(tones))
	}
	if tones[0].Frequency != 261.63 || tones[0].Duration != 500*time.Millisecond {
		t.Errorf("unexpected first tone: %+v", tones[0])
	}

	tones[0].Frequency = 1
	if r.Tones()[0].Frequency != 261.63 {
		t.Error("Tones must return a copy")
	}

	r.Reset()
	if len(r.Tones()) != 0 {
		t.Error("expected no tones after Reset")
	}
}

func TestNewSpeakerDisabledIsSilent(t *testing.T) {
	svc, err := NewSpeaker(Config{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := svc.(Silent); !ok {
		t.Errorf("expected Silent service when disabled, got %T", svc)
	}
}

func TestSpeakerVolumeMapping(t *testing.T) {
	tests := []struct {
		volume     int
		wantSilent bool
		wantGain   float64
	}{
		{0, true, 0},
		{100, false, 0},
		{50, false, -1},
		{25, false, -2},
		{150, false, 0},
	}

	for _, tt := range tests {
		s := &Speaker{}
		s.setVolume(tt.volume)
		if s.silent != tt.wantSilent {
			t.Errorf("volume %d: expected silent=%v, got %v", tt.volume, tt.wantSilent, s.silent)
		}
		if !tt.wantSilent && math.Abs(s.volume-tt.wantGain) > 1e-9 {
			t.Errorf("volume %d: expected gain %f, got %f", tt.volume, tt.wantGain, s.volume)
		}
	}
}
