package audio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestCueNames(t *testing.T) {
	tests := []struct {
		cue  Cue
		name string
	}{
		{CueJump, "jump"},
		{CueCoin, "coin"},
		{CuePowerUp, "powerup"},
		{CueHit, "hit"},
		{CueEngine, "engine-tick"},
		{CueShoot, "shoot"},
		{CueBlast, "blast"},
		{CueRunnerJump, "runner-jump"},
		{Cue(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.cue.String(); got != tt.name {
			t.Errorf("Cue(%d).String() = %q, expected %q", tt.cue, got, tt.name)
		}
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Play(CueCoin)
	r.Play(CueHit)
	r.Play(CueCoin)

	if got := r.Count(CueCoin); got != 2 {
		t.Errorf("Count(coin) = %d, expected 2", got)
	}
	cues := r.Cues()
	if len(cues) != 3 || cues[1] != CueHit {
		t.Errorf("Cues() = %v", cues)
	}

	r.Reset()
	if len(r.Cues()) != 0 {
		t.Error("Reset should clear cues")
	}
}

func TestMultiAndBell(t *testing.T) {
	var buf bytes.Buffer
	var rec Recorder
	sink := Multi{&rec, NewBell(&buf), OrNop(nil)}

	sink.Play(CueJump)
	sink.Play(CueBlast)

	if len(rec.Cues()) != 2 {
		t.Errorf("recorder should see both cues, got %v", rec.Cues())
	}
	if buf.String() != "\a" {
		t.Errorf("bell should ring once for blast, got %q", buf.String())
	}
}

func TestLoggerSink(t *testing.T) {
	var buf bytes.Buffer
	l := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	NewLogger(l).Play(CueShoot)

	if !strings.Contains(buf.String(), "shoot") {
		t.Errorf("log output %q should name the cue", buf.String())
	}
}
