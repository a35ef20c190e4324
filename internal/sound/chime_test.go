package sound

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"
)

func drain(t *testing.T, s beep.Streamer) (samples int, loudest float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			if frame[0] > loudest {
				loudest = frame[0]
			}
		}
		samples += n
		if !ok {
			return samples, loudest
		}
	}
}

func TestChimeLength(t *testing.T) {
	c := DefaultChime()
	s, err := c.Streamer()
	if err != nil {
		t.Fatal(err)
	}

	got, loudest := drain(t, s)
	want := 3*sampleRate.N(200*time.Millisecond) + 2*sampleRate.N(100*time.Millisecond)
	if got != want {
		t.Errorf("chime is %d samples, want %d", got, want)
	}
	if loudest <= 0 {
		t.Error("chime is silent")
	}
}

func TestChimeMuted(t *testing.T) {
	c := DefaultChime()
	c.Muted = true
	s, err := c.Streamer()
	if err != nil {
		t.Fatal(err)
	}
	if _, loudest := drain(t, s); loudest != 0 {
		t.Errorf("muted chime peaks at %v", loudest)
	}
}

func TestChimeNoRepeats(t *testing.T) {
	c := &Chime{Frequency: 440}
	s, err := c.Streamer()
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := drain(t, s); n != 0 {
		t.Errorf("got %d samples, want 0", n)
	}
}

func writeTone(t *testing.T, rate beep.SampleRate, d time.Duration) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chime.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	sine, err := generators.SineTone(rate, 440)
	if err != nil {
		t.Fatal(err)
	}
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, beep.Take(rate.N(d), sine), format); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestChimeFile(t *testing.T) {
	c := DefaultChime()
	c.File = writeTone(t, sampleRate, 100*time.Millisecond)

	for i := 0; i < 2; i++ {
		s, err := c.Streamer()
		if err != nil {
			t.Fatal(err)
		}
		got, loudest := drain(t, s)
		if want := sampleRate.N(100 * time.Millisecond); got != want {
			t.Errorf("play %d: %d samples, want %d", i, got, want)
		}
		if loudest <= 0 {
			t.Errorf("play %d: file chime is silent", i)
		}
	}
}

func TestChimeFileResampled(t *testing.T) {
	c := DefaultChime()
	c.File = writeTone(t, 22050, 100*time.Millisecond)

	s, err := c.Streamer()
	if err != nil {
		t.Fatal(err)
	}
	got, _ := drain(t, s)
	want := sampleRate.N(100 * time.Millisecond)
	if got < want-50 || got > want+50 {
		t.Errorf("resampled chime is %d samples, want about %d", got, want)
	}
}

func TestChimeMissingFileFallsBack(t *testing.T) {
	c := DefaultChime()
	c.File = filepath.Join(t.TempDir(), "missing.wav")

	s, err := c.Streamer()
	if err != nil {
		t.Fatal(err)
	}
	got, _ := drain(t, s)
	want := 3*sampleRate.N(200*time.Millisecond) + 2*sampleRate.N(100*time.Millisecond)
	if got != want {
		t.Errorf("fallback chime is %d samples, want %d", got, want)
	}
}
