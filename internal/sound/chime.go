// Package sound plays the chime when a countdown reaches its target.
package sound

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"github.com/rs/zerolog/log"
)

const sampleRate = beep.SampleRate(44100)

// Chime is a short run of sine beeps, or a WAV file when File is set.
type Chime struct {
	File      string // falls back to the beeps if it cannot be decoded
	Frequency float64
	Beep      time.Duration
	Gap       time.Duration
	Repeat    int
	Volume    float64 // in halvings, 0 is unchanged and -1 is half as loud
	Muted     bool

	once    sync.Once
	initErr error

	fileOnce sync.Once
	buffer   *beep.Buffer
	fileErr  error
}

// DefaultChime returns three 880Hz beeps.
func DefaultChime() *Chime {
	return &Chime{
		Frequency: 880,
		Beep:      200 * time.Millisecond,
		Gap:       100 * time.Millisecond,
		Repeat:    3,
	}
}

// Streamer builds the chime's audio.
func (c *Chime) Streamer() (beep.Streamer, error) {
	var s beep.Streamer
	if c.File != "" {
		buffer, err := c.load()
		if err == nil {
			s = buffer.Streamer(0, buffer.Len())
		} else {
			log.Warn().Err(err).Str("file", c.File).Msg("chime file unusable, using beeps")
		}
	}
	if s == nil {
		tone, err := c.tone()
		if err != nil {
			return nil, err
		}
		s = tone
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   c.Volume,
		Silent:   c.Muted,
	}, nil
}

func (c *Chime) tone() (beep.Streamer, error) {
	if c.Repeat <= 0 {
		return beep.Silence(0), nil
	}
	parts := make([]beep.Streamer, 0, c.Repeat*2-1)
	for i := 0; i < c.Repeat; i++ {
		if i > 0 {
			parts = append(parts, beep.Silence(sampleRate.N(c.Gap)))
		}
		sine, err := generators.SineTone(sampleRate, c.Frequency)
		if err != nil {
			return nil, fmt.Errorf("sine tone %vHz: %w", c.Frequency, err)
		}
		parts = append(parts, beep.Take(sampleRate.N(c.Beep), sine))
	}
	return beep.Seq(parts...), nil
}

// load decodes File into memory once, resampled to the speaker rate.
func (c *Chime) load() (*beep.Buffer, error) {
	c.fileOnce.Do(func() {
		f, err := os.Open(c.File)
		if err != nil {
			c.fileErr = err
			return
		}
		defer f.Close()

		streamer, format, err := wav.Decode(f)
		if err != nil {
			c.fileErr = fmt.Errorf("decode %s: %w", c.File, err)
			return
		}
		defer streamer.Close()

		var s beep.Streamer = streamer
		if format.SampleRate != sampleRate {
			s = beep.Resample(4, format.SampleRate, sampleRate, streamer)
		}
		format.SampleRate = sampleRate
		c.buffer = beep.NewBuffer(format)
		c.buffer.Append(s)
	})
	return c.buffer, c.fileErr
}

// Play starts the chime on the default audio device without waiting for it
// to finish. The speaker is initialized on first use.
func (c *Chime) Play() error {
	c.once.Do(func() {
		c.initErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
		if c.initErr != nil {
			log.Warn().Err(c.initErr).Msg("audio device unavailable")
		}
	})
	if c.initErr != nil {
		return fmt.Errorf("init speaker: %w", c.initErr)
	}

	s, err := c.Streamer()
	if err != nil {
		return err
	}
	speaker.Play(s)
	return nil
}
