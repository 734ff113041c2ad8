package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"
)

// Fallback cue when no clip is found.
const (
	beepFreq     = 880
	beepDuration = 80 * time.Millisecond
)

// Sample is a decoded clip held in memory so it can be started any number of
// times, overlapping itself.
type Sample struct {
	engine *Engine
	buf    *beep.Buffer
}

// Load decodes a WAV clip at path. A missing file yields a synthesized beep.
func (e *Engine) Load(path string) (*Sample, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		e.logger.Warn("sound file missing, using synthesized beep", "path", path)
		return e.Beep()
	}
	if err != nil {
		return nil, fmt.Errorf("audio: failed to open %s: %w", path, err)
	}
	defer f.Close()

	stream, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("audio: failed to decode %s: %w", path, err)
	}

	var s beep.Streamer = stream
	if format.SampleRate != SampleRate {
		s = beep.Resample(4, format.SampleRate, SampleRate, stream)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return &Sample{engine: e, buf: buf}, nil
}

// Beep synthesizes a short sine tone.
func (e *Engine) Beep() (*Sample, error) {
	sine, err := generators.SineTone(SampleRate, beepFreq)
	if err != nil {
		return nil, fmt.Errorf("audio: failed to synthesize beep: %w", err)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2})
	buf.Append(beep.Take(SampleRate.N(beepDuration), sine))
	return &Sample{engine: e, buf: buf}, nil
}

// Len returns the clip length in samples.
func (s *Sample) Len() int {
	return s.buf.Len()
}

// Duration returns the clip length.
func (s *Sample) Duration() time.Duration {
	return SampleRate.D(s.buf.Len())
}

// Play starts the clip from the beginning. It never blocks.
func (s *Sample) Play() {
	s.engine.play(withVolume(s.buf.Streamer(0, s.buf.Len()), s.engine.cfg.Volume))
}

// withVolume scales a streamer linearly; math.Log2(0) is -Inf, so zero is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
