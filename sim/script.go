// Package sim runs scripted input against a session without a window.
package sim

import (
	"errors"
	"fmt"

	"github.com/automoto/hopdrop/components"
	cfg "github.com/automoto/hopdrop/config"
	"github.com/automoto/hopdrop/session"
	"gopkg.in/yaml.v3"
)

var ErrEmptyScript = errors.New("sim: script has no steps")

// Segment holds an input for a number of frames.
type Segment struct {
	Frames int  `yaml:"frames"`
	Left   bool `yaml:"left"`
	Right  bool `yaml:"right"`
	Jump   bool `yaml:"jump"`
}

// Script is a YAML input recording.
type Script struct {
	// Level names the level to start on; empty means the first one.
	Level string `yaml:"level"`
	// FrameDelta is the frame length in seconds; zero means one frame at the
	// configured tick rate.
	FrameDelta float64   `yaml:"frame_delta"`
	Steps      []Segment `yaml:"steps"`
}

// Result summarises a finished run.
type Result struct {
	Frames  int
	Score   int
	Reloads int
	Level   string
	Stats   components.RunStatsData
}

// ParseScript decodes and validates a script.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("sim: parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return Script{}, ErrEmptyScript
	}
	for i, seg := range s.Steps {
		if seg.Frames <= 0 {
			return Script{}, fmt.Errorf("sim: step %d: frames must be positive, got %d", i, seg.Frames)
		}
	}
	if s.FrameDelta < 0 {
		return Script{}, fmt.Errorf("sim: frame_delta must not be negative")
	}
	return s, nil
}

// Frames is the total number of frames the script covers.
func (s Script) Frames() int {
	n := 0
	for _, seg := range s.Steps {
		n += seg.Frames
	}
	return n
}

func (s Script) delta() float64 {
	if s.FrameDelta > 0 {
		return s.FrameDelta
	}
	return 1.0 / float64(cfg.Timing.TPS)
}

// Run plays the script on sess, then idles for tail extra frames so running
// sequences can play out.
func Run(sess *session.Session, script Script, tail int) (Result, error) {
	dt := script.delta()
	frames := 0

	step := func(in session.Input) error {
		sess.SetInput(in)
		frames++
		return sess.Step(dt)
	}

	for _, seg := range script.Steps {
		in := session.Input{Left: seg.Left, Right: seg.Right, Jump: seg.Jump}
		for i := 0; i < seg.Frames; i++ {
			if err := step(in); err != nil {
				return Result{}, err
			}
		}
	}
	for i := 0; i < tail; i++ {
		if err := step(session.Input{}); err != nil {
			return Result{}, err
		}
	}

	return Result{
		Frames:  frames,
		Score:   sess.Score(),
		Reloads: sess.Reloads(),
		Level:   sess.Level().Name,
		Stats:   sess.Stats(),
	}, nil
}
