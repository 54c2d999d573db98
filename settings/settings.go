// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings provides the editor settings: interpolation timing,
// snapping, physics and puzzle defaults, loaded from TOML or YAML files.
package settings

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cogentcore.org/core/cli"
	"cogentcore.org/cube/tree"
	"cogentcore.org/cube/xyz"
	"cogentcore.org/cube/xyz/physics"
	"cogentcore.org/cube/xyz/puzzle"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Settings are the editor settings. Intervals are in seconds.
type Settings struct {

	// CursorInterval is the time for the cursor to glide to a new position.
	CursorInterval float32 `default:"0.12" toml:"cursor-interval" yaml:"cursor-interval"`

	// CursorEase is the easing of the cursor motion.
	CursorEase string `default:"out-quad" toml:"cursor-ease" yaml:"cursor-ease"`

	// LayerInterval is the time of a layer turn of a cube.
	LayerInterval float32 `default:"0.25" toml:"layer-interval" yaml:"layer-interval"`

	// CubeInterval is the time of a whole cube turn.
	CubeInterval float32 `default:"0.35" toml:"cube-interval" yaml:"cube-interval"`

	// TurnEase is the easing of cube turns.
	TurnEase string `default:"in-out-cubic" toml:"turn-ease" yaml:"turn-ease"`

	// SnapAngle is the angle in degrees of integer rotations.
	SnapAngle float32 `default:"90" toml:"snap-angle" yaml:"snap-angle"`

	// FloorHeight is the height below which physics driven nodes are removed.
	FloorHeight float32 `default:"-50" toml:"floor-height" yaml:"floor-height"`

	// Gravity is the vertical acceleration of dynamic bodies.
	Gravity float32 `default:"-9.8" toml:"gravity" yaml:"gravity"`

	// ControlRate is the number of ticks per second of a headless run.
	ControlRate int `default:"60" toml:"control-rate" yaml:"control-rate"`

	// CubeSize is the number of cubies along each edge of new cubes.
	CubeSize int `default:"3" toml:"cube-size" yaml:"cube-size"`

	// CubeSpacing is the distance between cubie centers of new cubes.
	CubeSpacing float32 `default:"1" toml:"cube-spacing" yaml:"cube-spacing"`

	// ScrambleMoves is the number of moves in a scramble.
	ScrambleMoves int `default:"25" toml:"scramble-moves" yaml:"scramble-moves"`
}

// New returns new settings with the default values.
func New() *Settings {
	s := &Settings{}
	cli.SetFromDefaults(s)
	return s
}

// Defaults resets the settings to the default values.
func (s *Settings) Defaults() {
	*s = Settings{}
	cli.SetFromDefaults(s)
}

// Validate returns an error describing the first invalid setting.
func (s *Settings) Validate() error {
	switch {
	case s.CursorInterval < 0 || s.LayerInterval < 0 || s.CubeInterval < 0:
		return errors.New("intervals must not be negative")
	case s.ControlRate <= 0:
		return fmt.Errorf("control rate must be positive, not %d", s.ControlRate)
	case s.CubeSize < 1:
		return fmt.Errorf("cube size must be at least 1, not %d", s.CubeSize)
	case s.CubeSpacing <= 0:
		return fmt.Errorf("cube spacing must be positive, not %g", s.CubeSpacing)
	case s.ScrambleMoves < 0:
		return fmt.Errorf("scramble moves must not be negative, not %d", s.ScrambleMoves)
	}
	for _, name := range []string{s.CursorEase, s.TurnEase} {
		if _, ok := xyz.Easings[name]; name != "" && !ok {
			return fmt.Errorf("unknown easing %q", name)
		}
	}
	return nil
}

// Seconds converts an interval in seconds to a duration.
func Seconds(sec float32) time.Duration {
	return time.Duration(float64(sec) * float64(time.Second))
}

// TickInterval is the duration of one tick at the control rate.
func (s *Settings) TickInterval() time.Duration {
	return time.Second / time.Duration(max(s.ControlRate, 1))
}

// NewCube adds a new cube with the size, spacing and timing of the
// settings to the given parent.
func (s *Settings) NewCube(parent xyz.Node, name string) *puzzle.Cube {
	cb := puzzle.NewCube(parent, name, s.CubeSize, s.CubeSpacing)
	cb.SetTiming(Seconds(s.LayerInterval), Seconds(s.CubeInterval), s.TurnEase)
	return cb
}

// Apply applies the settings to the given scene: its snapping, floor,
// gravity, and the timing of its cursors and cubes.
func (s *Settings) Apply(sc *xyz.Scene) {
	sc.SnapAngle = s.SnapAngle
	sc.FloorHeight = s.FloorHeight
	if wr, ok := sc.Physics.(*physics.World); ok {
		wr.Gravity.Y = s.Gravity
	}
	sc.WalkDown(func(n tree.Node) bool {
		if cr := xyz.AsCursor(n); cr != nil {
			cr.SetInterp(Seconds(s.CursorInterval), s.CursorEase)
			return tree.Break
		}
		if cb := puzzle.AsCube(n); cb != nil {
			cb.SetTiming(Seconds(s.LayerInterval), Seconds(s.CubeInterval), s.TurnEase)
			return tree.Break
		}
		return tree.Continue
	})
}

// Formats are the supported settings file formats.
type Formats int32

const (
	// TOML is the TOML settings format, the default.
	TOML Formats = iota

	// YAML is the YAML settings format.
	YAML
)

// FormatForFile returns the settings format for the given file name,
// based on its extension.
func FormatForFile(filename string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("unsupported settings file extension %q", filepath.Ext(filename))
}

// Decode decodes settings in the given format from the given bytes,
// on top of the default values. Missing values keep their defaults.
func Decode(b []byte, format Formats) (*Settings, error) {
	s := New()
	var err error
	if format == YAML {
		err = yaml.Unmarshal(b, s)
	} else {
		err = toml.Unmarshal(b, s)
	}
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Encode encodes the settings in the given format.
func (s *Settings) Encode(format Formats) ([]byte, error) {
	if format == YAML {
		return yaml.Marshal(s)
	}
	var b bytes.Buffer
	enc := toml.NewEncoder(&b)
	enc.SetIndentTables(true)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Open loads settings from the given file, which may start with ~
// for the home directory. The format is chosen by the file extension.
func Open(filename string) (*Settings, error) {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return nil, errors.Wrap(err, "settings.Open")
	}
	format, err := FormatForFile(fn)
	if err != nil {
		return nil, errors.Wrap(err, "settings.Open")
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, errors.Wrap(err, "settings.Open")
	}
	s, err := Decode(b, format)
	if err != nil {
		return nil, errors.Wrapf(err, "settings.Open %s", fn)
	}
	slog.Debug("settings.Open", "file", fn)
	return s, nil
}

// Save saves the settings to the given file, which may start with ~
// for the home directory. The format is chosen by the file extension.
func (s *Settings) Save(filename string) error {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return errors.Wrap(err, "settings.Save")
	}
	format, err := FormatForFile(fn)
	if err != nil {
		return errors.Wrap(err, "settings.Save")
	}
	b, err := s.Encode(format)
	if err != nil {
		return errors.Wrapf(err, "settings.Save %s", fn)
	}
	return errors.Wrap(os.WriteFile(fn, b, 0666), "settings.Save")
}
