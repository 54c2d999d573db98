// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/cube/xyz"
	"cogentcore.org/cube/xyz/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	s := New()
	assert.Equal(t, float32(0.12), s.CursorInterval)
	assert.Equal(t, float32(0.25), s.LayerInterval)
	assert.Equal(t, float32(0.35), s.CubeInterval)
	assert.Equal(t, "out-quad", s.CursorEase)
	assert.Equal(t, "in-out-cubic", s.TurnEase)
	assert.Equal(t, float32(90), s.SnapAngle)
	assert.Equal(t, float32(-50), s.FloorHeight)
	assert.Equal(t, float32(-9.8), s.Gravity)
	assert.Equal(t, 60, s.ControlRate)
	assert.Equal(t, 3, s.CubeSize)
	assert.Equal(t, float32(1), s.CubeSpacing)
	assert.Equal(t, 25, s.ScrambleMoves)
	assert.NoError(t, s.Validate())
	assert.Equal(t, 250*time.Millisecond, Seconds(s.LayerInterval))

	s.CubeSize = 7
	s.Defaults()
	assert.Equal(t, New(), s)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	tf := filepath.Join(dir, "settings.toml")
	require.NoError(t, os.WriteFile(tf, []byte("cube-size = 4\nturn-ease = \"linear\"\n"), 0666))
	s, err := Open(tf)
	require.NoError(t, err)
	assert.Equal(t, 4, s.CubeSize)
	assert.Equal(t, "linear", s.TurnEase)
	assert.Equal(t, 60, s.ControlRate)

	yf := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(yf, []byte("gravity: -1.5\nscramble-moves: 10\n"), 0666))
	s, err = Open(yf)
	require.NoError(t, err)
	assert.Equal(t, float32(-1.5), s.Gravity)
	assert.Equal(t, 10, s.ScrambleMoves)
	assert.Equal(t, 3, s.CubeSize)

	_, err = Open(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
	_, err = Open(filepath.Join(dir, "settings.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("cube-size = 0\n"), 0666))
	_, err = Open(bad)
	assert.Error(t, err)
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"s.toml", "s.yml"} {
		s := New()
		s.CubeSize = 2
		s.CubeSpacing = 1.5
		s.CursorEase = "in-out-quad"
		fn := filepath.Join(dir, name)
		require.NoError(t, s.Save(fn))
		ls, err := Open(fn)
		require.NoError(t, err)
		assert.Equal(t, s, ls, name)
	}
}

func TestValidate(t *testing.T) {
	s := New()
	s.TurnEase = "bounce"
	assert.Error(t, s.Validate())
	s = New()
	s.ControlRate = 0
	assert.Error(t, s.Validate())
	s = New()
	s.LayerInterval = -1
	assert.Error(t, s.Validate())
	s = New()
	s.CursorEase = ""
	assert.NoError(t, s.Validate())
}

func TestApply(t *testing.T) {
	sc := xyz.NewScene("scene")
	cr := xyz.NewCursor(sc.Gizmos, "cursor")
	s := New()
	s.SnapAngle = 45
	s.FloorHeight = -10
	s.Gravity = -2
	s.LayerInterval = 0.5
	s.CubeSize = 2
	cb := s.NewCube(sc, "cube")
	assert.Equal(t, 2, cb.Size)
	assert.Len(t, cb.Cubies(), 8)

	s.LayerInterval = 0.1
	s.Apply(sc)
	assert.Equal(t, float32(45), sc.SnapAngle)
	assert.Equal(t, float32(-10), sc.FloorHeight)
	assert.Equal(t, float32(-2), sc.Physics.(*physics.World).Gravity.Y)
	assert.Equal(t, 120*time.Millisecond, cr.Interp.Interval.Round(time.Millisecond))
	assert.Equal(t, "out-quad", cr.Interp.Ease)
	assert.Equal(t, 100*time.Millisecond, cb.LayerInterval.Round(time.Millisecond))
	assert.Equal(t, 100*time.Millisecond, cb.Cubies()[0].Interp.Interval.Round(time.Millisecond))
	assert.Equal(t, "in-out-cubic", cb.Ease)
}

func TestWatch(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(fn, []byte("cube-size = 3\n"), 0666))
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := Watch(ctx, fn)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(fn, []byte("cube-size = 5\n"), 0666))
	timeout := time.After(5 * time.Second)
	got := false
	for !got {
		select {
		case s := <-ch:
			got = s.CubeSize == 5
		case <-timeout:
			t.Fatal("no settings received")
		}
	}
	cancel()
	for range ch {
	}

	_, err = Watch(context.Background(), filepath.Join(t.TempDir(), "settings.txt"))
	assert.Error(t, err)
}
