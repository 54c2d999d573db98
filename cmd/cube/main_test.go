// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/cube/base/randx"
	"cogentcore.org/cube/settings"
	"cogentcore.org/cube/xyz"
	"cogentcore.org/cube/xyz/puzzle"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the command line with the given settings file and
// arguments, returning its output.
func execute(t *testing.T, sfile string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var b bytes.Buffer
	root.SetOut(&b)
	root.SetErr(&b)
	root.SetArgs(append([]string{"--settings", sfile}, args...))
	err := root.Execute()
	return b.String(), err
}

func testSettings(t *testing.T, dir string) string {
	t.Helper()
	sfile := filepath.Join(dir, "settings.toml")
	st := settings.New()
	st.CubeSize = 2
	require.NoError(t, st.Save(sfile))
	return sfile
}

func TestWriteNet(t *testing.T) {
	cb := puzzle.NewCube(nil, "cube", 2, 1)
	var b bytes.Buffer
	writeNet(&b, termenv.NewOutput(&b, termenv.WithProfile(termenv.Ascii)), cb.Facelets())
	want := "    U U \n" +
		"    U U \n" +
		"L L F F R R B B \n" +
		"L L F F R R B B \n" +
		"    D D \n" +
		"    D D \n"
	assert.Equal(t, want, b.String())
	assert.Equal(t, "?", stickerLetter(puzzle.CubieColor))
}

func TestTurnCommands(t *testing.T) {
	dir := t.TempDir()
	sfile := testSettings(t, dir)
	fn := filepath.Join(dir, "scene.json")

	out, err := execute(t, sfile, "new", fn)
	require.NoError(t, err)
	assert.Contains(t, out, "cube: 2x2x2, solved")

	out, err = execute(t, sfile, "turn", fn, "R")
	require.NoError(t, err)
	assert.Contains(t, out, "scrambled")

	out, err = execute(t, sfile, "turn", fn, "R'")
	require.NoError(t, err)
	assert.Contains(t, out, "solved")

	_, err = execute(t, sfile, "turn", fn, "Q")
	assert.Error(t, err)

	out, err = execute(t, sfile, "scramble", fn, "--moves", "6", "--seed", "4", "--solve")
	require.NoError(t, err)
	assert.Contains(t, out, "cube: 2x2x2")
	solved := xyz.NewScene("")
	require.NoError(t, solved.Open(fn))
	require.Len(t, cubes(solved), 1)
	assert.True(t, cubes(solved)[0].IsSolved())

	out, err = execute(t, sfile, "scramble", fn, "--moves", "6", "--seed", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "cube: 2x2x2")

	yfn := filepath.Join(dir, "scene.yaml")
	_, err = execute(t, sfile, "convert", fn, yfn)
	require.NoError(t, err)
	sc := xyz.NewScene("")
	require.NoError(t, sc.Open(yfn))
	cbs := cubes(sc)
	require.Len(t, cbs, 1)
	assert.Equal(t, 2, cbs[0].Size)

	out, err = execute(t, sfile, "show", yfn)
	require.NoError(t, err)
	assert.Contains(t, out, "cube: 2x2x2")

	_, err = execute(t, sfile, "show", filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestDropCommand(t *testing.T) {
	dir := t.TempDir()
	sfile := testSettings(t, dir)
	fn := filepath.Join(dir, "drop.json")
	out, err := execute(t, sfile, "drop", "--count", "4", "--seed", "1", "--seconds", "1", "--out", fn)
	require.NoError(t, err)
	assert.Contains(t, out, "of 4 bodies left after 60 ticks")

	sc := xyz.NewScene("")
	require.NoError(t, sc.Open(fn))
	assert.NotNil(t, sc.ChildByName("floor"))
}

func TestDropScene(t *testing.T) {
	sc := dropScene(6, 5, 2, randx.NewSysRand(3))
	floor := xyz.AsMesh(sc.ChildByName("floor"))
	require.NotNil(t, floor)
	require.NotNil(t, floor.Body.Rigid)
	assert.Equal(t, math32.Vector3{}, floor.Body.Rigid.State.LinVel)
	pushed := 0
	for i := range 6 {
		ms := xyz.AsMesh(sc.ChildByName(fmt.Sprintf("body-%d", i)))
		require.NotNil(t, ms)
		require.NotNil(t, ms.Body.Rigid, ms.Name)
		v := ms.Body.Rigid.State.LinVel
		assert.Zero(t, v.Y)
		assert.LessOrEqual(t, math32.Abs(v.X), float32(2))
		assert.LessOrEqual(t, math32.Abs(v.Z), float32(2))
		if v.X != 0 || v.Z != 0 {
			pushed++
		}
	}
	assert.Positive(t, pushed)
}

func TestSettingsCommand(t *testing.T) {
	dir := t.TempDir()
	sfile := testSettings(t, dir)
	out, err := execute(t, sfile, "settings")
	require.NoError(t, err)
	assert.Contains(t, out, "cube-size = 2")

	yfile := filepath.Join(dir, "out.yaml")
	_, err = execute(t, sfile, "settings", yfile)
	require.NoError(t, err)
	st, err := settings.Open(yfile)
	require.NoError(t, err)
	assert.Equal(t, 2, st.CubeSize)

	_, err = execute(t, filepath.Join(dir, "missing.toml"), "settings")
	assert.Error(t, err)
}

func TestRunner(t *testing.T) {
	sc := xyz.NewScene("scene")
	st := settings.New()
	cb := st.NewCube(sc, "cube")
	r := newRunner(sc, st, true)
	cb.AiControls(puzzle.Move{Key: puzzle.KeyU})
	cb.AiControls(puzzle.Move{Key: puzzle.KeyU, Reverse: true})
	assert.False(t, idle(sc))
	require.True(t, r.runUntilIdle(idleLimit))
	assert.True(t, cb.IsSolved())
	assert.GreaterOrEqual(t, r.ticks, 30)
}
