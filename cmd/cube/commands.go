// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/cube/base/randx"
	"cogentcore.org/cube/settings"
	"cogentcore.org/cube/xyz"
	"cogentcore.org/cube/xyz/physics"
	"cogentcore.org/cube/xyz/puzzle"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// idleLimit is the most scene time spent waiting for cubes to settle.
const idleLimit = 10 * time.Minute

// openScene opens the scene file, applying the settings to it.
func (ap *app) openScene(filename string) (*xyz.Scene, error) {
	sc := xyz.NewScene("")
	if err := sc.Open(filename); err != nil {
		return nil, err
	}
	ap.settings.Apply(sc)
	return sc, nil
}

// firstCube returns the first cube in the scene, or an error.
func firstCube(sc *xyz.Scene, filename string) (*puzzle.Cube, error) {
	cbs := cubes(sc)
	if len(cbs) == 0 {
		return nil, fmt.Errorf("no cube in %s", filename)
	}
	return cbs[0], nil
}

// showCube writes the name, state and facelet net of the cube.
func showCube(cmd *cobra.Command, cb *puzzle.Cube) {
	w := cmd.OutOrStdout()
	state := "scrambled"
	if cb.IsSolved() {
		state = "solved"
	}
	fmt.Fprintf(w, "%s: %dx%dx%d, %s\n", cb.Name, cb.Size, cb.Size, cb.Size, state)
	writeNet(w, termenv.NewOutput(w), cb.Facelets())
}

// newRand returns the random source for the given seed, with
// zero meaning the global source.
func newRand(seed int64) randx.Rand {
	if seed == 0 {
		return randx.NewGlobalRand()
	}
	return randx.NewSysRand(seed)
}

func newNewCmd(ap *app) *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "new <file>",
		Short: "Make a scene file with a solved cube",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := xyz.NewScene("scene")
			if size > 0 {
				ap.settings.CubeSize = size
			}
			if err := ap.settings.Validate(); err != nil {
				return err
			}
			cb := ap.settings.NewCube(sc, "cube")
			showCube(cmd, cb)
			return sc.Save(args[0])
		},
	}
	cmd.Flags().IntVar(&size, "size", 0, "cubies along each edge, default from settings")
	return cmd
}

func newScrambleCmd(ap *app) *cobra.Command {
	var moves int
	var seed int64
	var solve bool
	cmd := &cobra.Command{
		Use:   "scramble <file>",
		Short: "Scramble the cube in a scene file",
		Long: `Scramble the cube in a scene file with random layer moves.
With --solve, the scramble is then undone move by move and the
solving moves are printed; the saved cube is then solved.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := ap.openScene(args[0])
			if err != nil {
				return err
			}
			cb, err := firstCube(sc, args[0])
			if err != nil {
				return err
			}
			if moves <= 0 {
				moves = ap.settings.ScrambleMoves
			}
			r := newRunner(sc, ap.settings, true)
			ms := cb.Scramble(moves, newRand(seed))
			if !r.runUntilIdle(idleLimit) {
				return errors.New("cube did not settle")
			}
			fmt.Fprintln(cmd.OutOrStdout(), puzzle.FormatMoves(ms))
			showCube(cmd, cb)
			if solve {
				sol := cb.Solve()
				if !r.runUntilIdle(idleLimit) {
					return errors.New("cube did not settle")
				}
				fmt.Fprintln(cmd.OutOrStdout(), puzzle.FormatMoves(sol))
				showCube(cmd, cb)
			}
			return sc.Save(args[0])
		},
	}
	cmd.Flags().IntVarP(&moves, "moves", "n", 0, "number of moves, default from settings")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed, 0 for a random scramble")
	cmd.Flags().BoolVar(&solve, "solve", false, "solve the cube again after scrambling")
	return cmd
}

func newTurnCmd(ap *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "turn <file> <moves>...",
		Short: "Apply moves in R U F' L2 notation to the cube in a scene file",
		Long: `Apply moves to the cube in a scene file, as seen from the camera.
R L U D F B turn layers, X Y Z turn the whole cube, ' reverses a move,
2 doubles it, and a trailing * applies it in the cube's own frame.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := puzzle.ParseMoves(strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			sc, err := ap.openScene(args[0])
			if err != nil {
				return err
			}
			cb, err := firstCube(sc, args[0])
			if err != nil {
				return err
			}
			r := newRunner(sc, ap.settings, true)
			for _, m := range ms {
				cb.AiControls(m)
			}
			if !r.runUntilIdle(idleLimit) {
				return errors.New("cube did not settle")
			}
			showCube(cmd, cb)
			return sc.Save(args[0])
		},
	}
	return cmd
}

func newShowCmd(ap *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Show the cubes in a scene file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := ap.openScene(args[0])
			if err != nil {
				return err
			}
			for _, cb := range cubes(sc) {
				showCube(cmd, cb)
			}
			return nil
		},
	}
}

func newConvertCmd(ap *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert a scene file between JSON and YAML, by extension",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := ap.openScene(args[0])
			if err != nil {
				return err
			}
			return sc.Save(args[1])
		},
	}
}

// dropKinds are the kinds of dropped bodies, chosen with
// the probabilities in dropOdds.
var (
	dropKinds = []physics.ShapeKinds{physics.Box, physics.Sphere, physics.Cylinder}
	dropOdds  = []float32{0.4, 0.4, 0.2}
)

// dropScene returns a scene with a static floor and n bodies of
// random kinds at random positions above it, some of which miss the
// floor. Each body gets a random sideways impulse of up to push.
func dropScene(n int, height, push float32, rnd randx.Rand) *xyz.Scene {
	sc := xyz.NewScene("drop")
	floor := xyz.NewMesh(sc, "floor")
	floor.Geometry.AddBox(math32.Vec3(20, 1, 20), math32.Vector3{})
	floor.SetPos(math32.Vec3(0, -0.5, 0))
	floor.NewBody(physics.Box, 0, math32.Vector3{})
	for i := range n {
		ms := xyz.NewMesh(sc, fmt.Sprintf("body-%d", i))
		kind := dropKinds[randx.PChoose32(dropOdds, rnd)]
		switch kind {
		case physics.Sphere:
			ms.Geometry.AddSphere(0.5, math32.Vector3{})
		case physics.Cylinder:
			ms.Geometry.AddCylinder(0.5, 1, math32.Vector3{})
		default:
			ms.Geometry.AddBox(math32.Vec3(1, 1, 1), math32.Vector3{})
		}
		x := float32(rnd.Intn(30)) - 15
		z := float32(rnd.Intn(30)) - 15
		ms.SetPos(math32.Vec3(x, height+float32(i), z))
		bd := ms.NewBody(kind, 1, math32.Vector3{})
		if bd.Rigid != nil {
			bd.Rigid.ApplyImpulse(math32.Vec3((2*rnd.Float32()-1)*push, 0, (2*rnd.Float32()-1)*push))
		}
	}
	return sc
}

func newDropCmd(ap *app) *cobra.Command {
	var count int
	var height, push, seconds float32
	var seed int64
	var out string
	cmd := &cobra.Command{
		Use:   "drop",
		Short: "Drop bodies onto a floor and report where they end up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := dropScene(count, height, push, newRand(seed))
			r := newRunner(sc, ap.settings, true)
			r.runFor(settings.Seconds(seconds))
			w := cmd.OutOrStdout()
			left := sc.NumChildren() - 2
			fmt.Fprintf(w, "%d of %d bodies left after %d ticks\n", left, count, r.ticks)
			for _, k := range sc.Children {
				ms := xyz.AsMesh(k)
				if ms == nil || ms.Body == nil || ms.Name == "floor" {
					continue
				}
				p := ms.Pose.Pos
				fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\n", ms.Name, p.X, p.Y, p.Z)
			}
			if out != "" {
				return sc.Save(out)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of bodies")
	cmd.Flags().Float32Var(&height, "height", 10, "drop height")
	cmd.Flags().Float32Var(&push, "push", 1, "largest sideways impulse given to each body")
	cmd.Flags().Float32Var(&seconds, "seconds", 6, "scene time to run")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed, 0 for random positions")
	cmd.Flags().StringVarP(&out, "out", "o", "", "scene file to save the result to")
	return cmd
}

func newRunCmd(ap *app) *cobra.Command {
	var seconds float32
	var watch bool
	var out string
	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Run a scene file in real time",
		Long: `Run a scene file in real time at the control rate, until the time is up
or the command is interrupted. With --watch, changes to the settings file
are applied while running.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := ap.openScene(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()
			var updates <-chan *settings.Settings
			if watch {
				fn := ap.settingsFile
				if fn == "" {
					fn = DefaultSettingsFile
				}
				updates, err = settings.Watch(ctx, fn)
				if err != nil {
					return err
				}
			}
			r := newRunner(sc, ap.settings, false)
			r.runLive(ctx, settings.Seconds(seconds), updates)
			fmt.Fprintf(cmd.OutOrStdout(), "ran %d ticks\n", r.ticks)
			for _, cb := range cubes(sc) {
				showCube(cmd, cb)
			}
			if out != "" {
				return sc.Save(out)
			}
			return nil
		},
	}
	cmd.Flags().Float32Var(&seconds, "seconds", 0, "time to run, 0 until interrupted")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "apply changes to the settings file while running")
	cmd.Flags().StringVarP(&out, "out", "o", "", "scene file to save the result to")
	return cmd
}

func newSettingsCmd(ap *app) *cobra.Command {
	return &cobra.Command{
		Use:   "settings [file]",
		Short: "Print the current settings, or save them to a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return ap.settings.Save(args[0])
			}
			b, err := ap.settings.Encode(settings.TOML)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}
