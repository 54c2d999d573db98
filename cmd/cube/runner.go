// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"time"

	"cogentcore.org/cube/settings"
	"cogentcore.org/cube/tree"
	"cogentcore.org/cube/xyz"
	"cogentcore.org/cube/xyz/puzzle"
)

// runner ticks a scene at the control rate of the settings.
// With a simulated clock, scene time advances by one tick interval
// per tick regardless of wall time.
type runner struct {
	sc *xyz.Scene
	st *settings.Settings

	// now is the simulated time, or zero for the wall clock.
	now time.Time

	// ticks is the number of ticks run.
	ticks int
}

// newRunner returns a runner for the given scene, applying the
// settings to it.
func newRunner(sc *xyz.Scene, st *settings.Settings, simulated bool) *runner {
	r := &runner{sc: sc, st: st}
	if simulated {
		r.now = time.Unix(0, 0)
		sc.Clock = func() time.Time { return r.now }
	}
	st.Apply(sc)
	return r
}

// tick advances the scene by one tick.
func (r *runner) tick() {
	dt := r.st.TickInterval()
	if !r.now.IsZero() {
		r.now = r.now.Add(dt)
	}
	r.sc.Tick(float32(dt.Seconds()))
	r.ticks++
}

// runFor ticks for the given duration of scene time.
func (r *runner) runFor(d time.Duration) {
	for range int(d / r.st.TickInterval()) {
		r.tick()
	}
}

// runUntilIdle ticks until no cube in the scene is turning or has
// pending moves, for at most the given duration of scene time.
// It returns whether the scene became idle.
func (r *runner) runUntilIdle(limit time.Duration) bool {
	for range int(limit / r.st.TickInterval()) {
		if idle(r.sc) {
			return true
		}
		r.tick()
	}
	return idle(r.sc)
}

// runLive ticks in real time until the context is done or, if d is
// positive, for the duration d. New settings received on updates are
// applied to the scene between ticks.
func (r *runner) runLive(ctx context.Context, d time.Duration, updates <-chan *settings.Settings) {
	ticker := time.NewTicker(r.st.TickInterval())
	defer ticker.Stop()
	var done <-chan time.Time
	if d > 0 {
		done = time.After(d)
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			return
		case st, ok := <-updates:
			if !ok {
				updates = nil
				continue
			}
			r.st = st
			st.Apply(r.sc)
			ticker.Reset(st.TickInterval())
			slog.Info("settings reloaded", "control-rate", st.ControlRate)
		case <-ticker.C:
			r.tick()
		}
	}
}

// idle returns whether no cube in the scene is busy.
func idle(sc *xyz.Scene) bool {
	for _, cb := range cubes(sc) {
		if cb.Busy() || len(cb.Pending()) > 0 {
			return false
		}
	}
	return true
}

// cubes returns the puzzle cubes in the scene.
func cubes(sc *xyz.Scene) []*puzzle.Cube {
	var cbs []*puzzle.Cube
	sc.WalkDown(func(n tree.Node) bool {
		if cb := puzzle.AsCube(n); cb != nil {
			cbs = append(cbs, cb)
			return tree.Break
		}
		return tree.Continue
	})
	return cbs
}
