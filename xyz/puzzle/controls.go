// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package puzzle

import (
	"log/slog"
	"slices"

	"cogentcore.org/cube/base/randx"
)

// Busy returns whether a turn of the cube or any cubie is in flight.
func (cb *Cube) Busy() bool {
	return cb.CompleteInterpolation(false, true) != 0
}

// AiControls applies the given move, or queues it if a turn is in
// flight, in which case it returns false. Interactive input, queued
// moves and scrambles all go through here.
func (cb *Cube) AiControls(m Move) bool {
	return cb.dispatch(queued{Move: m})
}

// dispatch applies or queues a move.
func (cb *Cube) dispatch(q queued) bool {
	if cb.Busy() {
		cb.pending = append(cb.pending, q)
		return false
	}
	return cb.apply(q)
}

// apply starts the turn of a move, which must not be busy,
// and records it in the history.
func (cb *Cube) apply(q queued) bool {
	m := q.Move
	if m.Key < 0 || m.Key >= KeysN {
		slog.Warn("puzzle.Cube: invalid move key, move skipped", "cube", cb.Path(), "key", int(m.Key))
		return false
	}
	fm := IdentityFaceMap
	if !m.Local {
		fm = cb.SelectFaces(cb.camera())
	}
	side := fm[m.Key.Face()]
	angle := m.Angle()
	whole := m.Key.Whole()
	var ok bool
	if whole {
		ok = cb.turnCube(side, angle)
	} else {
		ok = cb.turnLayer(side, angle)
	}
	if !ok {
		return false
	}
	if q.undo && len(cb.history) > 0 {
		cb.history = cb.history[:len(cb.history)-1]
	} else {
		cb.history = append(cb.history, localMove(side, angle, whole))
	}
	slog.Debug("puzzle.Cube: move", "cube", cb.Name, "move", m.String(), "packed", m.Pack(), "side", side.String())
	return true
}

// ProcessControls applies the next pending move once no turn is in
// flight. The scene calls it once per tick.
func (cb *Cube) ProcessControls() {
	if len(cb.pending) == 0 || cb.Busy() {
		return
	}
	q := cb.pending[0]
	cb.pending = slices.Delete(cb.pending, 0, 1)
	cb.dispatch(q)
}

// Pending returns the moves waiting to be applied.
func (cb *Cube) Pending() []Move {
	ms := make([]Move, len(cb.pending))
	for i, q := range cb.pending {
		ms[i] = q.Move
	}
	return ms
}

// History returns the applied moves, as local moves, oldest first.
func (cb *Cube) History() []Move {
	return slices.Clone(cb.history)
}

// Flush completes the turn in flight and applies all pending moves
// immediately, without animation.
func (cb *Cube) Flush() {
	for {
		cb.CompleteInterpolation(true, true)
		cb.UpdateLocalMatrix()
		if len(cb.pending) == 0 {
			return
		}
		q := cb.pending[0]
		cb.pending = slices.Delete(cb.pending, 0, 1)
		cb.apply(q)
	}
}

// Scramble issues n random layer moves through [Cube.AiControls],
// using the given random source, or the global one if nil.
// It returns the moves issued.
func (cb *Cube) Scramble(n int, rnd randx.Rand) []Move {
	if rnd == nil {
		rnd = randx.NewGlobalRand()
	}
	ms := make([]Move, n)
	for i := range n {
		m := Move{Key: Keys(rnd.Intn(int(KeyX))), Reverse: rnd.Intn(2) == 1, Double: rnd.Intn(2) == 1}
		ms[i] = m
		cb.AiControls(m)
	}
	return ms
}

// Solve applies pending moves immediately and then queues the inverses
// of all applied moves in reverse order, which returns the cube to the
// state it had when the history began. It returns the queued moves.
func (cb *Cube) Solve() []Move {
	cb.Flush()
	sol := make([]Move, 0, len(cb.history))
	for _, m := range slices.Backward(cb.history) {
		sol = append(sol, m.Inverse())
	}
	for _, m := range sol {
		cb.dispatch(queued{Move: m, undo: true})
	}
	return sol
}

// Undo applies pending moves immediately and then starts the inverse of
// the last applied move, returning false if there is none.
func (cb *Cube) Undo() bool {
	cb.Flush()
	if len(cb.history) == 0 {
		return false
	}
	return cb.dispatch(queued{Move: cb.history[len(cb.history)-1].Inverse(), undo: true})
}
