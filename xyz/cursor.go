// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/cube/tree"
)

// Cursor is the editor placement cursor. It glides to new positions
// using its interpolation interval, and is never saved.
type Cursor struct {
	Mesh
}

// NewCursor adds a new cursor with the given name to the given parent.
func NewCursor(parent Node, name string) *Cursor {
	cr := &Cursor{}
	tree.InitNode(cr)
	cr.Name = name
	if parent != nil {
		parent.AsTree().AddChild(cr)
	}
	return cr
}

func (cr *Cursor) Init() {
	cr.Mesh.Init()
	cr.Caps.Set(true, CapCursor)
	cr.Geometry.AddBox(math32.Vec3(1, 1, 1), math32.Vector3{})
}

// AsCursor returns the cursor.
func (cr *Cursor) AsCursor() *Cursor {
	return cr
}

// AsCursor returns the given node as a [Cursor], or nil if it is not one.
func AsCursor(n tree.Node) *Cursor {
	if t, ok := n.(interface{ AsCursor() *Cursor }); ok {
		return t.AsCursor()
	}
	return nil
}

// MoveCursor starts the cursor gliding to the given position,
// snapped to the grid of the given step when it is positive.
func (cr *Cursor) MoveCursor(pos math32.Vector3, step float32) {
	if step > 0 {
		pos = SnapToGrid(pos, step)
	}
	cr.MoveTo(pos, 0)
}

// Nudge starts the cursor gliding the given distance along the given
// axis in its own frame, from where it is headed, snapped as in
// [Cursor.MoveCursor].
func (cr *Cursor) Nudge(x, y, z, dist, step float32) {
	cr.completeKinds(InterpPos | InterpArc)
	ps := cr.Pose
	ps.MoveOnAxis(x, y, z, dist)
	cr.MoveCursor(ps.Pos, step)
}

// Serialize vetoes saving the cursor.
func (cr *Cursor) Serialize(depth int, children bool) (*NodeData, bool) {
	return nil, false
}

// SnapToGrid rounds each coordinate of v to the nearest multiple of step.
func SnapToGrid(v math32.Vector3, step float32) math32.Vector3 {
	return math32.Vec3(
		math32.Round(v.X/step)*step,
		math32.Round(v.Y/step)*step,
		math32.Round(v.Z/step)*step,
	)
}
