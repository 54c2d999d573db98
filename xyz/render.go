// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"log/slog"

	"cogentcore.org/core/math32"
	"cogentcore.org/cube/tree"
)

// Renderer receives draw requests for the visible meshes of a scene.
// Draw returns false when it has no room for more draws this frame.
type Renderer interface {
	Draw(ms *Mesh, world *math32.Matrix4) bool
}

// Render submits every visible mesh with geometry to the given renderer,
// recursing into groups; invisible nodes hide their subtree. If the
// renderer runs out of room, this is logged and the remaining draws of
// the frame are dropped. It returns the number of meshes drawn.
func (sc *Scene) Render(r Renderer) int {
	n := 0
	full := false
	sc.WalkDown(func(k tree.Node) bool {
		if full {
			return tree.Break
		}
		kn := AsNode(k)
		if kn == nil || !kn.Visible || kn.Dead != Alive {
			return tree.Break
		}
		ms := AsMesh(k)
		if ms == nil || !ms.Geometry.HasParts() {
			return tree.Continue
		}
		if !r.Draw(ms, &ms.Pose.WorldMatrix) {
			slog.Warn("xyz.Scene.Render: renderer full, dropping rest of frame", "scene", sc.Name, "drawn", n)
			full = true
			return tree.Break
		}
		n++
		return tree.Continue
	})
	return n
}
