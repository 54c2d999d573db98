// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package puzzle

import (
	"log/slog"

	"cogentcore.org/cube/xyz"
)

func init() {
	xyz.RegisterFactory(xyz.CapPuzzleCube, func(nd *xyz.NodeData) xyz.Node {
		return NewCube(nil, "", nd.CubeSize, DefaultSpacing)
	})
}

// Serialize adds the cube size to the mesh data.
func (cb *Cube) Serialize(depth int, children bool) (*xyz.NodeData, bool) {
	nd, ok := cb.Mesh.Serialize(depth, children)
	if !ok {
		return nil, false
	}
	nd.CubeSize = cb.Size
	return nd, true
}

// Serialize saves only the pose of the cubie; its geometry and
// colors are made by the cube.
func (cu *Cubie) Serialize(depth int, children bool) (*xyz.NodeData, bool) {
	return cu.NodeBase.Serialize(depth, false)
}

// ParseChildren applies the saved cubie poses to the cubies made by
// the cube, matching by name. Unknown cubies are logged and skipped.
func (cb *Cube) ParseChildren(children []*xyz.NodeData, snap float32) {
	for _, cd := range children {
		cu := AsCubie(cb.ChildByName(cd.Name))
		if cu == nil {
			slog.Warn("puzzle.Cube.ParseChildren: unknown cubie, skipping", "cube", cb.Name, "cubie", cd.Name)
			continue
		}
		xyz.ApplyCommonData(cu, cd, snap)
	}
}
