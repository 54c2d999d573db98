// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

// Capabilities is a bit mask of the roles a node plays in the scene.
// It is stored for persistence and fast filtering; typed access goes
// through [AsMesh], [AsGroup], [AsCamera] and [AsCursor].
type Capabilities uint32

const (
	// CapGroup is set on any node that has had children added.
	CapGroup Capabilities = 1 << iota

	// CapMesh is set on nodes with renderable geometry.
	CapMesh

	// CapCamera is set on camera nodes.
	CapCamera

	// CapCursor is set on the editor placement cursor.
	CapCursor

	// CapHasBody is set on meshes that own a physics body.
	CapHasBody

	// CapInstance marks a group holding a loaded sub-asset, whose
	// children are not linked to its transform and are not saved.
	CapInstance

	// CapPuzzleCube is set on twisty puzzle cubes.
	CapPuzzleCube

	// CapInternal marks scene-owned groups that are never saved.
	CapInternal
)

// Has returns whether all of the given capabilities are set.
func (c Capabilities) Has(f Capabilities) bool {
	return c&f == f
}

// HasAny returns whether any of the given capabilities are set.
func (c Capabilities) HasAny(f Capabilities) bool {
	return c&f != 0
}

// Set sets or clears the given capabilities.
func (c *Capabilities) Set(on bool, f ...Capabilities) {
	for _, fl := range f {
		if on {
			*c |= fl
		} else {
			*c &^= fl
		}
	}
}

// Primary returns the capability that determines the concrete node
// type to construct for the mask, as used by [Parse].
func (c Capabilities) Primary() Capabilities {
	for _, f := range []Capabilities{CapPuzzleCube, CapCamera, CapCursor, CapMesh} {
		if c.Has(f) {
			return f
		}
	}
	return CapGroup
}

// DeadState is the removal state of a node.
type DeadState int32

const (
	// Alive nodes are in normal use.
	Alive DeadState = iota

	// Dead nodes are scheduled for removal and become
	// [Remove] on the next [NodeBase.ClearDeads] of their parent.
	Dead

	// Remove nodes are removed by the next [NodeBase.ClearDeads]
	// of their parent.
	Remove
)

// TransformSource determines what owns the world matrix of a node.
type TransformSource int32

const (
	// Local nodes derive their world matrix from their parent
	// and their own pose.
	Local TransformSource = iota

	// PhysicsDriven nodes have their world matrix written by the
	// physics step; their children still derive from it.
	PhysicsDriven
)
