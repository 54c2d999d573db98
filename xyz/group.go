// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/cube/tree"
)

// Group collects individual elements in a scene but does not have a Mesh or Material of
// its own.  It does have a transform that applies to all nodes under it.
type Group struct {
	NodeBase
}

// NewGroup adds a new group with the given name to the given parent,
// which may be nil for a detached group.
func NewGroup(parent Node, name string) *Group {
	gp := &Group{}
	tree.InitNode(gp)
	gp.Name = name
	if parent != nil {
		parent.AsTree().AddChild(gp)
	}
	return gp
}

func (gp *Group) Init() {
	gp.NodeBase.Init()
	gp.Caps.Set(true, CapGroup)
}

// AsGroup returns the group.
func (gp *Group) AsGroup() *Group {
	return gp
}

// AsGroup returns the given node as a [Group], or nil if it is not one.
func AsGroup(n tree.Node) *Group {
	if t, ok := n.(interface{ AsGroup() *Group }); ok {
		return t.AsGroup()
	}
	return nil
}

// SetInstance marks the group as holding a loaded sub-asset: its
// children are positioned in world coordinates and are not saved.
// It applies to children added afterwards.
func (gp *Group) SetInstance(instance bool) *Group {
	gp.Caps.Set(instance, CapInstance)
	return gp
}

// BBox returns the world bounding box of the meshes under this group.
func (gp *Group) BBox() math32.Box3 {
	bb := math32.B3Empty()
	gp.WalkDown(func(n tree.Node) bool {
		ms := AsMesh(n)
		if ms == nil || !ms.Geometry.HasParts() {
			return tree.Continue
		}
		bb.ExpandByBox(ms.Geometry.BBox().MulMatrix4(&ms.Pose.WorldMatrix))
		return tree.Continue
	})
	return bb
}

// test for impl
var _ Node = &Group{}
