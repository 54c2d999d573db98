// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz provides the scene graph of the editor: a hierarchy of
// nodes with poses and cached world matrices, smooth interpolation
// between poses, a bridge to a physics engine, and persistence.
package xyz

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/cube/tree"
)

// Node is the interface for all xyz nodes.
// Most of the functionality is on [NodeBase]; the methods here
// are the ones that specific node types override.
type Node interface {
	tree.Node

	// AsNode returns the [NodeBase] of this node.
	AsNode() *NodeBase

	// TransformSource returns what owns the world matrix of this
	// node for the current frame.
	TransformSource() TransformSource

	// Serialize returns the persisted form of this node at the given
	// depth below the root of the save, including children if requested.
	// It returns false if the node vetoes its own inclusion, which
	// callers must treat as omission, not an error.
	Serialize(depth int, children bool) (*NodeData, bool)

	// ApplyData sets the type specific fields of this node
	// from the given persisted data.
	ApplyData(nd *NodeData)
}

// NodeBase is the basic xyz node, which has a pose and a
// cached world matrix, and can be interpolated.
type NodeBase struct {
	tree.NodeBase

	// Caps are the capabilities of this node.
	Caps Capabilities

	// Pose is the complete specification of position and orientation.
	Pose Pose

	// Interp is the interpolation state.
	Interp Interp `display:"-"`

	// ParentLink is whether the world matrix of this node is derived
	// from the world matrix of its parent. It is false for children of
	// [CapInstance] groups.
	ParentLink bool

	// Dead is the removal state.
	Dead DeadState

	// Visible is whether the node and its children are rendered.
	Visible bool

	// Placing is set while the node is being placed in the editor;
	// such nodes are not saved.
	Placing bool

	// Scene is the scene this node is in, or nil.
	Scene *Scene `copier:"-" json:"-" xml:"-" display:"-"`
}

// AsNode returns the [NodeBase] of the given node,
// or nil if it is not an xyz node.
func AsNode(n tree.Node) *NodeBase {
	if n == nil {
		return nil
	}
	if t, ok := n.(interface{ AsNode() *NodeBase }); ok {
		return t.AsNode()
	}
	return nil
}

func (nb *NodeBase) AsNode() *NodeBase {
	return nb
}

func (nb *NodeBase) Init() {
	nb.Pose.Defaults()
	nb.Pose.UpdateMatrix()
	nb.Pose.WorldMatrix = nb.Pose.Matrix
	nb.Visible = true
	nb.ParentLink = true
}

// TransformSource is [Local] for plain nodes.
func (nb *NodeBase) TransformSource() TransformSource {
	return Local
}

// OnAdd marks the parent as a group, links to its transform unless it
// is an instance, joins its scene, and computes the world matrix.
func (nb *NodeBase) OnAdd() {
	pn := AsNode(nb.Parent)
	if pn == nil {
		return
	}
	pn.Caps.Set(true, CapGroup)
	nb.ParentLink = !pn.Caps.Has(CapInstance)
	nb.UpdateLocalMatrix()
	setScene(nb.This, pn.Scene)
}

// OnRemove destroys the physics bodies of this node and its
// descendants and detaches them from the scene.
func (nb *NodeBase) OnRemove() {
	nb.WalkDown(func(n tree.Node) bool {
		if ms := AsMesh(n); ms != nil && ms.Body != nil {
			ms.Body.Destroy()
		}
		kn := AsNode(n)
		if kn == nil {
			return tree.Break
		}
		if c, ok := n.(Controller); ok && kn.Scene != nil {
			kn.Scene.RemoveController(c)
		}
		kn.Scene = nil
		return tree.Continue
	})
}

// AddChild adds the given node as a child of this node; see [tree.NodeBase.AddChild].
// It returns the child for convenience.
func AddChild[T Node](parent Node, child T) T {
	parent.AsTree().AddChild(child)
	return child
}

// IsVisible returns whether this node and all of its parents are visible.
func (nb *NodeBase) IsVisible() bool {
	vis := true
	nb.WalkUp(func(n tree.Node) bool {
		if kn := AsNode(n); kn != nil && !kn.Visible {
			vis = false
			return tree.Break
		}
		return tree.Continue
	})
	return vis
}

//////// Matrices

// UpdateLocalMatrix recomputes the local matrix from the pose and then
// forces a world matrix update of this node and all descendants.
func (nb *NodeBase) UpdateLocalMatrix() {
	nb.Pose.UpdateMatrix()
	nb.UpdateWorldMatrix(true)
}

// UpdateWorldMatrix recomputes the world matrix as the parent world
// matrix times the local matrix, using identity for roots and nodes
// without [NodeBase.ParentLink]. A [PhysicsDriven] node keeps its world
// matrix unless force is set. It always recurses into the children.
func (nb *NodeBase) UpdateWorldMatrix(force bool) {
	src := Local
	if nn, ok := nb.This.(Node); ok {
		src = nn.TransformSource()
	}
	if force || src == Local {
		nb.Pose.UpdateWorldMatrix(nb.parentWorld())
	}
	for _, kid := range nb.Children {
		if kn := AsNode(kid); kn != nil {
			kn.UpdateWorldMatrix(force)
		}
	}
}

// parentWorld returns the world matrix this node is relative to,
// or nil for identity.
func (nb *NodeBase) parentWorld() *math32.Matrix4 {
	if !nb.ParentLink {
		return nil
	}
	pn := AsNode(nb.Parent)
	if pn == nil {
		return nil
	}
	return &pn.Pose.WorldMatrix
}

// WorldPos returns the current world position.
func (nb *NodeBase) WorldPos() math32.Vector3 {
	return nb.Pose.WorldPos()
}

// SetPos sets the position and updates the matrices.
func (nb *NodeBase) SetPos(pos math32.Vector3) {
	nb.Pose.Pos = pos
	nb.UpdateLocalMatrix()
}

// SetQuat sets the rotation and updates the matrices.
func (nb *NodeBase) SetQuat(quat math32.Quat) {
	nb.Pose.Quat = quat
	nb.UpdateLocalMatrix()
}

// SetScale sets the scale and updates the matrices.
func (nb *NodeBase) SetScale(scale math32.Vector3) {
	nb.Pose.Scale = scale
	nb.UpdateLocalMatrix()
}

// snapAngle returns the integer rotation snap angle of the scene.
func (nb *NodeBase) snapAngle() float32 {
	if nb.Scene != nil && nb.Scene.SnapAngle > 0 {
		return nb.Scene.SnapAngle
	}
	return DefaultSnapAngle
}

// IRot returns the rotation in integer multiples of the snap angle.
func (nb *NodeBase) IRot() [3]int {
	return nb.Pose.IRot(nb.snapAngle())
}

// SetIRot sets the rotation from integer multiples of the snap angle.
func (nb *NodeBase) SetIRot(irot [3]int) {
	nb.Pose.SetIRot(irot, nb.snapAngle())
	nb.UpdateLocalMatrix()
}

//////// Children

// ClearDeads removes every child whose [NodeBase.Dead] state is
// [Remove], or all children if force is set, and advances [Dead]
// children to [Remove]. It does not recurse. It returns the number
// of children removed.
func (nb *NodeBase) ClearDeads(force bool) int {
	n := 0
	for _, kid := range append([]tree.Node(nil), nb.Children...) {
		kn := AsNode(kid)
		if force || (kn != nil && kn.Dead == Remove) {
			if nb.RemoveChild(kid) {
				n++
			}
			continue
		}
		if kn != nil && kn.Dead == Dead {
			kn.Dead = Remove
		}
	}
	return n
}

// ObjectByName returns the first descendant with the given name,
// in depth-first order, or nil.
func (nb *NodeBase) ObjectByName(name string) Node {
	var found Node
	nb.WalkDown(func(n tree.Node) bool {
		if found != nil {
			return tree.Break
		}
		if n != nb.This && n.AsTree().Name == name {
			found, _ = n.(Node)
			if found != nil {
				return tree.Break
			}
		}
		return tree.Continue
	})
	return found
}

// ObjectByID returns the first descendant with the given id,
// in depth-first order, or nil. Ids are only unique among siblings.
func (nb *NodeBase) ObjectByID(id int) Node {
	var found Node
	nb.WalkDown(func(n tree.Node) bool {
		if found != nil {
			return tree.Break
		}
		if n != nb.This && n.AsTree().ID == id {
			found, _ = n.(Node)
			if found != nil {
				return tree.Break
			}
		}
		return tree.Continue
	})
	return found
}

//////// Physics

// ActivatePhysics enables or disables the physics bodies of this node
// and all of its descendants. Disabled bodies are suspended and follow
// their nodes; enabled bodies start from the current node pose.
func (nb *NodeBase) ActivatePhysics(enable bool) {
	nb.WalkDown(func(n tree.Node) bool {
		if ms := AsMesh(n); ms != nil && ms.Body != nil {
			ms.Body.SetEnabled(enable)
		}
		return tree.Continue
	})
}

// BeginPlacing marks this node as being placed, suspending its physics.
func (nb *NodeBase) BeginPlacing() {
	nb.Placing = true
	nb.ActivatePhysics(false)
}

// EndPlacing ends placement, resuming its physics.
func (nb *NodeBase) EndPlacing() {
	nb.Placing = false
	nb.ActivatePhysics(true)
}
