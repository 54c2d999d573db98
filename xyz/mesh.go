// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/core/math32"
	"cogentcore.org/cube/tree"
	"cogentcore.org/cube/xyz/physics"
)

// Mesh is a renderable node with geometry and a material.
// It can own a physics [Body], in which case the physics step
// drives its world matrix while the body is active.
type Mesh struct {
	NodeBase

	// Geometry is the authoritative shape of the mesh.
	Geometry Geometry

	// Material contains the material properties of the surface.
	Material Material

	// Body is the physics body of the mesh, or nil.
	Body *Body `copier:"-"`
}

// NewMesh adds a new mesh with the given name to the given parent,
// which may be nil for a detached mesh.
func NewMesh(parent Node, name string) *Mesh {
	ms := &Mesh{}
	tree.InitNode(ms)
	ms.Name = name
	if parent != nil {
		parent.AsTree().AddChild(ms)
	}
	return ms
}

func (ms *Mesh) Init() {
	ms.NodeBase.Init()
	ms.Caps.Set(true, CapMesh)
	ms.Material.Defaults()
}

// AsMesh returns the mesh.
func (ms *Mesh) AsMesh() *Mesh {
	return ms
}

// AsMesh returns the given node as a [Mesh], or nil if it is not one.
// Types that embed Mesh are also returned as their Mesh.
func AsMesh(n tree.Node) *Mesh {
	if t, ok := n.(interface{ AsMesh() *Mesh }); ok {
		return t.AsMesh()
	}
	return nil
}

// SetColor sets the [Material.Color].
func (ms *Mesh) SetColor(c color.RGBA) *Mesh {
	ms.Material.Color = c
	return ms
}

// TransformSource is [PhysicsDriven] while the mesh has an active body.
func (ms *Mesh) TransformSource() TransformSource {
	if ms.Body != nil && ms.Body.Active() {
		return PhysicsDriven
	}
	return Local
}

// NewBody gives the mesh a new body with the given shape kind, mass and
// explicit dimensions (zero for dimensions from the geometry). Any prior
// body is destroyed. The physics shape and rigid body are created when
// the mesh is in a scene with a physics engine.
func (ms *Mesh) NewBody(kind physics.ShapeKinds, mass float32, dims math32.Vector3) *Body {
	if ms.Body != nil {
		ms.Body.Destroy()
	}
	ms.Body = &Body{Kind: kind, Mass: mass, Dims: dims, Enabled: true, mesh: ms}
	ms.Caps.Set(true, CapHasBody)
	if ms.Scene != nil {
		ms.Body.build()
	}
	return ms.Body
}

// RemoveBody destroys and removes the body of the mesh.
func (ms *Mesh) RemoveBody() {
	if ms.Body == nil {
		return
	}
	ms.Body.Destroy()
	ms.Body = nil
	ms.Caps.Set(false, CapHasBody)
}

// test for impl
var _ Node = &Mesh{}
