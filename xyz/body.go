// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"log/slog"

	"cogentcore.org/core/math32"
	"cogentcore.org/cube/xyz/physics"
)

// Body is the physics body of a [Mesh], which it exclusively owns.
// It bridges the mesh and the rigid body in the physics engine of
// the scene, in the direction given by whether it is enabled.
type Body struct {

	// Kind is the kind of collision shape.
	Kind physics.ShapeKinds

	// Dims are explicit shape dimensions: full box size, sphere diameter
	// in X, or cylinder and capsule diameter in X and height in Y.
	// Zero dims derive the shape from the mesh geometry.
	Dims math32.Vector3

	// Mass of the body; zero makes it static.
	Mass float32

	// Enabled bodies drive their mesh when they have mass; disabled
	// ones are suspended and follow their mesh.
	Enabled bool

	// Shape is the collision shape, or nil if none could be made.
	Shape *physics.Shape `copier:"-" json:"-"`

	// Rigid is the rigid body in the engine, or nil.
	Rigid *physics.RigidBody `copier:"-" json:"-"`

	// mesh is the owner of the body.
	mesh *Mesh

	// engine is the engine the rigid body is registered in.
	engine physics.Engine
}

// Active returns whether the body drives its mesh: it is enabled,
// has positive mass, and exists in the engine.
func (bd *Body) Active() bool {
	return bd.Enabled && bd.Mass > 0 && bd.Rigid != nil
}

// build creates the shape and rigid body in the scene engine
// from the current world pose of the mesh.
func (bd *Body) build() {
	if bd.mesh == nil || bd.mesh.Scene == nil || bd.mesh.Scene.Physics == nil || bd.Rigid != nil {
		return
	}
	if bd.Shape == nil {
		bd.CreateShape(bd.Kind, bd.mesh, bd.Dims)
	}
	if bd.Shape == nil {
		return
	}
	pos, quat, _ := bd.mesh.Pose.WorldMatrix.Decompose()
	bd.CreateBody(bd.Mass, pos, quat)
}

// CreateShape sets the collision shape of the given kind. Non-zero dims
// give a primitive directly; otherwise the shape is derived from the
// geometry of the source mesh. Geometry with more than one part, or with
// a centroid off the origin, gives a compound of one child shape per
// part at its offset. If no usable geometry exists, this is logged and
// the shape is left nil.
func (bd *Body) CreateShape(kind physics.ShapeKinds, source *Mesh, dims math32.Vector3) *physics.Shape {
	bd.Kind = kind
	bd.Dims = dims
	bd.Shape = nil
	if dims != (math32.Vector3{}) {
		bd.Shape = primitiveShape(kind, dims)
		return bd.Shape
	}
	if source == nil || !source.Geometry.HasParts() {
		slog.Warn("xyz.Body.CreateShape: no geometry for shape", "kind", kind.String())
		return nil
	}
	gm := &source.Geometry
	if len(gm.Parts) > 1 || gm.Centroid().Length() > 1e-4 {
		cmp := physics.NewCompound()
		for i := range gm.Parts {
			gp := &gm.Parts[i]
			ctr := gp.BBox().Center()
			sub := partShape(kind, &Geometry{Parts: []GeometryPart{*gp}}, ctr)
			if sub == nil {
				continue
			}
			cmp.AddChild(sub, ctr, IdentityQuat())
		}
		if len(cmp.Children) == 0 {
			slog.Warn("xyz.Body.CreateShape: no usable geometry parts", "kind", kind.String(), "mesh", source.Path())
			return nil
		}
		bd.Shape = cmp
		return bd.Shape
	}
	bd.Shape = partShape(kind, gm, math32.Vector3{})
	if bd.Shape == nil {
		slog.Warn("xyz.Body.CreateShape: unusable geometry", "kind", kind.String(), "mesh", source.Path())
	}
	return bd.Shape
}

// primitiveShape returns a shape from explicit dimensions.
func primitiveShape(kind physics.ShapeKinds, dims math32.Vector3) *physics.Shape {
	switch kind {
	case physics.Sphere:
		return physics.NewSphere(max(dims.X, dims.Y, dims.Z) / 2)
	case physics.Cylinder:
		return physics.NewCylinder(dims.X/2, dims.Y)
	case physics.Capsule:
		return physics.NewCapsule(dims.X/2, max(dims.Y-dims.X, 0))
	}
	return physics.NewBox(dims.MulScalar(0.5))
}

// partShape returns a shape from the given geometry, in coordinates
// relative to the given center.
func partShape(kind physics.ShapeKinds, gm *Geometry, center math32.Vector3) *physics.Shape {
	bb := gm.BBox()
	sz := bb.Size()
	switch kind {
	case physics.Sphere:
		return physics.NewSphere(gm.Radius())
	case physics.Cylinder:
		return physics.NewCylinder(max(sz.X, sz.Z)/2, sz.Y)
	case physics.Capsule:
		r := max(sz.X, sz.Z) / 2
		return physics.NewCapsule(r, max(sz.Y-2*r, 0))
	case physics.ConvexHull:
		pts := gm.Points()
		for i := range pts {
			pts[i] = pts[i].Sub(center)
		}
		return physics.NewConvexHull(pts)
	case physics.TriangleMesh:
		vtx, idx := gm.Triangles()
		for i := range vtx {
			vtx[i] = vtx[i].Sub(center)
		}
		return physics.NewTriangleMesh(vtx, idx)
	case physics.Compound:
		return nil
	}
	return physics.NewBox(sz.MulScalar(0.5))
}

// CreateBody creates the rigid body in the scene engine with the given
// mass and world pose, destroying any prior one first. It requires a
// shape and a scene with an engine, and returns false otherwise.
// The mesh is the user data of the rigid body.
func (bd *Body) CreateBody(mass float32, pos math32.Vector3, quat math32.Quat) bool {
	bd.Destroy()
	if bd.Shape == nil {
		slog.Warn("xyz.Body.CreateBody: no shape")
		return false
	}
	if bd.mesh == nil || bd.mesh.Scene == nil || bd.mesh.Scene.Physics == nil {
		slog.Warn("xyz.Body.CreateBody: mesh is not in a scene with physics")
		return false
	}
	bd.Mass = mass
	bd.engine = bd.mesh.Scene.Physics
	bd.Rigid = bd.engine.AddBody(bd.Shape, mass, physics.NewTransform(pos, quat), bd.mesh.This)
	if bd.Rigid == nil {
		bd.engine = nil
		return false
	}
	if !bd.Enabled {
		bd.Rigid.SetSuspended(true)
	}
	return true
}

// Destroy removes the rigid body from its engine. The shape is kept
// so the body can be created again.
func (bd *Body) Destroy() {
	if bd.Rigid == nil {
		return
	}
	if bd.engine != nil {
		bd.engine.RemoveBody(bd.Rigid)
	}
	bd.Rigid = nil
	bd.engine = nil
}

// SetEnabled enables or disables the body. A disabled body is
// suspended in the engine; an enabled one resumes from the current
// world pose of its mesh.
func (bd *Body) SetEnabled(enable bool) {
	bd.Enabled = enable
	if bd.Rigid == nil {
		return
	}
	if enable {
		bd.pushPose()
	}
	bd.Rigid.SetSuspended(!enable)
}

// pushPose sets the rigid body transform from the mesh world matrix.
func (bd *Body) pushPose() {
	pos, quat, _ := bd.mesh.Pose.WorldMatrix.Decompose()
	bd.Rigid.SetTransform(physics.NewTransform(pos, quat))
}

// sync transfers the pose between the rigid body and the mesh.
// Active bodies write the mesh world matrix and local pose, marking
// the mesh for removal below the floor height; other bodies take
// the world pose of the mesh.
func (bd *Body) sync(floor float32) {
	if bd.Rigid == nil {
		return
	}
	if !bd.Active() {
		bd.pushPose()
		return
	}
	ms := bd.mesh
	xf := bd.Rigid.Transform()
	_, _, wsc := ms.Pose.WorldMatrix.Decompose()
	ms.Pose.WorldMatrix.SetTransform(xf.Pos, xf.Quat, wsc)

	ppos := math32.Vector3{}
	pquat := IdentityQuat()
	psc := math32.Vec3(1, 1, 1)
	if pw := ms.parentWorld(); pw != nil {
		ppos, pquat, psc = pw.Decompose()
	}
	inv := pquat.Conjugate()
	lp := xf.Pos.Sub(ppos).MulQuat(inv)
	ms.Pose.Pos = math32.Vec3(lp.X/psc.X, lp.Y/psc.Y, lp.Z/psc.Z)
	ms.Pose.Quat = inv.Mul(xf.Quat)
	ms.Pose.UpdateMatrix()

	if xf.Pos.Y < floor {
		ms.Dead = Remove
	}
}
