// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"cogentcore.org/core/math32"
)

// ShapeKinds are the kinds of collision shapes.
type ShapeKinds int32

const (
	// Box is a rectangular box given by its half extents.
	Box ShapeKinds = iota

	// Sphere is given by its radius.
	Sphere

	// Cylinder is aligned on the Y axis, given by its radius and height.
	Cylinder

	// Capsule is a Y aligned cylinder with hemispheres at each end.
	// Height is the height of the cylinder portion.
	Capsule

	// ConvexHull is the convex hull of a set of points.
	ConvexHull

	// TriangleMesh is an arbitrary indexed triangle mesh.
	// It can only be used for static bodies.
	TriangleMesh

	// Compound is an aggregate of child shapes at given offsets.
	Compound
)

// Shape is a collision shape. Shapes are immutable once built and
// can be shared among bodies.
type Shape struct {

	// Kind of shape.
	Kind ShapeKinds

	// HalfExtents for [Box].
	HalfExtents math32.Vector3

	// Radius for [Sphere], [Cylinder] and [Capsule].
	Radius float32

	// Height for [Cylinder] and [Capsule].
	Height float32

	// Points for [ConvexHull] and [TriangleMesh].
	Points []math32.Vector3

	// Indices for [TriangleMesh], three per triangle.
	Indices []uint32

	// Children for [Compound].
	Children []ChildShape
}

// ChildShape is a shape within a [Compound] shape, placed at
// an offset from the compound origin.
type ChildShape struct {
	Offset math32.Vector3
	Quat   math32.Quat
	Shape  *Shape
}

// NewBox returns a new box shape with the given half extents.
func NewBox(halfExtents math32.Vector3) *Shape {
	return &Shape{Kind: Box, HalfExtents: halfExtents}
}

// NewSphere returns a new sphere shape.
func NewSphere(radius float32) *Shape {
	return &Shape{Kind: Sphere, Radius: radius}
}

// NewCylinder returns a new Y aligned cylinder shape.
func NewCylinder(radius, height float32) *Shape {
	return &Shape{Kind: Cylinder, Radius: radius, Height: height}
}

// NewCapsule returns a new Y aligned capsule shape, where height
// is the height of the cylinder portion.
func NewCapsule(radius, height float32) *Shape {
	return &Shape{Kind: Capsule, Radius: radius, Height: height}
}

// NewConvexHull returns a new convex hull shape from the given points,
// or nil if there are none.
func NewConvexHull(points []math32.Vector3) *Shape {
	if len(points) == 0 {
		return nil
	}
	return &Shape{Kind: ConvexHull, Points: points}
}

// NewTriangleMesh returns a new triangle mesh shape from the given
// points and triangle indices, or nil if there are no complete triangles.
func NewTriangleMesh(points []math32.Vector3, indices []uint32) *Shape {
	if len(points) == 0 || len(indices) < 3 {
		return nil
	}
	return &Shape{Kind: TriangleMesh, Points: points, Indices: indices}
}

// NewCompound returns a new empty compound shape.
func NewCompound() *Shape {
	return &Shape{Kind: Compound}
}

// AddChild adds the given child shape at the given offset to a compound shape.
func (sh *Shape) AddChild(child *Shape, offset math32.Vector3, quat math32.Quat) *Shape {
	if quat.IsNil() {
		quat.SetIdentity()
	}
	sh.Children = append(sh.Children, ChildShape{Offset: offset, Quat: quat, Shape: child})
	return sh
}

// BBox returns the bounding box of the shape in its local coordinates.
func (sh *Shape) BBox() math32.Box3 {
	switch sh.Kind {
	case Box:
		return math32.Box3{Min: sh.HalfExtents.Negate(), Max: sh.HalfExtents}
	case Sphere:
		r := math32.Vec3(sh.Radius, sh.Radius, sh.Radius)
		return math32.Box3{Min: r.Negate(), Max: r}
	case Cylinder:
		h := math32.Vec3(sh.Radius, sh.Height/2, sh.Radius)
		return math32.Box3{Min: h.Negate(), Max: h}
	case Capsule:
		h := math32.Vec3(sh.Radius, sh.Height/2+sh.Radius, sh.Radius)
		return math32.Box3{Min: h.Negate(), Max: h}
	case ConvexHull, TriangleMesh:
		bb := math32.B3Empty()
		bb.ExpandByPoints(sh.Points)
		return bb
	case Compound:
		bb := math32.B3Empty()
		for _, c := range sh.Children {
			cb := c.Shape.BBox().MulQuat(c.Quat).Translate(c.Offset)
			bb.ExpandByBox(cb)
		}
		return bb
	}
	return math32.B3Empty()
}

// Inertia returns the diagonal of the local inertia tensor of the shape
// for the given mass, using the bounding box as an approximation for
// shapes without a closed form.
func (sh *Shape) Inertia(mass float32) math32.Vector3 {
	switch sh.Kind {
	case Sphere:
		i := 0.4 * mass * sh.Radius * sh.Radius
		return math32.Vec3(i, i, i)
	case Cylinder, Capsule:
		r2 := sh.Radius * sh.Radius
		h := sh.Height
		if sh.Kind == Capsule {
			h += 2 * sh.Radius
		}
		side := mass * (3*r2 + h*h) / 12
		return math32.Vec3(side, 0.5*mass*r2, side)
	}
	sz := sh.BBox().Size()
	k := mass / 12
	return math32.Vec3(k*(sz.Y*sz.Y+sz.Z*sz.Z), k*(sz.X*sz.X+sz.Z*sz.Z), k*(sz.X*sz.X+sz.Y*sz.Y))
}
