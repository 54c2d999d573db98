// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stepFor(wr *World, secs float32) {
	for t := float32(0); t < secs; t += 1.0 / 60 {
		wr.Step(1.0 / 60)
	}
}

func TestWorldFallToGround(t *testing.T) {
	wr := NewWorld()
	wr.HasGround = true
	rb := wr.AddBody(NewBox(math32.Vec3(0.5, 0.5, 0.5)), 1, NewTransform(math32.Vec3(0, 5, 0), math32.Quat{}), "box")
	require.NotNil(t, rb)
	stepFor(wr, 4)
	pos := rb.Transform().Pos
	assert.InDelta(t, 0.5, pos.Y, 0.01)
	assert.InDelta(t, 0, pos.X, 1e-4)
}

func TestWorldFreeFall(t *testing.T) {
	wr := NewWorld()
	rb := wr.AddBody(NewSphere(1), 2, NewTransform(math32.Vec3(0, 10, 0), math32.Quat{}), nil)
	stepFor(wr, 1)
	y := rb.Transform().Pos.Y
	assert.Less(t, y, float32(6))
	assert.Greater(t, y, float32(4))
	assert.Less(t, rb.State.LinVel.Y, float32(0))
}

func TestWorldStaticAndSuspended(t *testing.T) {
	wr := NewWorld()
	st := wr.AddBody(NewBox(math32.Vec3(1, 1, 1)), 0, NewTransform(math32.Vec3(0, 3, 0), math32.Quat{}), nil)
	sp := wr.AddBody(NewBox(math32.Vec3(1, 1, 1)), 1, NewTransform(math32.Vec3(5, 3, 0), math32.Quat{}), nil)
	sp.SetSuspended(true)
	stepFor(wr, 1)
	assert.Equal(t, float32(3), st.Transform().Pos.Y)
	assert.Equal(t, float32(3), sp.Transform().Pos.Y)
	assert.True(t, st.IsStatic())
	assert.False(t, sp.IsDynamic())

	sp.SetSuspended(false)
	stepFor(wr, 0.5)
	assert.Less(t, sp.Transform().Pos.Y, float32(3))
}

func TestWorldRestOnStatic(t *testing.T) {
	wr := NewWorld()
	wr.AddBody(NewBox(math32.Vec3(5, 0.5, 5)), 0, NewTransform(math32.Vector3{}, math32.Quat{}), "floor")
	rb := wr.AddBody(NewBox(math32.Vec3(0.5, 0.5, 0.5)), 1, NewTransform(math32.Vec3(0, 3, 0), math32.Quat{}), "box")
	stepFor(wr, 3)
	assert.InDelta(t, 1.0, rb.Transform().Pos.Y, 0.02)
}

func TestWorldRemoveBody(t *testing.T) {
	wr := NewWorld()
	rb := wr.AddBody(NewSphere(1), 1, NewTransform(math32.Vector3{}, math32.Quat{}), nil)
	other := NewWorld()
	assert.Equal(t, 1, wr.NumBodies())
	assert.False(t, other.RemoveBody(rb))
	assert.True(t, wr.RemoveBody(rb))
	assert.False(t, wr.RemoveBody(rb))
	assert.Equal(t, 0, wr.NumBodies())
	assert.Nil(t, wr.AddBody(nil, 1, Transform{}, nil))
}

func TestWorldRayTest(t *testing.T) {
	wr := NewWorld()
	wr.AddBody(NewBox(math32.Vec3(1, 1, 1)), 0, NewTransform(math32.Vec3(0, 0, -10), math32.Quat{}), "far")
	wr.AddBody(NewBox(math32.Vec3(1, 1, 1)), 0, NewTransform(math32.Vec3(0, 0, -5), math32.Quat{}), "near")
	wr.AddBody(NewBox(math32.Vec3(1, 1, 1)), 0, NewTransform(math32.Vec3(5, 0, -5), math32.Quat{}), "aside")

	hit, ok := wr.RayTest(math32.Vec3(0, 0, 0), math32.Vec3(0, 0, -20))
	require.True(t, ok)
	assert.Equal(t, "near", hit.User)
	assert.InDelta(t, -4, hit.Point.Z, 1e-4)
	assert.InDelta(t, 0.2, hit.Fraction, 1e-4)

	_, ok = wr.RayTest(math32.Vec3(0, 0, 0), math32.Vec3(0, 0, -3))
	assert.False(t, ok)
	_, ok = wr.RayTest(math32.Vec3(0, 5, 0), math32.Vec3(0, 5, -20))
	assert.False(t, ok)
}

func TestShapeBBox(t *testing.T) {
	cmp := NewCompound()
	cmp.AddChild(NewBox(math32.Vec3(1, 1, 1)), math32.Vec3(2, 0, 0), math32.Quat{})
	cmp.AddChild(NewSphere(0.5), math32.Vec3(-2, 0, 0), math32.Quat{})
	bb := cmp.BBox()
	assert.InDelta(t, -2.5, bb.Min.X, 1e-5)
	assert.InDelta(t, 3, bb.Max.X, 1e-5)
	assert.InDelta(t, 1, bb.Max.Y, 1e-5)

	cp := NewCapsule(1, 2)
	assert.InDelta(t, 2, cp.BBox().Max.Y, 1e-5)

	assert.Nil(t, NewConvexHull(nil))
	assert.Nil(t, NewTriangleMesh([]math32.Vector3{{}}, []uint32{0}))

	in := NewSphere(1).Inertia(5)
	assert.InDelta(t, 2, in.X, 1e-5)

	var k ShapeKinds
	assert.NoError(t, k.SetString("Cylinder"))
	assert.Equal(t, Cylinder, k)
	assert.Error(t, k.SetString("Cone"))
	assert.Equal(t, Cylinder, k)
	assert.Equal(t, "Compound", Compound.String())
	assert.Len(t, ShapeKindsValues(), int(ShapeKindsN))
	assert.Contains(t, Capsule.Desc(), "hemispheres")
}
