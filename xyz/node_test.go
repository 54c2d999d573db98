// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec(t *testing.T, want, got math32.Vector3, msgs ...any) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-4, msgs...)
	assert.InDelta(t, want.Y, got.Y, 1e-4, msgs...)
	assert.InDelta(t, want.Z, got.Z, 1e-4, msgs...)
}

func TestWorldMatrixComposition(t *testing.T) {
	sc := NewScene("scene")
	gp := NewGroup(sc, "group")
	ms := NewMesh(gp, "mesh")

	gp.SetPos(math32.Vec3(1, 0, 0))
	ms.SetPos(math32.Vec3(0, 2, 0))
	assertVec(t, math32.Vec3(1, 2, 0), ms.WorldPos())

	gp.SetPos(math32.Vector3{})
	ms.SetPos(math32.Vec3(1, 0, 0))
	gp.Pose.SetAxisRotation(0, 1, 0, 90)
	gp.UpdateLocalMatrix()
	assertVec(t, math32.Vec3(0, 0, -1), ms.WorldPos())

	gp.SetScale(math32.Vec3(2, 2, 2))
	assertVec(t, math32.Vec3(0, 0, -2), ms.WorldPos())
}

func TestAddChildSetsGroupAndScene(t *testing.T) {
	sc := NewScene("scene")
	ms := NewMesh(sc, "parent")
	assert.False(t, ms.Caps.Has(CapGroup))
	kid := NewMesh(ms, "kid")
	assert.True(t, ms.Caps.Has(CapGroup))
	assert.Same(t, sc, kid.Scene)
	assert.Equal(t, Node(ms), kid.Parent)

	det := NewMesh(nil, "detached")
	assert.Nil(t, det.Scene)
	AddChild(ms, det)
	assert.Same(t, sc, det.Scene)

	assert.True(t, ms.RemoveChild(kid))
	assert.Nil(t, kid.Scene)
	assert.Nil(t, kid.Parent)
}

func TestInstanceChildrenUnlinked(t *testing.T) {
	sc := NewScene("scene")
	gp := NewGroup(sc, "asset").SetInstance(true)
	gp.SetPos(math32.Vec3(5, 0, 0))
	ms := NewMesh(gp, "part")
	assert.False(t, ms.ParentLink)
	ms.SetPos(math32.Vec3(1, 0, 0))
	assertVec(t, math32.Vec3(1, 0, 0), ms.WorldPos())

	plain := NewMesh(sc, "plain")
	assert.True(t, plain.ParentLink)
}

func TestIRotRoundTrip(t *testing.T) {
	for _, ir := range [][3]int{{1, 0, 0}, {0, -1, 0}, {0, 0, 1}, {-1, 0, 0}} {
		ms := NewMesh(nil, "m")
		ms.SetIRot(ir)
		assert.Equal(t, ir, ms.IRot(), "irot %v", ir)
	}
	ms := NewMesh(nil, "m")
	ms.Pose.SetAxisRotation(1, 0, 0, 80)
	assert.Equal(t, [3]int{1, 0, 0}, ms.IRot())
}

// axisOrientations returns the 24 rotations that map the axes onto
// the axes, made by composing quarter turns about X, Y and Z.
func axisOrientations() []math32.Quat {
	turns := []math32.Quat{
		math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), math32.DegToRad(90)),
		math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), math32.DegToRad(90)),
		math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), math32.DegToRad(90)),
	}
	all := []math32.Quat{IdentityQuat()}
	for i := 0; i < len(all); i++ {
		for _, tq := range turns {
			q := tq.Mul(all[i])
			q.Normalize()
			found := false
			for _, o := range all {
				if QuatNear(o, q, 1e-4) {
					found = true
					break
				}
			}
			if !found {
				all = append(all, q)
			}
		}
	}
	return all
}

func TestIRotAllOrientations(t *testing.T) {
	qs := axisOrientations()
	assert.Len(t, qs, 24)
	for _, q := range qs {
		var ps Pose
		ps.Quat = q
		ir := ps.IRot(90)
		var back Pose
		back.SetIRot(ir, 90)
		assert.True(t, QuatNear(q, back.Quat, 1e-4), "quat %v irot %v gives %v", q, ir, back.Quat)
		assert.Equal(t, ir, back.IRot(90), "quat %v", q)
	}
}

func TestClearDeads(t *testing.T) {
	gp := NewGroup(nil, "group")
	a := NewMesh(gp, "a")
	b := NewMesh(gp, "b")
	NewMesh(gp, "c")
	a.Dead = Remove
	b.Dead = Dead

	assert.Equal(t, 1, gp.ClearDeads(false))
	assert.Equal(t, 2, gp.NumChildren())
	assert.Equal(t, Remove, b.Dead)
	assert.Equal(t, 1, gp.ClearDeads(false))
	assert.Equal(t, 1, gp.ClearDeads(true))
	assert.False(t, gp.HasChildren())
}

func TestObjectLookup(t *testing.T) {
	sc := NewScene("scene")
	gp := NewGroup(sc, "group")
	ms := NewMesh(gp, "deep")
	assert.Equal(t, Node(ms), sc.ObjectByName("deep"))
	assert.Nil(t, sc.ObjectByName("none"))
	assert.Nil(t, sc.ObjectByName("scene"))
	assert.Equal(t, Node(ms), gp.ObjectByID(ms.ID))
	assert.Equal(t, Node(gp), sc.ChildByName("group"))
	assert.Equal(t, "/scene/group/deep", ms.Path())
}

func TestVisibility(t *testing.T) {
	gp := NewGroup(nil, "group")
	ms := NewMesh(gp, "mesh")
	assert.True(t, ms.IsVisible())
	gp.Visible = false
	assert.False(t, ms.IsVisible())
}

func TestCameraLookAt(t *testing.T) {
	cm := NewCamera(nil, "camera")
	assertVec(t, math32.Vec3(0, 0, 1), cm.WorldBack())
	assertVec(t, math32.Vec3(0, 1, 0), cm.WorldUp())
	assertVec(t, math32.Vec3(1, 0, 0), cm.WorldRight())

	cm.Pose.Pos = math32.Vec3(10, 0, 0)
	cm.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
	assertVec(t, math32.Vec3(1, 0, 0), cm.WorldBack())
	assertVec(t, math32.Vec3(0, 1, 0), cm.WorldUp())
	cm.LookAt(math32.Vector3{}, math32.Vector3{})
	assert.Equal(t, math32.Vec3(0, 1, 0), cm.UpDir)
	assertVec(t, math32.Vec3(0, 1, 0), cm.WorldUp())

	from, to := cm.PickRay(20)
	assertVec(t, math32.Vec3(10, 0, 0), from)
	assertVec(t, math32.Vec3(-10, 0, 0), to)

	cm.Orbit(90, 0)
	assert.InDelta(t, 10, cm.ViewVector().Length(), 1e-3)
}

func TestCapabilities(t *testing.T) {
	c := CapGroup | CapMesh
	assert.Equal(t, "Group Mesh", c.String())
	assert.Equal(t, CapMesh, c.Primary())
	assert.Equal(t, CapGroup, CapGroup.Primary())
	assert.Equal(t, CapPuzzleCube, (CapMesh | CapPuzzleCube).Primary())

	var d Capabilities
	require.NoError(t, d.SetString("Mesh HasBody"))
	assert.Equal(t, CapMesh|CapHasBody, d)
	assert.True(t, d.HasAny(CapHasBody|CapCamera))
	assert.False(t, d.Has(CapHasBody|CapCamera))

	assert.Error(t, d.SetString("Mesh Bogus"))
	assert.True(t, d.Has(CapMesh))

	d.Set(false, CapMesh)
	assert.Equal(t, "", d.String())
}

func TestStateEnums(t *testing.T) {
	var c Capabilities
	require.NoError(t, c.SetString("puzzlecube GROUP"))
	assert.Equal(t, CapPuzzleCube|CapGroup, c)
	assert.Len(t, CapabilitiesValues(), 8)
	assert.Contains(t, CapInternal.Desc(), "never saved")
	b, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Group PuzzleCube", string(b))

	var ds DeadState
	require.NoError(t, ds.SetString("Remove"))
	assert.Equal(t, Remove, ds)
	assert.Error(t, ds.SetString("Gone"))
	assert.Equal(t, "Dead", Dead.String())
	assert.Len(t, DeadStateValues(), int(DeadStateN))

	var ts TransformSource
	require.NoError(t, ts.UnmarshalText([]byte("PhysicsDriven")))
	assert.Equal(t, PhysicsDriven, ts)
	assert.Equal(t, "Local", Local.String())
}

func TestSnapToGrid(t *testing.T) {
	assertVec(t, math32.Vec3(1, -2, 0.5), SnapToGrid(math32.Vec3(1.1, -1.8, 0.4), 0.5))
}

func TestLibrary(t *testing.T) {
	sc := NewScene("scene")
	lib := sc.NewInLibrary("crate")
	part := NewMesh(lib, "part")
	part.SetPos(math32.Vec3(1, 2, 3))

	ng, err := sc.AddFromLibrary("crate", sc)
	require.NoError(t, err)
	assert.True(t, ng.Caps.Has(CapInstance))
	assert.Equal(t, sc, ng.Scene)
	cp := AsMesh(ng.ChildByName("part"))
	require.NotNil(t, cp)
	assert.NotSame(t, part, cp)
	assert.False(t, cp.ParentLink)
	assertVec(t, math32.Vec3(1, 2, 3), cp.WorldPos())
	assert.Nil(t, lib.Scene)

	_, err = sc.AddFromLibrary("missing", sc)
	assert.Error(t, err)
}
