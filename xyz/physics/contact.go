// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"cogentcore.org/core/math32"
)

// Contact is a contact between a dynamic body and a static one,
// or the ground when B is nil.
type Contact struct {
	A, B *RigidBody

	// Normal points from B toward A.
	Normal math32.Vector3

	// Depth of penetration along the normal.
	Depth float32
}

// resolveGround pushes the body out of the ground plane,
// bouncing and applying friction.
func (wr *World) resolveGround(rb *RigidBody) {
	bb := rb.WorldBBox()
	depth := wr.GroundHeight - bb.Min.Y
	if depth <= 0 {
		return
	}
	resolve(Contact{A: rb, Normal: math32.Vec3(0, 1, 0), Depth: depth}, rb.Friction)
}

// resolveStatic pushes the dynamic body out of the static one
// along the axis of least penetration.
func resolveStatic(rb, sb *RigidBody) {
	ct, ok := boxContact(rb.WorldBBox(), sb.WorldBBox())
	if !ok {
		return
	}
	ct.A = rb
	ct.B = sb
	resolve(ct, 0.5*(rb.Friction+sb.Friction))
}

// boxContact returns the contact between two overlapping boxes, with
// the normal pointing from b toward a along the axis of least overlap.
func boxContact(a, b math32.Box3) (Contact, bool) {
	if !a.IntersectsBox(b) {
		return Contact{}, false
	}
	ac := a.Center()
	bc := b.Center()
	overlap := func(amin, amax, bmin, bmax float32) float32 {
		return min(amax, bmax) - max(amin, bmin)
	}
	ox := overlap(a.Min.X, a.Max.X, b.Min.X, b.Max.X)
	oy := overlap(a.Min.Y, a.Max.Y, b.Min.Y, b.Max.Y)
	oz := overlap(a.Min.Z, a.Max.Z, b.Min.Z, b.Max.Z)
	if ox <= 0 || oy <= 0 || oz <= 0 {
		return Contact{}, false
	}
	var ct Contact
	switch {
	case ox <= oy && ox <= oz:
		ct.Depth = ox
		ct.Normal = math32.Vec3(math32.Sign(ac.X-bc.X), 0, 0)
	case oy <= oz:
		ct.Depth = oy
		ct.Normal = math32.Vec3(0, math32.Sign(ac.Y-bc.Y), 0)
	default:
		ct.Depth = oz
		ct.Normal = math32.Vec3(0, 0, math32.Sign(ac.Z-bc.Z))
	}
	if ct.Normal == (math32.Vector3{}) {
		ct.Normal = math32.Vec3(0, 1, 0)
	}
	return ct, true
}

// resolve moves body A out along the contact normal, reflecting the
// normal velocity by its restitution and reducing the tangential
// velocity by the given friction.
func resolve(ct Contact, friction float32) {
	st := &ct.A.State
	st.Pos = st.Pos.Add(ct.Normal.MulScalar(ct.Depth))
	vn := st.LinVel.Dot(ct.Normal)
	if vn >= 0 {
		return
	}
	normal := ct.Normal.MulScalar(vn)
	tangent := st.LinVel.Sub(normal)
	st.LinVel = tangent.MulScalar(1 - friction).Sub(normal.MulScalar(ct.A.Restitution))
	st.AngVel = st.AngVel.MulScalar(1 - friction)
}
