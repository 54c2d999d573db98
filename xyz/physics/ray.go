// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"cogentcore.org/core/math32"
)

// RayHit is the result of a ray test.
type RayHit struct {

	// Body that was hit.
	Body *RigidBody

	// User data of the body.
	User any

	// Point of entry into the body bounding box, in world coordinates.
	Point math32.Vector3

	// Fraction of the way from the start to the end of the ray.
	Fraction float32
}

// RayTest returns the closest body whose bounding box is hit by the
// segment between from and to. Suspended bodies are included so that
// objects being placed can still be picked.
func (wr *World) RayTest(from, to math32.Vector3) (RayHit, bool) {
	wr.mu.Lock()
	defer wr.mu.Unlock()
	if wr.bodies == nil {
		return RayHit{}, false
	}
	dir := to.Sub(from)
	var hit RayHit
	found := false
	for _, kv := range wr.bodies.Order {
		rb := kv.Value
		t, ok := raySlab(from, dir, rb.WorldBBox())
		if !ok || t > 1 {
			continue
		}
		if !found || t < hit.Fraction {
			found = true
			hit = RayHit{Body: rb, User: rb.User, Fraction: t, Point: from.Add(dir.MulScalar(t))}
		}
	}
	return hit, found
}

// raySlab returns the entry parameter t >= 0 along origin + t*dir of
// the given box, using the slab method.
func raySlab(origin, dir math32.Vector3, bb math32.Box3) (float32, bool) {
	const eps = 1.0e-8
	tmin := float32(0)
	tmax := math32.Inf(1)
	o := [3]float32{origin.X, origin.Y, origin.Z}
	d := [3]float32{dir.X, dir.Y, dir.Z}
	mn := [3]float32{bb.Min.X, bb.Min.Y, bb.Min.Z}
	mx := [3]float32{bb.Max.X, bb.Max.Y, bb.Max.Z}
	for i := range 3 {
		if math32.Abs(d[i]) < eps {
			if o[i] < mn[i] || o[i] > mx[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / d[i]
		t1 := (mn[i] - o[i]) * inv
		t2 := (mx[i] - o[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}
