// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/core/math32"
)

// DefaultSnapAngle is the snap angle in degrees used for integer
// rotations when no scene sets one.
const DefaultSnapAngle = 90

// Pose contains the full specification of position and orientation,
// always relevant to the parent element.
type Pose struct {

	// position of center of element (relative to parent)
	Pos math32.Vector3

	// scale (relative to parent)
	Scale math32.Vector3

	// Node rotation specified as a Quat (relative to parent)
	Quat math32.Quat

	// Local matrix. Contains all position/rotation/scale information (relative to parent)
	Matrix math32.Matrix4 `display:"-"`

	// World matrix. Contains all absolute position/rotation/scale information
	// (i.e. relative to very top parent, generally the scene)
	WorldMatrix math32.Matrix4 `display:"-"`
}

// Defaults sets defaults only if current values are nil
func (ps *Pose) Defaults() {
	if ps.Scale == (math32.Vector3{}) {
		ps.Scale.Set(1, 1, 1)
	}
	if ps.Quat.IsNil() {
		ps.Quat.SetIdentity()
	}
}

// UpdateMatrix updates the local transform matrix based on its position, quaternion, and scale.
// Also checks for degenerate nil values
func (ps *Pose) UpdateMatrix() {
	ps.Defaults()
	ps.Matrix.SetTransform(ps.Pos, ps.Quat, ps.Scale)
}

// UpdateWorldMatrix updates the world transform matrix based on Matrix and parent's WorldMatrix.
// Does NOT call UpdateMatrix so that can include other factors as needed.
func (ps *Pose) UpdateWorldMatrix(parWorld *math32.Matrix4) {
	if parWorld == nil {
		ps.WorldMatrix = ps.Matrix
		return
	}
	ps.WorldMatrix.MulMatrices(parWorld, &ps.Matrix)
}

//////// Moving

// MoveOnAxis moves (translates) the specified distance on the specified local axis,
// relative to the current rotation orientation.
func (ps *Pose) MoveOnAxis(x, y, z, dist float32) {
	ps.Pos.SetAdd(math32.Vec3(x, y, z).Normal().MulQuat(ps.Quat).MulScalar(dist))
}

//////// Rotating

// SetEulerRotation sets the rotation in Euler angles (degrees).
func (ps *Pose) SetEulerRotation(x, y, z float32) {
	ps.Quat.SetFromEuler(math32.Vec3(x, y, z).MulScalar(math32.DegToRadFactor))
}

// EulerRotation returns the current rotation in Euler angles (degrees).
func (ps *Pose) EulerRotation() math32.Vector3 {
	return ps.Quat.ToEuler().MulScalar(math32.RadToDegFactor)
}

// SetAxisRotation sets rotation from local axis and angle in degrees.
func (ps *Pose) SetAxisRotation(x, y, z, angle float32) {
	ps.Quat.SetFromAxisAngle(math32.Vec3(x, y, z), math32.DegToRad(angle))
}

// LookAt points the element at given target location using given up direction.
func (ps *Pose) LookAt(target, upDir math32.Vector3) {
	ps.Quat.SetFromRotationMatrix(math32.NewLookAt(ps.Pos, target, upDir))
}

// IRot returns the rotation as Euler angles in integer multiples
// of the given snap angle in degrees. Of the triples that reproduce
// the rotation through [Pose.SetIRot], the one closest to it is
// returned, preferring the fewest snap steps among equals.
func (ps *Pose) IRot(snap float32) [3]int {
	if snap <= 0 {
		snap = DefaultSnapAngle
	}
	if ps.Quat.IsNil() {
		return [3]int{}
	}
	q := ps.Quat
	q.Normalize()
	best := [3]int{}
	bestDot := irotDot(best, snap, q)
	try := func(ir [3]int) {
		d := irotDot(ir, snap, q)
		if d > bestDot+1e-5 || (d > bestDot-1e-5 && irotSteps(ir) < irotSteps(best)) {
			best, bestDot = ir, d
		}
	}
	n := int(math32.Round(360 / snap))
	if n <= 8 {
		lo, hi := -(n-1)/2, n/2
		for x := lo; x <= hi; x++ {
			for y := lo; y <= hi; y++ {
				for z := lo; z <= hi; z++ {
					try([3]int{x, y, z})
				}
			}
		}
		return best
	}
	// fine snaps: search around the rounded Euler angles
	eu := ps.EulerRotation()
	ctr := [3]int{
		int(math32.Round(eu.X / snap)),
		int(math32.Round(eu.Y / snap)),
		int(math32.Round(eu.Z / snap)),
	}
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				try([3]int{ctr[0] + dx, ctr[1] + dy, ctr[2] + dz})
			}
		}
	}
	return best
}

// irotDot returns how closely the integer rotation matches q,
// as the absolute quaternion dot product.
func irotDot(irot [3]int, snap float32, q math32.Quat) float32 {
	var ps Pose
	ps.SetIRot(irot, snap)
	return math32.Abs(ps.Quat.Dot(q))
}

// irotSteps is the total number of snap steps in irot.
func irotSteps(irot [3]int) int {
	return abs(irot[0]) + abs(irot[1]) + abs(irot[2])
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

// SetIRot sets the rotation from Euler angles in integer multiples
// of the given snap angle in degrees.
func (ps *Pose) SetIRot(irot [3]int, snap float32) {
	if snap <= 0 {
		snap = DefaultSnapAngle
	}
	ps.SetEulerRotation(float32(irot[0])*snap, float32(irot[1])*snap, float32(irot[2])*snap)
}

//////// World values

// WorldPos returns the current world position.
func (ps *Pose) WorldPos() math32.Vector3 {
	pos := math32.Vector3{}
	pos.SetFromMatrixPos(&ps.WorldMatrix)
	return pos
}

// WorldQuat returns the current world quaternion.
func (ps *Pose) WorldQuat() math32.Quat {
	_, quat, _ := ps.WorldMatrix.Decompose()
	return quat
}

