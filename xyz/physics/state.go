// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"math"

	"cogentcore.org/core/math32"
)

// State contains the basic physical state of a rigid body:
// position, orientation and velocities, all in world coordinates.
type State struct {

	// position of center of mass of object
	Pos math32.Vector3

	// rotation specified as a Quat
	Quat math32.Quat

	// linear velocity
	LinVel math32.Vector3

	// angular velocity
	AngVel math32.Vector3
}

// Defaults sets defaults only if current values are nil
func (ps *State) Defaults() {
	if ps.Quat.IsNil() {
		ps.Quat.SetIdentity()
	}
}

// Transform returns the position and rotation of the state.
func (ps *State) Transform() Transform {
	return Transform{Pos: ps.Pos, Quat: ps.Quat}
}

// SetTransform sets the position and rotation of the state.
func (ps *State) SetTransform(xf Transform) {
	ps.Pos = xf.Pos
	ps.Quat = xf.Quat
	ps.Defaults()
}

// ClearVelocity zeros the linear and angular velocities.
func (ps *State) ClearVelocity() {
	ps.LinVel = math32.Vector3{}
	ps.AngVel = math32.Vector3{}
}

//////// 	State updates

// AngMotionMax is maximum angular motion that can be taken per update
const AngMotionMax = math.Pi / 4

// StepByAngVel steps the Quat rotation from angular velocity
func (ps *State) StepByAngVel(step float32) {
	ang := math32.Sqrt(ps.AngVel.Dot(ps.AngVel))
	if ang < 1.0e-6 {
		return
	}
	// limit the angular motion
	if ang*step > AngMotionMax {
		ang = AngMotionMax / step
	}
	var dq math32.Quat
	dq.SetFromAxisAngle(ps.AngVel.Normal(), ang*step)
	ps.Quat = dq.Mul(ps.Quat)
	ps.Quat.Normalize()
}

// StepByLinVel steps the Pos from the linear velocity
func (ps *State) StepByLinVel(step float32) {
	ps.Pos = ps.Pos.Add(ps.LinVel.MulScalar(step))
}

// Damp scales the velocities by the given per-second damping factors
// over the given time step.
func (ps *State) Damp(linDamp, angDamp, step float32) {
	ps.LinVel = ps.LinVel.MulScalar(math32.Pow(1-linDamp, step))
	ps.AngVel = ps.AngVel.MulScalar(math32.Pow(1-angDamp, step))
}

// Transform is a rigid transform: a position and a rotation.
type Transform struct {
	Pos  math32.Vector3
	Quat math32.Quat
}

// NewTransform returns a new transform with the given position and rotation.
// A nil quaternion is set to identity.
func NewTransform(pos math32.Vector3, quat math32.Quat) Transform {
	if quat.IsNil() {
		quat.SetIdentity()
	}
	return Transform{Pos: pos, Quat: quat}
}

// Matrix returns the transform as a unit scale matrix.
func (xf Transform) Matrix() math32.Matrix4 {
	var m math32.Matrix4
	m.SetTransform(xf.Pos, xf.Quat, math32.Vec3(1, 1, 1))
	return m
}
