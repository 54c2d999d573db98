// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"cogentcore.org/core/math32"
)

// Default rigid body properties used by [World.AddBody].
const (
	DefaultLinDamping  = 0.05
	DefaultAngDamping  = 0.1
	DefaultFriction    = 0.5
	DefaultRestitution = 0.1
)

// RigidBody is a body simulated by a [World]. It is created with
// [World.AddBody] and is owned by the world until removed.
type RigidBody struct {

	// ID is the unique id of the body within its world.
	ID int

	// Shape is the collision shape.
	Shape *Shape

	// Mass of the body; zero mass makes the body static.
	Mass float32

	// Inertia is the diagonal of the local inertia tensor,
	// only computed for positive mass.
	Inertia math32.Vector3

	// State is the current world state of the body.
	State State

	// LinDamping is the fraction of linear velocity lost per second.
	LinDamping float32

	// AngDamping is the fraction of angular velocity lost per second.
	AngDamping float32

	// Friction is the fraction of tangential velocity lost on contact.
	Friction float32

	// Restitution is the fraction of normal velocity kept on bounce.
	Restitution float32

	// Suspended bodies are not simulated; their transform is
	// set externally, as for kinematic placement.
	Suspended bool

	// User is arbitrary data attached by the owner of the body,
	// returned in ray test results.
	User any

	// world is the world the body is registered in.
	world *World
}

// IsStatic returns whether the body has no mass.
func (rb *RigidBody) IsStatic() bool {
	return rb.Mass <= 0
}

// IsDynamic returns whether the body is moved by the simulation.
func (rb *RigidBody) IsDynamic() bool {
	return !rb.IsStatic() && !rb.Suspended
}

// Transform returns the current world transform of the body.
func (rb *RigidBody) Transform() Transform {
	if rb.world != nil {
		rb.world.mu.Lock()
		defer rb.world.mu.Unlock()
	}
	return rb.State.Transform()
}

// SetTransform sets the world transform of the body,
// clearing its velocities.
func (rb *RigidBody) SetTransform(xf Transform) {
	if rb.world != nil {
		rb.world.mu.Lock()
		defer rb.world.mu.Unlock()
	}
	rb.State.SetTransform(xf)
	rb.State.ClearVelocity()
}

// SetSuspended sets whether the simulation of the body is suspended.
// Velocities are cleared when suspending.
func (rb *RigidBody) SetSuspended(suspended bool) {
	if rb.world != nil {
		rb.world.mu.Lock()
		defer rb.world.mu.Unlock()
	}
	rb.Suspended = suspended
	if suspended {
		rb.State.ClearVelocity()
	}
}

// WorldBBox returns the bounding box of the body in world coordinates.
func (rb *RigidBody) WorldBBox() math32.Box3 {
	return rb.Shape.BBox().MulQuat(rb.State.Quat).Translate(rb.State.Pos)
}

// ApplyImpulse adds the given impulse to the linear velocity.
func (rb *RigidBody) ApplyImpulse(impulse math32.Vector3) {
	if rb.IsStatic() {
		return
	}
	rb.State.LinVel = rb.State.LinVel.Add(impulse.MulScalar(1 / rb.Mass))
}
