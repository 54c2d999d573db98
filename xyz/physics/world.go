// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"log/slog"
	"sync"

	"cogentcore.org/core/base/ordmap"
	"cogentcore.org/core/math32"
)

// Engine is the interface to a physics engine used by the scene graph.
// [World] is the reference implementation.
type Engine interface {

	// AddBody creates a new rigid body with the given shape, mass and
	// transform, registers it, and attaches the given user data to it.
	AddBody(shape *Shape, mass float32, xf Transform, user any) *RigidBody

	// RemoveBody unregisters the given body, returning false
	// if it was not registered.
	RemoveBody(rb *RigidBody) bool

	// Step advances the simulation by the given time in seconds.
	Step(dt float32)

	// RayTest returns the closest body hit by the segment between
	// the given points.
	RayTest(from, to math32.Vector3) (RayHit, bool)
}

// MaxSubStep is the largest time step, in seconds, that [World.Step]
// integrates at once; longer steps are subdivided.
const MaxSubStep = float32(1) / 60

// World is a simple rigid body world with gravity, damping, an optional
// ground plane, and axis aligned contact resolution of dynamic bodies
// against static and suspended ones. It is safe to use from multiple
// goroutines.
type World struct {

	// Gravity is the acceleration applied to dynamic bodies.
	Gravity math32.Vector3

	// HasGround adds an infinite static plane at GroundHeight.
	HasGround bool

	// GroundHeight is the Y coordinate of the ground plane.
	GroundHeight float32

	// mu guards the body registry and all body state.
	mu sync.Mutex

	// bodies is the registry of bodies by id, in creation order.
	bodies *ordmap.Map[int, *RigidBody]

	// nextID is the id of the next body.
	nextID int
}

// NewWorld returns a new world with standard gravity and no ground.
func NewWorld() *World {
	return &World{Gravity: math32.Vec3(0, -9.8, 0), bodies: ordmap.New[int, *RigidBody]()}
}

// AddBody adds a new rigid body to the world. A nil shape is logged and
// yields nil. Local inertia is only computed for positive mass.
func (wr *World) AddBody(shape *Shape, mass float32, xf Transform, user any) *RigidBody {
	if shape == nil {
		slog.Warn("physics.World.AddBody: nil shape")
		return nil
	}
	rb := &RigidBody{Shape: shape, Mass: mass, User: user,
		LinDamping: DefaultLinDamping, AngDamping: DefaultAngDamping,
		Friction: DefaultFriction, Restitution: DefaultRestitution}
	if mass > 0 {
		rb.Inertia = shape.Inertia(mass)
	}
	rb.State.SetTransform(xf)

	wr.mu.Lock()
	defer wr.mu.Unlock()
	if wr.bodies == nil {
		wr.bodies = ordmap.New[int, *RigidBody]()
	}
	rb.ID = wr.nextID
	wr.nextID++
	rb.world = wr
	wr.bodies.Add(rb.ID, rb)
	return rb
}

// RemoveBody removes the given body from the world.
func (wr *World) RemoveBody(rb *RigidBody) bool {
	if rb == nil {
		return false
	}
	wr.mu.Lock()
	defer wr.mu.Unlock()
	if wr.bodies == nil || rb.world != wr {
		return false
	}
	if !wr.bodies.DeleteKey(rb.ID) {
		return false
	}
	rb.world = nil
	return true
}

// NumBodies returns the number of registered bodies.
func (wr *World) NumBodies() int {
	wr.mu.Lock()
	defer wr.mu.Unlock()
	if wr.bodies == nil {
		return 0
	}
	return wr.bodies.Len()
}

// Step advances the simulation by dt seconds, in sub steps
// of at most [MaxSubStep].
func (wr *World) Step(dt float32) {
	if dt <= 0 {
		return
	}
	wr.mu.Lock()
	defer wr.mu.Unlock()
	if wr.bodies == nil {
		return
	}
	for dt > 0 {
		step := min(dt, MaxSubStep)
		wr.subStep(step)
		dt -= step
	}
}

// subStep integrates all dynamic bodies over one step and
// resolves their contacts. Must be called with the lock held.
func (wr *World) subStep(step float32) {
	var dyns, stats []*RigidBody
	for _, kv := range wr.bodies.Order {
		rb := kv.Value
		if rb.IsDynamic() {
			dyns = append(dyns, rb)
		} else {
			stats = append(stats, rb)
		}
	}
	for _, rb := range dyns {
		st := &rb.State
		st.LinVel = st.LinVel.Add(wr.Gravity.MulScalar(step))
		st.Damp(rb.LinDamping, rb.AngDamping, step)
		st.StepByLinVel(step)
		st.StepByAngVel(step)
	}
	for _, rb := range dyns {
		if wr.HasGround {
			wr.resolveGround(rb)
		}
		for _, sb := range stats {
			resolveStatic(rb, sb)
		}
	}
}
