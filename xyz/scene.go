// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"slices"
	"time"

	"cogentcore.org/core/base/ordmap"
	"cogentcore.org/core/math32"
	"cogentcore.org/cube/tree"
	"cogentcore.org/cube/xyz/physics"
)

// DefaultFloorHeight is the height below which physics driven
// nodes are removed.
const DefaultFloorHeight = -50

// Controller is a node that processes queued input once per tick,
// before interpolation is advanced. Controllers in a scene are
// registered automatically when they are added to it.
type Controller interface {
	Node
	ProcessControls()
}

// Scene is the root of the scene graph. It owns the clock used
// for interpolation, the physics engine, and the camera, and
// advances everything one frame at a time with [Scene.Tick].
type Scene struct {
	Group

	// Camera is the camera used for face selection and picking.
	// It lives in [Scene.Gizmos].
	Camera *Camera `copier:"-"`

	// Gizmos is the scene owned group holding the camera and cursor,
	// which is never saved.
	Gizmos *Group `copier:"-"`

	// Physics is the physics engine, or nil for no physics.
	Physics physics.Engine `copier:"-"`

	// Clock returns the current time for interpolation.
	// It is time.Now when nil.
	Clock func() time.Time `copier:"-" json:"-"`

	// SnapAngle is the angle in degrees of integer rotations.
	SnapAngle float32

	// FloorHeight is the height below which physics driven
	// nodes are removed.
	FloorHeight float32

	// Library holds sub-assets by name, which are added to the
	// scene as instances with [Scene.AddFromLibrary].
	Library *ordmap.Map[string, *Group] `copier:"-" json:"-"`

	// controllers are processed each tick, in registration order.
	controllers []Controller
}

// NewScene returns a new scene with the given name, with a camera
// and an empty physics world.
func NewScene(name string) *Scene {
	sc := &Scene{}
	tree.InitNode(sc)
	sc.Name = name
	sc.Gizmos = NewGroup(sc, "gizmos")
	sc.Gizmos.Caps.Set(true, CapInternal)
	sc.Camera = NewCamera(sc.Gizmos, "camera")
	sc.Physics = physics.NewWorld()
	return sc
}

func (sc *Scene) Init() {
	sc.Group.Init()
	sc.Scene = sc
	sc.SnapAngle = DefaultSnapAngle
	sc.FloorHeight = DefaultFloorHeight
}

// Now returns the current time from the scene clock.
func (sc *Scene) Now() time.Time {
	if sc.Clock != nil {
		return sc.Clock()
	}
	return time.Now()
}

// AddController registers the given controller, if it is not already.
func (sc *Scene) AddController(c Controller) {
	if slices.Contains(sc.controllers, c) {
		return
	}
	sc.controllers = append(sc.controllers, c)
}

// RemoveController unregisters the given controller.
func (sc *Scene) RemoveController(c Controller) {
	if i := slices.Index(sc.controllers, c); i >= 0 {
		sc.controllers = slices.Delete(sc.controllers, i, i+1)
	}
}

// Controllers returns the registered controllers.
func (sc *Scene) Controllers() []Controller {
	return sc.controllers
}

// setScene sets the scene of the given node and its descendants,
// registering controllers and building pending physics bodies.
func setScene(n tree.Node, sc *Scene) {
	n.AsTree().WalkDown(func(k tree.Node) bool {
		kn := AsNode(k)
		if kn == nil {
			return tree.Break
		}
		if _, isScene := k.(*Scene); isScene {
			return tree.Continue
		}
		kn.Scene = sc
		if sc == nil {
			return tree.Continue
		}
		if c, ok := k.(Controller); ok {
			sc.AddController(c)
		}
		if ms := AsMesh(k); ms != nil && ms.Body != nil {
			ms.Body.mesh = ms
			ms.Body.build()
		}
		return tree.Continue
	})
}

// Tick advances the scene by one frame of dt seconds, in order:
// control processing and interpolation, the physics step, physics
// synchronization and removal of dead nodes, and world matrices.
func (sc *Scene) Tick(dt float32) {
	for _, c := range slices.Clone(sc.controllers) {
		c.ProcessControls()
	}
	sc.UpdateInterpolations(sc.Now())
	sc.UpdateWorldMatrix(false)

	if sc.Physics != nil {
		sc.Physics.Step(dt)
	}

	sc.SyncPhysics()
	sc.ClearAllDeads()

	sc.UpdateWorldMatrix(false)
}

// SyncPhysics transfers poses between all bodies and their meshes.
func (sc *Scene) SyncPhysics() {
	sc.WalkDown(func(n tree.Node) bool {
		if ms := AsMesh(n); ms != nil && ms.Body != nil {
			ms.Body.sync(sc.FloorHeight)
		}
		return tree.Continue
	})
}

// ClearAllDeads calls [NodeBase.ClearDeads] on every node in the scene,
// deepest first, returning the total number of nodes removed.
func (sc *Scene) ClearAllDeads() int {
	n := 0
	sc.WalkDownPost(func(k tree.Node) bool {
		return AsNode(k) != nil
	}, func(k tree.Node) bool {
		if kn := AsNode(k); kn != nil && kn.HasChildren() {
			n += kn.ClearDeads(false)
		}
		return tree.Continue
	})
	return n
}

// Pick returns the node whose body is hit first by the segment
// between the given points, or nil.
func (sc *Scene) Pick(from, to math32.Vector3) Node {
	if sc.Physics == nil {
		return nil
	}
	hit, ok := sc.Physics.RayTest(from, to)
	if !ok {
		return nil
	}
	n, _ := hit.User.(Node)
	return n
}
