// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/cube/tree"
)

// Camera is a node that defines a view onto the scene. In its own
// frame it looks down the negative Z axis with positive Y up.
type Camera struct {
	NodeBase

	// Target is the location the camera looks at; it moves with
	// orbiting and is reset by [Camera.LookAt].
	Target math32.Vector3

	// UpDir is the up direction for the camera, reset by [Camera.LookAt].
	UpDir math32.Vector3

	// FOV is the field of view in degrees.
	FOV float32
}

// NewCamera adds a new camera with the given name to the given parent,
// placed at 0,0,10 looking at the origin.
func NewCamera(parent Node, name string) *Camera {
	cm := &Camera{}
	tree.InitNode(cm)
	cm.Name = name
	if parent != nil {
		parent.AsTree().AddChild(cm)
	}
	cm.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
	return cm
}

func (cm *Camera) Init() {
	cm.NodeBase.Init()
	cm.Caps.Set(true, CapCamera)
	cm.FOV = 30
	cm.UpDir = math32.Vec3(0, 1, 0)
	cm.Pose.Pos.Set(0, 0, 10)
}

// AsCamera returns the camera.
func (cm *Camera) AsCamera() *Camera {
	return cm
}

// AsCamera returns the given node as a [Camera], or nil if it is not one.
func AsCamera(n tree.Node) *Camera {
	if t, ok := n.(interface{ AsCamera() *Camera }); ok {
		return t.AsCamera()
	}
	return nil
}

// LookAt points the camera at given target location, using given up direction,
// and sets the Target, UpDir fields for future camera movements.
func (cm *Camera) LookAt(target, upDir math32.Vector3) {
	cm.Target = target
	if upDir == (math32.Vector3{}) {
		upDir = math32.Vec3(0, 1, 0)
	}
	cm.UpDir = upDir
	cm.Pose.LookAt(target, upDir)
	cm.UpdateLocalMatrix()
}

// ViewVector is the vector between the camera position and target
func (cm *Camera) ViewVector() math32.Vector3 {
	return cm.Pose.Pos.Sub(cm.Target)
}

// Orbit moves the camera along the given 2D axes in degrees
// (delX = left/right, delY = up/down),
// relative to current position and orientation,
// keeping the same distance from the Target, and rotating the camera and
// the Up direction vector to keep looking at the target.
func (cm *Camera) Orbit(delX, delY float32) {
	ctdir := cm.ViewVector()
	if ctdir == (math32.Vector3{}) {
		ctdir.Set(0, 0, 1)
	}
	dir := ctdir.Normal()

	up := cm.UpDir
	right := cm.UpDir.Cross(dir).Normal()

	// delX rotates around the up vector
	dxq := math32.NewQuatAxisAngle(up, math32.DegToRad(delX))
	dx := ctdir.MulQuat(dxq).Sub(ctdir)
	// delY rotates around the right vector
	dyq := math32.NewQuatAxisAngle(right, math32.DegToRad(delY))
	dy := ctdir.MulQuat(dyq).Sub(ctdir)

	cm.Pose.Pos = cm.Pose.Pos.Add(dx).Add(dy)
	cm.UpDir = cm.UpDir.MulQuat(dyq)
	cm.LookAt(cm.Target, cm.UpDir)
}

// WorldUp returns the up direction of the camera in world coordinates.
func (cm *Camera) WorldUp() math32.Vector3 {
	return math32.Vec3(0, 1, 0).MulQuat(cm.Pose.WorldQuat()).Normal()
}

// WorldBack returns the backward direction of the camera, from the
// view toward the viewer, in world coordinates.
func (cm *Camera) WorldBack() math32.Vector3 {
	return math32.Vec3(0, 0, 1).MulQuat(cm.Pose.WorldQuat()).Normal()
}

// WorldRight returns the right direction of the camera in world coordinates.
func (cm *Camera) WorldRight() math32.Vector3 {
	return math32.Vec3(1, 0, 0).MulQuat(cm.Pose.WorldQuat()).Normal()
}

// PickRay returns the segment from the camera position along its
// view direction with the given length, for picking.
func (cm *Camera) PickRay(length float32) (from, to math32.Vector3) {
	from = cm.Pose.WorldPos()
	to = from.Sub(cm.WorldBack().MulScalar(length))
	return
}
