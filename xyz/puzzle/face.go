// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package puzzle

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/cube/xyz"
)

// Sides are the six faces of the cube in its own coordinates,
// in the order of [xyz.Material.Faces].
type Sides int32

const (
	PosX Sides = iota
	NegX
	PosY
	NegY
	PosZ
	NegZ
	SidesN
)

var sideNames = [SidesN]string{"+X", "-X", "+Y", "-Y", "+Z", "-Z"}

func (sd Sides) String() string {
	if sd < 0 || sd >= SidesN {
		return "?"
	}
	return sideNames[sd]
}

// Normal returns the outward unit normal of the side.
func (sd Sides) Normal() math32.Vector3 {
	switch sd {
	case PosX:
		return math32.Vec3(1, 0, 0)
	case NegX:
		return math32.Vec3(-1, 0, 0)
	case PosY:
		return math32.Vec3(0, 1, 0)
	case NegY:
		return math32.Vec3(0, -1, 0)
	case PosZ:
		return math32.Vec3(0, 0, 1)
	}
	return math32.Vec3(0, 0, -1)
}

// Opposite returns the side facing the other way.
func (sd Sides) Opposite() Sides {
	return sd ^ 1
}

// Faces are the faces of the cube as currently seen from the camera.
type Faces int32

const (
	Right Faces = iota
	Left
	Up
	Down
	Front
	Back
	FacesN
)

var faceNames = [FacesN]string{"Right", "Left", "Up", "Down", "Front", "Back"}

func (fc Faces) String() string {
	if fc < 0 || fc >= FacesN {
		return "?"
	}
	return faceNames[fc]
}

// FaceMap gives the side of the cube that is currently seen as each face.
type FaceMap [FacesN]Sides

// IdentityFaceMap is the face map of an unrotated cube seen from +Z with +Y up.
var IdentityFaceMap = FaceMap{PosX, NegX, PosY, NegY, PosZ, NegZ}

// SelectFaces returns which side of the cube is seen as each face from
// the given camera. The six side normals are rotated into world space by
// the cube rotation. Up and Down have the largest and smallest dot product
// with the camera up vector; of the other four, Front and Back are the
// largest and smallest against the camera backward vector, and Right and
// Left the largest and smallest of the remaining two against the camera
// right vector. A nil camera gives [IdentityFaceMap].
func (cb *Cube) SelectFaces(cam *xyz.Camera) FaceMap {
	if cam == nil {
		return IdentityFaceMap
	}
	wq := cb.Pose.WorldQuat()
	var normals [SidesN]math32.Vector3
	for sd := range SidesN {
		normals[sd] = sd.Normal().MulQuat(wq)
	}
	var fm FaceMap
	used := [SidesN]bool{}
	pick := func(dir math32.Vector3) (hi, lo Sides) {
		hi, lo = -1, -1
		var hv, lv float32
		for sd := range SidesN {
			if used[sd] {
				continue
			}
			if d := normals[sd].Dot(dir); hi < 0 || d > hv {
				hi, hv = sd, d
			}
		}
		used[hi] = true
		for sd := range SidesN {
			if used[sd] {
				continue
			}
			if d := normals[sd].Dot(dir); lo < 0 || d < lv {
				lo, lv = sd, d
			}
		}
		used[lo] = true
		return
	}
	fm[Up], fm[Down] = pick(cam.WorldUp())
	fm[Front], fm[Back] = pick(cam.WorldBack())
	fm[Right], fm[Left] = pick(cam.WorldRight())
	return fm
}

// camera returns the camera used for face selection.
func (cb *Cube) camera() *xyz.Camera {
	if cb.Camera != nil {
		return cb.Camera
	}
	if cb.Scene != nil {
		return cb.Scene.Camera
	}
	return nil
}
