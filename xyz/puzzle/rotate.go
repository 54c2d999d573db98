// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package puzzle

import (
	"log/slog"

	"cogentcore.org/core/math32"
	"cogentcore.org/cube/xyz"
)

// RotateCube turns the whole cube by the given angle in degrees about
// the normal of the given face as currently seen from the camera.
// Angles are rounded to quarter or half turns. If a turn is in flight
// the move is queued and false is returned.
func (cb *Cube) RotateCube(face Faces, angle float32) bool {
	return cb.dispatch(queued{Move: moveFor(face, angle, true)})
}

// RotateLayer turns the outer layer of the given face, as currently
// seen from the camera, by the given angle in degrees about its normal.
// Angles are rounded to quarter or half turns. If a turn is in flight
// the move is queued and false is returned.
func (cb *Cube) RotateLayer(face Faces, angle float32) bool {
	return cb.dispatch(queued{Move: moveFor(face, angle, false)})
}

// turnCube starts a whole cube turn about the given side.
func (cb *Cube) turnCube(side Sides, angle float32) bool {
	cb.Pose.Defaults()
	axis := side.Normal().MulQuat(cb.Pose.Quat).Normal()
	rot := math32.NewQuatAxisAngle(axis, math32.DegToRad(angle))
	cb.RotateTo(snapQuat(rot.Mul(cb.Pose.Quat)), cb.CubeInterval)
	return true
}

// layer returns the cubies in the outer layer of the given side:
// those whose position along the side normal exceeds the threshold
// half a spacing inside the outer layer center.
func (cb *Cube) layer(side Sides) []*Cubie {
	n := side.Normal()
	thr := (float32(cb.Size-1)/2 - 0.5) * cb.Spacing
	var lay []*Cubie
	for _, cu := range cb.Cubies() {
		if cu.Pose.Pos.Dot(n) > thr {
			lay = append(lay, cu)
		}
	}
	return lay
}

// turnLayer starts a turn of the outer layer of the given side. It is
// rejected and logged unless the layer has exactly Size² cubies.
func (cb *Cube) turnLayer(side Sides, angle float32) bool {
	lay := cb.layer(side)
	if want := cb.Size * cb.Size; len(lay) != want {
		slog.Warn("puzzle.Cube.RotateLayer: wrong layer size, move skipped", "cube", cb.Path(), "side", side.String(), "got", len(lay), "want", want)
		return false
	}
	rot := math32.NewQuatAxisAngle(side.Normal(), math32.DegToRad(angle))
	half := cb.Spacing / 2
	for _, cu := range lay {
		cu.Pose.Defaults()
		pos := xyz.SnapToGrid(cu.Pose.Pos.MulQuat(rot), half)
		cu.ArcTo(rot, pos, snapQuat(rot.Mul(cu.Pose.Quat)), cb.LayerInterval)
	}
	return true
}

// snapQuat returns the axis aligned rotation nearest to q, so that
// rounding error does not build up over many turns.
func snapQuat(q math32.Quat) math32.Quat {
	var m math32.Matrix4
	m.SetTransform(math32.Vector3{}, q, math32.Vec3(1, 1, 1))
	for _, i := range [...]int{0, 1, 2, 4, 5, 6, 8, 9, 10} {
		m[i] = math32.Round(m[i])
	}
	var sq math32.Quat
	sq.SetFromRotationMatrix(&m)
	sq.Normalize()
	return sq
}
