// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package puzzle

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Facelets is the grid of sticker colors on one side of the cube,
// indexed by row from the top and column from the left, as seen
// facing the side in the unfolded layout.
type Facelets [][]color.RGBA

// sideAxes returns the right and up directions of the side
// in the unfolded layout.
func sideAxes(sd Sides) (right, up math32.Vector3) {
	switch sd {
	case PosX:
		return math32.Vec3(0, 0, -1), math32.Vec3(0, 1, 0)
	case NegX:
		return math32.Vec3(0, 0, 1), math32.Vec3(0, 1, 0)
	case PosY:
		return math32.Vec3(1, 0, 0), math32.Vec3(0, 0, -1)
	case NegY:
		return math32.Vec3(1, 0, 0), math32.Vec3(0, 0, 1)
	case NegZ:
		return math32.Vec3(-1, 0, 0), math32.Vec3(0, 1, 0)
	}
	return math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0)
}

// Facelets returns the sticker colors of each side of the cube in its
// own coordinates, using the settled pose of turns in flight.
func (cb *Cube) Facelets() [SidesN]Facelets {
	var fs [SidesN]Facelets
	k := cb.Size
	c := float32(k-1) / 2
	for sd := range SidesN {
		grid := make(Facelets, k)
		for r := range grid {
			grid[r] = make([]color.RGBA, k)
		}
		fs[sd] = grid
	}
	for _, cu := range cb.Cubies() {
		pos, quat := cu.settled()
		for face := range SidesN {
			n := face.Normal().MulQuat(quat)
			sd, ok := sideOf(n)
			if !ok {
				continue
			}
			sn := sd.Normal()
			if pos.Dot(sn) < c*cb.Spacing-cb.Spacing/2 {
				continue
			}
			right, up := sideAxes(sd)
			col := int(math32.Round(pos.Dot(right)/cb.Spacing + c))
			row := int(math32.Round(c - pos.Dot(up)/cb.Spacing))
			if row < 0 || row >= k || col < 0 || col >= k {
				continue
			}
			fs[sd][row][col] = cu.Material.FaceColor(int(face))
		}
	}
	return fs
}

// sideOf returns the side whose normal matches the given unit vector.
func sideOf(n math32.Vector3) (Sides, bool) {
	for sd := range SidesN {
		if sd.Normal().Dot(n) > 0.9 {
			return sd, true
		}
	}
	return 0, false
}

// Uniform returns whether all of the stickers have the same color.
func (fl Facelets) Uniform() bool {
	if len(fl) == 0 || len(fl[0]) == 0 {
		return true
	}
	c := fl[0][0]
	for _, row := range fl {
		for _, fc := range row {
			if fc != c {
				return false
			}
		}
	}
	return true
}
