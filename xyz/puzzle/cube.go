// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package puzzle provides a twisty puzzle cube for the xyz scene graph,
// with camera relative face selection, animated layer and whole cube
// turns, and a queue of pending moves.
package puzzle

import (
	"fmt"
	"image/color"
	"time"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/cube/tree"
	"cogentcore.org/cube/xyz"
)

const (
	// DefaultSize is the number of cubies along each edge.
	DefaultSize = 3

	// DefaultSpacing is the distance between cubie centers.
	DefaultSpacing = 1

	// DefaultLayerInterval is the duration of a layer turn.
	DefaultLayerInterval = 250 * time.Millisecond

	// DefaultCubeInterval is the duration of a whole cube turn.
	DefaultCubeInterval = 350 * time.Millisecond
)

// SideColors are the sticker colors of the sides of a solved cube.
var SideColors = [SidesN]color.RGBA{colors.Red, colors.Orange, colors.White, colors.Yellow, colors.Green, colors.Blue}

// CubieColor is the color of the body of a cubie and its inner faces.
var CubieColor = color.RGBA{20, 20, 20, 255}

// Cube is a twisty puzzle made of Size³ cubies on a centered grid.
// Layer turns move cubies; whole cube turns rotate the cube itself.
// Moves requested while a turn is animating are queued and applied
// in order once it completes.
type Cube struct {
	xyz.Mesh

	// Size is the number of cubies along each edge.
	Size int

	// Spacing is the distance between cubie centers.
	Spacing float32

	// Camera is the camera for face selection. The scene camera
	// is used when nil.
	Camera *xyz.Camera `copier:"-"`

	// LayerInterval is the duration of a layer turn.
	LayerInterval time.Duration

	// CubeInterval is the duration of a whole cube turn.
	CubeInterval time.Duration

	// Ease is the easing name for turns.
	Ease string

	// pending are the moves waiting for the current turn to complete.
	pending []queued

	// history are the applied moves, as local moves.
	history []Move
}

// queued is a pending move.
type queued struct {
	Move

	// undo moves pop the history when applied instead of adding to it.
	undo bool
}

// Cubie is one piece of a [Cube].
type Cubie struct {
	xyz.Mesh

	// Coord is the home grid coordinate, from 0 to Size-1 on each axis.
	Coord [3]int

	// Home is the home position.
	Home math32.Vector3

	// HomeQuat is the home rotation.
	HomeQuat math32.Quat
}

// NewCube adds a new cube of the given size and cubie spacing to the
// given parent, which may be nil for a detached cube.
func NewCube(parent xyz.Node, name string, size int, spacing float32) *Cube {
	cb := &Cube{}
	tree.InitNode(cb)
	cb.Name = name
	if size < 1 {
		size = DefaultSize
	}
	if spacing <= 0 {
		spacing = DefaultSpacing
	}
	cb.Size = size
	cb.Spacing = spacing
	cb.build()
	if parent != nil {
		parent.AsTree().AddChild(cb)
	}
	return cb
}

func (cb *Cube) Init() {
	cb.Mesh.Init()
	cb.Caps.Set(true, xyz.CapPuzzleCube, xyz.CapGroup)
	cb.Size = DefaultSize
	cb.Spacing = DefaultSpacing
	cb.LayerInterval = DefaultLayerInterval
	cb.CubeInterval = DefaultCubeInterval
	cb.SetInterp(cb.CubeInterval, "")
}

// AsCube returns the cube.
func (cb *Cube) AsCube() *Cube {
	return cb
}

// AsCube returns the given node as a [Cube], or nil if it is not one.
func AsCube(n tree.Node) *Cube {
	if t, ok := n.(interface{ AsCube() *Cube }); ok {
		return t.AsCube()
	}
	return nil
}

// AsCubie returns the cubie.
func (cu *Cubie) AsCubie() *Cubie {
	return cu
}

// AsCubie returns the given node as a [Cubie], or nil if it is not one.
func AsCubie(n tree.Node) *Cubie {
	if t, ok := n.(interface{ AsCubie() *Cubie }); ok {
		return t.AsCubie()
	}
	return nil
}

// gridPos returns the position of grid coordinate i.
func (cb *Cube) gridPos(i int) float32 {
	return (float32(i) - float32(cb.Size-1)/2) * cb.Spacing
}

// build makes the cubies.
func (cb *Cube) build() {
	k := cb.Size
	sz := cb.Spacing * 0.95
	for x := range k {
		for y := range k {
			for z := range k {
				cu := &Cubie{Coord: [3]int{x, y, z}}
				tree.InitNode(cu)
				cu.Name = fmt.Sprintf("cubie-%d-%d-%d", x, y, z)
				cu.Home = math32.Vec3(cb.gridPos(x), cb.gridPos(y), cb.gridPos(z))
				cu.HomeQuat = xyz.IdentityQuat()
				cu.Pose.Pos = cu.Home
				cu.Pose.Quat = cu.HomeQuat
				cu.Geometry.AddBox(math32.Vec3(sz, sz, sz), math32.Vector3{})
				cu.Material.Color = CubieColor
				cu.Material.Faces = cb.cubieFaces(x, y, z)
				cu.SetInterp(cb.LayerInterval, cb.Ease)
				cb.AddChild(cu)
			}
		}
	}
}

// cubieFaces returns the sticker colors of the cubie at the given
// grid coordinate: exterior faces get their side color.
func (cb *Cube) cubieFaces(x, y, z int) []color.RGBA {
	last := cb.Size - 1
	fc := make([]color.RGBA, SidesN)
	for sd := range SidesN {
		fc[sd] = CubieColor
	}
	if x == last {
		fc[PosX] = SideColors[PosX]
	}
	if x == 0 {
		fc[NegX] = SideColors[NegX]
	}
	if y == last {
		fc[PosY] = SideColors[PosY]
	}
	if y == 0 {
		fc[NegY] = SideColors[NegY]
	}
	if z == last {
		fc[PosZ] = SideColors[PosZ]
	}
	if z == 0 {
		fc[NegZ] = SideColors[NegZ]
	}
	return fc
}

// Cubies returns the cubies in child order.
func (cb *Cube) Cubies() []*Cubie {
	cus := make([]*Cubie, 0, len(cb.Children))
	for _, kid := range cb.Children {
		if cu := AsCubie(kid); cu != nil {
			cus = append(cus, cu)
		}
	}
	return cus
}

// SetTiming sets the turn durations and easing of the cube and its cubies.
func (cb *Cube) SetTiming(layer, cube time.Duration, ease string) {
	cb.LayerInterval = layer
	cb.CubeInterval = cube
	cb.Ease = ease
	cb.SetInterp(cube, ease)
	for _, cu := range cb.Cubies() {
		cu.SetInterp(layer, ease)
	}
}

// IsSolved returns whether every cubie is at its home position and
// rotation, ignoring turns in flight.
func (cb *Cube) IsSolved() bool {
	tol := cb.Spacing * 1e-3
	for _, cu := range cb.Cubies() {
		pos, quat := cu.settled()
		if pos.Sub(cu.Home).Length() > tol || !xyz.QuatNear(quat, cu.HomeQuat, 1e-4) {
			return false
		}
	}
	return true
}

// settled returns the position and rotation the cubie will have once
// its turn in flight completes.
func (cu *Cubie) settled() (math32.Vector3, math32.Quat) {
	pos, quat := cu.Pose.Pos, cu.Pose.Quat
	act := cu.Interp.Active()
	if act&(xyz.InterpPos|xyz.InterpArc) != 0 {
		pos = cu.Interp.Pos2
	}
	if act&xyz.InterpQuat != 0 {
		quat = cu.Interp.Quat2
	}
	return pos, quat
}

// Reset completes any turn in flight, clears pending moves and history,
// and returns every cubie and the cube to their home poses.
func (cb *Cube) Reset() {
	cb.CompleteInterpolation(true, true)
	cb.pending = nil
	cb.history = nil
	for _, cu := range cb.Cubies() {
		cu.Pose.Pos = cu.Home
		cu.Pose.Quat = cu.HomeQuat
	}
	cb.Pose.Quat = xyz.IdentityQuat()
	cb.UpdateLocalMatrix()
}

// test for impl
var _ xyz.Controller = &Cube{}
