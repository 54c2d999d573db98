// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/core/math32"
)

// PartKinds are the kinds of geometry parts.
type PartKinds string

const (
	// BoxPart is an axis aligned box of the part Size.
	BoxPart PartKinds = "box"

	// SpherePart is a sphere with diameter Size.X.
	SpherePart PartKinds = "sphere"

	// CylinderPart is a Y aligned cylinder with diameter
	// Size.X and height Size.Y.
	CylinderPart PartKinds = "cylinder"

	// CustomPart has explicit vertices and triangle indices.
	CustomPart PartKinds = "custom"
)

// GeometryPart is one discrete part of a mesh geometry, in the
// local coordinates of the mesh.
type GeometryPart struct {

	// Kind of part.
	Kind PartKinds `json:"kind" yaml:"kind"`

	// Size is the full extent of primitive parts.
	Size math32.Vector3 `json:"size,omitempty" yaml:"size,omitempty"`

	// Offset is the center of primitive parts.
	Offset math32.Vector3 `json:"offset,omitempty" yaml:"offset,omitempty"`

	// Vertices of custom parts.
	Vertices []math32.Vector3 `json:"vertices,omitempty" yaml:"vertices,omitempty"`

	// Indices of custom parts, three per triangle.
	Indices []uint32 `json:"indices,omitempty" yaml:"indices,omitempty"`
}

// BBox returns the bounding box of the part.
func (gp *GeometryPart) BBox() math32.Box3 {
	switch gp.Kind {
	case CustomPart:
		bb := math32.B3Empty()
		bb.ExpandByPoints(gp.Vertices)
		return bb
	case SpherePart:
		r := gp.Size.X / 2
		return math32.Box3{Min: gp.Offset.SubScalar(r), Max: gp.Offset.AddScalar(r)}
	case CylinderPart:
		h := math32.Vec3(gp.Size.X/2, gp.Size.Y/2, gp.Size.X/2)
		return math32.Box3{Min: gp.Offset.Sub(h), Max: gp.Offset.Add(h)}
	}
	h := gp.Size.MulScalar(0.5)
	return math32.Box3{Min: gp.Offset.Sub(h), Max: gp.Offset.Add(h)}
}

// Radius returns the largest distance from the given center to
// the surface of the part.
func (gp *GeometryPart) Radius(center math32.Vector3) float32 {
	switch gp.Kind {
	case SpherePart:
		return gp.Offset.DistanceTo(center) + gp.Size.X/2
	case CylinderPart:
		dh := math32.Vec3(gp.Offset.X-center.X, 0, gp.Offset.Z-center.Z).Length() + gp.Size.X/2
		dy := math32.Abs(gp.Offset.Y-center.Y) + gp.Size.Y/2
		return math32.Sqrt(dh*dh + dy*dy)
	}
	var r float32
	for _, p := range gp.Points() {
		r = max(r, p.DistanceTo(center))
	}
	return r
}

// Points returns the vertices of a custom part, or the corners
// of the bounding box of a primitive one.
func (gp *GeometryPart) Points() []math32.Vector3 {
	if gp.Kind == CustomPart {
		return gp.Vertices
	}
	bb := gp.BBox()
	pts := make([]math32.Vector3, 0, 8)
	for _, x := range []float32{bb.Min.X, bb.Max.X} {
		for _, y := range []float32{bb.Min.Y, bb.Max.Y} {
			for _, z := range []float32{bb.Min.Z, bb.Max.Z} {
				pts = append(pts, math32.Vec3(x, y, z))
			}
		}
	}
	return pts
}

// Geometry is the authoritative shape of a mesh, as a list of parts.
// Rendering data is derived from it by the renderer.
type Geometry struct {
	Parts []GeometryPart `json:"parts,omitempty" yaml:"parts,omitempty"`
}

// HasParts returns whether there is any geometry.
func (gm *Geometry) HasParts() bool {
	return len(gm.Parts) > 0
}

// AddBox adds a box part of the given full size centered at offset.
func (gm *Geometry) AddBox(size, offset math32.Vector3) *Geometry {
	gm.Parts = append(gm.Parts, GeometryPart{Kind: BoxPart, Size: size, Offset: offset})
	return gm
}

// AddSphere adds a sphere part of the given radius centered at offset.
func (gm *Geometry) AddSphere(radius float32, offset math32.Vector3) *Geometry {
	d := 2 * radius
	gm.Parts = append(gm.Parts, GeometryPart{Kind: SpherePart, Size: math32.Vec3(d, d, d), Offset: offset})
	return gm
}

// AddCylinder adds a Y aligned cylinder part centered at offset.
func (gm *Geometry) AddCylinder(radius, height float32, offset math32.Vector3) *Geometry {
	d := 2 * radius
	gm.Parts = append(gm.Parts, GeometryPart{Kind: CylinderPart, Size: math32.Vec3(d, height, d), Offset: offset})
	return gm
}

// AddCustom adds a part with explicit vertices and triangle indices.
func (gm *Geometry) AddCustom(vertices []math32.Vector3, indices []uint32) *Geometry {
	gm.Parts = append(gm.Parts, GeometryPart{Kind: CustomPart, Vertices: vertices, Indices: indices})
	return gm
}

// BBox returns the bounding box of all parts.
func (gm *Geometry) BBox() math32.Box3 {
	bb := math32.B3Empty()
	for i := range gm.Parts {
		bb.ExpandByBox(gm.Parts[i].BBox())
	}
	return bb
}

// Centroid returns the center of the bounding box.
func (gm *Geometry) Centroid() math32.Vector3 {
	if !gm.HasParts() {
		return math32.Vector3{}
	}
	return gm.BBox().Center()
}

// Radius returns the radius of the sphere around the centroid
// that bounds all parts.
func (gm *Geometry) Radius() float32 {
	if !gm.HasParts() {
		return 0
	}
	c := gm.Centroid()
	var r float32
	for i := range gm.Parts {
		r = max(r, gm.Parts[i].Radius(c))
	}
	return r
}

// Points returns the points of all parts.
func (gm *Geometry) Points() []math32.Vector3 {
	var pts []math32.Vector3
	for i := range gm.Parts {
		pts = append(pts, gm.Parts[i].Points()...)
	}
	return pts
}

// Triangles returns the vertices and indices of all custom parts,
// with the indices offset to the combined vertex list.
func (gm *Geometry) Triangles() ([]math32.Vector3, []uint32) {
	var vtx []math32.Vector3
	var idx []uint32
	for i := range gm.Parts {
		gp := &gm.Parts[i]
		if gp.Kind != CustomPart {
			continue
		}
		off := uint32(len(vtx))
		vtx = append(vtx, gp.Vertices...)
		for _, ix := range gp.Indices {
			idx = append(idx, ix+off)
		}
	}
	return vtx, idx
}
