// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"log/slog"
	"sync"

	"cogentcore.org/core/math32"
	"cogentcore.org/cube/tree"
	"cogentcore.org/cube/xyz/physics"
)

// NodeData is the persisted form of a node.
type NodeData struct {

	// Name of the node.
	Name string `json:"name" yaml:"name"`

	// Type is the space separated capability names of the node.
	Type string `json:"type" yaml:"type"`

	// Position relative to the parent.
	Position []float32 `json:"position" yaml:"position,flow"`

	// Scale is omitted when it is uniformly 1.
	Scale []float32 `json:"scale,omitempty" yaml:"scale,omitempty,flow"`

	// IRot is the rotation in integer multiples of the snap angle,
	// omitted when zero.
	IRot []int `json:"irot,omitempty" yaml:"irot,omitempty,flow"`

	// Visible is omitted when true.
	Visible *bool `json:"visible,omitempty" yaml:"visible,omitempty"`

	// Geometry of meshes.
	Geometry *Geometry `json:"geometry,omitempty" yaml:"geometry,omitempty"`

	// Material of meshes.
	Material *MaterialData `json:"material,omitempty" yaml:"material,omitempty"`

	// Body of meshes with physics.
	Body *BodyData `json:"body,omitempty" yaml:"body,omitempty"`

	// CubeSize of puzzle cubes.
	CubeSize int `json:"cubeSize,omitempty" yaml:"cubeSize,omitempty"`

	// Children, omitted for instances.
	Children []*NodeData `json:"children,omitempty" yaml:"children,omitempty"`
}

// BodyData is the persisted form of a [Body].
type BodyData struct {
	Shape   string    `json:"shape" yaml:"shape"`
	Mass    float32   `json:"mass" yaml:"mass"`
	Enabled bool      `json:"enabled" yaml:"enabled"`
	Dims    []float32 `json:"dims,omitempty" yaml:"dims,omitempty,flow"`
}

func vecData(v math32.Vector3) []float32 {
	return []float32{v.X, v.Y, v.Z}
}

func vecFromData(d []float32) (math32.Vector3, bool) {
	if len(d) != 3 {
		return math32.Vector3{}, false
	}
	return math32.Vec3(d[0], d[1], d[2]), true
}

// Serialize returns the common persisted fields of the node and,
// if requested, of its children. Placing nodes and internal groups
// below the top level veto their inclusion; instances omit children.
func (nb *NodeBase) Serialize(depth int, children bool) (*NodeData, bool) {
	if nb.Placing {
		return nil, false
	}
	if depth > 0 && nb.Caps.Has(CapInternal) {
		return nil, false
	}
	caps := nb.Caps
	if ms := AsMesh(nb.This); ms != nil {
		caps.Set(ms.Body != nil, CapHasBody)
	}
	nd := &NodeData{Name: nb.Name, Type: caps.String(), Position: vecData(nb.Pose.Pos)}
	if nb.Pose.Scale != math32.Vec3(1, 1, 1) {
		nd.Scale = vecData(nb.Pose.Scale)
	}
	if ir := nb.IRot(); ir != [3]int{} {
		nd.IRot = ir[:]
	}
	if !nb.Visible {
		vis := false
		nd.Visible = &vis
	}
	if !children || nb.Caps.Has(CapInstance) {
		return nd, true
	}
	for _, kid := range nb.Children {
		kn, ok := kid.(Node)
		if !ok {
			continue
		}
		if cd, ok := kn.Serialize(depth+1, true); ok {
			nd.Children = append(nd.Children, cd)
		}
	}
	return nd, true
}

// ApplyData does nothing for plain nodes; the common fields
// are applied by [Parse].
func (nb *NodeBase) ApplyData(nd *NodeData) {}

// Serialize adds the geometry, material and body of the mesh.
func (ms *Mesh) Serialize(depth int, children bool) (*NodeData, bool) {
	nd, ok := ms.NodeBase.Serialize(depth, children)
	if !ok {
		return nil, false
	}
	if ms.Geometry.HasParts() {
		gm := ms.Geometry
		nd.Geometry = &gm
	}
	nd.Material = ms.Material.Data()
	if bd := ms.Body; bd != nil {
		nd.Body = &BodyData{Shape: bd.Kind.String(), Mass: bd.Mass, Enabled: bd.Enabled}
		if bd.Dims != (math32.Vector3{}) {
			nd.Body.Dims = vecData(bd.Dims)
		}
	}
	return nd, true
}

// ApplyData sets the geometry, material and body of the mesh.
// An unknown body shape is logged and the body is skipped.
func (ms *Mesh) ApplyData(nd *NodeData) {
	if nd.Geometry != nil {
		ms.Geometry = *nd.Geometry
	}
	ms.Material.SetData(nd.Material)
	if nd.Body == nil {
		return
	}
	var kind physics.ShapeKinds
	if err := kind.SetString(nd.Body.Shape); err != nil {
		slog.Warn("xyz.Mesh.ApplyData: unknown body shape, skipping body", "mesh", nd.Name, "shape", nd.Body.Shape)
		return
	}
	dims, _ := vecFromData(nd.Body.Dims)
	ms.NewBody(kind, nd.Body.Mass, dims).SetEnabled(nd.Body.Enabled)
}

// NodeFactory returns a new detached node for the given persisted data.
type NodeFactory func(nd *NodeData) Node

// ChildrenParser is implemented by nodes that make their own children,
// and apply persisted child data to them instead of having [Parse]
// add new children.
type ChildrenParser interface {
	ParseChildren(children []*NodeData, snap float32)
}

var (
	factoriesMu sync.Mutex
	factories   = map[Capabilities]NodeFactory{
		CapGroup:  func(nd *NodeData) Node { return NewGroup(nil, "") },
		CapMesh:   func(nd *NodeData) Node { return NewMesh(nil, "") },
		CapCamera: func(nd *NodeData) Node { return NewCamera(nil, "") },
		CapCursor: func(nd *NodeData) Node { return NewCursor(nil, "") },
	}
)

// RegisterFactory sets the factory for nodes whose
// [Capabilities.Primary] is the given capability.
func RegisterFactory(primary Capabilities, f NodeFactory) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	factories[primary] = f
}

func factoryFor(primary Capabilities) (NodeFactory, bool) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	f, ok := factories[primary]
	return f, ok
}

// Parse returns a new detached node tree from the given persisted data,
// using the default snap angle. See [ParseSnap].
func Parse(nd *NodeData) (Node, error) {
	return ParseSnap(nd, DefaultSnapAngle)
}

// ParseSnap returns a new detached node tree from the given persisted
// data, with integer rotations in multiples of the given snap angle.
// A malformed root is an error; malformed descendants are logged and
// skipped while the rest of the tree loads.
func ParseSnap(nd *NodeData, snap float32) (Node, error) {
	if nd == nil {
		return nil, fmt.Errorf("xyz.Parse: nil node data")
	}
	var caps Capabilities
	if err := caps.SetString(nd.Type); err != nil {
		return nil, fmt.Errorf("xyz.Parse: node %q: %w", nd.Name, err)
	}
	fac, ok := factoryFor(caps.Primary())
	if !ok {
		return nil, fmt.Errorf("xyz.Parse: node %q: no factory for type %q", nd.Name, nd.Type)
	}
	n := fac(nd)
	if n == nil {
		return nil, fmt.Errorf("xyz.Parse: node %q: factory for type %q failed", nd.Name, nd.Type)
	}
	ApplyCommonData(n, nd, snap)
	n.AsNode().Caps |= caps &^ CapHasBody
	n.ApplyData(nd)
	if cp, ok := n.(ChildrenParser); ok {
		cp.ParseChildren(nd.Children, snap)
		return n, nil
	}
	for _, cd := range nd.Children {
		c, err := ParseSnap(cd, snap)
		if err != nil {
			slog.Warn("xyz.Parse: skipping malformed node", "parent", nd.Name, "err", err)
			continue
		}
		n.AsTree().AddChild(c)
	}
	return n, nil
}

// ApplyCommonData sets the name, position, scale, rotation and
// visibility of the given node from persisted data.
func ApplyCommonData(n Node, nd *NodeData, snap float32) {
	nb := n.AsNode()
	nb.SetName(nd.Name)
	if p, ok := vecFromData(nd.Position); ok {
		nb.Pose.Pos = p
	} else if nd.Position != nil {
		slog.Warn("xyz.Parse: malformed position", "node", nd.Name)
	}
	nb.Pose.Scale = math32.Vec3(1, 1, 1)
	if s, ok := vecFromData(nd.Scale); ok {
		nb.Pose.Scale = s
	}
	var ir [3]int
	copy(ir[:], nd.IRot)
	nb.Pose.SetIRot(ir, snap)
	nb.Visible = nd.Visible == nil || *nd.Visible
	nb.UpdateLocalMatrix()
}

// test for impl
var _ tree.Node = &NodeBase{}
