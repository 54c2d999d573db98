// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "cogentcore.org/cube/tree"
)

// testNode is a node type with an extra field for copy tests.
type testNode struct {
	NodeBase
	Mass    float32
	Tags    []string
	removed int
}

func (tn *testNode) OnRemove() { tn.removed++ }

func newRoot(name string) *testNode {
	n := &testNode{}
	InitNode(n)
	n.SetName(name)
	return n
}

func newChild(parent Node, name string) *testNode {
	n := &testNode{}
	n.Name = name
	parent.AsTree().AddChild(n)
	return n
}

func TestNodeAddChild(t *testing.T) {
	parent := newRoot("root")
	child := newChild(parent, "child1")
	assert.Equal(t, 1, parent.NumChildren())
	assert.Equal(t, Node(parent), child.Parent)
	assert.Equal(t, "/root/child1", child.Path())
	assert.Equal(t, Node(child), parent.ChildByName("child1"))
	assert.Equal(t, Node(child), parent.ChildByID(child.ID))
}

func TestNodeIDsIncrease(t *testing.T) {
	parent := newRoot("root")
	c0 := newChild(parent, "a")
	c1 := newChild(parent, "b")
	assert.True(t, parent.RemoveChild(c0))
	c2 := newChild(parent, "c")
	assert.Equal(t, 0, c0.ID)
	assert.Equal(t, 1, c1.ID)
	assert.Equal(t, 2, c2.ID)
	assert.Nil(t, parent.ChildByID(0))
}

func TestNodeDuplicateNameKeepsFirst(t *testing.T) {
	parent := newRoot("root")
	first := newChild(parent, "dup")
	second := newChild(parent, "dup")
	assert.Equal(t, 2, parent.NumChildren())
	assert.Equal(t, Node(first), parent.ChildByName("dup"))

	require.True(t, parent.RemoveChild(first))
	assert.Equal(t, Node(second), parent.ChildByName("dup"))
}

func TestNodeRemoveChild(t *testing.T) {
	parent := newRoot("root")
	child := newChild(parent, "child")
	other := newRoot("other")

	assert.False(t, other.RemoveChild(child))
	assert.True(t, parent.RemoveChild(child))
	assert.False(t, parent.RemoveChild(child))
	assert.Nil(t, child.Parent)
	assert.Equal(t, 0, parent.NumChildren())
	assert.Nil(t, parent.ChildByName("child"))
	assert.Equal(t, 1, child.removed)
}

func TestNodeParentInvariant(t *testing.T) {
	a := newRoot("a")
	b := newRoot("b")
	child := newChild(a, "child")
	MoveToParent(child, b)
	assert.Equal(t, 0, a.NumChildren())
	assert.Equal(t, 1, b.NumChildren())
	assert.Equal(t, Node(b), child.Parent)
	assert.Nil(t, a.ChildByName("child"))
	assert.Equal(t, 0, child.removed)
	for _, k := range b.Children {
		assert.Equal(t, Node(b), k.AsTree().Parent)
	}
}

func TestNodeSetName(t *testing.T) {
	parent := newRoot("root")
	child := newChild(parent, "old")
	child.SetName("new")
	assert.Nil(t, parent.ChildByName("old"))
	assert.Equal(t, Node(child), parent.ChildByName("new"))
}

func TestNodeWalkDown(t *testing.T) {
	root := newRoot("root")
	c0 := newChild(root, "c0")
	newChild(c0, "c00")
	newChild(root, "c1")

	var names []string
	root.WalkDown(func(n Node) bool {
		names = append(names, n.AsTree().Name)
		return Continue
	})
	assert.Equal(t, []string{"root", "c0", "c00", "c1"}, names)

	names = nil
	root.WalkDown(func(n Node) bool {
		names = append(names, n.AsTree().Name)
		return n.AsTree().Name != "c0"
	})
	assert.Equal(t, []string{"root", "c0", "c1"}, names)

	names = nil
	root.WalkDownPost(func(n Node) bool { return Continue }, func(n Node) bool {
		names = append(names, n.AsTree().Name)
		return Continue
	})
	assert.Equal(t, []string{"c00", "c0", "c1", "root"}, names)
}

func TestNodeWalkUp(t *testing.T) {
	root := newRoot("root")
	leaf := newChild(newChild(root, "mid"), "leaf")
	var names []string
	leaf.WalkUp(func(n Node) bool {
		names = append(names, n.AsTree().Name)
		return Continue
	})
	assert.Equal(t, []string{"leaf", "mid", "root"}, names)
	assert.Equal(t, Node(root), Root(leaf))
	assert.Equal(t, 2, Depth(leaf))
}

func TestNodeClone(t *testing.T) {
	root := newRoot("root")
	root.Mass = 2
	root.Tags = []string{"a"}
	kid := newChild(root, "kid")
	kid.Mass = 3

	cl := root.Clone().(*testNode)
	assert.Equal(t, "root", cl.Name)
	assert.Equal(t, float32(2), cl.Mass)
	require.Equal(t, 1, cl.NumChildren())
	ck := cl.Child(0).(*testNode)
	assert.Equal(t, float32(3), ck.Mass)
	assert.Equal(t, Node(cl), ck.Parent)

	cl.Tags[0] = "b"
	assert.Equal(t, "a", root.Tags[0])
}

func TestNodeCloneOwnsLookups(t *testing.T) {
	root := newRoot("root")
	kid := newChild(root, "kid")

	cl := root.Clone().(*testNode)
	require.Equal(t, 1, cl.NumChildren())
	ck := cl.Child(0)
	assert.NotSame(t, kid, ck)
	assert.Equal(t, ck, cl.ChildByName("kid"))
	assert.Equal(t, ck, cl.ChildByID(ck.AsTree().ID))
	assert.Equal(t, Node(kid), root.ChildByName("kid"))

	extra := newChild(cl, "extra")
	assert.Equal(t, 1, extra.ID)
	assert.Nil(t, root.ChildByName("extra"))
	assert.Equal(t, 1, root.NumChildren())
}

func TestNodeDestroy(t *testing.T) {
	root := newRoot("root")
	kid := newChild(root, "kid")
	root.Destroy()
	assert.Nil(t, root.This)
	assert.Nil(t, kid.This)
	assert.Equal(t, 0, root.NumChildren())
}
