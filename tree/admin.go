// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "slices"

// admin.go has infrastructure code outside of the Node interface.

// InitNode initializes the node by setting [NodeBase.This] and
// calling [Node.Init] the first time it is seen. It is safe to
// call it more than once.
func InitNode(n Node) {
	nb := n.AsTree()
	if nb.This != n {
		nb.This = n
		n.Init()
	}
}

// MoveToParent removes the given node from its current parent
// and adds it as a child of the given new parent, without calling
// [Node.OnRemove]. The node gets a new id from the new parent.
func MoveToParent(child Node, parent Node) {
	parent.AsTree().AddChild(child)
}

// Root returns the root node of the given node's tree.
func Root(n Node) Node {
	cur := n.AsTree().This
	for {
		p := cur.AsTree().Parent
		if p == nil {
			return cur
		}
		cur = p
	}
}

// IndexOf returns the index of the given node in the given slice,
// or -1 if it is not found.
func IndexOf(slice []Node, child Node) int {
	return slices.Index(slice, child)
}

// Depth returns the number of parents above the given node.
func Depth(n Node) int {
	d := 0
	for p := n.AsTree().Parent; p != nil; p = p.AsTree().Parent {
		d++
	}
	return d
}
