// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"log/slog"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/jinzhu/copier"
)

// NodeBase implements the [Node] interface and provides the core functionality
// for the tree system. You must use NodeBase as an embedded struct
// in all higher-level tree types.
//
// All nodes must be properly initialized with [InitNode] (which the
// child-adding methods do automatically) so that [NodeBase.This] is set
// and [Node.Init] is called.
type NodeBase struct {

	// Name is the name of this node, which is unique relative to other
	// children of the same parent when it is non-empty. Use
	// [NodeBase.SetName] to change it so the parent lookup stays current.
	Name string `copier:"-"`

	// ID is the integer id of this node, assigned by the parent in
	// [NodeBase.AddChild]. It is unique within the parent and ids are
	// never reused by the same parent.
	ID int `copier:"-"`

	// This is the value of this Node as its true underlying type. This allows methods
	// defined on base types to call methods defined on higher-level types.
	// It is set to nil when the node is destroyed.
	This Node `copier:"-" json:"-" xml:"-" display:"-"`

	// Parent is the parent of this node, which is set automatically when this node is
	// added as a child of a parent. It never owns the parent; ownership only runs
	// from parent to [NodeBase.Children].
	Parent Node `copier:"-" json:"-" xml:"-" display:"-"`

	// Children is the ordered list of children of this node. Insertion order
	// is significant for index-based selection. Use the child helper methods
	// to modify it so that ids and names stay registered.
	Children []Node `copier:"-" json:"-"`

	// ids maps child ids to children.
	ids map[int]Node

	// names maps non-empty child names to children. On a name collision the
	// first registered child keeps the entry.
	names map[string]Node

	// nextID is the id that will be given to the next added child.
	nextID int
}

// String returns the path of the node.
func (n *NodeBase) String() string {
	if n == nil || n.This == nil {
		return "nil"
	}
	return n.Path()
}

// AsTree returns the [NodeBase] for this Node.
func (n *NodeBase) AsTree() *NodeBase {
	return n
}

// Init is a placeholder implementation of
// [Node.Init] that does nothing.
func (n *NodeBase) Init() {}

// OnAdd is a placeholder implementation of
// [Node.OnAdd] that does nothing.
func (n *NodeBase) OnAdd() {}

// OnRemove is a placeholder implementation of
// [Node.OnRemove] that does nothing.
func (n *NodeBase) OnRemove() {}

// SetName sets the name of this node, updating the name lookup
// of the parent.
func (n *NodeBase) SetName(name string) {
	if n.Name == name {
		return
	}
	if n.Parent != nil {
		pn := n.Parent.AsTree()
		pn.unregisterName(n.This)
		n.Name = name
		pn.registerName(n.This)
		return
	}
	n.Name = name
}

// Path returns the path to this node from the tree root,
// using names separated by / delimiters. Unnamed nodes use
// their id in brackets.
func (n *NodeBase) Path() string {
	el := n.Name
	if el == "" {
		el = "[" + strconv.Itoa(n.ID) + "]"
	}
	el = strings.ReplaceAll(el, "/", `\\`)
	if n.Parent != nil {
		return n.Parent.AsTree().Path() + "/" + el
	}
	return "/" + el
}

// Children:

// HasChildren returns whether this node has any children.
func (n *NodeBase) HasChildren() bool {
	return len(n.Children) > 0
}

// NumChildren returns the number of children this node has.
func (n *NodeBase) NumChildren() int {
	return len(n.Children)
}

// Child returns the child of this node at the given index and returns nil if
// the index is out of range.
func (n *NodeBase) Child(i int) Node {
	if i >= len(n.Children) || i < 0 {
		return nil
	}
	return n.Children[i]
}

// ChildByName returns the child registered under the given name,
// or nil if there is none.
func (n *NodeBase) ChildByName(name string) Node {
	if name == "" {
		return nil
	}
	return n.names[name]
}

// ChildByID returns the child with the given id, or nil if there is none.
func (n *NodeBase) ChildByID(id int) Node {
	return n.ids[id]
}

// AddChild adds the given child at the end of the children list,
// taking ownership of it. A child that already has a parent is
// first detached from it (see [MoveToParent]). The child gets the
// next id of this node, and its name, if non-empty, is registered
// for lookup; a duplicate name is logged and the first child keeps
// the name entry.
func (n *NodeBase) AddChild(kid Node) {
	InitNode(kid)
	kb := kid.AsTree()
	if kb.Parent != nil {
		kb.Parent.AsTree().detach(kid)
	}
	kb.ID = n.nextID
	n.nextID++
	if n.ids == nil {
		n.ids = map[int]Node{}
	}
	n.ids[kb.ID] = kid
	n.registerName(kid)
	n.Children = append(n.Children, kid)
	kb.Parent = n.This
	kid.OnAdd()
}

// RemoveChild removes the given child from this node, unregistering
// its id and name and clearing its parent link. It returns false if
// the node is not a child of this node. The child is not destroyed.
func (n *NodeBase) RemoveChild(kid Node) bool {
	if kid == nil || kid.AsTree().Parent != n.This {
		return false
	}
	if IndexOf(n.Children, kid) < 0 {
		return false
	}
	kid.OnRemove()
	return n.detach(kid)
}

// detach unlinks the given child without calling [Node.OnRemove].
func (n *NodeBase) detach(kid Node) bool {
	idx := IndexOf(n.Children, kid)
	if idx < 0 {
		return false
	}
	n.Children = slices.Delete(n.Children, idx, idx+1)
	kb := kid.AsTree()
	if n.ids[kb.ID] == kid {
		delete(n.ids, kb.ID)
	}
	n.unregisterName(kid)
	kb.Parent = nil
	return true
}

// registerName adds the child name to the lookup if it is free.
func (n *NodeBase) registerName(kid Node) {
	name := kid.AsTree().Name
	if name == "" {
		return
	}
	if n.names == nil {
		n.names = map[string]Node{}
	}
	if ex, has := n.names[name]; has && ex != kid {
		slog.Warn("tree.NodeBase.AddChild: duplicate child name, keeping first", "parent", n.Path(), "name", name)
		return
	}
	n.names[name] = kid
}

// unregisterName removes the child name from the lookup if the child owns it.
func (n *NodeBase) unregisterName(kid Node) {
	name := kid.AsTree().Name
	if name == "" {
		return
	}
	if n.names[name] == kid {
		delete(n.names, name)
		// another child may have been shadowed by the removed one
		for _, c := range n.Children {
			if c != kid && c.AsTree().Name == name {
				n.names[name] = c
				break
			}
		}
	}
}

// Destroy recursively removes all children of this node and then
// clears [NodeBase.This].
func (n *NodeBase) Destroy() {
	if n.This == nil {
		return
	}
	for len(n.Children) > 0 {
		kid := n.Children[len(n.Children)-1]
		n.RemoveChild(kid)
		kid.AsTree().Destroy()
	}
	n.This = nil
}

// Tree Walking:

// WalkUp calls the given function on the node and all of its parents.
// It stops walking if the function returns [Break] and keeps walking
// if it returns [Continue]. It returns whether walking was finished.
func (n *NodeBase) WalkUp(fun func(n Node) bool) bool {
	cur := n.This
	for {
		if !fun(cur) {
			return false
		}
		parent := cur.AsTree().Parent
		if parent == nil || parent == cur {
			return true
		}
		cur = parent
	}
}

// WalkDown calls the given function on the node and all of its children
// in a depth-first manner. It stops walking the current branch of the
// tree if the function returns [Break]. Children are captured before
// descending, so the function may remove the node it is called on.
func (n *NodeBase) WalkDown(fun func(n Node) bool) {
	if n.This == nil {
		return
	}
	if !fun(n.This) {
		return
	}
	kids := slices.Clone(n.Children)
	for _, kid := range kids {
		kid.AsTree().WalkDown(fun)
	}
}

// WalkDownPost iterates in a depth-first manner over the children, calling
// shouldContinue on each node to test if processing should proceed (if it returns
// [Break] then that branch of the tree is not further processed),
// and then calls the given function after all of a node's children
// have been iterated over, so deeper nodes are visited first.
func (n *NodeBase) WalkDownPost(shouldContinue func(n Node) bool, fun func(n Node) bool) {
	if n.This == nil {
		return
	}
	if !shouldContinue(n.This) {
		return
	}
	kids := slices.Clone(n.Children)
	for _, kid := range kids {
		kid.AsTree().WalkDownPost(shouldContinue, fun)
	}
	fun(n.This)
}

// Deep Copy:

// Clone creates and returns a deep copy of the tree from this node down.
// Fields are copied with [NodeBase.CopyFieldsFrom]; the copy has no parent.
func (n *NodeBase) Clone() Node {
	nc := reflect.New(reflect.TypeOf(n.This).Elem()).Interface().(Node)
	InitNode(nc)
	nc.AsTree().Name = n.Name
	nc.AsTree().CopyFieldsFrom(n.This)
	for _, kid := range n.Children {
		nc.AsTree().AddChild(kid.AsTree().Clone())
	}
	return nc
}

// CopyFieldsFrom copies the fields of the node from the given node,
// doing a deep copy of all exported fields that do not have a
// `copier:"-"` struct tag. The tree fields of this node, including
// its child id and name lookups, are kept as they were.
func (n *NodeBase) CopyFieldsFrom(from Node) {
	keep := *n
	err := copier.CopyWithOption(n.This, from.AsTree().This, copier.Option{CaseSensitive: true, DeepCopy: true})
	*n = keep
	if err != nil {
		slog.Error("tree.NodeBase.CopyFieldsFrom", "err", err)
	}
}
