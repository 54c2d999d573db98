// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides the ownership hierarchy used by the scene graph,
// centered on the [Node] interface and its [NodeBase] implementation.
// A parent exclusively owns its ordered children; the back reference
// from child to parent never owns.
package tree

// Node is an interface that all tree nodes satisfy. The core functionality
// of a tree node is defined on [NodeBase], and all higher-level tree types
// must embed it. This interface only contains the tree functionality that
// higher-level tree types may need to override.
type Node interface {

	// AsTree returns the [NodeBase] of this Node. Most core
	// tree functionality is implemented on [NodeBase].
	AsTree() *NodeBase

	// Init is called when the node is first initialized.
	// It is called before the node is added to the tree,
	// so it will not have any parents or siblings.
	// It will be called only once in the lifetime of the node.
	Init()

	// OnAdd is called when the node is added to a parent,
	// after the parent link and id have been set.
	OnAdd()

	// OnRemove is called when the node is removed from its parent
	// with [NodeBase.RemoveChild], before the parent link is cleared.
	// It is not called when a node is moved with [MoveToParent].
	OnRemove()
}

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)
