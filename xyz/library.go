// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"

	"cogentcore.org/core/base/ordmap"
	"cogentcore.org/cube/tree"
)

// AddToLibrary adds the given group to the library of sub-assets,
// using its name as the unique key, and marks it as an instance.
// An existing asset with the same name is replaced.
func (sc *Scene) AddToLibrary(gp *Group) {
	if sc.Library == nil {
		sc.Library = ordmap.New[string, *Group]()
	}
	gp.SetInstance(true)
	sc.Library.Add(gp.Name, gp)
}

// NewInLibrary makes a new group in the library with the given name.
func (sc *Scene) NewInLibrary(name string) *Group {
	gp := NewGroup(nil, name)
	sc.AddToLibrary(gp)
	return gp
}

// AddFromLibrary adds a clone of the named library asset under the given
// parent, returning an error if there is no such asset. The clone is an
// instance: its parts keep their own world positions and are not saved.
func (sc *Scene) AddFromLibrary(name string, parent Node) (*Group, error) {
	if sc.Library == nil {
		return nil, fmt.Errorf("xyz.Scene.AddFromLibrary: library item %q not found", name)
	}
	gp, ok := sc.Library.ValueByKeyTry(name)
	if !ok {
		return nil, fmt.Errorf("xyz.Scene.AddFromLibrary: library item %q not found", name)
	}
	ng := gp.Clone().(*Group)
	parent.AsTree().AddChild(ng)
	ng.WalkDown(func(n tree.Node) bool {
		if kn := AsNode(n); kn != nil {
			kn.UpdateLocalMatrix()
		}
		return tree.Continue
	})
	return ng, nil
}
