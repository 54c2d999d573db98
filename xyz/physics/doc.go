// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package physics provides the physics engine interface used by the
// scene graph, and a small reference [World] with rigid bodies,
// collision shapes, gravity, ground contact and ray tests.
package physics
