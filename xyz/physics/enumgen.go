// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"cogentcore.org/core/enums"
)

var _ShapeKindsValues = []ShapeKinds{0, 1, 2, 3, 4, 5, 6}

// ShapeKindsN is the highest valid value for type ShapeKinds, plus one.
const ShapeKindsN ShapeKinds = 7

var _ShapeKindsValueMap = map[string]ShapeKinds{`Box`: 0, `Sphere`: 1, `Cylinder`: 2, `Capsule`: 3, `ConvexHull`: 4, `TriangleMesh`: 5, `Compound`: 6}

var _ShapeKindsDescMap = map[ShapeKinds]string{0: `Box is a rectangular box given by its half extents.`, 1: `Sphere is given by its radius.`, 2: `Cylinder is aligned on the Y axis, given by its radius and height.`, 3: `Capsule is a Y aligned cylinder with hemispheres at each end. Height is the height of the cylinder portion.`, 4: `ConvexHull is the convex hull of a set of points.`, 5: `TriangleMesh is an arbitrary indexed triangle mesh. It can only be used for static bodies.`, 6: `Compound is an aggregate of child shapes at given offsets.`}

var _ShapeKindsMap = map[ShapeKinds]string{0: `Box`, 1: `Sphere`, 2: `Cylinder`, 3: `Capsule`, 4: `ConvexHull`, 5: `TriangleMesh`, 6: `Compound`}

// String returns the string representation of this ShapeKinds value.
func (i ShapeKinds) String() string { return enums.String(i, _ShapeKindsMap) }

// SetString sets the ShapeKinds value from its string representation,
// and returns an error if the string is invalid.
func (i *ShapeKinds) SetString(s string) error {
	return enums.SetString(i, s, _ShapeKindsValueMap, "ShapeKinds")
}

// Int64 returns the ShapeKinds value as an int64.
func (i ShapeKinds) Int64() int64 { return int64(i) }

// SetInt64 sets the ShapeKinds value from an int64.
func (i *ShapeKinds) SetInt64(in int64) { *i = ShapeKinds(in) }

// Desc returns the description of the ShapeKinds value.
func (i ShapeKinds) Desc() string { return enums.Desc(i, _ShapeKindsDescMap) }

// ShapeKindsValues returns all possible values for the type ShapeKinds.
func ShapeKindsValues() []ShapeKinds { return _ShapeKindsValues }

// Values returns all possible values for the type ShapeKinds.
func (i ShapeKinds) Values() []enums.Enum { return enums.Values(_ShapeKindsValues) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i ShapeKinds) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *ShapeKinds) UnmarshalText(text []byte) error {
	return enums.UnmarshalText(i, text, "ShapeKinds")
}
