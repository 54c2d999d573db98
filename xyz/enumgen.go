// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"strings"

	"cogentcore.org/core/enums"
)

var _CapabilitiesValues = []Capabilities{CapGroup, CapMesh, CapCamera, CapCursor, CapHasBody, CapInstance, CapPuzzleCube, CapInternal}

// CapabilitiesN is the highest valid single capability, times two.
const CapabilitiesN Capabilities = 256

var _CapabilitiesValueMap = map[string]Capabilities{`Group`: 1, `group`: 1, `Mesh`: 2, `mesh`: 2, `Camera`: 4, `camera`: 4, `Cursor`: 8, `cursor`: 8, `HasBody`: 16, `hasbody`: 16, `Instance`: 32, `instance`: 32, `PuzzleCube`: 64, `puzzlecube`: 64, `Internal`: 128, `internal`: 128}

var _CapabilitiesDescMap = map[Capabilities]string{1: `CapGroup is set on any node that has had children added.`, 2: `CapMesh is set on nodes with renderable geometry.`, 4: `CapCamera is set on camera nodes.`, 8: `CapCursor is set on the editor placement cursor.`, 16: `CapHasBody is set on meshes that own a physics body.`, 32: `CapInstance marks a group holding a loaded sub-asset, whose children are not linked to its transform and are not saved.`, 64: `CapPuzzleCube is set on twisty puzzle cubes.`, 128: `CapInternal marks scene-owned groups that are never saved.`}

var _CapabilitiesMap = map[Capabilities]string{1: `Group`, 2: `Mesh`, 4: `Camera`, 8: `Cursor`, 16: `HasBody`, 32: `Instance`, 64: `PuzzleCube`, 128: `Internal`}

// String returns the names of the set capabilities joined by spaces.
func (i Capabilities) String() string {
	var nms []string
	for _, v := range _CapabilitiesValues {
		if i.Has(v) {
			nms = append(nms, enums.String(v, _CapabilitiesMap))
		}
	}
	return strings.Join(nms, " ")
}

// SetString sets the capabilities from space separated names, in any
// case. Unknown names are reported in the error; the known ones are
// still set.
func (i *Capabilities) SetString(s string) error {
	*i = 0
	var unknown []string
	for _, fld := range strings.Fields(s) {
		var c Capabilities
		if err := enums.SetStringLower(&c, fld, _CapabilitiesValueMap, "Capabilities"); err != nil {
			unknown = append(unknown, fld)
			continue
		}
		*i |= c
	}
	if len(unknown) > 0 {
		return fmt.Errorf("xyz.Capabilities: unknown capability names: %v", unknown)
	}
	return nil
}

// Int64 returns the Capabilities value as an int64.
func (i Capabilities) Int64() int64 { return int64(i) }

// SetInt64 sets the Capabilities value from an int64.
func (i *Capabilities) SetInt64(in int64) { *i = Capabilities(in) }

// Desc returns the description of the Capabilities value.
func (i Capabilities) Desc() string { return enums.Desc(i, _CapabilitiesDescMap) }

// CapabilitiesValues returns all single capabilities.
func CapabilitiesValues() []Capabilities { return _CapabilitiesValues }

// Values returns all single capabilities.
func (i Capabilities) Values() []enums.Enum { return enums.Values(_CapabilitiesValues) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Capabilities) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Capabilities) UnmarshalText(text []byte) error {
	return enums.UnmarshalText(i, text, "Capabilities")
}

var _DeadStateValues = []DeadState{0, 1, 2}

// DeadStateN is the highest valid value for type DeadState, plus one.
const DeadStateN DeadState = 3

var _DeadStateValueMap = map[string]DeadState{`Alive`: 0, `Dead`: 1, `Remove`: 2}

var _DeadStateDescMap = map[DeadState]string{0: `Alive nodes are in normal use.`, 1: `Dead nodes are scheduled for removal and become [Remove] on the next [NodeBase.ClearDeads] of their parent.`, 2: `Remove nodes are removed by the next [NodeBase.ClearDeads] of their parent.`}

var _DeadStateMap = map[DeadState]string{0: `Alive`, 1: `Dead`, 2: `Remove`}

// String returns the string representation of this DeadState value.
func (i DeadState) String() string { return enums.String(i, _DeadStateMap) }

// SetString sets the DeadState value from its string representation,
// and returns an error if the string is invalid.
func (i *DeadState) SetString(s string) error {
	return enums.SetString(i, s, _DeadStateValueMap, "DeadState")
}

// Int64 returns the DeadState value as an int64.
func (i DeadState) Int64() int64 { return int64(i) }

// SetInt64 sets the DeadState value from an int64.
func (i *DeadState) SetInt64(in int64) { *i = DeadState(in) }

// Desc returns the description of the DeadState value.
func (i DeadState) Desc() string { return enums.Desc(i, _DeadStateDescMap) }

// DeadStateValues returns all possible values for the type DeadState.
func DeadStateValues() []DeadState { return _DeadStateValues }

// Values returns all possible values for the type DeadState.
func (i DeadState) Values() []enums.Enum { return enums.Values(_DeadStateValues) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i DeadState) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *DeadState) UnmarshalText(text []byte) error {
	return enums.UnmarshalText(i, text, "DeadState")
}

var _TransformSourceValues = []TransformSource{0, 1}

// TransformSourceN is the highest valid value for type TransformSource, plus one.
const TransformSourceN TransformSource = 2

var _TransformSourceValueMap = map[string]TransformSource{`Local`: 0, `PhysicsDriven`: 1}

var _TransformSourceDescMap = map[TransformSource]string{0: `Local nodes derive their world matrix from their parent and their own pose.`, 1: `PhysicsDriven nodes have their world matrix written by the physics step; their children still derive from it.`}

var _TransformSourceMap = map[TransformSource]string{0: `Local`, 1: `PhysicsDriven`}

// String returns the string representation of this TransformSource value.
func (i TransformSource) String() string { return enums.String(i, _TransformSourceMap) }

// SetString sets the TransformSource value from its string representation,
// and returns an error if the string is invalid.
func (i *TransformSource) SetString(s string) error {
	return enums.SetString(i, s, _TransformSourceValueMap, "TransformSource")
}

// Int64 returns the TransformSource value as an int64.
func (i TransformSource) Int64() int64 { return int64(i) }

// SetInt64 sets the TransformSource value from an int64.
func (i *TransformSource) SetInt64(in int64) { *i = TransformSource(in) }

// Desc returns the description of the TransformSource value.
func (i TransformSource) Desc() string { return enums.Desc(i, _TransformSourceDescMap) }

// TransformSourceValues returns all possible values for the type TransformSource.
func TransformSourceValues() []TransformSource { return _TransformSourceValues }

// Values returns all possible values for the type TransformSource.
func (i TransformSource) Values() []enums.Enum { return enums.Values(_TransformSourceValues) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i TransformSource) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *TransformSource) UnmarshalText(text []byte) error {
	return enums.UnmarshalText(i, text, "TransformSource")
}
