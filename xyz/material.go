// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
)

// Material describes the material properties of a surface (colors, shininess),
// i.e., phong lighting parameters. Shaders and textures are the
// business of the renderer.
type Material struct {

	// Color is the main color of surface, used for both ambient and diffuse color in
	// standard Phong model; alpha component determines transparency.
	Color color.RGBA

	// Faces are optional per face colors, in the order
	// +X, -X, +Y, -Y, +Z, -Z of the local axes. A zero color shows
	// the main Color. Faces are set once at construction.
	Faces []color.RGBA

	// Shiny is the specular shininess factor: how focally vs. broad the surface shines back
	// directional light.
	Shiny float32

	// Reflective is the specular reflectiveness factor: how much it shines back directional light.
	Reflective float32

	// Bright is an overall multiplier on final computed color value.
	Bright float32
}

// Defaults sets default surface parameters
func (mt *Material) Defaults() {
	mt.Color = color.RGBA{128, 128, 128, 255}
	mt.Shiny = 30
	mt.Reflective = 1
	mt.Bright = 1
}

// FaceColor returns the color of the given face index,
// falling back on the main color.
func (mt *Material) FaceColor(face int) color.RGBA {
	if face >= 0 && face < len(mt.Faces) && mt.Faces[face].A != 0 {
		return mt.Faces[face]
	}
	return mt.Color
}

// MaterialData is the persisted form of a [Material].
type MaterialData struct {
	Color      string   `json:"color,omitempty" yaml:"color,omitempty"`
	Faces      []string `json:"faces,omitempty" yaml:"faces,omitempty"`
	Shiny      float32  `json:"shiny,omitempty" yaml:"shiny,omitempty"`
	Reflective float32  `json:"reflective,omitempty" yaml:"reflective,omitempty"`
	Bright     float32  `json:"bright,omitempty" yaml:"bright,omitempty"`
}

// Data returns the persisted form of the material.
func (mt *Material) Data() *MaterialData {
	md := &MaterialData{Color: colors.AsHex(mt.Color), Shiny: mt.Shiny, Reflective: mt.Reflective, Bright: mt.Bright}
	for _, fc := range mt.Faces {
		md.Faces = append(md.Faces, colors.AsHex(fc))
	}
	return md
}

// SetData sets the material from its persisted form.
// Malformed colors are logged and left unchanged.
func (mt *Material) SetData(md *MaterialData) {
	if md == nil {
		return
	}
	if md.Color != "" {
		if c, err := colors.FromHex(md.Color); errors.Log(err) == nil {
			mt.Color = c
		}
	}
	if len(md.Faces) > 0 {
		mt.Faces = make([]color.RGBA, len(md.Faces))
		for i, fs := range md.Faces {
			if c, err := colors.FromHex(fs); errors.Log(err) == nil {
				mt.Faces[i] = c
			}
		}
	}
	if md.Shiny != 0 {
		mt.Shiny = md.Shiny
	}
	if md.Reflective != 0 {
		mt.Reflective = md.Reflective
	}
	if md.Bright != 0 {
		mt.Bright = md.Bright
	}
}
