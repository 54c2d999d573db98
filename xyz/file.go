// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// SceneFileVersion is the version written to new scene files.
const SceneFileVersion = "1.0.0"

// sceneFileConstraint is the range of scene file versions that can be read.
const sceneFileConstraint = "^1"

// SceneFile is the top level of a saved scene.
type SceneFile struct {

	// Version is the semantic version of the file format.
	Version string `json:"version" yaml:"version"`

	// SnapAngle is the angle in degrees of the integer rotations in the file.
	SnapAngle float32 `json:"snapAngle" yaml:"snapAngle"`

	// Root is the saved scene root.
	Root *NodeData `json:"root" yaml:"root"`
}

// Formats are the encodings of scene files.
type Formats int32

const (
	JSON Formats = iota
	YAML
)

// FormatForFile returns the format implied by the extension of the
// given file name, which is YAML for .yaml and .yml, and JSON otherwise.
func FormatForFile(filename string) Formats {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

// SaveData returns the persisted form of the scene. The camera,
// cursor and other scene owned nodes are not included.
func (sc *Scene) SaveData() *SceneFile {
	root, _ := sc.Serialize(0, true)
	return &SceneFile{Version: SceneFileVersion, SnapAngle: sc.SnapAngle, Root: root}
}

// LoadData replaces the saved children of the scene with those in the
// given data. Scene owned nodes are kept.
func (sc *Scene) LoadData(sf *SceneFile) error {
	c, err := semver.NewConstraint(sceneFileConstraint)
	if err != nil {
		return err
	}
	v, err := semver.NewVersion(sf.Version)
	if err != nil {
		return errors.Wrapf(err, "xyz.Scene.LoadData: invalid version %q", sf.Version)
	}
	if !c.Check(v) {
		return errors.Errorf("xyz.Scene.LoadData: unsupported version %s, need %s", v, sceneFileConstraint)
	}
	if sf.Root == nil {
		return errors.New("xyz.Scene.LoadData: no root")
	}
	snap := sf.SnapAngle
	if snap <= 0 {
		snap = DefaultSnapAngle
	}
	root, err := ParseSnap(sf.Root, snap)
	if err != nil {
		return errors.Wrap(err, "xyz.Scene.LoadData")
	}
	for _, kid := range append(sc.Children[:0:0], sc.Children...) {
		if kid != sc.Gizmos.This {
			sc.RemoveChild(kid)
		}
	}
	rt := root.AsTree()
	for len(rt.Children) > 0 {
		sc.AddChild(rt.Children[0])
	}
	if sf.Root.Name != "" {
		sc.SetName(sf.Root.Name)
	}
	sc.UpdateLocalMatrix()
	return nil
}

// Write writes the scene to the given writer in the given format.
func (sc *Scene) Write(w io.Writer, format Formats) error {
	sf := sc.SaveData()
	if format == YAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(sf); err != nil {
			return errors.Wrap(err, "xyz.Scene.Write")
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	return errors.Wrap(enc.Encode(sf), "xyz.Scene.Write")
}

// Read reads the scene from the given reader in the given format.
// See [Scene.LoadData].
func (sc *Scene) Read(r io.Reader, format Formats) error {
	sf := &SceneFile{}
	var err error
	if format == YAML {
		err = yaml.NewDecoder(r).Decode(sf)
	} else {
		err = json.NewDecoder(r).Decode(sf)
	}
	if err != nil {
		return errors.Wrap(err, "xyz.Scene.Read")
	}
	return sc.LoadData(sf)
}

// Save saves the scene to the given file, in the format
// given by its extension.
func (sc *Scene) Save(filename string) error {
	var b bytes.Buffer
	if err := sc.Write(&b, FormatForFile(filename)); err != nil {
		return err
	}
	return errors.Wrapf(os.WriteFile(filename, b.Bytes(), 0666), "xyz.Scene.Save %s", filename)
}

// Open loads the scene from the given file, in the format
// given by its extension.
func (sc *Scene) Open(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(err, "xyz.Scene.Open")
	}
	defer f.Close()
	return errors.Wrapf(sc.Read(f, FormatForFile(filename)), "xyz.Scene.Open %s", filename)
}
