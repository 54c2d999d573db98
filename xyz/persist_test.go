// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"bytes"
	"image/color"
	"path/filepath"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/cube/xyz/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSaveScene() *Scene {
	sc := NewScene("level")
	gp := NewGroup(sc, "room")
	gp.SetPos(math32.Vec3(1, 2, 3))
	gp.SetIRot([3]int{1, 0, 0})
	ms := NewMesh(gp, "crate")
	ms.Geometry.AddBox(math32.Vec3(1, 1, 1), math32.Vector3{})
	ms.SetColor(color.RGBA{255, 0, 0, 255})
	ms.SetScale(math32.Vec3(2, 2, 2))
	ms.NewBody(physics.Box, 1, math32.Vector3{}).SetEnabled(false)
	hid := NewMesh(gp, "hidden")
	hid.Visible = false

	inst := NewGroup(sc, "asset").SetInstance(true)
	NewMesh(inst, "part")

	NewCursor(sc, "cursor")
	placing := NewMesh(sc, "placing")
	placing.BeginPlacing()
	return sc
}

func TestSerializeVetoes(t *testing.T) {
	sc := buildSaveScene()
	sf := sc.SaveData()
	require.NotNil(t, sf.Root)
	assert.Equal(t, SceneFileVersion, sf.Version)

	var names []string
	for _, cd := range sf.Root.Children {
		names = append(names, cd.Name)
	}
	assert.Equal(t, []string{"room", "asset"}, names)

	room := sf.Root.Children[0]
	assert.Equal(t, []float32{1, 2, 3}, room.Position)
	assert.Equal(t, []int{1, 0, 0}, room.IRot)
	assert.Nil(t, room.Scale)
	require.Len(t, room.Children, 2)

	crate := room.Children[0]
	assert.Equal(t, "Mesh HasBody", crate.Type)
	assert.Equal(t, []float32{2, 2, 2}, crate.Scale)
	assert.Nil(t, crate.IRot)
	assert.Nil(t, crate.Visible)
	require.NotNil(t, crate.Body)
	assert.Equal(t, "Box", crate.Body.Shape)
	assert.False(t, crate.Body.Enabled)
	require.NotNil(t, crate.Geometry)
	assert.Len(t, crate.Geometry.Parts, 1)

	hidden := room.Children[1]
	require.NotNil(t, hidden.Visible)
	assert.False(t, *hidden.Visible)

	asset := sf.Root.Children[1]
	assert.Equal(t, "Group Instance", asset.Type)
	assert.Empty(t, asset.Children)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, format := range []Formats{JSON, YAML} {
		sc := buildSaveScene()
		var b bytes.Buffer
		require.NoError(t, sc.Write(&b, format))

		ld := NewScene("")
		require.NoError(t, ld.Read(&b, format))
		assert.Equal(t, "level", ld.Name)
		assert.Equal(t, Node(ld.Gizmos), ld.ChildByName("gizmos"))
		assert.Nil(t, ld.ChildByName("cursor"))
		assert.Nil(t, ld.ChildByName("placing"))

		room := AsGroup(ld.ChildByName("room"))
		require.NotNil(t, room)
		assert.Equal(t, math32.Vec3(1, 2, 3), room.Pose.Pos)
		assert.Equal(t, [3]int{1, 0, 0}, room.IRot())

		crate := AsMesh(room.ChildByName("crate"))
		require.NotNil(t, crate)
		assert.Same(t, ld, crate.Scene)
		assert.Equal(t, color.RGBA{255, 0, 0, 255}, crate.Material.Color)
		assert.Equal(t, math32.Vec3(2, 2, 2), crate.Pose.Scale)
		assert.Len(t, crate.Geometry.Parts, 1)
		require.NotNil(t, crate.Body)
		assert.Equal(t, physics.Box, crate.Body.Kind)
		assert.Equal(t, float32(1), crate.Body.Mass)
		assert.False(t, crate.Body.Enabled)
		assert.NotNil(t, crate.Body.Rigid)
		assertVec(t, sc.ObjectByName("crate").AsNode().WorldPos(), crate.WorldPos())

		hidden := AsMesh(room.ChildByName("hidden"))
		require.NotNil(t, hidden)
		assert.False(t, hidden.Visible)

		asset := AsGroup(ld.ChildByName("asset"))
		require.NotNil(t, asset)
		assert.True(t, asset.Caps.Has(CapInstance))
		assert.False(t, asset.HasChildren())
	}
}

func TestSaveOpenFile(t *testing.T) {
	dir := t.TempDir()
	for _, fn := range []string{"scene.json", "scene.yaml"} {
		path := filepath.Join(dir, fn)
		require.NoError(t, buildSaveScene().Save(path))
		ld := NewScene("")
		require.NoError(t, ld.Open(path))
		assert.NotNil(t, ld.ObjectByName("crate"))
	}
	assert.Error(t, NewScene("").Open(filepath.Join(dir, "missing.json")))
	assert.Equal(t, YAML, FormatForFile("a.YML"))
	assert.Equal(t, JSON, FormatForFile("a.json"))
}

func TestLoadVersion(t *testing.T) {
	sc := NewScene("scene")
	root := &NodeData{Name: "scene", Type: "Group"}
	assert.Error(t, sc.LoadData(&SceneFile{Version: "2.0.0", Root: root}))
	assert.Error(t, sc.LoadData(&SceneFile{Version: "bad", Root: root}))
	assert.Error(t, sc.LoadData(&SceneFile{Version: "1.0.0"}))
	assert.NoError(t, sc.LoadData(&SceneFile{Version: "1.2.0", Root: root}))
}

func TestParseSkipsMalformed(t *testing.T) {
	nd := &NodeData{Name: "root", Type: "Group", Children: []*NodeData{
		{Name: "bad", Type: "Bogus"},
		{Name: "ok", Type: "Mesh", Position: []float32{1, 0, 0}},
		{Name: "odd", Type: "Mesh", Body: &BodyData{Shape: "Blob", Mass: 1}},
	}}
	n, err := Parse(nd)
	require.NoError(t, err)
	nb := n.AsNode()
	assert.Equal(t, 2, nb.NumChildren())
	ok := AsMesh(nb.ChildByName("ok"))
	require.NotNil(t, ok)
	assert.Equal(t, math32.Vec3(1, 0, 0), ok.Pose.Pos)
	odd := AsMesh(nb.ChildByName("odd"))
	require.NotNil(t, odd)
	assert.Nil(t, odd.Body)

	_, err = Parse(&NodeData{Name: "x", Type: "Bogus"})
	assert.Error(t, err)
	_, err = Parse(nil)
	assert.Error(t, err)
}
