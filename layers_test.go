package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertContiguousZ(t *testing.T, scene Scene) {
	t.Helper()
	for i, e := range scene.Elements {
		assert.Equal(t, i+1, e.ZIndex, "element %s at position %d", e.ID, i)
	}
}

func TestMoveLayerSwapsNeighbors(t *testing.T) {
	ed := newTestEditor(t, nil)
	rect := mustAdd(t, ed, KindRectangle)
	assert.Equal(t, 1, rect.ZIndex)
	circle := mustAdd(t, ed, KindCircle)
	assert.Equal(t, 2, circle.ZIndex)

	scene, err := ed.MoveLayer(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, scene.Find(rect.ID).ZIndex)
	assert.Equal(t, 1, scene.Find(circle.ID).ZIndex)
	assert.Equal(t, circle.ID, scene.Elements[0].ID)
}

func TestMoveLayerOutOfBoundsIsNoop(t *testing.T) {
	ed := newTestEditor(t, nil)
	mustAdd(t, ed, KindRectangle)
	mustAdd(t, ed, KindCircle)
	before := ed.Scene()

	for _, c := range []struct{ index, dir int }{{0, -1}, {1, 1}, {5, 1}, {-1, 1}, {0, 2}, {0, 0}} {
		after, err := ed.MoveLayer(c.index, c.dir)
		require.NoError(t, err)
		assert.Equal(t, before, after, "MoveLayer(%d, %d)", c.index, c.dir)
	}
}

func TestReindexAfterMixedOperations(t *testing.T) {
	ed := newTestEditor(t, nil)
	for _, k := range []Kind{KindRectangle, KindCircle, KindTriangle, KindText, KindRectangle} {
		mustAdd(t, ed, k)
	}
	steps := []func(){
		func() { ed.MoveLayer(0, 1) },
		func() { ed.MoveLayer(4, -1) },
		func() { ed.Select("el-3"); ed.DeleteSelected() },
		func() { ed.AddShape(KindCircle) },
		func() { ed.Select("el-1"); ed.DuplicateSelected() },
		func() { ed.MoveLayer(2, 1) },
		func() { ed.BringToFront("el-2") },
		func() { ed.SendToBack("el-5") },
	}
	for i, step := range steps {
		step()
		scene := ed.Scene()
		assertContiguousZ(t, scene)
		for j, e := range scene.Elements {
			assert.Equal(t, j, ed.store.IndexOf(e.ID), "step %d: index map out of date for %s", i, e.ID)
		}
	}
}

func TestSelectionFollowsIDAcrossReorder(t *testing.T) {
	ed := newTestEditor(t, nil)
	a := mustAdd(t, ed, KindRectangle)
	mustAdd(t, ed, KindCircle)
	ed.Select(a.ID)

	scene, err := ed.MoveLayer(0, 1)
	require.NoError(t, err)
	assert.Equal(t, a.ID, scene.SelectedID)
	assert.Equal(t, a.ID, scene.Elements[1].ID)
}

func TestBringToFrontAndSendToBack(t *testing.T) {
	ed := newTestEditor(t, nil)
	a := mustAdd(t, ed, KindRectangle)
	b := mustAdd(t, ed, KindCircle)
	c := mustAdd(t, ed, KindTriangle)

	scene, err := ed.BringToFront(a.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{b.ID, c.ID, a.ID}, ids(scene))

	scene, err = ed.SendToBack(c.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{c.ID, b.ID, a.ID}, ids(scene))
	assertContiguousZ(t, scene)

	scene, err = ed.BringToFront("el-99")
	require.NoError(t, err)
	assert.Equal(t, []string{c.ID, b.ID, a.ID}, ids(scene))
}

func ids(scene Scene) []string {
	out := make([]string, len(scene.Elements))
	for i, e := range scene.Elements {
		out[i] = e.ID
	}
	return out
}
