package main

import (
	"bytes"
	"context"
	"encoding/json"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportFixture(t *testing.T) (*Editor, *MemoryStorage) {
	t.Helper()
	storage := NewMemoryStorage()
	ed := newTestEditor(t, storage)
	mustAdd(t, ed, KindRectangle)
	mustAdd(t, ed, KindCircle)
	mustAdd(t, ed, KindTriangle)
	text := mustAdd(t, ed, KindText)
	_, err := ed.SetProperty(text.ID, FieldText, "a < b & c")
	require.NoError(t, err)
	return ed, storage
}

func TestExportJSONMatchesStoredScene(t *testing.T) {
	ed, storage := exportFixture(t)

	data, err := ed.ExportJSON()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "[\n  {\n    \"id\": \"el-1\""), string(data))

	raw, ok, err := storage.Get(context.Background(), keySceneState)
	require.NoError(t, err)
	require.True(t, ok)

	var exported, stored []map[string]any
	require.NoError(t, json.Unmarshal(data, &exported))
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, stored, exported)

	first := exported[0]
	for _, key := range []string{"id", "type", "x", "y", "width", "height", "rotation", "background", "text", "zIndex"} {
		assert.Contains(t, first, key)
	}
	assert.Equal(t, "rect", first["type"])
}

func TestExportJSONEmptyScene(t *testing.T) {
	ed := newTestEditor(t, nil)
	data, err := ed.ExportJSON()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestExportHTML(t *testing.T) {
	ed, _ := exportFixture(t)
	data, err := ed.ExportHTML()
	require.NoError(t, err)
	page := string(data)

	assert.Contains(t, page, "width: 800px; height: 600px;")
	assert.Contains(t, page, "border-left: 60px solid transparent; border-right: 60px solid transparent; border-bottom: 100px solid #eb5757;")
	assert.Contains(t, page, "border-radius: 50%")
	assert.Contains(t, page, "background: #2f80ed;")
	assert.Contains(t, page, "a &lt; b &amp; c")
	assert.NotContains(t, page, "a < b")
	assert.Equal(t, 4, strings.Count(page, `class="element`))
	assert.Contains(t, page, "z-index: 4;")
}

func TestExportHTMLRotation(t *testing.T) {
	ed := newTestEditor(t, nil)
	a := mustAdd(t, ed, KindRectangle)
	_, err := ed.SetProperty(a.ID, FieldRotation, "22.5")
	require.NoError(t, err)

	data, err := ed.ExportHTML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "transform: rotate(22.5deg);")
}

func TestExportPNG(t *testing.T) {
	ed, _ := exportFixture(t)
	var buf bytes.Buffer
	require.NoError(t, ed.ExportPNG(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())

	white := color.RGBAModel.Convert(color.White)
	assert.Equal(t, white, color.RGBAModel.Convert(img.At(700, 500)))
	// Rectangle corner not covered by the circle above it.
	assert.Equal(t, color.RGBA{R: 0x2f, G: 0x80, B: 0xed, A: 0xff}, color.RGBAModel.Convert(img.At(195, 85)))
}

func TestExportPNGNeedsArea(t *testing.T) {
	ed := newTestEditor(t, nil)
	ed.SetCanvas(Canvas{})
	assert.Error(t, ed.ExportPNG(&bytes.Buffer{}))
}

func TestExportAll(t *testing.T) {
	ed, _ := exportFixture(t)
	dir := filepath.Join(t.TempDir(), "out")

	paths, err := ed.exportAll(dir)
	require.NoError(t, err)
	require.Len(t, paths, 3)
	for _, name := range []string{exportJSONName, exportHTMLName, exportPNGName} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.NotZero(t, info.Size(), name)
	}
}

func TestExportFillFormats(t *testing.T) {
	ed := newTestEditor(t, nil)
	rgb := mustAdd(t, ed, KindRectangle)
	named := mustAdd(t, ed, KindCircle)
	translucent := mustAdd(t, ed, KindTriangle)
	for id, fill := range map[string]string{
		rgb.ID:         "rgb(255, 0, 0)",
		named.ID:       "Lime",
		translucent.ID: "rgba(0, 0, 255, 0.5)",
	} {
		_, err := ed.SetProperty(id, FieldFill, fill)
		require.NoError(t, err)
	}

	data, err := ed.ExportHTML()
	require.NoError(t, err)
	page := string(data)
	assert.NotContains(t, page, "ZgotmplZ")
	assert.Contains(t, page, "background: #ff0000;")
	assert.Contains(t, page, "background: #00ff00;")
	assert.Contains(t, page, "solid rgba(0, 0, 255, 0.502);")

	_, err = ed.SetProperty(translucent.ID, FieldFill, "blue")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, ed.ExportPNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)

	red := color.RGBA{R: 255, A: 255}
	assert.Equal(t, red, color.RGBAModel.Convert(img.At(195, 85)))
	// Inside the circle, left of the triangle.
	assert.Equal(t, color.RGBA{G: 255, A: 255}, color.RGBAModel.Convert(img.At(100, 140)))
	// Triangle base, to the right of the circle.
	assert.Equal(t, color.RGBA{B: 255, A: 255}, color.RGBAModel.Convert(img.At(210, 195)))
}
