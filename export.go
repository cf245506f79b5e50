package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strconv"
)

// ExportJSON returns the element list as indented JSON, in the same shape
// as the stored scene.
func (ed *Editor) ExportJSON() ([]byte, error) {
	elements := ed.Scene().Elements
	data, err := json.MarshalIndent(elements, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json export: %w", err)
	}
	return data, nil
}

// ExportHTML renders a standalone page that reproduces every element
// without handles or selection outlines.
func (ed *Editor) ExportHTML() ([]byte, error) {
	scene := ed.Scene()
	page := htmlPage{
		Width:  num(ed.canvas.Width),
		Height: num(ed.canvas.Height),
	}
	for i := range scene.Elements {
		el, err := newHTMLElement(&scene.Elements[i])
		if err != nil {
			return nil, err
		}
		page.Elements = append(page.Elements, el)
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("render html export: %w", err)
	}
	return buf.Bytes(), nil
}

type htmlPage struct {
	Width, Height string
	Elements      []htmlElement
}

type htmlElement struct {
	Kind                string
	X, Y, Width, Height string
	HalfWidth           string
	Rotation            string
	ZIndex              int
	Fill                template.CSS
	Text                string
}

// newHTMLElement formats e for the page template. The fill is emitted in
// its canonical parsed form.
func newHTMLElement(e *Element) (htmlElement, error) {
	fill, err := parseFill(e.Fill)
	if err != nil {
		return htmlElement{}, fmt.Errorf("element %s fill: %w", e.ID, err)
	}
	return htmlElement{
		Kind:      string(e.Kind),
		X:         num(e.X),
		Y:         num(e.Y),
		Width:     num(e.Width),
		Height:    num(e.Height),
		HalfWidth: num(e.Width / 2),
		Rotation:  num(e.Rotation),
		ZIndex:    e.ZIndex,
		Fill:      template.CSS(cssFill(fill)),
		Text:      e.Text,
	}, nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var htmlTemplate = template.Must(template.New("design").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Design</title>
<style>
body { margin: 0; background: #f5f5f5; }
.canvas { position: relative; overflow: hidden; background: #fff; }
.element { position: absolute; box-sizing: border-box; }
.text { display: flex; align-items: center; justify-content: center; color: #fff; font-family: sans-serif; font-size: 14px; }
</style>
</head>
<body>
<div class="canvas" style="width: {{.Width}}px; height: {{.Height}}px;">
{{- range .Elements}}
{{- if eq .Kind "triangle"}}
<div class="element" style="left: {{.X}}px; top: {{.Y}}px; width: 0; height: 0; border-left: {{.HalfWidth}}px solid transparent; border-right: {{.HalfWidth}}px solid transparent; border-bottom: {{.Height}}px solid {{.Fill}}; transform: rotate({{.Rotation}}deg); z-index: {{.ZIndex}};"></div>
{{- else if eq .Kind "circle"}}
<div class="element" style="left: {{.X}}px; top: {{.Y}}px; width: {{.Width}}px; height: {{.Height}}px; background: {{.Fill}}; border-radius: 50%; transform: rotate({{.Rotation}}deg); z-index: {{.ZIndex}};"></div>
{{- else if eq .Kind "text"}}
<div class="element text" style="left: {{.X}}px; top: {{.Y}}px; width: {{.Width}}px; height: {{.Height}}px; background: {{.Fill}}; transform: rotate({{.Rotation}}deg); z-index: {{.ZIndex}};">{{.Text}}</div>
{{- else}}
<div class="element" style="left: {{.X}}px; top: {{.Y}}px; width: {{.Width}}px; height: {{.Height}}px; background: {{.Fill}}; transform: rotate({{.Rotation}}deg); z-index: {{.ZIndex}};"></div>
{{- end}}
{{- end}}
</div>
</body>
</html>
`))

// exportAll writes design.json, design.html and design.png into dir and
// returns the paths written.
func (ed *Editor) exportAll(dir string) ([]string, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir export dir: %w", err)
		}
	}

	jsonData, err := ed.ExportJSON()
	if err != nil {
		return nil, err
	}
	htmlData, err := ed.ExportHTML()
	if err != nil {
		return nil, err
	}

	jsonPath := filepath.Join(dir, exportJSONName)
	if err := os.WriteFile(jsonPath, jsonData, 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", exportJSONName, err)
	}
	htmlPath := filepath.Join(dir, exportHTMLName)
	if err := os.WriteFile(htmlPath, htmlData, 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", exportHTMLName, err)
	}

	pngPath := filepath.Join(dir, exportPNGName)
	file, err := os.Create(pngPath)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", exportPNGName, err)
	}
	defer file.Close()
	if err := ed.ExportPNG(file); err != nil {
		return nil, err
	}
	return []string{jsonPath, htmlPath, pngPath}, nil
}
