package main

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const pngFontSize = 14.0

// ExportPNG rasterizes the scene at canvas size, painting bottom to top.
func (ed *Editor) ExportPNG(w io.Writer) error {
	scene := ed.Scene()
	width := int(math.Ceil(ed.canvas.Width))
	height := int(math.Ceil(ed.canvas.Height))
	if width < 1 || height < 1 {
		return fmt.Errorf("canvas has no area (%vx%v)", ed.canvas.Width, ed.canvas.Height)
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    pngFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	for i := range scene.Elements {
		e := &scene.Elements[i]
		fill, err := parseFill(e.Fill)
		if err != nil {
			return fmt.Errorf("element %s fill: %w", e.ID, err)
		}
		drawElementPNG(dc, e, fill)
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func drawElementPNG(dc *gg.Context, e *Element, fill color.Color) {
	r := e.Rect()
	c := r.Center()

	dc.Push()
	defer dc.Pop()
	dc.RotateAbout(gg.Radians(e.Rotation), c.X, c.Y)
	dc.SetColor(fill)

	switch e.Kind {
	case KindCircle:
		dc.DrawEllipse(c.X, c.Y, r.Width/2, r.Height/2)
		dc.Fill()
	case KindTriangle:
		pts := trianglePoints(r)
		dc.MoveTo(pts[0].X, pts[0].Y)
		dc.LineTo(pts[1].X, pts[1].Y)
		dc.LineTo(pts[2].X, pts[2].Y)
		dc.ClosePath()
		dc.Fill()
	case KindText:
		dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
		dc.Fill()
		dc.SetColor(color.White)
		dc.DrawStringAnchored(e.Text, c.X, c.Y, 0.5, 0.5)
	default:
		dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
		dc.Fill()
	}
}
