package main

import "errors"

var (
	ErrMalformedScene  = errors.New("malformed scene data")
	ErrInvalidProperty = errors.New("invalid property")
	ErrUnknownKind     = errors.New("unknown element kind")
)

type Element struct {
	ID       string  `json:"id"`
	Kind     Kind    `json:"type"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"`
	Fill     string  `json:"background"`
	Text     string  `json:"text"`
	ZIndex   int     `json:"zIndex"`
}

func (e *Element) Rect() Rect {
	return Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

func (e *Element) setRect(r Rect) {
	e.X, e.Y, e.Width, e.Height = r.X, r.Y, r.Width, r.Height
}

// Scene is a snapshot of the store: elements bottom to top plus the
// selected id ("" when nothing is selected).
type Scene struct {
	Elements   []Element
	SelectedID string
}

// Find returns the element with the given id, or nil.
func (s Scene) Find(id string) *Element {
	for i := range s.Elements {
		if s.Elements[i].ID == id {
			return &s.Elements[i]
		}
	}
	return nil
}

type Point struct {
	X, Y float64
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

type Rect struct {
	X, Y, Width, Height float64
}

// Canvas is the drawing surface in client coordinates. Pointer events are
// reported relative to the client origin and converted with Left/Top.
type Canvas struct {
	Left, Top     float64
	Width, Height float64
}

func (c Canvas) local(p Point) Point {
	return Point{X: p.X - c.Left, Y: p.Y - c.Top}
}

// Guides are the snap guide lines shown while a snapped drag is in progress.
type Guides struct {
	Visible bool
	X, Y    float64
}

// Target is what a pointer-down hit.
type Target struct {
	ID     string
	Handle Handle
}

type shapeDefaults struct {
	x, y, width, height float64
	fill                string
	text                string
}

var defaults = map[Kind]shapeDefaults{
	KindRectangle: {x: 80, y: 80, width: 120, height: 80, fill: "#2f80ed"},
	KindCircle:    {x: 90, y: 90, width: 100, height: 100, fill: "#27ae60"},
	KindTriangle:  {x: 100, y: 100, width: 120, height: 100, fill: "#eb5757"},
	KindText:      {x: 100, y: 100, width: 140, height: 50, fill: "#444", text: "Text"},
}
