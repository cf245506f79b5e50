package main

import "math"

// gesture is the interaction state. Exactly one value is held at a time,
// so a drag and a resize can never both be in progress.
type gesture interface {
	name() string
}

type idle struct{}

type dragging struct {
	id     string
	offset Point // pointer minus element top-left at grab time
}

type resizing struct {
	id        string
	handle    Handle
	start     Point // canvas-local pointer at grab time
	startRect Rect
}

type rotating struct {
	id            string
	startAngle    float64 // radians, center to pointer
	startRotation float64 // degrees
}

func (idle) name() string     { return "idle" }
func (dragging) name() string { return "dragging" }
func (resizing) name() string { return "resizing" }
func (rotating) name() string { return "rotating" }

// PointerDown selects the target and starts the gesture its handle
// implies. It is ignored while another gesture is active. A target with an
// empty id is a click on bare canvas and clears the selection.
func (ed *Editor) PointerDown(client Point, t Target) Scene {
	if _, ok := ed.gesture.(idle); !ok {
		return ed.Scene()
	}
	if t.ID == "" || t.Handle == HandleNone {
		ed.selectedID = ""
		return ed.Scene()
	}
	el := ed.store.Get(t.ID)
	if el == nil {
		return ed.Scene()
	}
	ed.selectedID = el.ID
	p := ed.canvas.local(client)

	switch {
	case t.Handle == HandleBody:
		ed.gesture = dragging{id: el.ID, offset: p.Sub(Point{X: el.X, Y: el.Y})}
	case t.Handle.isCorner():
		h := t.Handle
		if el.Kind == KindTriangle {
			h = HandleBottomRight
		}
		ed.gesture = resizing{id: el.ID, handle: h, start: p, startRect: el.Rect()}
	case t.Handle == HandleRotate:
		ed.gesture = rotating{
			id:            el.ID,
			startAngle:    angle(el.Rect().Center(), p),
			startRotation: el.Rotation,
		}
	}
	ed.changed = false
	ed.logger.Debug("gesture start", "state", ed.gesture.name(), "id", el.ID, "handle", t.Handle)
	return ed.Scene()
}

// PointerMove applies one gesture step. Steps for an element that has
// disappeared mid-gesture are dropped.
func (ed *Editor) PointerMove(client Point) (Scene, error) {
	p := ed.canvas.local(client)
	switch g := ed.gesture.(type) {
	case dragging:
		el := ed.store.Get(g.id)
		if el == nil {
			return ed.Scene(), nil
		}
		pos := ed.dragPosition(el, p.Sub(g.offset))
		el.X, el.Y = pos.X, pos.Y
		if ed.snapEnabled {
			ed.guides = Guides{Visible: true, X: pos.X, Y: pos.Y}
		} else {
			ed.guides = Guides{}
		}
	case resizing:
		el := ed.store.Get(g.id)
		if el == nil {
			return ed.Scene(), nil
		}
		if el.Kind == KindTriangle {
			el.setRect(resizeTriangle(el.Rect(), p))
		} else {
			el.setRect(resizeRect(g.startRect, g.handle, p.Sub(g.start)))
		}
	case rotating:
		el := ed.store.Get(g.id)
		if el == nil {
			return ed.Scene(), nil
		}
		current := angle(el.Rect().Center(), p)
		el.Rotation = g.startRotation + degrees(current-g.startAngle)
	default:
		return ed.Scene(), nil
	}
	ed.changed = true
	if ed.policy == SaveEveryStep {
		return ed.commit()
	}
	return ed.Scene(), nil
}

// PointerUp ends any gesture. There is no cancel: the last computed value
// stays.
func (ed *Editor) PointerUp() (Scene, error) {
	prev := ed.gesture
	ed.gesture = idle{}
	ed.guides = Guides{}
	if _, ok := prev.(idle); ok {
		return ed.Scene(), nil
	}
	ed.logger.Debug("gesture end", "state", prev.name(), "changed", ed.changed)
	if !ed.changed {
		return ed.Scene(), nil
	}
	ed.changed = false
	return ed.commit()
}

// GestureState names the active gesture.
func (ed *Editor) GestureState() string {
	return ed.gesture.name()
}

// dragPosition clamps a proposed top-left into the canvas and, with
// snapping on, quantizes it without leaving the canvas.
func (ed *Editor) dragPosition(el *Element, proposed Point) Point {
	maxX := math.Max(0, ed.canvas.Width-el.Width)
	maxY := math.Max(0, ed.canvas.Height-el.Height)
	x := clamp(proposed.X, 0, maxX)
	y := clamp(proposed.Y, 0, maxY)
	if ed.snapEnabled {
		x = snapWithin(x, maxX, ed.gridSize)
		y = snapWithin(y, maxY, ed.gridSize)
	}
	return Point{X: x, Y: y}
}

// resizeRect moves the edges named by a corner handle by delta. Moving the
// top or left edge shifts the anchor so the opposite edge stays put.
func resizeRect(start Rect, h Handle, delta Point) Rect {
	r := start
	left := h == HandleTopLeft || h == HandleBottomLeft
	right := h == HandleTopRight || h == HandleBottomRight
	top := h == HandleTopLeft || h == HandleTopRight
	bottom := h == HandleBottomLeft || h == HandleBottomRight

	if right {
		r.Width = math.Max(minElementSize, start.Width+delta.X)
	}
	if left {
		r.Width = math.Max(minElementSize, start.Width-delta.X)
		r.X = start.X + start.Width - r.Width
	}
	if bottom {
		r.Height = math.Max(minElementSize, start.Height+delta.Y)
	}
	if top {
		r.Height = math.Max(minElementSize, start.Height-delta.Y)
		r.Y = start.Y + start.Height - r.Height
	}
	r.Width = math.Max(minElementSize, r.Width)
	r.Height = math.Max(minElementSize, r.Height)
	return r
}

// resizeTriangle keeps the top-left fixed and stretches to the pointer.
func resizeTriangle(r Rect, p Point) Rect {
	r.Width = math.Max(minElementSize, p.X-r.X)
	r.Height = math.Max(minElementSize, p.Y-r.Y)
	return r
}
