package main

import "math"

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// angle returns the angle in radians from center to p.
func angle(center, p Point) float64 {
	return math.Atan2(p.Y-center.Y, p.X-center.X)
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// rotateAbout rotates p by deg degrees around c.
func rotateAbout(p, c Point, deg float64) Point {
	sin, cos := math.Sincos(radians(deg))
	dx, dy := p.X-c.X, p.Y-c.Y
	return Point{X: c.X + dx*cos - dy*sin, Y: c.Y + dx*sin + dy*cos}
}

// unrotate maps a canvas point into e's unrotated frame.
func unrotate(e *Element, p Point) Point {
	if e.Rotation == 0 {
		return p
	}
	return rotateAbout(p, e.Rect().Center(), -e.Rotation)
}

// trianglePoints is the silhouette drawn for a triangle: apex at top
// center, base along the bottom edge.
func trianglePoints(r Rect) [3]Point {
	return [3]Point{
		{X: r.X + r.Width/2, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y + r.Height},
		{X: r.X, Y: r.Y + r.Height},
	}
}

// containsTriangle uses the same-side cross product test.
func containsTriangle(pts [3]Point, p Point) bool {
	var positive, negative bool
	for i := 0; i < 3; i++ {
		a, b := pts[i], pts[(i+1)%3]
		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// containsBody reports whether p (canvas-local) lies on the element's
// visible silhouette.
func containsBody(e *Element, p Point) bool {
	q := unrotate(e, p)
	r := e.Rect()
	switch e.Kind {
	case KindCircle:
		c := r.Center()
		rx, ry := r.Width/2, r.Height/2
		if rx <= 0 || ry <= 0 {
			return false
		}
		dx, dy := (q.X-c.X)/rx, (q.Y-c.Y)/ry
		return dx*dx+dy*dy <= 1
	case KindTriangle:
		return containsTriangle(trianglePoints(r), q)
	default:
		return r.Contains(q)
	}
}

// handles returns the handles an element exposes, in its unrotated frame.
// Triangles only expose the bottom-right corner.
func handles(e *Element) map[Handle]Rect {
	r := e.Rect()
	box := func(x, y float64) Rect {
		return Rect{X: x - handleSize/2, Y: y - handleSize/2, Width: handleSize, Height: handleSize}
	}
	hs := map[Handle]Rect{
		HandleBottomRight: box(r.X+r.Width, r.Y+r.Height),
		HandleRotate:      box(r.X+r.Width/2, r.Y-rotateHandleGap),
	}
	if e.Kind != KindTriangle {
		hs[HandleTopLeft] = box(r.X, r.Y)
		hs[HandleTopRight] = box(r.X+r.Width, r.Y)
		hs[HandleBottomLeft] = box(r.X, r.Y+r.Height)
	}
	return hs
}

var handleOrder = []Handle{HandleRotate, HandleTopLeft, HandleTopRight, HandleBottomLeft, HandleBottomRight}

// hitTest finds what a canvas-local point lands on. Handles of the
// selected element win over bodies; bodies are tested top-most first.
func (s *elementStore) hitTest(p Point, selectedID string) Target {
	if sel := s.Get(selectedID); sel != nil {
		q := unrotate(sel, p)
		hs := handles(sel)
		for _, h := range handleOrder {
			if r, ok := hs[h]; ok && r.Contains(q) {
				return Target{ID: sel.ID, Handle: h}
			}
		}
	}
	for i := len(s.elements) - 1; i >= 0; i-- {
		e := &s.elements[i]
		if containsBody(e, p) {
			return Target{ID: e.ID, Handle: HandleBody}
		}
	}
	return Target{}
}
