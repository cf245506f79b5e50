package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/jinzhu/copier"
)

// Editor owns the element store and is the only write path into it. All
// methods are meant to be called from one goroutine (the UI loop); Editor
// is not safe for concurrent use.
type Editor struct {
	store      *elementStore
	selectedID string
	gesture    gesture
	changed    bool
	guides     Guides

	canvas      Canvas
	gridSize    float64
	snapEnabled bool
	theme       Theme

	storage Storage
	policy  SavePolicy
	logger  *slog.Logger
}

func NewEditor(storage Storage, cfg *Config, logger *slog.Logger) *Editor {
	if logger == nil {
		logger = slog.Default()
	}
	grid := cfg.GridSize
	if grid <= 0 {
		grid = defaultGridSize
	}
	policy := cfg.SavePolicy
	if policy != SaveEveryStep {
		policy = SaveOnCommit
	}
	return &Editor{
		store:    newElementStore(),
		gesture:  idle{},
		canvas:   Canvas{Width: cfg.CanvasWidth, Height: cfg.CanvasHeight},
		gridSize: grid,
		theme:    ThemeDark,
		storage:  storage,
		policy:   policy,
		logger:   logger,
	}
}

// Scene returns a deep copy of the current scene.
func (ed *Editor) Scene() Scene {
	scene := Scene{SelectedID: ed.selectedID}
	if err := copier.CopyWithOption(&scene.Elements, &ed.store.elements, copier.Option{DeepCopy: true}); err != nil {
		ed.logger.Error("copy scene", "err", err)
	}
	if scene.Elements == nil {
		scene.Elements = []Element{}
	}
	return scene
}

func (ed *Editor) Canvas() Canvas     { return ed.canvas }
func (ed *Editor) Guides() Guides     { return ed.guides }
func (ed *Editor) SnapEnabled() bool  { return ed.snapEnabled }
func (ed *Editor) Theme() Theme       { return ed.theme }
func (ed *Editor) SelectedID() string { return ed.selectedID }

// SetCanvas updates the drawing surface, e.g. after a window resize.
// Existing elements are not re-clamped; only the next drag is.
func (ed *Editor) SetCanvas(c Canvas) {
	ed.canvas = c
}

// HitTest resolves a client-space point to the element part under it.
func (ed *Editor) HitTest(client Point) Target {
	return ed.store.hitTest(ed.canvas.local(client), ed.selectedID)
}

// AddShape appends a new element of kind with its defaults on top of the
// stack.
func (ed *Editor) AddShape(kind Kind) (Scene, error) {
	d, ok := defaults[kind]
	if !ok {
		return ed.Scene(), fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	el := Element{
		ID:     ed.store.nextID(),
		Kind:   kind,
		X:      d.x,
		Y:      d.y,
		Width:  d.width,
		Height: d.height,
		Fill:   d.fill,
		Text:   d.text,
	}
	ed.store.Append(el)
	ed.logger.Debug("add shape", "id", el.ID, "kind", kind)
	return ed.commit()
}

// DuplicateSelected clones the selected element with a fresh id, offset
// down and right, places it on top and selects it.
func (ed *Editor) DuplicateSelected() (Scene, error) {
	src := ed.store.Get(ed.selectedID)
	if src == nil {
		return ed.Scene(), nil
	}
	var clone Element
	if err := copier.Copy(&clone, src); err != nil {
		return ed.Scene(), fmt.Errorf("clone %s: %w", src.ID, err)
	}
	clone.ID = ed.store.nextID()
	clone.X += duplicateOffset
	clone.Y += duplicateOffset
	ed.store.Append(clone)
	ed.selectedID = clone.ID
	return ed.commit()
}

// DeleteSelected removes the selected element and clears the selection.
func (ed *Editor) DeleteSelected() (Scene, error) {
	if !ed.store.Remove(ed.selectedID) {
		return ed.Scene(), nil
	}
	ed.logger.Debug("delete", "id", ed.selectedID)
	ed.selectedID = ""
	return ed.commit()
}

// Select makes id the selection; "" clears it. Unknown ids are ignored.
func (ed *Editor) Select(id string) Scene {
	if id == "" || ed.store.Get(id) != nil {
		ed.selectedID = id
	}
	return ed.Scene()
}

// SetProperty edits one field of an element from its textual value.
// Sizes below the minimum are raised to it. Unknown ids are a no-op.
func (ed *Editor) SetProperty(id string, field Field, value string) (Scene, error) {
	el := ed.store.Get(id)
	if el == nil {
		return ed.Scene(), nil
	}

	switch field {
	case FieldFill, "background":
		if _, err := parseFill(value); err != nil {
			return ed.Scene(), fmt.Errorf("%w: %s=%q: %v", ErrInvalidProperty, FieldFill, value, err)
		}
		el.Fill = value
		return ed.commit()
	case FieldText:
		el.Text = value
		return ed.commit()
	}

	n, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return ed.Scene(), fmt.Errorf("%w: %s=%q", ErrInvalidProperty, field, value)
	}
	switch field {
	case FieldX:
		el.X = n
	case FieldY:
		el.Y = n
	case FieldWidth:
		el.Width = math.Max(minElementSize, n)
	case FieldHeight:
		el.Height = math.Max(minElementSize, n)
	case FieldRotation:
		el.Rotation = n
	default:
		return ed.Scene(), fmt.Errorf("%w: unknown field %q", ErrInvalidProperty, field)
	}
	return ed.commit()
}

// MoveLayer swaps the element at index with its neighbor in direction.
func (ed *Editor) MoveLayer(index, direction int) (Scene, error) {
	if !ed.store.moveLayer(index, direction) {
		return ed.Scene(), nil
	}
	return ed.commit()
}

func (ed *Editor) BringToFront(id string) (Scene, error) {
	if !ed.store.raise(id, true) {
		return ed.Scene(), nil
	}
	return ed.commit()
}

func (ed *Editor) SendToBack(id string) (Scene, error) {
	if !ed.store.raise(id, false) {
		return ed.Scene(), nil
	}
	return ed.commit()
}

// Nudge moves the selected element by (dx, dy) from the keyboard, with the
// same clamping and snapping as a drag.
func (ed *Editor) Nudge(dx, dy float64) (Scene, error) {
	if _, ok := ed.gesture.(idle); !ok {
		return ed.Scene(), nil
	}
	el := ed.store.Get(ed.selectedID)
	if el == nil {
		return ed.Scene(), nil
	}
	pos := ed.dragPosition(el, Point{X: el.X + dx, Y: el.Y + dy})
	if pos.X == el.X && pos.Y == el.Y {
		return ed.Scene(), nil
	}
	el.X, el.Y = pos.X, pos.Y
	return ed.commit()
}

// GridSize is the snap step, also used as the keyboard nudge step when
// snapping is on.
func (ed *Editor) GridSize() float64 {
	return ed.gridSize
}

// commit persists the current scene after a mutation.
func (ed *Editor) commit() (Scene, error) {
	if err := ed.Save(context.Background()); err != nil {
		return ed.Scene(), err
	}
	return ed.Scene(), nil
}
