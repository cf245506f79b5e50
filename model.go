package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

var propertyFields = []Field{FieldX, FieldY, FieldWidth, FieldHeight, FieldRotation, FieldFill, FieldText}

type model struct {
	editor         *Editor
	config         *Config
	width          int
	height         int
	mode           Mode
	help           bool
	propIndex      int
	propInput      string
	errorMessage   string
	successMessage string
}

func initialModel(editor *Editor, config *Config) model {
	return model{
		editor: editor,
		config: config,
		mode:   ModeNormal,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

// canvasCells is the terminal area given to the canvas.
func (m model) canvasCells() (int, int) {
	w := m.width - layerPanelWidth
	h := m.height - statusLines
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// cellPoint maps a terminal cell to the client-space point at its center.
func (m model) cellPoint(x, y int) Point {
	return Point{
		X: (float64(x) + 0.5) * m.config.CellWidth,
		Y: (float64(y) + 0.5) * m.config.CellHeight,
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cw, ch := m.canvasCells()
		m.editor.SetCanvas(Canvas{
			Width:  float64(cw) * m.config.CellWidth,
			Height: float64(ch) * m.config.CellHeight,
		})
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.help {
			m.help = false
			return m, nil
		}
		if m.mode == ModeProperty {
			return m.handlePropertyKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	cw, _ := m.canvasCells()
	p := m.cellPoint(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if msg.X >= cw {
			m.selectLayerRow(msg.Y)
			return m, nil
		}
		m.clearMessages()
		m.editor.PointerDown(p, m.editor.HitTest(p))
	case tea.MouseActionMotion:
		_, err := m.editor.PointerMove(p)
		m.reportError(err)
	case tea.MouseActionRelease:
		_, err := m.editor.PointerUp()
		m.reportError(err)
	}
	return m, nil
}

// selectLayerRow selects the element listed on a layer panel row. Row 0
// is the panel title and the list runs top of stack first.
func (m *model) selectLayerRow(row int) {
	scene := m.editor.Scene()
	i := len(scene.Elements) - row
	if row < 1 || i < 0 || i >= len(scene.Elements) {
		return
	}
	m.editor.Select(scene.Elements[i].ID)
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEscape {
		m.editor.Select("")
		m.clearMessages()
		return m, nil
	}

	key := msg.String()
	var err error
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "?":
		m.help = true
		return m, nil
	case "r":
		_, err = m.editor.AddShape(KindRectangle)
	case "c":
		_, err = m.editor.AddShape(KindCircle)
	case "t":
		_, err = m.editor.AddShape(KindTriangle)
	case "T":
		_, err = m.editor.AddShape(KindText)
	case "d":
		_, err = m.editor.DuplicateSelected()
	case "x", "delete", "backspace":
		_, err = m.editor.DeleteSelected()
	case "tab":
		m.selectNext()
	case "]":
		err = m.moveSelectedLayer(1)
	case "[":
		err = m.moveSelectedLayer(-1)
	case "}":
		_, err = m.editor.BringToFront(m.editor.SelectedID())
	case "{":
		_, err = m.editor.SendToBack(m.editor.SelectedID())
	case "g":
		err = m.editor.ToggleSnap()
		if err == nil {
			m.successMessage = fmt.Sprintf("Snap %s", onOff(m.editor.SnapEnabled()))
		}
	case "D":
		err = m.editor.ToggleTheme()
	case "p":
		if m.editor.SelectedID() != "" {
			m.mode = ModeProperty
			m.propIndex = 0
			m.propInput = m.currentPropertyValue()
		}
	case "s":
		err = m.editor.Save(context.Background())
		if err == nil {
			m.successMessage = "Saved"
		}
	case "e":
		var paths []string
		paths, err = m.editor.exportAll(m.config.ExportDirectory)
		if err == nil {
			m.successMessage = "Exported " + strings.Join(paths, ", ")
		}
	case "E":
		err = m.copyJSONExport()
		if err == nil {
			m.successMessage = "Copied " + exportJSONName + " to clipboard"
		}
	default:
		if dx, dy, ok := m.nudgeDelta(key); ok {
			_, err = m.editor.Nudge(dx, dy)
		}
	}
	m.reportError(err)
	return m, nil
}

func (m *model) moveSelectedLayer(direction int) error {
	i := m.editor.store.IndexOf(m.editor.SelectedID())
	if i < 0 {
		return nil
	}
	_, err := m.editor.MoveLayer(i, direction)
	return err
}

// selectNext cycles the selection from the bottom of the stack upward.
func (m *model) selectNext() {
	scene := m.editor.Scene()
	if len(scene.Elements) == 0 {
		return
	}
	next := 0
	for i, e := range scene.Elements {
		if e.ID == scene.SelectedID {
			next = (i + 1) % len(scene.Elements)
			break
		}
	}
	m.editor.Select(scene.Elements[next].ID)
}

func (m model) handlePropertyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ModeNormal
		m.propInput = ""
		return m, nil
	case tea.KeyEnter:
		field := propertyFields[m.propIndex]
		_, err := m.editor.SetProperty(m.editor.SelectedID(), field, m.propInput)
		m.reportError(err)
		if err == nil {
			m.successMessage = fmt.Sprintf("%s set", field)
			m.mode = ModeNormal
			m.propInput = ""
		}
		return m, nil
	case tea.KeyTab:
		m.propIndex = (m.propIndex + 1) % len(propertyFields)
		m.propInput = m.currentPropertyValue()
		return m, nil
	case tea.KeyShiftTab:
		m.propIndex = (m.propIndex + len(propertyFields) - 1) % len(propertyFields)
		m.propInput = m.currentPropertyValue()
		return m, nil
	case tea.KeyBackspace:
		if r := []rune(m.propInput); len(r) > 0 {
			m.propInput = string(r[:len(r)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.propInput += " "
		return m, nil
	case tea.KeyRunes:
		m.propInput += string(msg.Runes)
		return m, nil
	}
	return m, nil
}

func (m model) currentPropertyValue() string {
	el := m.editor.store.Get(m.editor.SelectedID())
	if el == nil {
		return ""
	}
	switch propertyFields[m.propIndex] {
	case FieldX:
		return num(el.X)
	case FieldY:
		return num(el.Y)
	case FieldWidth:
		return num(el.Width)
	case FieldHeight:
		return num(el.Height)
	case FieldRotation:
		return num(el.Rotation)
	case FieldFill:
		return el.Fill
	case FieldText:
		return el.Text
	}
	return ""
}

func (m *model) clearMessages() {
	m.errorMessage = ""
	m.successMessage = ""
}

func (m *model) reportError(err error) {
	if err == nil {
		return
	}
	m.editor.logger.Error("command failed", "err", err)
	m.successMessage = ""
	m.errorMessage = err.Error()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "°"
}
