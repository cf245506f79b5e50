package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	canvas    lipgloss.Color
	textFg    lipgloss.Color
	handle    lipgloss.Color
	guide     lipgloss.Color
	statusFg  lipgloss.Color
	statusBg  lipgloss.Color
	panelFg   lipgloss.Color
	panelSel  lipgloss.Color
	errorFg   lipgloss.Color
	successFg lipgloss.Color
}

var palettes = map[Theme]palette{
	ThemeDark: {
		canvas:    lipgloss.Color("#1e1e1e"),
		textFg:    lipgloss.Color("#ffffff"),
		handle:    lipgloss.Color("#f2c94c"),
		guide:     lipgloss.Color("#bb6bd9"),
		statusFg:  lipgloss.Color("#e0e0e0"),
		statusBg:  lipgloss.Color("#333333"),
		panelFg:   lipgloss.Color("#bdbdbd"),
		panelSel:  lipgloss.Color("#f2c94c"),
		errorFg:   lipgloss.Color("#eb5757"),
		successFg: lipgloss.Color("#6fcf97"),
	},
	ThemeLight: {
		canvas:    lipgloss.Color("#fafafa"),
		textFg:    lipgloss.Color("#ffffff"),
		handle:    lipgloss.Color("#2d9cdb"),
		guide:     lipgloss.Color("#9b51e0"),
		statusFg:  lipgloss.Color("#333333"),
		statusBg:  lipgloss.Color("#e0e0e0"),
		panelFg:   lipgloss.Color("#4f4f4f"),
		panelSel:  lipgloss.Color("#2d9cdb"),
		errorFg:   lipgloss.Color("#c0392b"),
		successFg: lipgloss.Color("#219653"),
	},
}

type cell struct {
	r      rune
	fg, bg lipgloss.Color
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}
	if m.width == 0 || m.height == 0 {
		return ""
	}

	pal := palettes[m.editor.Theme()]
	cw, ch := m.canvasCells()
	canvasRows := m.renderCanvas(cw, ch, pal)
	panelRows := m.renderLayerPanel(ch, pal)

	var result strings.Builder
	for y := 0; y < ch; y++ {
		result.WriteString(canvasRows[y])
		result.WriteString(panelRows[y])
		result.WriteString("\n")
	}
	result.WriteString(m.renderStatus(pal))
	return result.String()
}

// renderCanvas samples every cell center against the scene, painting
// bottom to top, then overlays handles and snap guides.
func (m model) renderCanvas(cw, ch int, pal palette) []string {
	grid := make([][]cell, ch)
	for y := range grid {
		grid[y] = make([]cell, cw)
		for x := range grid[y] {
			grid[y][x] = cell{r: ' ', fg: pal.textFg, bg: pal.canvas}
		}
	}

	scene := m.editor.Scene()
	for i := range scene.Elements {
		m.paintElement(grid, &scene.Elements[i], pal)
	}
	if sel := scene.Find(scene.SelectedID); sel != nil {
		m.paintHandles(grid, sel, pal)
	}
	if g := m.editor.Guides(); g.Visible {
		m.paintGuides(grid, g, pal)
	}

	rows := make([]string, ch)
	for y := range grid {
		rows[y] = renderRow(grid[y])
	}
	return rows
}

func (m model) cellOf(p Point) (int, int) {
	return int(math.Floor(p.X / m.config.CellWidth)), int(math.Floor(p.Y / m.config.CellHeight))
}

func (m model) paintElement(grid [][]cell, e *Element, pal palette) {
	canvas := m.editor.Canvas()
	minX, minY, maxX, maxY := m.cellBounds(e, len(grid[0]), len(grid))
	fill := lipgloss.Color(hexFill(e.Fill))
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if containsBody(e, canvas.local(m.cellPoint(x, y))) {
				grid[y][x] = cell{r: ' ', fg: pal.textFg, bg: fill}
			}
		}
	}
	if e.Kind != KindText || e.Text == "" {
		return
	}
	cx, cy := m.cellOf(e.Rect().Center())
	runes := []rune(e.Text)
	start := cx - len(runes)/2
	for i, r := range runes {
		x := start + i
		if cy < 0 || cy >= len(grid) || x < 0 || x >= len(grid[cy]) {
			continue
		}
		if grid[cy][x].bg == fill {
			grid[cy][x].r = r
		}
	}
}

// cellBounds is the cell range covering e's rotated bounding box, clipped
// to the grid.
func (m model) cellBounds(e *Element, cols, rows int) (int, int, int, int) {
	r := e.Rect()
	c := r.Center()
	corners := []Point{
		{X: r.X, Y: r.Y}, {X: r.X + r.Width, Y: r.Y},
		{X: r.X, Y: r.Y + r.Height}, {X: r.X + r.Width, Y: r.Y + r.Height},
	}
	lo := Point{X: math.Inf(1), Y: math.Inf(1)}
	hi := Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range corners {
		q := rotateAbout(p, c, e.Rotation)
		lo.X, lo.Y = math.Min(lo.X, q.X), math.Min(lo.Y, q.Y)
		hi.X, hi.Y = math.Max(hi.X, q.X), math.Max(hi.Y, q.Y)
	}
	minX, minY := m.cellOf(lo)
	maxX, maxY := m.cellOf(hi)
	return max(minX, 0), max(minY, 0), min(maxX, cols-1), min(maxY, rows-1)
}

func (m model) paintHandles(grid [][]cell, e *Element, pal palette) {
	c := e.Rect().Center()
	for h, r := range handles(e) {
		p := rotateAbout(r.Center(), c, e.Rotation)
		x, y := m.cellOf(p)
		if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
			continue
		}
		mark := '■'
		if h == HandleRotate {
			mark = '◉'
		}
		grid[y][x].r = mark
		grid[y][x].fg = pal.handle
	}
}

func (m model) paintGuides(grid [][]cell, g Guides, pal palette) {
	gx, gy := m.cellOf(Point{X: g.X, Y: g.Y})
	for y := range grid {
		if gx >= 0 && gx < len(grid[y]) {
			grid[y][gx].r = '│'
			grid[y][gx].fg = pal.guide
		}
	}
	if gy >= 0 && gy < len(grid) {
		for x := range grid[gy] {
			grid[gy][x].r = '─'
			grid[gy][x].fg = pal.guide
		}
	}
}

// renderRow styles runs of cells sharing colors with one lipgloss call.
func renderRow(row []cell) string {
	var b strings.Builder
	start := 0
	for i := 1; i <= len(row); i++ {
		if i < len(row) && row[i].fg == row[start].fg && row[i].bg == row[start].bg {
			continue
		}
		var run strings.Builder
		for _, c := range row[start:i] {
			run.WriteRune(c.r)
		}
		style := lipgloss.NewStyle().Foreground(row[start].fg).Background(row[start].bg)
		b.WriteString(style.Render(run.String()))
		start = i
	}
	return b.String()
}

func (m model) renderLayerPanel(rows int, pal palette) []string {
	base := lipgloss.NewStyle().Width(layerPanelWidth).MaxWidth(layerPanelWidth).Foreground(pal.panelFg)
	selected := base.Foreground(pal.panelSel).Bold(true)

	scene := m.editor.Scene()
	lines := make([]string, rows)
	lines[0] = base.Bold(true).Render(" Layers")
	for row := 1; row < rows; row++ {
		i := len(scene.Elements) - row
		if i < 0 {
			lines[row] = base.Render("")
			continue
		}
		e := scene.Elements[i]
		text := fmt.Sprintf(" %2d %-6s %s", e.ZIndex, e.ID, e.Kind)
		if e.ID == scene.SelectedID {
			lines[row] = selected.Render("▸" + text[1:])
		} else {
			lines[row] = base.Render(text)
		}
	}
	return lines
}

func (m model) renderStatus(pal palette) string {
	bar := lipgloss.NewStyle().Width(m.width).MaxWidth(m.width).Foreground(pal.statusFg).Background(pal.statusBg)

	scene := m.editor.Scene()
	info := fmt.Sprintf(" %s | snap %s | %d elements", m.editor.GestureState(), onOff(m.editor.SnapEnabled()), len(scene.Elements))
	if sel := scene.Find(scene.SelectedID); sel != nil {
		info += fmt.Sprintf(" | %s %s x=%s y=%s %sx%s %s %s", sel.ID, sel.Kind,
			num(math.Round(sel.X)), num(math.Round(sel.Y)),
			num(math.Round(sel.Width)), num(math.Round(sel.Height)),
			formatDegrees(sel.Rotation), sel.Fill)
	}

	var second string
	switch {
	case m.mode == ModeProperty:
		second = fmt.Sprintf(" %s: %s█  (tab next field, enter apply, esc cancel)", propertyFields[m.propIndex], m.propInput)
	case m.errorMessage != "":
		second = lipgloss.NewStyle().Foreground(pal.errorFg).Render(" " + m.errorMessage)
	case m.successMessage != "":
		second = lipgloss.NewStyle().Foreground(pal.successFg).Render(" " + m.successMessage)
	default:
		second = " r/c/t/T add  d dup  x del  [ ] layer  g snap  p props  e export  ? help"
	}
	return bar.Render(info) + "\n" + second
}

func (m model) helpView() string {
	lines := []string{
		"scened help",
		"===========",
		"",
		"Shapes:",
		"  r / c / t / T    Add rectangle / circle / triangle / text",
		"  d                Duplicate selected element",
		"  x / Delete       Delete selected element",
		"  tab              Select next element",
		"  Esc              Clear selection",
		"",
		"Mouse:",
		"  drag body        Move (clamped to the canvas, snapped when snap is on)",
		"  drag ■ corner    Resize (triangles have one corner)",
		"  drag ◉           Rotate",
		"",
		"Keyboard move:",
		"  h/j/k/l, arrows  Nudge selected element",
		"  Shift+direction  Nudge 10x",
		"",
		"Layers:",
		"  [ / ]            Move selected down / up one layer",
		"  { / }            Send to back / bring to front",
		"",
		"Other:",
		"  p                Edit properties of the selection",
		"  g                Toggle grid snapping",
		"  D                Toggle light/dark theme",
		"  s                Save now",
		"  e                Export design.json, design.html and design.png",
		"  E                Copy JSON export to clipboard",
		"  q / Ctrl+C       Quit",
		"",
		"Press any key to close this help.",
	}
	return strings.Join(lines, "\n")
}
