package main

// nudgeDelta maps a movement key to a keyboard move of the selected
// element, in canvas pixels. Shifted keys move ten times as far. With
// snapping on every step is one grid cell so the snap never undoes it.
func (m model) nudgeDelta(key string) (float64, float64, bool) {
	step := m.getNudgeStep(key)
	switch key {
	case "h", "left", "H", "shift+left":
		return -step, 0, true
	case "l", "right", "L", "shift+right":
		return step, 0, true
	case "k", "up", "K", "shift+up":
		return 0, -step, true
	case "j", "down", "J", "shift+down":
		return 0, step, true
	}
	return 0, 0, false
}

func (m model) getNudgeStep(key string) float64 {
	step := 1.0
	if m.editor.SnapEnabled() {
		step = m.editor.GridSize()
	}
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return step * 10
	default:
		return step
	}
}
