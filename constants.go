package main

// Mode is the terminal host's input mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeProperty
)

// Kind is the closed set of element variants. Adding a kind means adding a
// case to the terminal renderer and to every export format.
type Kind string

const (
	KindRectangle Kind = "rect"
	KindCircle    Kind = "circle"
	KindTriangle  Kind = "triangle"
	KindText      Kind = "text"
)

var kinds = []Kind{KindRectangle, KindCircle, KindTriangle, KindText}

func (k Kind) Valid() bool {
	for _, known := range kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Handle identifies the part of an element a pointer-down landed on.
type Handle int

const (
	HandleNone Handle = iota
	HandleBody
	HandleTopLeft
	HandleTopRight
	HandleBottomLeft
	HandleBottomRight
	HandleRotate
)

func (h Handle) String() string {
	switch h {
	case HandleBody:
		return "body"
	case HandleTopLeft:
		return "top-left"
	case HandleTopRight:
		return "top-right"
	case HandleBottomLeft:
		return "bottom-left"
	case HandleBottomRight:
		return "bottom-right"
	case HandleRotate:
		return "rotate"
	default:
		return "none"
	}
}

func (h Handle) isCorner() bool {
	return h >= HandleTopLeft && h <= HandleBottomRight
}

// Field names accepted by SetProperty.
type Field string

const (
	FieldX        Field = "x"
	FieldY        Field = "y"
	FieldWidth    Field = "width"
	FieldHeight   Field = "height"
	FieldRotation Field = "rotation"
	FieldFill     Field = "fill"
	FieldText     Field = "text"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type SavePolicy string

const (
	SaveEveryStep SavePolicy = "step"
	SaveOnCommit  SavePolicy = "commit"
)

const (
	minElementSize  = 30.0
	defaultGridSize = 10.0
	duplicateOffset = 20.0
	handleSize      = 10.0
	rotateHandleGap = 25.0
	idPrefix        = "el-"
)

// Durable storage keys.
const (
	keySceneState  = "scene-state"
	keyEditorTheme = "editor-theme"
	keyEditorSnap  = "editor-snap"
)

const (
	layerPanelWidth = 24
	statusLines     = 2
)

const (
	exportJSONName = "design.json"
	exportHTMLName = "design.html"
	exportPNGName  = "design.png"
)
