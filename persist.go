package main

import (
	"context"
	"encoding/json"
	"fmt"
)

func encodeElements(elements []Element) ([]byte, error) {
	if elements == nil {
		elements = []Element{}
	}
	return json.Marshal(elements)
}

func decodeElements(data []byte) ([]Element, error) {
	var elements []Element
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedScene, err)
	}
	seen := make(map[string]bool, len(elements))
	for i, e := range elements {
		if !e.Kind.Valid() {
			return nil, fmt.Errorf("%w: element %d has type %q", ErrMalformedScene, i, e.Kind)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrMalformedScene, e.ID)
		}
		seen[e.ID] = true
		if _, err := parseFill(e.Fill); err != nil {
			return nil, fmt.Errorf("%w: element %s: %v", ErrMalformedScene, e.ID, err)
		}
	}
	if elements == nil {
		elements = []Element{}
	}
	return elements, nil
}

// Save overwrites the scene-state key with the full current element list.
func (ed *Editor) Save(ctx context.Context) error {
	data, err := encodeElements(ed.store.elements)
	if err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	if err := ed.storage.Set(ctx, keySceneState, string(data)); err != nil {
		return fmt.Errorf("save scene: %w", err)
	}
	return nil
}

// Load replaces the scene with the stored one. A missing key leaves the
// scene empty. Malformed data fails with ErrMalformedScene and leaves the
// current scene untouched. Stored zIndex values are kept as they are.
func (ed *Editor) Load(ctx context.Context) (Scene, error) {
	raw, ok, err := ed.storage.Get(ctx, keySceneState)
	if err != nil {
		return ed.Scene(), fmt.Errorf("load scene: %w", err)
	}
	if !ok {
		ed.reset(nil)
		return ed.Scene(), nil
	}
	elements, err := decodeElements([]byte(raw))
	if err != nil {
		ed.logger.Warn("stored scene rejected", "key", keySceneState, "err", err)
		return ed.Scene(), err
	}
	ed.reset(elements)
	ed.logger.Debug("scene loaded", "elements", len(elements))
	return ed.Scene(), nil
}

func (ed *Editor) reset(elements []Element) {
	if elements == nil {
		elements = []Element{}
	}
	ed.store.Replace(elements)
	ed.selectedID = ""
	ed.gesture = idle{}
	ed.guides = Guides{}
	ed.changed = false
}

// LoadPreferences reads the theme and snap flags. Unknown values keep the
// current setting.
func (ed *Editor) LoadPreferences(ctx context.Context) error {
	theme, ok, err := ed.storage.Get(ctx, keyEditorTheme)
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}
	if ok && (Theme(theme) == ThemeLight || Theme(theme) == ThemeDark) {
		ed.theme = Theme(theme)
	}

	snapFlag, ok, err := ed.storage.Get(ctx, keyEditorSnap)
	if err != nil {
		return fmt.Errorf("load snap: %w", err)
	}
	if ok {
		switch snapFlag {
		case "1":
			ed.snapEnabled = true
		case "0":
			ed.snapEnabled = false
		}
	}
	return nil
}

func (ed *Editor) SetSnap(enabled bool) error {
	ed.snapEnabled = enabled
	flag := "0"
	if enabled {
		flag = "1"
	}
	if err := ed.storage.Set(context.Background(), keyEditorSnap, flag); err != nil {
		return fmt.Errorf("save snap: %w", err)
	}
	return nil
}

func (ed *Editor) ToggleSnap() error {
	return ed.SetSnap(!ed.snapEnabled)
}

func (ed *Editor) SetTheme(theme Theme) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("unknown theme %q", theme)
	}
	ed.theme = theme
	if err := ed.storage.Set(context.Background(), keyEditorTheme, string(theme)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

func (ed *Editor) ToggleTheme() error {
	if ed.theme == ThemeDark {
		return ed.SetTheme(ThemeLight)
	}
	return ed.SetTheme(ThemeDark)
}
