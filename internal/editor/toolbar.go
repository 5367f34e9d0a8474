package editor

// ButtonTint selects the toolbar button color scheme.
type ButtonTint int

const (
	TintNeutral ButtonTint = iota
	TintDimmed
	TintAccent
)

// ToolbarButton describes one toolbar control for a single redraw. Factories
// must be pure: same editor state, same descriptor.
type ToolbarButton struct {
	Label   string
	Tooltip string
	Tint    ButtonTint
	OnClick func()
}

// ButtonFactory produces the current descriptor for a registered control.
type ButtonFactory func() ToolbarButton

// Toolbar is the extension surface for the editor's top bar. Registered
// controls get an overlay entry in the internal toolbar window; whether an
// entry is displayed comes from the saved layout and is not queryable
// through this API.
type Toolbar struct {
	window    *toolbarWindow
	factories map[string]ButtonFactory
	order     []string
	hidden    map[string]bool
}

// NewToolbar opens the toolbar window in the registry. Controls listed in
// hidden start out not displayed, matching the user's saved layout.
func NewToolbar(reg *WindowRegistry, hidden []string) *Toolbar {
	t := &Toolbar{
		window:    &toolbarWindow{Title: "Toolbar", Canvas: &overlayCanvas{}},
		factories: make(map[string]ButtonFactory),
		hidden:    make(map[string]bool, len(hidden)),
	}
	for _, id := range hidden {
		t.hidden[id] = true
	}
	reg.Open(t.window)
	return t
}

// Register adds a control to the toolbar at the next free slot.
func (t *Toolbar) Register(id, label string, factory ButtonFactory) {
	if _, exists := t.factories[id]; exists {
		return
	}
	t.factories[id] = factory
	t.order = append(t.order, id)
	t.window.Canvas.Overlays = append(t.window.Canvas.Overlays, &overlayEntry{
		ID:        id,
		Label:     label,
		Displayed: !t.hidden[id],
	})
}

// RequestRedraw signals that a control's state changed. The toolbar is
// immediate-mode and rebuilds every frame, so there is nothing to invalidate;
// the method exists so tooling can report state changes without knowing that.
func (t *Toolbar) RequestRedraw() {}

// HiddenControls returns the ids of controls the user has hidden, for layout
// persistence.
func (t *Toolbar) HiddenControls() []string {
	var ids []string
	for _, o := range t.window.Canvas.Overlays {
		if !o.Displayed {
			ids = append(ids, o.ID)
		}
	}
	return ids
}
