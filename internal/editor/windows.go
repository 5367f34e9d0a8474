package editor

// WindowRegistry tracks the editor's open windows. Windows are stored as
// opaque values; most window types are internal to this package.
type WindowRegistry struct {
	windows []any
}

func NewWindowRegistry() *WindowRegistry {
	return &WindowRegistry{}
}

func (r *WindowRegistry) Open(w any) {
	if w == nil {
		return
	}
	r.windows = append(r.windows, w)
}

func (r *WindowRegistry) Close(w any) {
	for i, open := range r.windows {
		if open == w {
			r.windows = append(r.windows[:i], r.windows[i+1:]...)
			return
		}
	}
}

// Windows returns a snapshot of the open windows.
func (r *WindowRegistry) Windows() []any {
	out := make([]any, len(r.windows))
	copy(out, r.windows)
	return out
}

// Internal layout objects backing the top toolbar. These are not part of the
// extension surface: extensions register buttons through Toolbar and have no
// way to query or change an overlay's displayed state.
type toolbarWindow struct {
	Title  string
	Canvas *overlayCanvas
}

type overlayCanvas struct {
	Overlays []*overlayEntry
}

type overlayEntry struct {
	ID        string
	Label     string
	Displayed bool
}

func (c *overlayCanvas) find(id string) *overlayEntry {
	for _, o := range c.Overlays {
		if o.ID == id {
			return o
		}
	}
	return nil
}
