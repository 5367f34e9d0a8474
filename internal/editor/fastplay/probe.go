package fastplay

import (
	"reflect"
)

// The toolbar's layout objects are internal to the editor package: there is
// no exported way to ask whether a registered control is displayed. The probe
// walks the open windows reflectively to find the control's overlay entry.
// None of these names are a stable contract, so every failure collapses to
// "not found" plus a one-time warning.
const (
	toolbarWindowTypeName = "toolbarWindow"
	canvasFieldName       = "Canvas"
	overlaysFieldName     = "Overlays"
	idFieldName           = "ID"
	displayedFieldName    = "Displayed"
)

// overlayHandle wraps the reflected Displayed field of one overlay entry.
type overlayHandle struct {
	displayed reflect.Value
}

func (h overlayHandle) Displayed() bool {
	return h.displayed.Bool()
}

func (h overlayHandle) SetDisplayed(v bool) {
	h.displayed.SetBool(v)
}

// probeOverlay locates the overlay entry for controlID in the toolbar
// window. The second return is false when anything along the path is
// missing or has an unexpected shape; reflection panics are recovered and
// reported the same way.
func (c *Controller) probeOverlay(controlID string) (h overlayHandle, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			c.warnOverlayOnce()
			ok = false
		}
	}()

	if c.cfg.Windows == nil {
		c.warnOverlayOnce()
		return overlayHandle{}, false
	}

	for _, w := range c.cfg.Windows.Windows() {
		v := reflect.ValueOf(w)
		if v.Kind() == reflect.Pointer {
			if v.IsNil() {
				continue
			}
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct || v.Type().Name() != toolbarWindowTypeName {
			continue
		}

		canvas := v.FieldByName(canvasFieldName)
		if !canvas.IsValid() {
			break
		}
		if canvas.Kind() == reflect.Pointer {
			if canvas.IsNil() {
				break
			}
			canvas = canvas.Elem()
		}

		overlays := canvas.FieldByName(overlaysFieldName)
		if !overlays.IsValid() || overlays.Kind() != reflect.Slice {
			break
		}

		for i := 0; i < overlays.Len(); i++ {
			entry := overlays.Index(i)
			if entry.Kind() == reflect.Pointer {
				if entry.IsNil() {
					continue
				}
				entry = entry.Elem()
			}
			id := entry.FieldByName(idFieldName)
			if !id.IsValid() || id.Kind() != reflect.String || id.String() != controlID {
				continue
			}
			displayed := entry.FieldByName(displayedFieldName)
			if !displayed.IsValid() || displayed.Kind() != reflect.Bool || !displayed.CanSet() {
				break
			}
			return overlayHandle{displayed: displayed}, true
		}
		break
	}

	c.warnOverlayOnce()
	return overlayHandle{}, false
}
