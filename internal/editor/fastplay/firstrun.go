package fastplay

import (
	"fmt"

	"github.com/glide-engine/glide/internal/editor"
)

// checkedKey is the persisted marker for the one-time visibility prompt.
func checkedKey(controlID string) string {
	return fmt.Sprintf("glide.fastplay.%s.checked", controlID)
}

// InstallStartupCheck schedules the first-run visibility check. Deferred so
// the toolbar has finished registering its controls before the probe runs.
func (c *Controller) InstallStartupCheck(d Deferrer) {
	d.Defer(c.runStartupCheck)
}

// runStartupCheck offers, once per installation, to reveal the toolbar
// button if the user's saved layout hides it. Probe failures still mark the
// check as done so it is not retried on every startup.
func (c *Controller) runStartupCheck() {
	key := checkedKey(ControlID)
	if c.cfg.Prefs.GetBool(key) {
		return
	}

	h, ok := c.probeOverlay(ControlID)
	if !ok {
		c.cfg.Prefs.SetBool(key, true)
		return
	}

	if !h.Displayed() {
		if c.cfg.Dialogs.Confirm(
			"Fast Play",
			"The Fast Play button is hidden in your toolbar layout. Show it?",
			"Show", "Keep hidden",
		) {
			h.SetDisplayed(true)
			c.cfg.Toolbar.RequestRedraw()
		}
	}
	c.cfg.Prefs.SetBool(key, true)
}

// ResetStartupCheck clears the persisted first-run marker.
func (c *Controller) ResetStartupCheck() {
	c.cfg.Prefs.Delete(checkedKey(ControlID))
}

// ToggleButtonVisibility flips the toolbar button's displayed state. Menu
// command; a no-op when the probe cannot find the control.
func (c *Controller) ToggleButtonVisibility() {
	h, ok := c.probeOverlay(ControlID)
	if !ok {
		return
	}
	h.SetDisplayed(!h.Displayed())
	c.cfg.Toolbar.RequestRedraw()
}

// ButtonVisible reports the button's displayed state for the menu checkmark.
// An unknown state reads as not visible.
func (c *Controller) ButtonVisible() bool {
	h, ok := c.probeOverlay(ControlID)
	if !ok {
		return false
	}
	return h.Displayed()
}

// VisibilityCommand returns the checkable menu entry toggling the button.
func (c *Controller) VisibilityCommand() editor.Command {
	return editor.Command{
		Name:     "fastplay.visibility",
		Title:    "Fast Play Button",
		Menu:     "View",
		Run:      c.ToggleButtonVisibility,
		Validate: c.ButtonVisible,
	}
}
