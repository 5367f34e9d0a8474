// Package fastplay adds a toolbar toggle that enters play mode with the
// script-reload and scene-reload steps skipped, then restores the user's
// play-mode options once the session is running.
package fastplay

import (
	"github.com/charmbracelet/log"

	"github.com/glide-engine/glide/internal/editor"
	"github.com/glide-engine/glide/internal/settings"
)

// ControlID identifies the toolbar control and namespaces persisted keys.
const ControlID = "fastplay"

// DefaultChord is the keyboard binding for the toggle command.
var DefaultChord = editor.Chord{Ctrl: true, Shift: true, Key: "P"}

// SettingsAccessor reads and writes the live play-mode options.
type SettingsAccessor interface {
	PlayModeOptions() settings.PlayModeOptions
	SetPlayModeOptions(settings.PlayModeOptions)
}

// PlayModeHost controls and observes the editor's play-mode lifecycle.
type PlayModeHost interface {
	IsPlaying() bool
	Start()
	Stop()
	Subscribe(func(editor.PlayModeState)) int
}

// Redrawer requests a toolbar redraw.
type Redrawer interface {
	RequestRedraw()
}

// PrefStore persists flags across editor runs.
type PrefStore interface {
	GetBool(key string) bool
	SetBool(key string, value bool)
	Delete(key string)
}

// Dialogs shows a modal yes/no prompt.
type Dialogs interface {
	Confirm(title, message, yes, no string) bool
}

// WindowLister exposes the open editor windows for the visibility probe.
type WindowLister interface {
	Windows() []any
}

// Deferrer schedules a callback to run after editor startup settles.
type Deferrer interface {
	Defer(func())
}

// Config wires the controller to its host editor.
type Config struct {
	Settings SettingsAccessor
	PlayMode PlayModeHost
	Toolbar  Redrawer
	Prefs    PrefStore
	Dialogs  Dialogs
	Windows  WindowLister
}

// Controller owns the fast-play toggle state: the play-mode options captured
// before engaging, and whether fast mode is currently engaged.
type Controller struct {
	cfg Config

	fastMode bool
	snapshot settings.PlayModeOptions

	overlayWarned bool
}

// New builds a controller and subscribes it to play-mode transitions.
func New(cfg Config) *Controller {
	c := &Controller{cfg: cfg}
	cfg.PlayMode.Subscribe(c.handleTransition)
	return c
}

// FastMode reports whether fast mode is engaged for the current cycle.
func (c *Controller) FastMode() bool {
	return c.fastMode
}

// Engage captures the current play-mode options, switches the live options
// to fast, and starts play mode. No-op while already playing.
func (c *Controller) Engage() {
	if c.cfg.PlayMode.IsPlaying() {
		return
	}

	snapshot := c.cfg.Settings.PlayModeOptions()
	if snapshot == settings.PlayModeFast {
		// Restoring a fast snapshot after the session would leave the user
		// stuck in fast mode. Offer to restore the safe default instead.
		if c.cfg.Dialogs.Confirm(
			"Fast Play",
			"Play mode is already set to skip reloads. Restore the safe default after this session?",
			"Restore safe", "Keep as is",
		) {
			snapshot = settings.PlayModeSafe
		}
	}

	c.snapshot = snapshot
	c.fastMode = true
	c.cfg.Settings.SetPlayModeOptions(settings.PlayModeFast)
	c.cfg.PlayMode.Start()
}

// Disengage stops play mode. Restoration happens on the exit transition.
func (c *Controller) Disengage() {
	c.cfg.PlayMode.Stop()
}

// Toggle engages fast play when idle and stops the session when playing.
// Bound to both the toolbar button and the keyboard shortcut.
func (c *Controller) Toggle() {
	if c.cfg.PlayMode.IsPlaying() {
		c.Disengage()
	} else {
		c.Engage()
	}
}

// handleTransition restores the snapshot once play mode is entered, so the
// fast options are still live when the entry steps consult them, and clears
// fast mode on the way out.
func (c *Controller) handleTransition(state editor.PlayModeState) {
	switch state {
	case editor.PlayModeEntered:
		if c.fastMode {
			c.cfg.Settings.SetPlayModeOptions(c.snapshot)
		}
	case editor.PlayModeExiting:
		c.fastMode = false
	}
	c.cfg.Toolbar.RequestRedraw()
}

// Button is the toolbar factory: a pure function of the controller state.
func (c *Controller) Button() editor.ToolbarButton {
	playing := c.cfg.PlayMode.IsPlaying()

	tint := editor.TintNeutral
	switch {
	case playing && c.fastMode:
		tint = editor.TintAccent
	case playing:
		tint = editor.TintDimmed
	}

	return editor.ToolbarButton{
		Label:   "Fast Play",
		Tooltip: "Enter play mode without reloading scripts or the scene",
		Tint:    tint,
		OnClick: c.Toggle,
	}
}

// Command returns the shortcut-bound toggle command for registration.
func (c *Controller) Command() editor.Command {
	return editor.Command{
		Name:  "fastplay.toggle",
		Title: "Toggle Fast Play",
		Chord: DefaultChord,
		Run:   c.Toggle,
	}
}

func (c *Controller) warnOverlayOnce() {
	if c.overlayWarned {
		return
	}
	c.overlayWarned = true
	log.Warn("cannot manage toolbar button visibility automatically", "control", ControlID)
}
