package fastplay

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glide-engine/glide/internal/editor"
	"github.com/glide-engine/glide/internal/settings"
)

type fakeSettings struct {
	opts settings.PlayModeOptions
}

func (f *fakeSettings) PlayModeOptions() settings.PlayModeOptions     { return f.opts }
func (f *fakeSettings) SetPlayModeOptions(o settings.PlayModeOptions) { f.opts = o }

// fakeHost emits the same ordered transitions as the editor's play-mode
// lifecycle, with the live options sampled between Entering and Entered.
type fakeHost struct {
	playing   bool
	listeners []func(editor.PlayModeState)

	settings       *fakeSettings
	optionsAtEntry settings.PlayModeOptions

	starts, stops int
}

func (f *fakeHost) IsPlaying() bool { return f.playing }

func (f *fakeHost) Subscribe(fn func(editor.PlayModeState)) int {
	f.listeners = append(f.listeners, fn)
	return len(f.listeners) - 1
}

func (f *fakeHost) emit(s editor.PlayModeState) {
	for _, fn := range f.listeners {
		fn(s)
	}
}

func (f *fakeHost) Start() {
	if f.playing {
		return
	}
	f.starts++
	f.emit(editor.PlayModeEntering)
	if f.settings != nil {
		f.optionsAtEntry = f.settings.PlayModeOptions()
	}
	f.playing = true
	f.emit(editor.PlayModeEntered)
}

func (f *fakeHost) Stop() {
	if !f.playing {
		return
	}
	f.stops++
	f.emit(editor.PlayModeExiting)
	f.playing = false
	f.emit(editor.PlayModeExited)
}

type fakeToolbar struct {
	redraws int
}

func (f *fakeToolbar) RequestRedraw() { f.redraws++ }

type fakePrefs map[string]bool

func (f fakePrefs) GetBool(key string) bool        { return f[key] }
func (f fakePrefs) SetBool(key string, value bool) { f[key] = value }
func (f fakePrefs) Delete(key string)              { delete(f, key) }

type fakeDialogs struct {
	answer  bool
	prompts int
}

func (f *fakeDialogs) Confirm(_, _, _, _ string) bool {
	f.prompts++
	return f.answer
}

type fakeWindows struct {
	windows []any
}

func (f *fakeWindows) Windows() []any { return f.windows }

func newTestController(opts settings.PlayModeOptions) (*Controller, *fakeSettings, *fakeHost, *fakeToolbar, *fakeDialogs) {
	s := &fakeSettings{opts: opts}
	h := &fakeHost{settings: s}
	tb := &fakeToolbar{}
	d := &fakeDialogs{}
	c := New(Config{
		Settings: s,
		PlayMode: h,
		Toolbar:  tb,
		Prefs:    fakePrefs{},
		Dialogs:  d,
		Windows:  &fakeWindows{},
	})
	return c, s, h, tb, d
}

func TestEngageRestoresSnapshotAfterCycle(t *testing.T) {
	before := settings.SkipSceneReload
	c, s, h, _, _ := newTestController(before)

	c.Engage()
	assert.Equal(t, settings.PlayModeFast, h.optionsAtEntry, "entry must see the fast options")
	assert.Equal(t, before, s.opts, "snapshot restored once entered")

	c.Disengage()
	assert.Equal(t, before, s.opts)
	assert.False(t, h.playing)
}

func TestRestoreHappensAfterEntryNotBefore(t *testing.T) {
	c, s, h, _, _ := newTestController(settings.PlayModeSafe)

	var sampled []settings.PlayModeOptions
	h.Subscribe(func(state editor.PlayModeState) {
		if state == editor.PlayModeEntering {
			sampled = append(sampled, s.opts)
		}
	})

	c.Engage()
	if assert.Len(t, sampled, 1) {
		assert.Equal(t, settings.PlayModeFast, sampled[0], "options still fast while entering")
	}
	assert.Equal(t, settings.PlayModeSafe, s.opts, "restored after entered")
}

func TestEngageWhilePlayingIsNoOp(t *testing.T) {
	c, s, h, _, _ := newTestController(settings.PlayModeSafe)
	h.playing = true

	c.Engage()
	assert.False(t, c.FastMode())
	assert.Equal(t, settings.PlayModeSafe, s.opts)
	assert.Zero(t, h.starts)
}

func TestAlreadyFastSnapshotNormalization(t *testing.T) {
	t.Run("declined keeps fast snapshot", func(t *testing.T) {
		c, s, _, _, d := newTestController(settings.PlayModeFast)
		d.answer = false

		c.Engage()
		c.Disengage()

		assert.Equal(t, 1, d.prompts)
		assert.Equal(t, settings.PlayModeFast, s.opts)
	})

	t.Run("accepted restores safe default", func(t *testing.T) {
		c, s, _, _, d := newTestController(settings.PlayModeFast)
		d.answer = true

		c.Engage()
		c.Disengage()

		assert.Equal(t, 1, d.prompts)
		assert.Equal(t, settings.PlayModeSafe, s.opts)
	})
}

func TestFastModeFlagLifecycle(t *testing.T) {
	c, _, h, _, _ := newTestController(settings.PlayModeSafe)
	assert.False(t, c.FastMode(), "off at start")

	var atExiting, atExited bool
	h.Subscribe(func(state editor.PlayModeState) {
		switch state {
		case editor.PlayModeExiting:
			atExiting = c.FastMode()
		case editor.PlayModeExited:
			atExited = c.FastMode()
		}
	})

	c.Engage()
	assert.True(t, c.FastMode(), "on while playing")

	c.Disengage()
	assert.False(t, atExited)
	assert.False(t, c.FastMode())
	_ = atExiting // listener order relative to the controller is unspecified
}

func TestPlainPlayModeDoesNotRestore(t *testing.T) {
	c, s, h, _, _ := newTestController(settings.SkipScriptReload)

	// Play started outside the toggle: options must be left alone.
	h.Start()
	assert.False(t, c.FastMode())
	assert.Equal(t, settings.SkipScriptReload, s.opts)
	h.Stop()
	assert.Equal(t, settings.SkipScriptReload, s.opts)
}

func TestEveryTransitionRequestsRedraw(t *testing.T) {
	c, _, _, tb, _ := newTestController(settings.PlayModeSafe)

	c.Engage()
	assert.Equal(t, 2, tb.redraws, "entering and entered")
	c.Disengage()
	assert.Equal(t, 4, tb.redraws, "exiting and exited")
}

func TestShortcutAndButtonShareToggle(t *testing.T) {
	c, s, h, _, _ := newTestController(settings.SkipSceneReload)

	c.Command().Run()
	assert.True(t, h.playing)
	assert.True(t, c.FastMode())
	assert.Equal(t, settings.SkipSceneReload, s.opts)

	c.Button().OnClick()
	assert.False(t, h.playing)
	assert.False(t, c.FastMode())
	assert.Equal(t, settings.SkipSceneReload, s.opts)
}

func TestButtonTintStates(t *testing.T) {
	c, _, h, _, _ := newTestController(settings.PlayModeSafe)

	assert.Equal(t, editor.TintNeutral, c.Button().Tint, "idle")

	h.Start()
	assert.Equal(t, editor.TintDimmed, c.Button().Tint, "playing without fast mode")
	h.Stop()

	c.Engage()
	assert.Equal(t, editor.TintAccent, c.Button().Tint, "fast play session")
}
