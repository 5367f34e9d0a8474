//go:build !game

package editor

import (
	"github.com/charmbracelet/log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/glide-engine/glide/internal/prefs"
	"github.com/glide-engine/glide/internal/settings"
	"github.com/glide-engine/glide/internal/world"
)

// Editor hosts the edit-time tooling: the world being edited, the play-mode
// lifecycle, the command registry, the window registry and the toolbar.
type Editor struct {
	World    *world.World
	Settings *settings.Settings
	Prefs    *prefs.Store

	PlayMode *PlayMode
	Commands *CommandRegistry
	Windows  *WindowRegistry
	Toolbar  *Toolbar

	savedPrefs *EditorPrefs
	deferred   []func()
}

func New() *Editor {
	e := &Editor{
		World:    world.New(),
		Settings: settings.New(),
		Commands: NewCommandRegistry(),
		Windows:  NewWindowRegistry(),
	}

	var hidden []string
	e.savedPrefs = LoadEditorPrefs()
	if p := e.savedPrefs; p != nil {
		e.Settings.SetPlayModeOptions(p.PlayMode)
		hidden = p.HiddenToolbarButtons
		if p.ScenePath != "" {
			world.ScenePath = p.ScenePath
		}
	}

	e.Prefs = prefs.Open(prefs.DefaultPath)

	e.PlayMode = NewPlayMode(e.enterPlay, e.exitPlay)
	e.Toolbar = NewToolbar(e.Windows, hidden)
	return e
}

// enterPlay saves the edited scene, then reloads scripts and scene state
// unless the active play-mode options skip those steps.
func (e *Editor) enterPlay() {
	opts := e.Settings.PlayModeOptions()
	log.Info("entering play mode", "options", opts.String())

	if err := e.World.SaveScene(world.ScenePath); err != nil {
		log.Warn("could not save scene before play", "error", err)
	}
	if !opts.Has(settings.SkipScriptReload) {
		e.World.ReloadScripts()
	}
	if !opts.Has(settings.SkipSceneReload) {
		if err := e.World.ResetScene(); err != nil {
			log.Warn("could not reset scene for play", "error", err)
		}
	}
}

// exitPlay discards play-time mutations by reloading the saved scene.
func (e *Editor) exitPlay() {
	log.Info("exiting play mode")
	if err := e.World.ResetScene(); err != nil {
		log.Warn("could not restore scene after play", "error", err)
	}
}

// Defer queues fn to run once, after the first frame has been presented.
func (e *Editor) Defer(fn func()) {
	if fn != nil {
		e.deferred = append(e.deferred, fn)
	}
}

func (e *Editor) runDeferred() {
	if len(e.deferred) == 0 {
		return
	}
	queue := e.deferred
	e.deferred = nil
	for _, fn := range queue {
		fn()
	}
}

func (e *Editor) handleShortcuts() {
	chords := e.Commands.Chords()
	if len(chords) == 0 {
		return
	}
	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
	shift := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
	alt := rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt)

	for _, chord := range chords {
		if chord.Ctrl != ctrl || chord.Shift != shift || chord.Alt != alt {
			continue
		}
		if len(chord.Key) != 1 {
			continue
		}
		// Letter key codes match their uppercase ASCII value.
		if rl.IsKeyPressed(int32(chord.Key[0])) {
			e.Commands.HandleChord(chord)
		}
	}
}

// Run opens the editor window and drives the frame loop until close.
func (e *Editor) Run() {
	width, height := 1600, 900
	if p := e.savedPrefs; p != nil && p.WindowWidth > 0 && p.WindowHeight > 0 {
		width, height = p.WindowWidth, p.WindowHeight
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(width), int32(height), "Glide Editor")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
	initTheme()

	e.World.Initialize()

	firstFrame := true
	for !rl.WindowShouldClose() {
		e.handleShortcuts()

		if e.PlayMode.IsPlaying() {
			e.World.Update(rl.GetFrameTime())
		}

		rl.BeginDrawing()
		rl.ClearBackground(colorBgDark)
		e.World.Draw()
		e.Toolbar.Draw()
		rl.EndDrawing()

		if firstFrame {
			firstFrame = false
		} else {
			e.runDeferred()
		}
	}

	if e.PlayMode.IsPlaying() {
		e.PlayMode.Stop()
	}
	e.savePrefs()
	rl.CloseWindow()
}

func (e *Editor) savePrefs() {
	p := &EditorPrefs{
		WindowWidth:          rl.GetScreenWidth(),
		WindowHeight:         rl.GetScreenHeight(),
		ScenePath:            world.ScenePath,
		PlayMode:             e.Settings.PlayModeOptions(),
		HiddenToolbarButtons: e.Toolbar.HiddenControls(),
	}
	p.Save()
}
