//go:build game

package editor

import (
	"sync"

	"github.com/charmbracelet/log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/glide-engine/glide/internal/prefs"
	"github.com/glide-engine/glide/internal/settings"
	"github.com/glide-engine/glide/internal/world"
)

// Game builds ship without editor tooling. The exported surface matches the
// editor build so callers need no build tags of their own.
type Editor struct {
	World    *world.World
	Settings *settings.Settings
	Prefs    *prefs.Store

	PlayMode *PlayMode
	Commands *CommandRegistry
	Windows  *WindowRegistry
	Toolbar  *Toolbar
}

var stubWarn sync.Once

func warnStub() {
	stubWarn.Do(func() {
		log.Warn("editor tooling unavailable in game builds")
	})
}

func New() *Editor {
	e := &Editor{
		World:    world.New(),
		Settings: settings.New(),
		Commands: NewCommandRegistry(),
		Windows:  NewWindowRegistry(),
	}
	e.Prefs = prefs.Open(prefs.DefaultPath)
	e.PlayMode = NewPlayMode(nil, nil)
	e.Toolbar = NewToolbar(e.Windows, nil)
	return e
}

func (e *Editor) Defer(_ func()) { warnStub() }

// Run plays the game directly: no toolbar, no shortcuts, no play-mode gate.
func (e *Editor) Run() {
	warnStub()
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(1600, 900, "Glide")
	rl.SetTargetFPS(60)

	e.World.Initialize()

	for !rl.WindowShouldClose() {
		e.World.Update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(10, 10, 15, 255))
		e.World.Draw()
		rl.EndDrawing()
	}
	rl.CloseWindow()
}

func Confirm(_, _, _, _ string) bool {
	warnStub()
	return false
}
