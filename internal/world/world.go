package world

import (
	"github.com/glide-engine/glide/internal/components"
	"github.com/glide-engine/glide/internal/engine"
)

// ScenePath is the default scene file, relative to the project root.
var ScenePath = "assets/scenes/main.json"

// World owns the active scene and its lifecycle.
type World struct {
	Scene *engine.Scene
}

func New() *World {
	return &World{
		Scene: engine.NewScene("Main"),
	}
}

// Initialize loads the default scene. Safe to call before any window exists;
// a missing scene file just leaves the scene empty.
func (w *World) Initialize() {
	if err := w.LoadScene(ScenePath); err != nil {
		return
	}
	w.Scene.Start()
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// Draw renders every canvas in the scene, lowest sort order first.
func (w *World) Draw() {
	type canvasEntry struct {
		canvas *components.UICanvas
		order  int
	}
	var canvases []canvasEntry
	for _, g := range w.Scene.GameObjects {
		if c := engine.GetComponent[*components.UICanvas](g); c != nil {
			canvases = append(canvases, canvasEntry{canvas: c, order: c.SortOrder})
		}
	}
	for i := 0; i < len(canvases)-1; i++ {
		for j := i + 1; j < len(canvases); j++ {
			if canvases[i].order > canvases[j].order {
				canvases[i], canvases[j] = canvases[j], canvases[i]
			}
		}
	}
	for _, entry := range canvases {
		entry.canvas.Draw()
	}
}

// ResetScene discards the live scene and reloads it from disk, undoing all
// play mode changes.
func (w *World) ResetScene() error {
	w.Scene = engine.NewScene(w.Scene.Name)
	if err := w.LoadScene(ScenePath); err != nil {
		return err
	}
	w.Scene.Start()
	return nil
}

// ReloadScripts re-instantiates every script component in place from the
// script registry, preserving serialized props. Used when entering play mode
// so edited script code takes effect without reloading the whole scene.
func (w *World) ReloadScripts() {
	for _, g := range w.Scene.GameObjects {
		w.reloadObjectScripts(g)
	}
}

func (w *World) reloadObjectScripts(g *engine.GameObject) {
	comps := g.Components()
	for i, c := range comps {
		name, props, ok := engine.SerializeScript(c)
		if !ok {
			continue
		}
		if fresh := engine.CreateScript(name, props); fresh != nil {
			fresh.SetGameObject(g)
			fresh.Start()
			comps[i] = fresh
		}
	}
	for _, child := range g.Children {
		w.reloadObjectScripts(child)
	}
}
