package world

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/glide-engine/glide/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type SceneFile struct {
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name       string         `json:"name"`
	Tags       []string       `json:"tags,omitempty"`
	Position   [3]float32     `json:"position"`
	Rotation   [3]float32     `json:"rotation"`
	Scale      [3]float32     `json:"scale"`
	Components []ComponentDef `json:"components,omitempty"`
	Children   []ObjectDef    `json:"children,omitempty"`
}

type ComponentDef struct {
	Type  string         `json:"type"`
	Name  string         `json:"name,omitempty"`  // script name when Type == "Script"
	Props map[string]any `json:"props,omitempty"` // script props
	Data  map[string]any `json:"data,omitempty"`  // registered component data
}

// --- Loading ---

func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}

	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse scene: %w", err)
	}

	for _, objDef := range sf.Objects {
		w.Scene.AddGameObject(buildObject(objDef))
	}

	return nil
}

func buildObject(def ObjectDef) *engine.GameObject {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	g.Transform.Position = rl.Vector3{X: def.Position[0], Y: def.Position[1], Z: def.Position[2]}
	g.Transform.Rotation = rl.Vector3{X: def.Rotation[0], Y: def.Rotation[1], Z: def.Rotation[2]}

	// Default scale to 1 if zero
	if def.Scale == [3]float32{} {
		g.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
	} else {
		g.Transform.Scale = rl.Vector3{X: def.Scale[0], Y: def.Scale[1], Z: def.Scale[2]}
	}

	for _, cd := range def.Components {
		if cd.Type == "Script" {
			if comp := engine.CreateScript(cd.Name, cd.Props); comp != nil {
				g.AddComponent(comp)
			}
			continue
		}
		if comp := engine.CreateComponent(cd.Type); comp != nil {
			comp.Deserialize(cd.Data)
			g.AddComponent(comp)
		}
	}

	for _, childDef := range def.Children {
		g.AddChild(buildObject(childDef))
	}

	return g
}

// --- Saving ---

func (w *World) SaveScene(path string) error {
	var sf SceneFile

	for _, g := range w.Scene.GameObjects {
		sf.Objects = append(sf.Objects, serializeObject(g))
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}

	return nil
}

func serializeObject(g *engine.GameObject) ObjectDef {
	def := ObjectDef{
		Name:     g.Name,
		Tags:     g.Tags,
		Position: [3]float32{g.Transform.Position.X, g.Transform.Position.Y, g.Transform.Position.Z},
		Rotation: [3]float32{g.Transform.Rotation.X, g.Transform.Rotation.Y, g.Transform.Rotation.Z},
		Scale:    [3]float32{g.Transform.Scale.X, g.Transform.Scale.Y, g.Transform.Scale.Z},
	}

	for _, c := range g.Components() {
		if s, ok := c.(engine.Serializable); ok {
			def.Components = append(def.Components, ComponentDef{
				Type: s.TypeName(),
				Data: s.Serialize(),
			})
			continue
		}
		if name, props, ok := engine.SerializeScript(c); ok {
			def.Components = append(def.Components, ComponentDef{
				Type:  "Script",
				Name:  name,
				Props: props,
			})
		}
	}

	for _, child := range g.Children {
		def.Children = append(def.Children, serializeObject(child))
	}

	return def
}
