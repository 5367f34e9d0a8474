package world

import (
	"path/filepath"
	"testing"

	"github.com/glide-engine/glide/internal/components"
	"github.com/glide-engine/glide/internal/engine"
)

func TestSceneFileRoundTrip(t *testing.T) {
	w := New()

	canvas := engine.NewGameObject("HUD")
	canvas.AddComponent(components.NewUICanvas())

	label := engine.NewGameObject("Title")
	text := components.NewUIText()
	text.Text = "Glide"
	text.FontSize = 32
	label.AddComponent(components.NewRectTransform())
	label.AddComponent(text)
	canvas.AddChild(label)

	menu := engine.NewGameObject("Menu")
	panel := components.NewUIPanel()
	panel.BorderRadius = 8
	menu.AddComponent(components.NewRectTransform())
	menu.AddComponent(panel)

	start := engine.NewGameObject("StartButton")
	button := components.NewUIButton()
	button.BorderWidth = 2
	start.AddComponent(components.NewRectTransform())
	start.AddComponent(button)
	menu.AddChild(start)
	canvas.AddChild(menu)

	w.Scene.AddGameObject(canvas)

	path := filepath.Join(t.TempDir(), "scene.json")
	if err := w.SaveScene(path); err != nil {
		t.Fatalf("SaveScene failed: %v", err)
	}

	w2 := New()
	if err := w2.LoadScene(path); err != nil {
		t.Fatalf("LoadScene failed: %v", err)
	}

	if len(w2.Scene.GameObjects) != 1 {
		t.Fatalf("Expected 1 root object, got %d", len(w2.Scene.GameObjects))
	}

	root := w2.Scene.FindByName("HUD")
	if root == nil {
		t.Fatal("HUD object not loaded")
	}
	if engine.GetComponent[*components.UICanvas](root) == nil {
		t.Error("UICanvas component not restored")
	}

	if len(root.Children) != 2 {
		t.Fatalf("Expected 2 children, got %d", len(root.Children))
	}
	child := root.Children[0]
	loadedText := engine.GetComponent[*components.UIText](child)
	if loadedText == nil {
		t.Fatal("UIText component not restored")
	}
	if loadedText.Text != "Glide" || loadedText.FontSize != 32 {
		t.Errorf("UIText lost data: %q size %d", loadedText.Text, loadedText.FontSize)
	}

	loadedMenu := root.Children[1]
	loadedPanel := engine.GetComponent[*components.UIPanel](loadedMenu)
	if loadedPanel == nil {
		t.Fatal("UIPanel component not restored")
	}
	if loadedPanel.BorderRadius != 8 {
		t.Errorf("UIPanel lost data: borderRadius %v", loadedPanel.BorderRadius)
	}

	if len(loadedMenu.Children) != 1 {
		t.Fatalf("Expected 1 menu child, got %d", len(loadedMenu.Children))
	}
	loadedButton := engine.GetComponent[*components.UIButton](loadedMenu.Children[0])
	if loadedButton == nil {
		t.Fatal("UIButton component not restored")
	}
	if loadedButton.BorderWidth != 2 {
		t.Errorf("UIButton lost data: borderWidth %d", loadedButton.BorderWidth)
	}
}

func TestLoadSceneMissingFile(t *testing.T) {
	w := New()
	if err := w.LoadScene(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Expected error for missing scene file")
	}
}

type blinkScript struct {
	engine.BaseComponent
	Rate    float32
	started bool
}

func registerBlinkScript() {
	for _, name := range engine.RegisteredScripts() {
		if name == "Blink" {
			return
		}
	}
	engine.RegisterScript("Blink",
		func(props map[string]any) engine.Component {
			s := &blinkScript{Rate: 1}
			if v, ok := props["rate"].(float64); ok {
				s.Rate = float32(v)
			}
			return s
		},
		func(c engine.Component) map[string]any {
			s, ok := c.(*blinkScript)
			if !ok {
				return nil
			}
			return map[string]any{"rate": float64(s.Rate)}
		},
	)
}

func (s *blinkScript) Start() { s.started = true }

func TestReloadScripts(t *testing.T) {
	registerBlinkScript()

	w := New()
	obj := engine.NewGameObject("Blinker")
	obj.AddComponent(&blinkScript{Rate: 3})
	w.Scene.AddGameObject(obj)

	before := engine.GetComponent[*blinkScript](obj)

	w.ReloadScripts()

	after := engine.GetComponent[*blinkScript](obj)
	if after == before {
		t.Error("ReloadScripts did not replace the script instance")
	}
	if after.Rate != 3 {
		t.Errorf("ReloadScripts lost props: rate %v", after.Rate)
	}
	if !after.started {
		t.Error("Reloaded script was not started")
	}
	if after.GetGameObject() != obj {
		t.Error("Reloaded script not attached to its GameObject")
	}
}
