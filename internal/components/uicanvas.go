package components

import (
	"github.com/glide-engine/glide/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// UICanvas is the root container for UI elements. Attach to a GameObject and
// add UI element children; the canvas handles layout and drawing order.
type UICanvas struct {
	engine.BaseComponent

	SortOrder int // Higher values render on top
}

func NewUICanvas() *UICanvas {
	return &UICanvas{}
}

// Draw renders all UI elements under this canvas
func (c *UICanvas) Draw() {
	g := c.GetGameObject()
	if g == nil {
		return
	}

	screenRect := rl.Rectangle{
		Width:  float32(rl.GetScreenWidth()),
		Height: float32(rl.GetScreenHeight()),
	}

	c.drawUIElement(g, screenRect)
}

func (c *UICanvas) drawUIElement(g *engine.GameObject, parentRect rl.Rectangle) {
	if g == nil || !g.Active {
		return
	}

	rt := engine.GetComponent[*RectTransform](g)
	currentRect := parentRect

	if rt != nil {
		rt.CalculateRect(parentRect)
		currentRect = rt.GetScreenRect()
	}

	if panel := engine.GetComponent[*UIPanel](g); panel != nil {
		panel.Draw(currentRect)
	}
	if btn := engine.GetComponent[*UIButton](g); btn != nil {
		btn.Draw(currentRect)
	}
	if text := engine.GetComponent[*UIText](g); text != nil {
		text.Draw(currentRect)
	}

	for _, child := range g.Children {
		c.drawUIElement(child, currentRect)
	}
}

// Update handles UI interaction (clicks, hover)
func (c *UICanvas) Update(deltaTime float32) {
	g := c.GetGameObject()
	if g == nil {
		return
	}

	mousePos := rl.GetMousePosition()
	pressed := rl.IsMouseButtonPressed(rl.MouseLeftButton)
	down := rl.IsMouseButtonDown(rl.MouseLeftButton)
	released := rl.IsMouseButtonReleased(rl.MouseLeftButton)

	screenRect := rl.Rectangle{
		Width:  float32(rl.GetScreenWidth()),
		Height: float32(rl.GetScreenHeight()),
	}

	c.updateUIElement(g, screenRect, mousePos, pressed, down, released)
}

func (c *UICanvas) updateUIElement(g *engine.GameObject, parentRect rl.Rectangle, mousePos rl.Vector2, pressed, down, released bool) {
	if g == nil || !g.Active {
		return
	}

	rt := engine.GetComponent[*RectTransform](g)
	currentRect := parentRect

	if rt != nil {
		rt.CalculateRect(parentRect)
		currentRect = rt.GetScreenRect()
	}

	if btn := engine.GetComponent[*UIButton](g); btn != nil {
		btn.HandleInput(currentRect, mousePos, pressed, down, released)
	}

	for _, child := range g.Children {
		c.updateUIElement(child, currentRect, mousePos, pressed, down, released)
	}
}

// Serialization
func (c *UICanvas) TypeName() string { return "UICanvas" }

func (c *UICanvas) Serialize() map[string]any {
	return map[string]any{
		"sortOrder": c.SortOrder,
	}
}

func (c *UICanvas) Deserialize(data map[string]any) {
	if v, ok := data["sortOrder"].(float64); ok {
		c.SortOrder = int(v)
	}
}

func init() {
	engine.RegisterComponent("UICanvas", func() engine.Serializable {
		return NewUICanvas()
	})
}
