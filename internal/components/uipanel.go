package components

import (
	"github.com/glide-engine/glide/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// UIPanel is a background panel/container
type UIPanel struct {
	engine.BaseComponent

	Color        rl.Color
	BorderColor  rl.Color
	BorderWidth  int32
	BorderRadius float32 // 0 = sharp corners
}

func NewUIPanel() *UIPanel {
	return &UIPanel{
		Color:       rl.NewColor(30, 30, 40, 200),
		BorderColor: rl.NewColor(60, 60, 75, 255),
		BorderWidth: 1,
	}
}

// Draw renders the panel background
func (p *UIPanel) Draw(rect rl.Rectangle) {
	if p.BorderRadius > 0 {
		rl.DrawRectangleRounded(rect, p.BorderRadius/rect.Height, 8, p.Color)
		if p.BorderWidth > 0 {
			rl.DrawRectangleRoundedLinesEx(rect, p.BorderRadius/rect.Height, 8, float32(p.BorderWidth), p.BorderColor)
		}
	} else {
		rl.DrawRectangleRec(rect, p.Color)
		if p.BorderWidth > 0 {
			rl.DrawRectangleLinesEx(rect, float32(p.BorderWidth), p.BorderColor)
		}
	}
}

// Serialization
func (p *UIPanel) TypeName() string { return "UIPanel" }

func (p *UIPanel) Serialize() map[string]any {
	return map[string]any{
		"color":        colorToList(p.Color),
		"borderColor":  colorToList(p.BorderColor),
		"borderWidth":  p.BorderWidth,
		"borderRadius": p.BorderRadius,
	}
}

func (p *UIPanel) Deserialize(data map[string]any) {
	p.Color = colorFromList(data["color"], p.Color)
	p.BorderColor = colorFromList(data["borderColor"], p.BorderColor)
	if v, ok := data["borderWidth"].(float64); ok {
		p.BorderWidth = int32(v)
	}
	if v, ok := data["borderRadius"].(float64); ok {
		p.BorderRadius = float32(v)
	}
}

func init() {
	engine.RegisterComponent("UIPanel", func() engine.Serializable {
		return NewUIPanel()
	})
}
