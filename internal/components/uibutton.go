package components

import (
	"github.com/glide-engine/glide/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ButtonState tracks the current visual state of a button
type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonHovered
	ButtonPressed
	ButtonDisabled
)

// UIButton is an interactive button element
type UIButton struct {
	engine.BaseComponent

	NormalColor   rl.Color
	HoverColor    rl.Color
	PressedColor  rl.Color
	DisabledColor rl.Color

	BorderColor rl.Color
	BorderWidth int32

	State    ButtonState
	Disabled bool

	// Multicast click event
	OnClick engine.Event

	// Click requires press and release on the same button
	wasPressed bool
}

func NewUIButton() *UIButton {
	return &UIButton{
		NormalColor:   rl.NewColor(60, 60, 70, 255),
		HoverColor:    rl.NewColor(80, 80, 95, 255),
		PressedColor:  rl.NewColor(100, 100, 120, 255),
		DisabledColor: rl.NewColor(40, 40, 45, 255),
		BorderColor:   rl.NewColor(100, 100, 115, 255),
		BorderWidth:   1,
	}
}

// Draw renders the button background
func (b *UIButton) Draw(rect rl.Rectangle) {
	color := b.NormalColor
	if b.Disabled {
		color = b.DisabledColor
	} else {
		switch b.State {
		case ButtonHovered:
			color = b.HoverColor
		case ButtonPressed:
			color = b.PressedColor
		}
	}

	rl.DrawRectangleRec(rect, color)
	if b.BorderWidth > 0 {
		rl.DrawRectangleLinesEx(rect, float32(b.BorderWidth), b.BorderColor)
	}
}

// HandleInput processes mouse input for the button
func (b *UIButton) HandleInput(rect rl.Rectangle, mousePos rl.Vector2, pressed, down, released bool) {
	if b.Disabled {
		b.State = ButtonDisabled
		return
	}

	isHovered := rl.CheckCollisionPointRec(mousePos, rect)

	if isHovered {
		if down {
			b.State = ButtonPressed
			b.wasPressed = true
		} else {
			b.State = ButtonHovered
		}

		if released && b.wasPressed {
			b.OnClick.Invoke()
			b.wasPressed = false
		}
	} else {
		b.State = ButtonNormal
		if released {
			b.wasPressed = false
		}
	}
}

// Serialization
func (b *UIButton) TypeName() string { return "UIButton" }

func (b *UIButton) Serialize() map[string]any {
	return map[string]any{
		"normalColor":   colorToList(b.NormalColor),
		"hoverColor":    colorToList(b.HoverColor),
		"pressedColor":  colorToList(b.PressedColor),
		"disabledColor": colorToList(b.DisabledColor),
		"borderColor":   colorToList(b.BorderColor),
		"borderWidth":   b.BorderWidth,
		"disabled":      b.Disabled,
	}
}

func (b *UIButton) Deserialize(data map[string]any) {
	b.NormalColor = colorFromList(data["normalColor"], b.NormalColor)
	b.HoverColor = colorFromList(data["hoverColor"], b.HoverColor)
	b.PressedColor = colorFromList(data["pressedColor"], b.PressedColor)
	b.DisabledColor = colorFromList(data["disabledColor"], b.DisabledColor)
	b.BorderColor = colorFromList(data["borderColor"], b.BorderColor)
	if v, ok := data["borderWidth"].(float64); ok {
		b.BorderWidth = int32(v)
	}
	if v, ok := data["disabled"].(bool); ok {
		b.Disabled = v
	}
}

func init() {
	engine.RegisterComponent("UIButton", func() engine.Serializable {
		return NewUIButton()
	})
}
