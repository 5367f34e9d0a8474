package components

import (
	"github.com/glide-engine/glide/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AnchorPreset configures common anchor layouts.
type AnchorPreset int

const (
	AnchorTopLeft AnchorPreset = iota
	AnchorTopCenter
	AnchorTopRight
	AnchorMiddleCenter
	AnchorBottomCenter
	AnchorStretchAll
)

// RectTransform positions UI elements in screen space with anchoring.
// Anchors define position relative to the parent rect; AnchoredPosition and
// SizeDelta are pixel offsets from those anchors.
type RectTransform struct {
	engine.BaseComponent

	// Anchor points in 0-1 parent space. Equal anchors form a point anchor.
	AnchorMin rl.Vector2
	AnchorMax rl.Vector2

	// Pivot in 0-1 element space.
	Pivot rl.Vector2

	AnchoredPosition rl.Vector2
	SizeDelta        rl.Vector2

	screenRect rl.Rectangle
}

func NewRectTransform() *RectTransform {
	return &RectTransform{
		AnchorMin:        rl.Vector2{X: 0.5, Y: 0.5},
		AnchorMax:        rl.Vector2{X: 0.5, Y: 0.5},
		Pivot:            rl.Vector2{X: 0.5, Y: 0.5},
		AnchoredPosition: rl.Vector2{},
		SizeDelta:        rl.Vector2{X: 100, Y: 30},
	}
}

// SetAnchorPreset configures anchors and pivot from a preset.
func (rt *RectTransform) SetAnchorPreset(preset AnchorPreset) {
	point := func(x, y float32) {
		rt.AnchorMin = rl.Vector2{X: x, Y: y}
		rt.AnchorMax = rl.Vector2{X: x, Y: y}
		rt.Pivot = rl.Vector2{X: x, Y: y}
	}
	switch preset {
	case AnchorTopLeft:
		point(0, 0)
	case AnchorTopCenter:
		point(0.5, 0)
	case AnchorTopRight:
		point(1, 0)
	case AnchorMiddleCenter:
		point(0.5, 0.5)
	case AnchorBottomCenter:
		point(0.5, 1)
	case AnchorStretchAll:
		rt.AnchorMin = rl.Vector2{X: 0, Y: 0}
		rt.AnchorMax = rl.Vector2{X: 1, Y: 1}
		rt.Pivot = rl.Vector2{X: 0.5, Y: 0.5}
	}
}

// GetScreenRect returns the rect computed by the last CalculateRect call.
func (rt *RectTransform) GetScreenRect() rl.Rectangle {
	return rt.screenRect
}

// CalculateRect computes the screen rect from the parent rect and anchors.
func (rt *RectTransform) CalculateRect(parentRect rl.Rectangle) {
	anchorMinX := parentRect.X + parentRect.Width*rt.AnchorMin.X
	anchorMinY := parentRect.Y + parentRect.Height*rt.AnchorMin.Y
	anchorMaxX := parentRect.X + parentRect.Width*rt.AnchorMax.X
	anchorMaxY := parentRect.Y + parentRect.Height*rt.AnchorMax.Y

	var x, y, width, height float32

	if rt.AnchorMin.X == rt.AnchorMax.X && rt.AnchorMin.Y == rt.AnchorMax.Y {
		// Point anchor: SizeDelta is the element size
		width = rt.SizeDelta.X
		height = rt.SizeDelta.Y
		x = anchorMinX + rt.AnchoredPosition.X - width*rt.Pivot.X
		y = anchorMinY + rt.AnchoredPosition.Y - height*rt.Pivot.Y
	} else {
		// Stretched anchors: SizeDelta acts as insets
		x = anchorMinX + rt.AnchoredPosition.X
		y = anchorMinY + rt.AnchoredPosition.Y
		width = (anchorMaxX - anchorMinX) + rt.SizeDelta.X
		height = (anchorMaxY - anchorMinY) + rt.SizeDelta.Y
	}

	rt.screenRect = rl.Rectangle{X: x, Y: y, Width: width, Height: height}
}

// ContainsPoint checks if a screen point is inside the computed rect.
func (rt *RectTransform) ContainsPoint(point rl.Vector2) bool {
	return rl.CheckCollisionPointRec(point, rt.screenRect)
}

// Serialization
func (rt *RectTransform) TypeName() string { return "RectTransform" }

func (rt *RectTransform) Serialize() map[string]any {
	return map[string]any{
		"anchorMin":        vec2ToList(rt.AnchorMin),
		"anchorMax":        vec2ToList(rt.AnchorMax),
		"pivot":            vec2ToList(rt.Pivot),
		"anchoredPosition": vec2ToList(rt.AnchoredPosition),
		"sizeDelta":        vec2ToList(rt.SizeDelta),
	}
}

func (rt *RectTransform) Deserialize(data map[string]any) {
	rt.AnchorMin = vec2FromList(data["anchorMin"], rt.AnchorMin)
	rt.AnchorMax = vec2FromList(data["anchorMax"], rt.AnchorMax)
	rt.Pivot = vec2FromList(data["pivot"], rt.Pivot)
	rt.AnchoredPosition = vec2FromList(data["anchoredPosition"], rt.AnchoredPosition)
	rt.SizeDelta = vec2FromList(data["sizeDelta"], rt.SizeDelta)
}

func init() {
	engine.RegisterComponent("RectTransform", func() engine.Serializable {
		return NewRectTransform()
	})
}
