//go:build !game

package editor

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	topBarHeight   = 42
	pillHeight     = 28
	pillPadding    = 14
	pillSpacing    = 8
	pillFontSize   = 15
	tooltipPadding = 6
)

func tintColor(t ButtonTint) rl.Color {
	switch t {
	case TintAccent:
		return colorAccent
	case TintDimmed:
		return colorBgElement
	default:
		return colorBgHover
	}
}

// Draw renders the top bar with one pill button per displayed control and
// dispatches clicks to the registered factories.
func (t *Toolbar) Draw() {
	screenW := int32(rl.GetScreenWidth())
	rl.DrawRectangle(0, 0, screenW, topBarHeight, colorBgPanel)
	rl.DrawLine(0, topBarHeight, screenW, topBarHeight, colorBorder)

	mouse := rl.GetMousePosition()
	clicked := rl.IsMouseButtonPressed(rl.MouseLeftButton)

	x := float32(12)
	y := float32((topBarHeight - pillHeight) / 2)
	var tooltip string
	var tooltipX float32

	for _, id := range t.order {
		entry := t.window.Canvas.find(id)
		if entry == nil || !entry.Displayed {
			continue
		}
		factory := t.factories[id]
		if factory == nil {
			continue
		}
		button := factory()

		textW := float32(rl.MeasureText(button.Label, pillFontSize))
		bounds := rl.NewRectangle(x, y, textW+2*pillPadding, pillHeight)
		hovered := rl.CheckCollisionPointRec(mouse, bounds)

		bg := tintColor(button.Tint)
		if hovered && button.Tint != TintAccent {
			bg = colorBgHover
		}
		rl.DrawRectangleRounded(bounds, 0.5, 8, bg)

		textColor := colorTextSecondary
		if button.Tint == TintAccent {
			textColor = colorTextPrimary
		} else if button.Tint == TintDimmed {
			textColor = colorTextMuted
		}
		drawTextEx(editorFont, button.Label,
			int32(bounds.X+pillPadding), int32(bounds.Y+(pillHeight-pillFontSize)/2),
			pillFontSize, textColor)

		if hovered {
			if button.Tooltip != "" {
				tooltip = button.Tooltip
				tooltipX = bounds.X
			}
			if clicked && button.OnClick != nil {
				button.OnClick()
			}
		}

		x += bounds.Width + pillSpacing
	}

	if tooltip != "" {
		tw := float32(rl.MeasureText(tooltip, 13))
		bounds := rl.NewRectangle(tooltipX, topBarHeight+4, tw+2*tooltipPadding, 22)
		rl.DrawRectangleRounded(bounds, 0.3, 6, colorBgElement)
		drawTextEx(editorFont, tooltip,
			int32(bounds.X+tooltipPadding), int32(bounds.Y+4), 13, colorTextSecondary)
	}
}
