package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Shared scene-file encoding helpers. Scene files go through encoding/json,
// so numbers always come back as float64.

func colorToList(c rl.Color) []uint8 {
	return []uint8{c.R, c.G, c.B, c.A}
}

func colorFromList(v any, fallback rl.Color) rl.Color {
	list, ok := v.([]any)
	if !ok || len(list) < 4 {
		return fallback
	}
	ch := func(i int) uint8 {
		f, ok := list[i].(float64)
		if !ok {
			return 0
		}
		return uint8(f)
	}
	return rl.NewColor(ch(0), ch(1), ch(2), ch(3))
}

func vec2ToList(v rl.Vector2) []float32 {
	return []float32{v.X, v.Y}
}

func vec2FromList(v any, fallback rl.Vector2) rl.Vector2 {
	list, ok := v.([]any)
	if !ok || len(list) < 2 {
		return fallback
	}
	x, ok1 := list[0].(float64)
	y, ok2 := list[1].(float64)
	if !ok1 || !ok2 {
		return fallback
	}
	return rl.Vector2{X: float32(x), Y: float32(y)}
}
