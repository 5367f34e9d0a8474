//go:build !game

package editor

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Confirm shows a modal yes/no dialog and blocks the editor loop until the
// user picks an answer or closes the window.
func Confirm(title, message, yes, no string) bool {
	width := float32(420)
	height := float32(160)

	for !rl.WindowShouldClose() {
		screenW := float32(rl.GetScreenWidth())
		screenH := float32(rl.GetScreenHeight())
		bounds := rl.NewRectangle((screenW-width)/2, (screenH-height)/2, width, height)

		rl.BeginDrawing()
		rl.DrawRectangle(0, 0, int32(screenW), int32(screenH), rl.NewColor(0, 0, 0, 160))

		choice := gui.MessageBox(bounds, title, message, fmt.Sprintf("%s;%s", no, yes))
		rl.EndDrawing()

		switch choice {
		case 2:
			return true
		case 0, 1:
			return false
		}
	}
	return false
}
