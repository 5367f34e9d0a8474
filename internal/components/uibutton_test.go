package components

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestUIButtonClickRequiresPressAndRelease(t *testing.T) {
	b := NewUIButton()
	clicks := 0
	b.OnClick.AddListener(func() { clicks++ })

	rect := rl.Rectangle{X: 10, Y: 10, Width: 100, Height: 30}
	inside := rl.Vector2{X: 50, Y: 20}
	outside := rl.Vector2{X: 200, Y: 200}

	// Press and release over the button: one click.
	b.HandleInput(rect, inside, true, true, false)
	if b.State != ButtonPressed {
		t.Errorf("State = %v after press, want ButtonPressed", b.State)
	}
	b.HandleInput(rect, inside, false, false, true)
	if clicks != 1 {
		t.Fatalf("clicks = %d after press+release, want 1", clicks)
	}

	// Press inside, drag out, release: no click.
	b.HandleInput(rect, inside, true, true, false)
	b.HandleInput(rect, outside, false, false, true)
	if clicks != 1 {
		t.Errorf("clicks = %d after drag-off release, want 1", clicks)
	}

	// Release over the button without a prior press: no click.
	b.HandleInput(rect, inside, false, false, true)
	if clicks != 1 {
		t.Errorf("clicks = %d after bare release, want 1", clicks)
	}
}

func TestUIButtonDisabledIgnoresInput(t *testing.T) {
	b := NewUIButton()
	clicks := 0
	b.OnClick.AddListener(func() { clicks++ })
	b.Disabled = true

	rect := rl.Rectangle{Width: 100, Height: 30}
	inside := rl.Vector2{X: 50, Y: 15}

	b.HandleInput(rect, inside, true, true, false)
	b.HandleInput(rect, inside, false, false, true)

	if b.State != ButtonDisabled {
		t.Errorf("State = %v, want ButtonDisabled", b.State)
	}
	if clicks != 0 {
		t.Errorf("clicks = %d on disabled button, want 0", clicks)
	}
}
