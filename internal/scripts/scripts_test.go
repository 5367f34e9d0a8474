package scripts

import (
	"testing"

	"github.com/glide-engine/glide/internal/engine"
)

func TestSpinnerRegistered(t *testing.T) {
	c := engine.CreateScript("Spinner", map[string]any{"speed": 45.0})
	s, ok := c.(*Spinner)
	if !ok {
		t.Fatalf("CreateScript returned %T, want *Spinner", c)
	}
	if s.Speed != 45 {
		t.Errorf("Speed = %v, want 45", s.Speed)
	}

	name, props, ok := engine.SerializeScript(s)
	if !ok || name != "Spinner" {
		t.Fatalf("SerializeScript = %q, %v", name, ok)
	}
	if props["speed"] != float32(45) {
		t.Errorf("props[speed] = %v, want 45", props["speed"])
	}
}

func TestSpinnerWrapsRotation(t *testing.T) {
	g := engine.NewGameObject("spin")
	s := &Spinner{Speed: 90}
	g.AddComponent(s)

	g.Transform.Rotation.Y = 350
	s.Update(1) // +90 degrees, wraps past 360
	if got := g.Transform.Rotation.Y; got != 80 {
		t.Errorf("Rotation.Y = %v, want 80", got)
	}
}

func TestBlinkerDefaultsFromProps(t *testing.T) {
	c := engine.CreateScript("Blinker", nil)
	b, ok := c.(*Blinker)
	if !ok {
		t.Fatalf("CreateScript returned %T, want *Blinker", c)
	}
	if b.Interval != 0.5 {
		t.Errorf("Interval = %v, want 0.5", b.Interval)
	}
}
