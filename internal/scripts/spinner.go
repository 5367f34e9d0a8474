package scripts

import "github.com/glide-engine/glide/internal/engine"

// Spinner rotates its object around the Y axis at a constant speed.
type Spinner struct {
	engine.BaseComponent
	Speed float32
}

func (s *Spinner) Update(deltaTime float32) {
	g := s.GetGameObject()
	if g == nil {
		return
	}
	g.Transform.Rotation.Y += s.Speed * deltaTime
	if g.Transform.Rotation.Y > 360 {
		g.Transform.Rotation.Y -= 360
	}
}

func init() {
	engine.RegisterScript("Spinner", spinnerFactory, spinnerSerializer)
}

func spinnerFactory(props map[string]any) engine.Component {
	speed := float32(90)
	if v, ok := props["speed"].(float64); ok {
		speed = float32(v)
	}
	return &Spinner{Speed: speed}
}

func spinnerSerializer(c engine.Component) map[string]any {
	s, ok := c.(*Spinner)
	if !ok {
		return nil
	}
	return map[string]any{
		"speed": s.Speed,
	}
}
