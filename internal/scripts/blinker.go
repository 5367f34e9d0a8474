package scripts

import (
	"github.com/glide-engine/glide/internal/components"
	"github.com/glide-engine/glide/internal/engine"
)

// Blinker pulses a sibling UIText by toggling its alpha on a fixed interval.
type Blinker struct {
	engine.BaseComponent
	Interval float32

	elapsed float32
	shown   bool
}

func (b *Blinker) Start() {
	b.shown = true
}

func (b *Blinker) Update(deltaTime float32) {
	g := b.GetGameObject()
	if g == nil {
		return
	}
	b.elapsed += deltaTime
	if b.elapsed < b.Interval {
		return
	}
	b.elapsed = 0
	b.shown = !b.shown

	if text := engine.GetComponent[*components.UIText](g); text != nil {
		if b.shown {
			text.Color.A = 255
		} else {
			text.Color.A = 0
		}
	}
}

func init() {
	engine.RegisterScript("Blinker", blinkerFactory, blinkerSerializer)
}

func blinkerFactory(props map[string]any) engine.Component {
	interval := float32(0.5)
	if v, ok := props["interval"].(float64); ok {
		interval = float32(v)
	}
	return &Blinker{Interval: interval}
}

func blinkerSerializer(c engine.Component) map[string]any {
	b, ok := c.(*Blinker)
	if !ok {
		return nil
	}
	return map[string]any{
		"interval": b.Interval,
	}
}
