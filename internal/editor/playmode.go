package editor

import (
	"github.com/glide-engine/glide/internal/engine"
)

// PlayModeState is one step of the play-mode transition sequence. Transitions
// are emitted in order on the main thread: Entering, Entered when starting,
// Exiting, Exited when stopping.
type PlayModeState int

const (
	PlayModeEntering PlayModeState = iota
	PlayModeEntered
	PlayModeExiting
	PlayModeExited
)

func (s PlayModeState) String() string {
	switch s {
	case PlayModeEntering:
		return "entering"
	case PlayModeEntered:
		return "entered"
	case PlayModeExiting:
		return "exiting"
	case PlayModeExited:
		return "exited"
	}
	return "unknown"
}

// PlayMode drives the editor's play-mode lifecycle. The prepare hook runs
// between Entering and Entered and performs the configured reload steps; the
// cleanup hook runs between Exiting and Exited.
type PlayMode struct {
	playing     bool
	transitions engine.EventWithArg[PlayModeState]
	prepare     func()
	cleanup     func()
}

func NewPlayMode(prepare, cleanup func()) *PlayMode {
	return &PlayMode{prepare: prepare, cleanup: cleanup}
}

func (p *PlayMode) IsPlaying() bool {
	return p.playing
}

// Subscribe registers a listener for every state transition.
func (p *PlayMode) Subscribe(fn func(PlayModeState)) int {
	return p.transitions.AddListener(fn)
}

// Start enters play mode. No-op if already playing.
func (p *PlayMode) Start() {
	if p.playing {
		return
	}
	p.transitions.Invoke(PlayModeEntering)
	if p.prepare != nil {
		p.prepare()
	}
	p.playing = true
	p.transitions.Invoke(PlayModeEntered)
}

// Stop exits play mode. No-op if not playing.
func (p *PlayMode) Stop() {
	if !p.playing {
		return
	}
	p.transitions.Invoke(PlayModeExiting)
	if p.cleanup != nil {
		p.cleanup()
	}
	p.playing = false
	p.transitions.Invoke(PlayModeExited)
}
