// Package settings holds the live editor settings shared by the editor
// surface and its tooling.
package settings

import "strings"

// PlayModeOptions controls which re-initialization steps are skipped when
// the editor enters play mode. The zero value performs every step.
type PlayModeOptions uint8

const (
	// SkipScriptReload skips re-instantiating script components from the
	// script registry on play mode entry.
	SkipScriptReload PlayModeOptions = 1 << iota
	// SkipSceneReload skips reloading the scene from disk on play mode entry.
	SkipSceneReload
)

// PlayModeSafe performs both reload steps, the default behavior.
const PlayModeSafe PlayModeOptions = 0

// PlayModeFast skips both reload steps for the quickest possible entry.
const PlayModeFast = SkipScriptReload | SkipSceneReload

func (o PlayModeOptions) Has(flag PlayModeOptions) bool {
	return o&flag != 0
}

func (o PlayModeOptions) String() string {
	if o == PlayModeSafe {
		return "safe"
	}
	var parts []string
	if o.Has(SkipScriptReload) {
		parts = append(parts, "skip-script-reload")
	}
	if o.Has(SkipSceneReload) {
		parts = append(parts, "skip-scene-reload")
	}
	return strings.Join(parts, "+")
}

// Settings is the live settings object. All access happens on the main
// thread; there is no locking.
type Settings struct {
	playMode PlayModeOptions
}

func New() *Settings {
	return &Settings{}
}

func (s *Settings) PlayModeOptions() PlayModeOptions {
	return s.playMode
}

func (s *Settings) SetPlayModeOptions(o PlayModeOptions) {
	s.playMode = o
}
