package editor

import (
	"encoding/json"
	"os"

	"github.com/charmbracelet/log"

	"github.com/glide-engine/glide/internal/settings"
)

// EditorPrefs holds persistent editor preferences saved between sessions
type EditorPrefs struct {
	WindowWidth          int                      `json:"windowWidth"`
	WindowHeight         int                      `json:"windowHeight"`
	ScenePath            string                   `json:"scenePath,omitempty"`
	PlayMode             settings.PlayModeOptions `json:"playMode"`
	HiddenToolbarButtons []string                 `json:"hiddenToolbarButtons,omitempty"`
}

const editorPrefsFile = ".glide_editor.json"

// LoadEditorPrefs loads editor preferences from disk. Returns nil when no
// prefs file exists yet.
func LoadEditorPrefs() *EditorPrefs {
	data, err := os.ReadFile(editorPrefsFile)
	if err != nil {
		return nil
	}

	var prefs EditorPrefs
	if err := json.Unmarshal(data, &prefs); err != nil {
		log.Warn("failed to parse editor prefs", "error", err)
		return nil
	}

	return &prefs
}

// Save writes the preferences to disk.
func (p *EditorPrefs) Save() {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		log.Error("failed to marshal editor prefs", "error", err)
		return
	}
	if err := os.WriteFile(editorPrefsFile, data, 0644); err != nil {
		log.Error("failed to save editor prefs", "error", err)
	}
}
