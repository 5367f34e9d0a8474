package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/glide-engine/glide/internal/editor"
	"github.com/glide-engine/glide/internal/editor/fastplay"
	_ "github.com/glide-engine/glide/internal/scripts"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	ed := editor.New()

	controller := fastplay.New(fastplay.Config{
		Settings: ed.Settings,
		PlayMode: ed.PlayMode,
		Toolbar:  ed.Toolbar,
		Prefs:    ed.Prefs,
		Dialogs:  confirmDialogs{},
		Windows:  ed.Windows,
	})

	ed.Toolbar.Register("playctl", "Play", playButton(ed))
	ed.Toolbar.Register(fastplay.ControlID, "Fast Play", controller.Button)

	if err := ed.Commands.Register(controller.Command()); err != nil {
		log.Error("could not register fast play command", "error", err)
	}
	if err := ed.Commands.Register(controller.VisibilityCommand()); err != nil {
		log.Error("could not register visibility command", "error", err)
	}

	controller.InstallStartupCheck(ed)
	ed.Run()
}

// playButton is the plain play/stop toggle next to the fast-play control.
func playButton(ed *editor.Editor) editor.ButtonFactory {
	return func() editor.ToolbarButton {
		label := "Play"
		tint := editor.TintNeutral
		if ed.PlayMode.IsPlaying() {
			label = "Stop"
			tint = editor.TintAccent
		}
		return editor.ToolbarButton{
			Label:   label,
			Tooltip: "Enter or leave play mode",
			Tint:    tint,
			OnClick: func() {
				if ed.PlayMode.IsPlaying() {
					ed.PlayMode.Stop()
				} else {
					ed.PlayMode.Start()
				}
				ed.Toolbar.RequestRedraw()
			},
		}
	}
}

// confirmDialogs adapts the editor's modal dialog to the controller.
type confirmDialogs struct{}

func (confirmDialogs) Confirm(title, message, yes, no string) bool {
	return editor.Confirm(title, message, yes, no)
}
