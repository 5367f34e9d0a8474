package editor

import "testing"

func TestToolbarRegisterAndHiddenLayout(t *testing.T) {
	reg := NewWindowRegistry()
	tb := NewToolbar(reg, []string{"hiddenctl"})

	tb.Register("playctl", "Play", func() ToolbarButton { return ToolbarButton{Label: "Play"} })
	tb.Register("hiddenctl", "Hidden", func() ToolbarButton { return ToolbarButton{Label: "Hidden"} })
	tb.Register("playctl", "Dup", func() ToolbarButton { return ToolbarButton{} }) // ignored

	if len(tb.order) != 2 {
		t.Fatalf("got %d controls, want 2", len(tb.order))
	}
	if e := tb.window.Canvas.find("playctl"); e == nil || !e.Displayed {
		t.Error("playctl should start displayed")
	}
	if e := tb.window.Canvas.find("hiddenctl"); e == nil || e.Displayed {
		t.Error("hiddenctl should start hidden from the saved layout")
	}

	hidden := tb.HiddenControls()
	if len(hidden) != 1 || hidden[0] != "hiddenctl" {
		t.Errorf("HiddenControls() = %v, want [hiddenctl]", hidden)
	}
}

func TestToolbarWindowOpensInRegistry(t *testing.T) {
	reg := NewWindowRegistry()
	tb := NewToolbar(reg, nil)

	windows := reg.Windows()
	if len(windows) != 1 {
		t.Fatalf("got %d windows, want 1", len(windows))
	}
	if windows[0] != any(tb.window) {
		t.Error("registry does not hold the toolbar window")
	}

	reg.Close(tb.window)
	if len(reg.Windows()) != 0 {
		t.Error("window still open after Close")
	}
}

func TestWindowRegistrySnapshot(t *testing.T) {
	reg := NewWindowRegistry()
	reg.Open("a")
	reg.Open(nil) // ignored

	snap := reg.Windows()
	reg.Open("b")
	if len(snap) != 1 {
		t.Errorf("snapshot grew with the registry: %v", snap)
	}
}
