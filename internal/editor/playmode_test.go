package editor

import "testing"

func TestPlayModeTransitionOrder(t *testing.T) {
	var order []string
	pm := NewPlayMode(
		func() { order = append(order, "prepare") },
		func() { order = append(order, "cleanup") },
	)
	pm.Subscribe(func(s PlayModeState) {
		order = append(order, s.String())
	})

	pm.Start()
	pm.Stop()

	want := []string{"entering", "prepare", "entered", "exiting", "cleanup", "exited"}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("step %d: got %q, want %q", i, order[i], want[i])
		}
	}
}

func TestPlayModePlayingFlag(t *testing.T) {
	var duringPrepare, duringEntered bool
	pm := NewPlayMode(nil, nil)
	pm.prepare = func() { duringPrepare = pm.IsPlaying() }
	pm.Subscribe(func(s PlayModeState) {
		if s == PlayModeEntered {
			duringEntered = pm.IsPlaying()
		}
	})

	if pm.IsPlaying() {
		t.Fatal("playing before Start")
	}
	pm.Start()
	if duringPrepare {
		t.Error("playing during prepare, want not playing")
	}
	if !duringEntered {
		t.Error("not playing at entered notification")
	}
	pm.Stop()
	if pm.IsPlaying() {
		t.Error("still playing after Stop")
	}
}

func TestPlayModeStartStopReentry(t *testing.T) {
	prepares, cleanups := 0, 0
	pm := NewPlayMode(func() { prepares++ }, func() { cleanups++ })

	pm.Stop() // not playing, no-op
	pm.Start()
	pm.Start() // already playing, no-op
	pm.Stop()
	pm.Stop()

	if prepares != 1 || cleanups != 1 {
		t.Errorf("got %d prepares and %d cleanups, want 1 and 1", prepares, cleanups)
	}
}
