package state

import "testing"

func TestStartsPaused(t *testing.T) {
	m := NewManager()
	if got := m.Current(); got != Paused {
		t.Errorf("new session: got %v, want paused", got)
	}
}

func TestPlayPause(t *testing.T) {
	m := NewManager()

	m.Play()
	if !m.IsPlaying() {
		t.Error("not playing after Play")
	}

	m.Pause()
	if m.IsPlaying() {
		t.Error("still playing after Pause")
	}
	if m.IsFinished() {
		t.Error("pause must not finish the session")
	}
}

func TestFinishedIsTerminal(t *testing.T) {
	m := NewManager()
	m.Play()
	m.Finish()

	m.Play()
	if m.Current() != Finished {
		t.Error("Play resurrected a finished session")
	}
	m.Pause()
	if m.Current() != Finished {
		t.Error("Pause resurrected a finished session")
	}
}

func TestString(t *testing.T) {
	if Paused.String() != "paused" || Playing.String() != "playing" || Finished.String() != "finished" {
		t.Error("unexpected state names")
	}
}
