package display

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lyra-player/lyra/internal/lyrics"
)

func newTestDisplay(t *testing.T) (*Display, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	d, err := newWithScreen(sim, "track.flac", Options{
		ScrollInterval: 200 * time.Millisecond,
		ScrollPause:    3 * time.Second,
		MessageTime:    2 * time.Second,
	})
	if err != nil {
		t.Fatalf("newWithScreen failed: %v", err)
	}
	t.Cleanup(d.Destroy)
	return d, sim
}

func rowString(sim tcell.SimulationScreen, y int) string {
	cells, w, _ := sim.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		for _, r := range cells[y*w+x].Runes {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestSetActiveLineRendersInLyricsBox(t *testing.T) {
	d, sim := newTestDisplay(t)

	d.SetActiveLine(&lyrics.Line{Start: 0, End: time.Second, Text: "hello there"})
	d.Refresh()
	if got := rowString(sim, infoviewOffset+1); !strings.Contains(got, "-> hello there") {
		t.Errorf("active row: %q", got)
	}

	// nil means a gap between lines: the box is cleared.
	d.SetActiveLine(nil)
	d.Refresh()
	if got := rowString(sim, infoviewOffset+1); strings.Contains(got, "hello there") {
		t.Errorf("cleared row still shows the line: %q", got)
	}
}

func TestSetLyricsBankPreviewsUpcomingLines(t *testing.T) {
	d, sim := newTestDisplay(t)

	doc := &lyrics.Document{Lines: []lyrics.Line{
		{Start: 0, End: time.Second, Text: "first"},
		{Start: time.Second, End: 2 * time.Second, Text: "second"},
		{Start: 2 * time.Second, End: 3 * time.Second, Text: "third"},
	}}
	bank := doc.Bank(nil)
	playtime := 500 * time.Millisecond

	d.SetActiveLine(bank.Active(playtime))
	d.SetLyricsBank(&bank, playtime)
	d.Refresh()

	if got := rowString(sim, infoviewOffset+1); !strings.Contains(got, "-> first") {
		t.Errorf("active row: %q", got)
	}
	if got := rowString(sim, infoviewOffset+2); !strings.Contains(got, "second") {
		t.Errorf("first preview row: %q", got)
	}
	if got := rowString(sim, infoviewOffset+3); !strings.Contains(got, "third") {
		t.Errorf("second preview row: %q", got)
	}
	// The active line must not repeat in the preview.
	if got := rowString(sim, infoviewOffset+2); strings.Contains(got, "first") {
		t.Errorf("preview repeats the active line: %q", got)
	}
}

func TestSetLyricsBankPreviewStaysInsideBox(t *testing.T) {
	d, sim := newTestDisplay(t)

	doc := &lyrics.Document{}
	for i := 0; i < 10; i++ {
		doc.Lines = append(doc.Lines, lyrics.Line{
			Start: time.Duration(i) * time.Second,
			End:   time.Duration(i+1) * time.Second,
			Text:  "upcoming",
		})
	}
	bank := doc.Bank(nil)

	d.SetActiveLine(bank.Active(0))
	d.SetLyricsBank(&bank, 0)
	d.Refresh()

	// Row infoviewOffset+5 is the box's bottom border.
	if got := rowString(sim, infoviewOffset+5); strings.Contains(got, "upcoming") {
		t.Errorf("preview overflowed the lyrics box: %q", got)
	}
}

func TestCaptureEventPollsInjectedKey(t *testing.T) {
	d, sim := newTestDisplay(t)
	sim.InjectKey(tcell.KeyRune, 'g', tcell.ModNone)

	deadline := time.Now().Add(time.Second)
	for {
		if event, ok := d.CaptureEvent(); ok {
			if event.Kind != EventPlay {
				t.Fatalf("got kind %v, want EventPlay", event.Kind)
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("injected key never surfaced")
		}
		time.Sleep(time.Millisecond)
	}
}
