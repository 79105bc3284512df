package display

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// EventKind is the command a key press maps to.
type EventKind int

const (
	// EventPlay requests resuming playback.
	EventPlay EventKind = iota
	// EventPause requests pausing playback.
	EventPause
	// EventToggleMute requests muting or unmuting the audio.
	EventToggleMute
	// EventVolUp requests one volume step up.
	EventVolUp
	// EventVolDown requests one volume step down.
	EventVolDown
	// EventQuit requests stopping playback and exiting.
	EventQuit
	// EventInvalid is a key not bound to any command.
	EventInvalid
)

// Event is one decoded keyboard command. Key carries the pressed rune
// for EventInvalid so the caller can name it in a status message.
type Event struct {
	Kind EventKind
	Key  rune
}

func mapKey(key *tcell.EventKey) Event {
	if key.Key() == tcell.KeyCtrlC || key.Key() == tcell.KeyEscape {
		return Event{Kind: EventQuit}
	}
	if key.Key() != tcell.KeyRune {
		return Event{Kind: EventInvalid}
	}

	r := key.Rune()
	switch unicode.ToLower(r) {
	case 'g':
		return Event{Kind: EventPlay}
	case 'b':
		return Event{Kind: EventPause}
	case 'v':
		return Event{Kind: EventToggleMute}
	case '+', '=':
		return Event{Kind: EventVolUp}
	case '-':
		return Event{Kind: EventVolDown}
	case 'q':
		return Event{Kind: EventQuit}
	default:
		return Event{Kind: EventInvalid, Key: r}
	}
}
