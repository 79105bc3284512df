package lyrics

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// ErrUnavailable means there are no lyrics for this track: the sidecar
// file is missing or the source flagged the lookup as failed. Callers
// treat it as "disable the lyric display", never as a fatal error.
var ErrUnavailable = errors.New("lyrics unavailable")

// placeholder marks an instrumental gap in the source material.
const placeholder = "♪"

// Line is a single timed lyric line. The interval is half-open: the
// line is active for playtime in [Start, End).
type Line struct {
	Start time.Duration
	End   time.Duration
	Text  string
}

// HasEnd reports whether the line carries a usable end time. Sources
// sometimes emit a zero or out-of-order end; such lines are bounded by
// their successor instead.
func (l Line) HasEnd() bool {
	return l.End > l.Start
}

// Document is an immutable, normalized sequence of lyric lines sorted
// ascending by start time.
type Document struct {
	SyncType string
	Lines    []Line
}

type rawLyrics struct {
	Error    bool       `json:"error"`
	SyncType string     `json:"syncType"`
	Lines    []rawEntry `json:"lines"`
}

type rawEntry struct {
	StartTimeMs string `json:"startTimeMs"`
	EndTimeMs   string `json:"endTimeMs"`
	Words       string `json:"words"`
}

// Load reads and parses a lyrics sidecar file, then normalizes it.
// A missing file or a set error flag yields ErrUnavailable; anything
// the decoder rejects yields a wrapped parse error.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, path)
	}
	return Parse(data)
}

// Parse builds a normalized Document from raw sidecar JSON.
func Parse(data []byte) (*Document, error) {
	var raw rawLyrics
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("malformed lyrics: %w", err)
	}
	if raw.Error {
		return nil, fmt.Errorf("%w: source reported an error", ErrUnavailable)
	}

	doc := &Document{
		SyncType: raw.SyncType,
		Lines:    make([]Line, 0, len(raw.Lines)),
	}
	for i, entry := range raw.Lines {
		start, err := parseMs(entry.StartTimeMs)
		if err != nil {
			return nil, fmt.Errorf("malformed lyrics: line %d start: %w", i, err)
		}
		end, err := parseMs(entry.EndTimeMs)
		if err != nil {
			return nil, fmt.Errorf("malformed lyrics: line %d end: %w", i, err)
		}
		doc.Lines = append(doc.Lines, Line{Start: start, End: end, Text: entry.Words})
	}

	doc.normalize()
	return doc, nil
}

// parseMs converts a decimal-string millisecond timestamp to a duration.
func parseMs(s string) (time.Duration, error) {
	ms, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// normalize merges placeholder lines into their predecessors: whenever
// a line's successor is empty or the instrumental-gap glyph, the
// successor is dropped and the line's end extended through the gap to
// the start of the line that now follows it. The same index is
// re-examined after a merge because the new successor may be a
// placeholder too, so a run of placeholders collapses into one
// extension. A trailing placeholder has nothing after it; the line
// then ends where the gap began. No placeholder survives the pass.
func (d *Document) normalize() {
	i := 0
	for i+1 < len(d.Lines) {
		next := d.Lines[i+1]
		if next.Text == placeholder || next.Text == "" {
			d.Lines = append(d.Lines[:i+1], d.Lines[i+2:]...)
			if i+1 < len(d.Lines) {
				d.Lines[i].End = d.Lines[i+1].Start
			} else {
				d.Lines[i].End = next.Start
			}
			continue
		}
		i++
	}
}

// endOf returns the effective end of line i: its own end when valid,
// otherwise the successor's start, otherwise unbounded for the final
// line of the document.
func (d *Document) endOf(i int) time.Duration {
	if d.Lines[i].HasEnd() {
		return d.Lines[i].End
	}
	if i+1 < len(d.Lines) {
		return d.Lines[i+1].Start
	}
	return time.Duration(1<<63 - 1)
}
