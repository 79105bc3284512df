package lyrics

import "time"

// bankSize is the number of consecutive lines a bank covers.
const bankSize = 10

// Bank is a forward-only window of consecutive document lines. Looking
// up the active line scans only the window, so a tick never walks the
// whole document. Banks are created exclusively through Document.Bank;
// advancing yields a new bank starting where the previous one ended and
// discarded lines are never re-examined.
//
// The playtime passed to IsExpired and Active must be non-decreasing
// across calls. The cursor assumes forward-only playback; after a
// backward jump in playtime the results are stale.
type Bank struct {
	doc   *Document
	start int
	end   int
}

// Bank returns the next lyric window. With prev == nil it anchors at
// the first line; otherwise it begins where prev ended.
func (d *Document) Bank(prev *Bank) Bank {
	start := 0
	if prev != nil {
		start = prev.end
	}
	end := start + bankSize
	if end > len(d.Lines) {
		end = len(d.Lines)
	}
	return Bank{doc: d, start: start, end: end}
}

// IsExpired reports whether playtime has passed the end of the last
// line in the window, meaning the window holds no further coverage.
func (b *Bank) IsExpired(playtime time.Duration) bool {
	if b.end == b.start {
		return true
	}
	return playtime >= b.doc.endOf(b.end-1)
}

// NextAvailable reports whether the document has lines beyond this
// window, i.e. whether advancing would yield a non-empty bank.
func (b *Bank) NextAvailable() bool {
	return b.end < len(b.doc.Lines)
}

// Active returns the window line whose interval contains playtime, or
// nil when playtime falls in a gap or outside the window. A line is
// active at exactly its start and inactive at exactly its end.
func (b *Bank) Active(playtime time.Duration) *Line {
	for i := b.start; i < b.end; i++ {
		line := &b.doc.Lines[i]
		if playtime >= line.Start && playtime < b.doc.endOf(i) {
			return line
		}
	}
	return nil
}

// Lines returns the lines inside the window, in document order, for
// rendering the upcoming-lines preview.
func (b *Bank) Lines() []Line {
	return b.doc.Lines[b.start:b.end]
}
