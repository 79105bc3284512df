package scroll

// Direction is the direction the text appears to move across the window.
type Direction int

const (
	// RightToLeft scrolls the text from the right edge towards the left.
	RightToLeft Direction = iota
	// LeftToRight scrolls the text from the left edge towards the right.
	LeftToRight
)

// ScrolledBuf generates fixed-width frames of a string for a bouncing
// marquee effect. Frames are indexed by an internal step counter; any
// index outside the text renders as a space, so the text slides in from
// one edge and out the other.
//
// Example:
//
//	buf := New("Hello, world!", 6, LeftToRight)
//	buf.CurrentFrame() // "      "
//	buf.NextFrame()
//	buf.CurrentFrame() // "!     "
type ScrolledBuf struct {
	text    []rune
	step    int
	dir     Direction
	visible int
}

// New creates a scroll buffer over text with a window of visible
// characters, starting fully off-screen for the given direction.
func New(text string, visible int, dir Direction) *ScrolledBuf {
	b := &ScrolledBuf{
		text:    []rune(text),
		dir:     dir,
		visible: visible,
	}
	b.Reset()
	return b
}

// CurrentFrame returns the window contents at the current step. The
// result is always exactly as long as the visible width.
func (b *ScrolledBuf) CurrentFrame() string {
	frame := make([]rune, 0, b.visible)
	for i := b.step; i < b.step+b.visible; i++ {
		if i >= 0 && i < len(b.text) {
			frame = append(frame, b.text[i])
		} else {
			frame = append(frame, ' ')
		}
	}
	return string(frame)
}

// NextFrame advances the scroll by one step. Callers must check
// IsFinished first; stepping past the boundary distorts the effect.
func (b *ScrolledBuf) NextFrame() {
	switch b.dir {
	case RightToLeft:
		b.step++
	case LeftToRight:
		b.step--
	}
}

// PrevFrame steps the scroll backwards by one step.
func (b *ScrolledBuf) PrevFrame() {
	switch b.dir {
	case RightToLeft:
		b.step--
	case LeftToRight:
		b.step++
	}
}

// Reset moves the step counter back to the starting value for the
// current direction, restarting the effect.
func (b *ScrolledBuf) Reset() {
	switch b.dir {
	case RightToLeft:
		b.step = -b.visible
	case LeftToRight:
		b.step = len(b.text)
	}
}

// SwapDirection flips the scroll direction and restarts the effect.
func (b *ScrolledBuf) SwapDirection() {
	if b.dir == RightToLeft {
		b.dir = LeftToRight
	} else {
		b.dir = RightToLeft
	}
	b.Reset()
}

// IsFinished reports whether the text has scrolled fully out of view
// for the current direction.
func (b *ScrolledBuf) IsFinished() bool {
	switch b.dir {
	case RightToLeft:
		return b.step == len(b.text)+1
	default:
		return b.step == -b.visible-1
	}
}
