package display

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lyra-player/lyra/internal/audio"
	"github.com/lyra-player/lyra/internal/lyrics"
	"github.com/lyra-player/lyra/internal/scroll"
	"github.com/lyra-player/lyra/internal/timer"
)

// header is the title line shown at the top of the screen.
const header = "[lyra music player]"

const (
	// infoviewOffset is the row of the lyrics box.
	infoviewOffset = 8
	// statusMsgOffset is the distance of the status message from the
	// bottom edge.
	statusMsgOffset = 6
	// minCols and minLines are the smallest terminal the layout fits.
	minCols  = 100
	minLines = 28
	// infoviewHeight is the height of the lyrics box.
	infoviewHeight = 6
	// progressBlock fills the played part of the progress bar.
	progressBlock = '▇'
)

var (
	styleDefault  = tcell.StyleDefault
	styleBold     = tcell.StyleDefault.Bold(true)
	styleItalic   = tcell.StyleDefault.Italic(true)
	styleStandout = tcell.StyleDefault.Reverse(true)
	styleDim      = tcell.StyleDefault.Dim(true)
)

// Display owns the terminal screen for the duration of one playback
// session. All drawing happens from the tick loop; a background
// goroutine only pumps raw key events into a channel so the loop can
// poll them without blocking.
type Display struct {
	screen tcell.Screen
	events chan *tcell.EventKey

	scrolledName *scroll.ScrolledBuf
	scrollTimer  timer.Timer
	messageTimer *timer.Timer

	scrollInterval time.Duration
	scrollPause    time.Duration
	messageTime    time.Duration

	cols  int
	lines int
}

// Options carries the display timing tunables.
type Options struct {
	ScrollInterval time.Duration
	ScrollPause    time.Duration
	MessageTime    time.Duration
}

// New initializes the terminal and builds the display for the given
// audio file. The static UI is not drawn until Init is called.
func New(file string, opts Options) (*Display, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	return newWithScreen(screen, file, opts)
}

func newWithScreen(screen tcell.Screen, file string, opts Options) (*Display, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	screen.HideCursor()

	cols, lines := screen.Size()
	d := &Display{
		screen:         screen,
		events:         make(chan *tcell.EventKey, 16),
		scrolledName:   scroll.New(filepath.Base(file), cols-8, scroll.LeftToRight),
		scrollTimer:    timer.New(opts.ScrollInterval),
		scrollInterval: opts.ScrollInterval,
		scrollPause:    opts.ScrollPause,
		messageTime:    opts.MessageTime,
		cols:           cols,
		lines:          lines,
	}

	go d.pumpEvents()
	return d, nil
}

// pumpEvents forwards key events to the poll channel. Resize events
// are dropped; the layout is validated once at startup.
func (d *Display) pumpEvents() {
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		if key, ok := ev.(*tcell.EventKey); ok {
			select {
			case d.events <- key:
			default:
			}
		}
	}
}

// SizeCheck reports whether the terminal is big enough for the layout.
func (d *Display) SizeCheck() bool {
	return d.lines >= minLines && d.cols >= minCols
}

// Init draws the static parts of the UI.
func (d *Display) Init() {
	d.drawBorder(0, 0, d.cols-1, d.lines-1)
	d.drawText((d.cols-len(header))/2, 0, styleDefault, header)

	d.drawControls()
	d.drawProgressUI()
	d.drawTrackInfoUI()
	d.drawLyricsArea()
}

func (d *Display) drawTrackInfoUI() {
	d.drawText(4, 2, styleDefault, "Track:")
	d.drawText(4, 3, styleDefault, "Album:")
	d.drawText(4, 4, styleDefault, "Artist(s):")
}

func (d *Display) drawProgressUI() {
	y := d.lines - 5
	d.setCell(0, y, tcell.RuneLTee)
	d.setCell(1, y, tcell.RuneHLine)
	d.drawText(2, y, styleDefault, "[|>]")
	d.setCell(6, y, tcell.RuneHLine)
	d.setCell(7, y, tcell.RuneHLine)
	d.drawText(8, y, styleDefault, "[00:00]")
	d.setCell(15, y, tcell.RuneHLine)
	d.drawText(16, y, styleDefault, "[")
	d.drawText(d.cols-11, y, styleDefault, "]")
	d.setCell(d.cols-10, y, tcell.RuneHLine)
	d.drawText(d.cols-9, y, styleDefault, "[00:00]")
	d.setCell(d.cols-2, y, tcell.RuneHLine)
	d.setCell(d.cols-1, y, tcell.RuneRTee)

	sep := d.lines - 4
	d.setCell(0, sep, tcell.RuneLTee)
	for x := 1; x < d.cols-1; x++ {
		d.setCell(x, sep, tcell.RuneHLine)
	}
	d.setCell(d.cols-1, sep, tcell.RuneRTee)
}

func (d *Display) drawControls() {
	const exitText = "[Q] Exit"

	legend := "[G] Play │ [B] Pause │ [V] Mute │ [+/-] Volume"
	d.drawText(2, d.lines-3, styleDefault, legend)
	d.drawText(d.cols-2-len(exitText), d.lines-2, styleDefault, exitText)
}

func (d *Display) drawLyricsArea() {
	d.drawBorder(4, infoviewOffset, d.cols-5, infoviewOffset+infoviewHeight-1)
	d.drawText(6, infoviewOffset, styleDefault, "[ Lyrics ]")
}

// Refresh pushes pending changes to the terminal.
func (d *Display) Refresh() {
	d.screen.Show()
}

// Destroy restores the terminal.
func (d *Display) Destroy() {
	d.screen.Fini()
}

// SetPlaybackStatus updates the play/pause glyph on the progress row.
func (d *Display) SetPlaybackStatus(playing bool) {
	glyph := "|>"
	if playing {
		glyph = "||"
	}
	d.drawText(3, d.lines-5, styleDefault, glyph)
}

// SetTrackInfo fills the title, album and artist rows.
func (d *Display) SetTrackInfo(meta audio.Meta) {
	d.drawText(15, 2, styleDefault, meta.Title)
	d.drawText(15, 3, styleDefault, meta.Album)
	d.drawText(15, 4, styleDefault, meta.Artist)
}

// SetTrackLength prints the total track length on the progress row.
func (d *Display) SetTrackLength(length time.Duration) {
	d.drawText(d.cols-8, d.lines-5, styleDefault, prettyTime(length))
}

// SetFileQuality prints the sample rate, channel and codec summary.
func (d *Display) SetFileQuality(info *audio.FileInfo) {
	channels := "Mono"
	if info.Stereo {
		channels = "Stereo"
	}
	quality := "Lossy"
	if info.Format.Lossless() {
		quality = "Lossless"
	}
	d.drawText(4, 6, styleDefault, fmt.Sprintf("%d Hz, %s, %s %s",
		info.SampleRate, channels, quality, info.Format))
}

// UpdateProgress redraws the playtime readout and the progress bar.
func (d *Display) UpdateProgress(playtime, total time.Duration) {
	d.drawText(9, d.lines-5, styleDefault, prettyTime(playtime))
	d.setProgress(playtime, total)
}

func (d *Display) setProgress(playtime, total time.Duration) {
	maxBlocks := (d.cols - 12) - 15 - 1
	blocks := 0
	if total > 0 {
		blocks = int(float64(maxBlocks) * playtime.Seconds() / total.Seconds())
	}
	if blocks < 0 {
		blocks = 0
	}
	if blocks > maxBlocks {
		blocks = maxBlocks
	}

	y := d.lines - 5
	for i := 0; i < blocks; i++ {
		d.screen.SetContent(17+i, y, progressBlock, nil, styleDefault)
	}
	for i := blocks; i < maxBlocks; i++ {
		d.screen.SetContent(17+i, y, ' ', nil, styleDefault)
	}
}

// SetStatusMessage shows a transient message centered above the
// progress bar, replacing any message already on screen.
func (d *Display) SetStatusMessage(message string) {
	if d.messageTimer != nil {
		d.ClearStatusMessage()
	}

	message = fmt.Sprintf("[ %s ]", message)
	x := (d.cols - runewidth.StringWidth(message)) / 2
	d.drawText(x, d.lines-statusMsgOffset, styleStandout, message)

	t := timer.New(d.messageTime)
	d.messageTimer = &t
}

// ClearStatusMessage removes the current status message, if any.
func (d *Display) ClearStatusMessage() {
	if d.messageTimer == nil {
		return
	}
	d.messageTimer = nil
	d.clearRow(1, d.cols-3, d.lines-statusMsgOffset)
}

// StatusMessageTick clears the status message once its timer expires.
// Safe to call when no message is shown.
func (d *Display) StatusMessageTick() {
	if d.messageTimer != nil && d.messageTimer.Expired() {
		d.ClearStatusMessage()
	}
}

// HandleScroll advances the file-name marquee when its timer fires.
// The timer is re-armed with the short step interval, or with the long
// end-of-scroll pause right after a direction swap.
func (d *Display) HandleScroll() {
	if !d.scrollTimer.Expired() {
		return
	}
	d.drawText(4, infoviewOffset+7, styleDefault, d.scrolledName.CurrentFrame())
	if d.scrolledName.IsFinished() {
		d.scrolledName.SwapDirection()
		d.scrollTimer.Rebuild(d.scrollPause)
	} else {
		d.scrollTimer.Rebuild(d.scrollInterval)
	}
	d.scrolledName.NextFrame()
}

// SetActiveLine shows the active lyric line inside the lyrics box, or
// clears the box when line is nil (a gap between lines).
func (d *Display) SetActiveLine(line *lyrics.Line) {
	d.clearInfoview()
	if line == nil || line.Text == "" {
		return
	}
	text := runewidth.Truncate("-> "+line.Text, d.cols-12, "…")
	d.drawText(6, infoviewOffset+1, styleBold, text)
}

// SetLyricsBank previews the window's upcoming lines, dimmed, beneath
// the active row. Call it after SetActiveLine, which clears the box.
func (d *Display) SetLyricsBank(bank *lyrics.Bank, playtime time.Duration) {
	row := infoviewOffset + 2
	maxRow := infoviewOffset + infoviewHeight - 2
	for _, line := range bank.Lines() {
		if line.Start <= playtime || line.Text == "" {
			continue
		}
		d.drawText(9, row, styleDim, runewidth.Truncate(line.Text, d.cols-15, "…"))
		row++
		if row > maxRow {
			return
		}
	}
}

// SetUnavailable marks the lyrics box as having no lyrics to show.
func (d *Display) SetUnavailable() {
	d.clearInfoview()
	d.drawText(6, infoviewOffset+1, styleItalic, "Unavailable")
}

func (d *Display) clearInfoview() {
	for y := infoviewOffset + 1; y < infoviewOffset+infoviewHeight-1; y++ {
		d.clearRow(5, d.cols-6, y)
	}
}

// CaptureEvent polls for one key event without blocking and maps it to
// a command. The second return value is false when no key is pending.
func (d *Display) CaptureEvent() (Event, bool) {
	select {
	case key := <-d.events:
		return mapKey(key), true
	default:
		return Event{}, false
	}
}

func (d *Display) drawText(x, y int, style tcell.Style, text string) {
	for _, r := range text {
		d.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func (d *Display) setCell(x, y int, r rune) {
	d.screen.SetContent(x, y, r, nil, styleDefault)
}

func (d *Display) clearRow(x1, x2, y int) {
	for x := x1; x <= x2; x++ {
		d.screen.SetContent(x, y, ' ', nil, styleDefault)
	}
}

func (d *Display) drawBorder(x1, y1, x2, y2 int) {
	for x := x1 + 1; x < x2; x++ {
		d.setCell(x, y1, tcell.RuneHLine)
		d.setCell(x, y2, tcell.RuneHLine)
	}
	for y := y1 + 1; y < y2; y++ {
		d.setCell(x1, y, tcell.RuneVLine)
		d.setCell(x2, y, tcell.RuneVLine)
	}
	d.setCell(x1, y1, tcell.RuneULCorner)
	d.setCell(x2, y1, tcell.RuneURCorner)
	d.setCell(x1, y2, tcell.RuneLLCorner)
	d.setCell(x2, y2, tcell.RuneLRCorner)
}

// prettyTime formats a duration as mm:ss.
func prettyTime(t time.Duration) string {
	secs := int(t.Seconds())
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
