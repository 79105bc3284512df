package audio

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/lyra-player/lyra/internal/clock"
)

// volumeStep is the percent change of one volume up/down command.
const volumeStep = 10

// Player plays one audio file through the default output device.
// It owns a pausable clock that is paused and resumed in lockstep with
// the device, so Playtime always matches what is audible.
type Player struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	clock    *clock.PausableClock
	finished atomic.Bool
	volPct   int
	muted    bool
}

// NewPlayer opens path, initializes the output device and queues the
// decoded stream. Playback starts paused.
func NewPlayer(path string, volumePct int) (*Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}

	streamer, format, err := decode(path, f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		streamer.Close()
		return nil, fmt.Errorf("failed to open audio device: %w", err)
	}

	ctrl := &beep.Ctrl{Streamer: streamer, Paused: true}
	volume := &effects.Volume{Streamer: ctrl, Base: 2}

	p := &Player{
		streamer: streamer,
		format:   format,
		ctrl:     ctrl,
		volume:   volume,
		clock:    clock.New(),
		volPct:   volumePct,
	}
	p.clock.Pause()
	p.applyVolume()

	speaker.Play(beep.Seq(volume, beep.Callback(func() {
		p.finished.Store(true)
	})))

	return p, nil
}

func decode(path string, f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	switch FormatOf(path) {
	case FLAC:
		return flac.Decode(f)
	case WAV:
		return wav.Decode(f)
	case OGG:
		return vorbis.Decode(f)
	case MP3:
		return mp3.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("unsupported file format")
	}
}

// Play resumes the device and the playtime clock together.
func (p *Player) Play() {
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	p.clock.Resume()
}

// Pause halts the device and freezes the playtime clock together.
func (p *Player) Pause() {
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.clock.Pause()
}

// IsPaused reports whether playback is currently paused.
func (p *Player) IsPaused() bool {
	speaker.Lock()
	paused := p.ctrl.Paused
	speaker.Unlock()
	return paused
}

// IsFinished reports whether the queued stream has fully drained.
func (p *Player) IsFinished() bool {
	return p.finished.Load()
}

// Mute silences the output, keeping the volume setting for Unmute.
func (p *Player) Mute() {
	p.muted = true
	p.applyVolume()
}

// Unmute restores the pre-mute volume.
func (p *Player) Unmute() {
	p.muted = false
	p.applyVolume()
}

// IsMuted reports whether the output is silenced.
func (p *Player) IsMuted() bool {
	return p.muted
}

// IncVolume raises the volume one step and returns the new percentage.
func (p *Player) IncVolume() int {
	return p.SetVolume(p.volPct + volumeStep)
}

// DecVolume lowers the volume one step and returns the new percentage.
func (p *Player) DecVolume() int {
	return p.SetVolume(p.volPct - volumeStep)
}

// Volume returns the current volume percentage.
func (p *Player) Volume() int {
	return p.volPct
}

// SetVolume sets the volume in percent, clamped to 0-100, and returns
// the applied value.
func (p *Player) SetVolume(pct int) int {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	p.volPct = pct
	p.applyVolume()
	return p.volPct
}

func (p *Player) applyVolume() {
	speaker.Lock()
	p.volume.Silent = p.muted || p.volPct == 0
	p.volume.Volume = gainFor(p.volPct)
	speaker.Unlock()
}

// gainFor maps a percentage to an exponential base-2 gain: 100% is
// unity, each 10% step is half a power of two down.
func gainFor(pct int) float64 {
	return float64(pct-100) / 20.0
}

// Playtime returns the elapsed audible playback time.
func (p *Player) Playtime() time.Duration {
	return p.clock.Playtime()
}

// Destroy stops playback and releases the stream.
func (p *Player) Destroy() {
	speaker.Clear()
	p.streamer.Close()
}
