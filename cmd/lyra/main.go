package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/lyra-player/lyra/internal/audio"
	"github.com/lyra-player/lyra/internal/config"
	"github.com/lyra-player/lyra/internal/display"
	"github.com/lyra-player/lyra/internal/logger"
	"github.com/lyra-player/lyra/internal/lyrics"
	"github.com/lyra-player/lyra/internal/state"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Invalid arguments:")
		fmt.Fprintf(os.Stderr, "Usage:\n %s [FILE]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Supported formats: %s\n",
			strings.ToUpper(strings.Join(audio.SupportedFormats, ", ")))
		os.Exit(1)
	}

	fmt.Println("Launching...")
	if err := run(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run initializes everything before the UI appears, then drives the
// polling loop until the track ends or the user quits.
func run(file string) error {
	cfg := config.Load()

	if err := logger.Init(filepath.Join(os.TempDir(), "lyra.log")); err == nil {
		defer logger.Close()
	}

	info, err := audio.ReadInfo(file)
	if err != nil {
		return err
	}

	player, err := audio.NewPlayer(file, cfg.InitialVolume)
	if err != nil {
		return err
	}

	doc, lyricsErr := lyrics.Load(lyricsPath(file))
	logger.LogWithErr("lyrics load", lyricsErr)

	d, err := display.New(file, display.Options{
		ScrollInterval: cfg.ScrollInterval,
		ScrollPause:    cfg.ScrollPause,
		MessageTime:    cfg.StatusMessageTime,
	})
	if err != nil {
		player.Destroy()
		return err
	}
	d.Init()

	if !d.SizeCheck() {
		d.Destroy()
		player.Destroy()
		return fmt.Errorf("terminal is too small: the minimum required size is 100x28")
	}

	d.SetTrackInfo(info.Meta)
	d.SetTrackLength(info.Length)
	d.SetFileQuality(info)
	if lyricsErr != nil {
		d.SetUnavailable()
	}
	d.Refresh()

	session := state.NewManager()
	d.SetPlaybackStatus(true)
	player.Play()
	session.Play()

	var bank *lyrics.Bank

	for !player.IsFinished() && !session.IsFinished() {
		if session.IsPlaying() {
			// Playtime is sampled once per iteration so the progress
			// display and the lyric lookup agree.
			playtime := player.Playtime()
			d.UpdateProgress(playtime, info.Length)
			d.HandleScroll()

			if doc != nil {
				if bank == nil {
					b := doc.Bank(nil)
					bank = &b
				}
				if bank.IsExpired(playtime) && bank.NextAvailable() {
					b := doc.Bank(bank)
					bank = &b
				}
				d.SetActiveLine(bank.Active(playtime))
				d.SetLyricsBank(bank, playtime)
			}
		}

		d.StatusMessageTick()

		if event, ok := d.CaptureEvent(); ok {
			processEvent(event, player, d, session)
		}
		d.Refresh()

		time.Sleep(cfg.TickInterval)
	}

	player.Destroy()
	d.Destroy()
	return nil
}

// processEvent applies one keyboard command to the player and the UI.
func processEvent(event display.Event, player *audio.Player, d *display.Display, session *state.Manager) {
	switch event.Kind {
	case display.EventPlay:
		player.Play()
		session.Play()
		d.SetPlaybackStatus(true)
		d.SetStatusMessage("Resumed")
	case display.EventPause:
		player.Pause()
		session.Pause()
		d.SetPlaybackStatus(false)
		d.SetStatusMessage("Paused")
	case display.EventToggleMute:
		if player.IsMuted() {
			player.Unmute()
			d.SetStatusMessage("Unmuted")
		} else {
			player.Mute()
			d.SetStatusMessage("Muted")
		}
	case display.EventVolUp:
		d.SetStatusMessage(fmt.Sprintf("+ Volume (%d%%)", player.IncVolume()))
	case display.EventVolDown:
		d.SetStatusMessage(fmt.Sprintf("- Volume (%d%%)", player.DecVolume()))
	case display.EventQuit:
		session.Finish()
	case display.EventInvalid:
		if unicode.IsLetter(event.Key) || unicode.IsDigit(event.Key) {
			d.SetStatusMessage(fmt.Sprintf("Unknown command '%c'", event.Key))
		} else {
			d.SetStatusMessage("Unknown command")
		}
	}
}

// lyricsPath derives the lyrics sidecar path by replacing the audio
// file's extension with .json.
func lyricsPath(file string) string {
	return strings.TrimSuffix(file, filepath.Ext(file)) + ".json"
}
