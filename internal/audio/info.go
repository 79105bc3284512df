package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
)

// Format identifies a supported audio container.
type Format int

const (
	Unknown Format = iota
	FLAC
	WAV
	OGG
	MP3
)

// SupportedFormats lists the file extensions the player accepts.
var SupportedFormats = []string{"wav", "flac", "ogg", "mp3"}

func (f Format) String() string {
	switch f {
	case FLAC:
		return "FLAC"
	case WAV:
		return "WAV"
	case OGG:
		return "OGG"
	case MP3:
		return "MP3"
	default:
		return "unknown"
	}
}

// Lossless reports whether the format preserves the original signal.
func (f Format) Lossless() bool {
	return f == FLAC || f == WAV
}

// Meta is the displayable track metadata.
type Meta struct {
	Title  string
	Album  string
	Artist string
}

// FileInfo describes an audio file: format, quality and metadata.
type FileInfo struct {
	FileName   string
	Format     Format
	Length     time.Duration
	SampleRate int
	Stereo     bool
	Meta       Meta
}

// FormatOf derives the format from the file extension,
// case-insensitively. Unknown extensions yield Unknown.
func FormatOf(path string) Format {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "flac":
		return FLAC
	case "wav":
		return WAV
	case "ogg":
		return OGG
	case "mp3":
		return MP3
	default:
		return Unknown
	}
}

// ReadInfo opens the file once for decoding parameters and once more
// for the tag reader, and assembles the display information. Missing
// tags fall back to "Unknown" rather than failing.
func ReadInfo(path string) (*FileInfo, error) {
	format := FormatOf(path)
	if format == Unknown {
		return nil, fmt.Errorf("unsupported file format: %s", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	streamer, beepFormat, err := decode(path, f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	defer streamer.Close()

	info := &FileInfo{
		FileName:   path,
		Format:     format,
		Length:     beepFormat.SampleRate.D(streamer.Len()),
		SampleRate: int(beepFormat.SampleRate),
		Stereo:     beepFormat.NumChannels > 1,
		Meta:       readMeta(path),
	}
	return info, nil
}

func readMeta(path string) Meta {
	meta := Meta{Title: "Unknown", Album: "Unknown", Artist: "Unknown"}

	f, err := os.Open(path)
	if err != nil {
		return meta
	}
	defer f.Close()

	tags, err := tag.ReadFrom(f)
	if err != nil {
		return meta
	}
	if title := tags.Title(); title != "" {
		meta.Title = title
	}
	if album := tags.Album(); album != "" {
		meta.Album = album
	}
	if artist := tags.Artist(); artist != "" {
		meta.Artist = artist
	}
	return meta
}
