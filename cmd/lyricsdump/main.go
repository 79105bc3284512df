package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lyra-player/lyra/internal/lyrics"
)

// lyricsdump parses and normalizes a lyrics sidecar file and prints
// the timed lines, for inspecting what the player will show.
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage:\n %s [LYRICS.json]\n", os.Args[0])
		os.Exit(1)
	}

	doc, err := lyrics.Load(os.Args[1])
	if err != nil {
		if errors.Is(err, lyrics.ErrUnavailable) {
			fmt.Println("no lyrics available")
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("syncType: %s, %d lines\n\n", doc.SyncType, len(doc.Lines))
	for _, line := range doc.Lines {
		end := "?"
		if line.HasEnd() {
			end = line.End.String()
		}
		fmt.Printf("%12s - %-12s %s\n", line.Start, end, line.Text)
	}
}
