package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/dropdeck/audio"
	"github.com/lixenwraith/dropdeck/clock"
	"github.com/lixenwraith/dropdeck/gesture"
	"github.com/lixenwraith/dropdeck/item"
	"github.com/lixenwraith/dropdeck/terminal"
	"github.com/lixenwraith/dropdeck/ui"
)

var (
	delayFlag     = flag.Duration("delay", 0, "Hold duration before a press becomes a drag (0 = default)")
	toleranceFlag = flag.Int("tolerance", 0, "Cells of movement before a press becomes a drag (0 = default)")
	muteFlag      = flag.Bool("mute", false, "Disable the audio strip")
)

func main() {
	// Panic recovery: restore the terminal to a sane state before dying
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mDROPDECK CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg := gesture.DefaultConfig()
	if *delayFlag > 0 {
		cfg.Delay = *delayFlag
	}
	if *toleranceFlag > 0 {
		cfg.Tolerance = *toleranceFlag
	}

	term, err := terminal.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal: %v\n", err)
		os.Exit(1)
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer term.Fini()

	store := item.NewStore(
		item.File("file-1", "Document.pdf"),
		item.File("file-2", "Image.jpg"),
		item.File("file-3", "Notes.txt"),
		item.Folder("folder-1", "Work"),
		item.Folder("folder-2", "Personal"),
	)

	opts := ui.Options{Gesture: cfg}
	if !*muteFlag {
		// Audio is best-effort: a missing device pauses the strip but
		// never blocks the shelf
		opts.Player = audio.NewPlayer(audio.DemoFormat, audio.DemoTrack())
	}

	shelf := ui.NewShelf(term, clock.NewSystem(), store, opts)
	shelf.Run()
}
