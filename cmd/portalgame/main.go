package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"portalgame/internal/game"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			if _, err := os.Stat(filepath.Join(execDir, "assets")); err == nil {
				os.Chdir(execDir)
			}
		}
	}

	opts := game.DefaultOptions()
	flag.StringVar(&opts.AssetsDir, "assets", opts.AssetsDir, "asset root directory")
	flag.StringVar(&opts.StagePath, "stage", opts.StagePath, "stage file, relative to the asset root")
	flag.StringVar(&opts.TuningPath, "tuning", opts.TuningPath, "optional tuning overrides, relative to the asset root")
	width := flag.Int("width", int(opts.Width), "window width")
	height := flag.Int("height", int(opts.Height), "window height")
	skipTitle := flag.Bool("skip-title", false, "start playing without the title screen")
	flag.Parse()

	opts.Width, opts.Height = int32(*width), int32(*height)
	opts.Title = !*skipTitle

	g, err := game.New(opts)
	if err != nil {
		log.Fatal(err)
	}
	if err := g.Run(); err != nil {
		log.Fatal(err)
	}
}
