// Command blockfall-tui plays the game in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/highscore"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// The screen owns stdout, so logs go to a file or nowhere.
	closeLog, err := config.SetupLog(cfg.LogFile, io.Discard)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closeLog()

	store := highscore.NewStore(highscore.NewFileBackend(cfg.HighScoreDir))
	opts, err := cfg.GameOptions(store)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	game := tetris.NewGame(opts...)
	t := newTerminal(screen, game, store, cfg)
	t.run()
	screen.Fini()

	fmt.Printf("Final score: %d (level %d, %d lines)\n", game.Score(), game.Level(), game.Lines())
	if game.IsNewHighScore() {
		fmt.Println("New high score!")
	}
}
