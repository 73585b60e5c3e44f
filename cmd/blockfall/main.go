// Command blockfall plays the game in a desktop window.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/highscore"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	closeLog, err := config.SetupLog(cfg.LogFile, os.Stderr)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closeLog()

	store := highscore.NewStore(highscore.NewFileBackend(cfg.HighScoreDir))
	opts, err := cfg.GameOptions(store)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	game := tetris.NewGame(opts...)
	host := newHost(game, store, cfg)

	if cfg.Debug {
		host.imgui = debugui_ebiten.NewImguiBackend("Blockfall (debug)", 1280, 800)
		host.overlay = debugui.Install(game)
	} else {
		ebiten.SetWindowSize(screenWidth, screenHeight)
		ebiten.SetWindowTitle("Blockfall")
	}
	ebiten.SetTPS(cfg.TickRate)

	log.Printf("Starting blockfall (randomizer=%s, scores=%s)", cfg.Randomizer, cfg.HighScoreDir)
	if err := ebiten.RunGame(host); err != nil {
		log.Fatalf("Game exited: %v", err)
	}
}
