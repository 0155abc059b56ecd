package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/smolyneaux/simon/internal/application/director"
	"github.com/smolyneaux/simon/internal/infrastructure/audio"
	"github.com/smolyneaux/simon/internal/infrastructure/config"
	"github.com/smolyneaux/simon/internal/infrastructure/storage"
)

func main() {
	configDir := flag.String("config", "", "Directory containing simon.json (optional)")
	savePath := flag.String("save", "", "High score file path (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *configDir != "" {
		loaded, err := config.NewLoader(*configDir).Load()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *savePath != "" {
		cfg.SavePath = *savePath
	}

	store := storage.NewFileStore(cfg.SavePath)
	cues := audio.NewCues()

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle(cfg.Screen.Title)

	if err := ebiten.RunGame(director.New(cfg, store, cues)); err != nil {
		log.Fatal(err)
	}
}
