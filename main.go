package main

import (
	"flag"
	"log"

	"VisionaryBoard/internal/config"
	"VisionaryBoard/internal/gallery"
	"VisionaryBoard/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML settings file")
	dbPath := flag.String("db", "", "gallery database path (overrides the config file)")
	writeConfig := flag.Bool("write-config", false, "write the effective settings to the -config path and exit")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *dbPath != "" {
		settings.Gallery.DBPath = *dbPath
	}
	if *writeConfig {
		if *configPath == "" {
			log.Fatal("-write-config needs -config")
		}
		if err := config.Save(*configPath, settings); err != nil {
			log.Fatalf("Failed to write settings: %v", err)
		}
		log.Printf("Wrote settings to %s", *configPath)
		return
	}

	store, err := gallery.Open(settings.Gallery.DBPath)
	if err != nil {
		log.Fatalf("Failed to open gallery: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("Error closing gallery: %v", err)
		}
	}()

	log.Println("Starting VisionaryBoard")
	ui.RunApp(settings, store)
}
