package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/aeokit/aeograph/internal/config"
	"github.com/aeokit/aeograph/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := server.NewServer()

	cfgPath := os.Getenv("AEO_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/options.toml"
	}
	watcher := config.NewWatcher(cfgPath, srv.ReplaceOptions)
	go func() {
		if err := watcher.Watch(context.Background()); err != nil && err != context.Canceled {
			log.Printf("Config watcher stopped: %v", err)
		}
	}()

	r := srv.SetupRouter()

	log.Printf("Starting server on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
