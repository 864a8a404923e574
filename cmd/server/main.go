package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"spacexdash/internal/config"
	"spacexdash/internal/dataset"
	"spacexdash/internal/server"
)

func main() {
	cfg := config.Load()

	// Optional dashboard settings
	yamlCfg, err := config.LoadYAMLConfig(cfg.ConfigFile)
	if err != nil {
		log.Fatalf("Failed to load config file %s: %v", cfg.ConfigFile, err)
	}
	yamlCfg.Apply(cfg)

	// Load the dataset once; nothing can be served without it
	ds, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}
	log.Printf("Loaded %d launches from %d sites (dataset %s)", ds.Len(), len(ds.Sites()), ds.ID())

	deps, err := server.NewDeps(cfg, ds)
	if err != nil {
		log.Fatalf("Failed to build dashboard: %v", err)
	}

	srv := server.New(cfg)
	srv.RegisterRoutes(deps)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
