package main

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"

	"github.com/tgusarov/notekeep/internal/config"
	"github.com/tgusarov/notekeep/internal/handler"
	"github.com/tgusarov/notekeep/internal/logger"
	"github.com/tgusarov/notekeep/internal/server"
	"github.com/tgusarov/notekeep/internal/service"
	"github.com/tgusarov/notekeep/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("note-server")

	// .env is optional; already-set environment variables win
	_ = godotenv.Load()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := store.NewMongoDB(connectCtx, cfg.Storage.Mongo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to storage")
	}

	repositories := store.NewRepositories(db, log)
	services := service.NewServices(repositories, log)
	handlers := handler.NewHandlers(services, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		_ = db.Close(context.Background())
		log.Fatal().Err(err).Msg("error creating server")
	}

	// blocks until a stop signal drains the server
	srv.RunServer()

	if err := db.Close(context.Background()); err != nil {
		log.Err(err).Msg("error closing storage connection")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
