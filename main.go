package main

import (
	"context"
	"embed"
	"log"

	"roadmap/internal/config"
	"roadmap/internal/container"
	"roadmap/ui"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

//go:embed ui/templates/** ui/static/*
var embeddedFiles embed.FS

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(appConfig.Server.GinMode)

	appContainer, err := container.New(appConfig)
	if err != nil {
		log.Fatalf("Failed to create application container: %v", err)
	}
	if err := appContainer.Init(context.Background()); err != nil {
		log.Fatalf("Failed to load roadmap content from %s: %v", appContainer.Content.Describe(), err)
	}

	server := ui.NewServer(embeddedFiles)
	if err := server.Initialize(appContainer.Roadmaps, appContainer.Sessions, appConfig.Server.SessionCookie); err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	log.Fatal(server.Start(appConfig.Addr()))
}
