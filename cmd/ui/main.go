// Command ui runs the roadmap server with templates and static files read
// from disk, so edits show up on reload without rebuilding.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"roadmap/internal/config"
	"roadmap/internal/container"
	"roadmap/ui"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	root := flag.String("root", ".", "module root containing ui/templates and ui/static")
	flag.Parse()

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
		log.Fatalf("Failed to load roadmap content: %v", err)
	}

	server := ui.NewServer(os.DirFS(*root))
	if err := server.Initialize(appContainer.Roadmaps, appContainer.Sessions, appConfig.Server.SessionCookie); err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}
	log.Fatal(server.Start(appConfig.Addr()))
}
