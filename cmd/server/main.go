package main

import (
	"fmt"
	"log"
	"os"

	"ytcap/internal/handlers"
	"ytcap/internal/version"
	"ytcap/internal/youtube"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8888"
	}

	client := youtube.NewClient()
	e := handlers.NewRouter(client)

	log.Printf("Starting ytcap v%s on port %s", version.Version, port)
	if err := e.Start(fmt.Sprintf(":%s", port)); err != nil {
		log.Fatal(err)
	}
}
