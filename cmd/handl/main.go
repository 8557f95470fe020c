package main

import (
	"log"

	_ "github.com/joho/godotenv/autoload"

	"github.com/handl-app/handl/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ handl failed to start: %v", err)
	}
}
