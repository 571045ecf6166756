package main

import (
	"context"
	"log"
	"os"
	"os/exec"
	"time"

	"github.com/log-ai-n/manassistant/internal/db"
	"github.com/log-ai-n/manassistant/internal/importer"
	"github.com/log-ai-n/manassistant/internal/ocr"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Note: No .env file found, using environment variables")
	}

	log.Println("🧠 Import worker starting...")

	if os.Getenv("DATABASE_URL") == "" {
		log.Fatal("DATABASE_URL is not set in .env")
	}
	if _, err := exec.LookPath("tesseract"); err != nil {
		log.Fatal("Required binary missing: tesseract")
	}

	// Database connection
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	log.Println("✅ Connected to PostgreSQL")

	service := ocr.NewService(importer.NewPostgresRepository(pgDB))

	log.Println("✅ Import worker initialized and running...")
	log.Println("Processing image imports every 2 seconds. Press Ctrl+C to stop.")

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if err := service.ProcessOne(context.Background()); err != nil {
			log.Printf("⚠️  Import worker error: %v", err)
		}
	}
}
