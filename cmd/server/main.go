// Package main is the entry point for the Lingo API server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lingokit/lingo-api/internal/config"
	"github.com/lingokit/lingo-api/internal/database"
	"github.com/lingokit/lingo-api/internal/router"
	"github.com/lingokit/lingo-api/internal/services/diagnostics"
	"github.com/lingokit/lingo-api/internal/services/speech"
	"github.com/lingokit/lingo-api/internal/services/vocab"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("🚀 Lingo API %s starting...", Version)

	// Step 1: Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	log.Printf("📋 Config loaded: port=%s, gin_mode=%s, token_ttl=%dm", cfg.Port, cfg.GinMode, cfg.TokenTTLMin)

	// Step 2: Connect to Database
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("✅ Database connected")

	// Run migrations
	if err := db.RunMigrations("migrations"); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	// Step 3: Seed vocabulary sets from YAML files
	loader := vocab.NewLoader(cfg.VocabDir, db)
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	n, err := loader.Load(seedCtx)
	cancelSeed()
	if err != nil {
		log.Fatalf("❌ Vocabulary seeding failed: %v", err)
	}
	log.Printf("✅ Vocabulary seeded: %d sets", n)

	// Step 4: Create Services
	transcriber := speech.NewTranscriber(cfg.GroqAPIKey, cfg.GroqModel, cfg.GroqBaseURL)
	if transcriber.IsConfigured() {
		log.Printf("✅ Speech transcription enabled (model: %s)", cfg.GroqModel)
	} else {
		log.Println("⚠️  Speech transcription disabled (set GROQ_API_KEY to enable)")
	}

	if cfg.AccessSecret != "" {
		log.Println("✅ Access secret configured (token issuance gated)")
	} else {
		log.Println("⚠️  No access secret set (token issuance is open — set ACCESS_SECRET in production)")
	}

	diag := diagnostics.New(Version, cfg.GinMode, transcriber.IsConfigured(), cfg.AccessSecret != "")

	// Step 5: Setup HTTP Router
	r := router.Setup(cfg, db, transcriber, diag)

	// Step 6: Start the HTTP Server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🌐 Server listening on http://localhost:%s", cfg.Port)
		log.Printf("📖 Health check: http://localhost:%s/api/v1/health", cfg.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	// Step 7: Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	log.Printf("🛑 Received signal %v, shutting down gracefully...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("⚠️  Server forced to shutdown: %v", err)
	}

	log.Println("👋 Server stopped. Goodbye!")
}
