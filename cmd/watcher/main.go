package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/josesiqueira/tampere-food-intelligence/internal/llm"
	"github.com/josesiqueira/tampere-food-intelligence/internal/pipeline"
	"github.com/josesiqueira/tampere-food-intelligence/internal/store"
	"github.com/josesiqueira/tampere-food-intelligence/internal/watch"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"OPENAI_API_KEY",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	watchFolder := envOr("WATCH_FOLDER", "images_watchfolder")
	csvOutput := envOr("CSV_OUTPUT", "menus-async.csv")
	baseURL := envOr("OPENAI_BASE_URL", "https://api.openai.com/v1")
	extractionModel := envOr("EXTRACTION_MODEL", "gpt-4o")
	enrichmentModel := envOr("ENRICHMENT_MODEL", "gpt-4o")
	concurrency := envIntOr("SWEEP_CONCURRENCY", 4)

	apiKey := os.Getenv("OPENAI_API_KEY")

	// ───────────────────────── WIRING ─────────────────────────
	extractor := llm.NewOpenAIExtractor(baseURL, apiKey, extractionModel)
	enricher := llm.NewWebSearchEnricher(baseURL, apiKey, enrichmentModel)
	csvStore := store.New(csvOutput)
	watcher := watch.New(watchFolder)

	orchestrator := pipeline.NewOrchestrator(
		extractor,
		enricher,
		csvStore,
		watcher,
		concurrency,
	)

	// ───────────────────────── RUN ─────────────────────────
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	log.Printf("🍽️  Menu watcher starting (folder=%s, output=%s)", watchFolder, csvOutput)

	if err := orchestrator.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("❌ %v", err)
	}

	log.Println("Done!")
}

// --------------------------------------------------
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		log.Fatalf("❌ Invalid %s: %s", key, v)
	}
	return n
}
