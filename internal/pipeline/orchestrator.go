package pipeline

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/josesiqueira/tampere-food-intelligence/internal/llm"
	"github.com/josesiqueira/tampere-food-intelligence/internal/menu"
	"github.com/josesiqueira/tampere-food-intelligence/internal/watch"
)

// Store is the persistence target for enriched extractions.
type Store interface {
	EnsureInitialized() error
	Append(sourceImage string, enriched *menu.EnrichedExtraction) error
}

// Orchestrator drives each image through
// extract -> dedup -> enrich -> persist.
type Orchestrator struct {
	extractor llm.Extractor
	enricher  llm.Enricher
	store     Store
	watcher   *watch.Watcher

	// Concurrency bounds both the initial sweep and the live worker
	// pool, so a full folder cannot flood the external services.
	concurrency int

	// ReadyWait bounds the stable-size check before an image is read.
	ReadyWait time.Duration
}

func NewOrchestrator(
	extractor llm.Extractor,
	enricher llm.Enricher,
	store Store,
	watcher *watch.Watcher,
	concurrency int,
) *Orchestrator {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Orchestrator{
		extractor:   extractor,
		enricher:    enricher,
		store:       store,
		watcher:     watcher,
		concurrency: concurrency,
		ReadyWait:   2 * time.Second,
	}
}

// ProcessImage runs the full per-image state machine. The returned
// error is always a *StageError naming the failed stage.
func (o *Orchestrator) ProcessImage(ctx context.Context, path string) error {
	name := filepath.Base(path)
	jobID := uuid.New().String()[:8]

	log.Printf("PROCESSING job=%s image=%s", jobID, name)

	watch.WaitStable(path, o.ReadyWait)

	imageData, err := os.ReadFile(path)
	if err != nil {
		return &StageError{Stage: StageExtracting, Image: name, Err: err}
	}

	extraction, err := o.extractor.ExtractMenu(ctx, imageData, menu.MediaType(name))
	if err != nil {
		return &StageError{Stage: StageExtracting, Image: name, Err: err}
	}

	log.Printf("EXTRACT_DONE job=%s image=%s restaurant=%q items=%d",
		jobID, name, extraction.RestaurantName, len(extraction.Items))

	items := menu.Dedup(extraction.Items)
	if dropped := len(extraction.Items) - len(items); dropped > 0 {
		log.Printf("DEDUP_DONE job=%s image=%s dropped=%d", jobID, name, dropped)
	}

	enrichment, err := o.enricher.EnrichRestaurant(ctx, extraction.RestaurantName)
	if err != nil {
		return &StageError{Stage: StageEnriching, Image: name, Err: err}
	}

	log.Printf("ENRICH_DONE job=%s restaurant=%q cuisine=%q",
		jobID, extraction.RestaurantName, enrichment.CuisineType)

	enriched := &menu.EnrichedExtraction{
		RestaurantName: extraction.RestaurantName,
		CuisineType:    enrichment.CuisineType,
		GoogleRating:   enrichment.GoogleRating,
		Address:        enrichment.Address,
		Items:          items,
	}

	if err := o.store.Append(name, enriched); err != nil {
		return &StageError{Stage: StagePersisting, Image: name, Err: err}
	}

	log.Printf("PERSISTED job=%s image=%s rows=%d", jobID, name, len(items))

	return nil
}

// handle reports a per-image failure and moves on. One image's error
// never reaches the watcher or other in-flight pipelines.
func (o *Orchestrator) handle(ctx context.Context, path string) {
	if err := o.ProcessImage(ctx, path); err != nil {
		log.Printf("⚠️  %v", err)
	}
}

// Run sweeps the folder, then watches it until ctx is cancelled.
// All sweep pipelines finish before any live event is processed.
func (o *Orchestrator) Run(ctx context.Context) error {
	if err := o.watcher.CheckFolder(); err != nil {
		return err
	}

	if err := o.store.EnsureInitialized(); err != nil {
		return err
	}

	images, err := o.watcher.Sweep()
	if err != nil {
		return err
	}

	if len(images) > 0 {
		log.Printf("Processing %d existing image(s)...", len(images))

		var g errgroup.Group
		g.SetLimit(o.concurrency)
		for _, path := range images {
			path := path
			g.Go(func() error {
				o.handle(ctx, path)
				return nil
			})
		}
		_ = g.Wait()
	}

	log.Printf("Watching %s for new images. Press Ctrl+C to stop.", o.watcher.Folder())

	events := make(chan string, 64)

	go func() {
		if err := o.watcher.Run(ctx, events); err != nil && ctx.Err() == nil {
			log.Printf("watch loop stopped: %v", err)
		}
		close(events)
	}()

	var wg sync.WaitGroup
	for i := 0; i < o.concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range events {
				o.handle(ctx, path)
			}
		}()
	}
	wg.Wait()

	return ctx.Err()
}
