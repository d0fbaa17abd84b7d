package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"docrank/collection"
	"docrank/config"
	"docrank/extract"
	"docrank/keywords"
	"docrank/pkg/embedding"
)

const runtimeBudget = 10 * time.Second

func main() {
	// =========
	// Config
	// =========
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	tuning := config.DefaultTuning()

	// =========
	// Logging
	// =========
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	// =========
	// Embedding
	// =========
	var embedder embedding.Client
	if cfg.EmbeddingURL != "" {
		embedder = embedding.NewTEIClient(cfg.EmbeddingURL)
		logger.Info("using embedding service", zap.String("url", cfg.EmbeddingURL))
	} else {
		embedder = embedding.NewTermFreqVectorizer()
		logger.Info("no embedding service configured, using term-frequency vectorizer")
	}

	// =========
	// Synonyms
	// =========
	var synonyms keywords.SynonymProvider
	if cfg.SynonymPath != "" {
		dict, err := keywords.LoadDictionary(cfg.SynonymPath)
		if err != nil {
			log.Fatalf("Failed to load synonym dictionary: %v", err)
		}
		synonyms = dict
	} else {
		synonyms = keywords.NewDictionary()
	}

	// =========
	// Pipeline
	// =========
	extractor := extract.NewExtractor(tuning, logger)
	deriver := keywords.NewDeriver(keywords.NewSnowballLemmatizer(), synonyms, tuning, logger)
	orchestrator, err := collection.NewOrchestrator(extractor, deriver, embedder, tuning, cfg.DocumentWorkers, logger)
	if err != nil {
		log.Fatalf("Failed to initialize pipeline: %v", err)
	}

	start := time.Now()
	if err := run(context.Background(), cfg, orchestrator, logger); err != nil {
		logger.Fatal("batch failed", zap.Error(err))
	}

	elapsed := time.Since(start)
	logger.Info("batch completed", zap.Duration("runtime", elapsed))
	if elapsed > runtimeBudget {
		logger.Warn("runtime exceeds budget, optimization may be needed",
			zap.Duration("runtime", elapsed),
			zap.Duration("budget", runtimeBudget))
	}
}

// run processes every collection directory under the input dir. Collections
// are independent: a failed collection is logged and does not affect its
// siblings.
func run(ctx context.Context, cfg *config.Config, orchestrator *collection.Orchestrator, logger *zap.Logger) error {
	entries, err := os.ReadDir(cfg.InputDir)
	if err != nil {
		return err
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, filepath.Join(cfg.InputDir, entry.Name()))
		}
	}
	logger.Info("processing collections", zap.Int("count", len(dirs)))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.CollectionWorkers)
	for _, dir := range dirs {
		dir := dir
		g.Go(func() error {
			if err := orchestrator.ProcessCollection(gctx, dir, cfg.OutputDir); err != nil {
				logger.Error("collection failed",
					zap.String("collection", filepath.Base(dir)),
					zap.Error(err))
			}
			return nil
		})
	}
	return g.Wait()
}
