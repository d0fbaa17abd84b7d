package collection

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"docrank/config"
	"docrank/extract"
	"docrank/keywords"
	"docrank/pkg/embedding"
	"docrank/relevance"
	"docrank/selector"
)

// ErrEmptyCollection is returned when every document in a collection failed
// extraction; no output is written in that case.
var ErrEmptyCollection = errors.New("no documents could be processed")

// SectionSource extracts section candidates from one document file. The
// extractor implements it; tests substitute a deterministic stub.
type SectionSource interface {
	ExtractFile(path, document string) ([]extract.Section, error)
}

const timestampLayout = "2006-01-02T15:04:05.000000"

// Orchestrator drives one collection end to end: extraction across the
// document set with bounded parallel workers, keyword derivation once,
// scoring over every candidate, then selection and output assembly.
type Orchestrator struct {
	source   SectionSource
	deriver  *keywords.Deriver
	embedder embedding.Client
	selector *selector.Selector
	tuning   config.Tuning
	workers  int
	logger   *zap.Logger
	now      func() time.Time
}

func NewOrchestrator(source SectionSource, deriver *keywords.Deriver, embedder embedding.Client, tuning config.Tuning, workers int, logger *zap.Logger) (*Orchestrator, error) {
	if workers < 1 {
		workers = 1
	}
	sel, err := selector.New(tuning)
	if err != nil {
		return nil, err
	}
	return &Orchestrator{
		source:   source,
		deriver:  deriver,
		embedder: embedder,
		selector: sel,
		tuning:   tuning,
		workers:  workers,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// ProcessCollection loads the collection's job descriptor, runs the
// pipeline and writes the result JSON. A failed collection writes nothing.
func (o *Orchestrator) ProcessCollection(ctx context.Context, collectionDir, outputDir string) error {
	name := filepath.Base(collectionDir)

	job, err := LoadJob(filepath.Join(collectionDir, InputFileName))
	if err != nil {
		return fmt.Errorf("collection %s: %w", name, err)
	}

	out, err := o.Process(ctx, job, filepath.Join(collectionDir, PDFDirName))
	if err != nil {
		return fmt.Errorf("collection %s: %w", name, err)
	}

	outputPath := filepath.Join(outputDir, name, OutputFileName)
	if err := WriteOutput(outputPath, out); err != nil {
		return fmt.Errorf("collection %s: %w", name, err)
	}

	o.logger.Info("collection processed",
		zap.String("collection", name),
		zap.String("output", outputPath),
		zap.Int("sections", len(out.ExtractedSections)))
	return nil
}

// Process runs the pipeline over an already-loaded job. Per-document
// failures are logged and skipped; the job fails only when no document at
// all could be processed.
func (o *Orchestrator) Process(ctx context.Context, job *Job, pdfDir string) (*Output, error) {
	runID := uuid.NewString()
	logger := o.logger.With(zap.String("run_id", runID))

	// Extraction results are keyed by document index and re-read in input
	// order below, so parallel completion order never leaks downstream.
	results := make([][]extract.Section, len(job.Documents))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, doc := range job.Documents {
		i, doc := i, doc
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			path := filepath.Join(pdfDir, doc.Filename)
			sections, err := o.source.ExtractFile(path, doc.Filename)
			switch {
			case errors.Is(err, extract.ErrFileMissing):
				logger.Warn("skipping missing document",
					zap.String("document", doc.Filename),
					zap.String("stage", "extract"))
			case err != nil:
				logger.Warn("skipping unreadable document",
					zap.String("document", doc.Filename),
					zap.String("stage", "extract"),
					zap.Error(err))
			default:
				results[i] = sections
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var processed []string
	var summaries []string
	var candidates []relevance.Scored
	for i, doc := range job.Documents {
		if results[i] == nil {
			continue
		}
		processed = append(processed, doc.Filename)
		summaries = append(summaries, doc.Title)
		for _, sec := range results[i] {
			candidates = append(candidates, relevance.Scored{Section: sec, DocIndex: i})
		}
	}
	if len(processed) == 0 {
		return nil, ErrEmptyCollection
	}

	set, err := o.deriver.Derive(job.Persona.Role, job.JobToBeDone.Task, summaries)
	if err != nil {
		return nil, err
	}

	scorer, err := relevance.NewScorer(ctx, set, o.embedder, o.tuning, logger)
	if err != nil {
		return nil, err
	}

	scored, err := scorer.ScoreAll(ctx, candidates)
	if err != nil {
		return nil, err
	}

	ranked := o.selector.Rank(scored, set)
	logger.Info("ranked sections",
		zap.Int("candidates", len(scored)),
		zap.Int("selected", len(ranked)))

	return o.assemble(job, processed, ranked), nil
}

func (o *Orchestrator) assemble(job *Job, processed []string, ranked []selector.Ranked) *Output {
	out := &Output{
		Metadata: Metadata{
			InputDocuments:      processed,
			Persona:             job.Persona.Role,
			JobToBeDone:         job.JobToBeDone.Task,
			ProcessingTimestamp: o.now().UTC().Format(timestampLayout),
		},
		ExtractedSections:  []ExtractedSection{},
		SubsectionAnalysis: []Subsection{},
	}

	for _, sel := range ranked {
		out.ExtractedSections = append(out.ExtractedSections, ExtractedSection{
			Document:       sel.Document,
			SectionTitle:   sel.Title,
			ImportanceRank: sel.Rank,
			PageNumber:     sel.Page,
		})
		out.SubsectionAnalysis = append(out.SubsectionAnalysis, Subsection{
			Document:    sel.Document,
			RefinedText: sel.Refined,
			PageNumber:  sel.Page,
		})
	}

	return out
}
