package adapter

import (
	"context"

	"golang.org/x/sync/errgroup"

	"kincrm/backend/internal/model"
)

// BatchItem pairs one input's extraction with any error it hit.
type BatchItem struct {
	Batch model.ExtractionBatch `json:"batch"`
	Err   string                `json:"error,omitempty"`
}

// ExtractBatch extracts several texts concurrently, preserving input order.
// concurrency caps in-flight LLM calls. Per-text failures surface as
// Success=false batches at their slot; the first hard error cancels the rest.
func (e *Extractor) ExtractBatch(ctx context.Context, texts []string, concurrency int) ([]BatchItem, error) {
	if concurrency <= 0 {
		concurrency = 4
	}

	items := make([]BatchItem, len(texts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			batch, err := e.Extract(ctx, text)
			items[i] = BatchItem{Batch: batch}
			if err != nil {
				items[i].Err = err.Error()
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return items, err
	}
	return items, nil
}
