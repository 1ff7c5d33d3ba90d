// Package publish implements scheduled publishing: drafts whose publish_at
// has passed are flipped to PUBLISHED by the background worker.
package publish

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pressroom/internal/domain/entity"
	"pressroom/internal/repository"
)

// DefaultBatchSize bounds how many due drafts one run will publish.
const DefaultBatchSize = 50

// Service publishes due drafts.
type Service struct {
	Repo repository.ArticleRepository

	// BatchSize caps articles per run; zero means DefaultBatchSize.
	BatchSize int
}

// RunOnce publishes every draft whose publish_at is at or before now and
// returns how many articles changed state. A failure on one article is
// logged and does not stop the rest of the batch.
func (s *Service) RunOnce(ctx context.Context, now time.Time) (int, error) {
	limit := s.BatchSize
	if limit <= 0 {
		limit = DefaultBatchSize
	}

	due, err := s.Repo.ListDuePublish(ctx, now, limit)
	if err != nil {
		return 0, fmt.Errorf("list due articles: %w", err)
	}

	published := 0
	for _, art := range due {
		art.Status = entity.StatusPublished
		art.UpdatedAt = now
		if err := s.Repo.Update(ctx, art); err != nil {
			slog.Error("scheduled publish failed",
				slog.Int64("article_id", art.ID),
				slog.String("slug", art.Slug),
				slog.Any("error", err))
			continue
		}
		published++
		slog.Info("article published on schedule",
			slog.Int64("article_id", art.ID),
			slog.String("slug", art.Slug))
	}
	return published, nil
}
