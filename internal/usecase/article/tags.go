package article

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pressroom/internal/domain/entity"
	"pressroom/internal/observability/metrics"
)

// normalizeTagNames drops empty names and removes duplicates while
// preserving the caller's order. Names are otherwise taken exactly as
// supplied: no trimming, and "Go" and "go" are distinct tags.
func normalizeTagNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}
	return result
}

// validateTagNames records a violation for every normalized name that
// exceeds the tag length bound.
func validateTagNames(ve *entity.ValidationErrors, names []string) {
	for _, name := range names {
		if len(name) > entity.MaxTagNameLength {
			ve.Add("tags", fmt.Sprintf("tag %q must not exceed %d characters", name, entity.MaxTagNameLength))
		}
	}
}

// resolveTags maps tag names to IDs, creating tags that do not exist yet.
// Creation runs outside the join-table transaction: a failure here leaves
// already-created tags in place, which is harmless since tags are shared
// across articles.
func (s *Service) resolveTags(ctx context.Context, names []string) ([]int64, error) {
	if len(names) == 0 {
		return nil, nil
	}

	existing, err := s.Tags.FindByNames(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("find tags: %w", err)
	}
	idByName := make(map[string]int64, len(existing))
	for _, tag := range existing {
		idByName[tag.Name] = tag.ID
	}

	ids := make([]int64, 0, len(names))
	attached, created := 0, 0
	for _, name := range names {
		if id, ok := idByName[name]; ok {
			ids = append(ids, id)
			attached++
			continue
		}
		now := time.Now()
		tag := &entity.Tag{Name: name, CreatedAt: now, UpdatedAt: now}
		if err := s.Tags.Create(ctx, tag); err != nil {
			slog.Warn("tag creation failed mid-reconcile",
				slog.String("tag", name),
				slog.Int("created_so_far", created),
				slog.Any("error", err))
			return nil, fmt.Errorf("create tag %q: %w", name, err)
		}
		ids = append(ids, tag.ID)
		created++
	}
	metrics.RecordTagsReconciled(attached, created)
	return ids, nil
}
