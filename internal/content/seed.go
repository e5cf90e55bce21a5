package content

import (
	"context"
	"fmt"

	"github.com/abhisek/fika/internal/badges"
	"github.com/abhisek/fika/internal/store"
)

// SaveCatalog upserts catalog entries into repo.
func SaveCatalog(ctx context.Context, repo store.ContentRepo, catalog []badges.Metadata) (int, error) {
	records := make([]store.BadgeRecord, 0, len(catalog))
	for _, m := range catalog {
		records = append(records, m.Record())
	}
	n, err := repo.SaveBadges(ctx, records)
	if err != nil {
		return n, fmt.Errorf("save badge catalog: %w", err)
	}
	return n, nil
}

// Seed loads the built-in badge catalog and topic list. It is safe to run
// repeatedly.
func Seed(ctx context.Context, repo store.ContentRepo) (badgeCount, topicCount int, err error) {
	if badgeCount, err = SaveCatalog(ctx, repo, DefaultCatalog()); err != nil {
		return badgeCount, 0, err
	}
	if topicCount, err = repo.SaveTopics(ctx, DefaultTopics()); err != nil {
		return badgeCount, topicCount, fmt.Errorf("save topics: %w", err)
	}
	return badgeCount, topicCount, nil
}
