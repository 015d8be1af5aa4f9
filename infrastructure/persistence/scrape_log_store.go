package persistence

import (
	"context"
	"fmt"

	"github.com/quantwatch/quantwatch/domain/content"
	"github.com/quantwatch/quantwatch/domain/store"
	"github.com/quantwatch/quantwatch/internal/database"
)

// ScrapeLogStore implements content.ScrapeLogStore using GORM.
type ScrapeLogStore struct {
	database.Repository[content.ScrapeLog, ScrapeLogModel]
}

// NewScrapeLogStore creates a new ScrapeLogStore.
func NewScrapeLogStore(db database.Database) ScrapeLogStore {
	return ScrapeLogStore{
		Repository: database.NewRepository(db, ScrapeLogMapper{}, "scrape log"),
	}
}

// Log appends one scrape record.
func (s ScrapeLogStore) Log(ctx context.Context, entry content.ScrapeLog) (content.ScrapeLog, error) {
	mapper := ScrapeLogMapper{}
	model := mapper.ToModel(entry)
	model.ID = 0
	if err := s.DB(ctx).Create(&model).Error; err != nil {
		return content.ScrapeLog{}, fmt.Errorf("create scrape log: %w", err)
	}
	return mapper.ToDomain(model), nil
}

// Recent returns the most recent entries, newest first.
func (s ScrapeLogStore) Recent(ctx context.Context, limit int) ([]content.ScrapeLog, error) {
	return s.Find(ctx, store.WithOrderDesc("scraped_at"), store.WithLimit(limit))
}
