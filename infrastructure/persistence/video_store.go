package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/quantwatch/quantwatch/domain/content"
	"github.com/quantwatch/quantwatch/domain/store"
	"github.com/quantwatch/quantwatch/internal/database"
	"gorm.io/gorm"
)

// VideoStore implements content.VideoStore using GORM.
type VideoStore struct {
	database.Repository[content.VideoContent, VideoContentModel]
	db database.Database
}

// NewVideoStore creates a new VideoStore.
func NewVideoStore(db database.Database) VideoStore {
	return VideoStore{
		Repository: database.NewRepository(db, VideoMapper{}, "video"),
		db:         db,
	}
}

// Add inserts the video unless one with the same URL already exists.
// Duplicates return created=false with no error.
func (s VideoStore) Add(ctx context.Context, video content.VideoContent) (content.VideoContent, bool, error) {
	mapper := VideoMapper{}
	res, err := database.WithTransactionResult(ctx, s.db, func(tx *gorm.DB) (addResult[content.VideoContent], error) {
		var count int64
		err := tx.Model(&VideoContentModel{}).
			Where("url = ?", video.URL()).
			Count(&count).Error
		if err != nil {
			return addResult[content.VideoContent]{}, fmt.Errorf("check video exists: %w", err)
		}
		if count > 0 {
			return addResult[content.VideoContent]{}, nil
		}

		model := mapper.ToModel(video)
		model.ID = 0
		if err := tx.Create(&model).Error; err != nil {
			return addResult[content.VideoContent]{}, fmt.Errorf("create video: %w", err)
		}
		return addResult[content.VideoContent]{entity: mapper.ToDomain(model), created: true}, nil
	})
	if err != nil {
		return content.VideoContent{}, false, err
	}
	return res.entity, res.created, nil
}

// Unnotified returns every video not yet announced, oldest first.
func (s VideoStore) Unnotified(ctx context.Context) ([]content.VideoContent, error) {
	return s.Find(ctx, store.WithPending(), store.WithOrderAsc("created_at"))
}

// MarkNotified flips the notified flag for one video.
func (s VideoStore) MarkNotified(ctx context.Context, id int64) error {
	result := s.DB(ctx).Model(&VideoContentModel{}).Where("id = ?", id).Updates(map[string]any{
		"notified":   true,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return fmt.Errorf("mark video notified: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: video %d", database.ErrNotFound, id)
	}
	return nil
}
