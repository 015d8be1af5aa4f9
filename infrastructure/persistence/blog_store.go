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

// BlogStore implements content.BlogStore using GORM.
type BlogStore struct {
	database.Repository[content.BlogPost, BlogPostModel]
	db database.Database
}

// NewBlogStore creates a new BlogStore.
func NewBlogStore(db database.Database) BlogStore {
	return BlogStore{
		Repository: database.NewRepository(db, BlogMapper{}, "blog post"),
		db:         db,
	}
}

// Add inserts the post unless one with the same URL already exists.
// Duplicates return created=false with no error.
func (s BlogStore) Add(ctx context.Context, post content.BlogPost) (content.BlogPost, bool, error) {
	mapper := BlogMapper{}
	res, err := database.WithTransactionResult(ctx, s.db, func(tx *gorm.DB) (addResult[content.BlogPost], error) {
		var count int64
		err := tx.Model(&BlogPostModel{}).
			Where("url = ?", post.URL()).
			Count(&count).Error
		if err != nil {
			return addResult[content.BlogPost]{}, fmt.Errorf("check blog post exists: %w", err)
		}
		if count > 0 {
			return addResult[content.BlogPost]{}, nil
		}

		model := mapper.ToModel(post)
		model.ID = 0
		if err := tx.Create(&model).Error; err != nil {
			return addResult[content.BlogPost]{}, fmt.Errorf("create blog post: %w", err)
		}
		return addResult[content.BlogPost]{entity: mapper.ToDomain(model), created: true}, nil
	})
	if err != nil {
		return content.BlogPost{}, false, err
	}
	return res.entity, res.created, nil
}

// Unnotified returns every post not yet announced, oldest first.
func (s BlogStore) Unnotified(ctx context.Context) ([]content.BlogPost, error) {
	return s.Find(ctx, store.WithPending(), store.WithOrderAsc("created_at"))
}

// MarkNotified flips the notified flag for one post.
func (s BlogStore) MarkNotified(ctx context.Context, id int64) error {
	result := s.DB(ctx).Model(&BlogPostModel{}).Where("id = ?", id).Updates(map[string]any{
		"notified":   true,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return fmt.Errorf("mark blog post notified: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: blog post %d", database.ErrNotFound, id)
	}
	return nil
}
