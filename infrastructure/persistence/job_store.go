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

// JobStore implements content.JobStore using GORM.
type JobStore struct {
	database.Repository[content.JobPosting, JobPostingModel]
	db database.Database
}

// NewJobStore creates a new JobStore.
func NewJobStore(db database.Database) JobStore {
	return JobStore{
		Repository: database.NewRepository(db, JobMapper{}, "job posting"),
		db:         db,
	}
}

// Add inserts the posting unless one with the same job URL already
// exists. Duplicates return created=false with no error.
func (s JobStore) Add(ctx context.Context, job content.JobPosting) (content.JobPosting, bool, error) {
	mapper := JobMapper{}
	res, err := database.WithTransactionResult(ctx, s.db, func(tx *gorm.DB) (addResult[content.JobPosting], error) {
		var count int64
		err := tx.Model(&JobPostingModel{}).
			Where("job_url = ?", job.JobURL()).
			Count(&count).Error
		if err != nil {
			return addResult[content.JobPosting]{}, fmt.Errorf("check job posting exists: %w", err)
		}
		if count > 0 {
			return addResult[content.JobPosting]{}, nil
		}

		model := mapper.ToModel(job)
		model.ID = 0
		if err := tx.Create(&model).Error; err != nil {
			return addResult[content.JobPosting]{}, fmt.Errorf("create job posting: %w", err)
		}
		return addResult[content.JobPosting]{entity: mapper.ToDomain(model), created: true}, nil
	})
	if err != nil {
		return content.JobPosting{}, false, err
	}
	return res.entity, res.created, nil
}

// Unnotified returns every posting not yet announced, oldest first.
func (s JobStore) Unnotified(ctx context.Context) ([]content.JobPosting, error) {
	return s.Find(ctx, store.WithPending(), store.WithOrderAsc("created_at"))
}

// MarkNotified flips the notified flag for one posting.
func (s JobStore) MarkNotified(ctx context.Context, id int64) error {
	result := s.DB(ctx).Model(&JobPostingModel{}).Where("id = ?", id).Updates(map[string]any{
		"notified":   true,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return fmt.Errorf("mark job posting notified: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: job posting %d", database.ErrNotFound, id)
	}
	return nil
}
