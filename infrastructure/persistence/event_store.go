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

// EventStore implements content.EventStore using GORM.
type EventStore struct {
	database.Repository[content.Event, EventModel]
	db database.Database
}

// NewEventStore creates a new EventStore.
func NewEventStore(db database.Database) EventStore {
	return EventStore{
		Repository: database.NewRepository(db, EventMapper{}, "event"),
		db:         db,
	}
}

type addResult[T any] struct {
	entity  T
	created bool
}

// Add inserts the event unless one with the same (firm, title) pair
// already exists. Duplicates return created=false with no error.
func (s EventStore) Add(ctx context.Context, event content.Event) (content.Event, bool, error) {
	mapper := EventMapper{}
	res, err := database.WithTransactionResult(ctx, s.db, func(tx *gorm.DB) (addResult[content.Event], error) {
		var count int64
		err := tx.Model(&EventModel{}).
			Where("firm_id = ? AND title = ?", event.FirmID(), event.Title()).
			Count(&count).Error
		if err != nil {
			return addResult[content.Event]{}, fmt.Errorf("check event exists: %w", err)
		}
		if count > 0 {
			return addResult[content.Event]{}, nil
		}

		model := mapper.ToModel(event)
		model.ID = 0
		if err := tx.Create(&model).Error; err != nil {
			return addResult[content.Event]{}, fmt.Errorf("create event: %w", err)
		}
		return addResult[content.Event]{entity: mapper.ToDomain(model), created: true}, nil
	})
	if err != nil {
		return content.Event{}, false, err
	}
	return res.entity, res.created, nil
}

// Unnotified returns every event not yet announced, oldest first.
func (s EventStore) Unnotified(ctx context.Context) ([]content.Event, error) {
	return s.Find(ctx, store.WithPending(), store.WithOrderAsc("created_at"))
}

// MarkNotified flips the notified flag for one event.
func (s EventStore) MarkNotified(ctx context.Context, id int64) error {
	result := s.DB(ctx).Model(&EventModel{}).Where("id = ?", id).Updates(map[string]any{
		"notified":   true,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return fmt.Errorf("mark event notified: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: event %d", database.ErrNotFound, id)
	}
	return nil
}
