package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/quantwatch/quantwatch/domain/firm"
	"github.com/quantwatch/quantwatch/domain/store"
	"github.com/quantwatch/quantwatch/internal/database"
	"gorm.io/gorm"
)

// FirmStore implements firm.Store using GORM.
type FirmStore struct {
	database.Repository[firm.Firm, FirmModel]
	db database.Database
}

// NewFirmStore creates a new FirmStore.
func NewFirmStore(db database.Database) FirmStore {
	return FirmStore{
		Repository: database.NewRepository(db, FirmMapper{}, "firm"),
		db:         db,
	}
}

// GetOrCreate returns the firm with the candidate's name, inserting the
// candidate when no such firm exists. Attributes of an existing firm
// are left untouched.
func (s FirmStore) GetOrCreate(ctx context.Context, candidate firm.Firm) (firm.Firm, error) {
	mapper := FirmMapper{}
	return database.WithTransactionResult(ctx, s.db, func(tx *gorm.DB) (firm.Firm, error) {
		var model FirmModel
		err := tx.Where("name = ?", candidate.Name()).First(&model).Error
		if err == nil {
			return mapper.ToDomain(model), nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return firm.Firm{}, fmt.Errorf("look up firm: %w", err)
		}

		model = mapper.ToModel(candidate)
		model.ID = 0
		if err := tx.Create(&model).Error; err != nil {
			return firm.Firm{}, fmt.Errorf("create firm: %w", err)
		}
		return mapper.ToDomain(model), nil
	})
}

// ByName returns the firm with the given name.
func (s FirmStore) ByName(ctx context.Context, name string) (firm.Firm, error) {
	return s.FindOne(ctx, store.WithName(name))
}

// HavingEvents returns every firm with at least one stored event,
// ordered by name.
func (s FirmStore) HavingEvents(ctx context.Context) ([]firm.Firm, error) {
	mapper := FirmMapper{}
	sub := s.DB(ctx).Model(&EventModel{}).Distinct("firm_id")

	var models []FirmModel
	if err := s.DB(ctx).Where("id IN (?)", sub).Order("name ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list firms with events: %w", err)
	}

	firms := make([]firm.Firm, len(models))
	for i, model := range models {
		firms[i] = mapper.ToDomain(model)
	}
	return firms, nil
}
