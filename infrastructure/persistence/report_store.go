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

// ReportStore implements content.ReportStore using GORM.
type ReportStore struct {
	database.Repository[content.InvestorReport, InvestorReportModel]
	db database.Database
}

// NewReportStore creates a new ReportStore.
func NewReportStore(db database.Database) ReportStore {
	return ReportStore{
		Repository: database.NewRepository(db, ReportMapper{}, "investor report"),
		db:         db,
	}
}

// Add inserts the report unless one with the same URL already exists.
// Duplicates return created=false with no error.
func (s ReportStore) Add(ctx context.Context, report content.InvestorReport) (content.InvestorReport, bool, error) {
	mapper := ReportMapper{}
	res, err := database.WithTransactionResult(ctx, s.db, func(tx *gorm.DB) (addResult[content.InvestorReport], error) {
		var count int64
		err := tx.Model(&InvestorReportModel{}).
			Where("url = ?", report.URL()).
			Count(&count).Error
		if err != nil {
			return addResult[content.InvestorReport]{}, fmt.Errorf("check investor report exists: %w", err)
		}
		if count > 0 {
			return addResult[content.InvestorReport]{}, nil
		}

		model := mapper.ToModel(report)
		model.ID = 0
		if err := tx.Create(&model).Error; err != nil {
			return addResult[content.InvestorReport]{}, fmt.Errorf("create investor report: %w", err)
		}
		return addResult[content.InvestorReport]{entity: mapper.ToDomain(model), created: true}, nil
	})
	if err != nil {
		return content.InvestorReport{}, false, err
	}
	return res.entity, res.created, nil
}

// Unnotified returns every report not yet announced, oldest first.
func (s ReportStore) Unnotified(ctx context.Context) ([]content.InvestorReport, error) {
	return s.Find(ctx, store.WithPending(), store.WithOrderAsc("created_at"))
}

// MarkNotified flips the notified flag for one report.
func (s ReportStore) MarkNotified(ctx context.Context, id int64) error {
	result := s.DB(ctx).Model(&InvestorReportModel{}).Where("id = ?", id).Updates(map[string]any{
		"notified":   true,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return fmt.Errorf("mark investor report notified: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: investor report %d", database.ErrNotFound, id)
	}
	return nil
}
