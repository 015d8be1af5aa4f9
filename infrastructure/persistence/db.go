package persistence

import (
	"context"
	"fmt"

	"github.com/quantwatch/quantwatch/internal/database"
)

// AutoMigrate creates or updates the schema for every table.
func AutoMigrate(ctx context.Context, db database.Database) error {
	if err := db.Session(ctx).AutoMigrate(
		&FirmModel{},
		&EventModel{},
		&JobPostingModel{},
		&BlogPostModel{},
		&InvestorReportModel{},
		&VideoContentModel{},
		&ScrapeLogModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
