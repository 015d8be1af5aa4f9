package firm

import (
	"context"

	"github.com/quantwatch/quantwatch/domain/store"
)

// Store defines firm persistence operations.
type Store interface {
	// GetOrCreate returns the firm with the given name, creating it
	// from candidate if it does not exist yet. Attributes of an
	// existing firm are never overwritten.
	GetOrCreate(ctx context.Context, candidate Firm) (Firm, error)

	// ByName returns the firm with the given name.
	ByName(ctx context.Context, name string) (Firm, error)

	// HavingEvents returns every firm with at least one stored event.
	HavingEvents(ctx context.Context) ([]Firm, error)

	// Find returns firms matching the given options.
	Find(ctx context.Context, options ...store.Option) ([]Firm, error)

	// Count returns the number of firms matching the given options.
	Count(ctx context.Context, options ...store.Option) (int64, error)
}
