package insight

import (
	"context"

	"github.com/insightwires/newsmeta/internal/domain"
	"github.com/insightwires/newsmeta/internal/domain/filter"
)

// Repository defines the storage contract for insight searches.
type Repository interface {
	// Search returns the total match count and the page window at offset.
	Search(ctx context.Context, params filter.Params, offset, limit int) (int64, []domain.Insight, error)
}
