package contract

import (
	"context"

	"estateflow-be/internal/entity"
)

// FilterRepository serves the aggregate lookups behind the public search
// filters. All queries are scoped to active listings.
type FilterRepository interface {
	PriceRange(ctx context.Context) (*entity.ValueRange, error)
	AreaRange(ctx context.Context) (*entity.ValueRange, error)
	DistinctRooms(ctx context.Context) ([]int, error)
	DistinctTransactionTypes(ctx context.Context) ([]string, error)
	DistinctPropertyTypes(ctx context.Context) ([]string, error)
}
