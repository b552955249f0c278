package implementation

import (
	"context"

	"gorm.io/gorm"

	"estateflow-be/internal/entity"
	"estateflow-be/internal/repository/contract"
)

type FilterRepositoryImpl struct {
	db *gorm.DB
}

func NewFilterRepository(db *gorm.DB) contract.FilterRepository {
	return &FilterRepositoryImpl{db: db}
}

func (r *FilterRepositoryImpl) PriceRange(ctx context.Context) (*entity.ValueRange, error) {
	return r.rangeOf(ctx, "price")
}

func (r *FilterRepositoryImpl) AreaRange(ctx context.Context) (*entity.ValueRange, error) {
	return r.rangeOf(ctx, "area")
}

func (r *FilterRepositoryImpl) rangeOf(ctx context.Context, column string) (*entity.ValueRange, error) {
	var row struct {
		Min *float64
		Max *float64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT MIN(`+column+`)::float AS min, MAX(`+column+`)::float AS max
		FROM properties
		WHERE status = 'active'
	`).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &entity.ValueRange{Min: row.Min, Max: row.Max}, nil
}

func (r *FilterRepositoryImpl) DistinctRooms(ctx context.Context) ([]int, error) {
	var rooms []int
	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT rooms
		FROM properties
		WHERE status = 'active' AND rooms > 0
		ORDER BY rooms ASC
	`).Scan(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *FilterRepositoryImpl) DistinctTransactionTypes(ctx context.Context) ([]string, error) {
	return r.distinctOf(ctx, "transaction_type")
}

func (r *FilterRepositoryImpl) DistinctPropertyTypes(ctx context.Context) ([]string, error) {
	return r.distinctOf(ctx, "property_type")
}

func (r *FilterRepositoryImpl) distinctOf(ctx context.Context, column string) ([]string, error) {
	var values []string
	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT ` + column + `
		FROM properties
		WHERE status = 'active'
		ORDER BY ` + column + ` ASC
	`).Scan(&values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}
