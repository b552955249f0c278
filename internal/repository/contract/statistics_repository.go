package contract

import (
	"context"
	"time"

	"github.com/google/uuid"

	"estateflow-be/internal/entity"
)

type StatisticsRepository interface {
	CountPropertiesByRegion(ctx context.Context, region string, from, to time.Time) (int, error)
	PriceStatsByRegion(ctx context.Context, region string, from, to time.Time) (*entity.RegionPriceStats, error)
	AveragePriceByRegion(ctx context.Context, region string, from, to time.Time) (*float64, error)
	CountPropertyViews(ctx context.Context, propertyId uuid.UUID, from, to time.Time) (int64, error)
	TotalSales(ctx context.Context, from, to time.Time) (*entity.SalesTotals, error)
	TopViewedProperties(ctx context.Context, from, to time.Time, limit int) ([]*entity.ViewedProperty, error)
	NewUsersByRole(ctx context.Context, from, to time.Time) (*entity.NewUserStats, error)
}
