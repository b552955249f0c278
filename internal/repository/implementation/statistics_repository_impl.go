package implementation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"estateflow-be/internal/entity"
	"estateflow-be/internal/repository/contract"
)

// StatisticsRepositoryImpl issues raw aggregate queries. Region matching is
// done with ILIKE against the free-form address column.
type StatisticsRepositoryImpl struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) contract.StatisticsRepository {
	return &StatisticsRepositoryImpl{db: db}
}

func (r *StatisticsRepositoryImpl) CountPropertiesByRegion(ctx context.Context, region string, from, to time.Time) (int, error) {
	var total int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)::int
		FROM properties
		WHERE created_at BETWEEN ? AND ?
		AND address ILIKE '%' || ? || '%'
	`, from, to, region).Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *StatisticsRepositoryImpl) PriceStatsByRegion(ctx context.Context, region string, from, to time.Time) (*entity.RegionPriceStats, error) {
	var row struct {
		Min *float64
		Max *float64
		Avg *float64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			MIN(price)::float AS min,
			MAX(price)::float AS max,
			AVG(price)::float AS avg
		FROM properties
		WHERE created_at BETWEEN ? AND ?
		AND address ILIKE '%' || ? || '%'
	`, from, to, region).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &entity.RegionPriceStats{
		Region: region,
		Min:    row.Min,
		Max:    row.Max,
		Avg:    row.Avg,
	}, nil
}

func (r *StatisticsRepositoryImpl) AveragePriceByRegion(ctx context.Context, region string, from, to time.Time) (*float64, error) {
	var row struct {
		AvgPrice *float64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT AVG(price)::float AS avg_price
		FROM properties
		WHERE created_at BETWEEN ? AND ?
		AND address ILIKE '%' || ? || '%'
	`, from, to, region).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return row.AvgPrice, nil
}

func (r *StatisticsRepositoryImpl) CountPropertyViews(ctx context.Context, propertyId uuid.UUID, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM property_views
		WHERE property_id = ?
		AND viewed_at BETWEEN ? AND ?
	`, propertyId, from, to).Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *StatisticsRepositoryImpl) TotalSales(ctx context.Context, from, to time.Time) (*entity.SalesTotals, error) {
	var row struct {
		TotalSales  int
		TotalAmount *float64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*)::int AS total_sales,
			SUM(price)::float AS total_amount
		FROM properties
		WHERE updated_at BETWEEN ? AND ?
		AND status IN ('sold', 'rented')
	`, from, to).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	totals := &entity.SalesTotals{TotalSales: row.TotalSales}
	if row.TotalAmount != nil {
		totals.TotalAmount = *row.TotalAmount
	}
	return totals, nil
}

func (r *StatisticsRepositoryImpl) TopViewedProperties(ctx context.Context, from, to time.Time, limit int) ([]*entity.ViewedProperty, error) {
	var rows []struct {
		Id        uuid.UUID
		Title     string
		Price     float64
		Address   string
		ViewCount int
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.title,
			p.price,
			p.address,
			COALESCE(COUNT(pv.id), 0)::int AS view_count
		FROM properties p
		LEFT JOIN property_views pv
			ON p.id = pv.property_id
			AND pv.viewed_at BETWEEN ? AND ?
		GROUP BY p.id, p.title, p.price, p.address
		ORDER BY view_count DESC
		LIMIT ?
	`, from, to, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entity.ViewedProperty, len(rows))
	for i, row := range rows {
		result[i] = &entity.ViewedProperty{
			Id:        row.Id,
			Title:     row.Title,
			Price:     row.Price,
			Address:   row.Address,
			ViewCount: row.ViewCount,
		}
	}
	return result, nil
}

func (r *StatisticsRepositoryImpl) NewUsersByRole(ctx context.Context, from, to time.Time) (*entity.NewUserStats, error) {
	var row struct {
		NewBuyers   int
		NewSellers  int
		NewAgencies int
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(CASE WHEN role = 'renter_buyer' THEN 1 END)::int AS new_buyers,
			COUNT(CASE WHEN role = 'private_seller' THEN 1 END)::int AS new_sellers,
			COUNT(CASE WHEN role = 'agency' THEN 1 END)::int AS new_agencies
		FROM users
		WHERE created_at BETWEEN ? AND ?
	`, from, to).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &entity.NewUserStats{
		NewBuyers:   row.NewBuyers,
		NewSellers:  row.NewSellers,
		NewAgencies: row.NewAgencies,
	}, nil
}
