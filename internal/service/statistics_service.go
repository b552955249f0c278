package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"estateflow-be/internal/constant"
	"estateflow-be/internal/dto"
	"estateflow-be/internal/pkg/apperr"
	"estateflow-be/internal/repository/unitofwork"
)

type IStatisticsService interface {
	PropertiesByRegion(ctx context.Context, query *dto.StatisticsRangeQuery) ([]dto.RegionCountDTO, error)
	TopRegions(ctx context.Context, query *dto.StatisticsRangeQuery) ([]dto.RegionCountDTO, error)
	PriceStatsByRegion(ctx context.Context, query *dto.StatisticsRangeQuery) ([]dto.RegionPriceStatsDTO, error)
	PriceGrowthByRegion(ctx context.Context, query *dto.PriceGrowthQuery) ([]dto.RegionPriceGrowthDTO, error)
	PropertyViews(ctx context.Context, propertyId uuid.UUID, query *dto.StatisticsRangeQuery) (*dto.PropertyViewCountDTO, error)
	TotalSales(ctx context.Context, query *dto.StatisticsRangeQuery) (*dto.SalesTotalsDTO, error)
	TopViewedProperties(ctx context.Context, query *dto.StatisticsRangeQuery) ([]dto.ViewedPropertyDTO, error)
	NewUsers(ctx context.Context, query *dto.StatisticsRangeQuery) (*dto.NewUserStatsDTO, error)
}

type statisticsService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewStatisticsService(uowFactory unitofwork.RepositoryFactory) IStatisticsService {
	return &statisticsService{uowFactory: uowFactory}
}

const statisticsDateLayout = "2006-01-02"

// parseRange turns the date-only query params into a closed window. The end
// date is pushed to the last second of its day so same-day rows count.
func parseRange(startDate, endDate string) (time.Time, time.Time, error) {
	from, err := time.Parse(statisticsDateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Validation("start_date must be YYYY-MM-DD")
	}
	to, err := time.Parse(statisticsDateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Validation("end_date must be YYYY-MM-DD")
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, apperr.Validation("end_date precedes start_date")
	}
	to = to.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	return from, to, nil
}

func (s *statisticsService) PropertiesByRegion(ctx context.Context, query *dto.StatisticsRangeQuery) ([]dto.RegionCountDTO, error) {
	from, to, err := parseRange(query.StartDate, query.EndDate)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.StatisticsRepository()

	res := make([]dto.RegionCountDTO, 0, len(constant.UkraineRegions))
	for _, region := range constant.UkraineRegions {
		total, err := repo.CountPropertiesByRegion(ctx, region, from, to)
		if err != nil {
			return nil, err
		}
		res = append(res, dto.RegionCountDTO{Region: region, Total: total})
	}
	return res, nil
}

func (s *statisticsService) TopRegions(ctx context.Context, query *dto.StatisticsRangeQuery) ([]dto.RegionCountDTO, error) {
	counts, err := s.PropertiesByRegion(ctx, query)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Total > counts[j].Total
	})

	limit := query.Limit
	if limit <= 0 {
		limit = 5
	}
	if limit > len(counts) {
		limit = len(counts)
	}
	return counts[:limit], nil
}

func (s *statisticsService) PriceStatsByRegion(ctx context.Context, query *dto.StatisticsRangeQuery) ([]dto.RegionPriceStatsDTO, error) {
	from, to, err := parseRange(query.StartDate, query.EndDate)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.StatisticsRepository()

	res := make([]dto.RegionPriceStatsDTO, 0, len(constant.UkraineRegions))
	for _, region := range constant.UkraineRegions {
		stats, err := repo.PriceStatsByRegion(ctx, region, from, to)
		if err != nil {
			return nil, err
		}
		res = append(res, dto.RegionPriceStatsDTO{
			Region: region,
			Min:    stats.Min,
			Max:    stats.Max,
			Avg:    stats.Avg,
		})
	}
	return res, nil
}

func (s *statisticsService) PriceGrowthByRegion(ctx context.Context, query *dto.PriceGrowthQuery) ([]dto.RegionPriceGrowthDTO, error) {
	previousFrom, previousTo, err := parseRange(query.PreviousStart, query.PreviousEnd)
	if err != nil {
		return nil, err
	}
	currentFrom, currentTo, err := parseRange(query.CurrentStart, query.CurrentEnd)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.StatisticsRepository()

	res := make([]dto.RegionPriceGrowthDTO, 0, len(constant.UkraineRegions))
	for _, region := range constant.UkraineRegions {
		previousAvg, err := repo.AveragePriceByRegion(ctx, region, previousFrom, previousTo)
		if err != nil {
			return nil, err
		}
		currentAvg, err := repo.AveragePriceByRegion(ctx, region, currentFrom, currentTo)
		if err != nil {
			return nil, err
		}

		row := dto.RegionPriceGrowthDTO{
			Region:      region,
			PreviousAvg: previousAvg,
			CurrentAvg:  currentAvg,
		}
		if previousAvg != nil && currentAvg != nil && *previousAvg != 0 {
			growth := (*currentAvg - *previousAvg) / *previousAvg * 100
			row.GrowthPercent = &growth
		}
		res = append(res, row)
	}
	return res, nil
}

func (s *statisticsService) PropertyViews(ctx context.Context, propertyId uuid.UUID, query *dto.StatisticsRangeQuery) (*dto.PropertyViewCountDTO, error) {
	from, to, err := parseRange(query.StartDate, query.EndDate)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.StatisticsRepository().CountPropertyViews(ctx, propertyId, from, to)
	if err != nil {
		return nil, err
	}
	return &dto.PropertyViewCountDTO{PropertyId: propertyId, Count: count}, nil
}

func (s *statisticsService) TotalSales(ctx context.Context, query *dto.StatisticsRangeQuery) (*dto.SalesTotalsDTO, error) {
	from, to, err := parseRange(query.StartDate, query.EndDate)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	totals, err := uow.StatisticsRepository().TotalSales(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return &dto.SalesTotalsDTO{
		TotalSales:  totals.TotalSales,
		TotalAmount: totals.TotalAmount,
	}, nil
}

func (s *statisticsService) TopViewedProperties(ctx context.Context, query *dto.StatisticsRangeQuery) ([]dto.ViewedPropertyDTO, error) {
	from, to, err := parseRange(query.StartDate, query.EndDate)
	if err != nil {
		return nil, err
	}

	limit := query.Limit
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	properties, err := uow.StatisticsRepository().TopViewedProperties(ctx, from, to, limit)
	if err != nil {
		return nil, err
	}

	res := make([]dto.ViewedPropertyDTO, len(properties))
	for i, p := range properties {
		res[i] = dto.ViewedPropertyDTO{
			Id:        p.Id,
			Title:     p.Title,
			Price:     p.Price,
			Address:   p.Address,
			ViewCount: p.ViewCount,
		}
	}
	return res, nil
}

func (s *statisticsService) NewUsers(ctx context.Context, query *dto.StatisticsRangeQuery) (*dto.NewUserStatsDTO, error) {
	from, to, err := parseRange(query.StartDate, query.EndDate)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	stats, err := uow.StatisticsRepository().NewUsersByRole(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return &dto.NewUserStatsDTO{
		NewBuyers:   stats.NewBuyers,
		NewSellers:  stats.NewSellers,
		NewAgencies: stats.NewAgencies,
	}, nil
}
