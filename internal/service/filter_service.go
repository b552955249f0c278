package service

import (
	"context"

	"estateflow-be/internal/dto"
	"estateflow-be/internal/entity"
	"estateflow-be/internal/repository/unitofwork"
)

type IFilterService interface {
	GetPriceRange(ctx context.Context) (*dto.ValueRangeDTO, error)
	GetAreaRange(ctx context.Context) (*dto.ValueRangeDTO, error)
	GetRooms(ctx context.Context) ([]int, error)
	GetTransactionTypes(ctx context.Context) ([]string, error)
	GetPropertyTypes(ctx context.Context) ([]string, error)
	GetOptions(ctx context.Context) (*dto.FilterOptionsResponse, error)
}

type filterService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewFilterService(uowFactory unitofwork.RepositoryFactory) IFilterService {
	return &filterService{uowFactory: uowFactory}
}

func rangeToDTO(r *entity.ValueRange) *dto.ValueRangeDTO {
	if r == nil || r.Min == nil {
		// No active listing matched.
		return nil
	}
	return &dto.ValueRangeDTO{Min: r.Min, Max: r.Max}
}

func (s *filterService) GetPriceRange(ctx context.Context) (*dto.ValueRangeDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	r, err := uow.FilterRepository().PriceRange(ctx)
	if err != nil {
		return nil, err
	}
	return rangeToDTO(r), nil
}

func (s *filterService) GetAreaRange(ctx context.Context) (*dto.ValueRangeDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	r, err := uow.FilterRepository().AreaRange(ctx)
	if err != nil {
		return nil, err
	}
	return rangeToDTO(r), nil
}

func (s *filterService) GetRooms(ctx context.Context) ([]int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.FilterRepository().DistinctRooms(ctx)
}

func (s *filterService) GetTransactionTypes(ctx context.Context) ([]string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.FilterRepository().DistinctTransactionTypes(ctx)
}

func (s *filterService) GetPropertyTypes(ctx context.Context) ([]string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.FilterRepository().DistinctPropertyTypes(ctx)
}

func (s *filterService) GetOptions(ctx context.Context) (*dto.FilterOptionsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.FilterRepository()

	priceRange, err := repo.PriceRange(ctx)
	if err != nil {
		return nil, err
	}
	areaRange, err := repo.AreaRange(ctx)
	if err != nil {
		return nil, err
	}
	rooms, err := repo.DistinctRooms(ctx)
	if err != nil {
		return nil, err
	}
	transactionTypes, err := repo.DistinctTransactionTypes(ctx)
	if err != nil {
		return nil, err
	}
	propertyTypes, err := repo.DistinctPropertyTypes(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.FilterOptionsResponse{
		PriceRange:       rangeToDTO(priceRange),
		AreaRange:        rangeToDTO(areaRange),
		Rooms:            rooms,
		TransactionTypes: transactionTypes,
		PropertyTypes:    propertyTypes,
	}, nil
}
