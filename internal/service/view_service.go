package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"estateflow-be/internal/dto"
	"estateflow-be/internal/entity"
	"estateflow-be/internal/pkg/apperr"
	"estateflow-be/internal/repository/specification"
	"estateflow-be/internal/repository/unitofwork"
)

type IViewService interface {
	RecordView(ctx context.Context, userId, propertyId uuid.UUID) error
	GetHistory(ctx context.Context, userId uuid.UUID) ([]dto.PropertyViewResponse, error)
	CountViews(ctx context.Context, propertyId uuid.UUID) (int64, error)
}

type viewService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewViewService(uowFactory unitofwork.RepositoryFactory) IViewService {
	return &viewService{uowFactory: uowFactory}
}

func (s *viewService) RecordView(ctx context.Context, userId, propertyId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	property, err := uow.PropertyRepository().FindOne(ctx, specification.ByID{ID: propertyId})
	if err != nil {
		return err
	}
	if property == nil {
		return apperr.NotFound("property not found")
	}

	// Repeat views refresh the timestamp instead of adding rows.
	return uow.PropertyViewRepository().Upsert(ctx, &entity.PropertyView{
		Id:         uuid.New(),
		UserId:     userId,
		PropertyId: propertyId,
		ViewedAt:   time.Now(),
	})
}

func (s *viewService) GetHistory(ctx context.Context, userId uuid.UUID) ([]dto.PropertyViewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	views, err := uow.PropertyViewRepository().FindAllByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	res := make([]dto.PropertyViewResponse, len(views))
	for i, v := range views {
		res[i] = dto.PropertyViewResponse{
			PropertyId: v.PropertyId,
			ViewedAt:   v.ViewedAt,
		}
	}
	return res, nil
}

func (s *viewService) CountViews(ctx context.Context, propertyId uuid.UUID) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.PropertyViewRepository().CountByProperty(ctx, propertyId)
}
