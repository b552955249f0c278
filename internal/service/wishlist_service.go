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

type IWishlistService interface {
	Add(ctx context.Context, userId, propertyId uuid.UUID) error
	Remove(ctx context.Context, userId, propertyId uuid.UUID) error
	GetAll(ctx context.Context, userId uuid.UUID) ([]dto.WishlistItemResponse, error)
	Contains(ctx context.Context, userId, propertyId uuid.UUID) (bool, error)
}

type wishlistService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewWishlistService(uowFactory unitofwork.RepositoryFactory) IWishlistService {
	return &wishlistService{uowFactory: uowFactory}
}

func (s *wishlistService) Add(ctx context.Context, userId, propertyId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	property, err := uow.PropertyRepository().FindOne(ctx, specification.ByID{ID: propertyId})
	if err != nil {
		return err
	}
	if property == nil {
		return apperr.NotFound("property not found")
	}

	exists, err := uow.WishlistRepository().Exists(ctx, userId, propertyId)
	if err != nil {
		return err
	}
	if exists {
		return apperr.Conflict("property already in wishlist")
	}

	return uow.WishlistRepository().Add(ctx, &entity.WishlistItem{
		Id:         uuid.New(),
		UserId:     userId,
		PropertyId: propertyId,
		CreatedAt:  time.Now(),
	})
}

func (s *wishlistService) Remove(ctx context.Context, userId, propertyId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	exists, err := uow.WishlistRepository().Exists(ctx, userId, propertyId)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("property not in wishlist")
	}

	return uow.WishlistRepository().Remove(ctx, userId, propertyId)
}

func (s *wishlistService) Contains(ctx context.Context, userId, propertyId uuid.UUID) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.WishlistRepository().Exists(ctx, userId, propertyId)
}

func (s *wishlistService) GetAll(ctx context.Context, userId uuid.UUID) ([]dto.WishlistItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	items, err := uow.WishlistRepository().FindAllByUser(ctx, userId)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []dto.WishlistItemResponse{}, nil
	}

	ids := make([]uuid.UUID, len(items))
	for i, item := range items {
		ids[i] = item.PropertyId
	}
	properties, err := uow.PropertyRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil, err
	}
	byId := make(map[uuid.UUID]*entity.Property, len(properties))
	for _, p := range properties {
		byId[p.Id] = p
	}

	res := make([]dto.WishlistItemResponse, 0, len(items))
	for _, item := range items {
		property, ok := byId[item.PropertyId]
		if !ok {
			// Listing was deleted after being wishlisted.
			continue
		}
		res = append(res, dto.WishlistItemResponse{
			PropertyId: item.PropertyId,
			Property:   propertyToDTO(property),
			AddedAt:    item.CreatedAt,
		})
	}
	return res, nil
}
