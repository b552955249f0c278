package contract

import (
	"context"

	"github.com/google/uuid"

	"estateflow-be/internal/entity"
	"estateflow-be/internal/repository/specification"
)

type PropertyRepository interface {
	Create(ctx context.Context, property *entity.Property) error
	Update(ctx context.Context, property *entity.Property) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Property, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Property, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PropertyStatus) error
	SetVerification(ctx context.Context, id uuid.UUID, verified bool, comments string) error

	// Images
	AddImage(ctx context.Context, image *entity.PropertyImage) error
	DeleteImage(ctx context.Context, imageId uuid.UUID) error
	FindImages(ctx context.Context, propertyId uuid.UUID) ([]*entity.PropertyImage, error)

	// Pricing History
	AddPricingHistory(ctx context.Context, record *entity.PricingHistory) error
	FindPricingHistory(ctx context.Context, propertyId uuid.UUID) ([]*entity.PricingHistory, error)
}

type PropertyViewRepository interface {
	// Upsert records the view, refreshing viewed_at if the pair already exists.
	Upsert(ctx context.Context, view *entity.PropertyView) error
	FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.PropertyView, error)
	CountByProperty(ctx context.Context, propertyId uuid.UUID) (int64, error)
}

type WishlistRepository interface {
	Add(ctx context.Context, item *entity.WishlistItem) error
	Remove(ctx context.Context, userId, propertyId uuid.UUID) error
	FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.WishlistItem, error)
	Exists(ctx context.Context, userId, propertyId uuid.UUID) (bool, error)
}
