package contract

import (
	"context"

	"github.com/google/uuid"

	"estateflow-be/internal/entity"
	"estateflow-be/internal/repository/specification"
)

type SubscriptionRepository interface {
	CreatePlan(ctx context.Context, plan *entity.SubscriptionPlan) error
	FindPlan(ctx context.Context, specs ...specification.Specification) (*entity.SubscriptionPlan, error)
	FindAllPlans(ctx context.Context, specs ...specification.Specification) ([]*entity.SubscriptionPlan, error)

	Create(ctx context.Context, subscription *entity.Subscription) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscription, error)
	FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Subscription, error)
	FindByPaypalOrderId(ctx context.Context, orderId string) (*entity.Subscription, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.SubscriptionStatus) error
}
