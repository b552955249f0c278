package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"estateflow-be/internal/entity"
	"estateflow-be/internal/mapper"
	"estateflow-be/internal/model"
	"estateflow-be/internal/repository/contract"
	"estateflow-be/internal/repository/specification"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SubscriptionMapper
}

func NewSubscriptionRepository(db *gorm.DB) contract.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSubscriptionMapper(),
	}
}

func (r *SubscriptionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SubscriptionRepositoryImpl) CreatePlan(ctx context.Context, plan *entity.SubscriptionPlan) error {
	modelPlan := r.mapper.PlanToModel(plan)
	if err := r.db.WithContext(ctx).Create(modelPlan).Error; err != nil {
		return err
	}
	*plan = *r.mapper.PlanToEntity(modelPlan)
	return nil
}

func (r *SubscriptionRepositoryImpl) FindPlan(ctx context.Context, specs ...specification.Specification) (*entity.SubscriptionPlan, error) {
	var modelPlan model.SubscriptionPlan
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelPlan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PlanToEntity(&modelPlan), nil
}

func (r *SubscriptionRepositoryImpl) FindAllPlans(ctx context.Context, specs ...specification.Specification) ([]*entity.SubscriptionPlan, error) {
	var modelPlans []*model.SubscriptionPlan
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelPlans).Error; err != nil {
		return nil, err
	}
	return r.mapper.PlansToEntities(modelPlans), nil
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, subscription *entity.Subscription) error {
	modelSub := r.mapper.ToModel(subscription)
	if err := r.db.WithContext(ctx).Create(modelSub).Error; err != nil {
		return err
	}
	*subscription = *r.mapper.ToEntity(modelSub)
	return nil
}

func (r *SubscriptionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscription, error) {
	var modelSub model.Subscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelSub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&modelSub), nil
}

func (r *SubscriptionRepositoryImpl) FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Subscription, error) {
	var modelSubs []*model.Subscription
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&modelSubs).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(modelSubs), nil
}

func (r *SubscriptionRepositoryImpl) FindByPaypalOrderId(ctx context.Context, orderId string) (*entity.Subscription, error) {
	var modelSub model.Subscription
	err := r.db.WithContext(ctx).Where("paypal_order_id = ?", orderId).First(&modelSub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&modelSub), nil
}

func (r *SubscriptionRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.SubscriptionStatus) error {
	return r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}
