package implementation

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"estateflow-be/internal/entity"
	"estateflow-be/internal/mapper"
	"estateflow-be/internal/model"
	"estateflow-be/internal/repository/contract"
)

type WishlistRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PropertyMapper
}

func NewWishlistRepository(db *gorm.DB) contract.WishlistRepository {
	return &WishlistRepositoryImpl{
		db:     db,
		mapper: mapper.NewPropertyMapper(),
	}
}

func (r *WishlistRepositoryImpl) Add(ctx context.Context, item *entity.WishlistItem) error {
	modelItem := r.mapper.WishlistItemToModel(item)
	if err := r.db.WithContext(ctx).Create(modelItem).Error; err != nil {
		return err
	}
	*item = *r.mapper.WishlistItemToEntity(modelItem)
	return nil
}

func (r *WishlistRepositoryImpl) Remove(ctx context.Context, userId, propertyId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND property_id = ?", userId, propertyId).
		Delete(&model.WishlistItem{}).Error
}

func (r *WishlistRepositoryImpl) FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.WishlistItem, error) {
	var modelItems []*model.WishlistItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&modelItems).Error
	if err != nil {
		return nil, err
	}

	items := make([]*entity.WishlistItem, len(modelItems))
	for i, it := range modelItems {
		items[i] = r.mapper.WishlistItemToEntity(it)
	}
	return items, nil
}

func (r *WishlistRepositoryImpl) Exists(ctx context.Context, userId, propertyId uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.WishlistItem{}).
		Where("user_id = ? AND property_id = ?", userId, propertyId).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
