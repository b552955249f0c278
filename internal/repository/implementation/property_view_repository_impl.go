package implementation

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"estateflow-be/internal/entity"
	"estateflow-be/internal/mapper"
	"estateflow-be/internal/model"
	"estateflow-be/internal/repository/contract"
)

type PropertyViewRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PropertyMapper
}

func NewPropertyViewRepository(db *gorm.DB) contract.PropertyViewRepository {
	return &PropertyViewRepositoryImpl{
		db:     db,
		mapper: mapper.NewPropertyMapper(),
	}
}

func (r *PropertyViewRepositoryImpl) Upsert(ctx context.Context, view *entity.PropertyView) error {
	modelView := r.mapper.ViewToModel(view)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "property_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"viewed_at"}),
	}).Create(modelView).Error
	if err != nil {
		return err
	}
	*view = *r.mapper.ViewToEntity(modelView)
	return nil
}

func (r *PropertyViewRepositoryImpl) FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.PropertyView, error) {
	var modelViews []*model.PropertyView
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("viewed_at DESC").
		Find(&modelViews).Error
	if err != nil {
		return nil, err
	}

	views := make([]*entity.PropertyView, len(modelViews))
	for i, v := range modelViews {
		views[i] = r.mapper.ViewToEntity(v)
	}
	return views, nil
}

func (r *PropertyViewRepositoryImpl) CountByProperty(ctx context.Context, propertyId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PropertyView{}).
		Where("property_id = ?", propertyId).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
