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

type PropertyRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PropertyMapper
}

func NewPropertyRepository(db *gorm.DB) contract.PropertyRepository {
	return &PropertyRepositoryImpl{
		db:     db,
		mapper: mapper.NewPropertyMapper(),
	}
}

func (r *PropertyRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PropertyRepositoryImpl) Create(ctx context.Context, property *entity.Property) error {
	modelProperty := r.mapper.ToModel(property)
	if err := r.db.WithContext(ctx).Create(modelProperty).Error; err != nil {
		return err
	}
	*property = *r.mapper.ToEntity(modelProperty)
	return nil
}

func (r *PropertyRepositoryImpl) Update(ctx context.Context, property *entity.Property) error {
	modelProperty := r.mapper.ToModel(property)
	// Omit associations so image rows are managed explicitly.
	if err := r.db.WithContext(ctx).Omit("Images", "PricingHistory").Save(modelProperty).Error; err != nil {
		return err
	}
	return nil
}

func (r *PropertyRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Property{}).Error
}

func (r *PropertyRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Property, error) {
	var modelProperty model.Property
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	err := query.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("PricingHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("effective_date DESC")
		}).
		First(&modelProperty).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelProperty), nil
}

func (r *PropertyRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Property, error) {
	var modelProperties []*model.Property
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	err := query.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("PricingHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("effective_date DESC")
		}).
		Find(&modelProperties).Error
	if err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelProperties), nil
}

func (r *PropertyRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Property{}), specs...)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PropertyRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PropertyStatus) error {
	return r.db.WithContext(ctx).Model(&model.Property{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

func (r *PropertyRepositoryImpl) SetVerification(ctx context.Context, id uuid.UUID, verified bool, comments string) error {
	return r.db.WithContext(ctx).Model(&model.Property{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_verified":           verified,
			"verification_comments": comments,
		}).Error
}

// Images

func (r *PropertyRepositoryImpl) AddImage(ctx context.Context, image *entity.PropertyImage) error {
	modelImage := r.mapper.ImageToModel(image)
	if err := r.db.WithContext(ctx).Create(modelImage).Error; err != nil {
		return err
	}
	*image = *r.mapper.ImageToEntity(modelImage)
	return nil
}

func (r *PropertyRepositoryImpl) DeleteImage(ctx context.Context, imageId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", imageId).Delete(&model.PropertyImage{}).Error
}

func (r *PropertyRepositoryImpl) FindImages(ctx context.Context, propertyId uuid.UUID) ([]*entity.PropertyImage, error) {
	var modelImages []*model.PropertyImage
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyId).
		Order("sort_order ASC").
		Find(&modelImages).Error
	if err != nil {
		return nil, err
	}

	images := make([]*entity.PropertyImage, len(modelImages))
	for i, img := range modelImages {
		images[i] = r.mapper.ImageToEntity(img)
	}
	return images, nil
}

// Pricing History

func (r *PropertyRepositoryImpl) AddPricingHistory(ctx context.Context, record *entity.PricingHistory) error {
	modelRecord := r.mapper.PricingHistoryToModel(record)
	if err := r.db.WithContext(ctx).Create(modelRecord).Error; err != nil {
		return err
	}
	*record = *r.mapper.PricingHistoryToEntity(modelRecord)
	return nil
}

func (r *PropertyRepositoryImpl) FindPricingHistory(ctx context.Context, propertyId uuid.UUID) ([]*entity.PricingHistory, error) {
	var modelRecords []*model.PricingHistory
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyId).
		Order("effective_date DESC").
		Find(&modelRecords).Error
	if err != nil {
		return nil, err
	}

	records := make([]*entity.PricingHistory, len(modelRecords))
	for i, rec := range modelRecords {
		records[i] = r.mapper.PricingHistoryToEntity(rec)
	}
	return records, nil
}
