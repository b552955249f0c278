package implementation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"estateflow-be/internal/entity"
	"estateflow-be/internal/mapper"
	"estateflow-be/internal/model"
	"estateflow-be/internal/repository/contract"
)

type ChangeRequestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChangeRequestMapper
}

func NewChangeRequestRepository(db *gorm.DB) contract.ChangeRequestRepository {
	return &ChangeRequestRepositoryImpl{
		db:     db,
		mapper: mapper.NewChangeRequestMapper(),
	}
}

func (r *ChangeRequestRepositoryImpl) Create(ctx context.Context, request *entity.ChangeRequest) error {
	modelReq := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Create(modelReq).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(modelReq)
	return nil
}

func (r *ChangeRequestRepositoryImpl) FindByToken(ctx context.Context, token string) (*entity.ChangeRequest, error) {
	var modelReq model.ChangeRequest
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&modelReq).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&modelReq), nil
}

func (r *ChangeRequestRepositoryImpl) Consume(ctx context.Context, token string) (bool, error) {
	res := r.db.WithContext(ctx).Where("token = ?", token).Delete(&model.ChangeRequest{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *ChangeRequestRepositoryImpl) DeleteByUserAndType(ctx context.Context, userId uuid.UUID, reqType entity.ChangeRequestType) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userId, string(reqType)).
		Delete(&model.ChangeRequest{}).Error
}

func (r *ChangeRequestRepositoryImpl) DeleteExpired(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at <= ?", time.Now()).
		Delete(&model.ChangeRequest{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
