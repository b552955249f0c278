package mapper

import (
	"estateflow-be/internal/entity"
	"estateflow-be/internal/model"
)

type ChangeRequestMapper struct{}

func NewChangeRequestMapper() *ChangeRequestMapper {
	return &ChangeRequestMapper{}
}

func (m *ChangeRequestMapper) ToEntity(r *model.ChangeRequest) *entity.ChangeRequest {
	if r == nil {
		return nil
	}
	return &entity.ChangeRequest{
		Id:        r.Id,
		UserId:    r.UserId,
		Type:      entity.ChangeRequestType(r.Type),
		NewValue:  r.NewValue,
		Token:     r.Token,
		ExpiresAt: r.ExpiresAt,
		CreatedAt: r.CreatedAt,
	}
}

func (m *ChangeRequestMapper) ToModel(r *entity.ChangeRequest) *model.ChangeRequest {
	if r == nil {
		return nil
	}
	return &model.ChangeRequest{
		Id:        r.Id,
		UserId:    r.UserId,
		Type:      string(r.Type),
		NewValue:  r.NewValue,
		Token:     r.Token,
		ExpiresAt: r.ExpiresAt,
		CreatedAt: r.CreatedAt,
	}
}
