package mapper

import (
	"estateflow-be/internal/entity"
	"estateflow-be/internal/model"
)

type PropertyMapper struct{}

func NewPropertyMapper() *PropertyMapper {
	return &PropertyMapper{}
}

func (m *PropertyMapper) ToEntity(p *model.Property) *entity.Property {
	if p == nil {
		return nil
	}
	e := &entity.Property{
		Id:              p.Id,
		OwnerId:         p.OwnerId,
		Title:           p.Title,
		Description:     p.Description,
		PropertyType:    entity.PropertyType(p.PropertyType),
		TransactionType: entity.TransactionType(p.TransactionType),
		Status:          entity.PropertyStatus(p.Status),
		Price:           p.Price,
		Currency:        p.Currency,
		Address:         p.Address,
		Area:            p.Area,
		Rooms:           p.Rooms,
		Floor:           p.Floor,
		TotalFloors:     p.TotalFloors,

		IsVerified:           p.IsVerified,
		VerificationComments: p.VerificationComments,

		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	for i := range p.Images {
		e.Images = append(e.Images, m.ImageToEntity(&p.Images[i]))
	}
	for i := range p.PricingHistory {
		e.PricingHistory = append(e.PricingHistory, m.PricingHistoryToEntity(&p.PricingHistory[i]))
	}
	return e
}

func (m *PropertyMapper) ToModel(p *entity.Property) *model.Property {
	if p == nil {
		return nil
	}
	mo := &model.Property{
		Id:              p.Id,
		OwnerId:         p.OwnerId,
		Title:           p.Title,
		Description:     p.Description,
		PropertyType:    string(p.PropertyType),
		TransactionType: string(p.TransactionType),
		Status:          string(p.Status),
		Price:           p.Price,
		Currency:        p.Currency,
		Address:         p.Address,
		Area:            p.Area,
		Rooms:           p.Rooms,
		Floor:           p.Floor,
		TotalFloors:     p.TotalFloors,

		IsVerified:           p.IsVerified,
		VerificationComments: p.VerificationComments,

		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	for _, img := range p.Images {
		mo.Images = append(mo.Images, *m.ImageToModel(img))
	}
	return mo
}

func (m *PropertyMapper) ToEntities(props []*model.Property) []*entity.Property {
	entities := make([]*entity.Property, len(props))
	for i, p := range props {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func (m *PropertyMapper) ImageToEntity(i *model.PropertyImage) *entity.PropertyImage {
	if i == nil {
		return nil
	}
	return &entity.PropertyImage{
		Id:         i.Id,
		PropertyId: i.PropertyId,
		ImageURL:   i.ImageURL,
		SortOrder:  i.SortOrder,
		CreatedAt:  i.CreatedAt,
	}
}

func (m *PropertyMapper) ImageToModel(i *entity.PropertyImage) *model.PropertyImage {
	if i == nil {
		return nil
	}
	return &model.PropertyImage{
		Id:         i.Id,
		PropertyId: i.PropertyId,
		ImageURL:   i.ImageURL,
		SortOrder:  i.SortOrder,
		CreatedAt:  i.CreatedAt,
	}
}

func (m *PropertyMapper) PricingHistoryToEntity(h *model.PricingHistory) *entity.PricingHistory {
	if h == nil {
		return nil
	}
	return &entity.PricingHistory{
		Id:            h.Id,
		PropertyId:    h.PropertyId,
		Price:         h.Price,
		Currency:      h.Currency,
		EffectiveDate: h.EffectiveDate,
		CreatedAt:     h.CreatedAt,
	}
}

func (m *PropertyMapper) PricingHistoryToModel(h *entity.PricingHistory) *model.PricingHistory {
	if h == nil {
		return nil
	}
	return &model.PricingHistory{
		Id:            h.Id,
		PropertyId:    h.PropertyId,
		Price:         h.Price,
		Currency:      h.Currency,
		EffectiveDate: h.EffectiveDate,
		CreatedAt:     h.CreatedAt,
	}
}

func (m *PropertyMapper) ViewToEntity(v *model.PropertyView) *entity.PropertyView {
	if v == nil {
		return nil
	}
	return &entity.PropertyView{
		Id:         v.Id,
		UserId:     v.UserId,
		PropertyId: v.PropertyId,
		ViewedAt:   v.ViewedAt,
	}
}

func (m *PropertyMapper) ViewToModel(v *entity.PropertyView) *model.PropertyView {
	if v == nil {
		return nil
	}
	return &model.PropertyView{
		Id:         v.Id,
		UserId:     v.UserId,
		PropertyId: v.PropertyId,
		ViewedAt:   v.ViewedAt,
	}
}

func (m *PropertyMapper) WishlistItemToEntity(w *model.WishlistItem) *entity.WishlistItem {
	if w == nil {
		return nil
	}
	return &entity.WishlistItem{
		Id:         w.Id,
		UserId:     w.UserId,
		PropertyId: w.PropertyId,
		CreatedAt:  w.CreatedAt,
	}
}

func (m *PropertyMapper) WishlistItemToModel(w *entity.WishlistItem) *model.WishlistItem {
	if w == nil {
		return nil
	}
	return &model.WishlistItem{
		Id:         w.Id,
		UserId:     w.UserId,
		PropertyId: w.PropertyId,
		CreatedAt:  w.CreatedAt,
	}
}
