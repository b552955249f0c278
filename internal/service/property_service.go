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
	"estateflow-be/pkg/events"
)

type IPropertyService interface {
	Create(ctx context.Context, ownerId uuid.UUID, req *dto.CreatePropertyRequest) (*dto.PropertyResponse, error)
	Update(ctx context.Context, userId uuid.UUID, role entity.UserRole, propertyId uuid.UUID, req *dto.UpdatePropertyRequest) (*dto.PropertyResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, role entity.UserRole, propertyId uuid.UUID) error
	GetById(ctx context.Context, propertyId uuid.UUID) (*dto.PropertyResponse, error)
	GetAll(ctx context.Context, query *dto.PropertyFilterQuery) (*dto.PropertyListResponse, error)
	GetByOwner(ctx context.Context, ownerId uuid.UUID) ([]dto.PropertyResponse, error)
	Verify(ctx context.Context, propertyId uuid.UUID, req *dto.VerifyPropertyRequest) (*dto.PropertyResponse, error)
	AddImage(ctx context.Context, userId uuid.UUID, role entity.UserRole, propertyId uuid.UUID, req *dto.AddImageRequest) (*dto.PropertyImageDTO, error)
	DeleteImage(ctx context.Context, userId uuid.UUID, role entity.UserRole, propertyId, imageId uuid.UUID) error
}

type propertyService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher IPublisherService
}

func NewPropertyService(uowFactory unitofwork.RepositoryFactory, eventPublisher IPublisherService) IPropertyService {
	return &propertyService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func canManageProperty(property *entity.Property, userId uuid.UUID, role entity.UserRole) bool {
	if property.OwnerId == userId {
		return true
	}
	return role == entity.UserRoleModerator || role == entity.UserRoleAdmin
}

func propertyToDTO(p *entity.Property) dto.PropertyResponse {
	res := dto.PropertyResponse{
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
		IsVerified:      p.IsVerified,
		Images:          make([]dto.PropertyImageDTO, 0, len(p.Images)),
		PricingHistory:  make([]dto.PricingHistoryDTO, 0, len(p.PricingHistory)),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	for _, img := range p.Images {
		res.Images = append(res.Images, dto.PropertyImageDTO{
			Id:        img.Id,
			ImageURL:  img.ImageURL,
			SortOrder: img.SortOrder,
		})
	}
	for _, ph := range p.PricingHistory {
		res.PricingHistory = append(res.PricingHistory, dto.PricingHistoryDTO{
			Price:         ph.Price,
			Currency:      ph.Currency,
			EffectiveDate: ph.EffectiveDate,
		})
	}
	return res
}

func (s *propertyService) Create(ctx context.Context, ownerId uuid.UUID, req *dto.CreatePropertyRequest) (*dto.PropertyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	owner, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: ownerId})
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, apperr.NotFound("user not found")
	}
	if owner.Role == entity.UserRoleRenterBuyer {
		return nil, apperr.Forbidden("your role cannot publish listings")
	}

	// -1 means unlimited.
	if owner.ListingLimit >= 0 {
		count, err := uow.PropertyRepository().Count(ctx, specification.ByOwner{OwnerId: ownerId})
		if err != nil {
			return nil, err
		}
		if count >= int64(owner.ListingLimit) {
			return nil, apperr.Forbidden("listing limit reached")
		}
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	property := &entity.Property{
		Id:              uuid.New(),
		OwnerId:         ownerId,
		Title:           req.Title,
		Description:     req.Description,
		PropertyType:    entity.PropertyType(req.PropertyType),
		TransactionType: entity.TransactionType(req.TransactionType),
		Status:          entity.PropertyStatusActive,
		Price:           req.Price,
		Currency:        currency,
		Address:         req.Address,
		Area:            req.Area,
		Rooms:           req.Rooms,
		Floor:           req.Floor,
		TotalFloors:     req.TotalFloors,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.PropertyRepository().Create(ctx, property); err != nil {
		return nil, err
	}

	for i, imageURL := range req.ImageURLs {
		image := &entity.PropertyImage{
			Id:         uuid.New(),
			PropertyId: property.Id,
			ImageURL:   imageURL,
			SortOrder:  i,
			CreatedAt:  time.Now(),
		}
		if err := uow.PropertyRepository().AddImage(ctx, image); err != nil {
			return nil, err
		}
		property.Images = append(property.Images, image)
	}

	// Seed the trend with the listing price.
	initialRecord := &entity.PricingHistory{
		Id:            uuid.New(),
		PropertyId:    property.Id,
		Price:         property.Price,
		Currency:      property.Currency,
		EffectiveDate: time.Now(),
		CreatedAt:     time.Now(),
	}
	if err := uow.PropertyRepository().AddPricingHistory(ctx, initialRecord); err != nil {
		return nil, err
	}
	property.PricingHistory = append(property.PricingHistory, initialRecord)

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	res := propertyToDTO(property)
	return &res, nil
}

func (s *propertyService) Update(ctx context.Context, userId uuid.UUID, role entity.UserRole, propertyId uuid.UUID, req *dto.UpdatePropertyRequest) (*dto.PropertyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	property, err := uow.PropertyRepository().FindOne(ctx, specification.ByID{ID: propertyId})
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, apperr.NotFound("property not found")
	}
	if !canManageProperty(property, userId, role) {
		return nil, apperr.Forbidden("you do not own this property")
	}

	priceChanged := false
	if req.Title != "" {
		property.Title = req.Title
	}
	if req.Description != nil {
		property.Description = *req.Description
	}
	if req.Price != nil && *req.Price != property.Price {
		property.Price = *req.Price
		priceChanged = true
	}
	if req.Address != "" {
		property.Address = req.Address
	}
	if req.Area != nil {
		property.Area = *req.Area
	}
	if req.Rooms != nil {
		property.Rooms = *req.Rooms
	}
	if req.Floor != nil {
		property.Floor = req.Floor
	}
	if req.TotalFloors != nil {
		property.TotalFloors = req.TotalFloors
	}
	if req.Status != "" {
		property.Status = entity.PropertyStatus(req.Status)
	}
	property.UpdatedAt = time.Now()

	if err := uow.PropertyRepository().Update(ctx, property); err != nil {
		return nil, err
	}

	if priceChanged && s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: events.PropertyPriceChanged,
			Data: map[string]interface{}{
				"property_id": property.Id.String(),
				"new_price":   property.Price,
				"currency":    property.Currency,
			},
			OccurredAt: time.Now(),
		}
		// The listing update already landed; a failed publish only costs
		// one history point, so the error is not surfaced to the caller.
		_ = s.eventPublisher.PublishEvent(ctx, event)
	}

	res := propertyToDTO(property)
	return &res, nil
}

func (s *propertyService) Verify(ctx context.Context, propertyId uuid.UUID, req *dto.VerifyPropertyRequest) (*dto.PropertyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	property, err := uow.PropertyRepository().FindOne(ctx, specification.ByID{ID: propertyId})
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, apperr.NotFound("property not found")
	}

	if err := uow.PropertyRepository().SetVerification(ctx, propertyId, req.IsVerified, req.Comments); err != nil {
		return nil, err
	}

	property.IsVerified = req.IsVerified
	property.VerificationComments = req.Comments

	res := propertyToDTO(property)
	return &res, nil
}

func (s *propertyService) Delete(ctx context.Context, userId uuid.UUID, role entity.UserRole, propertyId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	property, err := uow.PropertyRepository().FindOne(ctx, specification.ByID{ID: propertyId})
	if err != nil {
		return err
	}
	if property == nil {
		return apperr.NotFound("property not found")
	}
	if !canManageProperty(property, userId, role) {
		return apperr.Forbidden("you do not own this property")
	}

	return uow.PropertyRepository().Delete(ctx, propertyId)
}

func (s *propertyService) GetById(ctx context.Context, propertyId uuid.UUID) (*dto.PropertyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	property, err := uow.PropertyRepository().FindOne(ctx, specification.ByID{ID: propertyId})
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, apperr.NotFound("property not found")
	}

	res := propertyToDTO(property)
	return &res, nil
}

func (s *propertyService) GetAll(ctx context.Context, query *dto.PropertyFilterQuery) (*dto.PropertyListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := buildFilterSpecs(query)

	total, err := uow.PropertyRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	sortField := "created_at"
	switch query.SortBy {
	case "price":
		sortField = "price"
	case "area":
		sortField = "area"
	case "created_at", "":
	default:
		return nil, apperr.Validation("unsupported sort field")
	}

	specs = append(specs,
		specification.OrderBy{Field: sortField, Desc: query.SortDesc},
		specification.Pagination{Limit: pageSize, Offset: (page - 1) * pageSize},
	)

	result, err := uow.PropertyRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := &dto.PropertyListResponse{
		Properties: make([]dto.PropertyResponse, len(result)),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}
	for i, p := range result {
		res.Properties[i] = propertyToDTO(p)
	}
	return res, nil
}

func buildFilterSpecs(query *dto.PropertyFilterQuery) []specification.Specification {
	specs := []specification.Specification{specification.ActiveListings{}}

	if query.PropertyType != "" {
		specs = append(specs, specification.Filter("property_type", query.PropertyType))
	}
	if query.TransactionType != "" {
		specs = append(specs, specification.Filter("transaction_type", query.TransactionType))
	}
	if query.MinPrice > 0 {
		specs = append(specs, specification.GreaterOrEqual{Field: "price", Value: query.MinPrice})
	}
	if query.MaxPrice > 0 {
		specs = append(specs, specification.LessOrEqual{Field: "price", Value: query.MaxPrice})
	}
	if query.MinArea > 0 {
		specs = append(specs, specification.GreaterOrEqual{Field: "area", Value: query.MinArea})
	}
	if query.MaxArea > 0 {
		specs = append(specs, specification.LessOrEqual{Field: "area", Value: query.MaxArea})
	}
	if query.Rooms > 0 {
		specs = append(specs, specification.Filter("rooms", query.Rooms))
	}
	if query.Address != "" {
		specs = append(specs, specification.ILike{Field: "address", Value: query.Address})
	}
	return specs
}

func (s *propertyService) GetByOwner(ctx context.Context, ownerId uuid.UUID) ([]dto.PropertyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	result, err := uow.PropertyRepository().FindAll(ctx,
		specification.ByOwner{OwnerId: ownerId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]dto.PropertyResponse, len(result))
	for i, p := range result {
		res[i] = propertyToDTO(p)
	}
	return res, nil
}

func (s *propertyService) AddImage(ctx context.Context, userId uuid.UUID, role entity.UserRole, propertyId uuid.UUID, req *dto.AddImageRequest) (*dto.PropertyImageDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	property, err := uow.PropertyRepository().FindOne(ctx, specification.ByID{ID: propertyId})
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, apperr.NotFound("property not found")
	}
	if !canManageProperty(property, userId, role) {
		return nil, apperr.Forbidden("you do not own this property")
	}

	image := &entity.PropertyImage{
		Id:         uuid.New(),
		PropertyId: propertyId,
		ImageURL:   req.ImageURL,
		SortOrder:  req.SortOrder,
		CreatedAt:  time.Now(),
	}
	if err := uow.PropertyRepository().AddImage(ctx, image); err != nil {
		return nil, err
	}

	return &dto.PropertyImageDTO{
		Id:        image.Id,
		ImageURL:  image.ImageURL,
		SortOrder: image.SortOrder,
	}, nil
}

func (s *propertyService) DeleteImage(ctx context.Context, userId uuid.UUID, role entity.UserRole, propertyId, imageId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	property, err := uow.PropertyRepository().FindOne(ctx, specification.ByID{ID: propertyId})
	if err != nil {
		return err
	}
	if property == nil {
		return apperr.NotFound("property not found")
	}
	if !canManageProperty(property, userId, role) {
		return apperr.Forbidden("you do not own this property")
	}

	return uow.PropertyRepository().DeleteImage(ctx, imageId)
}
