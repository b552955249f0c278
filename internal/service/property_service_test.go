package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estateflow-be/internal/dto"
	"estateflow-be/internal/entity"
	"estateflow-be/internal/pkg/apperr"
	"estateflow-be/pkg/events"
)

func seedOwner(uow *fakeUow, role entity.UserRole) *entity.User {
	owner := &entity.User{
		Id:           uuid.New(),
		Username:     "owner",
		Email:        "owner@example.com",
		Role:         role,
		ListingLimit: entity.ListingLimitForRole(role),
	}
	uow.users.users[owner.Id] = owner
	return owner
}

func validCreateRequest() *dto.CreatePropertyRequest {
	return &dto.CreatePropertyRequest{
		Title:           "Sunny two-room flat",
		PropertyType:    "apartment",
		TransactionType: "sale",
		Price:           75000,
		Address:         "Kyiv, Obolonskyi district",
		Area:            54.5,
		Rooms:           2,
		ImageURLs:       []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
	}
}

func TestCreatePropertyForbiddenForRenterBuyer(t *testing.T) {
	uow := newFakeUow()
	owner := seedOwner(uow, entity.UserRoleRenterBuyer)
	svc := NewPropertyService(&fakeFactory{uow: uow}, &fakePublisher{})

	_, err := svc.Create(context.Background(), owner.Id, validCreateRequest())
	require.Error(t, err)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestCreatePropertyEnforcesListingLimit(t *testing.T) {
	uow := newFakeUow()
	owner := seedOwner(uow, entity.UserRolePrivateSeller)
	require.Equal(t, 5, owner.ListingLimit)

	for i := 0; i < owner.ListingLimit; i++ {
		uow.properties.properties[uuid.New()] = &entity.Property{
			Id:      uuid.New(),
			OwnerId: owner.Id,
			Title:   fmt.Sprintf("listing %d", i),
			Status:  entity.PropertyStatusActive,
		}
	}

	svc := NewPropertyService(&fakeFactory{uow: uow}, &fakePublisher{})
	_, err := svc.Create(context.Background(), owner.Id, validCreateRequest())
	require.Error(t, err)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestCreatePropertyUnlimitedForModerator(t *testing.T) {
	uow := newFakeUow()
	owner := seedOwner(uow, entity.UserRoleModerator)
	require.Equal(t, -1, owner.ListingLimit)

	for i := 0; i < 10; i++ {
		id := uuid.New()
		uow.properties.properties[id] = &entity.Property{Id: id, OwnerId: owner.Id}
	}

	svc := NewPropertyService(&fakeFactory{uow: uow}, &fakePublisher{})
	_, err := svc.Create(context.Background(), owner.Id, validCreateRequest())
	require.NoError(t, err)
}

func TestCreatePropertySeedsImagesAndInitialPrice(t *testing.T) {
	uow := newFakeUow()
	owner := seedOwner(uow, entity.UserRoleAgency)
	svc := NewPropertyService(&fakeFactory{uow: uow}, &fakePublisher{})

	res, err := svc.Create(context.Background(), owner.Id, validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "USD", res.Currency)
	assert.Equal(t, "active", res.Status)
	require.Len(t, res.Images, 2)
	assert.Equal(t, 0, res.Images[0].SortOrder)
	assert.Equal(t, 1, res.Images[1].SortOrder)

	require.Len(t, res.PricingHistory, 1)
	assert.Equal(t, 75000.0, res.PricingHistory[0].Price)
	assert.Equal(t, 1, uow.commits)
}

func TestUpdatePropertyPublishesPriceChange(t *testing.T) {
	uow := newFakeUow()
	owner := seedOwner(uow, entity.UserRolePrivateSeller)
	publisher := &fakePublisher{}
	svc := NewPropertyService(&fakeFactory{uow: uow}, publisher)

	created, err := svc.Create(context.Background(), owner.Id, validCreateRequest())
	require.NoError(t, err)

	newPrice := 69000.0
	_, err = svc.Update(context.Background(), owner.Id, owner.Role, created.Id, &dto.UpdatePropertyRequest{Price: &newPrice})
	require.NoError(t, err)

	published := publisher.published()
	require.Len(t, published, 1)
	assert.Equal(t, events.PropertyPriceChanged, published[0].EventType())
	assert.Equal(t, newPrice, published[0].Payload()["new_price"])
	assert.Equal(t, created.Id.String(), published[0].Payload()["property_id"])
}

func TestUpdatePropertySamePricePublishesNothing(t *testing.T) {
	uow := newFakeUow()
	owner := seedOwner(uow, entity.UserRolePrivateSeller)
	publisher := &fakePublisher{}
	svc := NewPropertyService(&fakeFactory{uow: uow}, publisher)

	created, err := svc.Create(context.Background(), owner.Id, validCreateRequest())
	require.NoError(t, err)

	samePrice := created.Price
	_, err = svc.Update(context.Background(), owner.Id, owner.Role, created.Id, &dto.UpdatePropertyRequest{
		Price: &samePrice,
		Title: "Sunny two-room flat, renovated",
	})
	require.NoError(t, err)
	assert.Empty(t, publisher.published())
}

func TestUpdatePropertyOwnershipChecks(t *testing.T) {
	uow := newFakeUow()
	owner := seedOwner(uow, entity.UserRolePrivateSeller)
	svc := NewPropertyService(&fakeFactory{uow: uow}, &fakePublisher{})

	created, err := svc.Create(context.Background(), owner.Id, validCreateRequest())
	require.NoError(t, err)

	stranger := uuid.New()
	_, err = svc.Update(context.Background(), stranger, entity.UserRolePrivateSeller, created.Id, &dto.UpdatePropertyRequest{Title: "Hijacked title"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	// Moderators manage any listing.
	_, err = svc.Update(context.Background(), stranger, entity.UserRoleModerator, created.Id, &dto.UpdatePropertyRequest{Status: "inactive"})
	require.NoError(t, err)

	got, err := svc.GetById(context.Background(), created.Id)
	require.NoError(t, err)
	assert.Equal(t, "inactive", got.Status)
}

func TestVerifyPropertySetsBadgeAndComments(t *testing.T) {
	uow := newFakeUow()
	owner := seedOwner(uow, entity.UserRoleAgency)
	svc := NewPropertyService(&fakeFactory{uow: uow}, &fakePublisher{})

	created, err := svc.Create(context.Background(), owner.Id, validCreateRequest())
	require.NoError(t, err)
	assert.False(t, created.IsVerified)

	res, err := svc.Verify(context.Background(), created.Id, &dto.VerifyPropertyRequest{
		IsVerified: true,
		Comments:   "documents check out",
	})
	require.NoError(t, err)
	assert.True(t, res.IsVerified)

	stored := uow.properties.properties[created.Id]
	assert.True(t, stored.IsVerified)
	assert.Equal(t, "documents check out", stored.VerificationComments)

	_, err = svc.Verify(context.Background(), uuid.New(), &dto.VerifyPropertyRequest{IsVerified: true})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestDeletePropertyNotFound(t *testing.T) {
	uow := newFakeUow()
	svc := NewPropertyService(&fakeFactory{uow: uow}, &fakePublisher{})

	err := svc.Delete(context.Background(), uuid.New(), entity.UserRoleAdmin, uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
