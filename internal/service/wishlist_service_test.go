package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estateflow-be/internal/entity"
	"estateflow-be/internal/pkg/apperr"
)

func seedListing(uow *fakeUow, title string) *entity.Property {
	p := &entity.Property{
		Id:      uuid.New(),
		OwnerId: uuid.New(),
		Title:   title,
		Status:  entity.PropertyStatusActive,
		Price:   50000,
	}
	uow.properties.properties[p.Id] = p
	return p
}

func TestWishlistAddAndConflict(t *testing.T) {
	uow := newFakeUow()
	property := seedListing(uow, "Cottage near Lviv")
	svc := NewWishlistService(&fakeFactory{uow: uow})
	userId := uuid.New()

	require.NoError(t, svc.Add(context.Background(), userId, property.Id))

	err := svc.Add(context.Background(), userId, property.Id)
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestWishlistAddUnknownProperty(t *testing.T) {
	uow := newFakeUow()
	svc := NewWishlistService(&fakeFactory{uow: uow})

	err := svc.Add(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestWishlistRemoveMissingItem(t *testing.T) {
	uow := newFakeUow()
	property := seedListing(uow, "Cottage near Lviv")
	svc := NewWishlistService(&fakeFactory{uow: uow})

	err := svc.Remove(context.Background(), uuid.New(), property.Id)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestWishlistGetAllSkipsDeletedListings(t *testing.T) {
	uow := newFakeUow()
	kept := seedListing(uow, "Kept flat")
	doomed := seedListing(uow, "Doomed flat")
	svc := NewWishlistService(&fakeFactory{uow: uow})
	userId := uuid.New()

	require.NoError(t, svc.Add(context.Background(), userId, kept.Id))
	require.NoError(t, svc.Add(context.Background(), userId, doomed.Id))
	delete(uow.properties.properties, doomed.Id)

	items, err := svc.GetAll(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, kept.Id, items[0].PropertyId)
	assert.Equal(t, "Kept flat", items[0].Property.Title)
}

func TestWishlistContains(t *testing.T) {
	uow := newFakeUow()
	property := seedListing(uow, "Tracked flat")
	svc := NewWishlistService(&fakeFactory{uow: uow})
	userId := uuid.New()

	in, err := svc.Contains(context.Background(), userId, property.Id)
	require.NoError(t, err)
	assert.False(t, in)

	require.NoError(t, svc.Add(context.Background(), userId, property.Id))

	in, err = svc.Contains(context.Background(), userId, property.Id)
	require.NoError(t, err)
	assert.True(t, in)
}

func TestWishlistGetAllEmpty(t *testing.T) {
	uow := newFakeUow()
	svc := NewWishlistService(&fakeFactory{uow: uow})

	items, err := svc.GetAll(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, items)
}
