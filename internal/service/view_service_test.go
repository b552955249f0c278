package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estateflow-be/internal/pkg/apperr"
)

func TestRecordViewDeduplicates(t *testing.T) {
	uow := newFakeUow()
	property := seedListing(uow, "Viewed flat")
	svc := NewViewService(&fakeFactory{uow: uow})
	userId := uuid.New()

	require.NoError(t, svc.RecordView(context.Background(), userId, property.Id))
	require.NoError(t, svc.RecordView(context.Background(), userId, property.Id))

	count, err := svc.CountViews(context.Background(), property.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRecordViewCountsDistinctUsers(t *testing.T) {
	uow := newFakeUow()
	property := seedListing(uow, "Popular flat")
	svc := NewViewService(&fakeFactory{uow: uow})

	require.NoError(t, svc.RecordView(context.Background(), uuid.New(), property.Id))
	require.NoError(t, svc.RecordView(context.Background(), uuid.New(), property.Id))

	count, err := svc.CountViews(context.Background(), property.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestRecordViewUnknownProperty(t *testing.T) {
	uow := newFakeUow()
	svc := NewViewService(&fakeFactory{uow: uow})

	err := svc.RecordView(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestGetHistoryReturnsUserViews(t *testing.T) {
	uow := newFakeUow()
	first := seedListing(uow, "First flat")
	second := seedListing(uow, "Second flat")
	svc := NewViewService(&fakeFactory{uow: uow})
	userId := uuid.New()

	require.NoError(t, svc.RecordView(context.Background(), userId, first.Id))
	require.NoError(t, svc.RecordView(context.Background(), userId, second.Id))
	require.NoError(t, svc.RecordView(context.Background(), uuid.New(), first.Id))

	history, err := svc.GetHistory(context.Background(), userId)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}
