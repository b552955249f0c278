package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estateflow-be/internal/entity"
)

func TestRangeToDTO(t *testing.T) {
	low := 40000.0
	high := 250000.0

	tests := []struct {
		name string
		in   *entity.ValueRange
		want bool
	}{
		{"nil range", nil, false},
		{"empty table", &entity.ValueRange{}, false},
		{"populated", &entity.ValueRange{Min: &low, Max: &high}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rangeToDTO(tt.in)
			if !tt.want {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, low, *got.Min)
			assert.Equal(t, high, *got.Max)
		})
	}
}

func TestGetOptionsAggregates(t *testing.T) {
	low := 30000.0
	high := 90000.0
	uow := newFakeUow()
	uow.filters.priceRange = &entity.ValueRange{Min: &low, Max: &high}
	uow.filters.rooms = []int{1, 2, 3}
	svc := NewFilterService(&fakeFactory{uow: uow})

	options, err := svc.GetOptions(context.Background())
	require.NoError(t, err)

	require.NotNil(t, options.PriceRange)
	assert.Equal(t, low, *options.PriceRange.Min)
	// No area data seeded.
	assert.Nil(t, options.AreaRange)
	assert.Equal(t, []int{1, 2, 3}, options.Rooms)
	assert.Equal(t, []string{"rent", "sale"}, options.TransactionTypes)
	assert.Equal(t, []string{"apartment", "house"}, options.PropertyTypes)
}
