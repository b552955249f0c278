package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estateflow-be/internal/constant"
	"estateflow-be/internal/dto"
	"estateflow-be/internal/pkg/apperr"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		endDate   string
		wantErr   bool
	}{
		{"valid window", "2026-01-01", "2026-01-31", false},
		{"single day", "2026-01-15", "2026-01-15", false},
		{"reversed", "2026-02-01", "2026-01-01", true},
		{"bad start", "January 1st", "2026-01-31", true},
		{"bad end", "2026-01-01", "31/01/2026", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, err := parseRange(tt.startDate, tt.endDate)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.True(t, from.Before(to))
			// Rows stamped late on the end date still fall inside the window.
			assert.Equal(t, 23, to.Hour())
			assert.Equal(t, 59, to.Minute())
			assert.Equal(t, 59, to.Second())
		})
	}
}

func TestParseRangeSameDayCoversWholeDay(t *testing.T) {
	from, to, err := parseRange("2026-03-10", "2026-03-10")
	require.NoError(t, err)

	noon := time.Date(2026, 3, 10, 12, 30, 0, 0, time.UTC)
	assert.True(t, noon.After(from) && noon.Before(to))
}

func TestPropertiesByRegionCoversAllRegions(t *testing.T) {
	uow := newFakeUow()
	uow.statistics.regionCounts = map[string]int{"Київська": 7, "Львівська": 3}
	svc := NewStatisticsService(&fakeFactory{uow: uow})

	res, err := svc.PropertiesByRegion(context.Background(), &dto.StatisticsRangeQuery{
		StartDate: "2026-01-01",
		EndDate:   "2026-06-30",
	})
	require.NoError(t, err)
	assert.Len(t, res, len(constant.UkraineRegions))

	byRegion := make(map[string]int, len(res))
	for _, row := range res {
		byRegion[row.Region] = row.Total
	}
	assert.Equal(t, 7, byRegion["Київська"])
	assert.Equal(t, 3, byRegion["Львівська"])
	assert.Equal(t, 0, byRegion["Волинська"])
}

func TestTopRegionsSortsAndLimits(t *testing.T) {
	uow := newFakeUow()
	uow.statistics.regionCounts = map[string]int{
		"Київська":  9,
		"Львівська": 6,
		"Одеська":   4,
	}
	svc := NewStatisticsService(&fakeFactory{uow: uow})

	res, err := svc.TopRegions(context.Background(), &dto.StatisticsRangeQuery{
		StartDate: "2026-01-01",
		EndDate:   "2026-06-30",
		Limit:     3,
	})
	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, "Київська", res[0].Region)
	assert.Equal(t, "Львівська", res[1].Region)
	assert.Equal(t, "Одеська", res[2].Region)
}

func TestTopRegionsDefaultLimit(t *testing.T) {
	uow := newFakeUow()
	svc := NewStatisticsService(&fakeFactory{uow: uow})

	res, err := svc.TopRegions(context.Background(), &dto.StatisticsRangeQuery{
		StartDate: "2026-01-01",
		EndDate:   "2026-06-30",
	})
	require.NoError(t, err)
	assert.Len(t, res, 5)
}

func TestPriceGrowthByRegion(t *testing.T) {
	avg := 112000.0
	uow := newFakeUow()
	uow.statistics.regionAvgs = map[string]*float64{"Київська": &avg}
	svc := NewStatisticsService(&fakeFactory{uow: uow})

	// The fake returns the same average for both windows, so growth is flat
	// where data exists and absent elsewhere.
	res, err := svc.PriceGrowthByRegion(context.Background(), &dto.PriceGrowthQuery{
		PreviousStart: "2025-01-01",
		PreviousEnd:   "2025-12-31",
		CurrentStart:  "2026-01-01",
		CurrentEnd:    "2026-06-30",
	})
	require.NoError(t, err)

	for _, row := range res {
		if row.Region == "Київська" {
			require.NotNil(t, row.GrowthPercent)
			assert.InDelta(t, 0.0, *row.GrowthPercent, 0.001)
		} else {
			assert.Nil(t, row.GrowthPercent)
		}
	}
}

func TestStatisticsRejectBadRange(t *testing.T) {
	uow := newFakeUow()
	svc := NewStatisticsService(&fakeFactory{uow: uow})

	_, err := svc.TotalSales(context.Background(), &dto.StatisticsRangeQuery{
		StartDate: "2026-06-30",
		EndDate:   "2026-01-01",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
