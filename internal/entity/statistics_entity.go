package entity

import "github.com/google/uuid"

type RegionPriceStats struct {
	Region string
	Min    *float64
	Max    *float64
	Avg    *float64
}

type RegionCount struct {
	Region string
	Total  int
}

type RegionPriceGrowth struct {
	Region        string
	PreviousAvg   *float64
	CurrentAvg    *float64
	GrowthPercent *float64
}

type SalesTotals struct {
	TotalSales  int
	TotalAmount float64
}

type ViewedProperty struct {
	Id        uuid.UUID
	Title     string
	Price     float64
	Address   string
	ViewCount int
}

type NewUserStats struct {
	NewBuyers   int
	NewSellers  int
	NewAgencies int
}
