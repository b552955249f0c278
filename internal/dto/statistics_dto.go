package dto

import "github.com/google/uuid"

type StatisticsRangeQuery struct {
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
	Limit     int    `query:"limit"`
}

type PriceGrowthQuery struct {
	PreviousStart string `query:"previous_start"`
	PreviousEnd   string `query:"previous_end"`
	CurrentStart  string `query:"current_start"`
	CurrentEnd    string `query:"current_end"`
}

type RegionCountDTO struct {
	Region string `json:"region"`
	Total  int    `json:"total"`
}

type RegionPriceStatsDTO struct {
	Region string   `json:"region"`
	Min    *float64 `json:"min"`
	Max    *float64 `json:"max"`
	Avg    *float64 `json:"avg"`
}

type RegionPriceGrowthDTO struct {
	Region        string   `json:"region"`
	PreviousAvg   *float64 `json:"previous_avg"`
	CurrentAvg    *float64 `json:"current_avg"`
	GrowthPercent *float64 `json:"growth_percent"`
}

type SalesTotalsDTO struct {
	TotalSales  int     `json:"total_sales"`
	TotalAmount float64 `json:"total_amount"`
}

type ViewedPropertyDTO struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	Address   string    `json:"address"`
	ViewCount int       `json:"view_count"`
}

type NewUserStatsDTO struct {
	NewBuyers   int `json:"new_buyers"`
	NewSellers  int `json:"new_sellers"`
	NewAgencies int `json:"new_agencies"`
}

type PropertyViewCountDTO struct {
	PropertyId uuid.UUID `json:"property_id"`
	Count      int64     `json:"count"`
}
