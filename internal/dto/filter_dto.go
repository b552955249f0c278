package dto

type ValueRangeDTO struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

type FilterOptionsResponse struct {
	PriceRange       *ValueRangeDTO `json:"price_range"`
	AreaRange        *ValueRangeDTO `json:"area_range"`
	Rooms            []int          `json:"rooms"`
	TransactionTypes []string       `json:"transaction_types"`
	PropertyTypes    []string       `json:"property_types"`
}
