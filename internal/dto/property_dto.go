package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePropertyRequest struct {
	Title           string   `json:"title" validate:"required,min=3"`
	Description     string   `json:"description"`
	PropertyType    string   `json:"property_type" validate:"required,oneof=house apartment"`
	TransactionType string   `json:"transaction_type" validate:"required,oneof=sale rent"`
	Price           float64  `json:"price" validate:"required,gt=0"`
	Currency        string   `json:"currency,omitempty" validate:"omitempty,len=3"`
	Address         string   `json:"address" validate:"required"`
	Area            float64  `json:"area,omitempty" validate:"omitempty,gt=0"`
	Rooms           int      `json:"rooms,omitempty" validate:"omitempty,gte=0"`
	Floor           *int     `json:"floor,omitempty"`
	TotalFloors     *int     `json:"total_floors,omitempty"`
	ImageURLs       []string `json:"image_urls,omitempty" validate:"omitempty,dive,url"`
}

type UpdatePropertyRequest struct {
	Title       string   `json:"title,omitempty" validate:"omitempty,min=3"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Address     string   `json:"address,omitempty"`
	Area        *float64 `json:"area,omitempty" validate:"omitempty,gt=0"`
	Rooms       *int     `json:"rooms,omitempty" validate:"omitempty,gte=0"`
	Floor       *int     `json:"floor,omitempty"`
	TotalFloors *int     `json:"total_floors,omitempty"`
	Status      string   `json:"status,omitempty" validate:"omitempty,oneof=active inactive sold rented"`
}

type PropertyImageDTO struct {
	Id        uuid.UUID `json:"id"`
	ImageURL  string    `json:"image_url"`
	SortOrder int       `json:"sort_order"`
}

type PricingHistoryDTO struct {
	Price         float64   `json:"price"`
	Currency      string    `json:"currency"`
	EffectiveDate time.Time `json:"effective_date"`
}

type PropertyResponse struct {
	Id              uuid.UUID           `json:"id"`
	OwnerId         uuid.UUID           `json:"owner_id"`
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	PropertyType    string              `json:"property_type"`
	TransactionType string              `json:"transaction_type"`
	Status          string              `json:"status"`
	Price           float64             `json:"price"`
	Currency        string              `json:"currency"`
	Address         string              `json:"address"`
	Area            float64             `json:"area"`
	Rooms           int                 `json:"rooms"`
	Floor           *int                `json:"floor,omitempty"`
	TotalFloors     *int                `json:"total_floors,omitempty"`
	IsVerified      bool                `json:"is_verified"`
	Images          []PropertyImageDTO  `json:"images"`
	PricingHistory  []PricingHistoryDTO `json:"pricing_history"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

type PropertyListResponse struct {
	Properties []PropertyResponse `json:"properties"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
}

type AddImageRequest struct {
	ImageURL  string `json:"image_url" validate:"required,url"`
	SortOrder int    `json:"sort_order" validate:"gte=0"`
}

type VerifyPropertyRequest struct {
	IsVerified bool   `json:"is_verified"`
	Comments   string `json:"comments,omitempty"`
}

// --- Filter DTOs (query params) ---

type PropertyFilterQuery struct {
	PropertyType    string  `query:"property_type"`
	TransactionType string  `query:"transaction_type"`
	MinPrice        float64 `query:"min_price"`
	MaxPrice        float64 `query:"max_price"`
	MinArea         float64 `query:"min_area"`
	MaxArea         float64 `query:"max_area"`
	Rooms           int     `query:"rooms"`
	Address         string  `query:"address"`
	SortBy          string  `query:"sort_by"`
	SortDesc        bool    `query:"sort_desc"`
	Page            int     `query:"page"`
	PageSize        int     `query:"page_size"`
}

// --- Wishlist / View DTOs ---

type WishlistItemResponse struct {
	PropertyId uuid.UUID        `json:"property_id"`
	Property   PropertyResponse `json:"property"`
	AddedAt    time.Time        `json:"added_at"`
}

type WishlistContainsResponse struct {
	InWishlist bool `json:"in_wishlist"`
}

type PropertyViewResponse struct {
	PropertyId uuid.UUID `json:"property_id"`
	ViewedAt   time.Time `json:"viewed_at"`
}
