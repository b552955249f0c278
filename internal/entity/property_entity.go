package entity

import (
	"time"

	"github.com/google/uuid"
)

type PropertyType string
type TransactionType string
type PropertyStatus string

const (
	PropertyTypeHouse     PropertyType = "house"
	PropertyTypeApartment PropertyType = "apartment"

	TransactionTypeSale TransactionType = "sale"
	TransactionTypeRent TransactionType = "rent"

	PropertyStatusActive   PropertyStatus = "active"
	PropertyStatusInactive PropertyStatus = "inactive"
	PropertyStatusSold     PropertyStatus = "sold"
	PropertyStatusRented   PropertyStatus = "rented"
)

type Property struct {
	Id              uuid.UUID
	OwnerId         uuid.UUID
	Title           string
	Description     string
	PropertyType    PropertyType
	TransactionType TransactionType
	Status          PropertyStatus
	Price           float64
	Currency        string
	Address         string
	Area            float64
	Rooms           int
	Floor           *int
	TotalFloors     *int

	// Set by moderation review; a verified badge on the public listing.
	IsVerified           bool
	VerificationComments string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Loaded relations (populated by the repository on demand)
	Images         []*PropertyImage
	PricingHistory []*PricingHistory
}

type PropertyImage struct {
	Id         uuid.UUID
	PropertyId uuid.UUID
	ImageURL   string
	SortOrder  int
	CreatedAt  time.Time
}

type PricingHistory struct {
	Id            uuid.UUID
	PropertyId    uuid.UUID
	Price         float64
	Currency      string
	EffectiveDate time.Time
	CreatedAt     time.Time
}

type PropertyView struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	PropertyId uuid.UUID
	ViewedAt   time.Time
}

type WishlistItem struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	PropertyId uuid.UUID
	CreatedAt  time.Time
}
