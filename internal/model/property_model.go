package model

import (
	"time"

	"github.com/google/uuid"
)

type Property struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OwnerId         uuid.UUID `gorm:"type:uuid;not null;index"`
	Title           string    `gorm:"type:varchar(255);not null"`
	Description     string    `gorm:"type:text"`
	PropertyType    string    `gorm:"type:varchar(50);not null"`
	TransactionType string    `gorm:"type:varchar(50);not null"`
	Status          string    `gorm:"type:varchar(50);not null;default:'active';index"`
	Price           float64   `gorm:"type:numeric(14,2);not null"`
	Currency        string    `gorm:"type:varchar(10);not null;default:'USD'"`
	Address         string    `gorm:"type:text;not null"`
	Area            float64   `gorm:"type:numeric(10,2)"`
	Rooms           int       `gorm:"default:0"`
	Floor           *int
	TotalFloors     *int

	IsVerified           bool   `gorm:"default:false"`
	VerificationComments string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Images         []PropertyImage  `gorm:"foreignKey:PropertyId"`
	PricingHistory []PricingHistory `gorm:"foreignKey:PropertyId"`
}

func (Property) TableName() string {
	return "properties"
}

type PropertyImage struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PropertyId uuid.UUID `gorm:"type:uuid;not null;index"`
	ImageURL   string    `gorm:"type:text;not null"`
	SortOrder  int       `gorm:"default:0"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (PropertyImage) TableName() string {
	return "property_images"
}

type PricingHistory struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PropertyId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Price         float64   `gorm:"type:numeric(14,2);not null"`
	Currency      string    `gorm:"type:varchar(10);not null"`
	EffectiveDate time.Time `gorm:"not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (PricingHistory) TableName() string {
	return "pricing_history"
}

type PropertyView struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_property_views_pair"`
	PropertyId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_property_views_pair"`
	ViewedAt   time.Time `gorm:"not null"`
}

func (PropertyView) TableName() string {
	return "property_views"
}

type WishlistItem struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_pair"`
	PropertyId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_pair"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (WishlistItem) TableName() string {
	return "wishlist_items"
}
