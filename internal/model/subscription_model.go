package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SubscriptionPlan struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description  string    `gorm:"type:text"`
	Price        float64   `gorm:"type:numeric(14,2);not null"`
	Currency     string    `gorm:"type:varchar(10);not null;default:'USD'"`
	DurationDays int       `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (SubscriptionPlan) TableName() string {
	return "subscription_plans"
}

type Subscription struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        uuid.UUID      `gorm:"type:uuid;not null;index"`
	PlanId        uuid.UUID      `gorm:"type:uuid;not null"`
	PaypalOrderId string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	Status        string         `gorm:"type:varchar(50);not null"`
	StartDate     time.Time      `gorm:"not null"`
	EndDate       time.Time      `gorm:"not null"`
	RawCapture    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
