package entity

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusExpired  SubscriptionStatus = "expired"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
)

type SubscriptionPlan struct {
	Id           uuid.UUID
	Name         string
	Description  string
	Price        float64
	Currency     string
	DurationDays int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Subscription struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	PlanId        uuid.UUID
	PaypalOrderId string
	Status        SubscriptionStatus
	StartDate     time.Time
	EndDate       time.Time
	RawCapture    []byte // raw PayPal capture payload, stored as JSON
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
