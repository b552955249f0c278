package dto

import (
	"time"

	"github.com/google/uuid"
)

type PlanResponse struct {
	Id           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Currency     string    `json:"currency"`
	DurationDays int       `json:"duration_days"`
}

type CreateOrderRequest struct {
	PlanId uuid.UUID `json:"plan_id" validate:"required"`
}

type CreateOrderResponse struct {
	OrderId     string `json:"order_id"`
	Status      string `json:"status"`
	ApproveLink string `json:"approve_link,omitempty"`
}

type CaptureOrderRequest struct {
	OrderId string    `json:"order_id" validate:"required"`
	PlanId  uuid.UUID `json:"plan_id" validate:"required"`
}

type SubscriptionResponse struct {
	Id            uuid.UUID `json:"id"`
	PlanId        uuid.UUID `json:"plan_id"`
	PaypalOrderId string    `json:"paypal_order_id"`
	Status        string    `json:"status"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
}
