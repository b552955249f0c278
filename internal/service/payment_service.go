package service

import (
	"context"
	"strings"

	"estateflow-be/internal/dto"
	"estateflow-be/internal/pkg/apperr"
	"estateflow-be/pkg/paypal"
)

// IPaymentService exposes checkout orders with caller-supplied amounts, for
// payments that are not tied to a subscription plan.
type IPaymentService interface {
	CreatePaypalOrder(ctx context.Context, req *dto.CreatePaypalOrderRequest) (*dto.PaypalOrderResponse, error)
	CapturePaypalOrder(ctx context.Context, req *dto.CapturePaypalOrderRequest) (*dto.PaypalCaptureResponse, error)
}

type paymentService struct {
	paypalClient *paypal.Client
}

func NewPaymentService(paypalClient *paypal.Client) IPaymentService {
	return &paymentService{paypalClient: paypalClient}
}

func (s *paymentService) CreatePaypalOrder(ctx context.Context, req *dto.CreatePaypalOrderRequest) (*dto.PaypalOrderResponse, error) {
	order, _, err := s.paypalClient.CreateOrder(ctx, req.Total, strings.ToUpper(req.Currency))
	if err != nil {
		return nil, apperr.Internal("payment provider order creation failed", err)
	}

	res := &dto.PaypalOrderResponse{
		OrderId: order.ID,
		Status:  order.Status,
	}
	for _, link := range order.Links {
		if link.Rel == "payer-action" || link.Rel == "approve" {
			res.ApproveLink = link.Href
			break
		}
	}
	return res, nil
}

func (s *paymentService) CapturePaypalOrder(ctx context.Context, req *dto.CapturePaypalOrderRequest) (*dto.PaypalCaptureResponse, error) {
	order, _, err := s.paypalClient.CaptureOrder(ctx, req.OrderId)
	if err != nil {
		return nil, apperr.Internal("payment provider capture failed", err)
	}

	return &dto.PaypalCaptureResponse{
		OrderId: order.ID,
		Status:  order.Status,
	}, nil
}
