package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"estateflow-be/internal/dto"
	"estateflow-be/internal/entity"
	"estateflow-be/internal/pkg/apperr"
	"estateflow-be/internal/pkg/logger"
	"estateflow-be/internal/pkg/mailer"
	"estateflow-be/internal/repository/specification"
	"estateflow-be/internal/repository/unitofwork"
	"estateflow-be/pkg/events"
	"estateflow-be/pkg/paypal"
)

type ISubscriptionService interface {
	GetPlans(ctx context.Context) ([]dto.PlanResponse, error)
	CreateOrder(ctx context.Context, userId uuid.UUID, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error)
	CaptureOrder(ctx context.Context, userId uuid.UUID, req *dto.CaptureOrderRequest) (*dto.SubscriptionResponse, error)
	GetSubscriptions(ctx context.Context, userId uuid.UUID) ([]dto.SubscriptionResponse, error)
}

type subscriptionService struct {
	uowFactory     unitofwork.RepositoryFactory
	paypalClient   *paypal.Client
	emailService   mailer.IEmailService
	eventPublisher IPublisherService
	log            logger.ILogger
}

func NewSubscriptionService(
	uowFactory unitofwork.RepositoryFactory,
	paypalClient *paypal.Client,
	emailService mailer.IEmailService,
	eventPublisher IPublisherService,
	log logger.ILogger,
) ISubscriptionService {
	return &subscriptionService{
		uowFactory:     uowFactory,
		paypalClient:   paypalClient,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func planToDTO(p *entity.SubscriptionPlan) dto.PlanResponse {
	return dto.PlanResponse{
		Id:           p.Id,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Currency:     p.Currency,
		DurationDays: p.DurationDays,
	}
}

func subscriptionToDTO(s *entity.Subscription) dto.SubscriptionResponse {
	return dto.SubscriptionResponse{
		Id:            s.Id,
		PlanId:        s.PlanId,
		PaypalOrderId: s.PaypalOrderId,
		Status:        string(s.Status),
		StartDate:     s.StartDate,
		EndDate:       s.EndDate,
	}
}

func (s *subscriptionService) GetPlans(ctx context.Context) ([]dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plans, err := uow.SubscriptionRepository().FindAllPlans(ctx,
		specification.OrderBy{Field: "price", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := make([]dto.PlanResponse, len(plans))
	for i, p := range plans {
		res[i] = planToDTO(p)
	}
	return res, nil
}

func (s *subscriptionService) CreateOrder(ctx context.Context, userId uuid.UUID, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.SubscriptionRepository().FindPlan(ctx, specification.ByID{ID: req.PlanId})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperr.NotFound("subscription plan not found")
	}

	total := strconv.FormatFloat(plan.Price, 'f', 2, 64)
	order, _, err := s.paypalClient.CreateOrder(ctx, total, plan.Currency)
	if err != nil {
		return nil, apperr.Internal("payment provider order creation failed", err)
	}

	res := &dto.CreateOrderResponse{
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

func (s *subscriptionService) CaptureOrder(ctx context.Context, userId uuid.UUID, req *dto.CaptureOrderRequest) (*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}

	plan, err := uow.SubscriptionRepository().FindPlan(ctx, specification.ByID{ID: req.PlanId})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperr.NotFound("subscription plan not found")
	}

	existing, err := uow.SubscriptionRepository().FindByPaypalOrderId(ctx, req.OrderId)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("order already captured")
	}

	order, rawCapture, err := s.paypalClient.CaptureOrder(ctx, req.OrderId)
	if err != nil {
		return nil, apperr.Internal("payment provider capture failed", err)
	}
	if !strings.EqualFold(order.Status, "COMPLETED") {
		return nil, apperr.Validation("payment was not completed")
	}

	now := time.Now()
	subscription := &entity.Subscription{
		Id:            uuid.New(),
		UserId:        userId,
		PlanId:        plan.Id,
		PaypalOrderId: order.ID,
		Status:        entity.SubscriptionStatusActive,
		StartDate:     now,
		EndDate:       now.AddDate(0, 0, plan.DurationDays),
		RawCapture:    rawCapture,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.SubscriptionRepository().Create(ctx, subscription); err != nil {
		return nil, err
	}

	// A paid plan upgrades the account to agency with its listing quota.
	newRole := entity.UserRoleAgency
	if err := uow.UserRepository().UpdateRole(ctx, userId, newRole, entity.ListingLimitForRole(newRole)); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.emailService != nil {
		go func() {
			if mailErr := s.emailService.SendSubscriptionReceipt(user.Email, plan.Name, plan.Price, plan.Currency); mailErr != nil {
				s.log.Warn("subscription", "failed to send receipt email", map[string]interface{}{
					"error": mailErr.Error(),
				})
			}
		}()
	}

	if s.eventPublisher != nil {
		_ = s.eventPublisher.PublishEvent(ctx, events.BaseEvent{
			Type: events.SubscriptionCaptured,
			Data: map[string]interface{}{
				"user_id":         userId.String(),
				"plan_id":         plan.Id.String(),
				"paypal_order_id": order.ID,
				"amount":          plan.Price,
				"currency":        plan.Currency,
			},
			OccurredAt: now,
		})
	}

	res := subscriptionToDTO(subscription)
	return &res, nil
}

func (s *subscriptionService) GetSubscriptions(ctx context.Context, userId uuid.UUID) ([]dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subscriptions, err := uow.SubscriptionRepository().FindAllByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	res := make([]dto.SubscriptionResponse, len(subscriptions))
	for i, sub := range subscriptions {
		res[i] = subscriptionToDTO(sub)
	}
	return res, nil
}
