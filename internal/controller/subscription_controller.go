package controller

import (
	"estateflow-be/internal/dto"
	"estateflow-be/internal/pkg/serverutils"
	"estateflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISubscriptionController interface {
	RegisterRoutes(r fiber.Router)
	Plans(ctx *fiber.Ctx) error
	CreateOrder(ctx *fiber.Ctx) error
	CaptureOrder(ctx *fiber.Ctx) error
	MySubscriptions(ctx *fiber.Ctx) error
}

type subscriptionController struct {
	subscriptionService service.ISubscriptionService
}

func NewSubscriptionController(subscriptionService service.ISubscriptionService) ISubscriptionController {
	return &subscriptionController{subscriptionService: subscriptionService}
}

func (c *subscriptionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/subscription/v1")
	h.Get("plans", c.Plans)

	h.Use(serverutils.JwtMiddleware)
	h.Post("orders", c.CreateOrder)
	h.Post("orders/capture", c.CaptureOrder)
	h.Get("", c.MySubscriptions)
}

func (c *subscriptionController) Plans(ctx *fiber.Ctx) error {
	res, err := c.subscriptionService.GetPlans(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get plans", res))
}

func (c *subscriptionController) CreateOrder(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateOrderRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.subscriptionService.CreateOrder(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Order created", res))
}

func (c *subscriptionController) CaptureOrder(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	var req dto.CaptureOrderRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.subscriptionService.CaptureOrder(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Payment captured, subscription activated", res))
}

func (c *subscriptionController) MySubscriptions(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	res, err := c.subscriptionService.GetSubscriptions(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get subscriptions", res))
}
