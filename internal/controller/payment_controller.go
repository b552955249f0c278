package controller

import (
	"estateflow-be/internal/dto"
	"estateflow-be/internal/pkg/serverutils"
	"estateflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPaymentController interface {
	RegisterRoutes(r fiber.Router)
	CreatePaypalOrder(ctx *fiber.Ctx) error
	CapturePaypalOrder(ctx *fiber.Ctx) error
}

type paymentController struct {
	paymentService service.IPaymentService
}

func NewPaymentController(paymentService service.IPaymentService) IPaymentController {
	return &paymentController{paymentService: paymentService}
}

func (c *paymentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/payment/v1")
	h.Use(serverutils.JwtMiddleware)

	h.Post("paypal/orders", c.CreatePaypalOrder)
	h.Post("paypal/orders/capture", c.CapturePaypalOrder)
}

func (c *paymentController) CreatePaypalOrder(ctx *fiber.Ctx) error {
	var req dto.CreatePaypalOrderRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.paymentService.CreatePaypalOrder(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Order created", res))
}

func (c *paymentController) CapturePaypalOrder(ctx *fiber.Ctx) error {
	var req dto.CapturePaypalOrderRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.paymentService.CapturePaypalOrder(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Payment captured", res))
}
