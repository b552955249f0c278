package controller

import (
	"estateflow-be/internal/pkg/serverutils"
	"estateflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IViewController interface {
	RegisterRoutes(r fiber.Router)
	Record(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Count(ctx *fiber.Ctx) error
}

type viewController struct {
	viewService service.IViewService
}

func NewViewController(viewService service.IViewService) IViewController {
	return &viewController{viewService: viewService}
}

func (c *viewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/view/v1")
	h.Get(":propertyId/count", c.Count)

	h.Use(serverutils.JwtMiddleware)
	h.Post(":propertyId", c.Record)
	h.Get("", c.History)
}

func (c *viewController) Record(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}
	propertyId, err := parseIdParam(ctx, "propertyId")
	if err != nil {
		return err
	}

	if err := c.viewService.RecordView(ctx.Context(), userId, propertyId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("View recorded", nil))
}

func (c *viewController) History(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	res, err := c.viewService.GetHistory(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get view history", res))
}

func (c *viewController) Count(ctx *fiber.Ctx) error {
	propertyId, err := parseIdParam(ctx, "propertyId")
	if err != nil {
		return err
	}

	count, err := c.viewService.CountViews(ctx.Context(), propertyId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success count views", count))
}
