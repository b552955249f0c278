package controller

import (
	"estateflow-be/internal/pkg/serverutils"
	"estateflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFilterController interface {
	RegisterRoutes(r fiber.Router)
	Options(ctx *fiber.Ctx) error
	PriceRange(ctx *fiber.Ctx) error
	AreaRange(ctx *fiber.Ctx) error
	Rooms(ctx *fiber.Ctx) error
	TransactionTypes(ctx *fiber.Ctx) error
	PropertyTypes(ctx *fiber.Ctx) error
}

type filterController struct {
	filterService service.IFilterService
}

func NewFilterController(filterService service.IFilterService) IFilterController {
	return &filterController{filterService: filterService}
}

func (c *filterController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/filter/v1")
	h.Get("options", c.Options)
	h.Get("price-range", c.PriceRange)
	h.Get("area-range", c.AreaRange)
	h.Get("rooms", c.Rooms)
	h.Get("transaction-types", c.TransactionTypes)
	h.Get("property-types", c.PropertyTypes)
}

func (c *filterController) Options(ctx *fiber.Ctx) error {
	res, err := c.filterService.GetOptions(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get filter options", res))
}

func (c *filterController) PriceRange(ctx *fiber.Ctx) error {
	res, err := c.filterService.GetPriceRange(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get price range", res))
}

func (c *filterController) AreaRange(ctx *fiber.Ctx) error {
	res, err := c.filterService.GetAreaRange(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get area range", res))
}

func (c *filterController) Rooms(ctx *fiber.Ctx) error {
	res, err := c.filterService.GetRooms(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get rooms", res))
}

func (c *filterController) TransactionTypes(ctx *fiber.Ctx) error {
	res, err := c.filterService.GetTransactionTypes(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get transaction types", res))
}

func (c *filterController) PropertyTypes(ctx *fiber.Ctx) error {
	res, err := c.filterService.GetPropertyTypes(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get property types", res))
}
