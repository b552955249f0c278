package controller

import (
	"estateflow-be/internal/dto"
	"estateflow-be/internal/entity"
	"estateflow-be/internal/pkg/apperr"
	"estateflow-be/internal/pkg/serverutils"
	"estateflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IStatisticsController interface {
	RegisterRoutes(r fiber.Router)
	PropertiesByRegion(ctx *fiber.Ctx) error
	TopRegions(ctx *fiber.Ctx) error
	PriceStats(ctx *fiber.Ctx) error
	PriceGrowth(ctx *fiber.Ctx) error
	PropertyViews(ctx *fiber.Ctx) error
	TotalSales(ctx *fiber.Ctx) error
	TopViewed(ctx *fiber.Ctx) error
	NewUsers(ctx *fiber.Ctx) error
}

type statisticsController struct {
	statisticsService service.IStatisticsService
}

func NewStatisticsController(statisticsService service.IStatisticsService) IStatisticsController {
	return &statisticsController{statisticsService: statisticsService}
}

func (c *statisticsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/statistics/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.RequireRoles(
		string(entity.UserRoleModerator),
		string(entity.UserRoleAdmin),
	))

	h.Get("regions/properties", c.PropertiesByRegion)
	h.Get("regions/top", c.TopRegions)
	h.Get("regions/prices", c.PriceStats)
	h.Get("regions/price-growth", c.PriceGrowth)
	h.Get("properties/:propertyId/views", c.PropertyViews)
	h.Get("sales/total", c.TotalSales)
	h.Get("properties/top-viewed", c.TopViewed)
	h.Get("users/new", c.NewUsers)
}

func parseRangeQuery(ctx *fiber.Ctx) (*dto.StatisticsRangeQuery, error) {
	var query dto.StatisticsRangeQuery
	if err := ctx.QueryParser(&query); err != nil {
		return nil, apperr.Validation("Invalid query parameters")
	}
	return &query, nil
}

func (c *statisticsController) PropertiesByRegion(ctx *fiber.Ctx) error {
	query, err := parseRangeQuery(ctx)
	if err != nil {
		return err
	}

	res, err := c.statisticsService.PropertiesByRegion(ctx.Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get properties by region", res))
}

func (c *statisticsController) TopRegions(ctx *fiber.Ctx) error {
	query, err := parseRangeQuery(ctx)
	if err != nil {
		return err
	}

	res, err := c.statisticsService.TopRegions(ctx.Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get top regions", res))
}

func (c *statisticsController) PriceStats(ctx *fiber.Ctx) error {
	query, err := parseRangeQuery(ctx)
	if err != nil {
		return err
	}

	res, err := c.statisticsService.PriceStatsByRegion(ctx.Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get regional price stats", res))
}

func (c *statisticsController) PriceGrowth(ctx *fiber.Ctx) error {
	var query dto.PriceGrowthQuery
	if err := ctx.QueryParser(&query); err != nil {
		return apperr.Validation("Invalid query parameters")
	}

	res, err := c.statisticsService.PriceGrowthByRegion(ctx.Context(), &query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get price growth", res))
}

func (c *statisticsController) PropertyViews(ctx *fiber.Ctx) error {
	propertyId, err := parseIdParam(ctx, "propertyId")
	if err != nil {
		return err
	}
	query, err := parseRangeQuery(ctx)
	if err != nil {
		return err
	}

	res, err := c.statisticsService.PropertyViews(ctx.Context(), propertyId, query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get property views", res))
}

func (c *statisticsController) TotalSales(ctx *fiber.Ctx) error {
	query, err := parseRangeQuery(ctx)
	if err != nil {
		return err
	}

	res, err := c.statisticsService.TotalSales(ctx.Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get total sales", res))
}

func (c *statisticsController) TopViewed(ctx *fiber.Ctx) error {
	query, err := parseRangeQuery(ctx)
	if err != nil {
		return err
	}

	res, err := c.statisticsService.TopViewedProperties(ctx.Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get top viewed properties", res))
}

func (c *statisticsController) NewUsers(ctx *fiber.Ctx) error {
	query, err := parseRangeQuery(ctx)
	if err != nil {
		return err
	}

	res, err := c.statisticsService.NewUsers(ctx.Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get new users", res))
}
