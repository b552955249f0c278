package controller

import (
	"estateflow-be/internal/dto"
	"estateflow-be/internal/pkg/serverutils"
	"estateflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWishlistController interface {
	RegisterRoutes(r fiber.Router)
	Add(ctx *fiber.Ctx) error
	Remove(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Contains(ctx *fiber.Ctx) error
}

type wishlistController struct {
	wishlistService service.IWishlistService
}

func NewWishlistController(wishlistService service.IWishlistService) IWishlistController {
	return &wishlistController{wishlistService: wishlistService}
}

func (c *wishlistController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/wishlist/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Get(":propertyId", c.Contains)
	h.Post(":propertyId", c.Add)
	h.Delete(":propertyId", c.Remove)
}

func (c *wishlistController) Add(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}
	propertyId, err := parseIdParam(ctx, "propertyId")
	if err != nil {
		return err
	}

	if err := c.wishlistService.Add(ctx.Context(), userId, propertyId); err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse[any]("Added to wishlist", nil))
}

func (c *wishlistController) Remove(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}
	propertyId, err := parseIdParam(ctx, "propertyId")
	if err != nil {
		return err
	}

	if err := c.wishlistService.Remove(ctx.Context(), userId, propertyId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Removed from wishlist", nil))
}

func (c *wishlistController) Contains(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}
	propertyId, err := parseIdParam(ctx, "propertyId")
	if err != nil {
		return err
	}

	inWishlist, err := c.wishlistService.Contains(ctx.Context(), userId, propertyId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success check wishlist", dto.WishlistContainsResponse{InWishlist: inWishlist}))
}

func (c *wishlistController) List(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	res, err := c.wishlistService.GetAll(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get wishlist", res))
}
