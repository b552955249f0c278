package controller

import (
	"estateflow-be/internal/dto"
	"estateflow-be/internal/entity"
	"estateflow-be/internal/pkg/apperr"
	"estateflow-be/internal/pkg/serverutils"
	"estateflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPropertyController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	MyListings(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Verify(ctx *fiber.Ctx) error
	AddImage(ctx *fiber.Ctx) error
	DeleteImage(ctx *fiber.Ctx) error
}

type propertyController struct {
	propertyService service.IPropertyService
}

func NewPropertyController(propertyService service.IPropertyService) IPropertyController {
	return &propertyController{propertyService: propertyService}
}

func (c *propertyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/property/v1")

	// Public browsing
	h.Get("", c.Search)
	h.Get(":id", c.Show)

	// Listing management
	h.Use(serverutils.JwtMiddleware)
	h.Get("mine/all", c.MyListings)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Post(":id/images", c.AddImage)
	h.Delete(":id/images/:imageId", c.DeleteImage)

	// Moderation
	h.Patch(":id/verify",
		serverutils.RequireRoles(string(entity.UserRoleModerator), string(entity.UserRoleAdmin)),
		c.Verify,
	)
}

func parseIdParam(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, apperr.Validation("invalid id parameter")
	}
	return id, nil
}

func (c *propertyController) Create(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	var req dto.CreatePropertyRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.propertyService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Property created", res))
}

func (c *propertyController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.propertyService.GetById(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get property", res))
}

func (c *propertyController) Search(ctx *fiber.Ctx) error {
	var query dto.PropertyFilterQuery
	if err := ctx.QueryParser(&query); err != nil {
		return apperr.Validation("Invalid query parameters")
	}

	res, err := c.propertyService.GetAll(ctx.Context(), &query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search properties", res))
}

func (c *propertyController) MyListings(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	res, err := c.propertyService.GetByOwner(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get own listings", res))
}

func (c *propertyController) Update(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdatePropertyRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	role := entity.UserRole(serverutils.RoleFromCtx(ctx))
	res, err := c.propertyService.Update(ctx.Context(), userId, role, id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Property updated", res))
}

func (c *propertyController) Verify(ctx *fiber.Ctx) error {
	propertyId, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.VerifyPropertyRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.propertyService.Verify(ctx.Context(), propertyId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Property verification updated", res))
}

func (c *propertyController) Delete(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	role := entity.UserRole(serverutils.RoleFromCtx(ctx))
	if err := c.propertyService.Delete(ctx.Context(), userId, role, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Property deleted", nil))
}

func (c *propertyController) AddImage(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.AddImageRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	role := entity.UserRole(serverutils.RoleFromCtx(ctx))
	res, err := c.propertyService.AddImage(ctx.Context(), userId, role, id, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Image added", res))
}

func (c *propertyController) DeleteImage(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}
	id, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}
	imageId, err := parseIdParam(ctx, "imageId")
	if err != nil {
		return err
	}

	role := entity.UserRole(serverutils.RoleFromCtx(ctx))
	if err := c.propertyService.DeleteImage(ctx.Context(), userId, role, id, imageId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Image deleted", nil))
}
