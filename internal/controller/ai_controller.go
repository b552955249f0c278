package controller

import (
	"estateflow-be/internal/dto"
	"estateflow-be/internal/entity"
	"estateflow-be/internal/pkg/serverutils"
	"estateflow-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAiController interface {
	RegisterRoutes(r fiber.Router)
	CreateConversation(ctx *fiber.Ctx) error
	ListConversations(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	FullHistory(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	Deactivate(ctx *fiber.Ctx) error
	DefaultSystemPrompt(ctx *fiber.Ctx) error
	ListSystemPrompts(ctx *fiber.Ctx) error
	UpdateSystemPrompt(ctx *fiber.Ctx) error
}

type aiController struct {
	aiService service.IAiService
}

func NewAiController(aiService service.IAiService) IAiController {
	return &aiController{aiService: aiService}
}

func (c *aiController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ai/v1")
	h.Use(serverutils.JwtMiddleware)

	h.Post("conversations", c.CreateConversation)
	h.Get("conversations", c.ListConversations)
	h.Get("conversations/:id/messages", c.History)
	h.Get("conversations/:id/messages/full", c.FullHistory)
	h.Post("messages", c.SendMessage)
	h.Put("conversations/:id/deactivate", c.Deactivate)
	h.Get("prompts/default", c.DefaultSystemPrompt)

	admin := h.Group("/prompts", serverutils.RequireRoles(string(entity.UserRoleAdmin)))
	admin.Get("", c.ListSystemPrompts)
	admin.Put("", c.UpdateSystemPrompt)
}

func (c *aiController) CreateConversation(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateConversationRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.aiService.CreateConversation(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Conversation created", res))
}

func (c *aiController) ListConversations(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	res, err := c.aiService.GetConversations(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get conversations", res))
}

func (c *aiController) History(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}
	conversationId, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.aiService.GetHistory(ctx.Context(), userId, conversationId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get history", res))
}

func (c *aiController) FullHistory(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}
	conversationId, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.aiService.GetFullHistory(ctx.Context(), userId, conversationId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get full history", res))
}

func (c *aiController) SendMessage(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	var req dto.SendMessageRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.aiService.SendMessage(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Message sent", res))
}

func (c *aiController) Deactivate(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}
	conversationId, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.aiService.DeactivateConversation(ctx.Context(), userId, conversationId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Conversation deactivated", nil))
}

func (c *aiController) DefaultSystemPrompt(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return err
	}

	res, err := c.aiService.GetDefaultSystemPrompt(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get default prompt", res))
}

func (c *aiController) ListSystemPrompts(ctx *fiber.Ctx) error {
	res, err := c.aiService.GetSystemPrompts(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get system prompts", res))
}

func (c *aiController) UpdateSystemPrompt(ctx *fiber.Ctx) error {
	var req dto.UpdateSystemPromptRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	if err := c.aiService.UpdateSystemPrompt(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("System prompt updated", nil))
}
