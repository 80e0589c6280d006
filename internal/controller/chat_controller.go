package controller

import (
	"hr-assistant-be/internal/dto"
	"hr-assistant-be/internal/pkg/serverutils"
	"hr-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	ProcessQuery(ctx *fiber.Ctx) error
	GetStatus(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("query", c.ProcessQuery)
	h.Get("status", c.GetStatus)
	h.Get("history", c.GetHistory)
}

func (c *chatController) ProcessQuery(ctx *fiber.Ctx) error {
	userId, organizationId, err := callerIds(ctx)
	if err != nil {
		return err
	}

	var req dto.ProcessQueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.ProcessQuery(ctx.Context(), userId, organizationId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success process query", res))
}

func (c *chatController) GetStatus(ctx *fiber.Ctx) error {
	res := c.chatService.GetStatus(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success get status", res))
}

func (c *chatController) GetHistory(ctx *fiber.Ctx) error {
	userId, organizationId, err := callerIds(ctx)
	if err != nil {
		return err
	}

	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.chatService.GetHistory(ctx.Context(), userId, organizationId, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get history", res))
}

func callerIds(ctx *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	userIdStr, _ := ctx.Locals("user_id").(string)
	orgIdStr, _ := ctx.Locals("organization_id").(string)

	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user id")
	}
	organizationId, err := uuid.Parse(orgIdStr)
	if err != nil {
		return uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid organization id")
	}
	return userId, organizationId, nil
}
