package controller

import (
	"ai-counseling-be/internal/dto"
	"ai-counseling-be/internal/pkg/serverutils"
	"ai-counseling-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICounselorController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
}

type counselorController struct {
	counselorService service.ICounselorService
}

func NewCounselorController(counselorService service.ICounselorService) ICounselorController {
	return &counselorController{
		counselorService: counselorService,
	}
}

func (c *counselorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/counselor/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/chat", c.Chat)
}

func (c *counselorController) Chat(ctx *fiber.Ctx) error {
	var req dto.CounselorChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.counselorService.Chat(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success counselor chat", res))
}
