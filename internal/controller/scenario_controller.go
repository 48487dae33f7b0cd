package controller

import (
	"ai-counseling-be/internal/dto"
	"ai-counseling-be/internal/pkg/serverutils"
	"ai-counseling-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IScenarioController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Add(ctx *fiber.Ctx) error
}

type scenarioController struct {
	scenarioService service.IScenarioService
}

func NewScenarioController(scenarioService service.IScenarioService) IScenarioController {
	return &scenarioController{
		scenarioService: scenarioService,
	}
}

func (c *scenarioController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1/scenarios")
	h.Use(serverutils.AdminMiddleware)
	h.Get("", c.GetAll)
	h.Post("", c.Add)
}

func (c *scenarioController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.scenarioService.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get scenarios", res))
}

func (c *scenarioController) Add(ctx *fiber.Ctx) error {
	addedBy, _ := ctx.Locals("user_id").(string)

	var req dto.AddScenarioRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.scenarioService.Add(ctx.Context(), &req, addedBy)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success add scenario", res))
}
