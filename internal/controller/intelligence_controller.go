package controller

import (
	"realestate-funnel-be/internal/dto"
	"realestate-funnel-be/internal/pkg/serverutils"
	"realestate-funnel-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IIntelligenceController interface {
	RegisterRoutes(r fiber.Router)
	Track(ctx *fiber.Ctx) error
}

type intelligenceController struct {
	service service.IIntelligenceService
	limiter fiber.Handler
}

func NewIntelligenceController(service service.IIntelligenceService, limiter fiber.Handler) IIntelligenceController {
	return &intelligenceController{service: service, limiter: limiter}
}

func (c *intelligenceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/intelligence")
	h.Post("/behavior/track", c.limiter, c.Track)
}

func (c *intelligenceController) Track(ctx *fiber.Ctx) error {
	var req dto.TrackIntelligenceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Track(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Behavior tracked", res))
}
