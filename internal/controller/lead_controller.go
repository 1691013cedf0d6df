package controller

import (
	"realestate-funnel-be/internal/dto"
	"realestate-funnel-be/internal/pkg/serverutils"
	"realestate-funnel-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILeadController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Timeline(ctx *fiber.Ctx) error
}

type leadController struct {
	service         service.ILeadService
	trackingService service.ITrackingService
	limiter         fiber.Handler
	auth            fiber.Handler
}

func NewLeadController(
	service service.ILeadService,
	trackingService service.ITrackingService,
	limiter fiber.Handler,
	auth fiber.Handler,
) ILeadController {
	return &leadController{
		service:         service,
		trackingService: trackingService,
		limiter:         limiter,
		auth:            auth,
	}
}

func (c *leadController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/leads")
	h.Post("", c.limiter, c.Create)
	h.Get("/:id/timeline", c.auth, c.Timeline)
}

func (c *leadController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateLeadRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Lead created", res))
}

func (c *leadController) Timeline(ctx *fiber.Ctx) error {
	var page dto.PageQuery
	if err := ctx.QueryParser(&page); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid pagination")
	}

	leadId := ctx.Params("id")
	if leadId == "" || len(leadId) > 64 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid lead id")
	}

	res, err := c.trackingService.LeadTimeline(ctx.UserContext(), leadId, page)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get lead timeline", res))
}
