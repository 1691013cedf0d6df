package controller

import (
	"time"

	"realestate-funnel-be/internal/dto"
	"realestate-funnel-be/internal/pkg/serverutils"
	"realestate-funnel-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITrackingController interface {
	RegisterRoutes(r fiber.Router)
	Track(ctx *fiber.Ctx) error
	SessionEvents(ctx *fiber.Ctx) error
	DailyStats(ctx *fiber.Ctx) error
}

type trackingController struct {
	service      service.ITrackingService
	statsService service.IStatsService
	limiter      fiber.Handler
	auth         fiber.Handler
}

// NewTrackingController takes the ingestion rate limiter and the guard for
// reporting routes as middleware.
func NewTrackingController(
	service service.ITrackingService,
	statsService service.IStatsService,
	limiter fiber.Handler,
	auth fiber.Handler,
) ITrackingController {
	return &trackingController{
		service:      service,
		statsService: statsService,
		limiter:      limiter,
		auth:         auth,
	}
}

func (c *trackingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tracking")
	h.Post("/behavior", c.limiter, c.Track)
	h.Get("/sessions/:sessionId/events", c.auth, c.SessionEvents)
	h.Get("/stats", c.auth, c.DailyStats)
}

func (c *trackingController) Track(ctx *fiber.Ctx) error {
	var req dto.TrackBehaviorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Track(ctx.UserContext(), &req, dto.RequestMeta{
		UserAgent: ctx.Get(fiber.HeaderUserAgent),
		ClientIP:  ctx.IP(),
	})
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Behavior tracked", res))
}

func (c *trackingController) SessionEvents(ctx *fiber.Ctx) error {
	var page dto.PageQuery
	if err := ctx.QueryParser(&page); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid pagination")
	}

	window, err := parseWindow(ctx.Query("from"), ctx.Query("to"))
	if err != nil {
		return err
	}

	res, err := c.service.SessionEvents(ctx.UserContext(), ctx.Params("sessionId"), page, window)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get session events", res))
}

func (c *trackingController) DailyStats(ctx *fiber.Ctx) error {
	day := time.Now().UTC()
	if raw := ctx.Query("date"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "date must be YYYY-MM-DD")
		}
		day = parsed
	}

	res, err := c.statsService.Daily(ctx.UserContext(), day)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get funnel stats", res))
}

// parseWindow reads RFC 3339 bounds; either may be omitted.
func parseWindow(from, to string) (dto.EventWindow, error) {
	var window dto.EventWindow
	var err error
	if from != "" {
		if window.From, err = time.Parse(time.RFC3339, from); err != nil {
			return window, fiber.NewError(fiber.StatusBadRequest, "from must be an RFC 3339 time")
		}
	}
	if to != "" {
		if window.To, err = time.Parse(time.RFC3339, to); err != nil {
			return window, fiber.NewError(fiber.StatusBadRequest, "to must be an RFC 3339 time")
		}
	}
	if !window.From.IsZero() && !window.To.IsZero() && !window.From.Before(window.To) {
		return window, fiber.NewError(fiber.StatusBadRequest, "from must be before to")
	}
	return window, nil
}
