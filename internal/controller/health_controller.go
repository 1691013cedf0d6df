package controller

import (
	"context"
	"time"

	"realestate-funnel-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck reports whether one dependency is reachable.
type HealthCheck func(ctx context.Context) error

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	critical map[string]HealthCheck
	optional map[string]HealthCheck
}

// NewHealthController reports 503 when a critical check fails. Optional
// checks are reported but never change the status.
func NewHealthController(critical, optional map[string]HealthCheck) IHealthController {
	return &healthController{critical: critical, optional: optional}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/healthz", c.Health)
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	checkCtx, cancel := context.WithTimeout(ctx.UserContext(), 2*time.Second)
	defer cancel()

	status := map[string]string{}
	healthy := true
	for name, check := range c.critical {
		if err := check(checkCtx); err != nil {
			status[name] = "down"
			healthy = false
			continue
		}
		status[name] = "up"
	}
	for name, check := range c.optional {
		if err := check(checkCtx); err != nil {
			status[name] = "down"
			continue
		}
		status[name] = "up"
	}

	if !healthy {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(serverutils.Response[map[string]string]{
			Success: false,
			Message: "Unhealthy",
			Data:    status,
		})
	}
	return ctx.JSON(serverutils.SuccessResponse("OK", status))
}
