package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/trip-booking-service/internal/api/dto"
	"github.com/spec-kit/trip-booking-service/internal/service"
)

// DashboardHandler exposes admin dashboard counters.
type DashboardHandler struct {
	service *service.StatsService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(statsService *service.StatsService) *DashboardHandler {
	return &DashboardHandler{service: statsService}
}

// GetStats GET /api/dashboard/stats (admin).
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.Dashboard(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewDashboardStatsResponse(stats)})
}
