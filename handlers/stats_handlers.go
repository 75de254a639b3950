package handlers

import (
	"github.com/gofiber/fiber/v2"

	"hackhub/admin-api/internal/dashboard"
	"hackhub/admin-api/utils"
)

// GetDashboardStats returns the per-status counts and their total. Count
// queries that fail are reported as zero rather than failing the dashboard;
// the total always equals upcoming + ongoing.
func (h *ApplicationHandler) GetDashboardStats(c *fiber.Ctx) error {
	aggregator := dashboard.NewAggregator(h.Gateway, h.Logger)
	stats := aggregator.LoadCounts()
	return utils.RespondWithJSON(c, fiber.StatusOK, "Dashboard stats retrieved successfully", stats)
}
