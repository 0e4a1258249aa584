package collection

import (
	"altered-knowledge/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the collection.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the collection routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/collection")
	group.Get("/", h.HandleTable)
	group.Get("/stats", h.HandleStats)
}

// HandleTable returns the ownership table.
// @Summary Ownership Table
// @Description Aggregated ownership of the configured player: regular cards with counts and foils, owned uniques under their own category, and the records that were skipped.
// @Tags collection
// @Produce json
// @Success 200 {object} collection.Table "Ownership Table"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /collection [get]
func (h *Handler) HandleTable(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	table, err := h.service.Table(c.Context())
	if err != nil {
		l.Error("Failed to build ownership table", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if len(table.Annotations) > 0 {
		l.Warn("Ownership rebuilt with skipped records", zap.Int("annotations", len(table.Annotations)))
	}
	return c.JSON(table)
}

// HandleStats returns collection statistics.
// @Summary Collection Statistics
// @Description Cost, rarity, faction and type totals over the owned cards.
// @Tags collection
// @Produce json
// @Success 200 {object} stats.Summary "Collection Statistics"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /collection/stats [get]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	summary, err := h.service.Stats(c.Context())
	if err != nil {
		l.Error("Failed to summarize collection", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(summary)
}
