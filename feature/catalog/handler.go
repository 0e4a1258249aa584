package catalog

import (
	"errors"

	"altered-knowledge/core/catalog"
	"altered-knowledge/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for card lookups.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the card routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/cards")
	group.Get("/", h.HandleSearch)
	group.Get("/stats", h.HandleCounts)
	group.Get("/:id", h.HandleCard)
}

// HandleCard returns one card.
// @Summary Get Card
// @Description Looks up a card by its reference id, e.g. ALT_CORE_B_AX_04_C.
// @Tags cards
// @Produce json
// @Param id path string true "Card reference"
// @Success 200 {object} catalog.Card "Card"
// @Failure 404 {object} map[string]string "Unknown Card"
// @Router /cards/{id} [get]
func (h *Handler) HandleCard(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	card, err := h.service.Card(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownCard) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Card lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(card)
}

// HandleSearch finds cards by name.
// @Summary Search Cards
// @Description Matches names after folding accents and punctuation; falls back to partial matches.
// @Tags cards
// @Produce json
// @Param name query string true "Card name"
// @Success 200 {array} catalog.Card "Cards"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /cards [get]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	cards, err := h.service.Search(c.Context(), name)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Card search failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(cards)
}

// HandleCounts returns catalog totals.
// @Summary Catalog Statistics
// @Tags cards
// @Produce json
// @Success 200 {object} catalog.Counts "Counts"
// @Router /cards/stats [get]
func (h *Handler) HandleCounts(c *fiber.Ctx) error {
	counts, err := h.service.Counts(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Catalog counts failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(counts)
}
