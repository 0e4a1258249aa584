package history

import (
	"altered-knowledge/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for validation history.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the history routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/history")
	group.Get("/:deck", h.HandleListRuns)
}

// HandleListRuns lists past validations of a deck.
// @Summary List Validation Runs
// @Description Returns the most recent validation runs recorded for a deck, newest first, optionally narrowed to one deck owner or another player.
// @Tags history
// @Produce json
// @Param deck path string true "Deck name"
// @Param owner query string false "Deck owner"
// @Param player query string false "Player the run was recorded for; defaults to the configured player"
// @Success 200 {array} history.ValidationRun "Validation runs"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /history/{deck} [get]
func (h *Handler) HandleListRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	deck := c.Params("deck")

	runs, err := h.service.Runs(c.Context(), Filter{
		Player: c.Query("player"),
		Owner:  c.Query("owner"),
		Deck:   deck,
	})
	if err != nil {
		l.Error("Failed to list validation runs", zap.String("deck", deck), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(runs)
}
