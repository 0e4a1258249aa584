package deck

import (
	"encoding/json"
	"errors"

	"altered-knowledge/core/logger"
	"altered-knowledge/core/rules"
	"altered-knowledge/feature/deck/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for decks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the deck routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/decks")
	group.Post("/validate", h.HandleValidate)
	group.Post("/stats", h.HandleStats)
	group.Post("/compare", h.HandleCompare)
	group.Get("/:owner/:name/validate", h.HandleValidateStored)
	group.Get("/:owner/:name/compare/:otherOwner/:otherName", h.HandleCompareStored)
}

// compareRequest is the body of POST /decks/compare.
type compareRequest struct {
	Mine  json.RawMessage `json:"mine"`
	Other json.RawMessage `json:"other"`
}

func status(err error) int {
	switch {
	case errors.Is(err, rules.ErrRuleConfigMissing):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, ErrDeckNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrInvalidDeckRef):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	code := status(err)
	l := logger.WithRayID(h.service.logger, c)
	if code >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Warn(msg, zap.Error(err))
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

// HandleValidate validates a posted decklist.
// @Summary Validate Deck
// @Description Checks a decklist against the construction rules and reports per-row ownership. With mode=owned, cards missing from the collection also invalidate the deck.
// @Tags decks
// @Accept json
// @Produce json
// @Param mode query string false "rules (default) or owned"
// @Param deck body models.Deck true "Decklist"
// @Success 200 {object} models.Report "Validation Report"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 503 {object} map[string]string "Rules Unavailable"
// @Router /decks/validate [post]
func (h *Handler) HandleValidate(c *fiber.Ctx) error {
	deck, err := models.ParseDeck(c.Body())
	if err != nil {
		return badRequest(c, err)
	}

	report, err := h.service.Validate(c.Context(), deck, models.ParseMode(c.Query("mode")))
	if err != nil {
		return h.fail(c, "Deck validation failed", err)
	}
	return c.JSON(report)
}

// HandleValidateStored validates a deck stored in the knowledge base.
// @Summary Validate Stored Deck
// @Description Loads DECKS/{owner}/{name}.json and validates it.
// @Tags decks
// @Produce json
// @Param owner path string true "Deck owner"
// @Param name path string true "Deck name"
// @Param mode query string false "rules (default) or owned"
// @Success 200 {object} models.Report "Validation Report"
// @Failure 404 {object} map[string]string "Deck Not Found"
// @Failure 503 {object} map[string]string "Rules Unavailable"
// @Router /decks/{owner}/{name}/validate [get]
func (h *Handler) HandleValidateStored(c *fiber.Ctx) error {
	report, err := h.service.ValidateStored(c.Context(), c.Params("owner"), c.Params("name"), models.ParseMode(c.Query("mode")))
	if err != nil {
		return h.fail(c, "Stored deck validation failed", err)
	}
	return c.JSON(report)
}

// HandleStats summarizes a posted decklist.
// @Summary Deck Statistics
// @Description Cost curve, rarity, faction and type mix of a decklist.
// @Tags decks
// @Accept json
// @Produce json
// @Param deck body models.Deck true "Decklist"
// @Success 200 {object} stats.Summary "Deck Statistics"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /decks/stats [post]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	deck, err := models.ParseDeck(c.Body())
	if err != nil {
		return badRequest(c, err)
	}

	summary, err := h.service.Stats(c.Context(), deck)
	if err != nil {
		return h.fail(c, "Deck statistics failed", err)
	}
	return c.JSON(summary)
}

// HandleCompare diffs two posted decklists.
// @Summary Compare Decks
// @Description Diffs {mine, other} and suggests cards from other that the player owns.
// @Tags decks
// @Accept json
// @Produce json
// @Success 200 {object} models.Comparison "Comparison"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /decks/compare [post]
func (h *Handler) HandleCompare(c *fiber.Ctx) error {
	var req compareRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return badRequest(c, err)
	}
	if len(req.Mine) == 0 || len(req.Other) == 0 {
		return badRequest(c, errors.New("both mine and other decks are required"))
	}

	mine, err := models.ParseDeck(req.Mine)
	if err != nil {
		return badRequest(c, err)
	}
	other, err := models.ParseDeck(req.Other)
	if err != nil {
		return badRequest(c, err)
	}

	cmp, err := h.service.Compare(c.Context(), mine, other)
	if err != nil {
		return h.fail(c, "Deck comparison failed", err)
	}
	return c.JSON(cmp)
}

// HandleCompareStored compares two decks stored in the knowledge base.
// @Summary Compare Stored Decks
// @Tags decks
// @Produce json
// @Param owner path string true "Deck owner"
// @Param name path string true "Deck name"
// @Param otherOwner path string true "Reference deck owner"
// @Param otherName path string true "Reference deck name"
// @Success 200 {object} models.Comparison "Comparison"
// @Failure 404 {object} map[string]string "Deck Not Found"
// @Router /decks/{owner}/{name}/compare/{otherOwner}/{otherName} [get]
func (h *Handler) HandleCompareStored(c *fiber.Ctx) error {
	cmp, err := h.service.CompareStored(c.Context(),
		c.Params("owner"), c.Params("name"),
		c.Params("otherOwner"), c.Params("otherName"))
	if err != nil {
		return h.fail(c, "Stored deck comparison failed", err)
	}
	return c.JSON(cmp)
}
