package handlers_fiber

import (
	"net/http"
	"strconv"

	"github.com/ZachR72/Lineup-Maker/internal/api"
	"github.com/ZachR72/Lineup-Maker/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// PostFormation switches the team to another formation of its sport.
func (h *Handler) PostFormation(c *fiber.Ctx) error {
	var body api.SwitchFormationRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	team, err := h.uc.SwitchFormation(c.Context(), c.Params("teamId"), body.Index)
	if err != nil {
		return writeError(c, err)
	}
	return h.respondView(c, team)
}

// PostFillSlot fills a slot from the bench, or with a generated player when the
// body carries no player id.
func (h *Handler) PostFillSlot(c *fiber.Ctx) error {
	slotIndex, err := strconv.Atoi(c.Params("slotIndex"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid slot index"))
	}

	var body api.FillSlotRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	team, err := h.uc.FillSlot(c.Context(), c.Params("teamId"), slotIndex, body.PlayerId)
	if err != nil {
		return writeError(c, err)
	}
	return h.respondView(c, team)
}

// PostBenchPlayer appends a new substitute to the roster.
func (h *Handler) PostBenchPlayer(c *fiber.Ctx) error {
	team, err := h.uc.AddBenchPlayer(c.Context(), c.Params("teamId"))
	if err != nil {
		return writeError(c, err)
	}
	return h.respondView(c, team)
}

// PostToggleBench benches a starter or promotes a bench player.
func (h *Handler) PostToggleBench(c *fiber.Ctx) error {
	team, err := h.uc.ToggleBench(c.Context(), c.Params("teamId"), c.Params("playerId"))
	if err != nil {
		return writeError(c, err)
	}
	return h.respondView(c, team)
}

// PatchPlayer merges free-text field edits into a player.
func (h *Handler) PatchPlayer(c *fiber.Ctx) error {
	var body api.UpdatePlayerRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	patch := entities.PlayerPatch{
		Name:              body.Name,
		Number:            body.Number,
		SecondaryPosition: body.SecondaryPosition,
		TertiaryPosition:  body.TertiaryPosition,
	}
	team, err := h.uc.UpdatePlayer(c.Context(), c.Params("teamId"), c.Params("playerId"), patch)
	if err != nil {
		return writeError(c, err)
	}
	return h.respondView(c, team)
}

// PostSuggestions bulk-populates the bench with AI-suggested players.
func (h *Handler) PostSuggestions(c *fiber.Ctx) error {
	var body api.SuggestRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	team, added, err := h.uc.SuggestPlayers(c.Context(), c.Params("teamId"), body.Count)
	if err != nil {
		return writeError(c, err)
	}

	view, err := h.editorView(*team)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.SuggestResponse{View: view, Added: added})
}

func (h *Handler) respondView(c *fiber.Ctx, team *entities.Team) error {
	view, err := h.editorView(*team)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(view)
}
