package handlers_fiber

import (
	"net/http"
	"strings"

	"github.com/ZachR72/Lineup-Maker/internal/api"
	"github.com/ZachR72/Lineup-Maker/internal/entities"
	"github.com/ZachR72/Lineup-Maker/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetTeams returns the dashboard list, most recently modified first.
func (h *Handler) GetTeams(c *fiber.Ctx) error {
	teams, err := h.uc.ListTeams(c.Context())
	if err != nil {
		return writeError(c, err)
	}

	summaries := make([]api.TeamSummary, 0, len(teams))
	for _, t := range teams {
		summaries = append(summaries, mapper.ToAPITeamSummary(t))
	}
	return c.Status(http.StatusOK).JSON(struct {
		Teams []api.TeamSummary `json:"teams"`
	}{Teams: summaries})
}

// PostTeam creates a team with a generated starting lineup.
func (h *Handler) PostTeam(c *fiber.Ctx) error {
	var body api.CreateTeamRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	team, err := h.uc.CreateTeam(c.Context(), strings.TrimSpace(body.Name), entities.SportID(body.SportId))
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}

	view, err := h.editorView(*team)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(view)
}

// GetTeam returns the editor view for a team; a stale id yields 404 so the
// caller can redirect to the dashboard.
func (h *Handler) GetTeam(c *fiber.Ctx) error {
	team, err := h.uc.Team(c.Context(), c.Params("teamId"))
	if err != nil {
		return writeError(c, err)
	}

	view, err := h.editorView(*team)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

// PatchTeam renames a team.
func (h *Handler) PatchTeam(c *fiber.Ctx) error {
	var body api.RenameTeamRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
	}

	team, err := h.uc.RenameTeam(c.Context(), c.Params("teamId"), body.Name)
	if err != nil {
		return writeError(c, err)
	}

	view, err := h.editorView(*team)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

// DeleteTeam removes a team from the stored collection.
func (h *Handler) DeleteTeam(c *fiber.Ctx) error {
	if err := h.uc.DeleteTeam(c.Context(), c.Params("teamId")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
