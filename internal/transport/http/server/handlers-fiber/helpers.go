package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/ZachR72/Lineup-Maker/internal/api"
	"github.com/ZachR72/Lineup-Maker/internal/catalog"
	"github.com/ZachR72/Lineup-Maker/internal/entities"
	"github.com/ZachR72/Lineup-Maker/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.NOTFOUND
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.INVALIDARGUMENT
		msg = err.Error()
	case errors.Is(err, entities.ErrTeamNotFound), errors.Is(err, entities.ErrSportNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "resource not found"
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorResponseErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: struct {
		Code    api.ErrorResponseErrorCode `json:"code"`
		Message string                     `json:"message"`
	}{Code: code, Message: msg}}
}

// editorView builds the editor payload for a team, falling back to the sport's
// first formation when the stored index is out of range.
func (h *Handler) editorView(team entities.Team) (api.EditorView, error) {
	sport, ok := catalog.SportByID(team.SportID)
	if !ok {
		return api.EditorView{}, entities.ErrSportNotFound
	}
	formation := catalog.FormationAt(sport, team.FormationIndex)
	return mapper.ToEditorView(team, formation, h.uc.Saved(team.ID)), nil
}
