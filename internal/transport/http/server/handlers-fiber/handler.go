// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/ZachR72/Lineup-Maker/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the dashboard and editor API using the usecase layer.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler set with service dependencies.
func NewHandler(log *zap.SugaredLogger, uc usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  uc,
	}
}

// Register mounts all routes on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/api/sports", h.GetSports)

	app.Get("/api/teams", h.GetTeams)
	app.Post("/api/teams", h.PostTeam)
	app.Get("/api/teams/:teamId", h.GetTeam)
	app.Patch("/api/teams/:teamId", h.PatchTeam)
	app.Delete("/api/teams/:teamId", h.DeleteTeam)

	app.Post("/api/teams/:teamId/formation", h.PostFormation)
	app.Post("/api/teams/:teamId/slots/:slotIndex/fill", h.PostFillSlot)
	app.Post("/api/teams/:teamId/players", h.PostBenchPlayer)
	app.Post("/api/teams/:teamId/players/:playerId/bench", h.PostToggleBench)
	app.Patch("/api/teams/:teamId/players/:playerId", h.PatchPlayer)
	app.Post("/api/teams/:teamId/suggestions", h.PostSuggestions)
}
