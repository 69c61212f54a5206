package handlers_fiber

import (
	"net/http"

	"github.com/ZachR72/Lineup-Maker/internal/api"
	"github.com/ZachR72/Lineup-Maker/internal/catalog"
	"github.com/ZachR72/Lineup-Maker/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetSports returns the static sport catalog.
func (h *Handler) GetSports(c *fiber.Ctx) error {
	sports := catalog.Sports()
	out := make([]api.Sport, 0, len(sports))
	for _, s := range sports {
		out = append(out, mapper.ToAPISport(s))
	}
	return c.Status(http.StatusOK).JSON(struct {
		Sports []api.Sport `json:"sports"`
	}{Sports: out})
}
