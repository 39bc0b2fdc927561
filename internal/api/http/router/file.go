package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medreach/hospital_backend/internal/api/http/handler"
)

func (r *Router) registerFileRoutes(
	api fiber.Router,
	h *handler.FileHandler,
	authRequired fiber.Handler,
) {
	files := api.Group("/files", authRequired)
	files.Get("/url", h.DownloadURL)
}
