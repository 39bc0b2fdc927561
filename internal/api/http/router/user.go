package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medreach/hospital_backend/internal/api/http/handler"
	"github.com/medreach/hospital_backend/pkg/authorize"
)

func (r *Router) registerUserRoutes(
	api fiber.Router,
	h *handler.UserHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	users := api.Group("/users", authRequired)
	users.Get("/me", h.GetMe)
	users.Patch("/me", h.UpdateMe)
	users.Post("/me/picture", h.UploadPicture)

	users.Get("/patients", requirePerm(authorize.ResourceProfile, authorize.ActionList), h.ListPatients)
}
