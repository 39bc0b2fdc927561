package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medreach/hospital_backend/internal/api/http/handler"
	"github.com/medreach/hospital_backend/pkg/authorize"
)

func (r *Router) registerStaffRoutes(
	api fiber.Router,
	h *handler.StaffHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	staff := api.Group("/staff", authRequired)
	staff.Get("/", requirePerm(authorize.ResourceStaff, authorize.ActionList), h.List)
	staff.Get("/available", requirePerm(authorize.ResourceStaff, authorize.ActionList), h.Available)
	staff.Patch("/:id/active", requirePerm(authorize.ResourceStaff, authorize.ActionUpdate), h.SetActive)
}
