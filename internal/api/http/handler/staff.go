package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	entprofile "github.com/medreach/hospital_backend/internal/repo/profile"
	"github.com/medreach/hospital_backend/internal/service/staff"
)

type StaffHandler struct {
	svc staff.Service
}

func NewStaffHandler(svc staff.Service) *StaffHandler {
	return &StaffHandler{svc: svc}
}

func mapStaffError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, staff.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, staff.ErrInvalidRole):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /staff
func (h *StaffHandler) List(c fiber.Ctx) error {
	role := c.Query("role")
	if role == "" {
		all, err := h.svc.ListStaff(c.Context())
		if err != nil {
			return mapStaffError(c, err)
		}
		return ok(c, all)
	}

	members, err := h.svc.ListActive(c.Context(), entprofile.Role(role))
	if err != nil {
		return mapStaffError(c, err)
	}
	return ok(c, members)
}

// GET /staff/available?role=
func (h *StaffHandler) Available(c fiber.Ctx) error {
	role := c.Query("role")
	if role == "" {
		return badRequest(c, "role is required")
	}

	members, err := h.svc.ListActive(c.Context(), entprofile.Role(role))
	if err != nil {
		return mapStaffError(c, err)
	}
	return ok(c, members)
}

// PATCH /staff/:id/active  (ADMIN)
func (h *StaffHandler) SetActive(c fiber.Ctx) error {
	profileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid profile id")
	}

	var body struct {
		Active *bool `json:"active"`
	}
	if err := c.Bind().JSON(&body); err != nil || body.Active == nil {
		return badRequest(c, "active is required")
	}

	if err := h.svc.SetActive(c.Context(), profileID, *body.Active); err != nil {
		return mapStaffError(c, err)
	}
	return noContent(c)
}
