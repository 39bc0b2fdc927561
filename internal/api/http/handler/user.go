package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/medreach/hospital_backend/internal/service/file"
	"github.com/medreach/hospital_backend/internal/service/user"
	"github.com/medreach/hospital_backend/pkg/token"
)

type UserHandler struct {
	svc   user.Service
	files file.Service
}

func NewUserHandler(svc user.Service, files file.Service) *UserHandler {
	return &UserHandler{svc: svc, files: files}
}

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound), errors.Is(err, user.ErrProfileNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrProfileExists), errors.Is(err, user.ErrEmailExists):
		return conflict(c, err.Error())
	case errors.Is(err, user.ErrInvalidFullName),
		errors.Is(err, user.ErrInvalidPhone),
		errors.Is(err, user.ErrInvalidRole):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /api/v1/users/me
func (h *UserHandler) GetMe(c fiber.Ctx) error {
	claims, valid := token.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	u, err := h.svc.GetByID(c.Context(), claims.UserID)
	if err != nil {
		return mapUserError(c, err)
	}
	p, err := h.svc.GetProfileByUserID(c.Context(), claims.UserID)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, fiber.Map{"user": u, "profile": p})
}

// PATCH /api/v1/users/me
func (h *UserHandler) UpdateMe(c fiber.Ctx) error {
	claims, valid := token.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		FullName *string `json:"full_name"`
		Phone    *string `json:"phone"`
		Region   string  `json:"region"`
		Gender   *string `json:"gender"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.GetProfileByUserID(c.Context(), claims.UserID)
	if err != nil {
		return mapUserError(c, err)
	}

	updated, err := h.svc.UpdateProfile(c.Context(), p.ID, user.UpdateProfileRequest{
		FullName: body.FullName,
		Phone:    body.Phone,
		Region:   body.Region,
		Gender:   body.Gender,
	})
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, updated)
}

// POST /api/v1/users/me/picture
func (h *UserHandler) UploadPicture(c fiber.Ctx) error {
	claims, valid := token.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	fh, err := c.FormFile("picture")
	if err != nil {
		return badRequest(c, "picture file is required")
	}

	result, err := h.files.UploadProfilePicture(c.Context(), fh)
	if err != nil {
		return mapFileError(c, err)
	}

	p, err := h.svc.GetProfileByUserID(c.Context(), claims.UserID)
	if err != nil {
		return mapUserError(c, err)
	}
	if _, err := h.svc.UpdateProfile(c.Context(), p.ID, user.UpdateProfileRequest{
		PictureKey: &result.Key,
	}); err != nil {
		return mapUserError(c, err)
	}

	return created(c, result)
}

// GET /api/v1/users/patients
func (h *UserHandler) ListPatients(c fiber.Ctx) error {
	var q struct {
		Search  string `query:"search"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := user.ListPatientsRequest{Page: q.Page, PerPage: q.PerPage}
	if q.Search != "" {
		req.Search = &q.Search
	}

	patients, err := h.svc.ListPatients(c.Context(), req)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, patients)
}
