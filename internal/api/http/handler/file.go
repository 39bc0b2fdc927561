package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/medreach/hospital_backend/internal/service/file"
)

type FileHandler struct {
	svc file.Service
}

func NewFileHandler(svc file.Service) *FileHandler {
	return &FileHandler{svc: svc}
}

func mapFileError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, file.ErrUnsupportedImage):
		return badRequest(c, err.Error())
	case errors.Is(err, file.ErrFileTooLarge):
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": err.Error()})
	default:
		return internalError(c)
	}
}

// GET /files/url?key=
// Returns a presigned download URL for a stored object.
func (h *FileHandler) DownloadURL(c fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		return badRequest(c, "key is required")
	}

	url, err := h.svc.GetDownloadURL(c.Context(), key)
	if err != nil {
		return mapFileError(c, err)
	}

	return ok(c, fiber.Map{"url": url})
}
