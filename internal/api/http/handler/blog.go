package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/medreach/hospital_backend/internal/service/blog"
	"github.com/medreach/hospital_backend/internal/service/file"
	"github.com/medreach/hospital_backend/pkg/token"
)

type BlogHandler struct {
	svc   blog.Service
	files file.Service
}

func NewBlogHandler(svc blog.Service, files file.Service) *BlogHandler {
	return &BlogHandler{svc: svc, files: files}
}

func mapBlogError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, blog.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, blog.ErrValidation):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /blog
func (h *BlogHandler) List(c fiber.Ctx) error {
	posts, err := h.svc.ListPublished(c.Context(), h.listRequest(c))
	if err != nil {
		return mapBlogError(c, err)
	}
	return ok(c, posts)
}

// GET /blog/latest
func (h *BlogHandler) Latest(c fiber.Ctx) error {
	var q struct {
		Limit int `query:"limit"`
	}
	_ = c.Bind().Query(&q)

	posts, err := h.svc.Latest(c.Context(), q.Limit)
	if err != nil {
		return mapBlogError(c, err)
	}
	return ok(c, posts)
}

// GET /blog/search?q=
func (h *BlogHandler) Search(c fiber.Ctx) error {
	posts, err := h.svc.Search(c.Context(), c.Query("q"), h.listRequest(c))
	if err != nil {
		return mapBlogError(c, err)
	}
	return ok(c, posts)
}

// GET /blog/author/:id
func (h *BlogHandler) ByAuthor(c fiber.Ctx) error {
	authorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid author id")
	}

	posts, err := h.svc.ByAuthor(c.Context(), authorID, h.listRequest(c))
	if err != nil {
		return mapBlogError(c, err)
	}
	return ok(c, posts)
}

// GET /blog/:slug
func (h *BlogHandler) BySlug(c fiber.Ctx) error {
	post, err := h.svc.BySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return mapBlogError(c, err)
	}
	// Drafts are invisible to the public route.
	if !post.Published {
		return notFound(c, blog.ErrNotFound.Error())
	}
	return ok(c, post)
}

// GET /blog/admin  (ADMIN)
func (h *BlogHandler) ListAll(c fiber.Ctx) error {
	posts, err := h.svc.ListAll(c.Context(), h.listRequest(c))
	if err != nil {
		return mapBlogError(c, err)
	}
	return ok(c, posts)
}

// GET /blog/stats  (ADMIN)
func (h *BlogHandler) Stats(c fiber.Ctx) error {
	stats, err := h.svc.Stats(c.Context())
	if err != nil {
		return mapBlogError(c, err)
	}
	return ok(c, stats)
}

// POST /blog  (ADMIN)
func (h *BlogHandler) Create(c fiber.Ctx) error {
	claims, valid := token.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Title            string  `json:"title"`
		Description      string  `json:"description"`
		Content          string  `json:"content"`
		FeaturedImageKey *string `json:"featured_image_key"`
		Publish          bool    `json:"publish"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	post, err := h.svc.Create(c.Context(), claims.ProfileID, blog.CreatePostRequest{
		Title:            body.Title,
		Description:      body.Description,
		Content:          body.Content,
		FeaturedImageKey: body.FeaturedImageKey,
		Publish:          body.Publish,
	})
	if err != nil {
		return mapBlogError(c, err)
	}
	return created(c, post)
}

// PUT /blog/:slug  (ADMIN)
func (h *BlogHandler) Update(c fiber.Ctx) error {
	var body struct {
		Title            *string `json:"title"`
		Description      *string `json:"description"`
		Content          *string `json:"content"`
		FeaturedImageKey *string `json:"featured_image_key"`
		Publish          *bool   `json:"publish"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	post, err := h.svc.Update(c.Context(), c.Params("slug"), blog.UpdatePostRequest{
		Title:            body.Title,
		Description:      body.Description,
		Content:          body.Content,
		FeaturedImageKey: body.FeaturedImageKey,
		Publish:          body.Publish,
	})
	if err != nil {
		return mapBlogError(c, err)
	}
	return ok(c, post)
}

// DELETE /blog/:slug  (ADMIN)
func (h *BlogHandler) Delete(c fiber.Ctx) error {
	if err := h.svc.Delete(c.Context(), c.Params("slug")); err != nil {
		return mapBlogError(c, err)
	}
	return noContent(c)
}

// POST /blog/images  (ADMIN)
func (h *BlogHandler) UploadImage(c fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return badRequest(c, "image file is required")
	}

	result, err := h.files.UploadBlogImage(c.Context(), fh)
	if err != nil {
		return mapFileError(c, err)
	}
	return created(c, result)
}

func (h *BlogHandler) listRequest(c fiber.Ctx) blog.ListRequest {
	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)
	return blog.ListRequest{Page: q.Page, PerPage: q.PerPage}
}
