package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medreach/hospital_backend/internal/api/http/handler"
	"github.com/medreach/hospital_backend/pkg/authorize"
)

func (r *Router) registerBlogRoutes(
	api fiber.Router,
	h *handler.BlogHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	blog := api.Group("/blog")

	// Admin routes first: "/admin" and "/stats" must not be captured by
	// the ":slug" wildcard.
	blog.Get("/admin", authRequired, requirePerm(authorize.ResourceBlogPost, authorize.ActionManage), h.ListAll)
	blog.Get("/stats", authRequired, requirePerm(authorize.ResourceBlogPost, authorize.ActionManage), h.Stats)
	blog.Post("/", authRequired, requirePerm(authorize.ResourceBlogPost, authorize.ActionCreate), h.Create)
	blog.Post("/images", authRequired, requirePerm(authorize.ResourceBlogPost, authorize.ActionCreate), h.UploadImage)
	blog.Put("/:slug", authRequired, requirePerm(authorize.ResourceBlogPost, authorize.ActionUpdate), h.Update)
	blog.Delete("/:slug", authRequired, requirePerm(authorize.ResourceBlogPost, authorize.ActionDelete), h.Delete)

	// Public routes
	blog.Get("/", h.List)
	blog.Get("/latest", h.Latest)
	blog.Get("/search", h.Search)
	blog.Get("/author/:id", h.ByAuthor)
	blog.Get("/:slug", h.BySlug)
}
