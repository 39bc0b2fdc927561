package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/medreach/hospital_backend/config"
	"github.com/medreach/hospital_backend/internal/api/http/handler"
	"github.com/medreach/hospital_backend/internal/api/http/middleware"
	"github.com/medreach/hospital_backend/internal/service/auth"
	"github.com/medreach/hospital_backend/internal/service/blog"
	"github.com/medreach/hospital_backend/internal/service/file"
	"github.com/medreach/hospital_backend/internal/service/staff"
	"github.com/medreach/hospital_backend/internal/service/user"
	"github.com/medreach/hospital_backend/internal/service/workflow"
	"github.com/medreach/hospital_backend/pkg/authorize"
	"github.com/medreach/hospital_backend/pkg/token"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg         *config.Config
	Redis       *redis.Client
	Auth        authorize.IAuthorization
	UserSvc     user.Service
	AuthSvc     auth.Service
	StaffSvc    staff.Service
	WorkflowSvc workflow.Service
	BlogSvc     blog.Service
	FileSvc     file.Service
	TokenMgr    *token.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.TokenMgr, r.p.Redis)

	// Permission helper
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	userH := handler.NewUserHandler(r.p.UserSvc, r.p.FileSvc)
	staffH := handler.NewStaffHandler(r.p.StaffSvc)
	appointmentH := handler.NewAppointmentHandler(r.p.WorkflowSvc)
	workflowH := handler.NewWorkflowHandler(r.p.WorkflowSvc)
	blogH := handler.NewBlogHandler(r.p.BlogSvc, r.p.FileSvc)
	fileH := handler.NewFileHandler(r.p.FileSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerUserRoutes(api, userH, authRequired, requirePerm)
	r.registerStaffRoutes(api, staffH, authRequired, requirePerm)
	r.registerAppointmentRoutes(api, appointmentH, workflowH, authRequired, requirePerm)
	r.registerWorkflowRoutes(api, workflowH, authRequired, requirePerm)
	r.registerBlogRoutes(api, blogH, authRequired, requirePerm)
	r.registerFileRoutes(api, fileH, authRequired)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
