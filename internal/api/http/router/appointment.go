package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medreach/hospital_backend/internal/api/http/handler"
	"github.com/medreach/hospital_backend/pkg/authorize"
)

func (r *Router) registerAppointmentRoutes(
	api fiber.Router,
	ah *handler.AppointmentHandler,
	wh *handler.WorkflowHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	appts := api.Group("/appointments", authRequired)

	appts.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionList), ah.List)
	appts.Post("/", requirePerm(authorize.ResourceAppointment, authorize.ActionCreate), ah.Create)

	a := appts.Group("/:id")
	a.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionRead), ah.GetByID)
	a.Patch("/cancel", requirePerm(authorize.ResourceAppointment, authorize.ActionCancel), ah.Cancel)

	a.Post("/test-requests", requirePerm(authorize.ResourceTestRequest, authorize.ActionCreate), wh.CreateTestRequest)
	a.Post("/vital-requests", requirePerm(authorize.ResourceVitalRequest, authorize.ActionCreate), wh.CreateVitalRequest)

	a.Post("/report", requirePerm(authorize.ResourceMedicalReport, authorize.ActionCreate), ah.CreateReport)
	a.Get("/report", requirePerm(authorize.ResourceMedicalReport, authorize.ActionRead), ah.GetReport)
}

func (r *Router) registerWorkflowRoutes(
	api fiber.Router,
	wh *handler.WorkflowHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	tests := api.Group("/test-requests", authRequired)
	tests.Get("/", requirePerm(authorize.ResourceTestRequest, authorize.ActionList), wh.ListTestRequests)
	tests.Post("/:id/results", requirePerm(authorize.ResourceLabResult, authorize.ActionCreate), wh.RecordLabResult)
	tests.Get("/:id/results", requirePerm(authorize.ResourceLabResult, authorize.ActionRead), wh.ListLabResults)

	vitals := api.Group("/vital-requests", authRequired)
	vitals.Get("/", requirePerm(authorize.ResourceVitalRequest, authorize.ActionList), wh.ListVitalRequests)
	vitals.Post("/:id/vitals", requirePerm(authorize.ResourceVitals, authorize.ActionCreate), wh.RecordVitals)
	vitals.Get("/:id/vitals", requirePerm(authorize.ResourceVitals, authorize.ActionRead), wh.LatestVitals)
}
