package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	entprofile "github.com/medreach/hospital_backend/internal/repo/profile"
	"github.com/medreach/hospital_backend/internal/service/workflow"
	"github.com/medreach/hospital_backend/pkg/token"
)

// WorkflowHandler serves the clinical task endpoints: test and vital
// requests, recorded vitals and lab results.
type WorkflowHandler struct {
	svc workflow.Service
}

func NewWorkflowHandler(svc workflow.Service) *WorkflowHandler {
	return &WorkflowHandler{svc: svc}
}

// POST /appointments/:id/test-requests
func (h *WorkflowHandler) CreateTestRequest(c fiber.Ctx) error {
	claims, valid := token.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Tests []string `json:"tests"`
		Note  *string  `json:"note"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	tr, err := h.svc.CreateTestRequest(c.Context(), apptID, claims.ProfileID, body.Tests, body.Note)
	if err != nil {
		return mapWorkflowError(c, err)
	}

	return created(c, tr)
}

// POST /appointments/:id/vital-requests
func (h *WorkflowHandler) CreateVitalRequest(c fiber.Ctx) error {
	claims, valid := token.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Note *string `json:"note"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	vr, err := h.svc.CreateVitalRequest(c.Context(), apptID, claims.ProfileID, body.Note)
	if err != nil {
		return mapWorkflowError(c, err)
	}

	return created(c, vr)
}

// GET /test-requests
func (h *WorkflowHandler) ListTestRequests(c fiber.Ctx) error {
	f, err := h.requestFilter(c, entprofile.RoleLAB)
	if err != nil {
		if errors.Is(err, fiber.ErrUnauthorized) {
			return unauthorized(c)
		}
		return badRequest(c, err.Error())
	}

	trs, svcErr := h.svc.ListTestRequests(c.Context(), *f)
	if svcErr != nil {
		return mapWorkflowError(c, svcErr)
	}
	return ok(c, trs)
}

// GET /vital-requests
func (h *WorkflowHandler) ListVitalRequests(c fiber.Ctx) error {
	f, err := h.requestFilter(c, entprofile.RoleNURSE)
	if err != nil {
		if errors.Is(err, fiber.ErrUnauthorized) {
			return unauthorized(c)
		}
		return badRequest(c, err.Error())
	}

	vrs, svcErr := h.svc.ListVitalRequests(c.Context(), *f)
	if svcErr != nil {
		return mapWorkflowError(c, svcErr)
	}
	return ok(c, vrs)
}

// POST /vital-requests/:id/vitals
func (h *WorkflowHandler) RecordVitals(c fiber.Ctx) error {
	claims, valid := token.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	vrID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid vital request id")
	}

	var body struct {
		BloodPressure   string   `json:"blood_pressure"`
		RespirationRate float64  `json:"respiration_rate"`
		PulseRate       float64  `json:"pulse_rate"`
		BodyTemperature float64  `json:"body_temperature"`
		HeightCm        *float64 `json:"height_cm"`
		WeightKg        *float64 `json:"weight_kg"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	v, err := h.svc.RecordVitals(c.Context(), vrID, claims.ProfileID, workflow.VitalsInput{
		BloodPressure:   body.BloodPressure,
		RespirationRate: body.RespirationRate,
		PulseRate:       body.PulseRate,
		BodyTemperature: body.BodyTemperature,
		HeightCm:        body.HeightCm,
		WeightKg:        body.WeightKg,
	})
	if err != nil {
		return mapWorkflowError(c, err)
	}

	return created(c, v)
}

// GET /vital-requests/:id/vitals
func (h *WorkflowHandler) LatestVitals(c fiber.Ctx) error {
	vrID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid vital request id")
	}

	v, err := h.svc.LatestVitals(c.Context(), vrID)
	if err != nil {
		return mapWorkflowError(c, err)
	}
	return ok(c, v)
}

// POST /test-requests/:id/results
func (h *WorkflowHandler) RecordLabResult(c fiber.Ctx) error {
	claims, valid := token.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	trID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid test request id")
	}

	var body struct {
		TestName       string  `json:"test_name"`
		Result         string  `json:"result"`
		Units          *string `json:"units"`
		ReferenceRange *string `json:"reference_range"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	lr, err := h.svc.RecordLabResult(c.Context(), trID, claims.ProfileID, workflow.LabResultInput{
		TestName:       body.TestName,
		Result:         body.Result,
		Units:          body.Units,
		ReferenceRange: body.ReferenceRange,
	})
	if err != nil {
		return mapWorkflowError(c, err)
	}

	return created(c, lr)
}

// GET /test-requests/:id/results
func (h *WorkflowHandler) ListLabResults(c fiber.Ctx) error {
	trID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid test request id")
	}

	results, err := h.svc.ListLabResults(c.Context(), trID)
	if err != nil {
		return mapWorkflowError(c, err)
	}
	return ok(c, results)
}

// requestFilter builds the shared list filter. Staff members of selfRole see
// their own queue by default.
func (h *WorkflowHandler) requestFilter(c fiber.Ctx, selfRole entprofile.Role) (*workflow.RequestFilter, error) {
	claims, valid := token.ClaimsFromFiber(c)
	if !valid {
		return nil, fiber.ErrUnauthorized
	}

	var q struct {
		AppointmentID string `query:"appointment_id"`
		AssignedTo    string `query:"assigned_to"`
		Status        string `query:"status"`
	}
	_ = c.Bind().Query(&q)

	f := workflow.RequestFilter{}
	if q.AppointmentID != "" {
		id, err := uuid.Parse(q.AppointmentID)
		if err != nil {
			return nil, errInvalidFilter("appointment_id")
		}
		f.AppointmentID = &id
	}
	if q.AssignedTo != "" {
		id, err := uuid.Parse(q.AssignedTo)
		if err != nil {
			return nil, errInvalidFilter("assigned_to")
		}
		f.AssignedTo = &id
	}
	if q.Status != "" {
		f.Status = &q.Status
	}

	if claims.Role == string(selfRole) && f.AssignedTo == nil && f.AppointmentID == nil {
		f.AssignedTo = &claims.ProfileID
	}

	return &f, nil
}

type errInvalidFilter string

func (e errInvalidFilter) Error() string { return "invalid " + string(e) }
