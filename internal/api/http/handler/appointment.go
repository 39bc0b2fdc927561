package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	entprofile "github.com/medreach/hospital_backend/internal/repo/profile"
	"github.com/medreach/hospital_backend/internal/service/workflow"
	"github.com/medreach/hospital_backend/pkg/token"
)

type AppointmentHandler struct {
	svc workflow.Service
}

func NewAppointmentHandler(svc workflow.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func mapWorkflowError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, workflow.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, workflow.ErrValidation):
		return badRequest(c, err.Error())
	case errors.Is(err, workflow.ErrInvalidTransition),
		errors.Is(err, workflow.ErrAppointmentClosed),
		errors.Is(err, workflow.ErrRequestClosed),
		errors.Is(err, workflow.ErrReportAlreadyExists):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /appointments
func (h *AppointmentHandler) Create(c fiber.Ctx) error {
	claims, valid := token.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Name    string  `json:"name"`
		Age     int     `json:"age"`
		Sex     string  `json:"sex"`
		Address string  `json:"address"`
		Message *string `json:"message"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	appt, err := h.svc.CreateAppointment(c.Context(), claims.ProfileID, workflow.IntakeRequest{
		Name:    body.Name,
		Age:     body.Age,
		Sex:     body.Sex,
		Address: body.Address,
		Message: body.Message,
	})
	if err != nil {
		return mapWorkflowError(c, err)
	}

	return created(c, appt)
}

// GET /appointments
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	claims, valid := token.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		PatientID string `query:"patient_id"`
		DoctorID  string `query:"doctor_id"`
		Status    string `query:"status"`
		Page      int    `query:"page"`
		PerPage   int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := workflow.ListRequest{Page: q.Page, PerPage: q.PerPage}
	if q.PatientID != "" {
		id, err := uuid.Parse(q.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &id
	}
	if q.DoctorID != "" {
		id, err := uuid.Parse(q.DoctorID)
		if err != nil {
			return badRequest(c, "invalid doctor_id")
		}
		req.DoctorID = &id
	}
	if q.Status != "" {
		req.Status = &q.Status
	}

	// Patients only ever see their own appointments; doctors default to
	// their own queue unless they filter explicitly.
	switch claims.Role {
	case string(entprofile.RolePATIENT):
		req.PatientID = &claims.ProfileID
		req.DoctorID = nil
	case string(entprofile.RoleDOCTOR):
		if req.PatientID == nil && req.DoctorID == nil {
			req.DoctorID = &claims.ProfileID
		}
	}

	appts, err := h.svc.ListAppointments(c.Context(), req)
	if err != nil {
		return mapWorkflowError(c, err)
	}

	return ok(c, appts)
}

// GET /appointments/:id
func (h *AppointmentHandler) GetByID(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.GetAppointment(c.Context(), apptID)
	if err != nil {
		return mapWorkflowError(c, err)
	}

	if !h.canSeeAppointment(c, appt.PatientID) {
		return forbidden(c)
	}

	return ok(c, appt)
}

// PATCH /appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.GetAppointment(c.Context(), apptID)
	if err != nil {
		return mapWorkflowError(c, err)
	}
	if !h.canSeeAppointment(c, appt.PatientID) {
		return forbidden(c)
	}

	var body struct {
		Reason *string `json:"reason"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.CancelAppointment(c.Context(), apptID, workflow.CancelRequest{
		Reason: body.Reason,
	}); err != nil {
		return mapWorkflowError(c, err)
	}

	return noContent(c)
}

// POST /appointments/:id/report
func (h *AppointmentHandler) CreateReport(c fiber.Ctx) error {
	claims, valid := token.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		MedicalCondition string  `json:"medical_condition"`
		DrugPrescription *string `json:"drug_prescription"`
		Advice           *string `json:"advice"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	report, err := h.svc.CreateMedicalReport(c.Context(), apptID, claims.ProfileID, workflow.ReportInput{
		MedicalCondition: body.MedicalCondition,
		DrugPrescription: body.DrugPrescription,
		Advice:           body.Advice,
	})
	if err != nil {
		return mapWorkflowError(c, err)
	}

	return created(c, report)
}

// GET /appointments/:id/report
func (h *AppointmentHandler) GetReport(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.GetAppointment(c.Context(), apptID)
	if err != nil {
		return mapWorkflowError(c, err)
	}
	if !h.canSeeAppointment(c, appt.PatientID) {
		return forbidden(c)
	}

	report, err := h.svc.GetReport(c.Context(), apptID)
	if err != nil {
		return mapWorkflowError(c, err)
	}

	return ok(c, report)
}

// canSeeAppointment limits patients to their own records. Staff roles passed
// the RBAC check already.
func (h *AppointmentHandler) canSeeAppointment(c fiber.Ctx, patientID uuid.UUID) bool {
	claims, valid := token.ClaimsFromFiber(c)
	if !valid {
		return false
	}
	if claims.Role == string(entprofile.RolePATIENT) {
		return claims.ProfileID == patientID
	}
	return true
}
