package workflow

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/medreach/hospital_backend/internal/repo"
	entappt "github.com/medreach/hospital_backend/internal/repo/appointment"
	entprofile "github.com/medreach/hospital_backend/internal/repo/profile"
	enttr "github.com/medreach/hospital_backend/internal/repo/testrequest"
	entvr "github.com/medreach/hospital_backend/internal/repo/vitalrequest"
	"github.com/medreach/hospital_backend/internal/service/staff"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type IntakeRequest struct {
	Name    string
	Age     int
	Sex     string // "M" | "F" | "O"
	Address string
	Message *string
}

type CancelRequest struct {
	Reason *string
}

type ListRequest struct {
	PatientID *uuid.UUID
	DoctorID  *uuid.UUID
	Status    *string
	Page      int
	PerPage   int
}

type RequestFilter struct {
	AppointmentID *uuid.UUID
	AssignedTo    *uuid.UUID
	Status        *string
}

type VitalsInput struct {
	BloodPressure   string
	RespirationRate float64
	PulseRate       float64
	BodyTemperature float64
	HeightCm        *float64
	WeightKg        *float64
}

type LabResultInput struct {
	TestName       string
	Result         string
	Units          *string
	ReferenceRange *string
}

type ReportInput struct {
	MedicalCondition string
	DrugPrescription *string
	Advice           *string
	NextAppointment  *time.Time
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	CreateAppointment(ctx context.Context, patientID uuid.UUID, req IntakeRequest) (*repo.Appointment, error)
	GetAppointment(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error)
	ListAppointments(ctx context.Context, req ListRequest) ([]*repo.Appointment, error)
	CancelAppointment(ctx context.Context, apptID uuid.UUID, req CancelRequest) error

	CreateTestRequest(ctx context.Context, apptID, doctorID uuid.UUID, tests []string, note *string) (*repo.TestRequest, error)
	CreateVitalRequest(ctx context.Context, apptID, doctorID uuid.UUID, note *string) (*repo.VitalRequest, error)
	ListTestRequests(ctx context.Context, f RequestFilter) ([]*repo.TestRequest, error)
	ListVitalRequests(ctx context.Context, f RequestFilter) ([]*repo.VitalRequest, error)

	RecordVitals(ctx context.Context, vitalRequestID, nurseID uuid.UUID, in VitalsInput) (*repo.Vitals, error)
	RecordLabResult(ctx context.Context, testRequestID, labID uuid.UUID, in LabResultInput) (*repo.LabResult, error)
	LatestVitals(ctx context.Context, vitalRequestID uuid.UUID) (*repo.Vitals, error)
	ListLabResults(ctx context.Context, testRequestID uuid.UUID) ([]*repo.LabResult, error)

	CreateMedicalReport(ctx context.Context, apptID, doctorID uuid.UUID, in ReportInput) (*repo.MedicalReport, error)
	GetReport(ctx context.Context, apptID uuid.UUID) (*repo.MedicalReport, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type workflowService struct {
	db    *repo.Client
	staff staff.Service
	nc    *nats.Conn

	mu keyedMutex
}

func New(db *repo.Client, staffSvc staff.Service, nc *nats.Conn) Service {
	return &workflowService{db: db, staff: staffSvc, nc: nc}
}

func (s *workflowService) CreateAppointment(ctx context.Context, patientID uuid.UUID, req IntakeRequest) (*repo.Appointment, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if req.Age <= 0 {
		return nil, fmt.Errorf("%w: age must be positive", ErrValidation)
	}
	switch req.Sex {
	case "M", "F", "O":
	default:
		return nil, fmt.Errorf("%w: sex must be one of M, F, O", ErrValidation)
	}
	if req.Address == "" {
		return nil, fmt.Errorf("%w: address is required", ErrValidation)
	}

	// Doctor assignment: nil is a valid outcome when nobody is on duty.
	doctor, err := s.staff.Assign(ctx, entprofile.RoleDOCTOR)
	if err != nil {
		return nil, err
	}

	c := s.db.Appointment.Create().
		SetPatientID(patientID).
		SetName(req.Name).
		SetAge(req.Age).
		SetSex(entappt.Sex(req.Sex)).
		SetAddress(req.Address).
		SetNillableMessage(req.Message).
		SetBookedAt(time.Now())

	if doctor != nil {
		c = c.SetDoctorID(doctor.ID)
	}

	appt, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	s.publish("appointment.created", appt.ID.String(), appt.ID)
	if doctor != nil {
		s.publish("task.assigned", appt.ID.String(), doctor.ID)
	}

	return appt, nil
}

func (s *workflowService) GetAppointment(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Query().
		Where(entappt.ID(apptID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return appt, nil
}

func (s *workflowService) ListAppointments(ctx context.Context, req ListRequest) ([]*repo.Appointment, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Appointment.Query()

	if req.PatientID != nil {
		q = q.Where(entappt.PatientID(*req.PatientID))
	}
	if req.DoctorID != nil {
		q = q.Where(entappt.DoctorID(*req.DoctorID))
	}
	if req.Status != nil {
		q = q.Where(entappt.StatusEQ(entappt.Status(*req.Status)))
	}

	q = q.Order(entappt.ByBookedAt(sql.OrderDesc()))

	appts, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}

func (s *workflowService) CancelAppointment(ctx context.Context, apptID uuid.UUID, req CancelRequest) error {
	unlock := s.mu.lock(apptID)
	defer unlock()

	appt, err := s.GetAppointment(ctx, apptID)
	if err != nil {
		return err
	}
	if isTerminal(appt.Status) {
		return ErrAppointmentClosed
	}

	err = s.withTx(ctx, func(tx *repo.Tx) error {
		now := time.Now()
		upd := tx.Appointment.UpdateOneID(apptID).
			SetStatus(entappt.StatusCANCELLED).
			SetCancelledAt(now)
		if req.Reason != nil {
			upd = upd.SetCancellationReason(*req.Reason)
		}
		if err := upd.Exec(ctx); err != nil {
			return fmt.Errorf("cancel appointment: %w", err)
		}

		// Cascade: open child requests stop accepting data.
		if _, err := tx.TestRequest.Update().
			Where(
				enttr.AppointmentID(apptID),
				enttr.StatusIn(enttr.StatusPENDING, enttr.StatusIN_PROGRESS),
			).
			SetStatus(enttr.StatusCANCELLED).
			Save(ctx); err != nil {
			return fmt.Errorf("cancel test requests: %w", err)
		}
		if _, err := tx.VitalRequest.Update().
			Where(
				entvr.AppointmentID(apptID),
				entvr.StatusIn(entvr.StatusPENDING, entvr.StatusIN_PROGRESS),
			).
			SetStatus(entvr.StatusCANCELLED).
			Save(ctx); err != nil {
			return fmt.Errorf("cancel vital requests: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publish("appointment.cancelled", apptID.String(), apptID)
	return nil
}

// ---------------------------------------------------------------------------
// Status derivation
// ---------------------------------------------------------------------------

func isTerminal(st entappt.Status) bool {
	return st == entappt.StatusCOMPLETED || st == entappt.StatusCANCELLED
}

// recomputeStatus is the single authority for derived appointment states.
// It is idempotent and never touches terminal appointments.
//
// Rules, in order:
//  1. at least one DONE vital request and no open test request → IN_REVIEW
//  2. otherwise, any test request on a PENDING appointment → AWAITING_RESULTS
func (s *workflowService) recomputeStatus(ctx context.Context, tx *repo.Tx, apptID uuid.UUID) error {
	appt, err := tx.Appointment.Query().
		Where(entappt.ID(apptID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("recompute: get appointment: %w", err)
	}
	if isTerminal(appt.Status) {
		return nil
	}

	hasDoneVitals, err := tx.VitalRequest.Query().
		Where(
			entvr.AppointmentID(apptID),
			entvr.StatusEQ(entvr.StatusDONE),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("recompute: query vital requests: %w", err)
	}

	hasOpenTests, err := tx.TestRequest.Query().
		Where(
			enttr.AppointmentID(apptID),
			enttr.StatusIn(enttr.StatusPENDING, enttr.StatusIN_PROGRESS),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("recompute: query open test requests: %w", err)
	}

	var next entappt.Status
	switch {
	case hasDoneVitals && !hasOpenTests:
		next = entappt.StatusIN_REVIEW
	case appt.Status == entappt.StatusPENDING:
		hasTests, err := tx.TestRequest.Query().
			Where(enttr.AppointmentID(apptID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("recompute: query test requests: %w", err)
		}
		if !hasTests {
			return nil
		}
		next = entappt.StatusAWAITING_RESULTS
	default:
		return nil
	}

	if next == appt.Status {
		return nil
	}

	if err := tx.Appointment.UpdateOneID(apptID).
		SetStatus(next).
		Exec(ctx); err != nil {
		return fmt.Errorf("recompute: update status: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *workflowService) withTx(ctx context.Context, fn func(tx *repo.Tx) error) error {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w: rollback failed: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (s *workflowService) publish(event, id string, payload uuid.UUID) {
	if s.nc == nil {
		return
	}
	subject := fmt.Sprintf("medreach.%s.%s", event, id)
	_ = s.nc.Publish(subject, []byte(payload.String()))
}
