package workflow

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/medreach/hospital_backend/internal/repo"
	entappt "github.com/medreach/hospital_backend/internal/repo/appointment"
	entlab "github.com/medreach/hospital_backend/internal/repo/labresult"
	entreport "github.com/medreach/hospital_backend/internal/repo/medicalreport"
	entprofile "github.com/medreach/hospital_backend/internal/repo/profile"
	enttr "github.com/medreach/hospital_backend/internal/repo/testrequest"
	entvr "github.com/medreach/hospital_backend/internal/repo/vitalrequest"
	entvitals "github.com/medreach/hospital_backend/internal/repo/vitals"
)

// normalizeTests trims, lower-cases and deduplicates test names, preserving
// the caller's order. Blank entries are dropped.
func normalizeTests(tests []string) []string {
	seen := make(map[string]struct{}, len(tests))
	out := make([]string, 0, len(tests))
	for _, t := range tests {
		name := strings.ToLower(strings.TrimSpace(t))
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// openAppointment loads the appointment and rejects terminal states.
func (s *workflowService) openAppointment(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.GetAppointment(ctx, apptID)
	if err != nil {
		return nil, err
	}
	if isTerminal(appt.Status) {
		return nil, ErrAppointmentClosed
	}
	return appt, nil
}

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

func (s *workflowService) CreateTestRequest(ctx context.Context, apptID, doctorID uuid.UUID, tests []string, note *string) (*repo.TestRequest, error) {
	names := normalizeTests(tests)
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: at least one test name is required", ErrValidation)
	}

	unlock := s.mu.lock(apptID)
	defer unlock()

	if _, err := s.openAppointment(ctx, apptID); err != nil {
		return nil, err
	}

	// Lab assignment: nil is a valid outcome when nobody is available.
	lab, err := s.staff.Assign(ctx, entprofile.RoleLAB)
	if err != nil {
		return nil, err
	}

	var created *repo.TestRequest
	err = s.withTx(ctx, func(tx *repo.Tx) error {
		c := tx.TestRequest.Create().
			SetAppointmentID(apptID).
			SetRequestedBy(doctorID).
			SetTests(names).
			SetNillableNote(note)
		if lab != nil {
			c = c.SetAssignedTo(lab.ID)
		}

		tr, err := c.Save(ctx)
		if err != nil {
			return fmt.Errorf("create test request: %w", err)
		}
		created = tr

		return s.recomputeStatus(ctx, tx, apptID)
	})
	if err != nil {
		return nil, err
	}

	if lab != nil {
		s.publish("task.assigned", created.ID.String(), lab.ID)
	}
	return created, nil
}

func (s *workflowService) CreateVitalRequest(ctx context.Context, apptID, doctorID uuid.UUID, note *string) (*repo.VitalRequest, error) {
	unlock := s.mu.lock(apptID)
	defer unlock()

	if _, err := s.openAppointment(ctx, apptID); err != nil {
		return nil, err
	}

	nurse, err := s.staff.Assign(ctx, entprofile.RoleNURSE)
	if err != nil {
		return nil, err
	}

	var created *repo.VitalRequest
	err = s.withTx(ctx, func(tx *repo.Tx) error {
		c := tx.VitalRequest.Create().
			SetAppointmentID(apptID).
			SetRequestedBy(doctorID).
			SetNillableNote(note)
		if nurse != nil {
			c = c.SetAssignedTo(nurse.ID)
		}

		vr, err := c.Save(ctx)
		if err != nil {
			return fmt.Errorf("create vital request: %w", err)
		}
		created = vr

		return s.recomputeStatus(ctx, tx, apptID)
	})
	if err != nil {
		return nil, err
	}

	if nurse != nil {
		s.publish("task.assigned", created.ID.String(), nurse.ID)
	}
	return created, nil
}

func (s *workflowService) ListTestRequests(ctx context.Context, f RequestFilter) ([]*repo.TestRequest, error) {
	q := s.db.TestRequest.Query()
	if f.AppointmentID != nil {
		q = q.Where(enttr.AppointmentID(*f.AppointmentID))
	}
	if f.AssignedTo != nil {
		q = q.Where(enttr.AssignedTo(*f.AssignedTo))
	}
	if f.Status != nil {
		q = q.Where(enttr.StatusEQ(enttr.Status(*f.Status)))
	}

	reqs, err := q.Order(enttr.ByCreatedAt(sql.OrderDesc())).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list test requests: %w", err)
	}
	return reqs, nil
}

func (s *workflowService) ListVitalRequests(ctx context.Context, f RequestFilter) ([]*repo.VitalRequest, error) {
	q := s.db.VitalRequest.Query()
	if f.AppointmentID != nil {
		q = q.Where(entvr.AppointmentID(*f.AppointmentID))
	}
	if f.AssignedTo != nil {
		q = q.Where(entvr.AssignedTo(*f.AssignedTo))
	}
	if f.Status != nil {
		q = q.Where(entvr.StatusEQ(entvr.Status(*f.Status)))
	}

	reqs, err := q.Order(entvr.ByCreatedAt(sql.OrderDesc())).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vital requests: %w", err)
	}
	return reqs, nil
}

// ---------------------------------------------------------------------------
// Vitals
// ---------------------------------------------------------------------------

func (s *workflowService) RecordVitals(ctx context.Context, vitalRequestID, nurseID uuid.UUID, in VitalsInput) (*repo.Vitals, error) {
	if in.BloodPressure == "" {
		return nil, fmt.Errorf("%w: blood pressure is required", ErrValidation)
	}

	vr, err := s.db.VitalRequest.Query().
		Where(entvr.ID(vitalRequestID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get vital request: %w", err)
	}
	if vr.Status == entvr.StatusCANCELLED {
		return nil, ErrRequestClosed
	}

	unlock := s.mu.lock(vr.AppointmentID)
	defer unlock()

	var entry *repo.Vitals
	err = s.withTx(ctx, func(tx *repo.Tx) error {
		// Re-check under the lock: a cancel may have closed the request
		// between the initial load and the lock acquisition.
		cur, err := tx.VitalRequest.Query().
			Where(entvr.ID(vitalRequestID)).
			Only(ctx)
		if err != nil {
			return fmt.Errorf("get vital request: %w", err)
		}
		if cur.Status == entvr.StatusCANCELLED {
			return ErrRequestClosed
		}

		c := tx.Vitals.Create().
			SetVitalRequestID(vitalRequestID).
			SetNurseID(nurseID).
			SetBloodPressure(in.BloodPressure).
			SetRespirationRate(in.RespirationRate).
			SetPulseRate(in.PulseRate).
			SetBodyTemperature(in.BodyTemperature).
			SetNillableHeightCm(in.HeightCm).
			SetNillableWeightKg(in.WeightKg)

		v, err := c.Save(ctx)
		if err != nil {
			return fmt.Errorf("record vitals: %w", err)
		}
		entry = v

		// First write completes the request, exactly once. Later entries
		// are stored without touching the status again.
		if _, err := tx.VitalRequest.Update().
			Where(
				entvr.ID(vitalRequestID),
				entvr.StatusIn(entvr.StatusPENDING, entvr.StatusIN_PROGRESS),
			).
			SetStatus(entvr.StatusDONE).
			Save(ctx); err != nil {
			return fmt.Errorf("complete vital request: %w", err)
		}

		return s.recomputeStatus(ctx, tx, vr.AppointmentID)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// LatestVitals treats the newest entry for a request as authoritative.
func (s *workflowService) LatestVitals(ctx context.Context, vitalRequestID uuid.UUID) (*repo.Vitals, error) {
	v, err := s.db.Vitals.Query().
		Where(entvitals.VitalRequestID(vitalRequestID)).
		Order(entvitals.ByCreatedAt(sql.OrderDesc()), entvitals.ByID(sql.OrderDesc())).
		First(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("latest vitals: %w", err)
	}
	return v, nil
}

// ---------------------------------------------------------------------------
// Lab results
// ---------------------------------------------------------------------------

func (s *workflowService) RecordLabResult(ctx context.Context, testRequestID, labID uuid.UUID, in LabResultInput) (*repo.LabResult, error) {
	name := strings.ToLower(strings.TrimSpace(in.TestName))
	if name == "" {
		return nil, fmt.Errorf("%w: test name is required", ErrValidation)
	}
	if in.Result == "" {
		return nil, fmt.Errorf("%w: result is required", ErrValidation)
	}

	tr, err := s.db.TestRequest.Query().
		Where(enttr.ID(testRequestID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get test request: %w", err)
	}
	if tr.Status != enttr.StatusPENDING && tr.Status != enttr.StatusIN_PROGRESS {
		return nil, ErrRequestClosed
	}

	unlock := s.mu.lock(tr.AppointmentID)
	defer unlock()

	var entry *repo.LabResult
	err = s.withTx(ctx, func(tx *repo.Tx) error {
		// Re-check under the lock: a cancel may have closed the request
		// between the initial load and the lock acquisition.
		cur, err := tx.TestRequest.Query().
			Where(enttr.ID(testRequestID)).
			Only(ctx)
		if err != nil {
			return fmt.Errorf("get test request: %w", err)
		}
		if cur.Status != enttr.StatusPENDING && cur.Status != enttr.StatusIN_PROGRESS {
			return ErrRequestClosed
		}

		lr, err := tx.LabResult.Create().
			SetTestRequestID(testRequestID).
			SetLabScientistID(labID).
			SetTestName(name).
			SetResult(in.Result).
			SetNillableUnits(in.Units).
			SetNillableReferenceRange(in.ReferenceRange).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("record lab result: %w", err)
		}
		entry = lr

		done, err := s.resultsComplete(ctx, tx, cur)
		if err != nil {
			return err
		}
		if done {
			// Conditional update keeps the DONE flip idempotent under races.
			if _, err := tx.TestRequest.Update().
				Where(
					enttr.ID(testRequestID),
					enttr.StatusIn(enttr.StatusPENDING, enttr.StatusIN_PROGRESS),
				).
				SetStatus(enttr.StatusDONE).
				Save(ctx); err != nil {
				return fmt.Errorf("complete test request: %w", err)
			}
			return s.recomputeStatus(ctx, tx, tr.AppointmentID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// resultsComplete reports whether every requested test has at least one
// recorded result. Comparison is on normalized names, so extra or repeated
// results never block completion.
func (s *workflowService) resultsComplete(ctx context.Context, tx *repo.Tx, tr *repo.TestRequest) (bool, error) {
	recorded, err := tx.LabResult.Query().
		Where(entlab.TestRequestID(tr.ID)).
		Select(entlab.FieldTestName).
		Strings(ctx)
	if err != nil {
		return false, fmt.Errorf("query recorded results: %w", err)
	}

	have := make(map[string]struct{}, len(recorded))
	for _, r := range recorded {
		have[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}
	for _, want := range tr.Tests {
		if _, ok := have[strings.ToLower(strings.TrimSpace(want))]; !ok {
			return false, nil
		}
	}
	return true, nil
}

func (s *workflowService) ListLabResults(ctx context.Context, testRequestID uuid.UUID) ([]*repo.LabResult, error) {
	results, err := s.db.LabResult.Query().
		Where(entlab.TestRequestID(testRequestID)).
		Order(entlab.ByCreatedAt(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lab results: %w", err)
	}
	return results, nil
}

// ---------------------------------------------------------------------------
// Medical report
// ---------------------------------------------------------------------------

func (s *workflowService) CreateMedicalReport(ctx context.Context, apptID, doctorID uuid.UUID, in ReportInput) (*repo.MedicalReport, error) {
	if in.MedicalCondition == "" {
		return nil, fmt.Errorf("%w: medical condition is required", ErrValidation)
	}

	unlock := s.mu.lock(apptID)
	defer unlock()

	appt, err := s.GetAppointment(ctx, apptID)
	if err != nil {
		return nil, err
	}

	// Duplicate check comes first: a second attempt on a completed
	// appointment should say "already exists", not "closed".
	exists, err := s.db.MedicalReport.Query().
		Where(entreport.AppointmentID(apptID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check report: %w", err)
	}
	if exists {
		return nil, ErrReportAlreadyExists
	}

	if isTerminal(appt.Status) {
		return nil, ErrAppointmentClosed
	}
	if appt.Status != entappt.StatusIN_REVIEW {
		return nil, ErrInvalidTransition
	}

	var report *repo.MedicalReport
	err = s.withTx(ctx, func(tx *repo.Tx) error {
		r, err := tx.MedicalReport.Create().
			SetAppointmentID(apptID).
			SetDoctorID(doctorID).
			SetMedicalCondition(in.MedicalCondition).
			SetNillableDrugPrescription(in.DrugPrescription).
			SetNillableAdvice(in.Advice).
			SetNillableNextAppointment(in.NextAppointment).
			Save(ctx)
		if err != nil {
			// The unique index on appointment_id backs up the exists check.
			if repo.IsConstraintError(err) {
				return ErrReportAlreadyExists
			}
			return fmt.Errorf("create report: %w", err)
		}
		report = r

		// Writing the report is the only path to COMPLETED.
		if err := tx.Appointment.UpdateOneID(apptID).
			SetStatus(entappt.StatusCOMPLETED).
			SetCompletedAt(r.CreatedAt).
			Exec(ctx); err != nil {
			return fmt.Errorf("complete appointment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("report.created", apptID.String(), report.ID)
	return report, nil
}

func (s *workflowService) GetReport(ctx context.Context, apptID uuid.UUID) (*repo.MedicalReport, error) {
	r, err := s.db.MedicalReport.Query().
		Where(entreport.AppointmentID(apptID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get report: %w", err)
	}
	return r, nil
}
