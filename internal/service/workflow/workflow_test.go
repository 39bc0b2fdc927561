package workflow

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/medreach/hospital_backend/internal/repo"
	entappt "github.com/medreach/hospital_backend/internal/repo/appointment"
	"github.com/medreach/hospital_backend/internal/repo/enttest"
	entprofile "github.com/medreach/hospital_backend/internal/repo/profile"
	enttr "github.com/medreach/hospital_backend/internal/repo/testrequest"
	entvr "github.com/medreach/hospital_backend/internal/repo/vitalrequest"
	"github.com/medreach/hospital_backend/internal/service/staff"
)

// seqPicker returns a fixed sequence of indices, then zeros.
type seqPicker struct {
	mu   sync.Mutex
	vals []int
}

func (p *seqPicker) PickN(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.vals) == 0 {
		return 0
	}
	v := p.vals[0]
	p.vals = p.vals[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

type fixture struct {
	client *repo.Client
	svc    Service
	staff  staff.Service

	patient *repo.Profile
	doctor  *repo.Profile
	nurse   *repo.Profile
	lab     *repo.Profile
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })

	f := &fixture{client: client}
	f.patient = createProfile(t, client, entprofile.RolePATIENT, "Asha Mensah")
	f.doctor = createProfile(t, client, entprofile.RoleDOCTOR, "Greg House")
	f.nurse = createProfile(t, client, entprofile.RoleNURSE, "Carla Espinosa")
	f.lab = createProfile(t, client, entprofile.RoleLAB, "Abby Sciuto")

	f.staff = staff.New(client, &seqPicker{})
	f.svc = New(client, f.staff, nil)
	return f
}

func createProfile(t *testing.T, client *repo.Client, role entprofile.Role, name string) *repo.Profile {
	t.Helper()

	u, err := client.User.Create().
		SetEmail(fmt.Sprintf("%s-%s@example.com", role, uuid.NewString())).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	p, err := client.Profile.Create().
		SetUserID(u.ID).
		SetFullName(name).
		SetRole(role).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}
	return p
}

func (f *fixture) createAppointment(t *testing.T) *repo.Appointment {
	t.Helper()

	appt, err := f.svc.CreateAppointment(context.Background(), f.patient.ID, IntakeRequest{
		Name:    "Asha Mensah",
		Age:     34,
		Sex:     "F",
		Address: "12 Harbor Rd",
	})
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}
	return appt
}

func (f *fixture) apptStatus(t *testing.T, id uuid.UUID) entappt.Status {
	t.Helper()

	appt, err := f.svc.GetAppointment(context.Background(), id)
	if err != nil {
		t.Fatalf("GetAppointment: %v", err)
	}
	return appt.Status
}

func TestFullVisitLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	appt := f.createAppointment(t)
	if appt.Status != entappt.StatusPENDING {
		t.Fatalf("new appointment status = %s, want PENDING", appt.Status)
	}
	if appt.DoctorID == nil || *appt.DoctorID != f.doctor.ID {
		t.Fatalf("doctor not assigned, got %v", appt.DoctorID)
	}

	// Vitals requested: no results yet, appointment stays PENDING.
	vr, err := f.svc.CreateVitalRequest(ctx, appt.ID, f.doctor.ID, nil)
	if err != nil {
		t.Fatalf("CreateVitalRequest: %v", err)
	}
	if vr.AssignedTo == nil || *vr.AssignedTo != f.nurse.ID {
		t.Fatalf("nurse not assigned, got %v", vr.AssignedTo)
	}
	if got := f.apptStatus(t, appt.ID); got != entappt.StatusPENDING {
		t.Fatalf("status after vital request = %s, want PENDING", got)
	}

	// Tests requested: appointment moves to AWAITING_RESULTS.
	tr, err := f.svc.CreateTestRequest(ctx, appt.ID, f.doctor.ID,
		[]string{" CBC ", "Lipid Panel", "cbc"}, nil)
	if err != nil {
		t.Fatalf("CreateTestRequest: %v", err)
	}
	if len(tr.Tests) != 2 {
		t.Fatalf("tests = %v, want normalized pair", tr.Tests)
	}
	if got := f.apptStatus(t, appt.ID); got != entappt.StatusAWAITING_RESULTS {
		t.Fatalf("status after test request = %s, want AWAITING_RESULTS", got)
	}

	// Vitals recorded: request is DONE, but open tests hold the appointment.
	if _, err := f.svc.RecordVitals(ctx, vr.ID, f.nurse.ID, VitalsInput{
		BloodPressure:   "120/80",
		RespirationRate: 14,
		PulseRate:       68,
		BodyTemperature: 36.7,
	}); err != nil {
		t.Fatalf("RecordVitals: %v", err)
	}
	gotVR, err := f.client.VitalRequest.Get(ctx, vr.ID)
	if err != nil {
		t.Fatalf("get vital request: %v", err)
	}
	if gotVR.Status != entvr.StatusDONE {
		t.Fatalf("vital request status = %s, want DONE", gotVR.Status)
	}
	if got := f.apptStatus(t, appt.ID); got != entappt.StatusAWAITING_RESULTS {
		t.Fatalf("status with open tests = %s, want AWAITING_RESULTS", got)
	}

	// Partial results keep the test request open.
	if _, err := f.svc.RecordLabResult(ctx, tr.ID, f.lab.ID, LabResultInput{
		TestName: "CBC", Result: "normal",
	}); err != nil {
		t.Fatalf("RecordLabResult: %v", err)
	}
	gotTR, err := f.client.TestRequest.Get(ctx, tr.ID)
	if err != nil {
		t.Fatalf("get test request: %v", err)
	}
	if gotTR.Status == enttr.StatusDONE {
		t.Fatal("test request DONE with results missing")
	}

	// Final result completes the request and unlocks review.
	if _, err := f.svc.RecordLabResult(ctx, tr.ID, f.lab.ID, LabResultInput{
		TestName: "lipid panel", Result: "elevated LDL",
	}); err != nil {
		t.Fatalf("RecordLabResult: %v", err)
	}
	gotTR, _ = f.client.TestRequest.Get(ctx, tr.ID)
	if gotTR.Status != enttr.StatusDONE {
		t.Fatalf("test request status = %s, want DONE", gotTR.Status)
	}
	if got := f.apptStatus(t, appt.ID); got != entappt.StatusIN_REVIEW {
		t.Fatalf("status after all results = %s, want IN_REVIEW", got)
	}

	// The report is the only writer of COMPLETED.
	report, err := f.svc.CreateMedicalReport(ctx, appt.ID, f.doctor.ID, ReportInput{
		MedicalCondition: "hyperlipidemia",
	})
	if err != nil {
		t.Fatalf("CreateMedicalReport: %v", err)
	}
	if report.AppointmentID != appt.ID {
		t.Fatalf("report appointment = %s, want %s", report.AppointmentID, appt.ID)
	}
	if got := f.apptStatus(t, appt.ID); got != entappt.StatusCOMPLETED {
		t.Fatalf("status after report = %s, want COMPLETED", got)
	}

	// One report per appointment.
	if _, err := f.svc.CreateMedicalReport(ctx, appt.ID, f.doctor.ID, ReportInput{
		MedicalCondition: "second opinion",
	}); !errors.Is(err, ErrReportAlreadyExists) {
		t.Fatalf("second report error = %v, want ErrReportAlreadyExists", err)
	}
}

func TestReportRequiresReview(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	appt := f.createAppointment(t)

	// PENDING appointment: not reviewable yet.
	if _, err := f.svc.CreateMedicalReport(ctx, appt.ID, f.doctor.ID, ReportInput{
		MedicalCondition: "premature",
	}); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("report on PENDING error = %v, want ErrInvalidTransition", err)
	}

	// AWAITING_RESULTS: still not reviewable.
	if _, err := f.svc.CreateTestRequest(ctx, appt.ID, f.doctor.ID, []string{"cbc"}, nil); err != nil {
		t.Fatalf("CreateTestRequest: %v", err)
	}
	if _, err := f.svc.CreateMedicalReport(ctx, appt.ID, f.doctor.ID, ReportInput{
		MedicalCondition: "premature",
	}); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("report on AWAITING_RESULTS error = %v, want ErrInvalidTransition", err)
	}
}

func TestCancelCascadesToOpenRequests(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	appt := f.createAppointment(t)
	vr, err := f.svc.CreateVitalRequest(ctx, appt.ID, f.doctor.ID, nil)
	if err != nil {
		t.Fatalf("CreateVitalRequest: %v", err)
	}
	tr, err := f.svc.CreateTestRequest(ctx, appt.ID, f.doctor.ID, []string{"cbc"}, nil)
	if err != nil {
		t.Fatalf("CreateTestRequest: %v", err)
	}

	reason := "patient no-show"
	if err := f.svc.CancelAppointment(ctx, appt.ID, CancelRequest{Reason: &reason}); err != nil {
		t.Fatalf("CancelAppointment: %v", err)
	}
	if got := f.apptStatus(t, appt.ID); got != entappt.StatusCANCELLED {
		t.Fatalf("status = %s, want CANCELLED", got)
	}

	gotVR, _ := f.client.VitalRequest.Get(ctx, vr.ID)
	if gotVR.Status != entvr.StatusCANCELLED {
		t.Fatalf("vital request status = %s, want CANCELLED", gotVR.Status)
	}
	gotTR, _ := f.client.TestRequest.Get(ctx, tr.ID)
	if gotTR.Status != enttr.StatusCANCELLED {
		t.Fatalf("test request status = %s, want CANCELLED", gotTR.Status)
	}

	// Cancelled requests stop accepting data.
	if _, err := f.svc.RecordVitals(ctx, vr.ID, f.nurse.ID, VitalsInput{
		BloodPressure: "118/76", RespirationRate: 13, PulseRate: 70, BodyTemperature: 36.5,
	}); !errors.Is(err, ErrRequestClosed) {
		t.Fatalf("vitals on cancelled request error = %v, want ErrRequestClosed", err)
	}
	if _, err := f.svc.RecordLabResult(ctx, tr.ID, f.lab.ID, LabResultInput{
		TestName: "cbc", Result: "normal",
	}); !errors.Is(err, ErrRequestClosed) {
		t.Fatalf("result on cancelled request error = %v, want ErrRequestClosed", err)
	}

	// Terminal appointments reject everything.
	if err := f.svc.CancelAppointment(ctx, appt.ID, CancelRequest{}); !errors.Is(err, ErrAppointmentClosed) {
		t.Fatalf("double cancel error = %v, want ErrAppointmentClosed", err)
	}
	if _, err := f.svc.CreateTestRequest(ctx, appt.ID, f.doctor.ID, []string{"cbc"}, nil); !errors.Is(err, ErrAppointmentClosed) {
		t.Fatalf("test request on cancelled error = %v, want ErrAppointmentClosed", err)
	}
}

func TestUnassignedWhenNoStaffAvailable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Everyone clocks out.
	for _, p := range []*repo.Profile{f.doctor, f.nurse, f.lab} {
		if err := f.staff.SetActive(ctx, p.ID, false); err != nil {
			t.Fatalf("SetActive: %v", err)
		}
	}

	appt := f.createAppointment(t)
	if appt.DoctorID != nil {
		t.Fatalf("doctor assigned with no active staff: %v", appt.DoctorID)
	}

	vr, err := f.svc.CreateVitalRequest(ctx, appt.ID, f.doctor.ID, nil)
	if err != nil {
		t.Fatalf("CreateVitalRequest: %v", err)
	}
	if vr.AssignedTo != nil {
		t.Fatalf("nurse assigned with no active staff: %v", vr.AssignedTo)
	}

	tr, err := f.svc.CreateTestRequest(ctx, appt.ID, f.doctor.ID, []string{"cbc"}, nil)
	if err != nil {
		t.Fatalf("CreateTestRequest: %v", err)
	}
	if tr.AssignedTo != nil {
		t.Fatalf("lab assigned with no active staff: %v", tr.AssignedTo)
	}
}

func TestRepeatVitalsKeepRequestDone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	appt := f.createAppointment(t)
	vr, err := f.svc.CreateVitalRequest(ctx, appt.ID, f.doctor.ID, nil)
	if err != nil {
		t.Fatalf("CreateVitalRequest: %v", err)
	}

	first, err := f.svc.RecordVitals(ctx, vr.ID, f.nurse.ID, VitalsInput{
		BloodPressure: "130/85", RespirationRate: 15, PulseRate: 75, BodyTemperature: 37.1,
	})
	if err != nil {
		t.Fatalf("RecordVitals: %v", err)
	}

	// A correction after DONE is stored, and becomes the authoritative read.
	second, err := f.svc.RecordVitals(ctx, vr.ID, f.nurse.ID, VitalsInput{
		BloodPressure: "124/82", RespirationRate: 14, PulseRate: 72, BodyTemperature: 36.9,
	})
	if err != nil {
		t.Fatalf("RecordVitals after DONE: %v", err)
	}

	latest, err := f.svc.LatestVitals(ctx, vr.ID)
	if err != nil {
		t.Fatalf("LatestVitals: %v", err)
	}
	if latest.ID != second.ID {
		t.Fatalf("latest vitals = %s, want %s (not %s)", latest.ID, second.ID, first.ID)
	}

	gotVR, _ := f.client.VitalRequest.Get(ctx, vr.ID)
	if gotVR.Status != entvr.StatusDONE {
		t.Fatalf("vital request status = %s, want DONE", gotVR.Status)
	}
}

func TestRecomputeIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	appt := f.createAppointment(t)
	vr, _ := f.svc.CreateVitalRequest(ctx, appt.ID, f.doctor.ID, nil)
	if _, err := f.svc.RecordVitals(ctx, vr.ID, f.nurse.ID, VitalsInput{
		BloodPressure: "120/80", RespirationRate: 14, PulseRate: 68, BodyTemperature: 36.7,
	}); err != nil {
		t.Fatalf("RecordVitals: %v", err)
	}

	// DONE vitals, no tests at all: straight to IN_REVIEW and stays there.
	if got := f.apptStatus(t, appt.ID); got != entappt.StatusIN_REVIEW {
		t.Fatalf("status = %s, want IN_REVIEW", got)
	}

	svc := f.svc.(*workflowService)
	for i := 0; i < 3; i++ {
		err := svc.withTx(ctx, func(tx *repo.Tx) error {
			return svc.recomputeStatus(ctx, tx, appt.ID)
		})
		if err != nil {
			t.Fatalf("recompute #%d: %v", i, err)
		}
	}
	if got := f.apptStatus(t, appt.ID); got != entappt.StatusIN_REVIEW {
		t.Fatalf("status after repeated recompute = %s, want IN_REVIEW", got)
	}
}

func TestConcurrentResultsCompleteOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	appt := f.createAppointment(t)
	tr, err := f.svc.CreateTestRequest(ctx, appt.ID, f.doctor.ID, []string{"cbc"}, nil)
	if err != nil {
		t.Fatalf("CreateTestRequest: %v", err)
	}

	// Two lab writers race on the last missing result. The per-appointment
	// lock serializes them; both inserts land, the DONE flip happens once.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.RecordLabResult(ctx, tr.ID, f.lab.ID, LabResultInput{
				TestName: "cbc", Result: fmt.Sprintf("run %d", i),
			})
		}(i)
	}
	wg.Wait()

	var stored int
	for i, err := range errs {
		switch {
		case err == nil:
			stored++
		case errors.Is(err, ErrRequestClosed):
			// The loser saw the request already DONE. Acceptable.
		default:
			t.Fatalf("writer %d: unexpected error %v", i, err)
		}
	}
	if stored == 0 {
		t.Fatal("no result was stored")
	}

	gotTR, _ := f.client.TestRequest.Get(ctx, tr.ID)
	if gotTR.Status != enttr.StatusDONE {
		t.Fatalf("test request status = %s, want DONE", gotTR.Status)
	}
	if got := f.apptStatus(t, appt.ID); got != entappt.StatusIN_REVIEW {
		t.Fatalf("status = %s, want IN_REVIEW", got)
	}
}

func TestValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	appt := f.createAppointment(t)

	tests := []struct {
		name string
		run  func() error
	}{
		{"empty intake name", func() error {
			_, err := f.svc.CreateAppointment(ctx, f.patient.ID, IntakeRequest{Age: 30, Sex: "M", Address: "x"})
			return err
		}},
		{"non-positive age", func() error {
			_, err := f.svc.CreateAppointment(ctx, f.patient.ID, IntakeRequest{Name: "n", Age: 0, Sex: "M", Address: "x"})
			return err
		}},
		{"bad sex value", func() error {
			_, err := f.svc.CreateAppointment(ctx, f.patient.ID, IntakeRequest{Name: "n", Age: 30, Sex: "X", Address: "x"})
			return err
		}},
		{"empty test list", func() error {
			_, err := f.svc.CreateTestRequest(ctx, appt.ID, f.doctor.ID, []string{"  ", ""}, nil)
			return err
		}},
		{"empty report condition", func() error {
			_, err := f.svc.CreateMedicalReport(ctx, appt.ID, f.doctor.ID, ReportInput{})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.run(); !errors.Is(err, ErrValidation) {
				t.Fatalf("error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ghost := uuid.New()
	if _, err := f.svc.GetAppointment(ctx, ghost); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetAppointment error = %v, want ErrNotFound", err)
	}
	if _, err := f.svc.RecordVitals(ctx, ghost, f.nurse.ID, VitalsInput{
		BloodPressure: "120/80", RespirationRate: 14, PulseRate: 68, BodyTemperature: 36.7,
	}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("RecordVitals error = %v, want ErrNotFound", err)
	}
	if _, err := f.svc.RecordLabResult(ctx, ghost, f.lab.ID, LabResultInput{
		TestName: "cbc", Result: "normal",
	}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("RecordLabResult error = %v, want ErrNotFound", err)
	}
	if _, err := f.svc.GetReport(ctx, ghost); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetReport error = %v, want ErrNotFound", err)
	}
}

func TestNormalizeTests(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"trims and lowers", []string{" CBC ", "Lipid Panel"}, []string{"cbc", "lipid panel"}},
		{"dedupes", []string{"cbc", "CBC", " cbc"}, []string{"cbc"}},
		{"drops blanks", []string{"", "  ", "tsh"}, []string{"tsh"}},
		{"empty input", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeTests(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("normalizeTests(%v) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("normalizeTests(%v) = %v, want %v", tt.in, got, tt.want)
				}
			}
		})
	}
}

func TestCancelWhileRecordersWaitOnLock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	appt := f.createAppointment(t)
	tr, err := f.svc.CreateTestRequest(ctx, appt.ID, f.doctor.ID, []string{"cbc"}, nil)
	if err != nil {
		t.Fatalf("CreateTestRequest: %v", err)
	}
	vr, err := f.svc.CreateVitalRequest(ctx, appt.ID, f.doctor.ID, nil)
	if err != nil {
		t.Fatalf("CreateVitalRequest: %v", err)
	}

	// Hold the appointment lock so the recorders pass their initial status
	// reads while the requests are still open, then queue up behind it.
	ws := f.svc.(*workflowService)
	unlock := ws.mu.lock(appt.ID)

	results := make(chan error, 2)
	go func() {
		_, err := f.svc.RecordLabResult(ctx, tr.ID, f.lab.ID, LabResultInput{
			TestName: "cbc", Result: "4.2",
		})
		results <- err
	}()
	go func() {
		_, err := f.svc.RecordVitals(ctx, vr.ID, f.nurse.ID, VitalsInput{
			BloodPressure: "120/80",
		})
		results <- err
	}()

	// Give both goroutines a chance to reach the lock.
	time.Sleep(50 * time.Millisecond)

	// Commit the cancel cascade while they wait, the way CancelAppointment
	// does under the lock.
	if err := f.client.Appointment.UpdateOneID(appt.ID).
		SetStatus(entappt.StatusCANCELLED).
		Exec(ctx); err != nil {
		t.Fatalf("cancel appointment: %v", err)
	}
	if err := f.client.TestRequest.UpdateOneID(tr.ID).
		SetStatus(enttr.StatusCANCELLED).
		Exec(ctx); err != nil {
		t.Fatalf("cancel test request: %v", err)
	}
	if err := f.client.VitalRequest.UpdateOneID(vr.ID).
		SetStatus(entvr.StatusCANCELLED).
		Exec(ctx); err != nil {
		t.Fatalf("cancel vital request: %v", err)
	}

	unlock()

	for i := 0; i < 2; i++ {
		if err := <-results; !errors.Is(err, ErrRequestClosed) {
			t.Fatalf("record after cancel err = %v, want ErrRequestClosed", err)
		}
	}

	// No orphan rows may land on the cancelled requests.
	if n, _ := f.client.LabResult.Query().Count(ctx); n != 0 {
		t.Fatalf("lab results on cancelled request = %d, want 0", n)
	}
	if n, _ := f.client.Vitals.Query().Count(ctx); n != 0 {
		t.Fatalf("vitals on cancelled request = %d, want 0", n)
	}
}
