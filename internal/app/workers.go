package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/medreach/hospital_backend/config"
	"github.com/medreach/hospital_backend/internal/repo"
	"github.com/medreach/hospital_backend/pkg/email"
)

const workerSendTimeout = 15 * time.Second

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc   fx.Lifecycle
	NC   *nats.Conn
	DB   *repo.Client
	Mail *email.Client
	Cfg  *config.Config
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startAssignmentWorker(p.NC, p.DB, p.Mail)
			startReportWorker(p.NC, p.DB, p.Mail, p.Cfg)
			startAuditWorker(p.NC)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// subjectID extracts the trailing id segment of an event subject like
// "medreach.task.assigned.<id>".
func subjectID(subject string) (uuid.UUID, bool) {
	parts := strings.Split(subject, ".")
	if len(parts) < 4 {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(parts[len(parts)-1])
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// ---------------------------------------------------------------------------
// assignment_worker
// ---------------------------------------------------------------------------

// startAssignmentWorker emails staff members about work assigned to them.
// The subject carries the task id (appointment or request), the payload the
// assignee's profile id.
func startAssignmentWorker(nc *nats.Conn, db *repo.Client, mail *email.Client) {
	_, err := nc.Subscribe("medreach.task.assigned.*", func(msg *nats.Msg) {
		taskID, ok := subjectID(msg.Subject)
		if !ok {
			return
		}
		staffID, err := uuid.Parse(strings.TrimSpace(string(msg.Data)))
		if err != nil {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), workerSendTimeout)
		defer cancel()

		staff, err := db.Profile.Get(ctx, staffID)
		if err != nil {
			slog.Warn("assignment_worker: staff profile not found", "id", staffID, "err", err)
			return
		}
		account, err := db.User.Get(ctx, staff.UserID)
		if err != nil {
			slog.Warn("assignment_worker: staff user not found", "id", staff.UserID, "err", err)
			return
		}

		kind, patientName, note, ok := resolveTask(ctx, db, taskID)
		if !ok {
			slog.Warn("assignment_worker: task not found", "id", taskID)
			return
		}

		m := email.BuildTaskAssignedEmail(email.TaskEmailData{
			StaffName:   staff.FullName,
			Email:       account.Email,
			PatientName: patientName,
			TaskKind:    kind,
			Note:        note,
		})
		if err := mail.Send(ctx, m); err != nil {
			slog.Warn("assignment_worker: send failed", "to", account.Email, "err", err)
		}
	})
	if err != nil {
		slog.Error("assignment_worker: subscribe task.assigned failed", "err", err)
		return
	}

	slog.Info("assignment_worker: started")
}

// resolveTask figures out what kind of work the task id points at. The
// assigned event reuses one subject for appointments, test requests and
// vital requests.
func resolveTask(ctx context.Context, db *repo.Client, taskID uuid.UUID) (kind, patientName, note string, ok bool) {
	if appt, err := db.Appointment.Get(ctx, taskID); err == nil {
		msg := ""
		if appt.Message != nil {
			msg = *appt.Message
		}
		return "appointment", appt.Name, msg, true
	}

	if tr, err := db.TestRequest.Get(ctx, taskID); err == nil {
		appt, err := db.Appointment.Get(ctx, tr.AppointmentID)
		if err != nil {
			return "", "", "", false
		}
		n := ""
		if tr.Note != nil {
			n = *tr.Note
		}
		return "test request", appt.Name, n, true
	}

	if vr, err := db.VitalRequest.Get(ctx, taskID); err == nil {
		appt, err := db.Appointment.Get(ctx, vr.AppointmentID)
		if err != nil {
			return "", "", "", false
		}
		n := ""
		if vr.Note != nil {
			n = *vr.Note
		}
		return "vital request", appt.Name, n, true
	}

	return "", "", "", false
}

// ---------------------------------------------------------------------------
// report_worker
// ---------------------------------------------------------------------------

// startReportWorker emails the patient when their medical report is ready.
func startReportWorker(nc *nats.Conn, db *repo.Client, mail *email.Client, cfg *config.Config) {
	_, err := nc.Subscribe("medreach.report.created.*", func(msg *nats.Msg) {
		apptID, ok := subjectID(msg.Subject)
		if !ok {
			return
		}
		reportID, err := uuid.Parse(strings.TrimSpace(string(msg.Data)))
		if err != nil {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), workerSendTimeout)
		defer cancel()

		appt, err := db.Appointment.Get(ctx, apptID)
		if err != nil {
			slog.Warn("report_worker: appointment not found", "id", apptID, "err", err)
			return
		}
		patient, err := db.Profile.Get(ctx, appt.PatientID)
		if err != nil {
			slog.Warn("report_worker: patient profile not found", "id", appt.PatientID, "err", err)
			return
		}
		account, err := db.User.Get(ctx, patient.UserID)
		if err != nil {
			slog.Warn("report_worker: patient user not found", "id", patient.UserID, "err", err)
			return
		}

		doctorName := ""
		if report, err := db.MedicalReport.Get(ctx, reportID); err == nil {
			if doctor, err := db.Profile.Get(ctx, report.DoctorID); err == nil {
				doctorName = doctor.FullName
			}
		}

		m := email.BuildReportReadyEmail(email.ReportEmailData{
			PatientName: patient.FullName,
			Email:       account.Email,
			DoctorName:  doctorName,
			BaseURL:     cfg.Server.BaseURL,
		})
		if err := mail.Send(ctx, m); err != nil {
			slog.Warn("report_worker: send failed", "to", account.Email, "err", err)
		}
	})
	if err != nil {
		slog.Error("report_worker: subscribe report.created failed", "err", err)
		return
	}

	slog.Info("report_worker: started")
}

// ---------------------------------------------------------------------------
// audit_worker
// ---------------------------------------------------------------------------

// startAuditWorker writes an audit line for every lifecycle event.
func startAuditWorker(nc *nats.Conn) {
	for _, event := range []string{"appointment.created", "appointment.cancelled"} {
		subject := "medreach." + event + ".*"
		ev := event
		_, err := nc.Subscribe(subject, func(msg *nats.Msg) {
			id, ok := subjectID(msg.Subject)
			if !ok {
				return
			}
			slog.Info("audit: appointment lifecycle event", "event", ev, "appointment_id", id)
		})
		if err != nil {
			slog.Error("audit_worker: subscribe failed", "subject", subject, "err", err)
		}
	}

	slog.Info("audit_worker: started")
}
