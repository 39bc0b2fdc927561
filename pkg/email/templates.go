package email

import (
	"fmt"
)

// WelcomeEmailData contains the data needed for the welcome email template.
type WelcomeEmailData struct {
	FullName string
	Email    string
	AppName  string
	BaseURL  string
}

// BuildWelcomeEmail creates a welcome message for newly provisioned accounts.
func BuildWelcomeEmail(data WelcomeEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "MedReach"
	}

	fullName := data.FullName
	if fullName == "" {
		fullName = "there"
	}

	subject := fmt.Sprintf("Welcome to %s", appName)

	textBody := fmt.Sprintf(`Hi %s,

Your %s account is ready.

You can now sign in, book appointments and follow your medical records online:
%s

Thanks,
The %s Team`,
		fullName, appName, data.BaseURL, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Your %s account is ready.</p>
    <p>You can now sign in, book appointments and follow your medical records online.</p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Sign In</a>
    </p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		fullName, appName, data.BaseURL, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// TaskEmailData contains the data for staff assignment notifications.
type TaskEmailData struct {
	StaffName   string
	Email       string
	PatientName string
	TaskKind    string // "test request" or "vital request" or "appointment"
	Note        string
	AppName     string
}

// BuildTaskAssignedEmail notifies a staff member about newly assigned work.
func BuildTaskAssignedEmail(data TaskEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "MedReach"
	}

	staffName := data.StaffName
	if staffName == "" {
		staffName = "there"
	}

	subject := fmt.Sprintf("New %s assigned to you", data.TaskKind)

	note := ""
	if data.Note != "" {
		note = fmt.Sprintf("\n\nNote from the requesting doctor:\n%s", data.Note)
	}

	textBody := fmt.Sprintf(`Hi %s,

A new %s for patient %s has been assigned to you.%s

Please sign in to %s to see the details.

Thanks,
The %s Team`,
		staffName, data.TaskKind, data.PatientName, note, appName, appName)

	htmlNote := ""
	if data.Note != "" {
		htmlNote = fmt.Sprintf(`<p style="background-color: #f3f4f6; padding: 10px 15px; border-radius: 4px;">%s</p>`, data.Note)
	}

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>A new <strong>%s</strong> for patient <strong>%s</strong> has been assigned to you.</p>
    %s
    <p>Please sign in to %s to see the details.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		staffName, data.TaskKind, data.PatientName, htmlNote, appName, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// ReportEmailData contains the data for the report-ready notification.
type ReportEmailData struct {
	PatientName string
	Email       string
	DoctorName  string
	AppName     string
	BaseURL     string
}

// BuildReportReadyEmail notifies a patient that their medical report is ready.
func BuildReportReadyEmail(data ReportEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "MedReach"
	}

	patientName := data.PatientName
	if patientName == "" {
		patientName = "there"
	}

	subject := "Your medical report is ready"

	textBody := fmt.Sprintf(`Hi %s,

Dr. %s has completed your medical report. You can read it online:
%s

Thanks,
The %s Team`,
		patientName, data.DoctorName, data.BaseURL, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Dr. %s has completed your medical report.</p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #16a34a; color: white; padding: 14px 28px; text-decoration: none; border-radius: 6px; display: inline-block; font-size: 16px;">Read Report</a>
    </p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		patientName, data.DoctorName, data.BaseURL, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
