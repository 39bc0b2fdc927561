// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "doctor_id", Type: field.TypeUUID, Nullable: true},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "age", Type: field.TypeInt},
		{Name: "sex", Type: field.TypeEnum, Enums: []string{"M", "F", "O"}},
		{Name: "address", Type: field.TypeString, Size: 500},
		{Name: "message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "IN_REVIEW", "AWAITING_RESULTS", "COMPLETED", "CANCELLED"}, Default: "PENDING"},
		{Name: "booked_at", Type: field.TypeTime},
		{Name: "cancellation_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_patient_id_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[10]},
			},
			{
				Name:    "appointment_doctor_id_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[4], AppointmentsColumns[10]},
			},
		},
	}
	// BlogPostsColumns holds the columns for the "blog_posts" table.
	BlogPostsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 280},
		{Name: "description", Type: field.TypeString, Size: 500},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "author_id", Type: field.TypeUUID},
		{Name: "featured_image_key", Type: field.TypeString, Nullable: true},
		{Name: "published", Type: field.TypeBool, Default: false},
		{Name: "published_at", Type: field.TypeTime, Nullable: true},
	}
	// BlogPostsTable holds the schema information for the "blog_posts" table.
	BlogPostsTable = &schema.Table{
		Name:       "blog_posts",
		Columns:    BlogPostsColumns,
		PrimaryKey: []*schema.Column{BlogPostsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "blogpost_published_published_at",
				Unique:  false,
				Columns: []*schema.Column{BlogPostsColumns[9], BlogPostsColumns[10]},
			},
			{
				Name:    "blogpost_author_id",
				Unique:  false,
				Columns: []*schema.Column{BlogPostsColumns[7]},
			},
		},
	}
	// LabResultsColumns holds the columns for the "lab_results" table.
	LabResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "test_request_id", Type: field.TypeUUID},
		{Name: "lab_scientist_id", Type: field.TypeUUID},
		{Name: "test_name", Type: field.TypeString, Size: 255},
		{Name: "result", Type: field.TypeString, Size: 2147483647},
		{Name: "units", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "reference_range", Type: field.TypeString, Nullable: true, Size: 100},
	}
	// LabResultsTable holds the schema information for the "lab_results" table.
	LabResultsTable = &schema.Table{
		Name:       "lab_results",
		Columns:    LabResultsColumns,
		PrimaryKey: []*schema.Column{LabResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "labresult_test_request_id",
				Unique:  false,
				Columns: []*schema.Column{LabResultsColumns[2]},
			},
		},
	}
	// MedicalReportsColumns holds the columns for the "medical_reports" table.
	MedicalReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "appointment_id", Type: field.TypeUUID, Unique: true},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "medical_condition", Type: field.TypeString, Size: 2147483647},
		{Name: "drug_prescription", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "advice", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "next_appointment", Type: field.TypeTime, Nullable: true},
	}
	// MedicalReportsTable holds the schema information for the "medical_reports" table.
	MedicalReportsTable = &schema.Table{
		Name:       "medical_reports",
		Columns:    MedicalReportsColumns,
		PrimaryKey: []*schema.Column{MedicalReportsColumns[0]},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
		{Name: "full_name", Type: field.TypeString, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "gender", Type: field.TypeEnum, Nullable: true, Enums: []string{"M", "F", "O"}},
		{Name: "picture_key", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"PATIENT", "DOCTOR", "NURSE", "LAB", "ADMIN"}},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "profile_role_active",
				Unique:  false,
				Columns: []*schema.Column{ProfilesColumns[8], ProfilesColumns[9]},
			},
		},
	}
	// TestRequestsColumns holds the columns for the "test_requests" table.
	TestRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "appointment_id", Type: field.TypeUUID},
		{Name: "requested_by", Type: field.TypeUUID},
		{Name: "assigned_to", Type: field.TypeUUID, Nullable: true},
		{Name: "tests", Type: field.TypeJSON},
		{Name: "note", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "IN_PROGRESS", "DONE", "CANCELLED"}, Default: "PENDING"},
	}
	// TestRequestsTable holds the schema information for the "test_requests" table.
	TestRequestsTable = &schema.Table{
		Name:       "test_requests",
		Columns:    TestRequestsColumns,
		PrimaryKey: []*schema.Column{TestRequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "testrequest_appointment_id_status",
				Unique:  false,
				Columns: []*schema.Column{TestRequestsColumns[3], TestRequestsColumns[8]},
			},
			{
				Name:    "testrequest_assigned_to_status",
				Unique:  false,
				Columns: []*schema.Column{TestRequestsColumns[5], TestRequestsColumns[8]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "google_id", Type: field.TypeString, Unique: true, Nullable: true, Size: 64},
		{Name: "google_refresh_token_enc", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ACTIVE", "SUSPENDED"}, Default: "ACTIVE"},
		{Name: "email_verified", Type: field.TypeBool, Default: false},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_login_attempts", Type: field.TypeInt, Default: 0},
		{Name: "locked_until", Type: field.TypeTime, Nullable: true},
		{Name: "last_failed_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// VitalRequestsColumns holds the columns for the "vital_requests" table.
	VitalRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "appointment_id", Type: field.TypeUUID},
		{Name: "requested_by", Type: field.TypeUUID},
		{Name: "assigned_to", Type: field.TypeUUID, Nullable: true},
		{Name: "note", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "IN_PROGRESS", "DONE", "CANCELLED"}, Default: "PENDING"},
	}
	// VitalRequestsTable holds the schema information for the "vital_requests" table.
	VitalRequestsTable = &schema.Table{
		Name:       "vital_requests",
		Columns:    VitalRequestsColumns,
		PrimaryKey: []*schema.Column{VitalRequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "vitalrequest_appointment_id_status",
				Unique:  false,
				Columns: []*schema.Column{VitalRequestsColumns[3], VitalRequestsColumns[7]},
			},
			{
				Name:    "vitalrequest_assigned_to_status",
				Unique:  false,
				Columns: []*schema.Column{VitalRequestsColumns[5], VitalRequestsColumns[7]},
			},
		},
	}
	// VitalsColumns holds the columns for the "vitals" table.
	VitalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "vital_request_id", Type: field.TypeUUID},
		{Name: "nurse_id", Type: field.TypeUUID},
		{Name: "blood_pressure", Type: field.TypeString, Size: 20},
		{Name: "respiration_rate", Type: field.TypeFloat64},
		{Name: "pulse_rate", Type: field.TypeFloat64},
		{Name: "body_temperature", Type: field.TypeFloat64},
		{Name: "height_cm", Type: field.TypeFloat64, Nullable: true},
		{Name: "weight_kg", Type: field.TypeFloat64, Nullable: true},
	}
	// VitalsTable holds the schema information for the "vitals" table.
	VitalsTable = &schema.Table{
		Name:       "vitals",
		Columns:    VitalsColumns,
		PrimaryKey: []*schema.Column{VitalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "vitals_vital_request_id",
				Unique:  false,
				Columns: []*schema.Column{VitalsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		BlogPostsTable,
		LabResultsTable,
		MedicalReportsTable,
		ProfilesTable,
		TestRequestsTable,
		UsersTable,
		VitalRequestsTable,
		VitalsTable,
	}
)

func init() {
}
