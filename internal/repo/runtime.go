// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/medreach/hospital_backend/internal/repo/appointment"
	"github.com/medreach/hospital_backend/internal/repo/blogpost"
	"github.com/medreach/hospital_backend/internal/repo/labresult"
	"github.com/medreach/hospital_backend/internal/repo/medicalreport"
	"github.com/medreach/hospital_backend/internal/repo/profile"
	"github.com/medreach/hospital_backend/internal/repo/testrequest"
	"github.com/medreach/hospital_backend/internal/repo/user"
	"github.com/medreach/hospital_backend/internal/repo/vitalrequest"
	"github.com/medreach/hospital_backend/internal/repo/vitals"
	"github.com/medreach/hospital_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescName is the schema descriptor for name field.
	appointmentDescName := appointmentFields[2].Descriptor()
	// appointment.NameValidator is a validator for the "name" field. It is called by the builders before save.
	appointment.NameValidator = appointmentDescName.Validators[0].(func(string) error)
	// appointmentDescAge is the schema descriptor for age field.
	appointmentDescAge := appointmentFields[3].Descriptor()
	// appointment.AgeValidator is a validator for the "age" field. It is called by the builders before save.
	appointment.AgeValidator = appointmentDescAge.Validators[0].(func(int) error)
	// appointmentDescAddress is the schema descriptor for address field.
	appointmentDescAddress := appointmentFields[5].Descriptor()
	// appointment.AddressValidator is a validator for the "address" field. It is called by the builders before save.
	appointment.AddressValidator = appointmentDescAddress.Validators[0].(func(string) error)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	blogpostMixin := schema.BlogPost{}.Mixin()
	blogpostMixinFields0 := blogpostMixin[0].Fields()
	_ = blogpostMixinFields0
	blogpostMixinFields1 := blogpostMixin[1].Fields()
	_ = blogpostMixinFields1
	blogpostFields := schema.BlogPost{}.Fields()
	_ = blogpostFields
	// blogpostDescCreatedAt is the schema descriptor for created_at field.
	blogpostDescCreatedAt := blogpostMixinFields1[0].Descriptor()
	// blogpost.DefaultCreatedAt holds the default value on creation for the created_at field.
	blogpost.DefaultCreatedAt = blogpostDescCreatedAt.Default.(func() time.Time)
	// blogpostDescUpdatedAt is the schema descriptor for updated_at field.
	blogpostDescUpdatedAt := blogpostMixinFields1[1].Descriptor()
	// blogpost.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	blogpost.DefaultUpdatedAt = blogpostDescUpdatedAt.Default.(func() time.Time)
	// blogpost.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	blogpost.UpdateDefaultUpdatedAt = blogpostDescUpdatedAt.UpdateDefault.(func() time.Time)
	// blogpostDescTitle is the schema descriptor for title field.
	blogpostDescTitle := blogpostFields[0].Descriptor()
	// blogpost.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	blogpost.TitleValidator = blogpostDescTitle.Validators[0].(func(string) error)
	// blogpostDescSlug is the schema descriptor for slug field.
	blogpostDescSlug := blogpostFields[1].Descriptor()
	// blogpost.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	blogpost.SlugValidator = blogpostDescSlug.Validators[0].(func(string) error)
	// blogpostDescDescription is the schema descriptor for description field.
	blogpostDescDescription := blogpostFields[2].Descriptor()
	// blogpost.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	blogpost.DescriptionValidator = blogpostDescDescription.Validators[0].(func(string) error)
	// blogpostDescPublished is the schema descriptor for published field.
	blogpostDescPublished := blogpostFields[6].Descriptor()
	// blogpost.DefaultPublished holds the default value on creation for the published field.
	blogpost.DefaultPublished = blogpostDescPublished.Default.(bool)
	// blogpostDescID is the schema descriptor for id field.
	blogpostDescID := blogpostMixinFields0[0].Descriptor()
	// blogpost.DefaultID holds the default value on creation for the id field.
	blogpost.DefaultID = blogpostDescID.Default.(func() uuid.UUID)
	labresultMixin := schema.LabResult{}.Mixin()
	labresultMixinFields0 := labresultMixin[0].Fields()
	_ = labresultMixinFields0
	labresultMixinFields1 := labresultMixin[1].Fields()
	_ = labresultMixinFields1
	labresultFields := schema.LabResult{}.Fields()
	_ = labresultFields
	// labresultDescCreatedAt is the schema descriptor for created_at field.
	labresultDescCreatedAt := labresultMixinFields1[0].Descriptor()
	// labresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	labresult.DefaultCreatedAt = labresultDescCreatedAt.Default.(func() time.Time)
	// labresultDescTestName is the schema descriptor for test_name field.
	labresultDescTestName := labresultFields[2].Descriptor()
	// labresult.TestNameValidator is a validator for the "test_name" field. It is called by the builders before save.
	labresult.TestNameValidator = labresultDescTestName.Validators[0].(func(string) error)
	// labresultDescUnits is the schema descriptor for units field.
	labresultDescUnits := labresultFields[4].Descriptor()
	// labresult.UnitsValidator is a validator for the "units" field. It is called by the builders before save.
	labresult.UnitsValidator = labresultDescUnits.Validators[0].(func(string) error)
	// labresultDescReferenceRange is the schema descriptor for reference_range field.
	labresultDescReferenceRange := labresultFields[5].Descriptor()
	// labresult.ReferenceRangeValidator is a validator for the "reference_range" field. It is called by the builders before save.
	labresult.ReferenceRangeValidator = labresultDescReferenceRange.Validators[0].(func(string) error)
	// labresultDescID is the schema descriptor for id field.
	labresultDescID := labresultMixinFields0[0].Descriptor()
	// labresult.DefaultID holds the default value on creation for the id field.
	labresult.DefaultID = labresultDescID.Default.(func() uuid.UUID)
	medicalreportMixin := schema.MedicalReport{}.Mixin()
	medicalreportMixinFields0 := medicalreportMixin[0].Fields()
	_ = medicalreportMixinFields0
	medicalreportMixinFields1 := medicalreportMixin[1].Fields()
	_ = medicalreportMixinFields1
	medicalreportFields := schema.MedicalReport{}.Fields()
	_ = medicalreportFields
	// medicalreportDescCreatedAt is the schema descriptor for created_at field.
	medicalreportDescCreatedAt := medicalreportMixinFields1[0].Descriptor()
	// medicalreport.DefaultCreatedAt holds the default value on creation for the created_at field.
	medicalreport.DefaultCreatedAt = medicalreportDescCreatedAt.Default.(func() time.Time)
	// medicalreportDescID is the schema descriptor for id field.
	medicalreportDescID := medicalreportMixinFields0[0].Descriptor()
	// medicalreport.DefaultID holds the default value on creation for the id field.
	medicalreport.DefaultID = medicalreportDescID.Default.(func() uuid.UUID)
	profileMixin := schema.Profile{}.Mixin()
	profileMixinFields0 := profileMixin[0].Fields()
	_ = profileMixinFields0
	profileMixinFields1 := profileMixin[1].Fields()
	_ = profileMixinFields1
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileMixinFields1[0].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileMixinFields1[1].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// profileDescFullName is the schema descriptor for full_name field.
	profileDescFullName := profileFields[1].Descriptor()
	// profile.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	profile.FullNameValidator = profileDescFullName.Validators[0].(func(string) error)
	// profileDescPhone is the schema descriptor for phone field.
	profileDescPhone := profileFields[2].Descriptor()
	// profile.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	profile.PhoneValidator = profileDescPhone.Validators[0].(func(string) error)
	// profileDescActive is the schema descriptor for active field.
	profileDescActive := profileFields[6].Descriptor()
	// profile.DefaultActive holds the default value on creation for the active field.
	profile.DefaultActive = profileDescActive.Default.(bool)
	// profileDescID is the schema descriptor for id field.
	profileDescID := profileMixinFields0[0].Descriptor()
	// profile.DefaultID holds the default value on creation for the id field.
	profile.DefaultID = profileDescID.Default.(func() uuid.UUID)
	testrequestMixin := schema.TestRequest{}.Mixin()
	testrequestMixinFields0 := testrequestMixin[0].Fields()
	_ = testrequestMixinFields0
	testrequestMixinFields1 := testrequestMixin[1].Fields()
	_ = testrequestMixinFields1
	testrequestFields := schema.TestRequest{}.Fields()
	_ = testrequestFields
	// testrequestDescCreatedAt is the schema descriptor for created_at field.
	testrequestDescCreatedAt := testrequestMixinFields1[0].Descriptor()
	// testrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	testrequest.DefaultCreatedAt = testrequestDescCreatedAt.Default.(func() time.Time)
	// testrequestDescUpdatedAt is the schema descriptor for updated_at field.
	testrequestDescUpdatedAt := testrequestMixinFields1[1].Descriptor()
	// testrequest.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	testrequest.DefaultUpdatedAt = testrequestDescUpdatedAt.Default.(func() time.Time)
	// testrequest.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	testrequest.UpdateDefaultUpdatedAt = testrequestDescUpdatedAt.UpdateDefault.(func() time.Time)
	// testrequestDescID is the schema descriptor for id field.
	testrequestDescID := testrequestMixinFields0[0].Descriptor()
	// testrequest.DefaultID holds the default value on creation for the id field.
	testrequest.DefaultID = testrequestDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescGoogleID is the schema descriptor for google_id field.
	userDescGoogleID := userFields[2].Descriptor()
	// user.GoogleIDValidator is a validator for the "google_id" field. It is called by the builders before save.
	user.GoogleIDValidator = userDescGoogleID.Validators[0].(func(string) error)
	// userDescEmailVerified is the schema descriptor for email_verified field.
	userDescEmailVerified := userFields[5].Descriptor()
	// user.DefaultEmailVerified holds the default value on creation for the email_verified field.
	user.DefaultEmailVerified = userDescEmailVerified.Default.(bool)
	// userDescFailedLoginAttempts is the schema descriptor for failed_login_attempts field.
	userDescFailedLoginAttempts := userFields[7].Descriptor()
	// user.DefaultFailedLoginAttempts holds the default value on creation for the failed_login_attempts field.
	user.DefaultFailedLoginAttempts = userDescFailedLoginAttempts.Default.(int)
	// user.FailedLoginAttemptsValidator is a validator for the "failed_login_attempts" field. It is called by the builders before save.
	user.FailedLoginAttemptsValidator = userDescFailedLoginAttempts.Validators[0].(func(int) error)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	vitalrequestMixin := schema.VitalRequest{}.Mixin()
	vitalrequestMixinFields0 := vitalrequestMixin[0].Fields()
	_ = vitalrequestMixinFields0
	vitalrequestMixinFields1 := vitalrequestMixin[1].Fields()
	_ = vitalrequestMixinFields1
	vitalrequestFields := schema.VitalRequest{}.Fields()
	_ = vitalrequestFields
	// vitalrequestDescCreatedAt is the schema descriptor for created_at field.
	vitalrequestDescCreatedAt := vitalrequestMixinFields1[0].Descriptor()
	// vitalrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	vitalrequest.DefaultCreatedAt = vitalrequestDescCreatedAt.Default.(func() time.Time)
	// vitalrequestDescUpdatedAt is the schema descriptor for updated_at field.
	vitalrequestDescUpdatedAt := vitalrequestMixinFields1[1].Descriptor()
	// vitalrequest.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	vitalrequest.DefaultUpdatedAt = vitalrequestDescUpdatedAt.Default.(func() time.Time)
	// vitalrequest.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	vitalrequest.UpdateDefaultUpdatedAt = vitalrequestDescUpdatedAt.UpdateDefault.(func() time.Time)
	// vitalrequestDescID is the schema descriptor for id field.
	vitalrequestDescID := vitalrequestMixinFields0[0].Descriptor()
	// vitalrequest.DefaultID holds the default value on creation for the id field.
	vitalrequest.DefaultID = vitalrequestDescID.Default.(func() uuid.UUID)
	vitalsMixin := schema.Vitals{}.Mixin()
	vitalsMixinFields0 := vitalsMixin[0].Fields()
	_ = vitalsMixinFields0
	vitalsMixinFields1 := vitalsMixin[1].Fields()
	_ = vitalsMixinFields1
	vitalsFields := schema.Vitals{}.Fields()
	_ = vitalsFields
	// vitalsDescCreatedAt is the schema descriptor for created_at field.
	vitalsDescCreatedAt := vitalsMixinFields1[0].Descriptor()
	// vitals.DefaultCreatedAt holds the default value on creation for the created_at field.
	vitals.DefaultCreatedAt = vitalsDescCreatedAt.Default.(func() time.Time)
	// vitalsDescBloodPressure is the schema descriptor for blood_pressure field.
	vitalsDescBloodPressure := vitalsFields[2].Descriptor()
	// vitals.BloodPressureValidator is a validator for the "blood_pressure" field. It is called by the builders before save.
	vitals.BloodPressureValidator = vitalsDescBloodPressure.Validators[0].(func(string) error)
	// vitalsDescID is the schema descriptor for id field.
	vitalsDescID := vitalsMixinFields0[0].Descriptor()
	// vitals.DefaultID holds the default value on creation for the id field.
	vitals.DefaultID = vitalsDescID.Default.(func() uuid.UUID)
}
