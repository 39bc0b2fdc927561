package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// SuperAdmin: god mode
		{RoleSysSuperAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},
	}

	// Hospital-level policies (domain: hospital)
	hospitalPolicies := []PermissionPolicy{
		// Patient: book and follow own appointments, read the public staff list
		{RolePatient, DomainHospital, ResourceAppointment, ActionCreate, EffectAllow},
		{RolePatient, DomainHospital, ResourceAppointment, ActionRead, EffectAllow},
		{RolePatient, DomainHospital, ResourceAppointment, ActionList, EffectAllow},
		{RolePatient, DomainHospital, ResourceAppointment, ActionCancel, EffectAllow},
		{RolePatient, DomainHospital, ResourceMedicalReport, ActionRead, EffectAllow},
		{RolePatient, DomainHospital, ResourceStaff, ActionList, EffectAllow},

		// Doctor: drive the clinical workflow
		{RoleDoctor, DomainHospital, ResourceAppointment, ActionRead, EffectAllow},
		{RoleDoctor, DomainHospital, ResourceAppointment, ActionList, EffectAllow},
		{RoleDoctor, DomainHospital, ResourceAppointment, ActionCancel, EffectAllow},
		{RoleDoctor, DomainHospital, ResourceTestRequest, ActionCreate, EffectAllow},
		{RoleDoctor, DomainHospital, ResourceTestRequest, ActionRead, EffectAllow},
		{RoleDoctor, DomainHospital, ResourceTestRequest, ActionList, EffectAllow},
		{RoleDoctor, DomainHospital, ResourceVitalRequest, ActionCreate, EffectAllow},
		{RoleDoctor, DomainHospital, ResourceVitalRequest, ActionRead, EffectAllow},
		{RoleDoctor, DomainHospital, ResourceVitalRequest, ActionList, EffectAllow},
		{RoleDoctor, DomainHospital, ResourceVitals, ActionRead, EffectAllow},
		{RoleDoctor, DomainHospital, ResourceLabResult, ActionRead, EffectAllow},
		{RoleDoctor, DomainHospital, ResourceMedicalReport, ActionCreate, EffectAllow},
		{RoleDoctor, DomainHospital, ResourceMedicalReport, ActionRead, EffectAllow},
		{RoleDoctor, DomainHospital, ResourceStaff, ActionList, EffectAllow},
		{RoleDoctor, DomainHospital, ResourceProfile, ActionList, EffectAllow},

		// Nurse: record vitals on assigned requests
		{RoleNurse, DomainHospital, ResourceVitalRequest, ActionRead, EffectAllow},
		{RoleNurse, DomainHospital, ResourceVitalRequest, ActionList, EffectAllow},
		{RoleNurse, DomainHospital, ResourceVitals, ActionCreate, EffectAllow},
		{RoleNurse, DomainHospital, ResourceVitals, ActionRead, EffectAllow},
		{RoleNurse, DomainHospital, ResourceStaff, ActionList, EffectAllow},

		// Lab scientist: record results on assigned requests
		{RoleLab, DomainHospital, ResourceTestRequest, ActionRead, EffectAllow},
		{RoleLab, DomainHospital, ResourceTestRequest, ActionList, EffectAllow},
		{RoleLab, DomainHospital, ResourceLabResult, ActionCreate, EffectAllow},
		{RoleLab, DomainHospital, ResourceLabResult, ActionRead, EffectAllow},
		{RoleLab, DomainHospital, ResourceStaff, ActionList, EffectAllow},

		// Admin: everything in the hospital domain plus content
		{RoleAdmin, DomainHospital, WildcardResource, ActionManage, EffectAllow},
		{RoleAdmin, DomainHospital, ResourceBlogPost, ActionPublish, EffectAllow},
		{RoleAdmin, DomainHospital, ResourceAppointment, ActionCancel, EffectAllow},
	}

	// User-level policies (domain: user:*)
	userPolicies := []PermissionPolicy{
		// UserSelf: full control over own resources
		{RoleUserSelf, WildcardDomain, ResourceProfile, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceAuthSession, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceFile, ActionCreate, EffectAllow},
	}

	allPolicies := append(append(sysPolicies, hospitalPolicies...), userPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignUserSelfRole assigns the user:self role in the user's private domain.
// Call this when creating a new user.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, userID string) error {
	domain := UserDomain(userID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	return err
}

// AssignHospitalRole assigns a hospital role to a user based on the
// profile's role column. Call this when provisioning a profile.
func AssignHospitalRole(ctx context.Context, auth IAuthorization, userID, profileRole string) error {
	role, ok := ProfileRoleToRBACRole[profileRole]
	if !ok {
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, DomainHospital)
	return err
}

// RemoveHospitalRole removes a hospital role from a user. Used when a
// profile is deactivated or its account suspended.
func RemoveHospitalRole(ctx context.Context, auth IAuthorization, userID, profileRole string) error {
	role, ok := ProfileRoleToRBACRole[profileRole]
	if !ok {
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, DomainHospital)
	return err
}

// GetHospitalRoles returns all hospital-domain roles a user holds.
func GetHospitalRoles(ctx context.Context, auth IAuthorization, userID string) ([]Role, error) {
	subject := GroupSubject(userID)
	return auth.GetRolesForUserInDomain(ctx, subject, DomainHospital)
}

// AssignSystemRole assigns a system-level role to a user.
// Note: RoleSysSuperAdmin should be assigned manually/carefully.
func AssignSystemRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	if role != RoleSysSuperAdmin {
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}

// RemoveSystemRole removes a system-level role from a user.
func RemoveSystemRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	subject := GroupSubject(userID)
	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}
