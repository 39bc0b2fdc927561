package authorize

import (
	"fmt"
	"regexp"
)

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power actions
	ActionManage  Action = "manage"  // CRUD + list
	ActionExecute Action = "execute" // run, trigger, start, stop, etc.

	// Lifecycle actions
	ActionCancel  Action = "cancel"
	ActionPublish Action = "publish"

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage: {}, ActionExecute: {},
	ActionCancel: {}, ActionPublish: {},
	ActionGrant: {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity / auth
	ResourceUser        Resource = "user"
	ResourceProfile     Resource = "profile"
	ResourceAuthSession Resource = "auth_session"

	// Clinical workflow
	ResourceAppointment   Resource = "appointment"
	ResourceTestRequest   Resource = "test_request"
	ResourceVitalRequest  Resource = "vital_request"
	ResourceVitals        Resource = "vitals"
	ResourceLabResult     Resource = "lab_result"
	ResourceMedicalReport Resource = "medical_report"

	// Staff directory
	ResourceStaff Resource = "staff"

	// Content
	ResourceBlogPost Resource = "blog_post"
	ResourceFile     Resource = "file"

	// System / platform admin
	ResourceSystem Resource = "system"
	ResourceAudit  Resource = "audit"
	ResourceRBAC   Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceUser: {}, ResourceProfile: {}, ResourceAuthSession: {},
	ResourceAppointment: {}, ResourceTestRequest: {}, ResourceVitalRequest: {},
	ResourceVitals: {}, ResourceLabResult: {}, ResourceMedicalReport: {},
	ResourceStaff:    {},
	ResourceBlogPost: {}, ResourceFile: {},
	ResourceSystem: {}, ResourceAudit: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.

const (
	WildcardRole Role = "*"

	// Platform role (domain = sys)
	RoleSysSuperAdmin Role = "role:sys:superadmin"

	// Hospital roles (domain = hospital)
	RolePatient Role = "role:hospital:patient"
	RoleDoctor  Role = "role:hospital:doctor"
	RoleNurse   Role = "role:hospital:nurse"
	RoleLab     Role = "role:hospital:lab"
	RoleAdmin   Role = "role:hospital:admin"

	// Private user scope (domain = user:<uuid>)
	RoleUserSelf Role = "role:user:self"
)

var KnownRoles = map[Role]struct{}{
	RoleSysSuperAdmin: {},
	RolePatient:       {},
	RoleDoctor:        {},
	RoleNurse:         {},
	RoleLab:           {},
	RoleAdmin:         {},
	RoleUserSelf:      {},
}

// Profile role strings (stored in DB profiles.role column)
const (
	ProfileRolePatient = "PATIENT"
	ProfileRoleDoctor  = "DOCTOR"
	ProfileRoleNurse   = "NURSE"
	ProfileRoleLab     = "LAB"
	ProfileRoleAdmin   = "ADMIN"
)

// ProfileRoleToRBACRole maps DB role values to Casbin roles
var ProfileRoleToRBACRole = map[string]Role{
	ProfileRolePatient: RolePatient,
	ProfileRoleDoctor:  RoleDoctor,
	ProfileRoleNurse:   RoleNurse,
	ProfileRoleLab:     RoleLab,
	ProfileRoleAdmin:   RoleAdmin,
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys      Domain = "sys"
	DomainHospital Domain = "hospital"
)

// Domain prefixes (for exact domains we generate per entity)
const (
	DomainPrefixUser Domain = "user:"
)

const (
	WildcardDomain Domain = "*"
)

var (
	reUUID = regexp.MustCompile(`^[0-9a-fA-F-]{36}$`)
)

// Domain builders (typed, safe)
func UserDomain(userID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixUser, userID))
}

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	if d == DomainSys || d == DomainHospital || d == WildcardDomain {
		return true
	}

	s := string(d)
	if len(s) > len(DomainPrefixUser) && s[:len(DomainPrefixUser)] == string(DomainPrefixUser) {
		return reUUID.MatchString(s[len(DomainPrefixUser):])
	}
	return false
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// PolicySubject is the p.sub in Casbin: either a role (preferred) or a user/service id.
type PolicySubject string

// GroupSubject is the g.sub in Casbin: a concrete principal id (user_id or service_id).
type GroupSubject string

// Grouping rows: g, user_id, role, domain
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
	Domain  Domain
}

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
