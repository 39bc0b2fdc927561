package staff

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/medreach/hospital_backend/internal/repo"
	entprofile "github.com/medreach/hospital_backend/internal/repo/profile"
)

// StaffRoles are the roles that can be assigned clinical work.
var StaffRoles = []entprofile.Role{
	entprofile.RoleDOCTOR,
	entprofile.RoleNURSE,
	entprofile.RoleLAB,
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// ListActive returns all active profiles holding the given staff role.
	// An empty slice is a valid result.
	ListActive(ctx context.Context, role entprofile.Role) ([]*repo.Profile, error)

	// ListStaff returns all active clinical staff regardless of role.
	ListStaff(ctx context.Context) ([]*repo.Profile, error)

	GetByID(ctx context.Context, profileID uuid.UUID) (*repo.Profile, error)

	// SetActive toggles a staff member's availability for assignment.
	SetActive(ctx context.Context, profileID uuid.UUID, active bool) error

	// Assign picks one active staff member of the given role, or nil when
	// nobody is available. A nil result is not an error.
	Assign(ctx context.Context, role entprofile.Role) (*repo.Profile, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type staffService struct {
	db     *repo.Client
	picker Picker
}

func New(db *repo.Client, picker Picker) Service {
	if picker == nil {
		picker = DefaultPicker()
	}
	return &staffService{db: db, picker: picker}
}

func (s *staffService) ListActive(ctx context.Context, role entprofile.Role) ([]*repo.Profile, error) {
	if !isStaffRole(role) {
		return nil, ErrInvalidRole
	}

	profiles, err := s.db.Profile.Query().
		Where(
			entprofile.RoleEQ(role),
			entprofile.Active(true),
		).
		Order(entprofile.ByFullName(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active staff: %w", err)
	}
	return profiles, nil
}

func (s *staffService) ListStaff(ctx context.Context) ([]*repo.Profile, error) {
	profiles, err := s.db.Profile.Query().
		Where(
			entprofile.RoleIn(StaffRoles...),
			entprofile.Active(true),
		).
		Order(entprofile.ByRole(sql.OrderAsc()), entprofile.ByFullName(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	return profiles, nil
}

func (s *staffService) GetByID(ctx context.Context, profileID uuid.UUID) (*repo.Profile, error) {
	p, err := s.db.Profile.Query().
		Where(entprofile.ID(profileID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

func (s *staffService) SetActive(ctx context.Context, profileID uuid.UUID, active bool) error {
	n, err := s.db.Profile.Update().
		Where(
			entprofile.ID(profileID),
			entprofile.RoleIn(StaffRoles...),
		).
		SetActive(active).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set staff active: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func isStaffRole(role entprofile.Role) bool {
	for _, r := range StaffRoles {
		if r == role {
			return true
		}
	}
	return false
}
