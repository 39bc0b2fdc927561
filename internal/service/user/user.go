package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/medreach/hospital_backend/config"
	"github.com/medreach/hospital_backend/internal/repo"
	entprofile "github.com/medreach/hospital_backend/internal/repo/profile"
	entuser "github.com/medreach/hospital_backend/internal/repo/user"
	"github.com/medreach/hospital_backend/pkg/authorize"
	"github.com/medreach/hospital_backend/pkg/email"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ProvisionRequest struct {
	UserID   uuid.UUID
	FullName string
	Role     entprofile.Role
	Phone    *string
	Region   string // ISO 3166-1 alpha-2, defaults to "US"
}

type UpdateProfileRequest struct {
	FullName   *string
	Phone      *string
	Region     string
	Gender     *string
	PictureKey *string
}

type ListPatientsRequest struct {
	Search  *string
	Page    int
	PerPage int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error)
	GetByEmail(ctx context.Context, email string) (*repo.User, error)

	// ProvisionProfile creates the operational profile for a user and grants
	// the matching RBAC roles. One profile per user.
	ProvisionProfile(ctx context.Context, req ProvisionRequest) (*repo.Profile, error)

	GetProfile(ctx context.Context, profileID uuid.UUID) (*repo.Profile, error)
	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*repo.Profile, error)
	UpdateProfile(ctx context.Context, profileID uuid.UUID, req UpdateProfileRequest) (*repo.Profile, error)

	ListPatients(ctx context.Context, req ListPatientsRequest) ([]*repo.Profile, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type userService struct {
	db          *repo.Client
	emailClient *email.Client
	cfg         *config.Config
	authz       authorize.IAuthorization
}

func New(db *repo.Client, emailClient *email.Client, cfg *config.Config, authz authorize.IAuthorization) Service {
	return &userService{
		db:          db,
		emailClient: emailClient,
		cfg:         cfg,
		authz:       authz,
	}
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(
			entuser.ID(id),
			entuser.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *userService) GetByEmail(ctx context.Context, addr string) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(
			entuser.EmailEQ(strings.ToLower(strings.TrimSpace(addr))),
			entuser.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

func (s *userService) ProvisionProfile(ctx context.Context, req ProvisionRequest) (*repo.Profile, error) {
	name := strings.TrimSpace(req.FullName)
	if name == "" || len(name) > 255 {
		return nil, ErrInvalidFullName
	}
	if !validProfileRole(req.Role) {
		return nil, ErrInvalidRole
	}

	u, err := s.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	exists, err := s.db.Profile.Query().
		Where(entprofile.UserID(req.UserID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check existing profile: %w", err)
	}
	if exists {
		return nil, ErrProfileExists
	}

	c := s.db.Profile.Create().
		SetUserID(req.UserID).
		SetFullName(name).
		SetRole(req.Role)

	if req.Phone != nil {
		normalized, err := normalizePhone(*req.Phone, req.Region)
		if err != nil {
			return nil, err
		}
		c = c.SetPhone(normalized)
	}

	p, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrProfileExists
		}
		return nil, fmt.Errorf("create profile: %w", err)
	}

	if err := s.grantRoles(ctx, req.UserID, req.Role); err != nil {
		// Profile exists but grants failed; surface it, callers can retry.
		return nil, fmt.Errorf("grant roles: %w", err)
	}

	s.sendWelcomeEmail(ctx, u.Email, name)

	return p, nil
}

func (s *userService) GetProfile(ctx context.Context, profileID uuid.UUID) (*repo.Profile, error) {
	p, err := s.db.Profile.Query().
		Where(entprofile.ID(profileID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

func (s *userService) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*repo.Profile, error) {
	p, err := s.db.Profile.Query().
		Where(entprofile.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile by user: %w", err)
	}
	return p, nil
}

func (s *userService) UpdateProfile(ctx context.Context, profileID uuid.UUID, req UpdateProfileRequest) (*repo.Profile, error) {
	upd := s.db.Profile.UpdateOneID(profileID)

	if req.FullName != nil {
		name := strings.TrimSpace(*req.FullName)
		if name == "" || len(name) > 255 {
			return nil, ErrInvalidFullName
		}
		upd = upd.SetFullName(name)
	}
	if req.Phone != nil {
		if *req.Phone == "" {
			upd = upd.ClearPhone()
		} else {
			normalized, err := normalizePhone(*req.Phone, req.Region)
			if err != nil {
				return nil, err
			}
			upd = upd.SetPhone(normalized)
		}
	}
	if req.Gender != nil {
		upd = upd.SetGender(entprofile.Gender(*req.Gender))
	}
	if req.PictureKey != nil {
		upd = upd.SetPictureKey(*req.PictureKey)
	}

	p, err := upd.Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return p, nil
}

func (s *userService) ListPatients(ctx context.Context, req ListPatientsRequest) ([]*repo.Profile, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Profile.Query().
		Where(entprofile.RoleEQ(entprofile.RolePATIENT))

	if req.Search != nil && strings.TrimSpace(*req.Search) != "" {
		q = q.Where(entprofile.FullNameContainsFold(strings.TrimSpace(*req.Search)))
	}

	patients, err := q.
		Order(entprofile.ByFullName(sql.OrderAsc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validProfileRole(role entprofile.Role) bool {
	switch role {
	case entprofile.RolePATIENT, entprofile.RoleDOCTOR, entprofile.RoleNURSE,
		entprofile.RoleLAB, entprofile.RoleADMIN:
		return true
	}
	return false
}

// normalizePhone validates the number against the given region and returns
// the E.164 form. Region defaults to US.
func normalizePhone(raw, region string) (string, error) {
	if region == "" {
		region = "US"
	}
	num, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return "", ErrInvalidPhone
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

func (s *userService) grantRoles(ctx context.Context, userID uuid.UUID, role entprofile.Role) error {
	id := userID.String()
	if err := authorize.AssignUserSelfRole(ctx, s.authz, id); err != nil {
		return err
	}
	return authorize.AssignHospitalRole(ctx, s.authz, id, string(role))
}

// sendWelcomeEmail is best effort: provisioning never fails on SMTP trouble.
func (s *userService) sendWelcomeEmail(ctx context.Context, addr, fullName string) {
	if s.emailClient == nil {
		return
	}

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 15*time.Second)
	defer cancel()

	msg := email.BuildWelcomeEmail(email.WelcomeEmailData{
		FullName: fullName,
		Email:    addr,
		AppName:  "MedReach",
		BaseURL:  s.cfg.Server.BaseURL,
	})
	if err := s.emailClient.Send(sendCtx, msg); err != nil {
		slog.WarnContext(ctx, "welcome email failed", "error", err, "email", addr)
	}
}
