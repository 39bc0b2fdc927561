package auth

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/medreach/hospital_backend/config"
	"github.com/medreach/hospital_backend/internal/repo"
	entprofile "github.com/medreach/hospital_backend/internal/repo/profile"
	entuser "github.com/medreach/hospital_backend/internal/repo/user"
	"github.com/medreach/hospital_backend/internal/service/user"
	"github.com/medreach/hospital_backend/pkg/crypto"
	"github.com/medreach/hospital_backend/pkg/token"
	"github.com/medreach/hospital_backend/pkg/util/password"
)

const (
	defaultMaxLoginAttempts = 5
	defaultLockoutMinutes   = 15
)

// redisKeySession returns the Redis key holding the session owner.
func redisKeySession(sessionID string) string { return "session:" + sessionID }

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type RegisterRequest struct {
	Email    string
	Password string
	FullName string
	Phone    *string
	Region   string
}

type LoginRequest struct {
	Email    string
	Password string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until access token expires
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Register self-registers a patient account and returns a live session.
	// Staff accounts are provisioned by admins, never through this path.
	Register(ctx context.Context, req RegisterRequest) (*AuthTokens, error)

	Login(ctx context.Context, req LoginRequest) (*AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error

	// GoogleAuthURL returns the consent page URL for the given CSRF state.
	GoogleAuthURL(state string) (string, error)

	// GoogleCallback exchanges the authorization code, finds or creates the
	// account, and returns a live session.
	GoogleCallback(ctx context.Context, code string) (*AuthTokens, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db     *repo.Client
	rdb    *redis.Client
	tokens *token.Manager
	users  user.Service
	cfg    *config.Config
	encKey []byte // AES-256 key for provider refresh tokens at rest

	// overridable in tests
	fetchGoogleProfile func(ctx context.Context, code string) (*googleProfile, *string, error)
}

func New(
	db *repo.Client,
	rdb *redis.Client,
	tokens *token.Manager,
	users user.Service,
	cfg *config.Config,
) (Service, error) {
	encKey, err := crypto.KeyFromHex(cfg.Authentication.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("auth service: invalid encryption key: %w", err)
	}
	s := &authService{
		db:     db,
		rdb:    rdb,
		tokens: tokens,
		users:  users,
		cfg:    cfg,
		encKey: encKey,
	}
	s.fetchGoogleProfile = s.exchangeGoogleCode
	return s, nil
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*AuthTokens, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FullName = strings.TrimSpace(req.FullName)

	if !reEmail.MatchString(req.Email) {
		return nil, ErrInvalidEmail
	}
	if req.FullName == "" {
		return nil, ErrInvalidFullName
	}
	if len(req.Password) < 8 {
		return nil, ErrPasswordTooShort
	}

	exists, err := s.db.User.Query().
		Where(entuser.EmailEQ(req.Email), entuser.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	passHash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.db.User.Create().
		SetEmail(req.Email).
		SetPasswordHash(passHash).
		SetStatus(entuser.StatusACTIVE).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	p, err := s.users.ProvisionProfile(ctx, user.ProvisionRequest{
		UserID:   u.ID,
		FullName: req.FullName,
		Role:     entprofile.RolePATIENT,
		Phone:    req.Phone,
		Region:   req.Region,
	})
	if err != nil {
		return nil, err
	}

	return s.createSession(ctx, u, p)
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthTokens, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	u, err := s.db.User.Query().
		Where(entuser.EmailEQ(req.Email), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if u.Status == entuser.StatusSUSPENDED {
		return nil, ErrAccountSuspended
	}
	if u.LockedUntil != nil && time.Now().Before(*u.LockedUntil) {
		return nil, ErrAccountLocked
	}

	// Social-only accounts have no password to verify.
	if u.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}
	if err := password.Verify(*u.PasswordHash, req.Password); err != nil {
		s.recordFailedLogin(ctx, u)
		return nil, ErrInvalidCredentials
	}

	if err := s.db.User.UpdateOne(u).
		SetFailedLoginAttempts(0).
		ClearLockedUntil().
		SetLastLoginAt(time.Now()).
		Exec(ctx); err != nil {
		// The login itself succeeded; only the bookkeeping is stale.
		slog.WarnContext(ctx, "login: failed to reset attempt counters",
			"user_id", u.ID, "error", err)
	}

	p, err := s.users.GetProfileByUserID(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	return s.createSession(ctx, u, p)
}

// ---------------------------------------------------------------------------
// RefreshTokens
// ---------------------------------------------------------------------------

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.tokens.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != token.TokenTypeRefresh || claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())

	if err := s.rdb.Get(ctx, sessionKey).Err(); err == redis.Nil {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	// Extend the session; the refresh token itself is reused until logout.
	s.rdb.Expire(ctx, sessionKey, s.refreshTTL())

	access, err := s.tokens.IssueAccess(token.Identity{
		UserID:    claims.UserID,
		ProfileID: claims.ProfileID,
		Role:      claims.Role,
		SessionID: claims.SessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessTTL().Seconds()),
	}, nil
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		// Already expired. Not an error from the client's perspective.
		slog.DebugContext(ctx, "logout: session already gone", "session_id", sessionID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *authService) createSession(ctx context.Context, u *repo.User, p *repo.Profile) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())

	sessionKey := redisKeySession(sessionID.String())
	if err := s.rdb.Set(ctx, sessionKey, u.ID.String(), s.refreshTTL()).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	id := token.Identity{
		UserID:    u.ID,
		ProfileID: p.ID,
		Role:      string(p.Role),
		SessionID: &sessionID,
	}

	access, err := s.tokens.IssueAccess(id)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.tokens.IssueRefresh(id)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.accessTTL().Seconds()),
	}, nil
}

func (s *authService) recordFailedLogin(ctx context.Context, u *repo.User) {
	attempts := u.FailedLoginAttempts + 1
	upd := s.db.User.UpdateOne(u).
		SetFailedLoginAttempts(attempts).
		SetLastFailedLoginAt(time.Now())

	maxAttempts := s.cfg.Authentication.MaxLoginAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxLoginAttempts
	}
	if attempts >= maxAttempts {
		lockMins := s.cfg.Authentication.LockoutMinutes
		if lockMins <= 0 {
			lockMins = defaultLockoutMinutes
		}
		upd = upd.SetLockedUntil(time.Now().Add(time.Duration(lockMins) * time.Minute))
	}
	if err := upd.Exec(ctx); err != nil {
		// A lost write here silently disables the lockout. Make it visible.
		slog.WarnContext(ctx, "login: failed to record failed attempt",
			"user_id", u.ID, "error", err)
	}
}

func (s *authService) accessTTL() time.Duration {
	m := s.cfg.Authentication.JWT.AccessTTLMinutes
	if m <= 0 {
		m = 15
	}
	return time.Duration(m) * time.Minute
}

func (s *authService) refreshTTL() time.Duration {
	d := s.cfg.Authentication.JWT.RefreshTTLDays
	if d <= 0 {
		d = 30
	}
	return time.Duration(d) * 24 * time.Hour
}
