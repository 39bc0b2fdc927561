package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/casbin/casbin/v2"
	_ "github.com/mattn/go-sqlite3"

	"github.com/medreach/hospital_backend/config"
	"github.com/medreach/hospital_backend/internal/repo"
	"github.com/medreach/hospital_backend/internal/repo/enttest"
	"github.com/medreach/hospital_backend/internal/service/user"
	"github.com/medreach/hospital_backend/pkg/authorize"
	"github.com/medreach/hospital_backend/pkg/util/password"
)

// noopAuthz satisfies authorize.IAuthorization without a live enforcer.
type noopAuthz struct{}

func (noopAuthz) Enforce(context.Context, authorize.GroupSubject, authorize.Domain, authorize.Resource, authorize.Action) (bool, error) {
	return true, nil
}
func (noopAuthz) MustEnforce(context.Context, authorize.GroupSubject, authorize.Domain, authorize.Resource, authorize.Action) error {
	return nil
}
func (noopAuthz) AddRoleForUserInDomain(context.Context, authorize.GroupSubject, authorize.Role, authorize.Domain) (bool, error) {
	return true, nil
}
func (noopAuthz) RemoveRoleForUserInDomain(context.Context, authorize.GroupSubject, authorize.Role, authorize.Domain) (bool, error) {
	return true, nil
}
func (noopAuthz) GetRolesForUserInDomain(context.Context, authorize.GroupSubject, authorize.Domain) ([]authorize.Role, error) {
	return nil, nil
}
func (noopAuthz) AddPermission(context.Context, authorize.Role, authorize.Domain, authorize.Resource, authorize.Action, authorize.PolicyEffect) (bool, error) {
	return true, nil
}
func (noopAuthz) RemovePermission(context.Context, authorize.Role, authorize.Domain, authorize.Resource, authorize.Action, authorize.PolicyEffect) (bool, error) {
	return true, nil
}
func (noopAuthz) Raw() *casbin.DistributedEnforcer { return nil }

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Authentication.EncryptionKey = strings.Repeat("ab", 32) // 32-byte hex key
	cfg.Authentication.JWT.SecretKey = strings.Repeat("s", 64)
	return cfg
}

func newAuthService(t *testing.T) (Service, *repo.Client) {
	t.Helper()

	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })

	cfg := testConfig()
	users := user.New(client, nil, cfg, noopAuthz{})

	svc, err := New(client, nil, nil, users, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return svc, client
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  RegisterRequest
		want error
	}{
		{"bad email", RegisterRequest{Email: "not-an-email", Password: "longenough", FullName: "A"}, ErrInvalidEmail},
		{"empty email", RegisterRequest{Password: "longenough", FullName: "A"}, ErrInvalidEmail},
		{"short password", RegisterRequest{Email: "a@b.example", Password: "short", FullName: "A"}, ErrPasswordTooShort},
		{"missing name", RegisterRequest{Email: "a@b.example", Password: "longenough"}, ErrInvalidFullName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Register(ctx, tt.req); !errors.Is(err, tt.want) {
				t.Fatalf("Register error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, client := newAuthService(t)
	ctx := context.Background()

	if _, err := client.User.Create().
		SetEmail("taken@example.com").
		Save(ctx); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	_, err := svc.Register(ctx, RegisterRequest{
		Email:    "Taken@Example.com", // case-insensitive match
		Password: "longenough",
		FullName: "Dup",
	})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("Register error = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestGoogleDisabled(t *testing.T) {
	svc, _ := newAuthService(t)

	if _, err := svc.GoogleAuthURL("state"); !errors.Is(err, ErrGoogleDisabled) {
		t.Fatalf("GoogleAuthURL error = %v, want ErrGoogleDisabled", err)
	}
	if _, err := svc.GoogleCallback(context.Background(), "code"); !errors.Is(err, ErrGoogleDisabled) {
		t.Fatalf("GoogleCallback error = %v, want ErrGoogleDisabled", err)
	}
}

func TestNewRejectsBadEncryptionKey(t *testing.T) {
	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })

	cfg := testConfig()
	cfg.Authentication.EncryptionKey = "nothex"

	if _, err := New(client, nil, nil, user.New(client, nil, cfg, noopAuthz{}), cfg); err == nil {
		t.Fatal("New accepted a malformed encryption key")
	}
}

func TestLoginLockoutAfterRepeatedFailures(t *testing.T) {
	svc, client := newAuthService(t)
	ctx := context.Background()

	hash, err := password.Hash("correct-horse")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u, err := client.User.Create().
		SetEmail("locked@example.com").
		SetPasswordHash(hash).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	// Exhaust the attempt budget with wrong passwords.
	for i := 0; i < defaultMaxLoginAttempts; i++ {
		_, err := svc.Login(ctx, LoginRequest{Email: "locked@example.com", Password: "wrong"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("attempt %d: err = %v, want ErrInvalidCredentials", i+1, err)
		}
	}

	got, err := client.User.Get(ctx, u.ID)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if got.FailedLoginAttempts != defaultMaxLoginAttempts {
		t.Fatalf("failed attempts = %d, want %d", got.FailedLoginAttempts, defaultMaxLoginAttempts)
	}
	if got.LockedUntil == nil || !got.LockedUntil.After(time.Now()) {
		t.Fatalf("LockedUntil = %v, want a future deadline", got.LockedUntil)
	}

	// Even the correct password is rejected while the lock holds.
	if _, err := svc.Login(ctx, LoginRequest{Email: "locked@example.com", Password: "correct-horse"}); !errors.Is(err, ErrAccountLocked) {
		t.Fatalf("login while locked err = %v, want ErrAccountLocked", err)
	}
}
