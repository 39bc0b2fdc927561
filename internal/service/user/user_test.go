package user

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/casbin/casbin/v2"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/medreach/hospital_backend/config"
	"github.com/medreach/hospital_backend/internal/repo"
	"github.com/medreach/hospital_backend/internal/repo/enttest"
	entprofile "github.com/medreach/hospital_backend/internal/repo/profile"
	"github.com/medreach/hospital_backend/pkg/authorize"
)

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

func newService(t *testing.T) (Service, *repo.Client) {
	t.Helper()

	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })

	svc := New(client, nil, &config.Config{}, noopAuthz{})
	return svc, client
}

func seedUser(t *testing.T, client *repo.Client, email string) *repo.User {
	t.Helper()

	u, err := client.User.Create().SetEmail(email).Save(context.Background())
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func TestProvisionProfile(t *testing.T) {
	svc, client := newService(t)
	ctx := context.Background()

	u := seedUser(t, client, "pat@example.com")
	phone := "+14155552671"

	p, err := svc.ProvisionProfile(ctx, ProvisionRequest{
		UserID:   u.ID,
		FullName: "Pat Doe",
		Role:     entprofile.RolePATIENT,
		Phone:    &phone,
	})
	if err != nil {
		t.Fatalf("ProvisionProfile: %v", err)
	}
	if p.Role != entprofile.RolePATIENT {
		t.Fatalf("role = %s, want PATIENT", p.Role)
	}
	if p.Phone == nil || *p.Phone != "+14155552671" {
		t.Fatalf("phone = %v, want E.164 +14155552671", p.Phone)
	}

	// One profile per user.
	if _, err := svc.ProvisionProfile(ctx, ProvisionRequest{
		UserID:   u.ID,
		FullName: "Pat Again",
		Role:     entprofile.RoleNURSE,
	}); !errors.Is(err, ErrProfileExists) {
		t.Fatalf("second profile error = %v, want ErrProfileExists", err)
	}
}

func TestProvisionProfileValidation(t *testing.T) {
	svc, client := newService(t)
	ctx := context.Background()
	u := seedUser(t, client, "v@example.com")

	badPhone := "not-a-number"
	tests := []struct {
		name string
		req  ProvisionRequest
		want error
	}{
		{"empty name", ProvisionRequest{UserID: u.ID, Role: entprofile.RoleDOCTOR}, ErrInvalidFullName},
		{"bad role", ProvisionRequest{UserID: u.ID, FullName: "X", Role: entprofile.Role("WIZARD")}, ErrInvalidRole},
		{"bad phone", ProvisionRequest{UserID: u.ID, FullName: "X", Role: entprofile.RoleDOCTOR, Phone: &badPhone}, ErrInvalidPhone},
		{"unknown user", ProvisionRequest{UserID: uuid.New(), FullName: "X", Role: entprofile.RoleDOCTOR}, ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.ProvisionProfile(ctx, tt.req); !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUpdateProfilePhone(t *testing.T) {
	svc, client := newService(t)
	ctx := context.Background()
	u := seedUser(t, client, "u@example.com")

	p, err := svc.ProvisionProfile(ctx, ProvisionRequest{
		UserID: u.ID, FullName: "U", Role: entprofile.RoleDOCTOR,
	})
	if err != nil {
		t.Fatalf("ProvisionProfile: %v", err)
	}

	// National format is normalized against the region.
	phone := "020 7946 0958"
	updated, err := svc.UpdateProfile(ctx, p.ID, UpdateProfileRequest{Phone: &phone, Region: "GB"})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Phone == nil || *updated.Phone != "+442079460958" {
		t.Fatalf("phone = %v, want +442079460958", updated.Phone)
	}

	bad := "12345"
	if _, err := svc.UpdateProfile(ctx, p.ID, UpdateProfileRequest{Phone: &bad}); !errors.Is(err, ErrInvalidPhone) {
		t.Fatalf("error = %v, want ErrInvalidPhone", err)
	}

	// Empty string clears the number.
	empty := ""
	updated, err = svc.UpdateProfile(ctx, p.ID, UpdateProfileRequest{Phone: &empty})
	if err != nil {
		t.Fatalf("UpdateProfile clear: %v", err)
	}
	if updated.Phone != nil {
		t.Fatalf("phone = %v, want nil", updated.Phone)
	}
}

func TestListPatients(t *testing.T) {
	svc, client := newService(t)
	ctx := context.Background()

	names := []string{"Amara Obi", "Ben Cho", "Amanda Reyes"}
	for i, name := range names {
		u := seedUser(t, client, fmt.Sprintf("p%d@example.com", i))
		if _, err := svc.ProvisionProfile(ctx, ProvisionRequest{
			UserID: u.ID, FullName: name, Role: entprofile.RolePATIENT,
		}); err != nil {
			t.Fatalf("ProvisionProfile: %v", err)
		}
	}
	du := seedUser(t, client, "doc@example.com")
	if _, err := svc.ProvisionProfile(ctx, ProvisionRequest{
		UserID: du.ID, FullName: "Doc Amari", Role: entprofile.RoleDOCTOR,
	}); err != nil {
		t.Fatalf("ProvisionProfile: %v", err)
	}

	all, err := svc.ListPatients(ctx, ListPatientsRequest{})
	if err != nil {
		t.Fatalf("ListPatients: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("ListPatients = %d profiles, want 3", len(all))
	}

	search := "ama"
	filtered, err := svc.ListPatients(ctx, ListPatientsRequest{Search: &search})
	if err != nil {
		t.Fatalf("ListPatients search: %v", err)
	}
	if len(filtered) != 2 {
		t.Fatalf("search %q = %d profiles, want 2 (doctor excluded)", search, len(filtered))
	}
}
