package staff

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/medreach/hospital_backend/internal/repo"
	"github.com/medreach/hospital_backend/internal/repo/enttest"
	entprofile "github.com/medreach/hospital_backend/internal/repo/profile"
)

// fixedPicker always picks the same index.
type fixedPicker struct{ idx int }

func (p fixedPicker) PickN(n int) int {
	if p.idx >= n {
		return n - 1
	}
	return p.idx
}

func openClient(t *testing.T) *repo.Client {
	t.Helper()

	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return client
}

func seedProfile(t *testing.T, client *repo.Client, role entprofile.Role, name string, active bool) *repo.Profile {
	t.Helper()

	u, err := client.User.Create().
		SetEmail(fmt.Sprintf("%s@example.com", uuid.NewString())).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	p, err := client.Profile.Create().
		SetUserID(u.ID).
		SetFullName(name).
		SetRole(role).
		SetActive(active).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}
	return p
}

func TestListActiveFiltersRoleAndAvailability(t *testing.T) {
	client := openClient(t)
	ctx := context.Background()

	onDuty := seedProfile(t, client, entprofile.RoleNURSE, "Alice", true)
	seedProfile(t, client, entprofile.RoleNURSE, "Bob", false)
	seedProfile(t, client, entprofile.RoleDOCTOR, "Carol", true)

	svc := New(client, nil)
	nurses, err := svc.ListActive(ctx, entprofile.RoleNURSE)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(nurses) != 1 || nurses[0].ID != onDuty.ID {
		t.Fatalf("ListActive = %v, want only %s", nurses, onDuty.ID)
	}
}

func TestListActiveRejectsNonStaffRoles(t *testing.T) {
	client := openClient(t)
	svc := New(client, nil)

	for _, role := range []entprofile.Role{entprofile.RolePATIENT, entprofile.RoleADMIN} {
		if _, err := svc.ListActive(context.Background(), role); !errors.Is(err, ErrInvalidRole) {
			t.Fatalf("ListActive(%s) error = %v, want ErrInvalidRole", role, err)
		}
	}
}

func TestAssignPicksFromActivePool(t *testing.T) {
	client := openClient(t)
	ctx := context.Background()

	// Ordered by full name, so the picker index is deterministic.
	seedProfile(t, client, entprofile.RoleLAB, "Ana", true)
	second := seedProfile(t, client, entprofile.RoleLAB, "Zoe", true)
	seedProfile(t, client, entprofile.RoleLAB, "Mia", false)

	svc := New(client, fixedPicker{idx: 1})
	got, err := svc.Assign(ctx, entprofile.RoleLAB)
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if got == nil || got.ID != second.ID {
		t.Fatalf("Assign = %v, want %s", got, second.ID)
	}
}

func TestAssignReturnsNilWhenPoolIsEmpty(t *testing.T) {
	client := openClient(t)
	ctx := context.Background()

	seedProfile(t, client, entprofile.RoleDOCTOR, "Off Duty", false)

	svc := New(client, nil)
	got, err := svc.Assign(ctx, entprofile.RoleDOCTOR)
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if got != nil {
		t.Fatalf("Assign = %v, want nil with empty pool", got)
	}
}

func TestSetActive(t *testing.T) {
	client := openClient(t)
	ctx := context.Background()

	nurse := seedProfile(t, client, entprofile.RoleNURSE, "Alice", true)
	patient := seedProfile(t, client, entprofile.RolePATIENT, "Pat", true)

	svc := New(client, nil)
	if err := svc.SetActive(ctx, nurse.ID, false); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	got, err := client.Profile.Get(ctx, nurse.ID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if got.Active {
		t.Fatal("profile still active after SetActive(false)")
	}

	// Patients are not assignable staff.
	if err := svc.SetActive(ctx, patient.ID, false); !errors.Is(err, ErrNotFound) {
		t.Fatalf("SetActive on patient error = %v, want ErrNotFound", err)
	}
	if err := svc.SetActive(ctx, uuid.New(), true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("SetActive on unknown id error = %v, want ErrNotFound", err)
	}
}
