package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestManager(t *testing.T, accessTTL time.Duration) *Manager {
	t.Helper()

	m, err := New(Config{
		SecretKey:  []byte("0123456789abcdef0123456789abcdef"),
		Issuer:     "medreach-test",
		Audience:   "medreach-api",
		AccessTTL:  accessTTL,
		RefreshTTL: 24 * time.Hour,
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return m
}

func TestIssueAndVerifyAccess(t *testing.T) {
	m := newTestManager(t, 15*time.Minute)

	userID := uuid.New()
	profileID := uuid.New()
	sessionID := uuid.New()

	tok, err := m.IssueAccess(Identity{
		UserID:    userID,
		ProfileID: profileID,
		Role:      "DOCTOR",
		SessionID: &sessionID,
	})
	if err != nil {
		t.Fatalf("IssueAccess() error: %v", err)
	}

	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}

	if claims.Type != TokenTypeAccess {
		t.Errorf("Type = %q, want %q", claims.Type, TokenTypeAccess)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.ProfileID != profileID {
		t.Errorf("ProfileID = %s, want %s", claims.ProfileID, profileID)
	}
	if claims.Role != "DOCTOR" {
		t.Errorf("Role = %q, want DOCTOR", claims.Role)
	}
	if claims.SessionID == nil || *claims.SessionID != sessionID {
		t.Errorf("SessionID = %v, want %s", claims.SessionID, sessionID)
	}
	if claims.TokenID == "" {
		t.Error("TokenID is empty")
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	m := newTestManager(t, -time.Minute)

	tok, err := m.IssueAccess(Identity{UserID: uuid.New(), Role: "PATIENT"})
	if err != nil {
		t.Fatalf("IssueAccess() error: %v", err)
	}

	if _, err := m.Verify(tok); err == nil {
		t.Fatal("Verify() accepted an expired token")
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	m := newTestManager(t, 15*time.Minute)

	other, err := New(Config{
		SecretKey:  []byte("ffffffffffffffffffffffffffffffff"),
		Issuer:     "medreach-test",
		Audience:   "medreach-api",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	tok, err := m.IssueAccess(Identity{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("IssueAccess() error: %v", err)
	}

	if _, err := other.Verify(tok); err == nil {
		t.Fatal("Verify() accepted a token signed with another key")
	}
}

func TestRefreshTokenHasRefreshType(t *testing.T) {
	m := newTestManager(t, 15*time.Minute)

	tok, err := m.IssueRefresh(Identity{UserID: uuid.New(), Role: "PATIENT"})
	if err != nil {
		t.Fatalf("IssueRefresh() error: %v", err)
	}

	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if claims.Type != TokenTypeRefresh {
		t.Errorf("Type = %q, want %q", claims.Type, TokenTypeRefresh)
	}
}

func TestNewValidatesConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"short key", Config{SecretKey: []byte("short"), Issuer: "i", Audience: "a"}},
		{"missing issuer", Config{SecretKey: []byte("0123456789abcdef0123456789abcdef"), Audience: "a"}},
		{"missing audience", Config{SecretKey: []byte("0123456789abcdef0123456789abcdef"), Issuer: "i"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.cfg); err == nil {
				t.Fatal("New() accepted invalid config")
			}
		})
	}
}
