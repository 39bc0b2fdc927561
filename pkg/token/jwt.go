package token

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Config struct {
	// SecretKey signs tokens with HMAC-SHA256. Must be at least 32 bytes.
	SecretKey []byte

	Issuer   string
	Audience string

	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type Manager struct {
	cfg    Config
	parser *jwt.Parser
}

// jwtClaims is the wire representation.
type jwtClaims struct {
	jwt.RegisteredClaims
	Type      string `json:"typ"`
	UserID    string `json:"uid"`
	ProfileID string `json:"pid,omitempty"`
	Role      string `json:"role,omitempty"`
	SessionID string `json:"sid,omitempty"`
}

func New(cfg Config) (*Manager, error) {
	if len(cfg.SecretKey) < 32 {
		return nil, ErrConfig{Msg: "SecretKey must be at least 32 bytes"}
	}
	if cfg.Issuer == "" {
		return nil, ErrConfig{Msg: "Issuer is required"}
	}
	if cfg.Audience == "" {
		return nil, ErrConfig{Msg: "Audience is required"}
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = 15 * time.Minute
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = 30 * 24 * time.Hour
	}

	p := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
		jwt.WithExpirationRequired(),
	)

	return &Manager{cfg: cfg, parser: p}, nil
}

type Identity struct {
	UserID    uuid.UUID
	ProfileID uuid.UUID
	Role      string
	SessionID *uuid.UUID
}

func (m *Manager) IssueAccess(id Identity) (string, error) {
	return m.issue(TokenTypeAccess, id, m.cfg.AccessTTL)
}

func (m *Manager) IssueRefresh(id Identity) (string, error) {
	return m.issue(TokenTypeRefresh, id, m.cfg.RefreshTTL)
}

func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	var wc jwtClaims
	_, err := m.parser.ParseWithClaims(tokenStr, &wc, func(t *jwt.Token) (any, error) {
		return m.cfg.SecretKey, nil
	})
	if err != nil {
		return nil, ErrInvalidToken{Err: err}
	}

	claims, err := extractClaims(&wc)
	if err != nil {
		return nil, ErrInvalidToken{Err: err}
	}

	return claims, nil
}

func (m *Manager) issue(tt TokenType, id Identity, ttl time.Duration) (string, error) {
	now := time.Now()

	wc := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.cfg.Issuer,
			Audience:  jwt.ClaimStrings{m.cfg.Audience},
			Subject:   id.UserID.String(),
			ID:        randHex(16),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Type:   string(tt),
		UserID: id.UserID.String(),
		Role:   id.Role,
	}
	if id.ProfileID != uuid.Nil {
		wc.ProfileID = id.ProfileID.String()
	}
	if id.SessionID != nil {
		wc.SessionID = id.SessionID.String()
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, wc)
	return tok.SignedString(m.cfg.SecretKey)
}

func randHex(nBytes int) string {
	b := make([]byte, nBytes)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func extractClaims(wc *jwtClaims) (*Claims, error) {
	uid, err := uuid.Parse(wc.UserID)
	if err != nil {
		return nil, err
	}

	out := &Claims{
		Type:    TokenType(wc.Type),
		UserID:  uid,
		Role:    wc.Role,
		Issuer:  wc.Issuer,
		TokenID: wc.ID,
		Subject: wc.Subject,
	}
	if len(wc.Audience) > 0 {
		out.Audience = wc.Audience[0]
	}
	if wc.IssuedAt != nil {
		out.IssuedAt = wc.IssuedAt.Time
	}
	if wc.NotBefore != nil {
		out.NotBefore = wc.NotBefore.Time
	}
	if wc.ExpiresAt != nil {
		out.ExpiresAt = wc.ExpiresAt.Time
	}

	if wc.ProfileID != "" {
		pid, err := uuid.Parse(wc.ProfileID)
		if err != nil {
			return nil, err
		}
		out.ProfileID = pid
	}

	// sid is optional
	if wc.SessionID != "" {
		sid, err := uuid.Parse(wc.SessionID)
		if err != nil {
			return nil, err
		}
		out.SessionID = &sid
	}

	if out.Type != TokenTypeAccess && out.Type != TokenTypeRefresh {
		return nil, errors.New("unknown token type")
	}

	return out, nil
}
