package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/medreach/hospital_backend/internal/repo"
	entprofile "github.com/medreach/hospital_backend/internal/repo/profile"
	entuser "github.com/medreach/hospital_backend/internal/repo/user"
	"github.com/medreach/hospital_backend/internal/service/user"
	"github.com/medreach/hospital_backend/pkg/crypto"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// googleProfile is the subset of the userinfo response we care about.
type googleProfile struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}

func (s *authService) oauthConfig() *oauth2.Config {
	g := s.cfg.Authentication.Google
	return &oauth2.Config{
		ClientID:     g.ClientID,
		ClientSecret: g.ClientSecret,
		RedirectURL:  g.RedirectURL,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}
}

func (s *authService) GoogleAuthURL(state string) (string, error) {
	if !s.cfg.Authentication.Google.Enabled {
		return "", ErrGoogleDisabled
	}
	// offline + consent so Google hands back a refresh token we can store.
	return s.oauthConfig().AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	), nil
}

func (s *authService) GoogleCallback(ctx context.Context, code string) (*AuthTokens, error) {
	if !s.cfg.Authentication.Google.Enabled {
		return nil, ErrGoogleDisabled
	}

	gp, refreshToken, err := s.fetchGoogleProfile(ctx, code)
	if err != nil {
		return nil, err
	}
	if gp.Email == "" || !gp.VerifiedEmail {
		return nil, ErrGoogleExchange
	}

	u, err := s.findOrCreateGoogleUser(ctx, gp, refreshToken)
	if err != nil {
		return nil, err
	}

	p, err := s.users.GetProfileByUserID(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	if err := s.db.User.UpdateOne(u).SetLastLoginAt(time.Now()).Exec(ctx); err != nil {
		slog.WarnContext(ctx, "google login: failed to stamp last login",
			"user_id", u.ID, "error", err)
	}

	return s.createSession(ctx, u, p)
}

// exchangeGoogleCode is the production fetchGoogleProfile implementation.
func (s *authService) exchangeGoogleCode(ctx context.Context, code string) (*googleProfile, *string, error) {
	conf := s.oauthConfig()

	tok, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrGoogleExchange, err)
	}

	client := conf.Client(ctx, tok)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch google userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, nil, fmt.Errorf("google userinfo status %d: %s", resp.StatusCode, body)
	}

	var gp googleProfile
	if err := json.NewDecoder(resp.Body).Decode(&gp); err != nil {
		return nil, nil, fmt.Errorf("decode google userinfo: %w", err)
	}

	var refresh *string
	if tok.RefreshToken != "" {
		refresh = &tok.RefreshToken
	}
	return &gp, refresh, nil
}

func (s *authService) findOrCreateGoogleUser(ctx context.Context, gp *googleProfile, refreshToken *string) (*repo.User, error) {
	email := strings.ToLower(strings.TrimSpace(gp.Email))

	// Prefer the provider id, fall back to email linking for accounts that
	// registered with a password first.
	u, err := s.db.User.Query().
		Where(entuser.GoogleID(gp.ID), entuser.DeletedAtIsNil()).
		Only(ctx)
	switch {
	case err == nil:
		return s.storeGoogleRefreshToken(ctx, u, refreshToken)
	case !repo.IsNotFound(err):
		return nil, fmt.Errorf("find user by google id: %w", err)
	}

	u, err = s.db.User.Query().
		Where(entuser.EmailEQ(email), entuser.DeletedAtIsNil()).
		Only(ctx)
	switch {
	case err == nil:
		if _, err := s.db.User.UpdateOne(u).SetGoogleID(gp.ID).Save(ctx); err != nil {
			return nil, fmt.Errorf("link google id: %w", err)
		}
		return s.storeGoogleRefreshToken(ctx, u, refreshToken)
	case !repo.IsNotFound(err):
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	// First sign-in: create the account and the patient profile.
	u, err = s.db.User.Create().
		SetEmail(email).
		SetGoogleID(gp.ID).
		SetEmailVerified(true).
		SetStatus(entuser.StatusACTIVE).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create google user: %w", err)
	}

	fullName := strings.TrimSpace(gp.Name)
	if fullName == "" {
		fullName = email
	}
	if _, err := s.users.ProvisionProfile(ctx, user.ProvisionRequest{
		UserID:   u.ID,
		FullName: fullName,
		Role:     entprofile.RolePATIENT,
	}); err != nil {
		return nil, err
	}

	return s.storeGoogleRefreshToken(ctx, u, refreshToken)
}

// storeGoogleRefreshToken encrypts and persists the provider refresh token.
// Google only sends it on first consent, so absence is not an error.
func (s *authService) storeGoogleRefreshToken(ctx context.Context, u *repo.User, refreshToken *string) (*repo.User, error) {
	if refreshToken == nil {
		return u, nil
	}
	enc, err := crypto.Encrypt(s.encKey, *refreshToken)
	if err != nil {
		return nil, fmt.Errorf("encrypt refresh token: %w", err)
	}
	updated, err := s.db.User.UpdateOne(u).SetGoogleRefreshTokenEnc(enc).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}
	return updated, nil
}
