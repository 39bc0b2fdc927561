package token

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/medreach/hospital_backend/config"
)

const CtxKeyClaims = "auth.claims"

func FiberAuth(m *Manager) fiber.Handler {
	return func(c fiber.Ctx) error {
		h := c.Get("Authorization")
		if h == "" {
			return fiber.ErrUnauthorized
		}
		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.ErrUnauthorized
		}

		claims, err := m.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			return fiber.ErrUnauthorized
		}

		c.Locals(CtxKeyClaims, claims)
		return c.Next()
	}
}

func ClaimsFromFiber(c fiber.Ctx) (*Claims, bool) {
	v := c.Locals(CtxKeyClaims)
	if v == nil {
		return nil, false
	}
	cl, ok := v.(*Claims)
	return cl, ok
}

// NewManager creates a token manager from config.
// The secret key may be given as raw text or hex.
func NewManager(cfg *config.Config) (*Manager, error) {
	j := cfg.Authentication.JWT

	key := []byte(j.SecretKey)
	if decoded, err := hex.DecodeString(j.SecretKey); err == nil && len(decoded) >= 32 {
		key = decoded
	}

	return New(Config{
		SecretKey:  key,
		Issuer:     j.Issuer,
		Audience:   j.Audience,
		AccessTTL:  time.Duration(j.AccessTTLMinutes) * time.Minute,
		RefreshTTL: time.Duration(j.RefreshTTLDays) * 24 * time.Hour,
	})
}
