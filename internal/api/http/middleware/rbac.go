package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medreach/hospital_backend/pkg/authorize"
	"github.com/medreach/hospital_backend/pkg/token"
)

// RequirePermission checks that the authenticated user may act on the
// resource inside the shared hospital domain.
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := token.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		subject := authorize.GroupSubject(claims.UserID.String())
		if err := auth.MustEnforce(c.Context(), subject, authorize.DomainHospital, resource, action); err != nil {
			if err == authorize.ErrForbidden {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}
