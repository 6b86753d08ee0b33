package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/trip-booking-service/internal/domain"
	apperrors "github.com/spec-kit/trip-booking-service/pkg/util"
)

// CheckRole gates an identity on a required role. It is a pure check: on
// success the identity is returned unchanged, on mismatch the caller gets a
// forbidden failure. Callers compose it after token verification, so a valid
// token with the wrong role yields 403 rather than 401.
func CheckRole(user *domain.User, role domain.Role) (*domain.User, error) {
	if user == nil || user.Role != role {
		return nil, apperrors.NewForbidden("not authorized to perform this action")
	}
	return user, nil
}

// RequireRole ensures the authenticated principal holds the given role.
func RequireRole(role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if _, err := CheckRole(principal, role); err != nil {
			return err
		}
		return c.Next()
	}
}
