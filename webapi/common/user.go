package common

import (
	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/amirasaad/alphaquantum/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CurrentUser returns the authenticated user id set by middleware.JwtProtected.
func CurrentUser(c *fiber.Ctx) (uuid.UUID, error) {
	id, ok := middleware.CurrentUserID(c)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}
