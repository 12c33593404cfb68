// Package middleware provides the Fiber middleware shared by protected routes.
package middleware

import (
	"context"
	"errors"

	"github.com/amirasaad/alphaquantum/pkg/config"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenKey  = "user"
	userIDKey = "userID"
)

// TokenChecker resolves the owner of a token and whether it was logged out.
type TokenChecker interface {
	GetCurrentUserID(token *jwt.Token) (uuid.UUID, error)
	IsRevoked(ctx context.Context, token *jwt.Token) (bool, error)
}

// JwtProtected verifies the bearer token, rejects revoked tokens and stores
// the token and its user id in the request locals.
func JwtProtected(cfg *config.Jwt, tokens TokenChecker) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: []byte(cfg.Secret)},
		ContextKey:   tokenKey,
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals(tokenKey).(*jwt.Token)
			if !ok {
				return unauthorized(c, "missing token")
			}
			revoked, err := tokens.IsRevoked(c.UserContext(), token)
			if err != nil {
				return problem(c, fiber.StatusInternalServerError, "Internal Server Error", "could not verify token")
			}
			if revoked {
				return unauthorized(c, "token has been revoked")
			}
			id, err := tokens.GetCurrentUserID(token)
			if err != nil {
				return unauthorized(c, "invalid token claims")
			}
			c.Locals(userIDKey, id)
			return c.Next()
		},
	})
}

// Token returns the verified token of the request.
func Token(c *fiber.Ctx) (*jwt.Token, bool) {
	t, ok := c.Locals(tokenKey).(*jwt.Token)
	return t, ok
}

// CurrentUserID returns the id of the authenticated user.
func CurrentUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(userIDKey).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

func jwtError(c *fiber.Ctx, err error) error {
	if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) || err.Error() == "Missing or malformed JWT" {
		return problem(c, fiber.StatusBadRequest, "Bad Request", "Missing or malformed JWT")
	}
	return unauthorized(c, "Invalid or expired JWT")
}

func unauthorized(c *fiber.Ctx, detail string) error {
	return problem(c, fiber.StatusUnauthorized, "Unauthorized", detail)
}

// problem writes an RFC 9457 body.
func problem(c *fiber.Ctx, status int, title, detail string) error {
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(status).JSON(fiber.Map{
		"type":     "about:blank",
		"title":    title,
		"status":   status,
		"detail":   detail,
		"instance": c.OriginalURL(),
	})
}
