// Package auth implements login, JWT issuing and token revocation.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/alphaquantum/pkg/cache"
	"github.com/amirasaad/alphaquantum/pkg/config"
	"github.com/amirasaad/alphaquantum/pkg/domain/user"
	"github.com/amirasaad/alphaquantum/pkg/dto"
	"github.com/amirasaad/alphaquantum/pkg/repository"
	repouser "github.com/amirasaad/alphaquantum/pkg/repository/user"
	"github.com/amirasaad/alphaquantum/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// dummyHash is compared against when the identity is unknown so a miss
// costs as much as a wrong password.
const dummyHash = "$2a$10$7zFqzDbD3RrlkMTczbXG9OWZ0FLOXjIxXzSZ.QZxkVXjXcx7QZQiC"

const revokedPrefix = "revoked:"

type Service struct {
	uow     repository.UnitOfWork
	cfg     *config.Jwt
	revoked cache.Cache
	logger  *slog.Logger
	now     func() time.Time
}

// New creates the JWT auth service. Revoked token ids are kept in revoked.
func New(
	uow repository.UnitOfWork,
	cfg *config.Jwt,
	revoked cache.Cache,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, cfg: cfg, revoked: revoked, logger: logger, now: time.Now}
}

// Login checks the password of the user named by identity, which is either
// an email or a username.
func (s *Service) Login(
	ctx context.Context,
	identity, password string,
) (u *dto.UserRead, err error) {
	log := s.logger.With("context", "Login", "identity", identity)
	log.Debug("Login called")
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[repouser.Repository](uow)
		if err != nil {
			return fmt.Errorf("failed to get user repository: %w", err)
		}
		if utils.IsEmail(identity) {
			u, err = repo.GetByEmail(ctx, identity)
		} else {
			u, err = repo.GetByUsername(ctx, identity)
		}
		if err != nil {
			return err
		}
		if u == nil {
			_ = utils.CheckPasswordHash(password, dummyHash)
			return user.ErrUserUnauthorized
		}
		if !utils.CheckPasswordHash(password, u.HashedPassword) {
			return user.ErrUserUnauthorized
		}
		return nil
	})
	if err != nil {
		log.Error("Login failed", "error", err)
		return nil, err
	}
	log.Info("Login successful", "userID", u.ID)
	return u, nil
}

// GenerateToken signs an HS256 token for u and returns it with its expiry.
func (s *Service) GenerateToken(u *dto.UserRead) (string, time.Time, error) {
	log := s.logger.With("userID", u.ID)
	log.Debug("GenerateToken called")
	exp := s.now().Add(s.cfg.Expiry)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  u.ID.String(),
		"username": u.Username,
		"email":    u.Email,
		"jti":      uuid.NewString(),
		"exp":      exp.Unix(),
	})
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		log.Error("GenerateToken failed", "error", err)
		return "", time.Time{}, err
	}
	log.Info("GenerateToken successful")
	return signed, exp, nil
}

// GetCurrentUserID extracts the user id claim of a parsed token.
func (s *Service) GetCurrentUserID(token *jwt.Token) (uuid.UUID, error) {
	claims, err := mapClaims(token)
	if err != nil {
		return uuid.Nil, err
	}
	raw, ok := claims["user_id"].(string)
	if !ok {
		s.logger.Error("GetCurrentUserID failed", "error", "missing user_id claim")
		return uuid.Nil, user.ErrUserUnauthorized
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		s.logger.Error("GetCurrentUserID failed", "error", err)
		return uuid.Nil, user.ErrUserUnauthorized
	}
	return id, nil
}

// Revoke marks the token's jti as revoked until the token expires.
func (s *Service) Revoke(ctx context.Context, token *jwt.Token) error {
	claims, err := mapClaims(token)
	if err != nil {
		return err
	}
	jti, _ := claims["jti"].(string)
	if jti == "" {
		return user.ErrUserUnauthorized
	}
	ttl := time.Minute
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		ttl = exp.Sub(s.now())
	}
	if ttl <= 0 {
		return nil
	}
	if err := s.revoked.Set(ctx, revokedPrefix+jti, []byte("1"), ttl); err != nil {
		s.logger.Error("Revoke failed", "jti", jti, "error", err)
		return err
	}
	s.logger.Info("Token revoked", "jti", jti)
	return nil
}

// IsRevoked reports whether the token was logged out.
func (s *Service) IsRevoked(ctx context.Context, token *jwt.Token) (bool, error) {
	claims, err := mapClaims(token)
	if err != nil {
		return false, err
	}
	jti, _ := claims["jti"].(string)
	if jti == "" {
		return false, nil
	}
	_, found, err := s.revoked.Get(ctx, revokedPrefix+jti)
	return found, err
}

func mapClaims(token *jwt.Token) (jwt.MapClaims, error) {
	if token == nil {
		return nil, user.ErrUserUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, user.ErrUserUnauthorized
	}
	return claims, nil
}
