package auth

import (
	"errors"

	"github.com/amirasaad/alphaquantum/pkg/config"
	"github.com/amirasaad/alphaquantum/pkg/domain/user"
	"github.com/amirasaad/alphaquantum/pkg/middleware"
	authsvc "github.com/amirasaad/alphaquantum/pkg/service/auth"
	"github.com/amirasaad/alphaquantum/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(app *fiber.App, authSvc *authsvc.Service, cfg *config.App) {
	app.Post("/auth/login", Login(authSvc))
	app.Post("/auth/logout", middleware.JwtProtected(cfg.Auth.Jwt, authSvc), Logout(authSvc))
}

// Login handles user authentication and returns a JWT token.
// @Summary User login
// @Description Authenticate user with identity (username or email) and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginInput true "Login credentials"
// @Success 200 {object} common.Response{data=LoginOutput}
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /auth/login [post]
func Login(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if input == nil {
			return err
		}
		u, err := authSvc.Login(c.UserContext(), input.Identity, input.Password)
		if errors.Is(err, user.ErrUserUnauthorized) {
			return common.ProblemDetailsJSON(c, "Invalid identity or password", nil, "Identity or password is incorrect", fiber.StatusUnauthorized)
		}
		if err != nil {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		}
		token, exp, err := authSvc.GenerateToken(u)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Success login", LoginOutput{Token: token, ExpiresAt: exp})
	}
}

// Logout revokes the bearer token until it expires.
// @Summary User logout
// @Description Revoke the current bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /auth/logout [post]
// @Security BearerAuth
func Logout(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := middleware.Token(c)
		if !ok {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, "missing user context", fiber.StatusUnauthorized)
		}
		if err := authSvc.Revoke(c.UserContext(), token); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't log out", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Logged out", nil)
	}
}
