package user

import (
	"github.com/amirasaad/alphaquantum/pkg/config"
	"github.com/amirasaad/alphaquantum/pkg/middleware"
	authsvc "github.com/amirasaad/alphaquantum/pkg/service/auth"
	usersvc "github.com/amirasaad/alphaquantum/pkg/service/user"
	"github.com/amirasaad/alphaquantum/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func Routes(app *fiber.App, userSvc *usersvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	protected := middleware.JwtProtected(cfg.Auth.Jwt, authSvc)
	app.Post("/user", CreateUser(userSvc))
	app.Get("/user/me", protected, Me(userSvc))
	app.Get("/user/:id", protected, GetUser(userSvc))
	app.Put("/user/:id", protected, UpdateUser(userSvc))
	app.Delete("/user/:id", protected, DeleteUser(userSvc))
}

// self resolves the :id parameter and checks it names the caller.
func self(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := common.ParamUUID(c, "id")
	if err != nil {
		return uuid.Nil, common.ProblemDetailsJSON(c, "Invalid user ID", err, "User ID must be a valid UUID")
	}
	userID, err := common.CurrentUser(c)
	if err != nil {
		return uuid.Nil, common.ProblemDetailsJSON(c, "Unauthorized", err)
	}
	if id != userID {
		return uuid.Nil, common.ProblemDetailsJSON(c, "Forbidden", nil, "You are not allowed to access this user", fiber.StatusForbidden)
	}
	return id, nil
}

// CreateUser creates a new user account.
// @Summary Create a new user
// @Description Create a new user account with username, email, and password
// @Tags users
// @Accept json
// @Produce json
// @Param request body NewUser true "User creation data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /user [post]
func CreateUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[NewUser](c)
		if input == nil {
			return err
		}
		u, err := userSvc.CreateUser(c.UserContext(), input.Username, input.Email, input.Password, input.Names)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Created user", u)
	}
}

// Me returns the authenticated user.
// @Summary Current user
// @Tags users
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /user/me [get]
// @Security BearerAuth
func Me(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		u, err := userSvc.GetUser(c.UserContext(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid credentials", nil, fiber.StatusUnauthorized)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User found", u)
	}
}

// GetUser returns a Fiber handler for retrieving a user by ID.
// @Summary Get user by ID
// @Description Retrieve the authenticated user by ID
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Router /user/{id} [get]
// @Security BearerAuth
func GetUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := self(c)
		if id == uuid.Nil {
			return err
		}
		u, err := userSvc.GetUser(c.UserContext(), id)
		if err != nil {
			// generic error to prevent user enumeration
			return common.ProblemDetailsJSON(c, "Invalid credentials", nil, fiber.StatusUnauthorized)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User found", u)
	}
}

// UpdateUser updates user information.
// @Summary Update user
// @Description Update the display name of the authenticated user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body UpdateUserInput true "User update data"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /user/{id} [put]
// @Security BearerAuth
func UpdateUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[UpdateUserInput](c)
		if input == nil {
			return err
		}
		id, err := self(c)
		if id == uuid.Nil {
			return err
		}
		if err := userSvc.UpdateNames(c.UserContext(), id, input.Names); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update user", err)
		}
		u, err := userSvc.GetUser(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User updated successfully", u)
	}
}

// DeleteUser deletes a user account.
// @Summary Delete user
// @Description Delete the authenticated user after password confirmation
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body PasswordInput true "Password confirmation"
// @Success 204
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /user/{id} [delete]
// @Security BearerAuth
func DeleteUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[PasswordInput](c)
		if input == nil {
			return err
		}
		id, err := self(c)
		if id == uuid.Nil {
			return err
		}
		if err := userSvc.DeleteUser(c.UserContext(), id, input.Password); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusNoContent, "User successfully deleted", nil)
	}
}
