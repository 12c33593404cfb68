package cashflow

import (
	"context"

	"github.com/amirasaad/alphaquantum/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type deleteFunc func(ctx context.Context, userID, id uuid.UUID) error

func deleteHandler(invalid, failed, done string, del deleteFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := common.ParamUUID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, invalid, err)
		}
		if err := del(c.UserContext(), userID, id); err != nil {
			return common.ProblemDetailsJSON(c, failed, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusNoContent, done, nil)
	}
}
