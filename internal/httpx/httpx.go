package httpx

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/kayumanis/furniture-order-service/internal/apperr"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// ParamID reads the :id route parameter. Ids that are not positive integers
// cannot exist, so they are reported with the resource's not-found message.
func ParamID(c *fiber.Ctx, notFound string) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.NotFound(notFound)
	}
	return id, nil
}

// Pagination reads page and limit, falling back to 1 and 10 for missing or
// non-positive values.
func Pagination(c *fiber.Ctx) (page, limit int) {
	page = c.QueryInt("page", defaultPage)
	if page <= 0 {
		page = defaultPage
	}
	limit = c.QueryInt("limit", defaultLimit)
	if limit <= 0 {
		limit = defaultLimit
	}
	return page, limit
}

func TotalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// Message is the body of successful writes that return no entity.
func Message(msg string) fiber.Map {
	return fiber.Map{"message": msg}
}

func Created(c *fiber.Ctx, id int64, msg string) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id, "message": msg})
}
