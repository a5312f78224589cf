package utils

import (
	stderrors "errors"
	"reflect"

	"github.com/gofiber/fiber/v2"
	"github.com/geo-directory-service/internal/pkg/errors"
)

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

// SendList отдаёт срез как голый JSON массив; nil превращается в []
func SendList(c *fiber.Ctx, items interface{}) error {
	v := reflect.ValueOf(items)
	if items == nil || (v.Kind() == reflect.Slice && v.IsNil()) {
		return c.JSON([]interface{}{})
	}
	return c.JSON(items)
}

func SendJSON(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

// SendText - ответ text/plain с заданным статусом
func SendText(c *fiber.Ctx, status int, body string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(status).SendString(body)
}

func SendError(c *fiber.Ctx, err error) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	// Unknown error - return 500
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}
