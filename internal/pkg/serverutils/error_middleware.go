package serverutils

import (
	"errors"

	"testdesk-be/pkg/ask/retrieval"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps service errors onto HTTP responses. A store
// outage renders as an explicit service-degraded message; nothing else from
// the question pipeline should ever surface here as an error.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if errors.Is(err, retrieval.ErrStoreUnavailable) {
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"message": "Test data is currently unavailable. Please try again later.",
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{
				"message": fiberErr.Message,
			})
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
}
