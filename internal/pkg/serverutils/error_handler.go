package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

func statusFor(err error) (int, string) {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, fe.Message
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return fiber.StatusBadRequest, ve.Error()
	}

	return fiber.StatusInternalServerError, "Internal server error"
}

// ErrorHandler renders any error that escapes a handler in the JSON envelope.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	code, msg := statusFor(err)
	return ctx.Status(code).JSON(ErrorResponse(code, msg))
}

// ErrorHandlerMiddleware catches errors returned further down the chain so they
// never reach Fiber's plain-text default handler.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return ErrorHandler(ctx, err)
	}
}
