package controller

import (
	"errors"

	"samvidhan-be/internal/pkg/serverutils"
	"samvidhan-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

func statusFor(err error) (int, string) {
	var se *service.Error
	msg := "Internal server error"
	if errors.As(err, &se) {
		msg = se.Message
	}

	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrConflict),
		errors.Is(err, service.ErrInvalidCredentials):
		return fiber.StatusBadRequest, msg
	case errors.Is(err, service.ErrNotFound):
		return fiber.StatusNotFound, msg
	case errors.Is(err, service.ErrForbidden):
		return fiber.StatusForbidden, msg
	case errors.Is(err, service.ErrInvalidSignature):
		return fiber.StatusUnauthorized, msg
	case errors.Is(err, service.ErrConfigurationMissing):
		return fiber.StatusServiceUnavailable, "Service not configured"
	case errors.Is(err, service.ErrContactDelivery):
		return fiber.StatusBadGateway, service.ErrContactDelivery.Error()
	}
	return fiber.StatusInternalServerError, "Internal server error"
}

// writeError renders a service error in the response envelope.
func writeError(ctx *fiber.Ctx, err error) error {
	code, msg := statusFor(err)
	return ctx.Status(code).JSON(serverutils.ErrorResponse(code, msg))
}

// parseBody decodes and validates a JSON body. Validation errors are rendered
// by the error-handler middleware.
func parseBody(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return serverutils.ValidateRequest(out)
}

func page(ctx *fiber.Ctx, defaultLimit int) (int, int) {
	limit := ctx.QueryInt("limit", defaultLimit)
	if limit <= 0 || limit > 100 {
		limit = defaultLimit
	}
	offset := ctx.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
