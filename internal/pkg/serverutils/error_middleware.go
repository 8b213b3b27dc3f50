package serverutils

import (
	"errors"

	"valetkleen-be/internal/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps the service error taxonomy to HTTP statuses.
// Anything unrecognized becomes a 500 with a generic message; raw internals
// are never sent to the client.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		var validationErr *apperror.ValidationError
		if errors.As(err, &validationErr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(validationErr.Reason))
		}

		switch {
		case errors.Is(err, apperror.ErrSessionNotFound),
			errors.Is(err, apperror.ErrCategoryNotFound),
			errors.Is(err, apperror.ErrItemNotFound),
			errors.Is(err, apperror.ErrOrderNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(err.Error()))
		case errors.Is(err, apperror.ErrEmptyCart),
			errors.Is(err, apperror.ErrMissingCustomerInfo),
			errors.Is(err, apperror.ErrInvalidStatus),
			errors.Is(err, apperror.ErrInvalidTransition),
			errors.Is(err, apperror.ErrInvalidState):
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse(err.Error()))
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("internal server error"))
		}
	}
}
