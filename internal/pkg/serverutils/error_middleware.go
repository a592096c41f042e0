package serverutils

import (
	"errors"

	"scholarship-fund-be/internal/apperror"

	"github.com/gofiber/fiber/v2"
)

func statusForKind(kind apperror.Kind) int {
	switch kind {
	case apperror.KindValidation:
		return fiber.StatusBadRequest
	case apperror.KindUnauthorized:
		return fiber.StatusUnauthorized
	case apperror.KindForbidden:
		return fiber.StatusForbidden
	case apperror.KindNotFound, apperror.KindReferenceNotFound:
		return fiber.StatusNotFound
	case apperror.KindAlreadyApproved, apperror.KindConflict:
		return fiber.StatusConflict
	case apperror.KindAlreadyFinal:
		return fiber.StatusUnprocessableEntity
	case apperror.KindStoreUnavailable:
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}

// ErrorHandlerMiddleware translates typed business errors into distinct
// status codes and messages so the presentation layer never shows a
// generic failure banner for an actionable problem.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			return ctx.Status(statusForKind(appErr.Kind)).JSON(ErrorResponse(appErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("internal server error"))
	}
}
