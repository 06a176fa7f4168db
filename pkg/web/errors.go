package web

import (
	"errors"

	"github.com/emberhq/ember/pkg/log"
	"github.com/emberhq/ember/pkg/services"
	"github.com/emberhq/ember/pkg/settings"
	"github.com/gofiber/fiber/v3"
	"github.com/moogar0880/problems"
)

func badRequest(c fiber.Ctx, detail string) error {
	problem := problems.NewStatusProblem(400).
		WithInstance(c.Path()).
		WithType("validation_error").
		WithDetail(detail)

	return c.Status(fiber.StatusBadRequest).JSON(problem)
}

func notFound(c fiber.Ctx, problemType, detail string) error {
	problem := problems.NewStatusProblem(404).
		WithInstance(c.Path()).
		WithType(problemType).
		WithDetail(detail)

	return c.Status(fiber.StatusNotFound).JSON(problem)
}

// handleServiceError provides typed error handling for service layer errors.
func handleServiceError(c fiber.Ctx, err error) error {
	switch {
	case services.IsValidationError(err):
		return badRequest(c, err.Error())

	case settings.IsPreconditionFailed(err):
		problem := problems.NewStatusProblem(400).
			WithInstance(c.Path()).
			WithType("cannot_delete_last_profile").
			WithDetail("cannot delete the last profile")

		return c.Status(fiber.StatusBadRequest).JSON(problem)

	case errors.Is(err, settings.ErrProfileNotFound):
		return notFound(c, "profile_not_found", "profile not found")

	case errors.Is(err, settings.ErrAutomationStateNotFound):
		return notFound(c, "automation_state_not_found", "automation state not found")

	case errors.Is(err, settings.ErrBestSellerNotFound):
		return notFound(c, "best_seller_not_found", "best seller item not found")

	case errors.Is(err, settings.ErrTargetNotFound):
		return notFound(c, "target_not_found", "target not found")

	default:
		log.WithModule("web").ErrorContext(c.Context(), "Unexpected service error", "path", c.Path(), "error", err)

		problem := problems.NewStatusProblem(500).
			WithInstance(c.Path()).
			WithType("internal_error").
			WithDetail("internal error")

		return c.Status(fiber.StatusInternalServerError).JSON(problem)
	}
}
