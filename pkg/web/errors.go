package web

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/moogar0880/problems"

	"github.com/ayush19353/geopulse-ai-app/pkg/pipeline"
	"github.com/ayush19353/geopulse-ai-app/pkg/sessions"
)

func badRequest(c fiber.Ctx, detail string) error {
	problem := problems.NewStatusProblem(400).
		WithInstance(c.Path()).
		WithType("validation_error").
		WithDetail(detail)

	return c.Status(fiber.StatusBadRequest).JSON(problem)
}

func notFound(c fiber.Ctx, detail string) error {
	problem := problems.NewStatusProblem(404).
		WithInstance(c.Path()).
		WithType("not_found").
		WithDetail(detail)

	return c.Status(fiber.StatusNotFound).JSON(problem)
}

func internalError(c fiber.Ctx, err error) error {
	problem := problems.NewStatusProblem(500).
		WithInstance(c.Path()).
		WithType("internal_error").
		WithError(err)

	return c.Status(fiber.StatusInternalServerError).JSON(problem)
}

// handlePipelineError maps orchestrator errors onto problem responses. Stage
// guard violations and bad trigger indexes are client errors; everything else
// is an upstream failure surfaced verbatim so the operator can decide whether
// to retry.
func handlePipelineError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, sessions.ErrSessionNotFound):
		return notFound(c, "session not found")

	case errors.Is(err, pipeline.ErrInvalidStage), errors.Is(err, pipeline.ErrTriggerIndex):
		problem := problems.NewStatusProblem(409).
			WithInstance(c.Path()).
			WithType("conflict").
			WithDetail(err.Error())

		return c.Status(fiber.StatusConflict).JSON(problem)

	default:
		problem := problems.NewStatusProblem(502).
			WithInstance(c.Path()).
			WithType("upstream_error").
			WithDetail(err.Error())

		return c.Status(fiber.StatusBadGateway).JSON(problem)
	}
}
